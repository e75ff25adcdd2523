package upload

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"
)

var ErrEmptyFile = errors.New("CSV file is empty")

// ColumnError reports a CSV without a usable review column, carrying the
// headers that were present so the client can show them.
type ColumnError struct {
	Available []string
}

func (e *ColumnError) Error() string {
	return fmt.Sprintf("CSV must contain a 'review' column. Available columns: %s",
		strings.Join(e.Available, ", "))
}

// ExtractReviews reads a CSV with a header row and returns the raw cell
// values of the review column, in row order, with blank cells dropped.
// The column name is matched case-insensitively against "review"/"reviews".
func ExtractReviews(r io.Reader) ([]string, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err == io.EOF {
		return nil, ErrEmptyFile
	}
	if err != nil {
		return nil, fmt.Errorf("failed to parse CSV header: %w", err)
	}

	columnIdx := -1
	for i, name := range header {
		lower := strings.ToLower(strings.TrimSpace(name))
		if lower == "review" || lower == "reviews" {
			columnIdx = i
			break
		}
	}
	if columnIdx == -1 {
		return nil, &ColumnError{Available: header}
	}

	var reviews []string
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to parse CSV row: %w", err)
		}
		if columnIdx >= len(record) {
			continue
		}
		if strings.TrimSpace(record[columnIdx]) == "" {
			continue
		}
		reviews = append(reviews, record[columnIdx])
	}

	return reviews, nil
}
