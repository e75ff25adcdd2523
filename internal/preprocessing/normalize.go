package preprocessing

import (
	"html"
	"log/slog"
	"regexp"
	"strings"

	"github.com/russross/blackfriday/v2"
)

var (
	markdownLinkPattern = regexp.MustCompile(`\[(.*?)\]\((https?:\/\/[^\s\)]+)\)`)
	urlPattern          = regexp.MustCompile(`http\S+|www\S+|https\S+`)
	mentionPattern      = regexp.MustCompile(`@\w+`)
	nonLetterPattern    = regexp.MustCompile(`[^a-z\s]`)
	whitespacePattern   = regexp.MustCompile(`\s+`)
)

// ConvertMarkdownToText renders markdown and strips the resulting tags so
// reviews pasted from web sources are scored on their visible text only.
func ConvertMarkdownToText(input string) string {
	input = markdownLinkPattern.ReplaceAllString(input, "$1")

	output := blackfriday.Run([]byte(input), blackfriday.WithNoExtensions())
	plain := html.UnescapeString(stripTags(string(output)))

	return strings.Join(strings.Fields(plain), " ")
}

// Normalize cleans review text ahead of classification: markdown to plain
// text, lowercase, URLs and @mentions removed, everything that is not a
// lowercase letter or whitespace dropped (hashtag words survive without
// their # marker, they usually carry sentiment), whitespace collapsed.
// It never fails; any internal error yields an empty string, which callers
// treat as "skip this row".
func Normalize(text string) (cleaned string) {
	defer func() {
		if r := recover(); r != nil {
			slog.Warn("[Preprocessing] Normalize recovered",
				slog.Any("panic", r))
			cleaned = ""
		}
	}()

	text = ConvertMarkdownToText(text)
	text = strings.ToLower(text)
	text = urlPattern.ReplaceAllString(text, "")
	text = mentionPattern.ReplaceAllString(text, "")
	text = nonLetterPattern.ReplaceAllString(text, " ")
	text = whitespacePattern.ReplaceAllString(text, " ")

	return strings.TrimSpace(text)
}

func stripTags(markup string) string {
	var b strings.Builder
	inTag := false
	for _, r := range markup {
		switch {
		case r == '<':
			inTag = true
			b.WriteRune(' ')
		case r == '>':
			inTag = false
		case !inTag:
			b.WriteRune(r)
		}
	}
	return b.String()
}
