package clients

const (
	USER_AGENT = "reviewflow-client/1.0 (+https://github.com/spacesedan/reviewflow)"
)
