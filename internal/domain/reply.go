package domain

import (
	"fmt"
	"net/http"
)

// Reply is the outcome of one chat-completion call that reached the server.
// Status 200 carries the assistant content; any other status carries the raw
// error body returned by the API.
type Reply struct {
	Status  int
	Content string
	Body    string
}

// OKReply wraps successful assistant content.
func OKReply(content string) Reply {
	return Reply{Status: http.StatusOK, Content: content}
}

// APIErrorReply wraps a non-200 response.
func APIErrorReply(status int, body string) Reply {
	return Reply{Status: status, Body: body}
}

// IsAPIError reports whether the reply came from a non-200 response.
func (r Reply) IsAPIError() bool {
	return r.Status != http.StatusOK
}

// Text renders the reply as the string handed to the response parser.
// API errors become an inline message embedding status and body.
func (r Reply) Text() string {
	if r.IsAPIError() {
		return fmt.Sprintf(APIErrorFormat, r.Status, r.Body)
	}
	return r.Content
}
