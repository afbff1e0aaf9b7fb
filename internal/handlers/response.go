package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"

	"aya-cleaning-api/pkg/lambda"
)

// MessageResponse is the body of every non-success response
type MessageResponse struct {
	Message string `json:"message"`
	Error   string `json:"error,omitempty"`
}

// ResponseHeaders returns the headers sent on every response
func ResponseHeaders() map[string]string {
	return map[string]string{
		"Access-Control-Allow-Origin": "*",
		"Content-Type":                "application/json",
	}
}

// NewMessageResponse builds a message response; detail is omitted when empty
func NewMessageResponse(statusCode int, message, detail string) *lambda.Response {
	return jsonResponse(statusCode, MessageResponse{Message: message, Error: detail})
}

// jsonResponse encodes body without HTML escaping so messages reach the
// caller exactly as written.
func jsonResponse(statusCode int, body interface{}) *lambda.Response {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(body); err != nil {
		return &lambda.Response{
			StatusCode: http.StatusInternalServerError,
			Headers:    ResponseHeaders(),
			Body:       []byte(`{"message":"Failed to create service request."}`),
		}
	}

	return &lambda.Response{
		StatusCode: statusCode,
		Headers:    ResponseHeaders(),
		Body:       bytes.TrimRight(buf.Bytes(), "\n"),
	}
}
