package api

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// APIError is a non-2xx response turned into a display-ready error. The
// server's message field is preferred; when the body carries none, the
// status line stands in.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("unexpected status code %d", e.StatusCode)
}

func errorFromResponse(resp *http.Response) error {
	apiErr := &APIError{
		StatusCode: resp.StatusCode,
	}

	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return apiErr
	}

	msg := MessageResponse{}
	if err := json.Unmarshal(b, &msg); err == nil && msg.Message != "" {
		apiErr.Message = msg.Message
	}

	return apiErr
}
