package llm

import (
	"context"
	"errors"
	"fmt"
	"net"

	openai "github.com/sashabaranov/go-openai"

	"github.com/talkwheel/talkwheel/pkg/models"
)

// TransportError carries the failure classification for a provider call so
// the executor can record a structured error code on the run.
type TransportError struct {
	Code       string // models.ErrCode* value
	StatusCode int    // HTTP status, when applicable
	Err        error
}

func (e *TransportError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("llm: %s (status %d): %v", e.Code, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("llm: %s: %v", e.Code, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// ClassifyError maps a provider call failure to a TransportError. Callers
// that canceled the context themselves should check ctx.Err() first; a
// context.Canceled reaching here means the cancellation came from outside.
func ClassifyError(err error) *TransportError {
	var te *TransportError
	if errors.As(err, &te) {
		return te
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return &TransportError{Code: models.ErrCodeTimeout, Err: err}
	}

	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		code := models.ErrCodeProviderError
		if apiErr.HTTPStatusCode >= 500 || apiErr.HTTPStatusCode == 429 {
			code = models.ErrCodeHTTPError
		}
		return &TransportError{Code: code, StatusCode: apiErr.HTTPStatusCode, Err: err}
	}

	var reqErr *openai.RequestError
	if errors.As(err, &reqErr) {
		return &TransportError{Code: models.ErrCodeHTTPError, StatusCode: reqErr.HTTPStatusCode, Err: err}
	}

	var netErr net.Error
	if errors.As(err, &netErr) {
		if netErr.Timeout() {
			return &TransportError{Code: models.ErrCodeTimeout, Err: err}
		}
		return &TransportError{Code: models.ErrCodeConnectionError, Err: err}
	}

	return &TransportError{Code: models.ErrCodeProviderError, Err: err}
}
