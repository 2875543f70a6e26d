package llm

import (
	"context"
	"errors"
	"fmt"
	"testing"

	openai "github.com/sashabaranov/go-openai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/talkwheel/talkwheel/pkg/models"
)

type fakeNetError struct{ timeout bool }

func (e *fakeNetError) Error() string   { return "net down" }
func (e *fakeNetError) Timeout() bool   { return e.timeout }
func (e *fakeNetError) Temporary() bool { return false }

func TestClassifyError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantCode   string
		wantStatus int
	}{
		{
			name:     "deadline exceeded",
			err:      fmt.Errorf("call: %w", context.DeadlineExceeded),
			wantCode: models.ErrCodeTimeout,
		},
		{
			name:       "api error 500",
			err:        &openai.APIError{HTTPStatusCode: 500},
			wantCode:   models.ErrCodeHTTPError,
			wantStatus: 500,
		},
		{
			name:       "api error 429",
			err:        &openai.APIError{HTTPStatusCode: 429},
			wantCode:   models.ErrCodeHTTPError,
			wantStatus: 429,
		},
		{
			name:       "api error 400",
			err:        &openai.APIError{HTTPStatusCode: 400},
			wantCode:   models.ErrCodeProviderError,
			wantStatus: 400,
		},
		{
			name:       "request error",
			err:        &openai.RequestError{HTTPStatusCode: 502, Err: errors.New("bad gateway")},
			wantCode:   models.ErrCodeHTTPError,
			wantStatus: 502,
		},
		{
			name:     "network timeout",
			err:      fmt.Errorf("dial: %w", &fakeNetError{timeout: true}),
			wantCode: models.ErrCodeTimeout,
		},
		{
			name:     "network refused",
			err:      fmt.Errorf("dial: %w", &fakeNetError{}),
			wantCode: models.ErrCodeConnectionError,
		},
		{
			name:     "unknown error",
			err:      errors.New("something odd"),
			wantCode: models.ErrCodeProviderError,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			te := ClassifyError(tt.err)
			require.NotNil(t, te)
			assert.Equal(t, tt.wantCode, te.Code)
			assert.Equal(t, tt.wantStatus, te.StatusCode)
			assert.ErrorIs(t, te, tt.err)
		})
	}
}

func TestClassifyErrorPassesThroughTransportError(t *testing.T) {
	orig := &TransportError{Code: models.ErrCodeTimeout, Err: errors.New("slow")}
	wrapped := fmt.Errorf("retry 3: %w", orig)
	assert.Same(t, orig, ClassifyError(wrapped))
}

func TestTransportErrorMessage(t *testing.T) {
	te := &TransportError{Code: models.ErrCodeHTTPError, StatusCode: 503, Err: errors.New("unavailable")}
	assert.Equal(t, "llm: http_error (status 503): unavailable", te.Error())

	te = &TransportError{Code: models.ErrCodeTimeout, Err: errors.New("late")}
	assert.Equal(t, "llm: timeout: late", te.Error())
}
