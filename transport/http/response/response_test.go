package response_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"reziro/shared/constant"
	"reziro/shared/failure"
	"reziro/transport/http/response"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResponses(t *testing.T) {
	tests := []struct {
		name  string
		write func(w http.ResponseWriter)
		code  int
		body  string
	}{
		{
			name: "json",
			write: func(w http.ResponseWriter) {
				response.WithJSON(w, http.StatusCreated, map[string]int{"nightsCount": 3})
			},
			code: http.StatusCreated,
			body: `{"data":{"nightsCount":3}}`,
		},
		{
			name:  "empty list stays a list",
			write: func(w http.ResponseWriter) { response.WithJSON(w, http.StatusOK, []string{}) },
			code:  http.StatusOK,
			body:  `{"data":[]}`,
		},
		{
			name:  "message",
			write: func(w http.ResponseWriter) { response.WithMessage(w, http.StatusOK, "Room deleted successfully") },
			code:  http.StatusOK,
			body:  `{"message":"Room deleted successfully"}`,
		},
		{
			name: "failure",
			write: func(w http.ResponseWriter) {
				response.WithError(w, failure.New(http.StatusLocked, "month 2024-03 is locked"))
			},
			code: http.StatusLocked,
			body: `{"error":"month 2024-03 is locked"}`,
		},
		{
			name:  "plain error",
			write: func(w http.ResponseWriter) { response.WithError(w, errors.New("boom")) },
			code:  http.StatusInternalServerError,
			body:  `{"error":"boom"}`,
		},
		{
			name:  "rate limited",
			write: response.WithRequestLimitExceeded,
			code:  http.StatusTooManyRequests,
			body:  `{"message":"REQUEST LIMIT EXCEEDED"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recorder := httptest.NewRecorder()
			tt.write(recorder)

			assert.Equal(t, tt.code, recorder.Code)
			assert.JSONEq(t, tt.body, recorder.Body.String())
			assert.Equal(t, constant.ContentTypeJSON, recorder.Header().Get(constant.RequestHeaderContentType))
			assert.Equal(t, constant.CacheControlNoStore, recorder.Header().Get(constant.ResponseHeaderCacheControl))
		})
	}
}
