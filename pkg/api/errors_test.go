package api

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/coderelay-ai/coderelay/pkg/engine"
	"github.com/coderelay-ai/coderelay/pkg/orchestrator"
	"github.com/coderelay-ai/coderelay/pkg/services"
)

func recordError(err error) *httptest.ResponseRecorder {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/test", nil)
	mapServiceError(c, err)
	return w
}

func TestMapServiceError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"validation error", services.NewValidationError("repo", "required"), http.StatusBadRequest},
		{"wrapped validation error", errors.Join(errors.New("outer"), services.NewValidationError("x", "y")), http.StatusBadRequest},
		{"not found", services.ErrNotFound, http.StatusNotFound},
		{"already exists", services.ErrAlreadyExists, http.StatusConflict},
		{"not cancellable", services.ErrNotCancellable, http.StatusConflict},
		{"concurrent modification", services.ErrConcurrentModification, http.StatusConflict},
		{"unexpected signal", engine.ErrUnexpectedSignal, http.StatusConflict},
		{"not resolvable", orchestrator.ErrNotResolvable, http.StatusConflict},
		{"unknown error", errors.New("boom"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := recordError(tt.err)
			assert.Equal(t, tt.wantStatus, w.Code)
			assert.Contains(t, w.Body.String(), "error")
		})
	}
}

func TestMapServiceError_HidesInternalDetail(t *testing.T) {
	w := recordError(errors.New("pq: connection refused at 10.0.0.3"))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, w.Body.String(), "10.0.0.3")
}
