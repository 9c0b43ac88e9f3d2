package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/go-todo-api/internal/logger"
	"github.com/MKhiriev/go-todo-api/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouterHandler() *Handler {
	return NewHandler(&service.Services{
		AuthService: &mockAuthService{},
		TodoService: &mockTodoService{},
	}, logger.Nop())
}

func TestRoutes_Hello(t *testing.T) {
	router := newTestRouterHandler().Init()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"message":"Hello, world!"}`, rr.Body.String())
}

func TestRoutes_TodoRequiresAuthentication(t *testing.T) {
	router := newTestRouterHandler().Init()

	targets := []struct {
		method string
		target string
	}{
		{method: http.MethodGet, target: "/todo/"},
		{method: http.MethodPost, target: "/todo/"},
		{method: http.MethodGet, target: "/todo/1"},
		{method: http.MethodPut, target: "/todo/1"},
		{method: http.MethodDelete, target: "/todo/1"},
	}

	for _, tt := range targets {
		t.Run(tt.method+" "+tt.target, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.target, nil)
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)

			assert.Equal(t, http.StatusUnauthorized, rr.Code)
			assert.JSONEq(t, `{"message":"Unauthorized"}`, rr.Body.String())
		})
	}
}

func TestRoutes_TraceIDHeader(t *testing.T) {
	router := newTestRouterHandler().Init()

	t.Run("generated when absent", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		require.NotEmpty(t, rr.Header().Get(traceIDHeader))
	})

	t.Run("propagated when present", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(traceIDHeader, "incoming-trace-id")
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, "incoming-trace-id", rr.Header().Get(traceIDHeader))
	})
}
