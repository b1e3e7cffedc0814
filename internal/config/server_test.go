package config

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestServer(t *testing.T) {
	s := NewServer(WithAllowedOrigins([]string{"https://rh.example.fr"})).
		WithRoutes("/v1",
			Route{Path: "/ping", Method: http.MethodGet, Handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusNoContent)
			}},
			Route{Path: "/boom", Method: http.MethodGet, Handler: func(w http.ResponseWriter, r *http.Request) {
				panic("boom")
			}},
		)
	h := s.Handler()

	t.Run("registered route", func(t *testing.T) {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/v1/ping", nil)
		req.Header.Set("Origin", "https://rh.example.fr")
		h.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusNoContent, rec.Code)
		assert.Equal(t, "https://rh.example.fr", rec.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("other origins get no CORS header", func(t *testing.T) {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/v1/ping", nil)
		req.Header.Set("Origin", "https://elsewhere.example.com")
		h.ServeHTTP(rec, req)
		assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("wrong method", func(t *testing.T) {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/v1/ping", nil))
		assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	})

	t.Run("panics are recovered", func(t *testing.T) {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/boom", nil))
		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}
