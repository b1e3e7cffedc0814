package auth

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/syrilster/payroll-scenario-simulator/internal/util"
)

func TestCredentialsHandler(t *testing.T) {
	h := CredentialsHandler(NewMockVerifier("dashboard.html"))

	tests := []struct {
		name       string
		body       string
		wantStatus int
		wantBody   string
	}{
		{
			name:       "accepted",
			body:       `{"email":"rh@example.fr","password":"secret"}`,
			wantStatus: http.StatusOK,
			wantBody:   `{"accepted":true,"next":"mfa","message":"Code de vérification envoyé","status":"primary"}`,
		},
		{
			name:       "rejected",
			body:       `{"email":"rh@example.fr"}`,
			wantStatus: http.StatusUnauthorized,
			wantBody:   `{"accepted":false}`,
		},
		{
			name:       "malformed body",
			body:       `{"email":`,
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"status":400,"message":"Invalid request body"}`,
		},
		{
			name:       "oversized body",
			body:       `{"email":"` + strings.Repeat("a", util.MaxRequestBytes) + `","password":"secret"}`,
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"status":400,"message":"Invalid request body"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/v1/session/credentials", strings.NewReader(tt.body))
			rec := httptest.NewRecorder()
			h(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.JSONEq(t, tt.wantBody, rec.Body.String())
		})
	}
}

func TestMfaHandler(t *testing.T) {
	h := MfaHandler(NewMockVerifier("dashboard.html"))

	req := httptest.NewRequest(http.MethodPost, "/v1/session/mfa", strings.NewReader(`{"code":"654321"}`))
	rec := httptest.NewRecorder()
	h(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"accepted":true,"next":"redirect","redirect_url":"dashboard.html",
		"message":"Authentification réussie! Redirection...","status":"success"}`, rec.Body.String())

	req = httptest.NewRequest(http.MethodPost, "/v1/session/mfa", strings.NewReader(`{"code":"65"}`))
	rec = httptest.NewRecorder()
	h(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, `{"accepted":false,"message":"Code invalide. Veuillez réessayer.","status":"danger"}`, rec.Body.String())

	req = httptest.NewRequest(http.MethodPost, "/v1/session/mfa",
		strings.NewReader(`{"code":"`+strings.Repeat("1", util.MaxRequestBytes)+`"}`))
	rec = httptest.NewRecorder()
	h(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
