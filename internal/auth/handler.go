package auth

import (
	"encoding/json"
	"net/http"

	log "github.com/sirupsen/logrus"

	"github.com/syrilster/payroll-scenario-simulator/internal/util"
)

type credentialsRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type mfaRequest struct {
	Code string `json:"code"`
}

func CredentialsHandler(v Verifier) func(w http.ResponseWriter, r *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		contextLogger := log.WithContext(ctx)

		var req credentialsRequest
		util.LimitBody(w, r)
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			contextLogger.WithError(err).Error("could not parse credentials request")
			util.WithError("Invalid request body", http.StatusBadRequest, w)
			return
		}

		writeDecision(v.SubmitCredentials(ctx, req.Email, req.Password), w)
	}
}

func MfaHandler(v Verifier) func(w http.ResponseWriter, r *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		contextLogger := log.WithContext(ctx)

		var req mfaRequest
		util.LimitBody(w, r)
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			contextLogger.WithError(err).Error("could not parse verification code request")
			util.WithError("Invalid request body", http.StatusBadRequest, w)
			return
		}

		writeDecision(v.SubmitMfaCode(ctx, req.Code), w)
	}
}

func writeDecision(d Decision, w http.ResponseWriter) {
	status := http.StatusOK
	if !d.Accepted {
		status = http.StatusUnauthorized
	}
	util.WithBodyAndStatus(d, status, w)
}
