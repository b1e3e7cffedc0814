// Package auth implements the sign-in flow of the simulator: a credentials step
// followed by a one-time code step.
//
// MockVerifier performs no verification at all. It accepts any non-empty
// credentials and any six character code. Deployments that need real
// authentication must provide their own Verifier.
package auth

import (
	"context"
	"unicode/utf8"

	log "github.com/sirupsen/logrus"
)

const mfaCodeLength = 6

type Step string

const (
	StepMFA      Step = "mfa"
	StepRedirect Step = "redirect"
)

// Notification statuses, as shown by the front-end toast.
const (
	StatusPrimary = "primary"
	StatusSuccess = "success"
	StatusDanger  = "danger"
)

type Decision struct {
	Accepted    bool   `json:"accepted"`
	Next        Step   `json:"next,omitempty"`
	RedirectURL string `json:"redirect_url,omitempty"`
	Message     string `json:"message,omitempty"`
	Status      string `json:"status,omitempty"`
}

type Verifier interface {
	SubmitCredentials(ctx context.Context, email string, password string) Decision
	SubmitMfaCode(ctx context.Context, code string) Decision
}

type MockVerifier struct {
	redirectURL string
}

func NewMockVerifier(redirectURL string) *MockVerifier {
	return &MockVerifier{redirectURL: redirectURL}
}

// SubmitCredentials accepts any pair of non-empty values.
func (v MockVerifier) SubmitCredentials(ctx context.Context, email string, password string) Decision {
	ctxLogger := log.WithContext(ctx)
	if email == "" || password == "" {
		ctxLogger.Info("Credentials rejected: email or password missing")
		return Decision{Accepted: false}
	}

	ctxLogger.WithField("email", email).Info("Credentials accepted, awaiting verification code")
	return Decision{
		Accepted: true,
		Next:     StepMFA,
		Message:  "Code de vérification envoyé",
		Status:   StatusPrimary,
	}
}

// SubmitMfaCode accepts any code of exactly six characters. Digits are not enforced.
func (v MockVerifier) SubmitMfaCode(ctx context.Context, code string) Decision {
	ctxLogger := log.WithContext(ctx)
	if utf8.RuneCountInString(code) != mfaCodeLength {
		ctxLogger.Info("Verification code rejected")
		return Decision{
			Accepted: false,
			Message:  "Code invalide. Veuillez réessayer.",
			Status:   StatusDanger,
		}
	}

	ctxLogger.Info("Verification code accepted")
	return Decision{
		Accepted:    true,
		Next:        StepRedirect,
		RedirectURL: v.redirectURL,
		Message:     "Authentification réussie! Redirection...",
		Status:      StatusSuccess,
	}
}
