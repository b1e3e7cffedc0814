package auth

import (
	"net/http"

	"github.com/syrilster/payroll-scenario-simulator/internal/config"
)

func Routes(v Verifier) []config.Route {
	return []config.Route{
		{
			Path:    "/session/credentials",
			Method:  http.MethodPost,
			Handler: CredentialsHandler(v),
		},
		{
			Path:    "/session/mfa",
			Method:  http.MethodPost,
			Handler: MfaHandler(v),
		},
	}
}
