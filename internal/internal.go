package internal

import (
	"fmt"
	"net/http"

	"github.com/syrilster/payroll-scenario-simulator/internal/auth"
	"github.com/syrilster/payroll-scenario-simulator/internal/config"
	"github.com/syrilster/payroll-scenario-simulator/internal/directory"
	"github.com/syrilster/payroll-scenario-simulator/internal/middlewares"
	"github.com/syrilster/payroll-scenario-simulator/internal/report"
	"github.com/syrilster/payroll-scenario-simulator/internal/scenario"
)

//StatusRoute health check route
func StatusRoute(dir directory.Directory) (route config.Route) {
	route = config.Route{
		Path:    "/health",
		Method:  http.MethodGet,
		Handler: middlewares.RuntimeHealthCheck(dir),
	}
	return route
}

type ServerConfig interface {
	Version() string
	AllowedOrigins() []string
	Directory() directory.Directory
	Calculator() scenario.Calculator
	MfaRedirectURL() string
	Mailer() *report.Mailer
	EmailTo() string
}

func SetupServer(cfg ServerConfig) *config.Server {
	basePath := fmt.Sprintf("/%v", cfg.Version())
	service := NewService(cfg.Directory(), cfg.Calculator(), cfg.Mailer(), cfg.EmailTo())
	verifier := auth.NewMockVerifier(cfg.MfaRedirectURL())

	routes := append(Routes(service), auth.Routes(verifier)...)
	server := config.NewServer(config.WithAllowedOrigins(cfg.AllowedOrigins())).
		WithRoutes(
			"", StatusRoute(cfg.Directory()),
		).
		WithRoutes(
			basePath,
			routes...,
		)
	return server
}
