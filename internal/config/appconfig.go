package config

import (
	"fmt"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/ses"
	"github.com/shopspring/decimal"

	"github.com/syrilster/payroll-scenario-simulator/internal/directory"
	"github.com/syrilster/payroll-scenario-simulator/internal/report"
	"github.com/syrilster/payroll-scenario-simulator/internal/scenario"
)

type ApplicationConfig struct {
	envValues  *envConfig
	directory  *directory.Table
	calculator scenario.Calculator
	mailer     *report.Mailer
}

//Version returns application version
func (cfg *ApplicationConfig) Version() string {
	return cfg.envValues.Version
}

//ServerPort returns the port no to listen for requests
func (cfg *ApplicationConfig) ServerPort() int {
	return cfg.envValues.ServerPort
}

//LogLevel returns the configured logrus level name
func (cfg *ApplicationConfig) LogLevel() string {
	return cfg.envValues.LogLevel
}

//AllowedOrigins returns the CORS origins
func (cfg *ApplicationConfig) AllowedOrigins() []string {
	return cfg.envValues.AllowedOrigins
}

//Directory returns the employees loaded at startup
func (cfg *ApplicationConfig) Directory() directory.Directory {
	return cfg.directory
}

//Calculator returns the scenario calculator
func (cfg *ApplicationConfig) Calculator() scenario.Calculator {
	return cfg.calculator
}

//MfaRedirectURL returns the page opened after a successful sign-in
func (cfg *ApplicationConfig) MfaRedirectURL() string {
	return cfg.envValues.MfaRedirectURL
}

//Mailer returns the SES backed report mailer
func (cfg *ApplicationConfig) Mailer() *report.Mailer {
	return cfg.mailer
}

//EmailTo returns the default report recipients
func (cfg *ApplicationConfig) EmailTo() string {
	return cfg.envValues.EmailTo
}

//NewApplicationConfig loads config values from environment and initialises config
func NewApplicationConfig() (*ApplicationConfig, error) {
	envValues := NewEnvironmentConfig()

	table, err := directory.Load(envValues.EmployeesFile)
	if err != nil {
		return nil, fmt.Errorf("load employees: %w", err)
	}

	calculator := scenario.NewCalculator(
		scenario.WithChargeRate(decimal.NewFromFloat(envValues.EmployerChargeRate)),
	)

	sess, err := session.NewSession(aws.NewConfig().WithRegion(envValues.AwsRegion))
	if err != nil {
		return nil, fmt.Errorf("create aws session: %w", err)
	}
	mailer := report.NewMailer(ses.New(sess), envValues.EmailFrom)

	return &ApplicationConfig{
		envValues:  envValues,
		directory:  table,
		calculator: calculator,
		mailer:     mailer,
	}, nil
}
