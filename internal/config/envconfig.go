package config

import (
	"os"
	"strconv"
	"strings"
)

type envConfig struct {
	LogLevel           string
	ServerPort         int
	Version            string
	AllowedOrigins     []string
	EmployeesFile      string
	EmployerChargeRate float64
	MfaRedirectURL     string
	AwsRegion          string
	EmailTo            string
	EmailFrom          string
}

func NewEnvironmentConfig() *envConfig {
	return &envConfig{
		LogLevel:           getEnvString("LOG_LEVEL", "INFO"),
		ServerPort:         getEnvInt("SERVER_PORT", 8080),
		Version:            getEnvString("VERSION", "v1"),
		AllowedOrigins:     getEnvList("CORS_ALLOWED_ORIGINS", []string{"*"}),
		EmployeesFile:      getEnvString("EMPLOYEES_FILE", ""),
		EmployerChargeRate: getEnvFloat("EMPLOYER_CHARGE_RATE", 0.4),
		MfaRedirectURL:     getEnvString("MFA_REDIRECT_URL", "dashboard.html"),
		AwsRegion:          getEnvString("AWS_REGION", "eu-west-3"),
		EmailTo:            getEnvString("EMAIL_TO", ""),
		EmailFrom:          getEnvString("EMAIL_FROM", ""),
	}
}

// helper function to read an environment or return a default value
func getEnvString(key string, defaultVal string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}

	return defaultVal
}

// helper function to read an environment or return a default value
func getEnvInt(key string, defaultVal int) int {
	val, err := strconv.Atoi(getEnvString(key, strconv.Itoa(defaultVal)))
	if err == nil {
		return val
	}

	return defaultVal
}

func getEnvFloat(key string, defaultVal float64) float64 {
	val, err := strconv.ParseFloat(getEnvString(key, ""), 64)
	if err == nil {
		return val
	}

	return defaultVal
}

// comma separated list, blank entries dropped
func getEnvList(key string, defaultVal []string) []string {
	raw, exists := os.LookupEnv(key)
	if !exists {
		return defaultVal
	}
	var list []string
	for _, item := range strings.Split(raw, ",") {
		if item = strings.TrimSpace(item); item != "" {
			list = append(list, item)
		}
	}
	if len(list) == 0 {
		return defaultVal
	}
	return list
}
