package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds application configuration.
type Config struct {
	AppName     string
	AppVersion  string
	Environment string
	Port        int

	LogLevel  string
	LogFormat string

	AWSRegion          string
	AWSAccessKeyID     string
	AWSSecretAccessKey string
	DynamoDBEndpoint   string
	AutoCreateTables   bool

	Tables Tables

	CORSOrigins []string
}

// Tables lists the DynamoDB table names used by the repositories.
type Tables struct {
	Clients      string
	Sellers      string
	PriceTable   string
	CanvasColors string
	Budgets      string
	Commissions  string
	History      string
	AuditLogs    string
}

// Load loads configuration from environment variables and .env file.
func Load() Config {
	_ = godotenv.Load()

	environment := getenv("ENVIRONMENT", "development")
	endpoint := strings.TrimSpace(getenv("DYNAMODB_ENDPOINT", ""))

	return Config{
		AppName:            getenv("APP_SERVICE", "orcasys"),
		AppVersion:         getenv("APP_VERSION", "0.1.0"),
		Environment:        environment,
		Port:               getenvInt("PORT", 8080),
		LogLevel:           getenv("LOG_LEVEL", "info"),
		LogFormat:          getenv("LOG_FORMAT", "json"),
		AWSRegion:          getenv("AWS_REGION", "us-east-1"),
		AWSAccessKeyID:     getenv("AWS_ACCESS_KEY_ID", "local"),
		AWSSecretAccessKey: getenv("AWS_SECRET_ACCESS_KEY", "local"),
		DynamoDBEndpoint:   endpoint,
		// Local endpoints start empty, so bootstrap tables unless told otherwise.
		AutoCreateTables: getenvBool("DYNAMODB_AUTO_CREATE_TABLES", endpoint != ""),
		Tables:           loadTables(getenv("DYNAMODB_TABLE_PREFIX", "")),
		CORSOrigins:      splitList(getenv("CORS_ORIGINS", "http://localhost:3000")),
	}
}

func loadTables(prefix string) Tables {
	return Tables{
		Clients:      prefix + getenv("CLIENTS_TABLE", "clients"),
		Sellers:      prefix + getenv("SELLERS_TABLE", "sellers"),
		PriceTable:   prefix + getenv("PRICE_TABLE_TABLE", "price_table"),
		CanvasColors: prefix + getenv("CANVAS_COLORS_TABLE", "canvas_colors"),
		Budgets:      prefix + getenv("BUDGETS_TABLE", "budgets"),
		Commissions:  prefix + getenv("COMMISSIONS_TABLE", "commissions"),
		History:      prefix + getenv("BUDGET_HISTORY_TABLE", "budget_history"),
		AuditLogs:    prefix + getenv("AUDIT_LOGS_TABLE", "audit_logs"),
	}
}

func (c Config) IsProduction() bool {
	return c.Environment == "production"
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvBool(key string, def bool) bool {
	value := strings.ToLower(strings.TrimSpace(os.Getenv(key)))
	if value == "" {
		return def
	}
	switch value {
	case "1", "true", "yes", "y", "on":
		return true
	case "0", "false", "no", "n", "off":
		return false
	default:
		return def
	}
}

func getenvInt(key string, def int) int {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return def
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return def
	}
	return parsed
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
