package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("DYNAMODB_ENDPOINT", "")
	t.Setenv("DYNAMODB_TABLE_PREFIX", "")
	t.Setenv("PORT", "")

	cfg := Load()

	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, "us-east-1", cfg.AWSRegion)
	assert.False(t, cfg.AutoCreateTables)
	assert.Equal(t, "budgets", cfg.Tables.Budgets)
	assert.Equal(t, "audit_logs", cfg.Tables.AuditLogs)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("DYNAMODB_ENDPOINT", "http://dynamodb:8000")
	t.Setenv("DYNAMODB_TABLE_PREFIX", "dev_")
	t.Setenv("PORT", "9090")
	t.Setenv("CORS_ORIGINS", "http://a.local, ,http://b.local")

	cfg := Load()

	assert.Equal(t, 9090, cfg.Port)
	assert.True(t, cfg.AutoCreateTables)
	assert.Equal(t, "dev_clients", cfg.Tables.Clients)
	assert.Equal(t, []string{"http://a.local", "http://b.local"}, cfg.CORSOrigins)
}

func TestGetenvHelpers(t *testing.T) {
	t.Setenv("X_BOOL", "off")
	t.Setenv("X_INT", "abc")

	assert.False(t, getenvBool("X_BOOL", true))
	assert.True(t, getenvBool("X_MISSING_BOOL", true))
	assert.Equal(t, 7, getenvInt("X_INT", 7))
}
