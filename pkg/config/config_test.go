package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ipda-secretaria/secretaria-api/pkg/config"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.App.Env)
	assert.Equal(t, 8080, cfg.HTTP.Port)
	assert.Equal(t, "enviado", cfg.Inventory.TransferInitialStatus)
	assert.Equal(t, 20, cfg.Inventory.PageSize)
	assert.Equal(t, 5*time.Second, cfg.CEP.Timeout)
	assert.Empty(t, cfg.Notify.Sinks)
	assert.Equal(t, "info", cfg.App.LogLevel)
	assert.Equal(t, 5*time.Second, cfg.DB.LockTimeout)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("NOTIFY_SINKS", "webhook, audit")
	t.Setenv("NOTIFY_WEBHOOK_URL", "https://hooks.example.com/igreja")
	t.Setenv("CEP_TIMEOUT", "1500")
	t.Setenv("INVENTORY_TRANSFER_INITIAL_STATUS", "pendente")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.HTTP.Port)
	assert.Equal(t, []string{"webhook", "audit"}, cfg.Notify.Sinks)
	assert.True(t, cfg.Notify.Enabled("WEBHOOK"))
	assert.False(t, cfg.Notify.Enabled("kafka"))
	assert.Equal(t, 1500*time.Millisecond, cfg.CEP.Timeout)
	assert.Equal(t, "pendente", cfg.Inventory.TransferInitialStatus)
}

func TestLoad_WebhookSinkSinURL(t *testing.T) {
	t.Setenv("NOTIFY_SINKS", "webhook")

	_, err := config.Load()
	assert.Error(t, err)
}

func TestDBConfig_DSNEscapaPassword(t *testing.T) {
	c := config.DBConfig{Host: "db", Port: 5432, User: "app", Password: "p@ss:w/rd", DBName: "ipda", SSLMode: "disable"}
	assert.Equal(t, "postgres://app:p%40ss%3Aw%2Frd@db:5432/ipda?sslmode=disable", c.DSN())

	c.DatabaseURL = "postgres://x@y/z"
	assert.Equal(t, "postgres://x@y/z", c.ConnectionString())
}
