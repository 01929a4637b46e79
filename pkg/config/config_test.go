package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/pos-ledger/pkg/config"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("JWT_SECRET", "s3cret")

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, "s3cret", cfg.JWT.Secret)
	assert.Equal(t, config.StorePostgres, cfg.Store.Backend)
	assert.Equal(t, config.CartMemory, cfg.Store.CartBackend)
	assert.Equal(t, 12*time.Hour, cfg.Redis.CartTTL)
	assert.Equal(t, "0.0.0.0:8080", cfg.HTTP.Addr())
	assert.Equal(t, "CO", cfg.Shop.Region)
	assert.Equal(t, "es-CO", cfg.Shop.Locale)
	assert.False(t, cfg.Shop.RTL)
	assert.Equal(t, 10, cfg.DB.MaxConns)
	assert.Equal(t, 1, cfg.DB.MinConns)
	assert.Equal(t, 15*time.Second, cfg.DB.StatementTimeout)
	assert.False(t, cfg.DB.ForceIPv4)
}

func TestLoad_VariablesDeEntorno(t *testing.T) {
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("STORE_BACKEND", "Memory")
	t.Setenv("CART_BACKEND", "redis")
	t.Setenv("REDIS_CART_TTL", "30m")
	t.Setenv("SHOP_NAME", "Celulares Centro")
	t.Setenv("SHOP_REGION", "eg")
	t.Setenv("SHOP_RTL", "true")
	t.Setenv("DB_MAX_CONN_IDLE", "5m")
	t.Setenv("DB_FORCE_IPV4", "true")

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, 9090, cfg.HTTP.Port)
	assert.Equal(t, config.StoreMemory, cfg.Store.Backend)
	assert.Equal(t, config.CartRedis, cfg.Store.CartBackend)
	assert.Equal(t, 30*time.Minute, cfg.Redis.CartTTL)
	assert.Equal(t, "Celulares Centro", cfg.Shop.Name)
	assert.Equal(t, "EG", cfg.Shop.Region)
	assert.True(t, cfg.Shop.RTL)
	assert.Equal(t, 5*time.Minute, cfg.DB.MaxConnIdle)
	assert.True(t, cfg.DB.ForceIPv4)
}

func TestLoad_BackendInvalido(t *testing.T) {
	t.Setenv("STORE_BACKEND", "mongo")
	_, err := config.Load()
	assert.Error(t, err)
}

func TestDBConfig_DSN(t *testing.T) {
	c := config.DBConfig{Host: "db", Port: 5432, User: "pos", Password: "p@ss word", DBName: "ledger", SSLMode: "disable"}
	assert.Equal(t, "postgres://pos:p%40ss%20word@db:5432/ledger?sslmode=disable", c.DSN())

	c.DatabaseURL = "postgres://x@y/z"
	assert.Equal(t, "postgres://x@y/z", c.ConnectionString())
}
