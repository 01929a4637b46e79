package postgres_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/pos-ledger/internal/infrastructure/postgres"
	"github.com/jhoicas/pos-ledger/pkg/config"
)

func TestPoolConfig_DesdeConfiguracion(t *testing.T) {
	cfg := config.DBConfig{
		Host: "db", Port: 5432, User: "pos", Password: "x", DBName: "ledger", SSLMode: "disable",
		MaxConns:         6,
		MinConns:         2,
		MaxConnLifetime:  20 * time.Minute,
		MaxConnIdle:      5 * time.Minute,
		ConnectTimeout:   3 * time.Second,
		StatementTimeout: 15 * time.Second,
		AppName:          "pos-ledger",
	}

	pc, err := postgres.PoolConfig(cfg)
	require.NoError(t, err)

	assert.Equal(t, int32(7), pc.MaxConns, "una conexión extra para LISTEN")
	assert.Equal(t, int32(2), pc.MinConns)
	assert.Equal(t, 20*time.Minute, pc.MaxConnLifetime)
	assert.Equal(t, 5*time.Minute, pc.MaxConnIdleTime)
	assert.Equal(t, 3*time.Second, pc.ConnConfig.ConnectTimeout)
	assert.Equal(t, "pos-ledger", pc.ConnConfig.RuntimeParams["application_name"])
	assert.Equal(t, "15000", pc.ConnConfig.RuntimeParams["statement_timeout"])
	assert.Equal(t, "db", pc.ConnConfig.Host)
	assert.NotNil(t, pc.AfterConnect)
}

func TestPoolConfig_ValoresPorDefecto(t *testing.T) {
	pc, err := postgres.PoolConfig(config.DBConfig{DatabaseURL: "postgres://pos@localhost:5432/ledger", MinConns: 50})
	require.NoError(t, err)

	assert.Equal(t, int32(11), pc.MaxConns)
	assert.Equal(t, int32(0), pc.MinConns, "MinConns mayor que MaxConns se descarta")
	_, ok := pc.ConnConfig.RuntimeParams["statement_timeout"]
	assert.False(t, ok)
}

func TestPoolConfig_ForzarIPv4(t *testing.T) {
	cfg := config.DBConfig{DatabaseURL: "postgres://pos@127.0.0.1:5432/ledger", ForceIPv4: true}

	pc, err := postgres.PoolConfig(cfg)
	require.NoError(t, err)
	require.NotNil(t, pc.ConnConfig.LookupFunc)

	addrs, err := pc.ConnConfig.LookupFunc(context.Background(), "127.0.0.1")
	require.NoError(t, err)
	assert.Equal(t, []string{"127.0.0.1"}, addrs)

	_, err = pc.ConnConfig.LookupFunc(context.Background(), "::1")
	assert.Error(t, err)
}

func TestPoolConfig_DSNInvalido(t *testing.T) {
	_, err := postgres.PoolConfig(config.DBConfig{DatabaseURL: "postgres://%zz"})
	assert.Error(t, err)
}
