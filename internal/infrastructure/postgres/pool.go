package postgres

import (
	"context"
	"fmt"
	"net"
	"strconv"

	pgxdecimal "github.com/jackc/pgx-shopspring-decimal"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/pos-ledger/pkg/config"
)

// watcherConns conexiones que el Watcher retiene con LISTEN fuera del presupuesto de DB_MAX_CONNS.
const watcherConns = 1

// NewPool abre el pool del ledger y verifica la conexión con un ping.
func NewPool(ctx context.Context, cfg config.DBConfig) (*pgxpool.Pool, error) {
	poolCfg, err := PoolConfig(cfg)
	if err != nil {
		return nil, err
	}
	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("crear pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping DB: %w", err)
	}
	return pool, nil
}

// PoolConfig traduce DBConfig a la configuración de pgxpool sin abrir conexiones.
// NUMERIC se decodifica a shopspring/decimal en todas las conexiones.
func PoolConfig(cfg config.DBConfig) (*pgxpool.Config, error) {
	poolCfg, err := pgxpool.ParseConfig(cfg.ConnectionString())
	if err != nil {
		return nil, fmt.Errorf("parse DSN: %w", err)
	}

	maxConns := cfg.MaxConns
	if maxConns <= 0 {
		maxConns = 10
	}
	minConns := cfg.MinConns
	if minConns < 0 || minConns > maxConns {
		minConns = 0
	}
	poolCfg.MaxConns = int32(maxConns + watcherConns)
	poolCfg.MinConns = int32(minConns)
	if cfg.MaxConnLifetime > 0 {
		poolCfg.MaxConnLifetime = cfg.MaxConnLifetime
	}
	if cfg.MaxConnIdle > 0 {
		poolCfg.MaxConnIdleTime = cfg.MaxConnIdle
	}

	conn := poolCfg.ConnConfig
	if cfg.ConnectTimeout > 0 {
		conn.ConnectTimeout = cfg.ConnectTimeout
	}
	if cfg.AppName != "" {
		conn.RuntimeParams["application_name"] = cfg.AppName
	}
	// un checkout colgado no debe retener el lock del carrito indefinidamente
	if cfg.StatementTimeout > 0 {
		conn.RuntimeParams["statement_timeout"] = strconv.FormatInt(cfg.StatementTimeout.Milliseconds(), 10)
	}
	if cfg.ForceIPv4 {
		conn.DialFunc = dialIPv4
		conn.LookupFunc = lookupIPv4
	}

	poolCfg.AfterConnect = func(_ context.Context, c *pgx.Conn) error {
		pgxdecimal.Register(c.TypeMap())
		return nil
	}
	return poolCfg, nil
}

// lookupIPv4 resuelve solo registros A; los literales IPv4 pasan sin consulta.
func lookupIPv4(ctx context.Context, host string) ([]string, error) {
	if ip := net.ParseIP(host); ip != nil {
		if ip.To4() == nil {
			return nil, fmt.Errorf("DB_FORCE_IPV4: %s es IPv6", host)
		}
		return []string{host}, nil
	}
	ips, err := net.DefaultResolver.LookupIP(ctx, "ip4", host)
	if err != nil {
		return nil, err
	}
	out := make([]string, 0, len(ips))
	for _, ip := range ips {
		out = append(out, ip.String())
	}
	return out, nil
}

func dialIPv4(ctx context.Context, _, addr string) (net.Conn, error) {
	var d net.Dialer
	return d.DialContext(ctx, "tcp4", addr)
}
