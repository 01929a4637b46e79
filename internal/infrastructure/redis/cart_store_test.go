package redis_test

import (
	"context"
	"testing"
	"time"

	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/pos-ledger/internal/domain/ledger"
	"github.com/jhoicas/pos-ledger/internal/infrastructure/redis"
	"github.com/jhoicas/pos-ledger/pkg/config"
)

func TestKey(t *testing.T) {
	assert.Equal(t, "pos:cart:sale:cajero", redis.Key("cajero", ledger.CartSale))
	assert.Equal(t, "pos:cart:purchase:admin", redis.Key("admin", ledger.CartPurchase))
}

func TestNewClient_SinServidor(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	_, err := redis.NewClient(ctx, config.RedisConfig{Addr: "127.0.0.1:1"})
	assert.Error(t, err, "sin servidor el ping debe fallar")
}

func TestCartStore_ErroresDeConexion(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	rdb := goredis.NewClient(&goredis.Options{Addr: "127.0.0.1:1", MaxRetries: -1})
	defer rdb.Close()
	cs := redis.NewCartStore(rdb, 0)

	_, err := cs.Get(ctx, "cajero", ledger.CartSale)
	assert.Error(t, err)

	c := ledger.NewSaleCart()
	assert.Error(t, cs.Delete(ctx, "cajero", c.Kind))

	_, err = cs.Lock(ctx, "cajero", ledger.CartSale)
	assert.Error(t, err)
}
