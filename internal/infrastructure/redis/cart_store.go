// Package redis guarda los carritos en curso en Redis para que cualquier terminal del
// mismo operador vea el mismo carrito.
package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/bsm/redislock"
	goredis "github.com/redis/go-redis/v9"

	"github.com/jhoicas/pos-ledger/internal/domain"
	"github.com/jhoicas/pos-ledger/internal/domain/ledger"
	"github.com/jhoicas/pos-ledger/internal/domain/repository"
	"github.com/jhoicas/pos-ledger/pkg/config"
)

var _ repository.CartStore = (*CartStore)(nil)

const keyPrefix = "pos:cart:"

// lockTTL tiempo máximo que una confirmación puede retener el carrito.
const lockTTL = 30 * time.Second

// CartStore carritos serializados en JSON con expiración (carritos abandonados).
type CartStore struct {
	rdb    *goredis.Client
	locker *redislock.Client
	ttl    time.Duration
}

// NewClient abre el cliente y verifica la conexión.
func NewClient(ctx context.Context, cfg config.RedisConfig) (*goredis.Client, error) {
	rdb := goredis.NewClient(&goredis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("ping redis %s: %w", cfg.Addr, err)
	}
	return rdb, nil
}

// NewCartStore construye el store sobre un cliente ya conectado.
func NewCartStore(rdb *goredis.Client, ttl time.Duration) *CartStore {
	if ttl <= 0 {
		ttl = 12 * time.Hour
	}
	return &CartStore{rdb: rdb, locker: redislock.New(rdb), ttl: ttl}
}

// Key clave Redis del carrito de un operador.
func Key(owner string, kind ledger.CartKind) string {
	return keyPrefix + string(kind) + ":" + owner
}

// Get devuelve el carrito o uno vacío si no existe o expiró.
func (s *CartStore) Get(ctx context.Context, owner string, kind ledger.CartKind) (*ledger.Cart, error) {
	raw, err := s.rdb.Get(ctx, Key(owner, kind)).Bytes()
	if errors.Is(err, goredis.Nil) {
		if kind == ledger.CartPurchase {
			return ledger.NewPurchaseCart(), nil
		}
		return ledger.NewSaleCart(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("redis get cart: %w", err)
	}
	var c ledger.Cart
	if err := json.Unmarshal(raw, &c); err != nil {
		return nil, fmt.Errorf("decode cart: %w", err)
	}
	return &c, nil
}

// Save reemplaza el carrito y renueva su expiración; uno vacío se elimina.
func (s *CartStore) Save(ctx context.Context, owner string, cart *ledger.Cart) error {
	if cart.IsEmpty() {
		return s.Delete(ctx, owner, cart.Kind)
	}
	raw, err := json.Marshal(cart)
	if err != nil {
		return fmt.Errorf("encode cart: %w", err)
	}
	if err := s.rdb.Set(ctx, Key(owner, cart.Kind), raw, s.ttl).Err(); err != nil {
		return fmt.Errorf("redis set cart: %w", err)
	}
	return nil
}

// Delete elimina el carrito.
func (s *CartStore) Delete(ctx context.Context, owner string, kind ledger.CartKind) error {
	if err := s.rdb.Del(ctx, Key(owner, kind)).Err(); err != nil {
		return fmt.Errorf("redis del cart: %w", err)
	}
	return nil
}

// Lock toma un candado distribuido sobre el carrito; ErrCartBusy si ya está tomado.
func (s *CartStore) Lock(ctx context.Context, owner string, kind ledger.CartKind) (func(), error) {
	lock, err := s.locker.Obtain(ctx, "lock:"+Key(owner, kind), lockTTL, nil)
	if errors.Is(err, redislock.ErrNotObtained) {
		return nil, domain.ErrCartBusy
	}
	if err != nil {
		return nil, fmt.Errorf("redis lock cart: %w", err)
	}
	return func() {
		// contexto propio: el del request puede estar cancelado al liberar
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		_ = lock.Release(ctx)
	}, nil
}
