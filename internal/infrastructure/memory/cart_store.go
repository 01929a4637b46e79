package memory

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/jhoicas/pos-ledger/internal/domain"
	"github.com/jhoicas/pos-ledger/internal/domain/ledger"
	"github.com/jhoicas/pos-ledger/internal/domain/repository"
)

var _ repository.CartStore = (*CartStore)(nil)

// CartStore carritos por operador en memoria del proceso. Se guardan serializados
// para que ningún llamador comparta slices con el store.
type CartStore struct {
	mu     sync.Mutex
	carts  map[string][]byte
	locked map[string]bool
}

// NewCartStore crea el store vacío.
func NewCartStore() *CartStore {
	return &CartStore{carts: map[string][]byte{}, locked: map[string]bool{}}
}

func cartKey(owner string, kind ledger.CartKind) string {
	return string(kind) + ":" + owner
}

// Get devuelve el carrito del operador o uno vacío.
func (s *CartStore) Get(_ context.Context, owner string, kind ledger.CartKind) (*ledger.Cart, error) {
	s.mu.Lock()
	raw, ok := s.carts[cartKey(owner, kind)]
	s.mu.Unlock()
	if !ok {
		return emptyCart(kind), nil
	}
	var c ledger.Cart
	if err := json.Unmarshal(raw, &c); err != nil {
		return nil, fmt.Errorf("decode cart: %w", err)
	}
	return &c, nil
}

// Save reemplaza el carrito; uno vacío se elimina.
func (s *CartStore) Save(ctx context.Context, owner string, cart *ledger.Cart) error {
	if cart.IsEmpty() {
		return s.Delete(ctx, owner, cart.Kind)
	}
	raw, err := json.Marshal(cart)
	if err != nil {
		return fmt.Errorf("encode cart: %w", err)
	}
	s.mu.Lock()
	s.carts[cartKey(owner, cart.Kind)] = raw
	s.mu.Unlock()
	return nil
}

// Delete elimina el carrito.
func (s *CartStore) Delete(_ context.Context, owner string, kind ledger.CartKind) error {
	s.mu.Lock()
	delete(s.carts, cartKey(owner, kind))
	s.mu.Unlock()
	return nil
}

// Lock falla con ErrCartBusy si otra confirmación del mismo carrito está en curso.
func (s *CartStore) Lock(_ context.Context, owner string, kind ledger.CartKind) (func(), error) {
	key := cartKey(owner, kind)
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.locked[key] {
		return nil, domain.ErrCartBusy
	}
	s.locked[key] = true
	return func() {
		s.mu.Lock()
		delete(s.locked, key)
		s.mu.Unlock()
	}, nil
}

func emptyCart(kind ledger.CartKind) *ledger.Cart {
	if kind == ledger.CartPurchase {
		return ledger.NewPurchaseCart()
	}
	return ledger.NewSaleCart()
}
