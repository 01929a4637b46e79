// Package memory implementa los puertos de persistencia en memoria (desarrollo, demos y tests).
package memory

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/jhoicas/pos-ledger/internal/domain"
	"github.com/jhoicas/pos-ledger/internal/domain/entity"
	"github.com/jhoicas/pos-ledger/internal/domain/ledger"
	"github.com/jhoicas/pos-ledger/internal/domain/repository"
)

var (
	_ repository.SnapshotRepository = (*Store)(nil)
	_ repository.IntentApplier      = (*Store)(nil)
	_ repository.ChangeFeed         = (*Store)(nil)
)

// Store guarda las cinco colecciones detrás de un RWMutex y notifica a los suscriptores
// después de cada Apply.
type Store struct {
	mu        sync.RWMutex
	products  []entity.Product
	sales     []entity.Sale
	repairs   []entity.RepairTicket
	expenses  []entity.Expense
	purchases []entity.Purchase

	subMu sync.Mutex
	subs  map[int]chan struct{}
	next  int

	// FailOn hace fallar Apply al llegar a un intent de ese tipo (tests de fallas parciales).
	FailOn string
}

// NewStore crea un store vacío.
func NewStore() *Store {
	return &Store{subs: map[int]chan struct{}{}}
}

// NewStoreFromSnapshot crea un store precargado (semilla o exportación heredada).
func NewStoreFromSnapshot(s *entity.Snapshot) *Store {
	st := NewStore()
	if s != nil {
		st.products = append(st.products, s.Products...)
		st.sales = append(st.sales, s.Sales...)
		st.repairs = append(st.repairs, s.Repairs...)
		st.expenses = append(st.expenses, s.Expenses...)
		st.purchases = append(st.purchases, s.Purchases...)
	}
	return st
}

// Load devuelve una copia; modificarla no afecta al store.
func (s *Store) Load(_ context.Context) (*entity.Snapshot, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return &entity.Snapshot{
		Products:  append([]entity.Product(nil), s.products...),
		Sales:     append([]entity.Sale(nil), s.sales...),
		Repairs:   append([]entity.RepairTicket(nil), s.repairs...),
		Expenses:  append([]entity.Expense(nil), s.expenses...),
		Purchases: append([]entity.Purchase(nil), s.purchases...),
		TakenAt:   time.Now(),
	}, nil
}

// Apply aplica los intents en orden; se detiene en el primer error sin deshacer los anteriores.
func (s *Store) Apply(_ context.Context, intents ...ledger.Intent) error {
	applied := 0
	s.mu.Lock()
	var err error
	for i, in := range intents {
		if err = s.apply(in); err != nil {
			err = fmt.Errorf("intent %d/%d (%s): %w", i+1, len(intents), in.Kind(), err)
			break
		}
		applied++
	}
	s.mu.Unlock()
	if applied > 0 {
		s.notify()
	}
	return err
}

func (s *Store) apply(in ledger.Intent) error {
	if s.FailOn != "" && in.Kind() == s.FailOn {
		return fmt.Errorf("falla simulada")
	}
	switch v := in.(type) {
	case ledger.CreateSale:
		s.sales = append(s.sales, v.Sale)
	case ledger.CreatePurchase:
		s.purchases = append(s.purchases, v.Purchase)
	case ledger.CreateExpense:
		s.expenses = append(s.expenses, v.Expense)
	case ledger.UpdateProductStock:
		i := s.productIndex(v.ProductID)
		if i < 0 {
			return domain.ErrNotFound
		}
		s.products[i].StockQty += v.Delta
		s.products[i].UpdatedAt = time.Now()
	case ledger.UpdateProductCost:
		i := s.productIndex(v.ProductID)
		if i < 0 {
			return domain.ErrNotFound
		}
		s.products[i].CostPrice = v.CostPrice
		s.products[i].UpdatedAt = time.Now()
	case ledger.CreateProduct:
		if s.productIndex(v.Product.ID) >= 0 {
			return domain.ErrDuplicate
		}
		s.products = append(s.products, v.Product)
	case ledger.UpdateProduct:
		i := s.productIndex(v.Product.ID)
		if i < 0 {
			return domain.ErrNotFound
		}
		// el stock solo cambia vía UpdateProductStock
		p := v.Product
		p.StockQty = s.products[i].StockQty
		p.CreatedAt = s.products[i].CreatedAt
		s.products[i] = p
	case ledger.DeleteProduct:
		i := s.productIndex(v.ProductID)
		if i < 0 {
			return domain.ErrNotFound
		}
		s.products = append(s.products[:i:i], s.products[i+1:]...)
	case ledger.UpsertRepairTicket:
		for i := range s.repairs {
			if s.repairs[i].ID == v.Ticket.ID {
				s.repairs[i] = v.Ticket
				return nil
			}
		}
		s.repairs = append(s.repairs, v.Ticket)
	default:
		return fmt.Errorf("intent no soportado: %T", in)
	}
	return nil
}

func (s *Store) productIndex(id string) int {
	for i := range s.products {
		if s.products[i].ID == id {
			return i
		}
	}
	return -1
}

// Watch llama a onChange después de cada Apply exitoso hasta que ctx se cancela.
func (s *Store) Watch(ctx context.Context, onChange func()) error {
	ch := make(chan struct{}, 1)
	s.subMu.Lock()
	id := s.next
	s.next++
	s.subs[id] = ch
	s.subMu.Unlock()
	defer func() {
		s.subMu.Lock()
		delete(s.subs, id)
		s.subMu.Unlock()
	}()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ch:
			onChange()
		}
	}
}

func (s *Store) notify() {
	s.subMu.Lock()
	defer s.subMu.Unlock()
	for _, ch := range s.subs {
		select {
		case ch <- struct{}{}:
		default:
		}
	}
}
