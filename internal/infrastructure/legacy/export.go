// Package legacy lee los datos de la aplicación anterior (exportación JSON de la base en
// tiempo real y planillas CSV de productos) y los convierte en un entity.Snapshot normalizado.
package legacy

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"time"

	"github.com/jhoicas/pos-ledger/internal/domain"
	"github.com/jhoicas/pos-ledger/internal/domain/entity"
	"github.com/jhoicas/pos-ledger/internal/domain/ledger"
)

// Nombres de colección en la exportación. Las versiones _v2 tienen prioridad.
var (
	productKeys  = []string{"products"}
	saleKeys     = []string{"sales_v2", "sales"}
	expenseKeys  = []string{"expenses_v2", "expenses"}
	repairKeys   = []string{"repairs"}
	purchaseKeys = []string{"purchases"}
)

// ParseExport decodifica la exportación completa. Cada colección puede venir como objeto
// indexado por clave (orden cronológico de las claves push) o como arreglo.
func ParseExport(r io.Reader) (*entity.Snapshot, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("leer exportación: %w", err)
	}
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var root map[string]any
	if err := dec.Decode(&root); err != nil {
		return nil, domain.NewValidationError(domain.ErrInvalidInput, "exportación JSON inválida: %v", err)
	}

	snap := &entity.Snapshot{TakenAt: time.Now()}
	for _, e := range entries(root, productKeys) {
		snap.Products = append(snap.Products, ledger.NormalizeProduct(e.key, e.rec))
	}
	for _, e := range entries(root, saleKeys) {
		snap.Sales = append(snap.Sales, ledger.NormalizeSale(e.key, e.rec))
	}
	for _, e := range entries(root, expenseKeys) {
		snap.Expenses = append(snap.Expenses, ledger.NormalizeExpense(e.key, e.rec))
	}
	for _, e := range entries(root, repairKeys) {
		snap.Repairs = append(snap.Repairs, ledger.NormalizeRepair(e.key, e.rec))
	}
	for _, e := range entries(root, purchaseKeys) {
		snap.Purchases = append(snap.Purchases, ledger.NormalizePurchase(e.key, e.rec))
	}
	return snap, nil
}

type entry struct {
	key string
	rec ledger.Record
}

func entries(root map[string]any, keys []string) []entry {
	for _, k := range keys {
		v, ok := root[k]
		if !ok || v == nil {
			continue
		}
		switch x := v.(type) {
		case map[string]any:
			names := make([]string, 0, len(x))
			for name := range x {
				names = append(names, name)
			}
			sort.Strings(names)
			out := make([]entry, 0, len(names))
			for _, name := range names {
				if rec, ok := x[name].(map[string]any); ok {
					out = append(out, entry{key: name, rec: rec})
				}
			}
			return out
		case []any:
			out := make([]entry, 0, len(x))
			for i, item := range x {
				if rec, ok := item.(map[string]any); ok {
					out = append(out, entry{key: fmt.Sprintf("%s-%d", k, i), rec: rec})
				}
			}
			return out
		}
	}
	return nil
}
