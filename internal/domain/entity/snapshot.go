package entity

import "time"

// Snapshot copia de solo lectura de todas las colecciones en un instante dado.
// Se reemplaza completa en cada refresco; nunca se modifica en sitio.
type Snapshot struct {
	Products  []Product
	Sales     []Sale
	Repairs   []RepairTicket
	Expenses  []Expense
	Purchases []Purchase
	TakenAt   time.Time
}

// ProductByID busca un producto del catálogo por ID.
func (s *Snapshot) ProductByID(id string) (Product, bool) {
	for _, p := range s.Products {
		if p.ID == id {
			return p, true
		}
	}
	return Product{}, false
}

// ProductByBarcode busca el primer producto con el código de barras dado.
func (s *Snapshot) ProductByBarcode(barcode string) (Product, bool) {
	if barcode == "" {
		return Product{}, false
	}
	for _, p := range s.Products {
		if p.Barcode == barcode {
			return p, true
		}
	}
	return Product{}, false
}
