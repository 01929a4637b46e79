package repository

import (
	"context"

	"github.com/jhoicas/pos-ledger/internal/domain/entity"
	"github.com/jhoicas/pos-ledger/internal/domain/ledger"
)

// SnapshotRepository entrega una copia consistente de todas las colecciones.
type SnapshotRepository interface {
	Load(ctx context.Context) (*entity.Snapshot, error)
}

// ChangeFeed notifica cambios en el store externo. Watch bloquea hasta que ctx se cancela.
type ChangeFeed interface {
	Watch(ctx context.Context, onChange func()) error
}

// IntentApplier aplica las mutaciones emitidas por el motor, una por una.
// No hay rollback: si un intent falla, los anteriores ya quedaron aplicados.
type IntentApplier interface {
	Apply(ctx context.Context, intents ...ledger.Intent) error
}

// CartStore guarda el carrito en curso de cada operador.
// Get devuelve un carrito vacío del tipo pedido si no existe.
type CartStore interface {
	Get(ctx context.Context, owner string, kind ledger.CartKind) (*ledger.Cart, error)
	Save(ctx context.Context, owner string, cart *ledger.Cart) error
	Delete(ctx context.Context, owner string, kind ledger.CartKind) error
	// Lock serializa la confirmación de un carrito (doble clic, dos pestañas del mismo operador).
	Lock(ctx context.Context, owner string, kind ledger.CartKind) (unlock func(), err error)
}
