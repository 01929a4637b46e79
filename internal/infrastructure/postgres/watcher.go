package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/pos-ledger/internal/domain/repository"
	"github.com/jhoicas/pos-ledger/pkg/logger"
)

// ChangeChannel canal NOTIFY emitido por los triggers de migrations/001_schema.sql.
const ChangeChannel = "ledger_changes"

var _ repository.ChangeFeed = (*Watcher)(nil)

// Watcher escucha LISTEN ledger_changes en una conexión dedicada del pool y avisa
// cada vez que otra terminal (o este mismo proceso) modifica una colección.
type Watcher struct {
	pool    *pgxpool.Pool
	log     *logger.Logger
	backoff time.Duration
}

// NewWatcher construye el watcher.
func NewWatcher(pool *pgxpool.Pool, log *logger.Logger) *Watcher {
	if log == nil {
		log = logger.Nop()
	}
	return &Watcher{pool: pool, log: log, backoff: 2 * time.Second}
}

// Watch bloquea hasta que ctx se cancela, reconectando si la conexión se pierde.
func (w *Watcher) Watch(ctx context.Context, onChange func()) error {
	for {
		err := w.listen(ctx, onChange)
		if ctx.Err() != nil {
			return nil
		}
		w.log.Warn().Err(err).Dur("retry_in", w.backoff).Msg("listener de cambios caído, reintentando")
		select {
		case <-ctx.Done():
			return nil
		case <-time.After(w.backoff):
		}
	}
}

func (w *Watcher) listen(ctx context.Context, onChange func()) error {
	conn, err := w.pool.Acquire(ctx)
	if err != nil {
		return fmt.Errorf("acquire listener conn: %w", err)
	}
	defer conn.Release()

	if _, err := conn.Exec(ctx, "LISTEN "+ChangeChannel); err != nil {
		return fmt.Errorf("listen: %w", err)
	}
	w.log.Info().Str("channel", ChangeChannel).Msg("escuchando cambios del store")
	// refresco inicial por si hubo cambios mientras no escuchábamos
	onChange()

	for {
		n, err := conn.Conn().WaitForNotification(ctx)
		if err != nil {
			return fmt.Errorf("wait notification: %w", err)
		}
		w.log.Debug().Str("table", n.Payload).Msg("cambio notificado")
		onChange()
	}
}
