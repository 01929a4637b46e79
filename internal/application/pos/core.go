package pos

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/ttacon/libphonenumber"

	"github.com/jhoicas/pos-ledger/internal/domain/entity"
	"github.com/jhoicas/pos-ledger/internal/domain/ledger"
	"github.com/jhoicas/pos-ledger/internal/domain/repository"
	"github.com/jhoicas/pos-ledger/pkg/logger"
)

// Core dependencias compartidas por los casos de uso.
type Core struct {
	Snapshots *SnapshotHolder
	Applier   repository.IntentApplier
	Log       *logger.Logger
	Clock     ledger.Clock       // nil = time.Now
	IDs       ledger.IDGenerator // nil = UUID
	Region    string             // región por defecto para teléfonos de clientes
}

func (c Core) now() time.Time {
	if c.Clock != nil {
		return c.Clock()
	}
	return time.Now()
}

func (c Core) logger() *logger.Logger {
	if c.Log == nil {
		return logger.Nop()
	}
	return c.Log
}

func (c Core) snapshot() *entity.Snapshot {
	return c.Snapshots.Current()
}

// apply envía los intents al store y refresca el snapshot. Si un intent falla, los
// anteriores ya quedaron aplicados; se registra para revisión manual y se devuelve el error.
func (c Core) apply(ctx context.Context, op string, intents []ledger.Intent) error {
	log := c.logger()
	if err := c.Applier.Apply(ctx, intents...); err != nil {
		log.Error().Err(err).Str("op", op).Int("intents", len(intents)).Msg("aplicación de intents incompleta")
		if rErr := c.Snapshots.Refresh(ctx); rErr != nil {
			log.Warn().Err(rErr).Str("op", op).Msg("no se pudo refrescar el snapshot")
		}
		return fmt.Errorf("%s: %w", op, err)
	}
	log.Info().Str("op", op).Int("intents", len(intents)).Msg("intents aplicados")
	if err := c.Snapshots.Refresh(ctx); err != nil {
		// el watcher volverá a intentarlo
		log.Warn().Err(err).Str("op", op).Msg("no se pudo refrescar el snapshot")
	}
	return nil
}

// NormalizePhone lleva un teléfono a formato E.164 según la región. Si no se puede
// interpretar se conserva el texto original: el teléfono es un dato informativo.
func NormalizePhone(raw, region string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" || region == "" {
		return raw
	}
	num, err := libphonenumber.Parse(raw, strings.ToUpper(region))
	if err != nil || !libphonenumber.IsValidNumber(num) {
		return raw
	}
	return libphonenumber.Format(num, libphonenumber.E164)
}
