package ledger

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Clock fuente de tiempo inyectable (time.Now en producción).
type Clock func() time.Time

// IDGenerator genera identificadores aleatorios alfanuméricos.
type IDGenerator func() string

// NewID identificador aleatorio alfanumérico (uuid v4 sin guiones).
func NewID() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")
}

// DocumentNumber número visible de documento: prefijo + últimos 6 dígitos del epoch en milisegundos.
func DocumentNumber(prefix string, now time.Time) string {
	ms := fmt.Sprintf("%d", now.UnixMilli())
	if len(ms) > 6 {
		ms = ms[len(ms)-6:]
	}
	return prefix + "-" + ms
}

func orNow(c Clock) Clock {
	if c == nil {
		return time.Now
	}
	return c
}

func orNewID(g IDGenerator) IDGenerator {
	if g == nil {
		return NewID
	}
	return g
}
