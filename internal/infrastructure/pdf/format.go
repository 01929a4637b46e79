package pdf

import (
	"bytes"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/disintegration/imaging"
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// LogoWidth ancho en píxeles al que se escala el logo antes de incrustarlo.
const LogoWidth = 240

type moneyFormatter struct {
	p      *message.Printer
	symbol string
}

func newMoneyFormatter(locale, symbol string) *moneyFormatter {
	tag, err := language.Parse(locale)
	if err != nil || locale == "" {
		tag = language.Spanish
	}
	return &moneyFormatter{p: message.NewPrinter(tag), symbol: symbol}
}

// format monto con separadores de miles del locale y dos decimales.
func (f *moneyFormatter) format(d decimal.Decimal) string {
	return f.symbol + f.p.Sprintf("%.2f", d.Round(2).InexactFloat64())
}

func itoa(n int) string { return strconv.Itoa(n) }

// dateLabel fecha corta; vacío si el dato no existe.
func dateLabel(t time.Time) string {
	if t.IsZero() {
		return "—"
	}
	return t.Format("02/01/2006 15:04")
}

// LoadLogo lee la imagen del logo (PNG, JPEG, GIF, BMP, TIFF), la escala a LogoWidth
// conservando la proporción y la devuelve codificada en PNG.
func LoadLogo(path string) ([]byte, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("pdf: leer logo: %w", err)
	}
	img, err := imaging.Decode(bytes.NewReader(raw), imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("pdf: decodificar logo: %w", err)
	}
	if img.Bounds().Dx() > LogoWidth {
		img = imaging.Resize(img, LogoWidth, 0, imaging.Lanczos)
	}
	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.PNG); err != nil {
		return nil, fmt.Errorf("pdf: codificar logo: %w", err)
	}
	return buf.Bytes(), nil
}
