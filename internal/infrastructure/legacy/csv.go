package legacy

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"github.com/jhoicas/pos-ledger/internal/domain"
	"github.com/jhoicas/pos-ledger/internal/domain/entity"
	"github.com/jhoicas/pos-ledger/internal/domain/ledger"
)

// Encodings admitidos para planillas guardadas desde Excel.
var encodings = map[string]encoding.Encoding{
	"utf-8":        unicode.UTF8,
	"windows-1252": charmap.Windows1252,
	"windows-1256": charmap.Windows1256,
	"iso-8859-1":   charmap.ISO8859_1,
}

// Decoder envuelve r con el decodificador del charset indicado (vacío = utf-8).
func Decoder(r io.Reader, charset string) (io.Reader, error) {
	name := strings.ToLower(strings.TrimSpace(charset))
	if name == "" {
		name = "utf-8"
	}
	enc, ok := encodings[name]
	if !ok {
		return nil, domain.NewValidationError(domain.ErrInvalidInput, "charset no soportado: %s", charset)
	}
	// BOM de Excel en UTF-8
	if name == "utf-8" {
		return transform.NewReader(r, unicode.BOMOverride(unicode.UTF8.NewDecoder())), nil
	}
	return transform.NewReader(r, enc.NewDecoder()), nil
}

// ParseProductsCSV lee una planilla con encabezados; las columnas se reconocen por nombre
// (id, name, barcode, sku, category, brand, costPrice|cost, salePrice|price, stockQty|qty,
// minStockAlert|minStock). Filas sin nombre se omiten.
func ParseProductsCSV(r io.Reader, charset string) ([]entity.Product, error) {
	in, err := Decoder(r, charset)
	if err != nil {
		return nil, err
	}
	cr := csv.NewReader(in)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, domain.NewValidationError(domain.ErrInvalidInput, "la planilla está vacía")
		}
		return nil, fmt.Errorf("leer encabezado: %w", err)
	}
	cols := make([]string, len(header))
	for i, h := range header {
		cols[i] = strings.TrimSpace(h)
	}

	var out []entity.Product
	line := 1
	for {
		row, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		line++
		if err != nil {
			return nil, fmt.Errorf("fila %d: %w", line, err)
		}
		rec := ledger.Record{}
		for i, v := range row {
			if i < len(cols) && cols[i] != "" {
				rec[cols[i]] = v
			}
		}
		if strings.TrimSpace(ledger.CoerceString(rec["name"])) == "" {
			continue
		}
		out = append(out, ledger.NormalizeProduct(fmt.Sprintf("csv-%d", line), rec))
	}
	return out, nil
}
