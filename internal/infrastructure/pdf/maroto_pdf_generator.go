// Package pdf genera los recibos de venta, los tickets de reparación y el reporte
// financiero del período con Maroto v2.
//
// Layout del recibo A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  LOGO + Tienda / Dirección / Tel  │  N° Documento + Fecha    │
//	│  ─────────────────────────────────────────────────────────  │
//	│  CLIENTE: Nombre + teléfono                                  │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Cant | Descripción | P.Unit | Total                  │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTALES                                                     │
//	│  ─────────────────────────────────────────────────────────  │
//	│  PIE: mensaje de la tienda                                   │
//	└─────────────────────────────────────────────────────────────┘
//
// El modo POS usa el mismo contenido en una sola columna para rollo térmico de 80 mm.
package pdf

import (
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/image"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/extension"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/jhoicas/pos-ledger/internal/application/pos"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorWhite   = &props.Color{Red: 255, Green: 255, Blue: 255}
)

// Ancho y alto del rollo térmico en mm.
const (
	rollWidth  = 80
	rollHeight = 297
)

// Shop datos de la tienda impresos en cada documento.
type Shop struct {
	Name     string
	Address  string
	Phone    string
	Currency string // símbolo antepuesto a los montos
	Footer   string
	Locale   string // etiqueta BCP 47 para separadores de miles (es-CO, ar-EG, en)
}

// ── Generator ─────────────────────────────────────────────────────────────────

var _ pos.DocumentRenderer = (*MarotoPDFGenerator)(nil)

// MarotoPDFGenerator implementa pos.DocumentRenderer usando Maroto v2.
type MarotoPDFGenerator struct {
	shop  Shop
	logo  []byte // PNG ya escalado; nil = sin logo
	money *moneyFormatter
}

// NewMarotoPDFGenerator construye el generador. logo puede ser nil (ver LoadLogo).
func NewMarotoPDFGenerator(shop Shop, logo []byte) *MarotoPDFGenerator {
	return &MarotoPDFGenerator{shop: shop, logo: logo, money: newMoneyFormatter(shop.Locale, shop.Currency)}
}

// newDocument crea el documento en A4 o en rollo de 80 mm.
func (g *MarotoPDFGenerator) newDocument(title string, mode pos.ReceiptMode) core.Maroto {
	b := config.NewBuilder().
		WithTitle(title, true).
		WithAuthor(g.shop.Name, true)
	if mode == pos.ModePOS {
		b = b.WithDimensions(rollWidth, rollHeight).
			WithLeftMargin(3).WithRightMargin(3).
			WithTopMargin(3).WithBottomMargin(3).
			WithDefaultFont(&props.Font{Family: "helvetica", Size: 7})
	} else {
		b = b.WithPageSize(pagesize.A4).
			WithLeftMargin(10).WithRightMargin(10).
			WithTopMargin(10).WithBottomMargin(10).
			WithDefaultFont(&props.Font{Family: "helvetica", Size: 9})
	}
	return maroto.New(b.Build())
}

func generate(m core.Maroto) ([]byte, error) {
	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones comunes ─────────────────────────────────────────────────────────

// headerRow: logo + datos de la tienda (izq) y título + número + fecha (der).
func (g *MarotoPDFGenerator) headerRow(title, number, date string) core.Row {
	shop := []core.Component{
		text.New(g.shop.Name, props.Text{Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1}),
		text.New(nonEmpty(g.shop.Address, "—"), props.Text{Size: 8, Top: 8, Color: colorGray}),
		text.New("Tel: "+nonEmpty(g.shop.Phone, "—"), props.Text{Size: 8, Top: 12, Color: colorGray}),
	}
	doc := col.New(5).Add(
		text.New(title, props.Text{Style: fontstyle.Bold, Size: 8, Align: align.Right, Color: colorPrimary, Top: 1}),
		text.New(number, props.Text{Style: fontstyle.Bold, Size: 12, Align: align.Right, Top: 7}),
		text.New("Fecha: "+date, props.Text{Size: 8, Align: align.Right, Top: 14, Color: colorGray}),
	)
	if g.logo == nil {
		return row.New(18).Add(col.New(7).Add(shop...), doc)
	}
	return row.New(20).Add(
		col.New(2).Add(image.NewFromBytes(g.logo, extension.Png, props.Rect{Percent: 90, Center: true})),
		col.New(5).Add(shop...),
		doc,
	)
}

// rollHeaderRows: encabezado centrado para el rollo térmico.
func (g *MarotoPDFGenerator) rollHeaderRows(title, number, date string) []core.Row {
	var rows []core.Row
	if g.logo != nil {
		rows = append(rows, row.New(18).Add(col.New(12).Add(
			image.NewFromBytes(g.logo, extension.Png, props.Rect{Percent: 80, Center: true}),
		)))
	}
	center := func(s string, size float64, bold bool) core.Row {
		p := props.Text{Size: size, Align: align.Center, Top: 0.5}
		if bold {
			p.Style = fontstyle.Bold
		}
		return row.New(size/2 + 1).Add(col.New(12).Add(text.New(s, p)))
	}
	rows = append(rows,
		center(g.shop.Name, 10, true),
		center(g.shop.Address, 7, false),
		center("Tel: "+nonEmpty(g.shop.Phone, "—"), 7, false),
		line.NewRow(2, props.Line{Color: colorGray, Thickness: 0.2}),
		center(title+" "+number, 8, true),
		center(date, 7, false),
	)
	return rows
}

// partyRow: bloque de datos del cliente.
func partyRow(label, name, detail string) core.Row {
	return row.New(14).Add(
		col.New(12).Add(
			text.New(label, props.Text{Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1}),
			text.New(name, props.Text{Style: fontstyle.Bold, Size: 10, Top: 6}),
			text.New(detail, props.Text{Size: 8, Top: 11, Color: colorGray}),
		),
	)
}

// itemLine fila de la tabla de detalle.
type itemLine struct {
	Qty   int
	Name  string
	Price string
	Total string
}

// tableHeaderRow: cabecera de la tabla de detalles.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorWhite, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Cant.", 1, align.Center),
		h("Descripción", 6, align.Left),
		h("Precio Unit.", 2, align.Right),
		h("Total", 3, align.Right),
	).WithStyle(&props.Cell{BackgroundColor: colorPrimary})
}

// tableDetailRows: una fila por línea de detalle.
func tableDetailRows(items []itemLine) []core.Row {
	result := make([]core.Row, 0, len(items))
	for _, it := range items {
		result = append(result, row.New(7).Add(
			col.New(1).Add(text.New(fmt.Sprint(it.Qty), props.Text{Size: 8, Align: align.Center, Top: 1})),
			col.New(6).Add(text.New(it.Name, props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1})),
			col.New(2).Add(text.New(it.Price, props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
			col.New(3).Add(text.New(it.Total, props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
		))
	}
	return result
}

// rollItemRows: en el rollo cada línea ocupa dos renglones (nombre, cantidad × precio = total).
func rollItemRows(items []itemLine) []core.Row {
	result := make([]core.Row, 0, 2*len(items))
	for _, it := range items {
		result = append(result,
			row.New(4).Add(col.New(12).Add(text.New(it.Name, props.Text{Size: 7, Style: fontstyle.Bold}))),
			row.New(4).Add(
				col.New(7).Add(text.New(fmt.Sprintf("%d x %s", it.Qty, it.Price), props.Text{Size: 7})),
				col.New(5).Add(text.New(it.Total, props.Text{Size: 7, Align: align.Right})),
			),
		)
	}
	return result
}

// totalRows: pares etiqueta/valor alineados a la derecha; el último se destaca.
func totalRows(pairs [][2]string, roll bool) []core.Row {
	rows := make([]core.Row, 0, len(pairs))
	for i, p := range pairs {
		last := i == len(pairs)-1
		lp := props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 2}
		vp := props.Text{Size: 9, Align: align.Right, Right: 1}
		if last {
			lp.Size, lp.Color = 10, colorPrimary
			vp.Size, vp.Color, vp.Style = 10, colorPrimary, fontstyle.Bold
		}
		if roll {
			lp.Size, vp.Size = lp.Size-2, vp.Size-2
			rows = append(rows, row.New(5).Add(
				col.New(7).Add(text.New(p[0], lp)),
				col.New(5).Add(text.New(p[1], vp)),
			))
			continue
		}
		rows = append(rows, row.New(6).Add(
			col.New(6),
			col.New(3).Add(text.New(p[0], lp)),
			col.New(3).Add(text.New(p[1], vp)),
		))
	}
	return rows
}

func (g *MarotoPDFGenerator) footerRow(roll bool) core.Row {
	size := 8.0
	if roll {
		size = 7
	}
	return row.New(8).Add(col.New(12).Add(
		text.New(g.shop.Footer, props.Text{Size: size, Align: align.Center, Color: colorGray, Top: 2}),
	))
}

// ── helpers ───────────────────────────────────────────────────────────────────

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}
