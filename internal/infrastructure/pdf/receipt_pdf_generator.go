// Package pdf implementa la exportación del recibo de venta a PDF.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Tienda  │  N° Transacción + Fecha                  │
//	│  ─────────────────────────────────────────────────────────  │
//	│  CLIENTE (si hay): Nombre + Nivel                           │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Cant | Artículo | P.Unit | Desc | Subtotal          │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTALES: Subtotal / Descuentos / Impuesto / TOTAL          │
//	│  ─────────────────────────────────────────────────────────  │
//	│  FOOTER: método de pago + leyenda                           │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"

	"github.com/tu-usuario/pos-tienda/internal/domain/entity"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoReceiptGenerator implementa sales.ReceiptPDFGenerator usando Maroto v2.
type MarotoReceiptGenerator struct{}

// NewMarotoReceiptGenerator construye el generador.
func NewMarotoReceiptGenerator() *MarotoReceiptGenerator { return &MarotoReceiptGenerator{} }

// GenerateReceiptPDF genera el PDF del recibo y devuelve sus bytes.
func (g *MarotoReceiptGenerator) GenerateReceiptPDF(tx *entity.Transaction, storeName string) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Recibo de venta "+tx.ID, true).
		WithAuthor(storeName, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(tx, storeName))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	if tx.Customer != nil {
		m.AddRows(customerRow(tx.Customer))
		m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	}

	m.AddRows(tableHeaderRow())
	for i := range tx.Lines {
		m.AddRows(lineRow(&tx.Lines[i]))
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	for _, r := range totalsRows(tx) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(3))
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(footerRow(tx))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: tienda (izq) y N° de transacción + fecha (der).
func headerRow(tx *entity.Transaction, storeName string) core.Row {
	return row.New(18).Add(
		col.New(7).Add(
			text.New(storeName, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Cajero: "+tx.CashierID, props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("RECIBO DE VENTA", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New(tx.ID, props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Right, Top: 7,
			}),
			text.New("Fecha: "+tx.CreatedAt.Format("02/01/2006 15:04"), props.Text{
				Size: 8, Align: align.Right, Top: 14, Color: colorGray,
			}),
		),
	)
}

// customerRow: datos del cliente asociado.
func customerRow(c *entity.Customer) core.Row {
	return row.New(12).Add(
		col.New(12).Add(
			text.New("CLIENTE", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(fmt.Sprintf("%s   |   Nivel: %s   |   Puntos: %s",
				c.FullName(), c.Tier, c.LoyaltyPoints.StringFixed(2),
			), props.Text{Size: 9, Top: 7}),
		),
	)
}

// tableHeaderRow: cabecera de la tabla de líneas.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Cant", 2, align.Left),
		h("Artículo", 5, align.Left),
		h("P.Unit", 2, align.Right),
		h("Desc", 1, align.Right),
		h("Subtotal", 2, align.Right),
	)
}

// lineRow: una línea de venta en la tabla.
func lineRow(l *entity.TransactionLine) core.Row {
	qty := l.Quantity.String()
	if l.Product.Type == entity.ProductTypeBulk && l.Product.Unit != "" {
		qty += " " + l.Product.Unit
	}
	disc := "-"
	if l.Discount.GreaterThan(decimal.Zero) {
		disc = l.Discount.Mul(decimal.NewFromInt(100)).StringFixed(0) + "%"
	}
	cell := func(value string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(value, props.Text{
			Size: 8, Align: a, Top: 1, Left: 1, Right: 1,
		}))
	}
	return row.New(6).Add(
		cell(qty, 2, align.Left),
		cell(l.Product.Name, 5, align.Left),
		cell("$"+l.UnitPrice.StringFixed(2), 2, align.Right),
		cell(disc, 1, align.Right),
		cell("$"+l.Subtotal.StringFixed(2), 2, align.Right),
	)
}

// totalsRows: bloque de totales alineado a la derecha.
func totalsRows(tx *entity.Transaction) []core.Row {
	entry := func(label, value string, bold bool) core.Row {
		style := fontstyle.Normal
		size := 9.0
		if bold {
			style = fontstyle.Bold
			size = 11
		}
		return row.New(6).Add(
			col.New(8).Add(text.New(label, props.Text{
				Size: size, Align: align.Right, Style: style, Top: 1,
			})),
			col.New(4).Add(text.New(value, props.Text{
				Size: size, Align: align.Right, Style: style, Top: 1,
			})),
		)
	}

	rows := []core.Row{
		entry("Subtotal", "$"+tx.Subtotal.StringFixed(2), false),
	}
	if tx.TotalDiscount.GreaterThan(decimal.Zero) {
		rows = append(rows, entry("Descuentos", "-$"+tx.TotalDiscount.StringFixed(2), false))
	}
	if tx.LoyaltyPointsUsed.GreaterThan(decimal.Zero) {
		rows = append(rows, entry("Puntos usados", "-$"+tx.LoyaltyPointsUsed.StringFixed(2), false))
	}
	rows = append(rows,
		entry("Impuesto", "$"+tx.Tax.StringFixed(2), false),
		entry("TOTAL", "$"+tx.FinalTotal.StringFixed(2), true),
	)
	return rows
}

// footerRow: método de pago y leyenda.
func footerRow(tx *entity.Transaction) core.Row {
	return row.New(12).Add(
		col.New(12).Add(
			text.New(fmt.Sprintf("Método de pago: %s   |   Estado: %s",
				tx.PaymentMethod.Label(), tx.Status.Label(),
			), props.Text{Size: 8, Top: 1, Color: colorGray}),
			text.New("¡Gracias por su compra!", props.Text{
				Size: 9, Top: 7, Align: align.Center, Style: fontstyle.Bold, Color: colorPrimary,
			}),
		),
	)
}
