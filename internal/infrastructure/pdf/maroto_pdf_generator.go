// Package pdf genera el recibo imprimible de una orden cerrada.
//
// Layout de la página A5:
//
//	┌────────────────────────────────────────────┐
//	│  HEADER: nombre del café │ N° orden + fecha │
//	│  ─────────────────────────────────────────  │
//	│  Cliente / atendido por                     │
//	│  TABLA: Cant | Artículo | P.Unit | Subtotal │
//	│  ─────────────────────────────────────────  │
//	│  Subtotal / Descuento por puntos / TOTAL    │
//	│  FOOTER: puntos canjeados y ganados         │
//	└────────────────────────────────────────────┘
package pdf

import (
	"context"
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

	"github.com/jhoicas/cafe-pos-api/internal/application/orders"
	"github.com/jhoicas/cafe-pos-api/internal/domain/entity"
)

// Verificar en tiempo de compilación que implementa el puerto.
var _ orders.ReceiptPDFGenerator = (*MarotoPDFGenerator)(nil)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 93, Green: 64, Blue: 55} // marrón café
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

const cafeName = "Café POS"

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoPDFGenerator implementa orders.ReceiptPDFGenerator usando Maroto v2.
type MarotoPDFGenerator struct{}

// NewMarotoPDFGenerator construye el generador.
func NewMarotoPDFGenerator() *MarotoPDFGenerator { return &MarotoPDFGenerator{} }

// GenerateReceiptPDF genera el recibo y devuelve sus bytes. customer y
// servedBy pueden ser nil (cliente anónimo o usuario eliminado).
func (g *MarotoPDFGenerator) GenerateReceiptPDF(
	_ context.Context,
	order *entity.Order,
	customer *entity.Customer,
	servedBy *entity.User,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A5).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Recibo "+order.ID, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(order))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(partiesRow(customer, servedBy))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	for _, r := range tableItemRows(order.Items) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalsRows(order)...)

	if order.CustomerID != "" {
		m.AddRows(line.NewRow(2))
		m.AddRows(loyaltyFooterRow(order))
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar recibo: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: nombre del café (izq) y número de orden + fecha (der).
func headerRow(order *entity.Order) core.Row {
	fecha := order.Date.Format("02/01/2006 15:04")
	return row.New(16).Add(
		col.New(6).Add(
			text.New(cafeName, props.Text{
				Style: fontstyle.Bold, Size: 14, Color: colorPrimary, Top: 1,
			}),
			text.New("Recibo de venta", props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(6).Add(
			text.New("Orden "+order.ID, props.Text{
				Size: 8, Align: align.Right, Top: 2, Color: colorGray,
			}),
			text.New(fecha, props.Text{
				Size: 9, Align: align.Right, Top: 7,
			}),
		),
	)
}

// partiesRow: cliente (si hay) y quién atendió.
func partiesRow(customer *entity.Customer, servedBy *entity.User) core.Row {
	customerName := "Cliente de mostrador"
	if customer != nil {
		customerName = customer.Name
	}
	served := "—"
	if servedBy != nil {
		served = servedBy.Name
	}
	return row.New(8).Add(
		col.New(12).Add(
			text.New(fmt.Sprintf("Cliente: %s   |   Atendido por: %s", customerName, served), props.Text{
				Size: 8.5, Top: 2, Color: colorGray,
			}),
		),
	)
}

func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8.5, Align: a, Top: 1, Color: colorPrimary,
		}))
	}
	return row.New(7).Add(
		h("Cant", 2, align.Left),
		h("Artículo", 5, align.Left),
		h("P. Unit", 2, align.Right),
		h("Subtotal", 3, align.Right),
	)
}

func tableItemRows(items []entity.OrderItem) []core.Row {
	result := make([]core.Row, 0, len(items))
	for _, item := range items {
		result = append(result, row.New(6).Add(
			col.New(2).Add(text.New(
				fmt.Sprintf("%d", item.Quantity), props.Text{Size: 8.5, Top: 1})),
			col.New(5).Add(text.New(
				item.Name, props.Text{Size: 8.5, Top: 1})),
			col.New(2).Add(text.New(
				item.UnitPrice.StringFixed(2), props.Text{Size: 8.5, Top: 1, Align: align.Right})),
			col.New(3).Add(text.New(
				item.Subtotal().StringFixed(2), props.Text{Size: 8.5, Top: 1, Align: align.Right})),
		))
	}
	return result
}

func totalsRows(order *entity.Order) []core.Row {
	label := func(s string) core.Component {
		return text.New(s, props.Text{Size: 9, Align: align.Right, Color: colorGray})
	}
	value := func(s string) core.Component {
		return text.New(s, props.Text{Size: 9, Align: align.Right})
	}

	rows := []core.Row{
		row.New(6).Add(
			col.New(7),
			col.New(3).Add(label("Subtotal:")),
			col.New(2).Add(value(order.Subtotal.StringFixed(2)+" DH")),
		),
	}
	if discount := order.Subtotal.Sub(order.FinalAmount); discount.IsPositive() {
		rows = append(rows, row.New(6).Add(
			col.New(7),
			col.New(3).Add(label("Descuento puntos:")),
			col.New(2).Add(value("-"+discount.StringFixed(2)+" DH")),
		))
	}
	rows = append(rows, row.New(8).Add(
		col.New(7),
		col.New(3).Add(text.New("TOTAL:", props.Text{
			Style: fontstyle.Bold, Size: 11, Align: align.Right, Color: colorPrimary, Top: 1,
		})),
		col.New(2).Add(text.New(order.FinalAmount.StringFixed(2)+" DH", props.Text{
			Style: fontstyle.Bold, Size: 11, Align: align.Right, Color: colorPrimary, Top: 1,
		})),
	))
	return rows
}

// loyaltyFooterRow resume el movimiento de puntos de la venta.
func loyaltyFooterRow(order *entity.Order) core.Row {
	msg := fmt.Sprintf("Programa de fidelidad: %d puntos canjeados, %d puntos ganados. ¡Gracias por tu visita!",
		order.PointsRedeemed, order.PointsEarned)
	return row.New(8).Add(
		col.New(12).Add(
			text.New(msg, props.Text{Size: 8, Color: colorGray, Top: 2, Align: align.Center}),
		),
	)
}
