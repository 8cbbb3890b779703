// Package pdf implementa el renderizador de documentos con Maroto v2.
//
// Layout de la factura (A4):
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Empresa + NIT        │  FACTURA N° + Fecha          │
//	│  ─────────────────────────────────────────────────────────  │
//	│  EMISOR: dirección / contacto │ FACTURAR A: cliente          │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Cant | Descripción | Unidad | Tarifa | Importe       │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTALES: Subtotal / Impuesto / TOTAL                        │
//	│  FOOTER: vencimiento + términos de pago                      │
//	└─────────────────────────────────────────────────────────────┘
//
// El estado de cuenta comparte cabecera y paleta, con una tabla de facturas
// filtradas y el bloque TOTAL / PAGADO / PENDIENTE.
package pdf

import (
	"context"
	"fmt"
	"os"

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

	"github.com/jhoicas/facturador/internal/application/dto"
	"github.com/jhoicas/facturador/internal/domain"
	"github.com/jhoicas/facturador/pkg/moneyfmt"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// ── Renderer ──────────────────────────────────────────────────────────────────

// MarotoRenderer implementa invoicing.DocumentRenderer usando Maroto v2.
type MarotoRenderer struct{}

// NewMarotoRenderer construye el renderizador.
func NewMarotoRenderer() *MarotoRenderer { return &MarotoRenderer{} }

// Render produce el documento del payload en la ruta de destino.
func (r *MarotoRenderer) Render(_ context.Context, doc dto.Document, destination string) error {
	var (
		data []byte
		err  error
	)
	switch d := doc.(type) {
	case *dto.InvoicePayload:
		data, err = r.invoiceDocument(d)
	case *dto.StatementPayload:
		data, err = r.statementDocument(d)
	default:
		return fmt.Errorf("%w: payload desconocido %T", domain.ErrRenderFailed, doc)
	}
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrRenderFailed, err)
	}
	if err := os.WriteFile(destination, data, 0o644); err != nil {
		return fmt.Errorf("%w: escribir %s: %v", domain.ErrRenderFailed, destination, err)
	}
	return nil
}

func newDocument(title, author string) core.Maroto {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle(title, true).
		WithAuthor(author, true).
		Build()
	return maroto.New(cfg)
}

// ── Factura ───────────────────────────────────────────────────────────────────

func (r *MarotoRenderer) invoiceDocument(p *dto.InvoicePayload) ([]byte, error) {
	m := newDocument("Factura "+p.Number, p.Company.Name)

	m.AddRows(invoiceHeaderRow(p))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(partiesRow(p))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(lineTableHeaderRow())
	for _, rw := range lineTableRows(p) {
		m.AddRows(rw)
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(invoiceTotalsRow(p))
	m.AddRows(line.NewRow(3))
	m.AddRows(invoiceFooterRow(p))

	doc, err := m.Generate()
	if err != nil {
		return nil, err
	}
	return doc.GetBytes(), nil
}

// invoiceHeaderRow: empresa (izq), número y fecha (der).
func invoiceHeaderRow(p *dto.InvoicePayload) core.Row {
	left := col.New(7).Add(
		text.New(p.Company.Name, props.Text{
			Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
		}),
	)
	if p.Company.TaxID != "" {
		left.Add(text.New("NIT: "+p.Company.TaxID, props.Text{
			Size: 9, Top: 9, Color: colorGray,
		}))
	}
	return row.New(18).Add(
		left,
		col.New(5).Add(
			text.New("FACTURA", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New(p.Number, props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Right, Top: 7,
			}),
			text.New("Fecha: "+p.Date, props.Text{
				Size: 8, Align: align.Right, Top: 14, Color: colorGray,
			}),
		),
	)
}

// partiesRow: datos del emisor (izq) y del cliente (der).
func partiesRow(p *dto.InvoicePayload) core.Row {
	return row.New(26).Add(
		col.New(6).Add(
			text.New("EMISOR", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(p.Company.Address, props.Text{Size: 8, Top: 7, Color: colorGray}),
			text.New(cityLine(p.Company.City, p.Company.State, p.Company.Zip), props.Text{
				Size: 8, Top: 12, Color: colorGray,
			}),
			text.New(p.Company.Email, props.Text{Size: 8, Top: 17, Color: colorGray}),
		),
		col.New(6).Add(
			text.New("FACTURAR A", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(p.Client.Name, props.Text{Style: fontstyle.Bold, Size: 9, Top: 6}),
			text.New(p.Client.Address, props.Text{Size: 8, Top: 12, Color: colorGray}),
			text.New(cityLine(p.Client.City, p.Client.State, p.Client.Zip), props.Text{
				Size: 8, Top: 17, Color: colorGray,
			}),
			text.New(p.Client.Email, props.Text{Size: 8, Top: 22, Color: colorGray}),
		),
	)
}

// lineTableHeaderRow: cabecera de la tabla de líneas.
func lineTableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Cant.", 1, align.Center),
		h("Descripción", 5, align.Left),
		h("Unidad", 2, align.Center),
		h("Tarifa", 2, align.Right),
		h("Importe", 2, align.Right),
	)
}

// lineTableRows: una fila por línea de la factura.
func lineTableRows(p *dto.InvoicePayload) []core.Row {
	result := make([]core.Row, 0, len(p.Lines))
	for _, l := range p.Lines {
		result = append(result, row.New(7).Add(
			col.New(1).Add(text.New(
				l.Quantity.String(),
				props.Text{Size: 8, Align: align.Center, Top: 1},
			)),
			col.New(5).Add(text.New(
				l.Description,
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(2).Add(text.New(
				l.Unit,
				props.Text{Size: 8, Align: align.Center, Top: 1, Color: colorGray},
			)),
			col.New(2).Add(text.New(
				amount(p.CurrencySymbol, l.Rate),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
			col.New(2).Add(text.New(
				amount(p.CurrencySymbol, l.Amount),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
		))
	}
	return result
}

// invoiceTotalsRow: bloque de totales alineado a la derecha.
func invoiceTotalsRow(p *dto.InvoicePayload) core.Row {
	label := func(s string, top float64) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 9, Align: align.Right, Top: top, Right: 2,
		})
	}
	value := func(s string, top float64) core.Component {
		return text.New(s, props.Text{Size: 9, Align: align.Right, Top: top, Right: 1})
	}
	grandLabel := text.New("TOTAL:", props.Text{
		Style: fontstyle.Bold, Size: 10, Align: align.Right,
		Color: colorPrimary, Top: 15, Right: 2,
	})
	grandValue := text.New(amount(p.CurrencySymbol, p.GrandTotal), props.Text{
		Style: fontstyle.Bold, Size: 10, Align: align.Right,
		Color: colorPrimary, Top: 15, Right: 1,
	})

	return row.New(26).Add(
		col.New(4),
		col.New(4).Add(
			label("Subtotal:", 2),
			label(fmt.Sprintf("Impuesto (%s%%):", p.TaxPercent.String()), 8),
			grandLabel,
		),
		col.New(4).Add(
			value(amount(p.CurrencySymbol, p.Subtotal), 2),
			value(amount(p.CurrencySymbol, p.TaxAmount), 8),
			grandValue,
		),
	)
}

// invoiceFooterRow: vencimiento y términos de pago.
func invoiceFooterRow(p *dto.InvoicePayload) core.Row {
	return row.New(12).Add(
		col.New(12).Add(
			text.New("Vence: "+p.DueDate+"   |   Términos: "+p.PaymentTerms, props.Text{
				Size: 8, Color: colorGray, Top: 1,
			}),
			text.New("Gracias por su confianza.", props.Text{
				Size: 8, Color: colorGray, Top: 7,
			}),
		),
	)
}

// ── Estado de cuenta ──────────────────────────────────────────────────────────

func (r *MarotoRenderer) statementDocument(p *dto.StatementPayload) ([]byte, error) {
	m := newDocument("Estado de cuenta "+p.ClientID, p.Company.Name)

	m.AddRows(statementHeaderRow(p))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(statementClientRow(p))
	if f := filtersLine(p); f != "" {
		m.AddRows(row.New(6).Add(col.New(12).Add(
			text.New(f, props.Text{Size: 8, Color: colorGray, Top: 1}),
		)))
	}
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(statementTableHeaderRow())
	for _, rw := range statementTableRows(p) {
		m.AddRows(rw)
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(statementTotalsRow(p))

	doc, err := m.Generate()
	if err != nil {
		return nil, err
	}
	return doc.GetBytes(), nil
}

func statementHeaderRow(p *dto.StatementPayload) core.Row {
	return row.New(16).Add(
		col.New(7).Add(
			text.New(p.Company.Name, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
		),
		col.New(5).Add(
			text.New("ESTADO DE CUENTA", props.Text{
				Style: fontstyle.Bold, Size: 10, Align: align.Right,
				Color: colorPrimary, Top: 2,
			}),
			text.New("Generado: "+p.GeneratedDate, props.Text{
				Size: 8, Align: align.Right, Top: 9, Color: colorGray,
			}),
		),
	)
}

func statementClientRow(p *dto.StatementPayload) core.Row {
	return row.New(14).Add(
		col.New(12).Add(
			text.New("CLIENTE", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(p.Client.Name, props.Text{Style: fontstyle.Bold, Size: 10, Top: 6}),
			text.New(p.Client.Email, props.Text{Size: 8, Top: 12, Color: colorGray}),
		),
	)
}

// filtersLine deja constancia en el documento de los filtros aplicados.
func filtersLine(p *dto.StatementPayload) string {
	parts := make([]string, 0, 3)
	if p.FilterFrom != "" {
		parts = append(parts, "desde "+p.FilterFrom)
	}
	if p.FilterTo != "" {
		parts = append(parts, "hasta "+p.FilterTo)
	}
	if p.FilterStatus != "" {
		parts = append(parts, "estado "+p.FilterStatus)
	}
	if len(parts) == 0 {
		return ""
	}
	out := "Filtros: " + parts[0]
	for _, s := range parts[1:] {
		out += ", " + s
	}
	return out
}

func statementTableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Número", 3, align.Left),
		h("Fecha", 4, align.Left),
		h("Estado", 2, align.Center),
		h("Total", 3, align.Right),
	)
}

func statementTableRows(p *dto.StatementPayload) []core.Row {
	result := make([]core.Row, 0, len(p.Rows))
	for _, e := range p.Rows {
		result = append(result, row.New(7).Add(
			col.New(3).Add(text.New(e.Number, props.Text{Size: 8, Top: 1, Left: 1})),
			col.New(4).Add(text.New(e.Date, props.Text{Size: 8, Top: 1, Left: 1, Color: colorGray})),
			col.New(2).Add(text.New(e.Status, props.Text{Size: 8, Align: align.Center, Top: 1})),
			col.New(3).Add(text.New(
				amount(p.CurrencySymbol, e.Total),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
		))
	}
	return result
}

func statementTotalsRow(p *dto.StatementPayload) core.Row {
	label := func(s string, top float64, c *props.Color) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 9, Align: align.Right, Top: top, Color: c, Right: 2,
		})
	}
	value := func(s string, top float64, c *props.Color) core.Component {
		return text.New(s, props.Text{Size: 9, Align: align.Right, Top: top, Color: c, Right: 1})
	}
	return row.New(22).Add(
		col.New(4),
		col.New(4).Add(
			label("TOTAL:", 2, nil),
			label("(-) PAGADO:", 8, nil),
			label("(=) PENDIENTE:", 14, colorPrimary),
		),
		col.New(4).Add(
			value(amount(p.CurrencySymbol, p.Total), 2, nil),
			value(amount(p.CurrencySymbol, p.Paid), 8, nil),
			value(amount(p.CurrencySymbol, p.Outstanding), 14, colorPrimary),
		),
	)
}

// ── Helpers ───────────────────────────────────────────────────────────────────

func amount(symbol string, v decimal.Decimal) string {
	return moneyfmt.Amount(symbol, v)
}

func cityLine(city, state, zip string) string {
	out := city
	if state != "" {
		out += ", " + state
	}
	if zip != "" {
		out += " " + zip
	}
	return out
}
