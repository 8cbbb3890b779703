package invoicing

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/jhoicas/facturador/internal/application/dto"
	"github.com/jhoicas/facturador/internal/domain"
	"github.com/jhoicas/facturador/internal/domain/billing"
	"github.com/jhoicas/facturador/internal/domain/entity"
)

// displayDateLayout formato de fecha en los documentos generados.
const displayDateLayout = "January 02, 2006"

// GenerateRequest petición de generación: cliente, líneas pedidas y destino
// opcional del documento.
type GenerateRequest struct {
	ClientID   string
	Items      []billing.RequestedItem
	OutputPath string // vacío = <output_dir>/<número>.pdf
}

// GenerateResult resumen de una generación exitosa.
type GenerateResult struct {
	Number string
	Client entity.Client
	Totals *billing.Totals
	File   string
}

// Generate ejecuta el ciclo Validated → Computed → Rendered → Committed.
//
// El número asignado es provisional hasta el commit: si el render falla no
// hay mutación de estado y el mismo número se propone de nuevo en el próximo
// intento, así nunca se saltan números por fallas de render. Si el commit
// falla después de un render exitoso, el documento ya existe en disco pero
// el libro no lo referencia; ese huérfano se reporta explícitamente como
// CommitError, no se esconde en una falla genérica.
func (s *Service) Generate(ctx context.Context, req GenerateRequest) (*GenerateResult, error) {
	// ── 1. Validated: todo se comprueba antes de cualquier efecto ─────────
	client, ok := s.clients[req.ClientID]
	if !ok {
		return nil, fmt.Errorf("%w: %q", domain.ErrClientNotFound, req.ClientID)
	}
	totals, err := billing.ComputeTotals(s.catalog, req.Items, s.cfg.Invoice.TaxRate, s.cfg.Invoice.FlatQuantityPolicy)
	if err != nil {
		return nil, err
	}

	var res *GenerateResult
	err = s.store.WithLock(ctx, func() error {
		st, err := s.store.Load()
		if err != nil {
			return err
		}

		// ── 2. Computed: número provisional a partir del contador cargado ─
		today := s.clock.Today()
		number, updated := billing.Allocate(s.cfg.Invoice.NumberFormat, st.Counter, today.Year())
		s.log.Debug().
			Str("number", number).
			Str("client", req.ClientID).
			Str("total", totals.GrandTotal.StringFixed(2)).
			Msg("número provisional asignado")

		dest := req.OutputPath
		if dest == "" {
			dest, err = s.ensureOutputDir(number + ".pdf")
			if err != nil {
				return err
			}
		}

		// ── 3. Rendered: el render falla sin tocar estado ─────────────────
		payload := s.invoicePayload(number, today, client, totals)
		if err := s.renderer.Render(ctx, payload, dest); err != nil {
			s.log.Warn().Err(err).Str("number", number).
				Msg("render fallido, el número provisional se descarta")
			return err
		}

		// ── 4. Committed: entrada + contador en una sola unidad durable ───
		entry := entity.LedgerEntry{
			Number:       number,
			ClientID:     req.ClientID,
			IssueDate:    today,
			Total:        totals.GrandTotal,
			RenderedFile: filepath.Base(dest),
			Lines:        requestedToLines(req.Items),
			Paid:         false,
		}
		if err := s.store.Commit(updated, entry); err != nil {
			return &domain.CommitError{OrphanFile: dest, Err: err}
		}

		s.log.Info().
			Str("number", number).
			Str("client", req.ClientID).
			Str("file", dest).
			Msg("factura generada")
		res = &GenerateResult{Number: number, Client: client, Totals: totals, File: dest}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}

func requestedToLines(items []billing.RequestedItem) []entity.LedgerLine {
	lines := make([]entity.LedgerLine, len(items))
	for i, it := range items {
		lines[i] = entity.LedgerLine{ItemID: it.ItemID, Quantity: it.Quantity}
	}
	return lines
}

// invoicePayload arma el payload de render con fechas y términos ya
// formateados; el renderizador no vuelve a consultar configuración.
func (s *Service) invoicePayload(number string, date entity.Date, client entity.Client, totals *billing.Totals) *dto.InvoicePayload {
	lines := make([]dto.InvoiceLine, len(totals.Lines))
	for i, l := range totals.Lines {
		lines[i] = dto.InvoiceLine{
			Description: l.Description,
			Quantity:    l.Quantity,
			Unit:        l.Unit,
			Rate:        l.Rate,
			Amount:      l.Amount,
		}
	}
	return &dto.InvoicePayload{
		Number:         number,
		Date:           date.Format(displayDateLayout),
		DueDate:        date.AddDays(s.cfg.Invoice.DueDays).Format(displayDateLayout),
		PaymentTerms:   fmt.Sprintf("Net %d días", s.cfg.Invoice.DueDays),
		Company:        s.cfg.Company,
		Client:         client,
		Lines:          lines,
		Subtotal:       totals.Subtotal,
		TaxPercent:     totals.TaxRate.Mul(hundred),
		TaxAmount:      totals.TaxAmount,
		GrandTotal:     totals.GrandTotal,
		CurrencySymbol: s.cfg.Invoice.CurrencySymbol,
	}
}
