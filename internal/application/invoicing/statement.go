package invoicing

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/facturador/internal/application/dto"
	"github.com/jhoicas/facturador/internal/domain"
	"github.com/jhoicas/facturador/internal/domain/billing"
	"github.com/jhoicas/facturador/internal/domain/entity"
)

// StatementRequest petición de estado de cuenta. Los filtros ya vienen
// parseados por la capa de interfaz; StatusLabel conserva el texto original
// ("paid"/"unpaid") para dejarlo impreso en el documento.
type StatementRequest struct {
	ClientID    string
	From        *entity.Date
	To          *entity.Date
	Paid        *bool
	StatusLabel string
}

// StatementResult resumen del reporte generado. Empty indica conjunto
// filtrado vacío: no es un error y no se produce documento.
type StatementResult struct {
	File        string
	Count       int
	Total       decimal.Decimal
	Paid        decimal.Decimal
	Outstanding decimal.Decimal
	Empty       bool
}

// Statement genera el estado de cuenta de un cliente: filtra el libro,
// agrega totales y produce el documento REPORT-<cliente>-<fecha>.pdf.
//
// Flujo de una sola etapa: no hay mutación de estado y por tanto no hay
// commit ni fallas parciales más allá de "el render falló, no hay reporte".
// La lectura no necesita lock: el reemplazo atómico del state.toml garantiza
// que Load ve una instantánea íntegra.
func (s *Service) Statement(ctx context.Context, req StatementRequest) (*StatementResult, error) {
	// La existencia del cliente se valida contra la configuración; el motor
	// de consultas no distingue cliente desconocido de historial vacío.
	client, ok := s.clients[req.ClientID]
	if !ok {
		return nil, fmt.Errorf("%w: %q", domain.ErrClientNotFound, req.ClientID)
	}

	st, err := s.store.Load()
	if err != nil {
		return nil, err
	}

	stmt := billing.QueryLedger(st.Ledger, billing.Filter{
		ClientID: req.ClientID,
		From:     req.From,
		To:       req.To,
		Paid:     req.Paid,
	})
	if len(stmt.Rows) == 0 {
		return &StatementResult{Empty: true}, nil
	}

	today := s.clock.Today()
	dest, err := s.ensureOutputDir(fmt.Sprintf("REPORT-%s-%s.pdf", req.ClientID, today))
	if err != nil {
		return nil, err
	}

	payload := s.statementPayload(req, client, today, stmt)
	if err := s.renderer.Render(ctx, payload, dest); err != nil {
		return nil, err
	}

	s.log.Info().
		Str("client", req.ClientID).
		Int("invoices", len(stmt.Rows)).
		Str("file", dest).
		Msg("estado de cuenta generado")

	return &StatementResult{
		File:        dest,
		Count:       len(stmt.Rows),
		Total:       stmt.Total,
		Paid:        stmt.Paid,
		Outstanding: stmt.Outstanding,
	}, nil
}

func (s *Service) statementPayload(req StatementRequest, client entity.Client, today entity.Date, stmt billing.Statement) *dto.StatementPayload {
	rows := make([]dto.StatementRow, len(stmt.Rows))
	for i, e := range stmt.Rows {
		status := "PENDIENTE"
		if e.Paid {
			status = "PAGADA"
		}
		rows[i] = dto.StatementRow{
			Number: e.Number,
			Date:   e.IssueDate.Format(displayDateLayout),
			Status: status,
			Total:  e.Total,
		}
	}

	p := &dto.StatementPayload{
		Company:        s.cfg.Company,
		Client:         client,
		ClientID:       req.ClientID,
		GeneratedDate:  today.Format(displayDateLayout),
		Rows:           rows,
		Total:          stmt.Total,
		Paid:           stmt.Paid,
		Outstanding:    stmt.Outstanding,
		CurrencySymbol: s.cfg.Invoice.CurrencySymbol,
		FilterStatus:   req.StatusLabel,
	}
	if req.From != nil {
		p.FilterFrom = req.From.String()
	}
	if req.To != nil {
		p.FilterTo = req.To.String()
	}
	return p
}
