package invoicing

import (
	"context"
	"fmt"

	"github.com/jhoicas/facturador/internal/domain"
	"github.com/jhoicas/facturador/internal/domain/billing"
)

// Regenerate vuelve a producir el documento de una factura ya emitida a
// partir de los datos almacenados, sin tocar el contador: regenerar nunca
// asigna números. Con newItems no vacío (comando edit) las líneas y el total
// almacenados se reemplazan bajo la misma disciplina de commit atómico; el
// número, el cliente y la fecha originales se conservan.
func (s *Service) Regenerate(ctx context.Context, number string, newItems []billing.RequestedItem) (string, error) {
	var dest string
	err := s.store.WithLock(ctx, func() error {
		st, err := s.store.Load()
		if err != nil {
			return err
		}
		entry := st.FindEntry(number)
		if entry == nil {
			return fmt.Errorf("%w: %s", domain.ErrInvoiceNotFound, number)
		}
		client, ok := s.clients[entry.ClientID]
		if !ok {
			return fmt.Errorf("%w: %q", domain.ErrClientNotFound, entry.ClientID)
		}

		items := newItems
		if len(items) == 0 {
			items = make([]billing.RequestedItem, len(entry.Lines))
			for i, l := range entry.Lines {
				items[i] = billing.RequestedItem{ItemID: l.ItemID, Quantity: l.Quantity}
			}
		}

		totals, err := billing.ComputeTotals(s.catalog, items, s.cfg.Invoice.TaxRate, s.cfg.Invoice.FlatQuantityPolicy)
		if err != nil {
			return err
		}

		dest, err = s.ensureOutputDir(entry.RenderedFile)
		if err != nil {
			return err
		}

		payload := s.invoicePayload(number, entry.IssueDate, client, totals)
		if err := s.renderer.Render(ctx, payload, dest); err != nil {
			return err
		}

		if len(newItems) > 0 {
			if err := s.store.ReplaceLines(number, requestedToLines(newItems), totals.GrandTotal); err != nil {
				return &domain.CommitError{OrphanFile: dest, Err: err}
			}
		}
		return nil
	})
	if err != nil {
		return "", err
	}
	s.log.Info().Str("number", number).Str("file", dest).Msg("factura regenerada")
	return dest, nil
}
