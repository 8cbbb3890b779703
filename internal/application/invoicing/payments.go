package invoicing

import "context"

// MarkPaid cambia el estado de pago de exactamente una entrada del libro;
// es la única mutación permitida después de la creación. Usa la primitiva de
// actualización del Store bajo el mismo lock que la generación.
func (s *Service) MarkPaid(ctx context.Context, number string, paid bool) error {
	err := s.store.WithLock(ctx, func() error {
		return s.store.MarkPaid(number, paid)
	})
	if err != nil {
		return err
	}
	s.log.Info().Str("number", number).Bool("paid", paid).Msg("estado de pago actualizado")
	return nil
}
