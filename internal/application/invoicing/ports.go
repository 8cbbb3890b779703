// Package invoicing orquesta la generación de facturas y los estados de
// cuenta: compone el cálculo de totales, la asignación de números, el
// renderizador externo y el almacén durable. Los colaboradores entran por
// puertos para poder sustituirlos por dobles en tests.
package invoicing

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/facturador/internal/application/dto"
	"github.com/jhoicas/facturador/internal/domain/entity"
)

// DocumentRenderer capacidad externa de producir un documento en la ruta de
// destino a partir de un payload ya resuelto. Caja negra para el núcleo: una
// falla se trata como condición opaca de render y nunca muta estado.
type DocumentRenderer interface {
	Render(ctx context.Context, doc dto.Document, destination string) error
}

// StateStore puerta al estado durable (contador + libro). La pareja
// Load+Commit es un ciclo read-modify-write sobre un recurso compartido;
// WithLock lo serializa entre procesos.
type StateStore interface {
	WithLock(ctx context.Context, fn func() error) error
	Load() (*entity.State, error)
	Commit(counter entity.Counter, entry entity.LedgerEntry) error
	MarkPaid(number string, paid bool) error
	ReplaceLines(number string, lines []entity.LedgerLine, total decimal.Decimal) error
}

// Clock fuente de la fecha actual, abstraída para que los tests inyecten
// fechas fijas (renovación de año, rangos de reporte).
type Clock interface {
	Today() entity.Date
}

type systemClock struct{}

func (systemClock) Today() entity.Date { return entity.DateOf(time.Now()) }

// SystemClock devuelve el reloj del sistema en hora local.
func SystemClock() Clock { return systemClock{} }
