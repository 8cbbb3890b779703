package domain

import (
	"errors"
	"fmt"
)

// Errores de dominio (sin dependencias externas).
//
// Taxonomía: los errores de validación se reportan antes de cualquier efecto;
// los de estado se presentan tal cual, con el invariante que se rompió, y
// nunca se auto-reparan (reescribir un libro corrupto arriesga colisiones de
// números de factura). Ningún error se reintenta automáticamente.
var (
	// Validación
	ErrConfigNotFound      = errors.New("directorio de configuración no encontrado")
	ErrAlreadyInitialized  = errors.New("el directorio de configuración ya existe")
	ErrClientNotFound      = errors.New("cliente no encontrado en clients.toml")
	ErrItemNotFound        = errors.New("ítem no encontrado en items.toml")
	ErrInvalidQuantity     = errors.New("cantidad inválida")
	ErrInvalidTaxRate      = errors.New("tasa de impuesto inválida, debe estar en [0, 1)")
	ErrNoItems             = errors.New("no se indicaron ítems")
	ErrInvalidItemFormat   = errors.New("formato de ítem inválido, se espera 'item:cantidad'")
	ErrInvalidDateFilter   = errors.New("filtro de fecha inválido, se espera YYYY-MM-DD")
	ErrInvalidStatusFilter = errors.New("filtro de estado inválido, use 'paid' o 'unpaid'")
	ErrInvoiceNotFound     = errors.New("factura no encontrada en el historial")
	ErrInvalidInvoiceRef   = errors.New("referencia de factura inválida")

	// Estado persistido
	ErrCorruptState      = errors.New("estado persistido corrupto")
	ErrDuplicateNumber   = errors.New("número de factura duplicado en el historial")
	ErrPersistenceFailed = errors.New("no se pudo guardar el estado")
	ErrConcurrentAccess  = errors.New("el directorio de configuración está bloqueado por otro proceso")

	// Render (colaborador externo; nunca muta estado)
	ErrRenderFailed = errors.New("falló la generación del documento")
)

// CommitError señala el único caso asimétrico del ciclo de generación: el
// documento ya fue producido pero la entrada del libro no se pudo confirmar.
// El archivo queda huérfano y el operador debe conciliarlo manualmente; el
// estado persistido permanece intacto.
type CommitError struct {
	OrphanFile string
	Err        error
}

func (e *CommitError) Error() string {
	return fmt.Sprintf("no se pudo confirmar el estado (el archivo %s quedó huérfano, regenérelo o elimínelo): %v",
		e.OrphanFile, e.Err)
}

func (e *CommitError) Unwrap() error { return e.Err }
