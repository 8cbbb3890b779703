package invoicing

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/facturador/internal/domain"
	"github.com/jhoicas/facturador/internal/domain/billing"
	"github.com/jhoicas/facturador/internal/domain/entity"
	"github.com/jhoicas/facturador/pkg/config"
	"github.com/jhoicas/facturador/pkg/logger"
)

var hundred = decimal.NewFromInt(100)

// Service orquestador de facturación. Compone configuración, catálogo,
// almacén, renderizador y reloj; cada operación de la CLI es un método.
type Service struct {
	cfg      *config.Config
	clients  map[string]entity.Client
	catalog  map[string]entity.CatalogItem
	store    StateStore
	renderer DocumentRenderer
	clock    Clock
	log      *logger.Logger
}

// NewService construye el orquestador inyectando todos sus colaboradores.
func NewService(
	cfg *config.Config,
	clients map[string]entity.Client,
	catalog map[string]entity.CatalogItem,
	store StateStore,
	renderer DocumentRenderer,
	clock Clock,
	log *logger.Logger,
) *Service {
	return &Service{
		cfg:      cfg,
		clients:  clients,
		catalog:  catalog,
		store:    store,
		renderer: renderer,
		clock:    clock,
		log:      log,
	}
}

// Snapshot devuelve la instantánea actual del estado (status, list).
func (s *Service) Snapshot() (*entity.State, error) {
	return s.store.Load()
}

// NextNumber calcula el número que recibiría la próxima factura, sin
// reservarlo: el contador persistido no cambia.
func (s *Service) NextNumber() (string, error) {
	st, err := s.store.Load()
	if err != nil {
		return "", err
	}
	number, _ := billing.Allocate(s.cfg.Invoice.NumberFormat, st.Counter, s.clock.Today().Year())
	return number, nil
}

// Resolve convierte una referencia de la CLI en un número de factura.
// Acepta el índice 1-based que muestra 'list' (orden inverso, la más
// reciente primero) o el número completo.
func (s *Service) Resolve(ref string) (string, error) {
	st, err := s.store.Load()
	if err != nil {
		return "", err
	}

	if idx, convErr := strconv.Atoi(ref); convErr == nil {
		if idx < 1 || idx > len(st.Ledger) {
			return "", fmt.Errorf("%w: índice %d fuera de rango (hay %d facturas)",
				domain.ErrInvalidInvoiceRef, idx, len(st.Ledger))
		}
		return st.Ledger[len(st.Ledger)-idx].Number, nil
	}

	if st.FindEntry(ref) == nil {
		return "", fmt.Errorf("%w: %s", domain.ErrInvoiceNotFound, ref)
	}
	return ref, nil
}

// InvoicePath devuelve la ruta del documento ya generado de una factura.
func (s *Service) InvoicePath(number string) (string, error) {
	st, err := s.store.Load()
	if err != nil {
		return "", err
	}
	entry := st.FindEntry(number)
	if entry == nil {
		return "", fmt.Errorf("%w: %s", domain.ErrInvoiceNotFound, number)
	}
	path := filepath.Join(s.cfg.OutputDir(), entry.RenderedFile)
	if _, err := os.Stat(path); err != nil {
		return "", fmt.Errorf("el documento %s no existe (use 'regenerate %s'): %w", path, number, err)
	}
	return path, nil
}

// ensureOutputDir crea el directorio de salida si hace falta y devuelve la
// ruta de destino para el archivo dado.
func (s *Service) ensureOutputDir(filename string) (string, error) {
	dir := s.cfg.OutputDir()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("crear directorio de salida %s: %w", dir, err)
	}
	return filepath.Join(dir, filename), nil
}
