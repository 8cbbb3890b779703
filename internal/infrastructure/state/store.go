// Package state implementa el almacén durable del contador y el libro de
// facturas: un único state.toml por directorio de configuración.
//
// Disciplina de escritura: cada commit serializa la instantánea completa a un
// archivo temporal en el mismo directorio, hace fsync y la renombra sobre el
// state.toml anterior. Un lector nunca observa un contador avanzado sin su
// entrada (ni al revés): o ve el estado previo íntegro o el nuevo íntegro.
// Si algo falla a mitad de la escritura, el archivo anterior queda intacto.
package state

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/facturador/internal/domain"
	"github.com/jhoicas/facturador/internal/domain/entity"
)

const stateFile = "state.toml"

// Store persiste el contador y el libro en <dir>/state.toml.
type Store struct {
	dir string
}

// New construye un Store sobre el directorio de configuración dado.
func New(dir string) *Store {
	return &Store{dir: dir}
}

func (s *Store) path() string { return filepath.Join(s.dir, stateFile) }

// Load lee y valida la instantánea persistida. Un state.toml ausente es el
// primer uso: contador en cero y libro vacío. Una estructura que no parsea o
// que viola la unicidad de números falla con el invariante roto a la vista;
// nunca se descartan entradas en silencio.
func (s *Store) Load() (*entity.State, error) {
	data, err := os.ReadFile(s.path())
	if errors.Is(err, os.ErrNotExist) {
		return &entity.State{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: leer %s: %v", domain.ErrCorruptState, s.path(), err)
	}

	var st entity.State
	if err := toml.Unmarshal(data, &st); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", domain.ErrCorruptState, s.path(), err)
	}

	seen := make(map[string]struct{}, len(st.Ledger))
	for _, e := range st.Ledger {
		if _, dup := seen[e.Number]; dup {
			return nil, fmt.Errorf("%w: %s", domain.ErrDuplicateNumber, e.Number)
		}
		seen[e.Number] = struct{}{}
	}
	return &st, nil
}

// Commit añade la entrada al libro y reemplaza el contador en una sola
// unidad durable. Si la escritura falla, el estado previo permanece tal cual
// y el número asignado queda efectivamente descartado.
func (s *Store) Commit(counter entity.Counter, entry entity.LedgerEntry) error {
	st, err := s.Load()
	if err != nil {
		return err
	}
	if st.FindEntry(entry.Number) != nil {
		return fmt.Errorf("%w: %s", domain.ErrDuplicateNumber, entry.Number)
	}
	st.Counter = counter
	st.Ledger = append(st.Ledger, entry)
	return s.write(st)
}

// MarkPaid actualiza el campo paid de exactamente esa entrada y vuelve a
// confirmar con la misma disciplina de reemplazo atómico.
func (s *Store) MarkPaid(number string, paid bool) error {
	st, err := s.Load()
	if err != nil {
		return err
	}
	entry := st.FindEntry(number)
	if entry == nil {
		return fmt.Errorf("%w: %s", domain.ErrInvoiceNotFound, number)
	}
	entry.Paid = paid
	return s.write(st)
}

// ReplaceLines sustituye las líneas y el total almacenados de una entrada
// (comando edit); el número, el cliente y la fecha originales no cambian.
func (s *Store) ReplaceLines(number string, lines []entity.LedgerLine, total decimal.Decimal) error {
	st, err := s.Load()
	if err != nil {
		return err
	}
	entry := st.FindEntry(number)
	if entry == nil {
		return fmt.Errorf("%w: %s", domain.ErrInvoiceNotFound, number)
	}
	entry.Lines = lines
	entry.Total = total
	return s.write(st)
}

// write serializa la instantánea completa y la cambia de forma atómica:
// temporal en el mismo directorio + fsync + rename sobre el anterior.
func (s *Store) write(st *entity.State) error {
	data, err := toml.Marshal(st)
	if err != nil {
		return fmt.Errorf("%w: serializar estado: %v", domain.ErrPersistenceFailed, err)
	}

	tmp, err := os.CreateTemp(s.dir, stateFile+".tmp-*")
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrPersistenceFailed, err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err == nil {
		err = tmp.Sync()
	}
	if cerr := tmp.Close(); err == nil {
		err = cerr
	}
	if err == nil {
		err = os.Rename(tmpName, s.path())
	}
	if err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("%w: %v", domain.ErrPersistenceFailed, err)
	}
	return nil
}
