package state

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/gofrs/flock"

	"github.com/jhoicas/facturador/internal/domain"
)

const (
	lockFile = "state.lock"

	// lockRetry intervalo de reintento mientras otro proceso tiene el lock.
	lockRetry = 100 * time.Millisecond

	// DefaultLockTimeout espera máxima por el lock antes de fallar rápido.
	DefaultLockTimeout = 5 * time.Second
)

// WithLock ejecuta fn bajo un lock consultivo exclusivo sobre el directorio
// de configuración, sostenido durante todo el ciclo load..commit (o aborto).
// Dos procesos concurrentes contra el mismo directorio se serializan aquí; el
// que no consigue el lock dentro del plazo falla rápido con
// ErrConcurrentAccess en lugar de bloquearse o corromper estado.
func (s *Store) WithLock(ctx context.Context, fn func() error) error {
	fl := flock.New(filepath.Join(s.dir, lockFile))

	lockCtx, cancel := context.WithTimeout(ctx, DefaultLockTimeout)
	defer cancel()

	locked, err := fl.TryLockContext(lockCtx, lockRetry)
	if err != nil || !locked {
		return fmt.Errorf("%w: %s", domain.ErrConcurrentAccess, fl.Path())
	}
	defer fl.Unlock()

	return fn()
}
