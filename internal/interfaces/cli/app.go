package cli

import (
	"github.com/google/uuid"

	"github.com/jhoicas/facturador/internal/application/invoicing"
	"github.com/jhoicas/facturador/internal/domain/entity"
	"github.com/jhoicas/facturador/internal/infrastructure/pdf"
	"github.com/jhoicas/facturador/internal/infrastructure/state"
	"github.com/jhoicas/facturador/pkg/config"
	"github.com/jhoicas/facturador/pkg/logger"
)

// app agrupa las dependencias ya construidas que los comandos comparten.
type app struct {
	cfg     *config.Config
	clients map[string]entity.Client
	catalog map[string]entity.CatalogItem
	svc     *invoicing.Service
	log     *logger.Logger
}

// buildApp resuelve el directorio de configuración, carga los TOML y cablea
// el servicio con sus adaptadores reales. Todos los comandos menos init
// pasan por aquí.
func buildApp() (*app, error) {
	dir, err := config.ResolveDir(configDirFlag)
	if err != nil {
		return nil, err
	}
	cfg, err := config.Load(dir)
	if err != nil {
		return nil, err
	}
	clients, err := config.LoadClients(dir)
	if err != nil {
		return nil, err
	}
	catalog, err := config.LoadItems(dir)
	if err != nil {
		return nil, err
	}

	base := logger.New(logger.Config{Env: cfg.Log.Env, Level: cfg.Log.Level})
	log := base.Sub(base.With().Str("run_id", uuid.NewString()))

	svc := invoicing.NewService(
		cfg,
		clients,
		catalog,
		state.New(dir),
		pdf.NewMarotoRenderer(),
		invoicing.SystemClock(),
		log,
	)

	return &app{cfg: cfg, clients: clients, catalog: catalog, svc: svc, log: log}, nil
}
