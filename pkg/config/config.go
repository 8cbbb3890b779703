// Package config carga la configuración declarativa del facturador desde un
// directorio de archivos TOML (lectura vía Viper): config.toml con la empresa
// y los ajustes de facturación, clients.toml con el directorio de clientes e
// items.toml con el catálogo de líneas facturables. El estado durable
// (state.toml) NO se lee aquí: es propiedad exclusiva del Store.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/shopspring/decimal"
	"github.com/spf13/viper"

	"github.com/jhoicas/facturador/internal/domain"
	"github.com/jhoicas/facturador/internal/domain/billing"
	"github.com/jhoicas/facturador/internal/domain/entity"
)

// EnvConfigDir variable de entorno que apunta al directorio de configuración
// cuando no se pasa el flag -C.
const EnvConfigDir = "FACTURADOR_CONFIG_DIR"

// Config configuración cargada de config.toml más el directorio resuelto.
type Config struct {
	Dir     string
	Company entity.Company
	Invoice InvoiceConfig
	PDF     PDFConfig
	Log     LogConfig
}

// InvoiceConfig ajustes de numeración, moneda e impuestos.
type InvoiceConfig struct {
	NumberFormat       string // plantilla con {year} y {seq:N}
	Currency           string
	CurrencySymbol     string
	DueDays            int
	TaxRate            decimal.Decimal // fracción en [0, 1), p. ej. 0.0825
	FlatQuantityPolicy billing.FlatQuantityPolicy
}

// PDFConfig destino de los documentos generados.
type PDFConfig struct {
	OutputDir string // relativo al directorio de configuración si no es absoluto
}

// LogConfig nivel y formato del logger.
type LogConfig struct {
	Env   string // development | production
	Level string
}

// ResolveDir resuelve el directorio de configuración con la prioridad:
// flag -C, variable FACTURADOR_CONFIG_DIR, ~/.facturador.
func ResolveDir(flagValue string) (string, error) {
	if flagValue != "" {
		return flagValue, nil
	}
	if env := os.Getenv(EnvConfigDir); env != "" {
		return env, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("no se pudo determinar el directorio home: %w", err)
	}
	return filepath.Join(home, ".facturador"), nil
}

// Load lee config.toml del directorio dado y valida sus ajustes.
func Load(dir string) (*Config, error) {
	v, err := readTOML(filepath.Join(dir, "config.toml"))
	if err != nil {
		return nil, err
	}

	taxRate := decimal.NewFromFloat(v.GetFloat64("invoice.tax_rate"))
	if taxRate.IsNegative() || taxRate.GreaterThanOrEqual(decimal.NewFromInt(1)) {
		return nil, fmt.Errorf("%w: %s (config.toml, invoice.tax_rate)", domain.ErrInvalidTaxRate, taxRate)
	}

	flatPolicy, err := billing.ParseFlatQuantityPolicy(v.GetString("invoice.flat_quantity_policy"))
	if err != nil {
		return nil, fmt.Errorf("config.toml: %w", err)
	}

	cfg := &Config{
		Dir: dir,
		Company: entity.Company{
			Name:    v.GetString("company.name"),
			Address: v.GetString("company.address"),
			City:    v.GetString("company.city"),
			State:   v.GetString("company.state"),
			Zip:     v.GetString("company.zip"),
			Country: v.GetString("company.country"),
			Email:   v.GetString("company.email"),
			Phone:   v.GetString("company.phone"),
			TaxID:   v.GetString("company.tax_id"),
		},
		Invoice: InvoiceConfig{
			NumberFormat:       getString(v, "invoice.number_format", "INV-{year}-{seq:04}"),
			Currency:           getString(v, "invoice.currency", "USD"),
			CurrencySymbol:     getString(v, "invoice.currency_symbol", "$"),
			DueDays:            getInt(v, "invoice.due_days", 30),
			TaxRate:            taxRate,
			FlatQuantityPolicy: flatPolicy,
		},
		PDF: PDFConfig{
			OutputDir: getString(v, "pdf.output_dir", "./output"),
		},
		Log: LogConfig{
			Env:   getString(v, "log.env", "production"),
			Level: getString(v, "log.level", "warn"),
		},
	}

	// Sin token de secuencia los números colisionarían entre sí.
	if !billing.HasSequenceToken(cfg.Invoice.NumberFormat) {
		return nil, fmt.Errorf("config.toml: invoice.number_format %q no contiene el token {seq:N}",
			cfg.Invoice.NumberFormat)
	}

	return cfg, nil
}

// OutputDir resuelve el directorio de salida contra el directorio de
// configuración cuando la ruta es relativa.
func (c *Config) OutputDir() string {
	if filepath.IsAbs(c.PDF.OutputDir) {
		return c.PDF.OutputDir
	}
	return filepath.Join(c.Dir, c.PDF.OutputDir)
}

// LoadClients lee clients.toml como mapa id → perfil.
func LoadClients(dir string) (map[string]entity.Client, error) {
	v, err := readTOML(filepath.Join(dir, "clients.toml"))
	if err != nil {
		return nil, err
	}
	clients := make(map[string]entity.Client)
	if err := v.Unmarshal(&clients); err != nil {
		return nil, fmt.Errorf("%w: clients.toml: %v", domain.ErrCorruptState, err)
	}
	return clients, nil
}

// itemFile forma en disco de un ítem del catálogo; la tarifa entra como
// float TOML y se convierte a decimal una sola vez, al cargar.
type itemFile struct {
	Description string  `mapstructure:"description"`
	Rate        float64 `mapstructure:"rate"`
	Unit        string  `mapstructure:"unit"`
}

// LoadItems lee items.toml como mapa id → ítem del catálogo.
func LoadItems(dir string) (map[string]entity.CatalogItem, error) {
	v, err := readTOML(filepath.Join(dir, "items.toml"))
	if err != nil {
		return nil, err
	}
	raw := make(map[string]itemFile)
	if err := v.Unmarshal(&raw); err != nil {
		return nil, fmt.Errorf("%w: items.toml: %v", domain.ErrCorruptState, err)
	}
	items := make(map[string]entity.CatalogItem, len(raw))
	for id, it := range raw {
		items[id] = entity.CatalogItem{
			Description: it.Description,
			Rate:        decimal.NewFromFloat(it.Rate),
			Unit:        it.Unit,
		}
	}
	return items, nil
}

func readTOML(path string) (*viper.Viper, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("%w: falta %s (ejecute 'facturador init')", domain.ErrConfigNotFound, path)
	}
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("toml")
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("no se pudo leer %s: %w", path, err)
	}
	return v, nil
}

func getString(v *viper.Viper, key, def string) string {
	if v.IsSet(key) {
		return v.GetString(key)
	}
	return def
}

func getInt(v *viper.Viper, key string, def int) int {
	if v.IsSet(key) {
		return v.GetInt(key)
	}
	return def
}
