package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/jhoicas/facturador/internal/domain"
)

// configTemplate plantilla inicial de config.toml.
const configTemplate = `[company]
name = "Mi Empresa S.A.S."
address = "Calle 123 #45-67"
city = "Bogotá"
state = "Cundinamarca"
zip = "110111"
country = "Colombia"
email = "facturacion@miempresa.com"
# phone = "+57-601-555-0100"   # opcional
# tax_id = "900.123.456-7"     # opcional

[invoice]
number_format = "INV-{year}-{seq:04}"  # p. ej. INV-2026-0001
currency = "USD"
currency_symbol = "$"
due_days = 30
tax_rate = 0.0                  # p. ej. 0.0825 para 8.25%
# flat_quantity_policy = "force-one"  # o "reject": rechazar cantidad != 1 en ítems de precio fijo

[pdf]
output_dir = "./output"

[log]
env = "production"   # development -> consola legible
level = "warn"
`

// clientsTemplate plantilla inicial de clients.toml.
const clientsTemplate = `# Defina sus clientes aquí. El nombre de la tabla (p. ej. [acme]) es el
# identificador que se usa en los comandos generate y report:
#
#   facturador generate --client acme --item consulting:8

[cliente-ejemplo]
name = "Cliente Ejemplo Ltda."
contact = "Juana Pérez"         # opcional
email = "juana@ejemplo.com"
address = "Carrera 7 #71-21"
city = "Medellín"
state = "Antioquia"
zip = "050001"
# country = "Colombia"          # opcional
`

// itemsTemplate plantilla inicial de items.toml.
const itemsTemplate = `# Defina sus líneas facturables aquí. El nombre de la tabla (p. ej.
# [consulting]) es el identificador que se usa en generate:
#
#   facturador generate --client acme --item consulting:8 --item development:40

[consulting]
description = "Consultoría técnica"
rate = 150.00
unit = "hora"

[development]
description = "Desarrollo de software"
rate = 125.00
unit = "hora"

[project-setup]
description = "Montaje y configuración de proyecto"
rate = 500.00
unit = "flat"   # precio fijo: se factura una sola tarifa
`

// Init crea el directorio de configuración con las plantillas comentadas y
// el subdirectorio de salida. Falla si el directorio ya existe: nunca pisa
// una configuración en uso.
func Init(dir string) error {
	if _, err := os.Stat(dir); err == nil {
		return fmt.Errorf("%w: %s", domain.ErrAlreadyInitialized, dir)
	}

	if err := os.MkdirAll(filepath.Join(dir, "output"), 0o755); err != nil {
		return fmt.Errorf("crear %s: %w", dir, err)
	}

	files := map[string]string{
		"config.toml":  configTemplate,
		"clients.toml": clientsTemplate,
		"items.toml":   itemsTemplate,
	}
	for name, content := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
			return fmt.Errorf("escribir %s: %w", name, err)
		}
	}
	return nil
}
