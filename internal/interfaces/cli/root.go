// Package cli define los comandos del facturador sobre Cobra. Cada comando
// resuelve flags y argumentos, delega en el servicio de facturación e imprime
// tablas y resúmenes por stdout; el logging estructurado va por stderr.
package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jhoicas/facturador/internal/domain"
)

var configDirFlag string

var rootCmd = &cobra.Command{
	Use:   "facturador",
	Short: "Asistente local de facturación",
	Long: `Facturador genera facturas en PDF para los clientes de un catálogo local,
mantiene la numeración secuencial por año y produce estados de cuenta.

Toda la configuración vive en archivos TOML bajo el directorio de
configuración (~/.facturador por defecto); no hay red ni base de datos.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configDirFlag, "config-dir", "C", "",
		"directorio de configuración (default: $FACTURADOR_CONFIG_DIR o ~/.facturador)")
}

// Execute ejecuta el comando raíz y traduce errores a salida de usuario.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)

		// El huérfano de un commit fallido se reporta explícitamente para
		// que el usuario pueda reconciliar a mano.
		var commitErr *domain.CommitError
		if errors.As(err, &commitErr) {
			fmt.Fprintf(os.Stderr,
				"Atención: el documento %s se generó pero NO quedó registrado en el libro.\n",
				commitErr.OrphanFile)
		}
		os.Exit(1)
	}
}
