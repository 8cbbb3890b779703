package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jhoicas/facturador/pkg/config"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Crea el directorio de configuración con plantillas de ejemplo",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		dir, err := config.ResolveDir(configDirFlag)
		if err != nil {
			return err
		}
		if err := config.Init(dir); err != nil {
			return err
		}
		fmt.Printf("Configuración creada en %s\n", dir)
		fmt.Println("Edite config.toml, clients.toml e items.toml antes de generar facturas.")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
