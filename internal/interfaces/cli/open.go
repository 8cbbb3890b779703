package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jhoicas/facturador/internal/infrastructure/viewer"
)

var openCmd = &cobra.Command{
	Use:   "open <factura>",
	Short: "Abre el PDF de una factura con el visor del sistema",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := buildApp()
		if err != nil {
			return err
		}
		number, err := app.svc.Resolve(args[0])
		if err != nil {
			return err
		}
		path, err := app.svc.InvoicePath(number)
		if err != nil {
			return err
		}
		fmt.Printf("Abriendo %s\n", path)
		return viewer.Open(path)
	},
}

func init() {
	rootCmd.AddCommand(openCmd)
}
