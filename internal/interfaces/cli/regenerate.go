package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jhoicas/facturador/internal/infrastructure/viewer"
)

var regenerateCmd = &cobra.Command{
	Use:   "regenerate <factura>",
	Short: "Vuelve a producir el PDF de una factura existente",
	Long: `Vuelve a producir el PDF de una factura ya emitida a partir de los datos
almacenados, conservando su número y su fecha. Con --item las líneas de la
factura se reemplazan por las indicadas (útil para corregir una factura antes
de enviarla); el contador de numeración no se toca en ningún caso.`,
	Example: `  facturador regenerate INV-2026-0003
  facturador regenerate 1 -i consulting:10 --open`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		itemSpecs, _ := cmd.Flags().GetStringArray("item")
		openAfter, _ := cmd.Flags().GetBool("open")

		items, err := parseItemSpecs(itemSpecs)
		if err != nil {
			return err
		}

		app, err := buildApp()
		if err != nil {
			return err
		}
		number, err := app.svc.Resolve(args[0])
		if err != nil {
			return err
		}

		path, err := app.svc.Regenerate(cmd.Context(), number, items)
		if err != nil {
			return err
		}
		fmt.Printf("Factura %s regenerada: %s\n", number, path)

		if openAfter {
			return viewer.Open(path)
		}
		return nil
	},
}

func init() {
	regenerateCmd.Flags().StringArrayP("item", "i", nil, "reemplaza las líneas: id o id:cantidad (repetible)")
	regenerateCmd.Flags().Bool("open", false, "abre el PDF al terminar")
	rootCmd.AddCommand(regenerateCmd)
}
