package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jhoicas/facturador/internal/application/invoicing"
	"github.com/jhoicas/facturador/internal/infrastructure/viewer"
	"github.com/jhoicas/facturador/pkg/moneyfmt"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Genera una nueva factura con el siguiente número de la secuencia",
	Example: `  facturador generate -c acme -i consulting:8
  facturador generate -c acme -i consulting:8 -i project-setup --open`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		clientID, _ := cmd.Flags().GetString("client")
		itemSpecs, _ := cmd.Flags().GetStringArray("item")
		output, _ := cmd.Flags().GetString("output")
		openAfter, _ := cmd.Flags().GetBool("open")

		items, err := parseItemSpecs(itemSpecs)
		if err != nil {
			return err
		}

		app, err := buildApp()
		if err != nil {
			return err
		}

		res, err := app.svc.Generate(cmd.Context(), invoicing.GenerateRequest{
			ClientID:   clientID,
			Items:      items,
			OutputPath: output,
		})
		if err != nil {
			return err
		}

		sym := app.cfg.Invoice.CurrencySymbol
		fmt.Printf("Factura %s generada para %s\n", res.Number, res.Client.Name)
		fmt.Printf("  Subtotal:  %s\n", moneyfmt.Amount(sym, res.Totals.Subtotal))
		fmt.Printf("  Impuesto:  %s\n", moneyfmt.Amount(sym, res.Totals.TaxAmount))
		fmt.Printf("  Total:     %s\n", moneyfmt.Amount(sym, res.Totals.GrandTotal))
		fmt.Printf("  Documento: %s\n", res.File)

		if openAfter {
			return viewer.Open(res.File)
		}
		return nil
	},
}

func init() {
	generateCmd.Flags().StringP("client", "c", "", "identificador del cliente (clients.toml)")
	generateCmd.Flags().StringArrayP("item", "i", nil, "línea a facturar: id o id:cantidad (repetible)")
	generateCmd.Flags().StringP("output", "o", "", "ruta del PDF (default: <output_dir>/<número>.pdf)")
	generateCmd.Flags().Bool("open", false, "abre el PDF al terminar")
	_ = generateCmd.MarkFlagRequired("client")
	_ = generateCmd.MarkFlagRequired("item")
	rootCmd.AddCommand(generateCmd)
}
