package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jhoicas/facturador/internal/application/invoicing"
	"github.com/jhoicas/facturador/internal/infrastructure/viewer"
	"github.com/jhoicas/facturador/pkg/moneyfmt"
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Genera el estado de cuenta en PDF de un cliente",
	Example: `  facturador report -c acme
  facturador report -c acme --from 2026-01-01 --to 2026-06-30 --status unpaid`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		clientID, _ := cmd.Flags().GetString("client")
		fromStr, _ := cmd.Flags().GetString("from")
		toStr, _ := cmd.Flags().GetString("to")
		statusStr, _ := cmd.Flags().GetString("status")
		openAfter, _ := cmd.Flags().GetBool("open")

		from, err := parseDateFlag(fromStr)
		if err != nil {
			return err
		}
		to, err := parseDateFlag(toStr)
		if err != nil {
			return err
		}
		paid, err := parseStatusFlag(statusStr)
		if err != nil {
			return err
		}

		app, err := buildApp()
		if err != nil {
			return err
		}

		res, err := app.svc.Statement(cmd.Context(), invoicing.StatementRequest{
			ClientID:    clientID,
			From:        from,
			To:          to,
			Paid:        paid,
			StatusLabel: statusStr,
		})
		if err != nil {
			return err
		}

		if res.Empty {
			fmt.Println("Ninguna factura coincide con los filtros; no se generó reporte.")
			return nil
		}

		sym := app.cfg.Invoice.CurrencySymbol
		fmt.Printf("Estado de cuenta generado: %s\n", res.File)
		fmt.Printf("  Facturas:  %d\n", res.Count)
		fmt.Printf("  Total:     %s\n", moneyfmt.Amount(sym, res.Total))
		fmt.Printf("  Pagado:    %s\n", moneyfmt.Amount(sym, res.Paid))
		fmt.Printf("  Pendiente: %s\n", moneyfmt.Amount(sym, res.Outstanding))

		if openAfter {
			return viewer.Open(res.File)
		}
		return nil
	},
}

func init() {
	reportCmd.Flags().StringP("client", "c", "", "identificador del cliente (clients.toml)")
	reportCmd.Flags().String("from", "", "solo facturas emitidas desde esta fecha (YYYY-MM-DD, inclusive)")
	reportCmd.Flags().String("to", "", "solo facturas emitidas hasta esta fecha (YYYY-MM-DD, inclusive)")
	reportCmd.Flags().String("status", "", "filtra por estado de pago: paid | unpaid")
	reportCmd.Flags().Bool("open", false, "abre el PDF al terminar")
	_ = reportCmd.MarkFlagRequired("client")
	rootCmd.AddCommand(reportCmd)
}
