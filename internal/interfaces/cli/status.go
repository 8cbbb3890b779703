package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jhoicas/facturador/internal/domain/billing"
	"github.com/jhoicas/facturador/pkg/moneyfmt"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Muestra el estado del contador y el resumen del libro",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := buildApp()
		if err != nil {
			return err
		}

		st, err := app.svc.Snapshot()
		if err != nil {
			return err
		}
		next, err := app.svc.NextNumber()
		if err != nil {
			return err
		}

		stmt := billing.QueryLedger(st.Ledger, billing.Filter{})
		pending := 0
		for _, e := range stmt.Rows {
			if !e.Paid {
				pending++
			}
		}

		sym := app.cfg.Invoice.CurrencySymbol
		fmt.Printf("Configuración:    %s\n", app.cfg.Dir)
		fmt.Printf("Próximo número:   %s\n", next)
		fmt.Printf("Facturas emitidas: %d\n", len(st.Ledger))
		fmt.Printf("Pendientes:       %d (%s)\n", pending, moneyfmt.Amount(sym, stmt.Outstanding))
		fmt.Printf("Facturado total:  %s\n", moneyfmt.Amount(sym, stmt.Total))

		if len(stmt.Rows) > 0 {
			fmt.Println("\nÚltimas facturas:")
			recent := stmt.Rows
			if len(recent) > recentLimit {
				recent = recent[:recentLimit]
			}
			table := newTable([]string{"Número", "Fecha", "Cliente", "Estado", "Total"})
			for _, e := range recent {
				status := "PENDIENTE"
				if e.Paid {
					status = "PAGADA"
				}
				table.Append([]string{
					e.Number, e.IssueDate.String(), e.ClientID, status,
					moneyfmt.Amount(sym, e.Total),
				})
			}
			table.Render()
		}
		return nil
	},
}

// recentLimit cuántas facturas recientes muestra status.
const recentLimit = 5

func init() {
	rootCmd.AddCommand(statusCmd)
}
