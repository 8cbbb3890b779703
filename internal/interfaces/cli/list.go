package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/jhoicas/facturador/internal/domain/billing"
	"github.com/jhoicas/facturador/pkg/moneyfmt"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Lista las facturas emitidas, la más reciente primero",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")

		app, err := buildApp()
		if err != nil {
			return err
		}
		st, err := app.svc.Snapshot()
		if err != nil {
			return err
		}

		if len(st.Ledger) == 0 {
			fmt.Println("No hay facturas emitidas todavía.")
			return nil
		}

		// Los totales del pie cubren siempre el libro completo, incluso con
		// --limit: el recorte es solo de la tabla.
		stmt := billing.QueryLedger(st.Ledger, billing.Filter{})

		rows := stmt.Rows
		if limit > 0 && limit < len(rows) {
			rows = rows[:limit]
		}

		sym := app.cfg.Invoice.CurrencySymbol
		table := newTable([]string{"#", "Número", "Fecha", "Cliente", "Estado", "Total"})
		for i, e := range rows {
			status := "PENDIENTE"
			if e.Paid {
				status = "PAGADA"
			}
			name := e.ClientID
			if c, ok := app.clients[e.ClientID]; ok {
				name = c.Name
			}
			table.Append([]string{
				strconv.Itoa(i + 1),
				e.Number,
				e.IssueDate.String(),
				name,
				status,
				moneyfmt.Amount(sym, e.Total),
			})
		}
		table.Render()

		fmt.Printf("\nTOTAL:     %s\n", moneyfmt.Amount(sym, stmt.Total))
		fmt.Printf("PAGADO:    %s\n", moneyfmt.Amount(sym, stmt.Paid))
		fmt.Printf("PENDIENTE: %s\n", moneyfmt.Amount(sym, stmt.Outstanding))
		return nil
	},
}

func init() {
	listCmd.Flags().IntP("limit", "n", 0, "máximo de filas a mostrar (0 = todas)")
	rootCmd.AddCommand(listCmd)
}
