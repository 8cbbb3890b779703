package cli

import (
	"os"
	"sort"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/jhoicas/facturador/pkg/moneyfmt"
)

var clientsCmd = &cobra.Command{
	Use:   "clients",
	Short: "Lista los clientes configurados",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := buildApp()
		if err != nil {
			return err
		}

		ids := make([]string, 0, len(app.clients))
		for id := range app.clients {
			ids = append(ids, id)
		}
		sort.Strings(ids)

		table := newTable([]string{"ID", "Nombre", "Email", "Ciudad"})
		for _, id := range ids {
			c := app.clients[id]
			table.Append([]string{id, c.Name, c.Email, c.City})
		}
		table.Render()
		return nil
	},
}

var itemsCmd = &cobra.Command{
	Use:   "items",
	Short: "Lista el catálogo de líneas facturables",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := buildApp()
		if err != nil {
			return err
		}

		ids := make([]string, 0, len(app.catalog))
		for id := range app.catalog {
			ids = append(ids, id)
		}
		sort.Strings(ids)

		sym := app.cfg.Invoice.CurrencySymbol
		table := newTable([]string{"ID", "Descripción", "Tarifa", "Unidad"})
		for _, id := range ids {
			it := app.catalog[id]
			table.Append([]string{id, it.Description, moneyfmt.Amount(sym, it.Rate), it.Unit})
		}
		table.Render()
		return nil
	},
}

// newTable tabla estándar de los listados: sin bordes, cabecera alineada a
// la izquierda.
func newTable(headers []string) *tablewriter.Table {
	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader(headers)
	table.SetBorder(false)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetHeaderLine(false)
	table.SetColumnSeparator("")
	table.SetAutoWrapText(false)
	return table
}

func init() {
	rootCmd.AddCommand(clientsCmd)
	rootCmd.AddCommand(itemsCmd)
}
