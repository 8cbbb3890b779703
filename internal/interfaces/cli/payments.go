package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var markPaidCmd = &cobra.Command{
	Use:   "mark-paid <factura>",
	Short: "Marca una factura como pagada",
	Long: `Marca una factura como pagada. La factura se referencia por su número
completo (INV-2026-0003) o por el índice que muestra 'list' (1 = la más
reciente).`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return setPaid(cmd, args[0], true)
	},
}

var markUnpaidCmd = &cobra.Command{
	Use:   "mark-unpaid <factura>",
	Short: "Marca una factura como pendiente de pago",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return setPaid(cmd, args[0], false)
	},
}

func setPaid(cmd *cobra.Command, ref string, paid bool) error {
	app, err := buildApp()
	if err != nil {
		return err
	}
	number, err := app.svc.Resolve(ref)
	if err != nil {
		return err
	}
	if err := app.svc.MarkPaid(cmd.Context(), number, paid); err != nil {
		return err
	}
	if paid {
		fmt.Printf("Factura %s marcada como PAGADA\n", number)
	} else {
		fmt.Printf("Factura %s marcada como PENDIENTE\n", number)
	}
	return nil
}

func init() {
	rootCmd.AddCommand(markPaidCmd)
	rootCmd.AddCommand(markUnpaidCmd)
}
