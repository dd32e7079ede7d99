package cli

import (
	"context"
	"fmt"

	"github.com/alexanderramin/atelier/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newCanvasCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "canvas",
		Short: "Show the business model canvas and pricing",
		RunE: func(cmd *cobra.Command, args []string) error {
			ov, err := app.Canvas.Overview(context.Background(), planRef(cmd))
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatCanvas(ov))
			return nil
		},
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:     "rm ID",
			Aliases: []string{"remove"},
			Short:   "Remove a canvas item",
			Args:    cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				if err := app.Canvas.DeleteItem(context.Background(), planRef(cmd), args[0]); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Removed canvas item %s\n", args[0])
				return nil
			},
		},
		&cobra.Command{
			Use:   "pricing-rm ID",
			Short: "Remove a pricing entry",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				if err := app.Canvas.DeletePricing(context.Background(), planRef(cmd), args[0]); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Removed pricing entry %s\n", args[0])
				return nil
			},
		},
	)

	return cmd
}
