package cli

import (
	"context"
	"fmt"

	"github.com/alexanderramin/atelier/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newRiskCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "risk",
		Short: "Show client risk levels and open incidents",
		RunE: func(cmd *cobra.Command, args []string) error {
			ov, err := app.Risk.Overview(context.Background(), planRef(cmd))
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatRisk(ov))
			return nil
		},
	}

	cmd.AddCommand(&cobra.Command{
		Use:     "rm CLIENT",
		Aliases: []string{"remove"},
		Short:   "Remove a client and its incidents",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Risk.DeleteClient(context.Background(), planRef(cmd), args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed client %s\n", args[0])
			return nil
		},
	})

	return cmd
}

func newIncidentCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "incident",
		Short: "Manage client incidents",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "resolve CLIENT INCIDENT",
		Short: "Mark an incident resolved",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := app.Risk.ResolveIncident(context.Background(), planRef(cmd), args[0], args[1])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Resolved incident %s of %s (%s outstanding)\n",
				args[1], c.Name, formatter.FormatMoney(c.OutstandingAmount(), ""))
			return nil
		},
	})

	return cmd
}
