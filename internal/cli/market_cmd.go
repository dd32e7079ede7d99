package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/alexanderramin/atelier/internal/cli/formatter"
	"github.com/alexanderramin/atelier/internal/record"
	"github.com/spf13/cobra"
)

var marketCollections = map[string]record.Collection{
	"segment":       record.CollectionSegments,
	"segments":      record.CollectionSegments,
	"competitor":    record.CollectionCompetitors,
	"competitors":   record.CollectionCompetitors,
	"opportunity":   record.CollectionOpportunities,
	"opportunities": record.CollectionOpportunities,
	"trend":         record.CollectionTrends,
	"trends":        record.CollectionTrends,
}

func newMarketCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "market",
		Short: "Show customer segments, competitors, opportunities and trends",
		RunE: func(cmd *cobra.Command, args []string) error {
			ov, err := app.Market.Overview(context.Background(), planRef(cmd))
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatMarket(ov))
			return nil
		},
	}

	cmd.AddCommand(&cobra.Command{
		Use:     "rm KIND ID",
		Aliases: []string{"remove"},
		Short:   "Remove a segment, competitor, opportunity or trend",
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, ok := marketCollections[strings.ToLower(args[0])]
			if !ok {
				return fmt.Errorf("unknown market record kind %q (use segment, competitor, opportunity or trend)", args[0])
			}
			if err := app.Market.Delete(context.Background(), planRef(cmd), c, args[1]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed %s %s\n", c, args[1])
			return nil
		},
	})

	return cmd
}

func newSwotCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "swot",
		Short: "Derive a SWOT analysis from the market records",
		RunE: func(cmd *cobra.Command, args []string) error {
			report, err := app.Market.Swot(context.Background(), planRef(cmd))
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatSwot(report))
			return nil
		},
	}
}
