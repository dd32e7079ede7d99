package cli

import (
	"context"
	"fmt"

	"github.com/alexanderramin/atelier/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newImportCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "import FILE",
		Short: "Import a plan from a JSON export",
		Long: `Import a plan and its collections from a JSON file.

Legacy field names and localized enum values are accepted. When a plan with
the same short ID exists, records are merged into it by ID.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := app.Import.ImportPlan(context.Background(), args[0])
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatImportResult(result))
			return nil
		},
	}
}
