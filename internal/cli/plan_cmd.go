package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/alexanderramin/atelier/internal/cli/formatter"
	"github.com/alexanderramin/atelier/internal/domain"
	"github.com/spf13/cobra"
)

func newPlanCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Manage business plans",
	}

	cmd.AddCommand(
		newPlanAddCmd(app),
		newPlanListCmd(app),
		newPlanRenameCmd(app),
		newPlanRemoveCmd(app),
	)

	return cmd
}

func newPlanAddCmd(app *App) *cobra.Command {
	var shortID, name, owner, activity, currency string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create a new plan",
		RunE: func(cmd *cobra.Command, args []string) error {
			p := &domain.Plan{
				ShortID:  strings.ToUpper(shortID),
				Name:     name,
				Owner:    owner,
				Activity: activity,
				Currency: currency,
			}
			if err := app.Plans.Create(context.Background(), p); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Created plan %s [%s]\n", p.Name, p.ShortID)
			return nil
		},
	}

	cmd.Flags().StringVar(&shortID, "id", "", "Short ID (3-6 uppercase letters + 2-4 digits, e.g. WEB01)")
	cmd.Flags().StringVar(&name, "name", "", "Plan name")
	cmd.Flags().StringVar(&owner, "owner", "", "Owner name")
	cmd.Flags().StringVar(&activity, "activity", "", "Business activity, e.g. web design")
	cmd.Flags().StringVar(&currency, "currency", "", "Currency code (default EUR)")
	_ = cmd.MarkFlagRequired("id")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

func newPlanListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List plans",
		RunE: func(cmd *cobra.Command, args []string) error {
			summaries, err := app.Plans.List(context.Background())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(summaries) == 0 {
				fmt.Fprintln(out, "No plans found.")
				return nil
			}
			defaultPlan, _ := cmd.Flags().GetString(planFlag)
			fmt.Fprintln(out, formatter.FormatPlanList(summaries, defaultPlan))
			return nil
		},
	}
}

func newPlanRenameCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "rename ID NAME",
		Short: "Rename a plan",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := app.Plans.Rename(context.Background(), args[0], args[1])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Renamed plan [%s] to %s\n", p.ShortID, p.Name)
			return nil
		},
	}
}

func newPlanRemoveCmd(app *App) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:     "rm ID",
		Aliases: []string{"remove"},
		Short:   "Remove a plan and every record it holds",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			p, err := app.Plans.Get(ctx, args[0])
			if err != nil {
				return err
			}
			if !force {
				n, err := recordCount(ctx, app, p.ID)
				if err != nil {
					return err
				}
				if n > 0 {
					return fmt.Errorf("plan %s holds %d records (use --force to remove it anyway)", p.DisplayID(), n)
				}
			}
			if err := app.Plans.Delete(ctx, p.ID); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed plan %s [%s]\n", p.Name, p.DisplayID())
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Remove even if the plan holds records")

	return cmd
}

func recordCount(ctx context.Context, app *App, planID string) (int, error) {
	summaries, err := app.Plans.List(ctx)
	if err != nil {
		return 0, err
	}
	for _, s := range summaries {
		if s.Plan.ID != planID {
			continue
		}
		n := 0
		for _, c := range s.Counts {
			n += c
		}
		return n, nil
	}
	return 0, nil
}
