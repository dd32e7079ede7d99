package cli

import (
	"context"
	"fmt"

	"github.com/alexanderramin/atelier/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newActionsCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:     "actions",
		Aliases: []string{"action-plan"},
		Short:   "Show milestones and tasks with progress",
		RunE: func(cmd *cobra.Command, args []string) error {
			ov, err := app.ActionPlan.Overview(context.Background(), planRef(cmd))
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatActionPlan(ov))
			return nil
		},
	}
}

func newTaskCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "task",
		Short: "Update or remove tasks",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "status ID STATUS",
			Short: "Set a task's status (todo, in-progress, blocked, done, cancelled)",
			Args:  cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				status, err := parseStatus(args[1])
				if err != nil {
					return err
				}
				t, err := app.ActionPlan.SetTaskStatus(context.Background(), planRef(cmd), args[0], status)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s %s  %s\n", t.ID, t.Title, formatter.StatusPill(t.Status))
				return nil
			},
		},
		&cobra.Command{
			Use:     "rm ID",
			Aliases: []string{"remove"},
			Short:   "Remove a task and drop it from other tasks' dependencies",
			Args:    cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				if err := app.ActionPlan.DeleteTask(context.Background(), planRef(cmd), args[0]); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Removed task %s\n", args[0])
				return nil
			},
		},
	)

	return cmd
}

func newMilestoneCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "milestone",
		Short: "Update or remove milestones",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "status ID STATUS",
			Short: "Set a milestone's status",
			Args:  cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				status, err := parseStatus(args[1])
				if err != nil {
					return err
				}
				m, err := app.ActionPlan.SetMilestoneStatus(context.Background(), planRef(cmd), args[0], status)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s %s  %s %s\n", m.ID, m.Title,
					formatter.StatusPill(m.Status), formatter.RenderProgress(m.Progress, 10))
				return nil
			},
		},
		&cobra.Command{
			Use:     "rm ID",
			Aliases: []string{"remove"},
			Short:   "Remove a milestone; its tasks become unassigned",
			Args:    cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				if err := app.ActionPlan.DeleteMilestone(context.Background(), planRef(cmd), args[0]); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Removed milestone %s\n", args[0])
				return nil
			},
		},
	)

	return cmd
}
