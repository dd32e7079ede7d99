package cli

import (
	"github.com/alexanderramin/atelier/internal/service"
	"github.com/spf13/cobra"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Plans      service.PlanService
	ActionPlan service.ActionPlanService
	Canvas     service.CanvasService
	Market     service.MarketService
	Risk       service.RiskService
	Import     service.ImportService

	// DefaultPlan is the short id used when --plan is not given.
	DefaultPlan string
}

// NewRootCmd creates the top-level "atelier" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "atelier",
		Short:         "Business plan tracker for freelancers and small studios",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().String(planFlag, app.DefaultPlan, "Plan short ID or full ID")

	root.AddCommand(
		newPlanCmd(app),
		newImportCmd(app),
		newActionsCmd(app),
		newTaskCmd(app),
		newMilestoneCmd(app),
		newCanvasCmd(app),
		newMarketCmd(app),
		newSwotCmd(app),
		newRiskCmd(app),
		newIncidentCmd(app),
	)

	return root
}
