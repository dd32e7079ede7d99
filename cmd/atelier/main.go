package main

import (
	"fmt"
	"os"

	"github.com/alexanderramin/atelier/internal/adapter"
	"github.com/alexanderramin/atelier/internal/cli"
	"github.com/alexanderramin/atelier/internal/config"
	"github.com/alexanderramin/atelier/internal/db"
	"github.com/alexanderramin/atelier/internal/service"
	"github.com/alexanderramin/atelier/internal/swot"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	// Open database
	database, err := db.OpenDB(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	uow := db.NewSQLiteUnitOfWork(database)

	var observer service.UseCaseObserver = service.NoopUseCaseObserver{}
	if cfg.LogUseCases {
		observer = service.NewLogUseCaseObserver(os.Stderr)
	}

	// Plain output when piped.
	if !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd()) {
		lipgloss.SetColorProfile(termenv.Ascii)
	}

	ids := adapter.TimestampIDs{}
	app := &cli.App{
		Plans:       service.NewPlanService(uow, nil, observer),
		ActionPlan:  service.NewActionPlanService(uow, nil, ids, observer),
		Canvas:      service.NewCanvasService(uow, nil, ids, observer),
		Market:      service.NewMarketService(uow, swot.NewSynthesizer(cfg.Settings.Swot), nil, ids, observer),
		Risk:        service.NewRiskService(uow, nil, ids, observer),
		Import:      service.NewImportService(uow, nil, ids, observer),
		DefaultPlan: cfg.Settings.DefaultPlan,
	}

	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}
