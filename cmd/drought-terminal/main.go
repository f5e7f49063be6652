package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/ngmaloney/drought-terminal/internal/config"
	"github.com/ngmaloney/drought-terminal/internal/form"
	"github.com/ngmaloney/drought-terminal/internal/observability"
	"github.com/ngmaloney/drought-terminal/internal/predictor"
	"github.com/ngmaloney/drought-terminal/internal/scenarios"
	"github.com/ngmaloney/drought-terminal/internal/ui"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

// run wires the application and returns the process exit code, so deferred
// cleanup finishes before main exits.
func run(args []string) int {
	fs := flag.NewFlagSet("drought-terminal", flag.ExitOnError)
	horizonMonths := fs.String("horizon", "", "Prefill the forecast horizon in months (e.g., 6)")
	targetDate := fs.String("date", "", "Prefill the target date, YYYY-MM-DD or YYYY-MM (takes priority over --horizon)")
	scenario := fs.String("scenario", "", "Prefill the climate scenario label")
	level := fs.String("level", "", "Prefill the current level (leave empty if unknown)")
	printOnly := fs.Bool("print", false, "Run a single prediction with the given values and print it instead of starting the UI")
	addScenario := fs.String("add-scenario", "", "Add a scenario label to the local catalog and exit")
	removeScenario := fs.String("remove-scenario", "", "Remove a scenario label from the local catalog and exit")
	fs.Parse(args)

	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return 1
	}

	logger, closer, err := newLogger(cfg)
	if err != nil {
		fmt.Printf("Error opening log file: %v\n", err)
		return 1
	}
	defer closer.Close()

	repo := scenarios.NewRepository(cfg.DBPath)
	if *addScenario != "" || *removeScenario != "" {
		if err := editCatalog(repo, *addScenario, *removeScenario); err != nil {
			fmt.Printf("Error: %v\n", err)
			return 1
		}
		return 0
	}

	client := predictor.NewHTTPClient(cfg.BackendURL, logger)
	prefill := form.Input{
		HorizonMonths: *horizonMonths,
		TargetDate:    *targetDate,
		Scenario:      *scenario,
		CurrentLevel:  *level,
	}

	if *printOnly {
		return runOnce(client, cfg, prefill)
	}

	logger.Info("starting", "backend", cfg.BackendURL, "reference_date", cfg.ReferenceDate.Format("2006-01-02"))

	model := ui.NewModel(ui.Options{
		Client:        client,
		ReferenceDate: cfg.ReferenceDate,
		Scenarios:     loadScenarios(repo, logger),
		Logger:        logger,
		Prefill:       prefill,
	})

	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Printf("Error running application: %v\n", err)
		return 1
	}
	return 0
}

// newLogger sends logs to LOG_FILE, or drops them when unset.
// The terminal belongs to the UI.
func newLogger(cfg *config.Config) (*slog.Logger, io.Closer, error) {
	if cfg.LogFile == "" {
		return observability.DiscardLogger(), io.NopCloser(nil), nil
	}
	f, err := tea.LogToFile(cfg.LogFile, "drought-terminal")
	if err != nil {
		return nil, nil, err
	}
	return observability.NewLogger(f, cfg.LogLevel, cfg.LogFormat), f, nil
}

// loadScenarios reads the catalog, falling back to the defaults when the
// database is unavailable
func loadScenarios(repo *scenarios.Repository, logger *slog.Logger) []string {
	labels, err := repo.LoadOrSeed()
	if err != nil {
		logger.Warn("scenario catalog unavailable, using defaults", "error", err)
		return scenarios.Defaults
	}
	return labels
}

func editCatalog(repo *scenarios.Repository, add, remove string) error {
	if add != "" {
		if err := repo.Save(add); err != nil {
			return err
		}
	}
	if remove != "" {
		if err := repo.Delete(remove); err != nil {
			return err
		}
	}
	labels, err := repo.List()
	if err != nil {
		return err
	}
	fmt.Printf("Scenarios: %v\n", labels)
	return nil
}

// runOnce performs one submission without the UI and returns the exit code
func runOnce(client predictor.Client, cfg *config.Config, in form.Input) int {
	req, err := form.Resolve(in, cfg.ReferenceDate)
	if err != nil {
		fmt.Println(ui.RenderError(err))
		return 1
	}

	result, err := client.Predict(context.Background(), req)
	if err != nil {
		fmt.Println(ui.RenderError(err))
		return 1
	}

	fmt.Println(ui.RenderResults(ui.BuildResultView(result)))
	return 0
}
