package main

import (
	"context"
	"fmt"
	"math"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/ngmaloney/drought-terminal/internal/models"
	"github.com/ngmaloney/drought-terminal/internal/scenarios"
	"github.com/ngmaloney/drought-terminal/internal/ui"
)

// demoClient fabricates a forecast so the UI can be tried without a backend
type demoClient struct{}

func (demoClient) Predict(ctx context.Context, req models.PredictionRequest) (*models.PredictionResult, error) {
	// Give the spinner something to do
	select {
	case <-time.After(800 * time.Millisecond):
	case <-ctx.Done():
		return nil, ctx.Err()
	}

	if req.Scenario == "error" {
		return nil, models.NewSubmitError(models.RemoteRejection, "escenario no soportado por el modelo")
	}

	level := 45.0
	if req.CurrentLevel != nil {
		level = *req.CurrentLevel
	}
	drift := -1.5
	if req.Scenario == "lluvioso" {
		drift = 1.2
	}

	start := time.Date(2021, time.March, 1, 0, 0, 0, 0, time.UTC)
	result := &models.PredictionResult{}
	var droughtMonths int
	for i := 1; i <= req.HorizonMonths; i++ {
		level = math.Max(0, level+drift+3*math.Sin(float64(i)/2))
		entry := models.MonthEntry{
			Date:       start.AddDate(0, i, 0).Format("2006-01"),
			Level:      level,
			IsDrought:  level < 20,
			IsLowLevel: level < 35,
		}
		switch entry.Category() {
		case models.CategoryDrought:
			entry.SituationLabel = "Emergencia"
			droughtMonths++
		case models.CategoryLowLevel:
			entry.SituationLabel = "Alerta"
		default:
			entry.SituationLabel = "Normalidad"
		}
		result.MonthlyForecast = append(result.MonthlyForecast, entry)
	}

	result.DroughtLikely = droughtMonths > 0
	switch {
	case droughtMonths > req.HorizonMonths/2:
		result.GlobalRisk = "Alto"
	case droughtMonths > 0:
		result.GlobalRisk = "Medio"
	default:
		result.GlobalRisk = "Bajo"
	}
	return result, nil
}

// This demo runs the form against a fabricated forecast
func main() {
	m := ui.NewModel(ui.Options{
		Client:        demoClient{},
		ReferenceDate: time.Date(2021, time.March, 1, 0, 0, 0, 0, time.UTC),
		Scenarios:     append(scenarios.Defaults, "error"),
	})

	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Printf("Error running demo: %v\n", err)
		os.Exit(1)
	}
}
