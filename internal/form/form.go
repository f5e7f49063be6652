// Package form turns raw form field values into a PredictionRequest.
package form

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/ngmaloney/drought-terminal/internal/horizon"
	"github.com/ngmaloney/drought-terminal/internal/models"
)

// Input holds the raw field values as typed by the user
type Input struct {
	HorizonMonths string // Manual horizon, may be empty
	TargetDate    string // Takes priority over HorizonMonths when set
	Scenario      string
	CurrentLevel  string // Empty means unknown
}

// Resolve validates the input and builds the request payload.
// Steps run in order and the first failure is returned.
func Resolve(in Input, reference time.Time) (models.PredictionRequest, error) {
	scenario, err := ResolveScenario(in.Scenario)
	if err != nil {
		return models.PredictionRequest{}, err
	}

	level, err := ResolveLevel(in.CurrentLevel)
	if err != nil {
		return models.PredictionRequest{}, err
	}

	months, err := ResolveHorizon(in.TargetDate, in.HorizonMonths, reference)
	if err != nil {
		return models.PredictionRequest{}, err
	}

	return models.PredictionRequest{
		HorizonMonths: months,
		Scenario:      scenario,
		CurrentLevel:  level,
	}, nil
}

// ResolveScenario fails with MissingScenario on an empty value
func ResolveScenario(s string) (string, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", models.NewSubmitError(models.MissingScenario, "seleccione un escenario climático")
	}
	return s, nil
}

// ResolveLevel returns nil for an empty field
func ResolveLevel(s string) (*float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil, models.WrapSubmitError(models.InvalidLevel,
			fmt.Sprintf("nivel actual inválido: %q", s), err)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return nil, models.NewSubmitError(models.InvalidLevel,
			fmt.Sprintf("nivel actual inválido: %q", s))
	}
	return &v, nil
}

// ResolveHorizon prefers the target date; the manual value is only used when
// no date was entered.
func ResolveHorizon(targetDate, manual string, reference time.Time) (int, error) {
	if strings.TrimSpace(targetDate) != "" {
		return horizon.MonthsAfter(targetDate, reference)
	}

	manual = strings.TrimSpace(manual)
	if manual == "" {
		return 0, models.NewSubmitError(models.MissingHorizon,
			"indique un horizonte en meses o una fecha objetivo")
	}

	months, err := strconv.Atoi(manual)
	if err != nil || months < 1 {
		return 0, models.WrapSubmitError(models.InvalidHorizon,
			fmt.Sprintf("horizonte inválido: %q", manual), err)
	}
	return months, nil
}
