package models

import "strings"

// SituationCategory is the visual category of a monthly situation label
type SituationCategory string

const (
	CategoryDrought  SituationCategory = "drought"
	CategoryLowLevel SituationCategory = "low-level"
	CategoryNormal   SituationCategory = "normal"
)

// PredictionRequest is the body sent to the forecasting endpoint
type PredictionRequest struct {
	HorizonMonths int      `json:"horizonte_meses"`
	Scenario      string   `json:"escenario"`
	CurrentLevel  *float64 `json:"nivel_actual_usuario"` // nil means unknown
}

// MonthEntry is a single forecast month
type MonthEntry struct {
	Date           string
	Level          float64
	SituationLabel string
	IsDrought      bool
	IsLowLevel     bool
}

// Category picks the situation category. Drought wins over low level.
func (e MonthEntry) Category() SituationCategory {
	switch {
	case e.IsDrought:
		return CategoryDrought
	case e.IsLowLevel:
		return CategoryLowLevel
	default:
		return CategoryNormal
	}
}

// PredictionResult is the parsed response of a successful prediction
type PredictionResult struct {
	GlobalRisk      string
	DroughtLikely   bool
	MonthlyForecast []MonthEntry // Ordered by month
}

// RiskCategory returns the lowercase risk label used for styling
func (r *PredictionResult) RiskCategory() string {
	return strings.ToLower(strings.TrimSpace(r.GlobalRisk))
}
