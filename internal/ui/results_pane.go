package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/ngmaloney/drought-terminal/internal/models"
)

// Visual categories for table cells
const (
	classDrought   = string(models.CategoryDrought)
	classLowLevel  = string(models.CategoryLowLevel)
	classNormal    = string(models.CategoryNormal)
	classBoolTrue  = "bool-true"
	classBoolFalse = "bool-false"
)

const (
	droughtLikelyText = "⚠️  Sequía probable en el horizonte consultado"
	noDroughtText     = "✅ No se espera sequía en el horizonte consultado"
)

// ResultRow is one rendered month
type ResultRow struct {
	Date           string
	Level          string // Two decimals
	Situation      string
	SituationClass string
	Drought        string // "Sí" or "No"
	DroughtClass   string
	LowLevel       string
	LowLevelClass  string
}

// ResultView is everything the results section displays
type ResultView struct {
	Risk      string
	RiskClass string // Lowercase risk label, styling only
	Summary   string
	Rows      []ResultRow
}

// BuildResultView turns a prediction into its rendered form
func BuildResultView(r *models.PredictionResult) ResultView {
	v := ResultView{
		Risk:      r.GlobalRisk,
		RiskClass: r.RiskCategory(),
		Summary:   noDroughtText,
		Rows:      make([]ResultRow, 0, len(r.MonthlyForecast)),
	}
	if r.DroughtLikely {
		v.Summary = droughtLikelyText
	}

	for _, e := range r.MonthlyForecast {
		drought, droughtClass := yesNo(e.IsDrought)
		low, lowClass := yesNo(e.IsLowLevel)
		v.Rows = append(v.Rows, ResultRow{
			Date:           e.Date,
			Level:          fmt.Sprintf("%.2f", e.Level),
			Situation:      e.SituationLabel,
			SituationClass: string(e.Category()),
			Drought:        drought,
			DroughtClass:   droughtClass,
			LowLevel:       low,
			LowLevelClass:  lowClass,
		})
	}
	return v
}

func yesNo(b bool) (string, string) {
	if b {
		return "Sí", classBoolTrue
	}
	return "No", classBoolFalse
}

// RenderResults renders the risk box, the summary line and the monthly table
func RenderResults(v ResultView) string {
	riskBox := riskBoxStyle.
		BorderForeground(riskColor(v.RiskClass)).
		Foreground(riskColor(v.RiskClass)).
		Render(fmt.Sprintf("Riesgo global: %s", strings.ToUpper(v.Risk)))

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorBorder)).
		Headers("Fecha", "Nivel", "Situación", "Sequía", "Nivel bajo").
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return tableHeaderStyle
			}
			if row < 0 || row >= len(v.Rows) {
				return tableCellStyle
			}
			r := v.Rows[row]
			switch col {
			case 2:
				return cellStyle(r.SituationClass)
			case 3:
				return cellStyle(r.DroughtClass)
			case 4:
				return cellStyle(r.LowLevelClass)
			default:
				return tableCellStyle
			}
		})
	for _, r := range v.Rows {
		t.Row(r.Date, r.Level, r.Situation, r.Drought, r.LowLevel)
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		sectionHeaderStyle.Render("📊 RESULTADO"),
		riskBox,
		valueStyle.Render(v.Summary),
		"",
		t.String(),
	)
}
