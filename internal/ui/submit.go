package ui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/ngmaloney/drought-terminal/internal/form"
	"github.com/ngmaloney/drought-terminal/internal/models"
)

// HandleSubmit is the single submission entry point. Validation failures are
// shown immediately; otherwise one prediction request is started.
// It does nothing while a request is already in flight.
func (m Model) HandleSubmit() (tea.Model, tea.Cmd) {
	if m.submit.disabled {
		return m, nil
	}

	m.beginSubmit()

	req, err := form.Resolve(m.formInput(), m.reference)
	if err != nil {
		m.logger.Info("submission rejected", "kind", kindLabel(err), "error", err)
		m.showError(err)
		m.finishSubmit()
		return m, nil
	}

	m.logger.Info("submission started",
		"horizon_months", req.HorizonMonths,
		"scenario", req.Scenario,
		"has_level", req.CurrentLevel != nil)

	return m, tea.Batch(m.spinner.Tick, fetchPrediction(m.client, req))
}

// handlePrediction completes an in-flight submission
func (m Model) handlePrediction(msg predictionMsg) Model {
	m.finishSubmit()

	if msg.err != nil {
		m.logger.Warn("prediction failed", "kind", kindLabel(msg.err), "error", msg.err, "elapsed", msg.elapsed)
		m.showError(msg.err)
		return m
	}

	m.logger.Info("prediction received",
		"risk", msg.result.GlobalRisk,
		"months", len(msg.result.MonthlyForecast),
		"elapsed", msg.elapsed)
	m.showResult(msg.result)
	return m
}

// beginSubmit disables the submit control and clears previous output
func (m *Model) beginSubmit() {
	m.submit.disabled = true
	m.submit.label = workingLabel
	m.state = StateSubmitting
	m.errText = ""
	m.result = nil
}

// finishSubmit restores the submit control
func (m *Model) finishSubmit() {
	m.submit.disabled = false
	m.submit.label = submitLabel
}

// showResult renders a successful prediction
func (m *Model) showResult(r *models.PredictionResult) {
	view := BuildResultView(r)
	m.result = &view
	m.errText = ""
	m.state = StateResults
}

// showError renders a failed submission and hides any results
func (m *Model) showError(err error) {
	m.errText = ErrorMessage(err)
	m.result = nil
	m.state = StateError
}

func kindLabel(err error) string {
	if kind, ok := models.KindOf(err); ok {
		return kind.String()
	}
	return "unknown"
}
