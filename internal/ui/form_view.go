package ui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

// viewForm renders the input fields and the submit control
func (m Model) viewForm() string {
	rows := []string{
		m.fieldRow(FieldHorizon, "Horizonte (meses)", m.horizonInput.View()),
		m.fieldRow(FieldScenario, "Escenario climático", m.viewScenario()),
		m.fieldRow(FieldLevel, "Nivel actual", m.levelInput.View()),
		m.fieldRow(FieldTargetDate, "Fecha objetivo", m.dateInput.View()),
		"",
		m.viewSubmit(),
	}
	return formBoxStyle.Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}

func (m Model) fieldRow(f Field, label, value string) string {
	style := labelStyle
	if m.focus == f {
		style = focusedLabelStyle
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, style.Render(label), value)
}

func (m Model) viewScenario() string {
	label := m.scenarios[m.scenarioIdx]
	if label == "" {
		label = "(seleccione)"
	}
	if m.focus == FieldScenario {
		return valueStyle.Render(fmt.Sprintf("‹ %s ›", label))
	}
	return valueStyle.Render(label)
}

func (m Model) viewSubmit() string {
	if m.submit.disabled {
		return disabledButtonStyle.Render(fmt.Sprintf("%s %s", m.spinner.View(), m.submit.label))
	}
	if m.focus == FieldSubmit {
		return focusedButtonStyle.Render(m.submit.label)
	}
	return buttonStyle.Render(m.submit.label)
}
