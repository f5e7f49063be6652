package ui

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/ngmaloney/drought-terminal/internal/form"
	"github.com/ngmaloney/drought-terminal/internal/horizon"
	"github.com/ngmaloney/drought-terminal/internal/observability"
	"github.com/ngmaloney/drought-terminal/internal/predictor"
)

// AppState represents what the output area currently shows
type AppState int

const (
	StateForm       AppState = iota // Nothing submitted yet
	StateSubmitting                 // Waiting for the forecasting service
	StateResults                    // Results view visible
	StateError                      // Error banner visible
)

// Field identifies a focusable form control
type Field int

const (
	FieldHorizon Field = iota
	FieldScenario
	FieldLevel
	FieldTargetDate
	FieldSubmit
	fieldCount
)

const (
	submitLabel  = "Predecir"
	workingLabel = "Calculando..."
)

// submitButton is the submit control. It is disabled while a request is in flight.
type submitButton struct {
	label    string
	disabled bool
}

// Options configures the controller. It is built once at startup.
type Options struct {
	Client        predictor.Client
	ReferenceDate time.Time
	Scenarios     []string
	Logger        *slog.Logger
	Prefill       form.Input
}

// Model is the prediction form controller
type Model struct {
	state  AppState
	focus  Field
	width  int
	height int

	// Form fields
	horizonInput textinput.Model
	levelInput   textinput.Model
	dateInput    textinput.Model
	scenarios    []string // index 0 is the empty choice
	scenarioIdx  int

	submit  submitButton
	spinner spinner.Model

	client    predictor.Client
	reference time.Time
	logger    *slog.Logger

	// Output
	result  *ResultView
	errText string
}

// NewModel creates the controller
func NewModel(opts Options) Model {
	horizonInput := textinput.New()
	horizonInput.Placeholder = "p. ej. 6"
	horizonInput.CharLimit = 4
	horizonInput.Width = 20

	levelInput := textinput.New()
	levelInput.Placeholder = "opcional, p. ej. 42.5"
	levelInput.CharLimit = 16
	levelInput.Width = 20

	dateInput := textinput.New()
	dateInput.Placeholder = "AAAA-MM-DD o AAAA-MM"
	dateInput.CharLimit = 10
	dateInput.Width = 20

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))

	logger := opts.Logger
	if logger == nil {
		logger = observability.DiscardLogger()
	}

	m := Model{
		state:        StateForm,
		focus:        FieldHorizon,
		horizonInput: horizonInput,
		levelInput:   levelInput,
		dateInput:    dateInput,
		scenarios:    append([]string{""}, opts.Scenarios...),
		submit:       submitButton{label: submitLabel},
		spinner:      s,
		client:       opts.Client,
		reference:    opts.ReferenceDate,
		logger:       logger,
	}
	if len(m.scenarios) > 1 {
		m.scenarioIdx = 1
	}

	m.horizonInput.SetValue(opts.Prefill.HorizonMonths)
	m.levelInput.SetValue(opts.Prefill.CurrentLevel)
	m.dateInput.SetValue(opts.Prefill.TargetDate)
	if opts.Prefill.Scenario != "" {
		m.selectScenario(opts.Prefill.Scenario)
	}

	m.horizonInput.Focus()
	return m
}

// Init initializes the application
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case predictionMsg:
		return m.handlePrediction(msg), nil

	case spinner.TickMsg:
		// Let the tick loop die once the request is done
		if !m.submit.disabled {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m.updateFocusedInput(msg)
}

// handleKey handles keyboard input
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "esc":
		return m, tea.Quit
	case "enter":
		return m.HandleSubmit()
	case "tab", "down":
		return m.setFocus((m.focus + 1) % fieldCount)
	case "shift+tab", "up":
		return m.setFocus((m.focus + fieldCount - 1) % fieldCount)
	}

	if m.focus == FieldScenario {
		switch msg.String() {
		case "right", "l", " ":
			m.scenarioIdx = (m.scenarioIdx + 1) % len(m.scenarios)
		case "left", "h":
			m.scenarioIdx = (m.scenarioIdx + len(m.scenarios) - 1) % len(m.scenarios)
		}
		return m, nil
	}

	return m.updateFocusedInput(msg)
}

// updateFocusedInput forwards a message to the focused text input
func (m Model) updateFocusedInput(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.focus {
	case FieldHorizon:
		m.horizonInput, cmd = m.horizonInput.Update(msg)
	case FieldLevel:
		m.levelInput, cmd = m.levelInput.Update(msg)
	case FieldTargetDate:
		m.dateInput, cmd = m.dateInput.Update(msg)
	}
	return m, cmd
}

// setFocus moves focus to f, blurring the other inputs
func (m Model) setFocus(f Field) (tea.Model, tea.Cmd) {
	m.focus = f
	m.horizonInput.Blur()
	m.levelInput.Blur()
	m.dateInput.Blur()

	switch f {
	case FieldHorizon:
		return m, m.horizonInput.Focus()
	case FieldLevel:
		return m, m.levelInput.Focus()
	case FieldTargetDate:
		return m, m.dateInput.Focus()
	}
	return m, nil
}

// selectScenario selects label, adding it to the choices if unknown
func (m *Model) selectScenario(label string) {
	for i, s := range m.scenarios {
		if s == label {
			m.scenarioIdx = i
			return
		}
	}
	m.scenarios = append(m.scenarios, label)
	m.scenarioIdx = len(m.scenarios) - 1
}

// formInput reads the current field values
func (m Model) formInput() form.Input {
	return form.Input{
		HorizonMonths: m.horizonInput.Value(),
		TargetDate:    m.dateInput.Value(),
		Scenario:      m.scenarios[m.scenarioIdx],
		CurrentLevel:  m.levelInput.Value(),
	}
}

// View renders the UI
func (m Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	title := titleStyle.Render("💧 Predicción de sequía")
	subtitle := mutedStyle.Render(fmt.Sprintf("Última fecha con datos: %s", m.reference.Format(horizon.DisplayLayout)))

	sections := []string{title, subtitle, "", m.viewForm()}

	switch m.state {
	case StateError:
		sections = append(sections, "", errorBannerStyle.Render(m.errText))
	case StateResults:
		if m.result != nil {
			sections = append(sections, RenderResults(*m.result))
		}
	}

	help := helpStyle.Render("Tab/↑↓: Cambiar campo • ←/→: Escenario • Enter: Predecir • Esc: Salir")
	sections = append(sections, help)

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// ErrorText returns the error banner text, empty when no error is shown
func (m Model) ErrorText() string {
	if m.state != StateError {
		return ""
	}
	return m.errText
}

// Result returns the rendered result view, nil when no result is shown
func (m Model) Result() *ResultView {
	if m.state != StateResults {
		return nil
	}
	return m.result
}

// State returns the current output state
func (m Model) State() AppState {
	return m.state
}
