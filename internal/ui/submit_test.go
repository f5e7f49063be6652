package ui

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/ngmaloney/drought-terminal/internal/models"
	"github.com/ngmaloney/drought-terminal/internal/predictor"
)

// mockClient records calls and returns canned data
type mockClient struct {
	result    *models.PredictionResult
	err       error
	panicWith any
	calls     int
	lastReq   models.PredictionRequest
}

func (c *mockClient) Predict(ctx context.Context, req models.PredictionRequest) (*models.PredictionResult, error) {
	c.calls++
	c.lastReq = req
	if c.panicWith != nil {
		panic(c.panicWith)
	}
	return c.result, c.err
}

func sampleResult() *models.PredictionResult {
	return &models.PredictionResult{
		GlobalRisk:    "Alto",
		DroughtLikely: true,
		MonthlyForecast: []models.MonthEntry{
			{Date: "2022-05", Level: 12.347, SituationLabel: "Alerta", IsDrought: true, IsLowLevel: false},
		},
	}
}

// runCmd executes cmd (expanding batches) and returns the produced messages
func runCmd(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, c := range batch {
			out = append(out, runCmd(c)...)
		}
		return out
	}
	return []tea.Msg{msg}
}

// submitAndComplete presses Enter, runs the outbound command and feeds its
// result back into the model
func submitAndComplete(t *testing.T, m Model) Model {
	t.Helper()

	m, cmd := pressKey(m, tea.KeyEnter)
	for _, msg := range runCmd(cmd) {
		if pm, ok := msg.(predictionMsg); ok {
			updatedModel, _ := m.Update(pm)
			return updatedModel.(Model)
		}
	}
	return m
}

func assertSubmitRestored(t *testing.T, m Model) {
	t.Helper()
	if m.submit.disabled {
		t.Error("submit control should be enabled after the submission completes")
	}
	if m.submit.label != submitLabel {
		t.Errorf("submit label = %q, want %q", m.submit.label, submitLabel)
	}
}

func TestSubmit_Success(t *testing.T) {
	client := &mockClient{result: sampleResult()}
	m := newTestModel(client)
	m = typeText(m, "6")

	// Step 1: Enter starts the request and disables the control
	m, cmd := pressKey(m, tea.KeyEnter)
	if m.state != StateSubmitting {
		t.Errorf("state = %v, want StateSubmitting", m.state)
	}
	if !m.submit.disabled || m.submit.label != workingLabel {
		t.Errorf("submit = %+v, want disabled with working label", m.submit)
	}
	if cmd == nil {
		t.Fatal("Expected command to fetch the prediction")
	}

	// Step 2: A second Enter while in flight is ignored
	m, second := pressKey(m, tea.KeyEnter)
	if second != nil {
		t.Error("Enter while submitting should not start another request")
	}

	// Step 3: Run the outbound call and deliver the result
	var delivered bool
	for _, msg := range runCmd(cmd) {
		if pm, ok := msg.(predictionMsg); ok {
			updatedModel, _ := m.Update(pm)
			m = updatedModel.(Model)
			delivered = true
		}
	}
	if !delivered {
		t.Fatal("command did not produce a predictionMsg")
	}

	if client.calls != 1 {
		t.Errorf("client calls = %d, want 1", client.calls)
	}
	if client.lastReq.HorizonMonths != 6 || client.lastReq.Scenario != "base" || client.lastReq.CurrentLevel != nil {
		t.Errorf("request = %+v, want horizon 6, scenario base, nil level", client.lastReq)
	}

	if m.State() != StateResults {
		t.Errorf("state = %v, want StateResults", m.State())
	}
	if m.ErrorText() != "" {
		t.Errorf("ErrorText() = %q, want empty alongside results", m.ErrorText())
	}
	assertSubmitRestored(t, m)

	v := m.Result()
	if v == nil {
		t.Fatal("Result() = nil, want rendered results")
	}
	if v.RiskClass != "alto" {
		t.Errorf("RiskClass = %q, want 'alto'", v.RiskClass)
	}
	if len(v.Rows) != 1 {
		t.Fatalf("rows = %d, want 1", len(v.Rows))
	}
	row := v.Rows[0]
	if row.Level != "12.35" {
		t.Errorf("Level = %q, want '12.35'", row.Level)
	}
	if row.SituationClass != classDrought {
		t.Errorf("SituationClass = %q, want %q", row.SituationClass, classDrought)
	}
	if row.Drought != "Sí" || row.LowLevel != "No" {
		t.Errorf("Drought/LowLevel = %q/%q, want Sí/No", row.Drought, row.LowLevel)
	}
}

func TestSubmit_TargetDateOverridesManualHorizon(t *testing.T) {
	client := &mockClient{result: sampleResult()}
	m := newTestModel(client)
	m.horizonInput.SetValue("3")
	m.dateInput.SetValue("2022-05-01")

	m = submitAndComplete(t, m)

	if client.lastReq.HorizonMonths != 14 {
		t.Errorf("HorizonMonths = %d, want 14", client.lastReq.HorizonMonths)
	}
	if m.State() != StateResults {
		t.Errorf("state = %v, want StateResults", m.State())
	}
}

func TestSubmit_ValidationErrors(t *testing.T) {
	tests := []struct {
		name     string
		setup    func(m *Model)
		wantText string
	}{
		{
			name:     "missing horizon",
			setup:    func(m *Model) {},
			wantText: "indique un horizonte",
		},
		{
			name: "missing scenario",
			setup: func(m *Model) {
				m.horizonInput.SetValue("6")
				m.scenarioIdx = 0
			},
			wantText: "escenario",
		},
		{
			name: "target date not after reference",
			setup: func(m *Model) {
				m.dateInput.SetValue("2021-03-01")
			},
			wantText: "01/03/2021",
		},
		{
			name: "invalid target date",
			setup: func(m *Model) {
				m.dateInput.SetValue("2022-02-30")
			},
			wantText: "fecha inválida",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := &mockClient{result: sampleResult()}
			m := newTestModel(client)
			tt.setup(&m)

			m, cmd := pressKey(m, tea.KeyEnter)

			if cmd != nil {
				t.Error("validation failure should not return a command")
			}
			if client.calls != 0 {
				t.Errorf("client calls = %d, want 0", client.calls)
			}
			if m.State() != StateError {
				t.Errorf("state = %v, want StateError", m.State())
			}
			if !strings.HasPrefix(m.ErrorText(), "❌ ") {
				t.Errorf("ErrorText() = %q, want warning glyph prefix", m.ErrorText())
			}
			if !strings.Contains(m.ErrorText(), tt.wantText) {
				t.Errorf("ErrorText() = %q, want it to contain %q", m.ErrorText(), tt.wantText)
			}
			if m.Result() != nil {
				t.Error("results should be hidden on error")
			}
			assertSubmitRestored(t, m)
		})
	}
}

func TestSubmit_RemoteRejection(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"detail":"scenario invalid"}`))
	}))
	defer server.Close()

	m := NewModel(Options{
		Client:        predictor.NewHTTPClient(server.URL, nil),
		ReferenceDate: testReference,
		Scenarios:     []string{"base"},
	})
	m.horizonInput.SetValue("6")

	m = submitAndComplete(t, m)

	if m.ErrorText() != "❌ scenario invalid" {
		t.Errorf("ErrorText() = %q, want '❌ scenario invalid'", m.ErrorText())
	}
	assertSubmitRestored(t, m)
}

func TestSubmit_NonFiniteLevelIsRejectedBeforeSending(t *testing.T) {
	var hits int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	for _, level := range []string{"NaN", "inf"} {
		t.Run(level, func(t *testing.T) {
			m := NewModel(Options{
				Client:        predictor.NewHTTPClient(server.URL, nil),
				ReferenceDate: testReference,
				Scenarios:     []string{"base"},
			})
			m.horizonInput.SetValue("6")
			m.levelInput.SetValue(level)

			m, cmd := pressKey(m, tea.KeyEnter)

			if cmd != nil {
				t.Error("invalid level should not start a request")
			}
			if !strings.Contains(m.ErrorText(), "nivel actual inválido") {
				t.Errorf("ErrorText() = %q, want invalid level message", m.ErrorText())
			}
			assertSubmitRestored(t, m)
		})
	}

	if hits != 0 {
		t.Errorf("server hits = %d, want 0", hits)
	}
}

func TestSubmit_ErrorClearsPreviousResults(t *testing.T) {
	client := &mockClient{result: sampleResult()}
	m := newTestModel(client)
	m.horizonInput.SetValue("6")

	m = submitAndComplete(t, m)
	if m.Result() == nil {
		t.Fatal("first submission should show results")
	}

	client.result = nil
	client.err = models.NewSubmitError(models.TransportFailure, "no se pudo contactar con el servidor")
	m = submitAndComplete(t, m)

	if m.Result() != nil {
		t.Error("results should be cleared after a failed submission")
	}
	if m.result != nil {
		t.Error("previous rows should be discarded")
	}
	if m.ErrorText() != "❌ no se pudo contactar con el servidor" {
		t.Errorf("ErrorText() = %q", m.ErrorText())
	}
	assertSubmitRestored(t, m)
}

func TestSubmit_SuccessClearsPreviousError(t *testing.T) {
	client := &mockClient{result: sampleResult()}
	m := newTestModel(client)

	m, _ = pressKey(m, tea.KeyEnter)
	if m.State() != StateError {
		t.Fatalf("state = %v, want StateError", m.State())
	}

	m.horizonInput.SetValue("6")
	m = submitAndComplete(t, m)

	if m.ErrorText() != "" {
		t.Errorf("ErrorText() = %q, want empty after success", m.ErrorText())
	}
	if m.State() != StateResults {
		t.Errorf("state = %v, want StateResults", m.State())
	}
}

func TestSubmit_PanicIsReportedAsTransportFailure(t *testing.T) {
	client := &mockClient{panicWith: errors.New("boom")}
	m := newTestModel(client)
	m.horizonInput.SetValue("6")

	m = submitAndComplete(t, m)

	if m.State() != StateError {
		t.Errorf("state = %v, want StateError", m.State())
	}
	if !strings.Contains(m.ErrorText(), "boom") {
		t.Errorf("ErrorText() = %q, want panic value in message", m.ErrorText())
	}
	assertSubmitRestored(t, m)
}

func TestFetchPrediction_NilResult(t *testing.T) {
	msg := fetchPrediction(&mockClient{}, models.PredictionRequest{HorizonMonths: 1, Scenario: "base"})()

	pm, ok := msg.(predictionMsg)
	if !ok {
		t.Fatalf("msg = %T, want predictionMsg", msg)
	}
	if kind, ok := models.KindOf(pm.err); !ok || kind != models.TransportFailure {
		t.Errorf("err = %v, want TransportFailure", pm.err)
	}
}
