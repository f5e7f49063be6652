package ui

import (
	"context"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/ngmaloney/drought-terminal/internal/models"
	"github.com/ngmaloney/drought-terminal/internal/predictor"
)

// predictionMsg is sent when the outbound prediction call completes
type predictionMsg struct {
	result  *models.PredictionResult
	err     error
	elapsed time.Duration
}

// fetchPrediction performs the single outbound call in the background.
// A panic in the client is reported as a transport failure so the form
// always gets its completion message.
func fetchPrediction(client predictor.Client, req models.PredictionRequest) tea.Cmd {
	return func() (msg tea.Msg) {
		start := time.Now()
		defer func() {
			if r := recover(); r != nil {
				msg = predictionMsg{
					err:     models.NewSubmitError(models.TransportFailure, fmt.Sprintf("error inesperado: %v", r)),
					elapsed: time.Since(start),
				}
			}
		}()

		result, err := client.Predict(context.Background(), req)
		if err == nil && result == nil {
			err = models.NewSubmitError(models.TransportFailure, "respuesta vacía del servidor")
		}
		return predictionMsg{result: result, err: err, elapsed: time.Since(start)}
	}
}
