package predictor

import (
	"context"

	"github.com/ngmaloney/drought-terminal/internal/models"
)

// Client defines the interface for requesting drought forecasts
type Client interface {
	// Predict sends one prediction request. It never retries.
	Predict(ctx context.Context, req models.PredictionRequest) (*models.PredictionResult, error)
}
