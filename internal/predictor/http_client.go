package predictor

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/ngmaloney/drought-terminal/internal/models"
	"github.com/ngmaloney/drought-terminal/internal/observability"
)

// GenericFailureMessage is shown when the server rejects a request without a detail
const GenericFailureMessage = "Error al obtener la predicción"

// HTTPClient implements Client against the forecasting service
type HTTPClient struct {
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewHTTPClient creates a client for the service at baseURL.
// No timeout is set: a request runs until the transport resolves it.
func NewHTTPClient(baseURL string, logger *slog.Logger) *HTTPClient {
	if logger == nil {
		logger = observability.DiscardLogger()
	}
	return &HTTPClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{},
		logger:     logger,
	}
}

// Predict posts the request to {baseURL}/predict
func (c *HTTPClient) Predict(ctx context.Context, pr models.PredictionRequest) (*models.PredictionResult, error) {
	body, err := json.Marshal(pr)
	if err != nil {
		return nil, models.WrapSubmitError(models.TransportFailure, "no se pudo preparar la solicitud", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/predict", bytes.NewReader(body))
	if err != nil {
		return nil, models.WrapSubmitError(models.TransportFailure, "no se pudo preparar la solicitud", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, models.WrapSubmitError(models.TransportFailure,
			fmt.Sprintf("no se pudo contactar con el servidor: %v", err), err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, models.WrapSubmitError(models.TransportFailure, "error leyendo la respuesta del servidor", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.logger.Warn("prediction rejected", "status", resp.StatusCode)
		return nil, models.NewSubmitError(models.RemoteRejection, rejectionMessage(data))
	}

	result, err := decodeResult(data)
	if err != nil {
		return nil, models.WrapSubmitError(models.TransportFailure,
			fmt.Sprintf("respuesta inválida del servidor: %v", err), err)
	}
	return result, nil
}

// rejectionMessage extracts {"detail": "..."} or falls back to the generic message
func rejectionMessage(body []byte) string {
	var er errorResponse
	if err := json.Unmarshal(body, &er); err != nil || len(er.Detail) == 0 {
		return GenericFailureMessage
	}
	var detail string
	if err := json.Unmarshal(er.Detail, &detail); err != nil || strings.TrimSpace(detail) == "" {
		return GenericFailureMessage
	}
	return detail
}

// decodeResult parses and validates a success body
func decodeResult(body []byte) (*models.PredictionResult, error) {
	var pr predictResponse
	if err := json.Unmarshal(body, &pr); err != nil {
		return nil, fmt.Errorf("decoding response: %w", err)
	}

	if pr.GlobalRisk == nil {
		return nil, fmt.Errorf("missing field riesgo_global")
	}
	if pr.DroughtLikely == nil {
		return nil, fmt.Errorf("missing field sequia_probable")
	}
	if pr.Monthly == nil {
		return nil, fmt.Errorf("missing field prediccion_mensual")
	}

	result := &models.PredictionResult{
		GlobalRisk:      *pr.GlobalRisk,
		DroughtLikely:   *pr.DroughtLikely,
		MonthlyForecast: make([]models.MonthEntry, 0, len(*pr.Monthly)),
	}

	for i, m := range *pr.Monthly {
		if m.Date == nil || m.Level == nil || m.Situation == nil || m.IsDrought == nil || m.IsLowLevel == nil {
			return nil, fmt.Errorf("incomplete entry %d in prediccion_mensual", i)
		}
		result.MonthlyForecast = append(result.MonthlyForecast, models.MonthEntry{
			Date:           *m.Date,
			Level:          *m.Level,
			SituationLabel: *m.Situation,
			IsDrought:      *m.IsDrought,
			IsLowLevel:     *m.IsLowLevel,
		})
	}

	return result, nil
}

// Wire types for the forecasting service

type predictResponse struct {
	GlobalRisk    *string          `json:"riesgo_global"`
	DroughtLikely *bool            `json:"sequia_probable"`
	Monthly       *[]monthResponse `json:"prediccion_mensual"`
}

type monthResponse struct {
	Date       *string  `json:"fecha"`
	Level      *float64 `json:"nivel"`
	Situation  *string  `json:"situacion"`
	IsDrought  *bool    `json:"es_sequia"`
	IsLowLevel *bool    `json:"es_nivel_bajo"`
}

type errorResponse struct {
	Detail json.RawMessage `json:"detail"`
}
