package docs

import (
	"github.com/go-swagno/swagno"
	"github.com/go-swagno/swagno/components/endpoint"
	"github.com/go-swagno/swagno/components/http/response"
	"github.com/go-swagno/swagno/components/mime"
	"github.com/go-swagno/swagno/components/parameter"
)

// PredictRequestDoc is the body of POST /predict
type PredictRequestDoc struct {
	Image string `json:"image" example:"data:image/png;base64,iVBORw0KGgo..."`
}

// PredictResponseDoc is the response for a prediction
type PredictResponseDoc struct {
	Emotion    string  `json:"emotion" example:"happy"`
	Confidence float64 `json:"confidence" example:"0.97"`
	Message    string  `json:"message,omitempty" example:""`
}

// HistoryEntryDoc is one logged prediction
type HistoryEntryDoc struct {
	Timestamp  string  `json:"timestamp" example:"2024-01-01T12:00:00Z"`
	Emotion    string  `json:"emotion" example:"happy"`
	Confidence float64 `json:"confidence" example:"0.97"`
}

// HistoryResponseDoc is the response for the history endpoint
type HistoryResponseDoc struct {
	History []HistoryEntryDoc `json:"history"`
}

// StatsResponseDoc is the response for the stats endpoint
type StatsResponseDoc struct {
	Total     int64            `json:"total" example:"250"`
	ByEmotion map[string]int64 `json:"by_emotion"`
}

// HealthResponseDoc is the response for health endpoints
type HealthResponseDoc struct {
	Status  string `json:"status" example:"ok"`
	Version string `json:"version,omitempty" example:"0.1.0"`
}

// ErrorResponse represents a standard error response
type ErrorResponse struct {
	Code    string `json:"code" example:"INVALID_IMAGE"`
	Message string `json:"message" example:"Invalid image data"`
}

func NewSwagger() *swagno.Swagger {
	sw := swagno.New(swagno.Config{
		Title:       "Moodlens API",
		Version:     "v0.1.0",
		Description: "Facial-emotion prediction demo: accepts a base64 data-URL image, returns the dominant emotion and logs every prediction",
		Host:        "localhost:3000",
		Path:        "/",
	})

	endpoints := []*endpoint.EndPoint{
		// POST /predict - Predict emotion
		endpoint.New(
			endpoint.POST,
			"/predict",
			endpoint.WithTags("Predictions"),
			endpoint.WithSummary("Predict the dominant emotion in an image"),
			endpoint.WithDescription("Accepts a base64 data-URL image, detects faces, and returns the top emotion of the first face. Frames without a face answer 200 with a message and are not logged."),
			endpoint.WithBody(PredictRequestDoc{}),
			endpoint.WithConsume([]mime.MIME{mime.JSON}),
			endpoint.WithProduce([]mime.MIME{mime.JSON}),
			endpoint.WithSuccessfulReturns([]response.Response{
				response.New(PredictResponseDoc{}, "200", "Prediction completed"),
			}),
			endpoint.WithErrors([]response.Response{
				response.New(ErrorResponse{Code: "MISSING_IMAGE", Message: "Missing 'image' in JSON body"}, "400", "Bad Request"),
				response.New(ErrorResponse{Code: "IMAGE_TOO_LARGE", Message: "Image exceeds the maximum allowed size"}, "413", "Payload Too Large"),
				response.New(ErrorResponse{Code: "PROVIDER_UNAVAILABLE", Message: "Emotion detection provider unavailable"}, "502", "Bad Gateway"),
				response.New(ErrorResponse{Code: "INTERNAL_ERROR", Message: "An unexpected error occurred"}, "500", "Internal Server Error"),
			}),
		),

		// GET /history - Recent predictions
		endpoint.New(
			endpoint.GET,
			"/history",
			endpoint.WithTags("Predictions"),
			endpoint.WithSummary("List recent predictions"),
			endpoint.WithDescription("Returns the most recent logged predictions, newest first. Default limit 100, maximum 1000."),
			endpoint.WithParams(
				parameter.IntParam("limit", parameter.Query, parameter.WithDescription("Maximum number of entries (default: 100, max: 1000)")),
			),
			endpoint.WithProduce([]mime.MIME{mime.JSON}),
			endpoint.WithSuccessfulReturns([]response.Response{
				response.New(HistoryResponseDoc{}, "200", "History retrieved"),
			}),
			endpoint.WithErrors([]response.Response{
				response.New(ErrorResponse{Code: "INVALID_LIMIT", Message: "Limit must be between 1 and 1000"}, "400", "Bad Request"),
				response.New(ErrorResponse{Code: "INTERNAL_ERROR", Message: "An unexpected error occurred"}, "500", "Internal Server Error"),
			}),
		),

		// GET /stats - Aggregated counts
		endpoint.New(
			endpoint.GET,
			"/stats",
			endpoint.WithTags("Predictions"),
			endpoint.WithSummary("Aggregate predictions per emotion"),
			endpoint.WithProduce([]mime.MIME{mime.JSON}),
			endpoint.WithSuccessfulReturns([]response.Response{
				response.New(StatsResponseDoc{}, "200", "Stats retrieved"),
			}),
			endpoint.WithErrors([]response.Response{
				response.New(ErrorResponse{Code: "INTERNAL_ERROR", Message: "An unexpected error occurred"}, "500", "Internal Server Error"),
			}),
		),

		// GET /health - Liveness
		endpoint.New(
			endpoint.GET,
			"/health",
			endpoint.WithTags("Health"),
			endpoint.WithSummary("Liveness check"),
			endpoint.WithProduce([]mime.MIME{mime.JSON}),
			endpoint.WithSuccessfulReturns([]response.Response{
				response.New(HealthResponseDoc{}, "200", "Service is up"),
			}),
		),

		// GET /ready - Readiness
		endpoint.New(
			endpoint.GET,
			"/ready",
			endpoint.WithTags("Health"),
			endpoint.WithSummary("Readiness check"),
			endpoint.WithDescription("Verifies database connectivity"),
			endpoint.WithProduce([]mime.MIME{mime.JSON}),
			endpoint.WithSuccessfulReturns([]response.Response{
				response.New(HealthResponseDoc{}, "200", "Service is ready"),
			}),
			endpoint.WithErrors([]response.Response{
				response.New(HealthResponseDoc{Status: "unavailable"}, "503", "Database unreachable"),
			}),
		),
	}

	sw.AddEndpoints(endpoints)

	return sw
}
