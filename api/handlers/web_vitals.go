// ABOUTME: Collects Core Web Vitals beacons from the browser
// ABOUTME: Beacons are logged and observed in a Prometheus histogram

package handlers

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"gameportal-api/api/dto/requests"
	"gameportal-api/api/dto/responses"
	"gameportal-api/core/interfaces"
	"gameportal-api/pkg/featureflags"
)

// WebVitalRecorder records a web vital measurement
type WebVitalRecorder interface {
	ObserveWebVital(name string, value float64)
}

// WebVitalsHandler handles browser metric beacons
type WebVitalsHandler struct {
	recorder WebVitalRecorder
	logger   interfaces.Logger
}

// NewWebVitalsHandler creates a web vitals handler. recorder may be nil.
func NewWebVitalsHandler(recorder WebVitalRecorder, logger interfaces.Logger) *WebVitalsHandler {
	return &WebVitalsHandler{recorder: recorder, logger: logger}
}

// RegisterRoutes registers the web vitals route
func (h *WebVitalsHandler) RegisterRoutes(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "reportWebVital",
		Method:      http.MethodPost,
		Path:        "/api/web-vitals",
		Summary:     "Report a web vital",
		Description: "Accepts one Core Web Vitals measurement from the browser",
		Tags:        []string{"Operations"},
	}, h.Report)
}

// WebVitalInput is one beacon
type WebVitalInput struct {
	Referer   string `header:"Referer"`
	UserAgent string `header:"User-Agent"`
	Body      requests.WebVitalRequest
}

// WebVitalOutput acknowledges a beacon
type WebVitalOutput struct {
	Body responses.SuccessResponse
}

// Report handles POST /api/web-vitals
func (h *WebVitalsHandler) Report(ctx context.Context, input *WebVitalInput) (*WebVitalOutput, error) {
	if err := input.Body.Validate(); err != nil {
		return nil, huma.Error400BadRequest("Invalid metric data")
	}

	if !featureflags.IsEnabled(ctx, featureflags.WebVitalsEnabled) {
		return &WebVitalOutput{Body: responses.SuccessResponse{Success: true}}, nil
	}

	value := *input.Body.Value

	h.logger.Info("Web Vitals", map[string]interface{}{
		"name":       input.Body.Name,
		"value":      value,
		"id":         input.Body.ID,
		"url":        input.Referer,
		"user_agent": input.UserAgent,
	})

	if h.recorder != nil {
		h.recorder.ObserveWebVital(input.Body.Name, value)
	}

	return &WebVitalOutput{Body: responses.SuccessResponse{Success: true}}, nil
}
