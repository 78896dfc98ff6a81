// ABOUTME: Health endpoint probing CMS reachability
// ABOUTME: Healthy only when the CMS answers quickly; otherwise 503 so load balancers back off

package handlers

import (
	"context"
	"net/http"
	"runtime"
	"time"

	"github.com/danielgtaylor/huma/v2"

	"gameportal-api/api/dto/responses"
	apperrors "gameportal-api/core/errors"
)

const (
	healthyThreshold = time.Second
	noCache          = "no-cache, no-store, must-revalidate"
)

// Prober checks CMS reachability
type Prober interface {
	Probe(ctx context.Context) (time.Duration, error)
}

// HealthHandler reports service health
type HealthHandler struct {
	prober      Prober
	environment string
	started     time.Time
	now         func() time.Time
}

// NewHealthHandler creates a health handler
func NewHealthHandler(prober Prober, environment string) *HealthHandler {
	return &HealthHandler{
		prober:      prober,
		environment: environment,
		started:     time.Now(),
		now:         time.Now,
	}
}

// RegisterRoutes registers the health route
func (h *HealthHandler) RegisterRoutes(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "health",
		Method:      http.MethodGet,
		Path:        "/api/health",
		Summary:     "Health check",
		Description: "Probes the CMS. Returns 503 when it is unreachable or slower than one second.",
		Tags:        []string{"Operations"},
	}, h.Health)
}

// HealthOutput carries its own status so a degraded body is still returned
type HealthOutput struct {
	Status       int
	CacheControl string `header:"Cache-Control"`
	Body         responses.HealthResponse
}

// Health handles GET /api/health
func (h *HealthHandler) Health(ctx context.Context, _ *struct{}) (*HealthOutput, error) {
	elapsed, err := h.prober.Probe(ctx)

	cmsStatus := cmsHealth(err)
	healthy := cmsStatus == "healthy" && elapsed < healthyThreshold

	out := &HealthOutput{
		Status:       http.StatusOK,
		CacheControl: noCache,
		Body: responses.HealthResponse{
			Status: "healthy",
			Checks: responses.HealthChecks{
				Timestamp:    h.now().UTC(),
				Environment:  h.environment,
				Uptime:       h.now().Sub(h.started).Round(time.Second).String(),
				GoVersion:    runtime.Version(),
				CMS:          cmsStatus,
				ResponseTime: elapsed.Round(time.Millisecond).String(),
			},
		},
	}

	if !healthy {
		out.Status = http.StatusServiceUnavailable
		out.Body.Status = "degraded"
	}

	return out, nil
}

// cmsHealth classifies a probe error: the CMS answered badly (unhealthy) or did not
// answer at all (unreachable)
func cmsHealth(err error) string {
	if err == nil {
		return "healthy"
	}

	if apiErr, ok := apperrors.AsAPIError(err); ok {
		if apiErr.Code == apperrors.CodeGraphQL {
			return "unhealthy"
		}
		if _, answered := apiErr.Details["status"]; answered {
			return "unhealthy"
		}
	}
	return "unreachable"
}
