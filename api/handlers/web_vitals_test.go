package handlers

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gameportal-api/api/dto/requests"
	"gameportal-api/pkg/featureflags"
)

func float(v float64) *float64 {
	return &v
}

func TestWebVitals_Records(t *testing.T) {
	recorder := &mockRecorder{}
	logger := &mockLogger{}
	h := NewWebVitalsHandler(recorder, logger)

	out, err := h.Report(enabledContext(), &WebVitalInput{
		Referer:   "https://polytrack.example/",
		UserAgent: "test",
		Body:      requests.WebVitalRequest{Name: "LCP", Value: float(1830.5), ID: "v3-1"},
	})

	require.NoError(t, err)
	assert.True(t, out.Body.Success)
	assert.Equal(t, map[string]float64{"LCP": 1830.5}, recorder.observed)
	assert.Contains(t, logger.messages, "Web Vitals")
}

func TestWebVitals_ZeroValueIsValid(t *testing.T) {
	recorder := &mockRecorder{}
	h := NewWebVitalsHandler(recorder, &mockLogger{})

	_, err := h.Report(enabledContext(), &WebVitalInput{
		Body: requests.WebVitalRequest{Name: "CLS", Value: float(0)},
	})

	require.NoError(t, err)
	assert.Equal(t, map[string]float64{"CLS": 0}, recorder.observed)
}

func TestWebVitals_InvalidData(t *testing.T) {
	tests := []struct {
		name string
		body requests.WebVitalRequest
	}{
		{"missing name", requests.WebVitalRequest{Value: float(1)}},
		{"missing value", requests.WebVitalRequest{Name: "LCP"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recorder := &mockRecorder{}
			h := NewWebVitalsHandler(recorder, &mockLogger{})

			_, err := h.Report(enabledContext(), &WebVitalInput{Body: tt.body})

			assertStatus(t, err, http.StatusBadRequest)
			assert.Nil(t, recorder.observed)
		})
	}
}

func TestWebVitals_Disabled(t *testing.T) {
	recorder := &mockRecorder{}
	logger := &mockLogger{}
	h := NewWebVitalsHandler(recorder, logger)

	ctx := flagsContext(map[featureflags.FeatureFlag]bool{featureflags.WebVitalsEnabled: false})
	out, err := h.Report(ctx, &WebVitalInput{
		Body: requests.WebVitalRequest{Name: "LCP", Value: float(1)},
	})

	require.NoError(t, err)
	assert.True(t, out.Body.Success)
	assert.Nil(t, recorder.observed)
	assert.Empty(t, logger.messages)
}

func TestWebVitals_NoFlagsManager(t *testing.T) {
	recorder := &mockRecorder{}
	h := NewWebVitalsHandler(recorder, &mockLogger{})

	out, err := h.Report(context.Background(), &WebVitalInput{
		Body: requests.WebVitalRequest{Name: "LCP", Value: float(1)},
	})

	require.NoError(t, err)
	assert.True(t, out.Body.Success)
	assert.Nil(t, recorder.observed)
}

func TestWebVitals_NilRecorder(t *testing.T) {
	h := NewWebVitalsHandler(nil, &mockLogger{})

	_, err := h.Report(enabledContext(), &WebVitalInput{
		Body: requests.WebVitalRequest{Name: "INP", Value: float(80)},
	})

	assert.NoError(t, err)
}
