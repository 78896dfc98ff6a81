package requests

import "errors"

// WebVitalRequest is one Core Web Vitals beacon sent by the browser
type WebVitalRequest struct {
	// Name is the metric name, e.g. LCP, CLS, INP
	Name string `json:"name" required:"false" doc:"Metric name (LCP, CLS, INP, FCP, TTFB)"`

	// Value is the measured value; a pointer so that 0 is distinguishable from missing
	Value *float64 `json:"value" required:"false" doc:"Metric value"`

	// ID identifies the page load that produced the metric
	ID string `json:"id,omitempty" doc:"Metric instance ID"`
}

// Validate requires a name and a numeric value
func (r *WebVitalRequest) Validate() error {
	if r.Name == "" || r.Value == nil {
		return errors.New("invalid metric data")
	}
	return nil
}
