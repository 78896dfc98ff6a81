package responses

import "time"

// HealthResponse reports CMS reachability
type HealthResponse struct {
	Status string       `json:"status" doc:"healthy or degraded"`
	Checks HealthChecks `json:"checks" doc:"Individual checks"`
}

// HealthChecks holds the detail of a health probe
type HealthChecks struct {
	Timestamp    time.Time `json:"timestamp" doc:"When the check ran"`
	Environment  string    `json:"environment" doc:"Deployment environment"`
	Uptime       string    `json:"uptime" doc:"Process uptime"`
	GoVersion    string    `json:"version" doc:"Go runtime version"`
	CMS          string    `json:"wordpress" doc:"healthy, unhealthy or unreachable"`
	ResponseTime string    `json:"responseTime" doc:"Probe round trip"`
}

// RevalidateResponse confirms a revalidation
type RevalidateResponse struct {
	Message   string    `json:"message" doc:"Result message"`
	Timestamp time.Time `json:"timestamp" doc:"When the revalidation ran"`
	Type      string    `json:"type" doc:"Revalidation type"`
	Path      string    `json:"path,omitempty" doc:"Revalidated path"`
	Tags      []string  `json:"tags,omitempty" doc:"Cache tags that were dropped"`
}

// SuccessResponse is a bare acknowledgement
type SuccessResponse struct {
	Success bool `json:"success" doc:"Always true"`
}
