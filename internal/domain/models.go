package domain

// HealthStatus is the aggregate verdict over all probes of one run.
type HealthStatus string

const (
	Healthy   HealthStatus = "Healthy"
	Unhealthy HealthStatus = "Unhealthy"
)

// ProbeResult is the outcome of one GET against one configured URL.
type ProbeResult struct {
	URL        string `json:"url"`
	StatusCode *int   `json:"status_code"` // nil when no response was received
	Success    bool   `json:"success"`
}

// Failed returns the result shape used for every transport-level error.
func Failed(url string) ProbeResult {
	return ProbeResult{URL: url}
}

// Responded records a completed HTTP exchange.
func Responded(url string, code int, success bool) ProbeResult {
	return ProbeResult{URL: url, StatusCode: &code, Success: success}
}

// HealthReport is the per-run aggregate. Field order is the JSON key order.
type HealthReport struct {
	URLs                  int           `json:"urls"`
	SuccessfulResponses   int           `json:"successful_responses"`
	UnsuccessfulResponses int           `json:"unsuccessful_responses"`
	HealthStatus          HealthStatus  `json:"health_status"`
	Results               []ProbeResult `json:"results"`
	Hostname              string        `json:"hostname"`
}
