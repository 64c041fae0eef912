package domain

// Summarize builds the aggregate for a run over total URLs.
// Unsuccessful is derived from total so a missing result counts as a failure.
func Summarize(total int, results []ProbeResult, hostname string) HealthReport {
	successful := 0
	for _, r := range results {
		if r.Success {
			successful++
		}
	}

	unsuccessful := total - successful
	status := Healthy
	if unsuccessful != 0 {
		status = Unhealthy
	}

	if results == nil {
		results = []ProbeResult{}
	}

	return HealthReport{
		URLs:                  total,
		SuccessfulResponses:   successful,
		UnsuccessfulResponses: unsuccessful,
		HealthStatus:          status,
		Results:               results,
		Hostname:              hostname,
	}
}
