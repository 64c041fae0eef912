// Package probe issues the outbound HTTP checks. A Checker turns one URL
// into a domain.ProbeResult and never fails; a Prober runs a Checker over a
// URL list on a bounded worker pool and waits for every result.
package probe
