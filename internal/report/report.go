package report

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/hamed0406/healthcheck/internal/domain"
)

// Mode selects how much of a HealthReport is rendered. Both the CLI flags
// and the server query string resolve to a Mode.
type Mode int

const (
	Default Mode = iota // bare status as plain text
	Simple              // {"health_status": ...}
	Report              // full report
)

const (
	ContentTypeJSON = "application/json"
	ContentTypeText = "text/plain"
)

func (m Mode) String() string {
	switch m {
	case Simple:
		return "simple"
	case Report:
		return "report"
	default:
		return "default"
	}
}

// ModeFromFlags resolves the CLI flags; --report wins when both are set.
func ModeFromFlags(report, simple bool) Mode {
	switch {
	case report:
		return Report
	case simple:
		return Simple
	default:
		return Default
	}
}

// ModeFromQuery matches the raw query string against the literal tokens
// "report" and "simple". Anything else, including "report=1", is Default.
func ModeFromQuery(rawQuery string) Mode {
	switch rawQuery {
	case "report":
		return Report
	case "simple":
		return Simple
	default:
		return Default
	}
}

// Output is a rendered report ready for either transport.
type Output struct {
	Body        string
	ContentType string
	StatusCode  int
	Status      string // status line, e.g. "503 Service Unavailable"
}

type simpleBody struct {
	HealthStatus domain.HealthStatus `json:"health_status"`
}

func Render(mode Mode, rep domain.HealthReport) (Output, error) {
	code := StatusCode(rep.HealthStatus)
	out := Output{
		StatusCode: code,
		Status:     fmt.Sprintf("%d %s", code, http.StatusText(code)),
	}

	switch mode {
	case Report:
		body, err := encode(rep)
		if err != nil {
			return Output{}, err
		}
		out.Body, out.ContentType = body, ContentTypeJSON
	case Simple:
		body, err := encode(simpleBody{HealthStatus: rep.HealthStatus})
		if err != nil {
			return Output{}, err
		}
		out.Body, out.ContentType = body, ContentTypeJSON
	default:
		out.Body, out.ContentType = string(rep.HealthStatus), ContentTypeText
	}
	return out, nil
}

// StatusCode maps a health verdict to the HTTP status the server answers with.
func StatusCode(s domain.HealthStatus) int {
	if s == domain.Healthy {
		return http.StatusOK
	}
	return http.StatusServiceUnavailable
}

func encode(v any) (string, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "    ")
	if err := enc.Encode(v); err != nil {
		return "", fmt.Errorf("encode report: %w", err)
	}
	return string(bytes.TrimRight(buf.Bytes(), "\n")), nil
}
