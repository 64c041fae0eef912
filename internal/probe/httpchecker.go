package probe

import (
	"context"
	"crypto/tls"
	"io"
	"net/http"
	"time"

	"github.com/hamed0406/healthcheck/internal/domain"
)

type HTTPChecker struct {
	Client       *http.Client
	SuccessCodes map[int]struct{}
}

// NewHTTPChecker builds a checker with its own client. Skipping certificate
// verification only affects this client's transport.
func NewHTTPChecker(successCodes []int, timeout time.Duration, verifyTLS bool) *HTTPChecker {
	tr := http.DefaultTransport.(*http.Transport).Clone()
	if !verifyTLS {
		tr.TLSClientConfig = &tls.Config{InsecureSkipVerify: true} //nolint:gosec // opt-in via verify_tls=false
	}

	codes := make(map[int]struct{}, len(successCodes))
	for _, c := range successCodes {
		codes[c] = struct{}{}
	}

	return &HTTPChecker{
		Client:       &http.Client{Timeout: timeout, Transport: tr},
		SuccessCodes: codes,
	}
}

func (h *HTTPChecker) Check(ctx context.Context, target string) domain.ProbeResult {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return domain.Failed(target)
	}

	resp, err := h.Client.Do(req)
	if err != nil {
		return domain.Failed(target)
	}
	defer resp.Body.Close()
	// a body cut short by the timeout or a dropped connection is a failed exchange
	if _, err := io.Copy(io.Discard, resp.Body); err != nil {
		return domain.Failed(target)
	}

	_, ok := h.SuccessCodes[resp.StatusCode]
	return domain.Responded(target, resp.StatusCode, ok)
}

// CloseIdleConnections releases the keep-alive connections held by the client.
func (h *HTTPChecker) CloseIdleConnections() {
	h.Client.CloseIdleConnections()
}
