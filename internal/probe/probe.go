package probe

import (
	"context"

	"github.com/hamed0406/healthcheck/internal/domain"
)

// Checker performs a single check for a given target URL.
// Implementations never return an error: failures are encoded in the result.
type Checker interface {
	Check(ctx context.Context, target string) domain.ProbeResult
}
