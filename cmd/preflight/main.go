// cmd/preflight/main.go
package main

import (
	"fmt"
	"io"
	"net/url"
	"os"

	"github.com/hamed0406/healthcheck/internal/config"
)

func main() {
	os.Exit(check(os.Stdout, os.Stderr, config.DefaultPath))
}

// check lints the runtime environment and the probe config file.
// It returns the process exit code.
func check(stdout, stderr io.Writer, path string) int {
	failed := false
	fail := func(msg string) {
		fmt.Fprintln(stderr, "✖", msg)
		failed = true
	}
	warn := func(msg string) { fmt.Fprintln(stderr, "⚠", msg) }
	ok := func(msg string) { fmt.Fprintln(stdout, "✔", msg) }

	rt, err := config.FromEnv()
	if err != nil {
		fail("environment: " + err.Error())
	} else {
		ok("API_ADDR=" + rt.Addr)
		ok("LOG_DIR=" + rt.LogDir + " LOG_LEVEL=" + rt.LogLevel)
		if rt.RateLimitRPM == 0 {
			warn("RATE_LIMIT_RPM is 0; every API request fans out to all URLs without limit.")
		}
	}

	cfg, err := config.Load(path)
	if err != nil {
		fail(err.Error())
		return 1
	}
	ok(fmt.Sprintf("%s: %d urls, timeout %s, verify_tls=%t", path, len(cfg.URLs), cfg.TimeoutDuration(), cfg.VerifyTLS))

	if len(cfg.URLs) == 0 {
		warn("urls is empty; the report will always be Healthy.")
	}
	if len(cfg.SuccessCodes) == 0 {
		warn("success_codes is empty; every URL will count as unsuccessful.")
	}
	if !cfg.VerifyTLS {
		warn("verify_tls is false; certificate errors will not be detected.")
	}
	for _, raw := range cfg.URLs {
		u, err := url.Parse(raw)
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			warn(raw + " is not an absolute http(s) URL; it will always fail.")
		}
	}

	if failed {
		return 1
	}
	ok("preflight passed")
	return 0
}
