package config_test

import (
	"os"
	"path/filepath"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/hamed0406/healthcheck/internal/config"
)

var _ = Describe("Config", func() {
	var (
		tempDir    string
		configPath string
	)

	write := func(content string) {
		Expect(os.WriteFile(configPath, []byte(content), 0o644)).To(Succeed())
	}

	BeforeEach(func() {
		tempDir = GinkgoT().TempDir()
		configPath = filepath.Join(tempDir, config.DefaultPath)
	})

	Describe("Load", func() {
		Context("with valid config file", func() {
			BeforeEach(func() {
				write(`{
    "urls": ["https://example.com", "http://localhost:8081/health"],
    "timeout": 2.5,
    "success_codes": [200, 301],
    "verify_tls": false
}`)
			})

			It("should load configuration successfully", func() {
				cfg, err := config.Load(configPath)
				Expect(err).NotTo(HaveOccurred())
				Expect(cfg).NotTo(BeNil())
			})

			It("should keep url order", func() {
				cfg, _ := config.Load(configPath)
				Expect(cfg.URLs).To(Equal([]string{"https://example.com", "http://localhost:8081/health"}))
			})

			It("should parse success codes and tls flag", func() {
				cfg, _ := config.Load(configPath)
				Expect(cfg.SuccessCodes).To(Equal([]int{200, 301}))
				Expect(cfg.VerifyTLS).To(BeFalse())
			})

			It("should convert fractional seconds", func() {
				cfg, _ := config.Load(configPath)
				Expect(cfg.TimeoutDuration()).To(Equal(2500 * time.Millisecond))
			})
		})

		Context("with an empty url list", func() {
			It("should still load", func() {
				write(`{"urls": [], "timeout": 1, "success_codes": [200], "verify_tls": true}`)
				cfg, err := config.Load(configPath)
				Expect(err).NotTo(HaveOccurred())
				Expect(cfg.URLs).To(BeEmpty())
			})
		})

		Context("with unknown keys", func() {
			It("should ignore them", func() {
				write(`{"urls": ["https://example.com"], "timeout": 1, "success_codes": [200], "verify_tls": true, "comment": "x"}`)
				_, err := config.Load(configPath)
				Expect(err).NotTo(HaveOccurred())
			})
		})

		Context("with invalid input", func() {
			It("should fail when the file is missing", func() {
				cfg, err := config.Load(filepath.Join(tempDir, "nope.json"))
				Expect(err).To(HaveOccurred())
				Expect(cfg).To(BeNil())
			})

			It("should fail on malformed json", func() {
				write(`{"urls": ["https://example.com",`)
				cfg, err := config.Load(configPath)
				Expect(err).To(HaveOccurred())
				Expect(cfg).To(BeNil())
			})

			It("should report every missing key", func() {
				write(`{"urls": ["https://example.com"]}`)
				_, err := config.Load(configPath)
				Expect(err).To(HaveOccurred())
				Expect(err.Error()).To(ContainSubstring(`"timeout"`))
				Expect(err.Error()).To(ContainSubstring(`"success_codes"`))
				Expect(err.Error()).To(ContainSubstring(`"verify_tls"`))
			})

			It("should reject a single url given as a string", func() {
				write(`{"urls": "http://a.example", "timeout": 1, "success_codes": [200], "verify_tls": true}`)
				cfg, err := config.Load(configPath)
				Expect(err).To(HaveOccurred())
				Expect(cfg).To(BeNil())
			})

			It("should reject fractional success codes", func() {
				write(`{"urls": [], "timeout": 1, "success_codes": [200.9], "verify_tls": true}`)
				_, err := config.Load(configPath)
				Expect(err).To(MatchError(ContainSubstring("200.9")))
			})

			It("should reject a numeric verify_tls", func() {
				write(`{"urls": [], "timeout": 1, "success_codes": [200], "verify_tls": 1}`)
				_, err := config.Load(configPath)
				Expect(err).To(HaveOccurred())
			})

			It("should reject a timeout given as a string", func() {
				write(`{"urls": [], "timeout": "2", "success_codes": [200], "verify_tls": true}`)
				_, err := config.Load(configPath)
				Expect(err).To(HaveOccurred())
			})

			It("should reject a non-positive timeout", func() {
				write(`{"urls": [], "timeout": 0, "success_codes": [200], "verify_tls": true}`)
				_, err := config.Load(configPath)
				Expect(err).To(HaveOccurred())
			})
		})
	})

	Describe("FromEnv", func() {
		setenv := func(key, value string) {
			prev, had := os.LookupEnv(key)
			Expect(os.Setenv(key, value)).To(Succeed())
			DeferCleanup(func() {
				if had {
					os.Setenv(key, prev)
				} else {
					os.Unsetenv(key)
				}
			})
		}

		It("should read overrides", func() {
			setenv("API_ADDR", ":9090")
			setenv("LOG_DIR", "./_testlogs")
			setenv("LOG_LEVEL", "debug")
			setenv("RATE_LIMIT_RPM", "120")
			setenv("RATE_LIMIT_BURST", "20")

			rt, err := config.FromEnv()
			Expect(err).NotTo(HaveOccurred())
			Expect(rt.Addr).To(Equal(":9090"))
			Expect(rt.LogDir).To(Equal("./_testlogs"))
			Expect(rt.LogLevel).To(Equal(config.LogLevelDebug))
			Expect(rt.RateLimitRPM).To(Equal(120))
			Expect(rt.RateLimitBurst).To(Equal(20))
		})

		It("should fall back to defaults", func() {
			for _, k := range []string{"API_ADDR", "LOG_DIR", "LOG_LEVEL", "RATE_LIMIT_RPM", "RATE_LIMIT_BURST"} {
				setenv(k, "")
				os.Unsetenv(k)
			}

			rt, err := config.FromEnv()
			Expect(err).NotTo(HaveOccurred())
			Expect(rt.Addr).To(Equal("127.0.0.1:8080"))
			Expect(rt.LogDir).To(Equal("logs"))
			Expect(rt.LogLevel).To(Equal(config.LogLevelInfo))
			Expect(rt.RateLimitRPM).To(Equal(0))
		})

		It("should reject an invalid address", func() {
			setenv("API_ADDR", "invalid:host:port")
			_, err := config.FromEnv()
			Expect(err).To(HaveOccurred())
		})

		It("should reject an unknown log level", func() {
			setenv("LOG_LEVEL", "verbose")
			_, err := config.FromEnv()
			Expect(err).To(HaveOccurred())
		})

		It("should reject a negative rate limit", func() {
			setenv("RATE_LIMIT_RPM", "-1")
			_, err := config.FromEnv()
			Expect(err).To(HaveOccurred())
		})
	})

	Describe("LoggingFromEnv", func() {
		setenv := func(key, value string) {
			prev, had := os.LookupEnv(key)
			Expect(os.Setenv(key, value)).To(Succeed())
			DeferCleanup(func() {
				if had {
					os.Setenv(key, prev)
				} else {
					os.Unsetenv(key)
				}
			})
		}

		It("should ignore server-only settings", func() {
			setenv("API_ADDR", "foo")
			setenv("RATE_LIMIT_BURST", "0")
			setenv("LOG_DIR", "./_testlogs")
			setenv("LOG_LEVEL", "warn")

			lg := config.LoggingFromEnv()
			Expect(lg.Dir).To(Equal("./_testlogs"))
			Expect(lg.Level).To(Equal(config.LogLevelWarn))
		})

		It("should leave the directory empty when unset", func() {
			setenv("LOG_DIR", "")
			os.Unsetenv("LOG_DIR")

			Expect(config.LoggingFromEnv().Dir).To(BeEmpty())
		})
	})
})
