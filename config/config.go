// Package config layers server settings: development defaults, then an
// optional .env file, then environment variables, then command-line flags.
package config

import (
	"flag"
	"os"
	"time"

	"github.com/joho/godotenv"
)

// Config holds runtime settings for the EcoCycle server.
//
// Fields:
//   - Addr: bind address for the HTTP endpoint.
//   - DatabaseDSN: PostgreSQL DSN (pgx); empty selects the in-memory store.
//   - Environment: "development" or "production"; production sets Secure cookies.
//   - SessionMaxAge: session and cookie lifetime.
//   - CacheTTL / CacheMaxSize: session cache bounds.
//   - InferenceURL / InferenceAPIKey / InferenceModelID: hosted classifier;
//     an empty key selects the static classifier.
//   - AssistURL: hosted chat endpoint; empty selects the canned assistant.
type Config struct {
	Addr             string
	DatabaseDSN      string
	Environment      string
	SessionMaxAge    time.Duration
	CacheTTL         time.Duration
	CacheMaxSize     int
	InferenceURL     string
	InferenceAPIKey  string
	InferenceModelID string
	AssistURL        string
}

// Production reports whether the server should behave as deployed
// (Secure cookies, info-level logs).
func (c *Config) Production() bool {
	return c.Environment == "production"
}

func (c *Config) loadDefaults() {
	c.Addr = ":8080"
	c.DatabaseDSN = ""
	c.Environment = "development"
	c.SessionMaxAge = 7 * 24 * time.Hour
	c.CacheTTL = 5 * time.Minute
	c.CacheMaxSize = 500
	c.InferenceURL = "https://serverless.roboflow.com"
	c.InferenceModelID = "e-waste-c8eii/3"
	c.AssistURL = ""
}

// Load builds a Config by applying defaults, then overlaying a .env file
// if present, then environment variables, then flags.
func Load(args []string) (*Config, error) {
	cfg := &Config{}
	cfg.loadDefaults()

	// Missing .env is the normal case outside local development
	_ = godotenv.Load()

	cfg.applyEnv()

	if err := cfg.applyFlags(args); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyEnv() {
	if v := os.Getenv("ECOCYCLE_ADDR"); v != "" {
		c.Addr = v
	}
	if v := os.Getenv("DATABASE_URL"); v != "" {
		c.DatabaseDSN = v
	}
	if v := os.Getenv("ECOCYCLE_ENV"); v != "" {
		c.Environment = v
	}
	if v := os.Getenv("SESSION_MAX_AGE"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			c.SessionMaxAge = d
		}
	}
	if v := os.Getenv("INFERENCE_URL"); v != "" {
		c.InferenceURL = v
	}
	if v := os.Getenv("INFERENCE_API_KEY"); v != "" {
		c.InferenceAPIKey = v
	}
	if v := os.Getenv("INFERENCE_MODEL_ID"); v != "" {
		c.InferenceModelID = v
	}
	if v := os.Getenv("ASSIST_URL"); v != "" {
		c.AssistURL = v
	}
}

func (c *Config) applyFlags(args []string) error {
	fs := flag.NewFlagSet("ecocycle-server", flag.ContinueOnError)

	fs.StringVar(&c.Addr, "a", c.Addr, "address and port to run server")
	fs.StringVar(&c.DatabaseDSN, "d", c.DatabaseDSN, "database DSN (empty: in-memory store)")
	fs.StringVar(&c.Environment, "e", c.Environment, "environment (development or production)")
	fs.DurationVar(&c.SessionMaxAge, "s", c.SessionMaxAge, "session lifetime")

	return fs.Parse(args)
}
