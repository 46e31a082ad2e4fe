package summarizer

import (
	"time"

	"news-agent/pkg/config"
)

// Config holds the model and generation parameters shared by all summarizer
// implementations. Summaries run short and strict, digests a bit longer and
// slightly more creative.
type Config struct {
	Model              string
	SummaryMaxTokens   int
	SummaryTemperature float32
	DigestMaxTokens    int
	DigestTemperature  float32
	Timeout            time.Duration
}

// DefaultConfig returns the standard generation parameters.
func DefaultConfig() Config {
	return Config{
		Model:              "gpt-4.1-mini",
		SummaryMaxTokens:   150,
		SummaryTemperature: 0.3,
		DigestMaxTokens:    400,
		DigestTemperature:  0.4,
		Timeout:            60 * time.Second,
	}
}

// LoadConfig reads overrides from the environment:
// SUMMARIZER_MODEL and SUMMARIZER_TIMEOUT. Generation limits are part of the
// product behavior and stay fixed.
func LoadConfig() Config {
	cfg := DefaultConfig()
	cfg.Model = config.GetEnvString("SUMMARIZER_MODEL", cfg.Model)
	cfg.Timeout = config.GetEnvDuration("SUMMARIZER_TIMEOUT", cfg.Timeout)
	return cfg
}
