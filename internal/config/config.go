package config

import (
	"os"
	"strconv"

	"github.com/sirupsen/logrus"

	"github.com/archemics/salessnap/internal/pricing"
)

// VAT profiles. "standard" applies the flat 15% rate, "none" disables VAT
// entirely; both map onto the single pricing.StandardRate constant.
const (
	VATProfileStandard = "standard"
	VATProfileNone     = "none"
)

type Config struct {
	Port        string
	DatabaseDSN string
	Env         string
	VATProfile  string
	Seed        bool
}

// Load loads configuration from environment with sensible defaults.
// Precedence: explicit env var > .env file (if loaded by caller) > default.
func Load() Config {
	cfg := Config{}
	cfg.Port = getEnv("PORT", "8080")
	cfg.DatabaseDSN = getEnv("DATABASE_DSN", "salessnap.db")
	cfg.Env = getEnv("APP_ENV", "development")
	cfg.VATProfile = getEnv("VAT_PROFILE", VATProfileStandard)
	if cfg.VATProfile != VATProfileStandard && cfg.VATProfile != VATProfileNone {
		logrus.Warnf("unknown VAT_PROFILE %q, falling back to %q", cfg.VATProfile, VATProfileStandard)
		cfg.VATProfile = VATProfileStandard
	}
	cfg.Seed = ParseBool("SEED", false)
	return cfg
}

// VATRate resolves the configured profile to its rate.
func (c Config) VATRate() float64 {
	if c.VATProfile == VATProfileNone {
		return 0
	}
	return pricing.StandardRate
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// ParseBool reads an env var as bool with default.
func ParseBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			logrus.Warnf("invalid boolean for %s: %s", key, v)
			return def
		}
		return b
	}
	return def
}
