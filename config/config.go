// Package config reads the runtime settings from the environment and
// holds the constants and seed data the hotel starts with.
package config

import (
	"os"
	"strconv"

	"golang.org/x/crypto/bcrypt"

	"hotel-manager/utils"
)

// Config carries every runtime setting. Values come from environment
// variables, normally loaded from .env before Load runs.
type Config struct {
	DataDir          string
	LogFile          string
	TaxRate          float64
	BcryptCost       int
	EmailDomain      string
	CasbinModelPath  string
	CasbinPolicyPath string
}

// Load reads the environment with sensible defaults.
func Load() Config {
	return Config{
		DataDir:          utils.EnvOrDefault("HOTEL_DATA_DIR", "data"),
		LogFile:          utils.EnvOrDefault("HOTEL_LOG_FILE", "logs/hotel.log"),
		TaxRate:          envFloat("HOTEL_TAX_RATE", DefaultTaxRate),
		BcryptCost:       envInt("BCRYPT_COST", bcrypt.DefaultCost),
		EmailDomain:      utils.EnvOrDefault("HOTEL_EMAIL_DOMAIN", "grandpalace.example"),
		CasbinModelPath:  utils.EnvOrDefault("CASBIN_MODEL_PATH", "rbac_model.conf"),
		CasbinPolicyPath: utils.EnvOrDefault("CASBIN_POLICY_PATH", "policy.csv"),
	}
}

func envFloat(key string, fallback float64) float64 {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || v < 0 {
		return fallback
	}
	return v
}

func envInt(key string, fallback int) int {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return v
}
