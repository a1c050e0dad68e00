package config

import (
	"log"
	"os"
	"strconv"
)

// Config carries everything the intake pipeline needs at startup: the
// billing-provider credential and endpoint, the fixed registration fee, the
// post-payment redirect and the ledger location. It is loaded once in main
// and injected, never read from ambient state by the pipeline itself.
//
// Supported env vars (local-friendly defaults):
//   - PORT (default: 8080)
//   - ASAAS_BASE_URL (default: https://api.asaas.com/v3)
//   - ASAAS_ACCESS_TOKEN (required for real gateway calls)
//   - REGISTRATION_FEE (default: 25.90)
//   - CONFIRMATION_URL (default: https://newandrews.com.br/compraconfirmada)
//   - LEDGER_PATH (default: registros.csv)
type Config struct {
	Port               int
	GatewayBaseURL     string
	GatewayAccessToken string
	RegistrationFee    float64
	ConfirmationURL    string
	LedgerPath         string
}

func Load() Config {
	return Config{
		Port:               getenvInt("PORT", 8080),
		GatewayBaseURL:     getenvDefault("ASAAS_BASE_URL", "https://api.asaas.com/v3"),
		GatewayAccessToken: os.Getenv("ASAAS_ACCESS_TOKEN"),
		RegistrationFee:    getenvFloat("REGISTRATION_FEE", 25.90),
		ConfirmationURL:    getenvDefault("CONFIRMATION_URL", "https://newandrews.com.br/compraconfirmada"),
		LedgerPath:         getenvDefault("LEDGER_PATH", "registros.csv"),
	}
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Printf("[config] invalid %s=%q, using default %d", key, v, def)
		return def
	}
	return n
}

func getenvFloat(key string, def float64) float64 {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		log.Printf("[config] invalid %s=%q, using default %.2f", key, v, def)
		return def
	}
	return f
}
