package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"PORT", "ASAAS_BASE_URL", "ASAAS_ACCESS_TOKEN", "REGISTRATION_FEE", "CONFIRMATION_URL", "LEDGER_PATH"} {
		t.Setenv(key, "")
	}

	cfg := Load()
	if cfg.Port != 8080 {
		t.Fatalf("expected default port 8080, got %d", cfg.Port)
	}
	if cfg.GatewayBaseURL != "https://api.asaas.com/v3" {
		t.Fatalf("unexpected base url: %q", cfg.GatewayBaseURL)
	}
	if cfg.RegistrationFee != 25.90 {
		t.Fatalf("expected default fee 25.90, got %v", cfg.RegistrationFee)
	}
	if cfg.LedgerPath != "registros.csv" {
		t.Fatalf("unexpected ledger path: %q", cfg.LedgerPath)
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("ASAAS_BASE_URL", "https://sandbox.asaas.com/api/v3")
	t.Setenv("ASAAS_ACCESS_TOKEN", "tok-test")
	t.Setenv("REGISTRATION_FEE", "12.34")
	t.Setenv("LEDGER_PATH", "/tmp/registros.csv")

	cfg := Load()
	if cfg.Port != 9090 || cfg.GatewayAccessToken != "tok-test" {
		t.Fatalf("unexpected config: %+v", cfg)
	}
	if cfg.RegistrationFee != 12.34 {
		t.Fatalf("expected fee 12.34, got %v", cfg.RegistrationFee)
	}
	if cfg.LedgerPath != "/tmp/registros.csv" {
		t.Fatalf("unexpected ledger path: %q", cfg.LedgerPath)
	}
}

func TestLoadInvalidNumbersFallBack(t *testing.T) {
	t.Setenv("PORT", "not-a-port")
	t.Setenv("REGISTRATION_FEE", "free")

	cfg := Load()
	if cfg.Port != 8080 {
		t.Fatalf("expected fallback port 8080, got %d", cfg.Port)
	}
	if cfg.RegistrationFee != 25.90 {
		t.Fatalf("expected fallback fee 25.90, got %v", cfg.RegistrationFee)
	}
}
