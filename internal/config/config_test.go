package config

import (
	"os"
	"testing"
)

func TestConfig_Defaults(t *testing.T) {
	os.Unsetenv("PORT")
	os.Unsetenv("HR_INBOX")
	os.Unsetenv("MAX_FILE_SIZE_BYTES")
	os.Unsetenv("MAIL_PROVIDER")
	os.Unsetenv("ALLOWED_ORIGINS")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.HTTPPort != 3001 {
		t.Errorf("HTTPPort = %d, want 3001", cfg.HTTPPort)
	}
	if cfg.HRInbox != "harikumarph123@gmail.com" {
		t.Errorf("HRInbox = %q, want default inbox", cfg.HRInbox)
	}
	if cfg.MaxFileSizeBytes != 5242880 {
		t.Errorf("MaxFileSizeBytes = %d, want 5242880", cfg.MaxFileSizeBytes)
	}
	if cfg.Provider != ProviderResend {
		t.Errorf("Provider = %q, want %q", cfg.Provider, ProviderResend)
	}
	if cfg.AllowedOrigins != nil {
		t.Errorf("AllowedOrigins = %v, want nil (allow all)", cfg.AllowedOrigins)
	}
}

func TestConfig_FromEnv(t *testing.T) {
	os.Setenv("PORT", "8080")
	os.Setenv("HR_INBOX", "  hr@example.com  ")
	os.Setenv("MAIL_PROVIDER", "smtp")
	defer func() {
		os.Unsetenv("PORT")
		os.Unsetenv("HR_INBOX")
		os.Unsetenv("MAIL_PROVIDER")
	}()

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.HTTPPort != 8080 {
		t.Errorf("HTTPPort = %d, want 8080", cfg.HTTPPort)
	}
	// inbox is trimmed
	if cfg.HRInbox != "hr@example.com" {
		t.Errorf("HRInbox = %q, want trimmed address", cfg.HRInbox)
	}
	if cfg.Provider != ProviderSMTP {
		t.Errorf("Provider = %q, want %q", cfg.Provider, ProviderSMTP)
	}
}

func TestConfig_AllowedOrigins(t *testing.T) {
	os.Setenv("ALLOWED_ORIGINS", "https://asionix.com, https://www.asionix.com ,")
	defer os.Unsetenv("ALLOWED_ORIGINS")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	want := []string{"https://asionix.com", "https://www.asionix.com"}
	if len(cfg.AllowedOrigins) != len(want) {
		t.Fatalf("AllowedOrigins = %v, want %v", cfg.AllowedOrigins, want)
	}
	for i := range want {
		if cfg.AllowedOrigins[i] != want[i] {
			t.Errorf("AllowedOrigins[%d] = %q, want %q", i, cfg.AllowedOrigins[i], want[i])
		}
	}
}

func TestConfig_InvalidIntFallsBack(t *testing.T) {
	os.Setenv("MAX_FILE_SIZE_BYTES", "not-a-number")
	defer os.Unsetenv("MAX_FILE_SIZE_BYTES")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.MaxFileSizeBytes != 5242880 {
		t.Errorf("MaxFileSizeBytes = %d, want default on parse failure", cfg.MaxFileSizeBytes)
	}
}
