package config

import (
	"testing"
	"time"
)

func setRequired(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost:5432/sociogram")
	t.Setenv("JWT_SECRET", "test-secret")
}

func TestLoad_defaults(t *testing.T) {
	setRequired(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Port != "8080" {
		t.Errorf("Port = %q, want 8080", cfg.Port)
	}
	if cfg.TokenTTL != 24*time.Hour {
		t.Errorf("TokenTTL = %v, want 24h", cfg.TokenTTL)
	}
	if cfg.UploadDir != "./uploads" {
		t.Errorf("UploadDir = %q", cfg.UploadDir)
	}
	if cfg.UploadMaxSize != 5242880 {
		t.Errorf("UploadMaxSize = %d", cfg.UploadMaxSize)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("LogLevel = %q", cfg.LogLevel)
	}
}

func TestLoad_overrides(t *testing.T) {
	setRequired(t)
	t.Setenv("PORT", "9000")
	t.Setenv("TOKEN_TTL", "1h")
	t.Setenv("UPLOAD_MAX_SIZE", "1024")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Port != "9000" {
		t.Errorf("Port = %q, want 9000", cfg.Port)
	}
	if cfg.TokenTTL != time.Hour {
		t.Errorf("TokenTTL = %v, want 1h", cfg.TokenTTL)
	}
	if cfg.UploadMaxSize != 1024 {
		t.Errorf("UploadMaxSize = %d, want 1024", cfg.UploadMaxSize)
	}
}

func TestLoad_validation(t *testing.T) {
	tests := []struct {
		name  string
		setup func(t *testing.T)
	}{
		{
			name: "missing DATABASE_URL",
			setup: func(t *testing.T) {
				t.Setenv("JWT_SECRET", "s")
			},
		},
		{
			name: "missing JWT_SECRET",
			setup: func(t *testing.T) {
				t.Setenv("DATABASE_URL", "postgres://x")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("DATABASE_URL", "")
			t.Setenv("JWT_SECRET", "")
			tt.setup(t)

			if _, err := Load(); err == nil {
				t.Error("Load() should fail")
			}
		})
	}
}
