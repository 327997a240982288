package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestGlobalPath(t *testing.T) {
	tests := []struct {
		name        string
		xdgConfig   string
		wantContain string
	}{
		{
			name:        "with XDG_CONFIG_HOME set",
			xdgConfig:   "/custom/config",
			wantContain: "/custom/config/greenflow/greenflow.yml",
		},
		{
			name:        "without XDG_CONFIG_HOME",
			xdgConfig:   "",
			wantContain: ".config/greenflow/greenflow.yml",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.xdgConfig != "" {
				t.Setenv("XDG_CONFIG_HOME", tt.xdgConfig)
			} else {
				t.Setenv("XDG_CONFIG_HOME", "")
			}

			got := GlobalPath()
			if tt.xdgConfig != "" {
				if got != tt.wantContain {
					t.Errorf("GlobalPath() = %v, want %v", got, tt.wantContain)
				}
			} else {
				if !strings.HasSuffix(got, tt.wantContain) {
					t.Errorf("GlobalPath() = %v, want suffix %v", got, tt.wantContain)
				}
			}
		})
	}
}

func TestLoadDefaults(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Chdir(dir)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Currency != "AED" {
		t.Errorf("expected default currency AED, got %q", cfg.Currency)
	}
	if cfg.PaymentDelayMS != 2000 {
		t.Errorf("expected default payment delay 2000, got %d", cfg.PaymentDelayMS)
	}
	if cfg.PaymentDelay() != 2*time.Second {
		t.Errorf("expected 2s payment delay, got %v", cfg.PaymentDelay())
	}
	if cfg.LogLevel != "info" {
		t.Errorf("expected default log level info, got %q", cfg.LogLevel)
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Chdir(dir)

	t.Setenv("GREENFLOW_CURRENCY", "USD")
	t.Setenv("GREENFLOW_PAYMENT_DELAY_MS", "50")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Currency != "USD" {
		t.Errorf("expected env currency USD, got %q", cfg.Currency)
	}
	if cfg.PaymentDelayMS != 50 {
		t.Errorf("expected env payment delay 50, got %d", cfg.PaymentDelayMS)
	}
}

func TestLoadProjectOverridesGlobal(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Chdir(dir)

	globalDir := filepath.Join(dir, "greenflow")
	if err := os.MkdirAll(globalDir, 0755); err != nil {
		t.Fatalf("mkdir failed: %v", err)
	}
	globalYAML := "currency: EUR\npayment_delay_ms: 500\n"
	if err := os.WriteFile(filepath.Join(globalDir, "greenflow.yml"), []byte(globalYAML), 0644); err != nil {
		t.Fatalf("write global config failed: %v", err)
	}

	projectYAML := "currency: GBP\n"
	if err := os.WriteFile("greenflow.yml", []byte(projectYAML), 0644); err != nil {
		t.Fatalf("write project config failed: %v", err)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Currency != "GBP" {
		t.Errorf("project config must win for currency, got %q", cfg.Currency)
	}
	if cfg.PaymentDelayMS != 500 {
		t.Errorf("global config must fill unset keys, got %d", cfg.PaymentDelayMS)
	}
}

func TestWriteProjectRoundTrip(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, "xdg"))
	t.Chdir(dir)

	want := &Config{
		Currency:       "USD",
		PaymentDelayMS: 100,
		LogLevel:       "debug",
	}
	if err := WriteProject(want); err != nil {
		t.Fatalf("WriteProject failed: %v", err)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Currency != "USD" || cfg.PaymentDelayMS != 100 || cfg.LogLevel != "debug" {
		t.Errorf("round trip mismatch: %+v", cfg)
	}
}
