package app_test

import (
	"os"
	"path/filepath"
	"testing"

	"cidrcalc/internal/app"
	"cidrcalc/internal/report"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{app.EnvOutput, app.EnvColor, app.EnvLogLevel, app.EnvExport, app.EnvNoColor} {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}
}

func TestLoadConfig_Defaults(t *testing.T) {
	clearEnv(t)
	cfg, err := app.LoadConfig(filepath.Join(t.TempDir(), "missing.env"))
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg != app.DefaultConfig() {
		t.Fatalf("cfg = %+v, want defaults", cfg)
	}
}

func TestLoadConfig_EnvFileAndOverrides(t *testing.T) {
	clearEnv(t)
	envFile := filepath.Join(t.TempDir(), ".env")
	content := "CIDRCALC_OUTPUT=json\nCIDRCALC_LOG_LEVEL=debug\nCIDRCALC_EXPORT=/tmp/out.json\n"
	if err := os.WriteFile(envFile, []byte(content), 0o600); err != nil {
		t.Fatalf("write env: %v", err)
	}
	// Already-set variables win over the file.
	t.Setenv(app.EnvLogLevel, "info")

	cfg, err := app.LoadConfig(envFile)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Output != report.FormatJSON || cfg.LogLevel != "info" || cfg.Export != "/tmp/out.json" {
		t.Fatalf("cfg = %+v", cfg)
	}
}

func TestLoadConfig_NoColor(t *testing.T) {
	clearEnv(t)
	t.Setenv(app.EnvNoColor, "1")
	cfg, err := app.LoadConfig("")
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Color {
		t.Fatal("NO_COLOR should disable color")
	}
}

func TestLoadConfig_BadValues(t *testing.T) {
	clearEnv(t)
	t.Setenv(app.EnvOutput, "yaml")
	if _, err := app.LoadConfig(""); err == nil {
		t.Fatal("expected error for bad output format")
	}

	clearEnv(t)
	t.Setenv(app.EnvColor, "sometimes")
	if _, err := app.LoadConfig(""); err == nil {
		t.Fatal("expected error for bad color value")
	}
}
