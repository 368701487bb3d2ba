package cli

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
)

func TestSetupLogger_Level(t *testing.T) {
	tests := []struct {
		env  string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"", slog.LevelInfo},
		{"error", slog.LevelError},
	}
	for _, tt := range tests {
		t.Setenv("LOG_LEVEL", tt.env)
		logger := SetupLogger("test")
		if got := Level(logger); got != tt.want {
			t.Errorf("LOG_LEVEL=%q: level = %v, want %v", tt.env, got, tt.want)
		}
		if logger.Component() != "test" {
			t.Errorf("component = %q", logger.Component())
		}
	}
}

func TestLoadEnvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	if err := os.WriteFile(path, []byte("FINAI_CLI_TEST_KEY=from-file\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Setenv("FINAI_CLI_TEST_KEY", "")
	os.Unsetenv("FINAI_CLI_TEST_KEY")

	LoadEnvFile(path)
	if got := os.Getenv("FINAI_CLI_TEST_KEY"); got != "from-file" {
		t.Errorf("FINAI_CLI_TEST_KEY = %q, want from-file", got)
	}

	LoadEnvFile(filepath.Join(t.TempDir(), "missing.env"))
}
