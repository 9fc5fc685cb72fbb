package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadSettingsEnvOverrides(t *testing.T) {
	t.Setenv("DIVISION_SEED", "1234")
	t.Setenv("DIVISION_LOCALE", "ru")
	t.Setenv("DIVISION_TICK_RATE", "45")
	t.Setenv("DIVISION_LOG_LEVEL", "debug")
	t.Setenv("DIVISION_CONFIG", "")

	s, err := loadSettings(generateCmd)
	if err != nil {
		t.Fatalf("loadSettings() error = %v", err)
	}
	if s.Runtime.Seed != 1234 {
		t.Errorf("seed = %d, want 1234", s.Runtime.Seed)
	}
	if s.Runtime.TickRate != 45 {
		t.Errorf("tick rate = %d, want 45", s.Runtime.TickRate)
	}
	if s.Division.Display.Locale != "ru" {
		t.Errorf("locale = %q, want ru", s.Division.Display.Locale)
	}
	if s.LogLevel != "debug" {
		t.Errorf("log level = %q, want debug", s.LogLevel)
	}
}

func TestLoadSettingsConfigFromEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "division.yaml")
	data := []byte("problem:\n  max_divisor: 3\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}
	t.Setenv("DIVISION_CONFIG", path)

	s, err := loadSettings(generateCmd)
	if err != nil {
		t.Fatalf("loadSettings() error = %v", err)
	}
	if s.Division.Problem.MaxDivisor != 3 {
		t.Errorf("max divisor = %d, want 3", s.Division.Problem.MaxDivisor)
	}
	if s.Runtime.Seed == 0 {
		t.Error("seed should default to a time-based value")
	}
}

func TestNewLoggerRejectsBadLevel(t *testing.T) {
	if _, err := newLogger(os.Stderr, "loud", "test"); err == nil {
		t.Error("expected error for unknown level")
	}
}

func TestConsoleLoggerKeepsPrefixInLogFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "division.log")
	s := settings{LogLevel: "info", LogFile: path}

	logger, closeLog, err := s.consoleLogger("division-ssh")
	if err != nil {
		t.Fatalf("consoleLogger() error = %v", err)
	}
	logger.Info("listening")
	closeLog()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "division-ssh") {
		t.Errorf("log file %q lacks the division-ssh prefix", data)
	}
}
