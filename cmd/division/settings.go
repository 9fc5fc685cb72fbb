package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-division/internal/config"
	"github.com/vovakirdan/tui-division/internal/core"
)

// settings is the merged result of config file, environment and flags.
// Flags set on the command line win over the environment.
type settings struct {
	Division config.DivisionConfig
	Runtime  core.RuntimeConfig
	LogLevel string
	LogFile  string
}

// loadSettings merges the trainer config, environment and global flags.
func loadSettings(cmd *cobra.Command) (settings, error) {
	env, err := config.ParseEnv()
	if err != nil {
		return settings{}, err
	}

	path := flagConfig
	if path == "" {
		path = env.ConfigPath
	}
	cfg, err := config.Load(path)
	if err != nil {
		return settings{}, err
	}
	env.Apply(&cfg)
	if flagLang != "" {
		cfg.Display.Locale = flagLang
	}

	rt := core.DefaultConfig()
	rt.TickRate = flagFPS
	if !cmd.Flags().Changed("fps") && env.TickRate > 0 {
		rt.TickRate = env.TickRate
	}
	rt.Seed = flagSeed
	if !cmd.Flags().Changed("seed") && env.Seed != 0 {
		rt.Seed = env.Seed
	}
	if rt.Seed == 0 {
		rt.Seed = time.Now().UnixNano()
	}

	s := settings{
		Division: cfg,
		Runtime:  rt,
		LogLevel: flagLogLevel,
		LogFile:  flagLogFile,
	}
	if !cmd.Flags().Changed("log-level") && env.LogLevel != "" {
		s.LogLevel = env.LogLevel
	}
	if s.LogFile == "" {
		s.LogFile = env.LogFile
	}
	return s, nil
}

// withTerminalSize fills the screen size from the controlling terminal.
func (s *settings) withTerminalSize() {
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		s.Runtime.ScreenW = w
		s.Runtime.ScreenH = h
	}
}

// newLogger builds a logger writing to w at the configured level.
func newLogger(w io.Writer, level, prefix string) (*log.Logger, error) {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("log: invalid level %q: %w", level, err)
	}
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           lvl,
	}), nil
}

// interactiveLogger returns a logger for commands that own the terminal.
// Without a log file, output is discarded.
func (s settings) interactiveLogger() (*log.Logger, func(), error) {
	if s.LogFile == "" {
		logger, err := newLogger(io.Discard, s.LogLevel, "division")
		return logger, func() {}, err
	}
	return s.fileLogger("division")
}

// fileLogger appends to the configured log file.
func (s settings) fileLogger(prefix string) (*log.Logger, func(), error) {

	f, err := os.OpenFile(s.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, nil, fmt.Errorf("log: cannot open %s: %w", s.LogFile, err)
	}
	logger, err := newLogger(f, s.LogLevel, prefix)
	if err != nil {
		f.Close()
		return nil, nil, err
	}
	closeFile := func() {
		//nolint:errcheck // Best-effort close on exit
		f.Close()
	}
	return logger, closeFile, nil
}

// consoleLogger returns a logger for headless commands, on stderr unless
// a log file is configured.
func (s settings) consoleLogger(prefix string) (*log.Logger, func(), error) {
	if s.LogFile != "" {
		return s.fileLogger(prefix)
	}
	logger, err := newLogger(os.Stderr, s.LogLevel, prefix)
	return logger, func() {}, err
}
