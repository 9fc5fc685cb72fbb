// Package config provides YAML-based configuration loading for the
// division trainer, with environment overrides for runtime settings.
package config

import (
	"errors"
	"fmt"
	"time"
	"unicode/utf8"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("config: invalid")

// Hard limits on the problem ranges. Every quotient must be enterable on
// the answer pad, which offers 0 through PadMax.
const (
	DivisorFloor  = 2
	PadMax        = 10
	DividendLimit = 100
)

// DivisionConfig contains all configuration for the division trainer.
type DivisionConfig struct {
	Problem ProblemConfig `yaml:"problem"`
	Layout  LayoutConfig  `yaml:"layout"`
	Timing  TimingConfig  `yaml:"timing"`
	Display DisplayConfig `yaml:"display"`
}

// ProblemConfig bounds the generated division problems.
type ProblemConfig struct {
	MinDivisor  int `yaml:"min_divisor"`
	MaxDivisor  int `yaml:"max_divisor"`
	MinQuotient int `yaml:"min_quotient"`
	MaxQuotient int `yaml:"max_quotient"`
	MaxDividend int `yaml:"max_dividend"`
}

// LayoutConfig holds the unit placement constants, in percent of the viewport.
type LayoutConfig struct {
	Columns        int     `yaml:"columns"`         // Grid columns
	HSpacing       float64 `yaml:"h_spacing"`       // Grid column spacing
	VSpacing       float64 `yaml:"v_spacing"`       // Grid row spacing
	StartTop       float64 `yaml:"start_top"`       // Top of the first grid row
	FinalTop       float64 `yaml:"final_top"`       // Depth of packed units inside a container
	PreviewSpacing float64 `yaml:"preview_spacing"` // Vertical gap between staged units
	PreviewBottom  float64 `yaml:"preview_bottom"`  // Where staged columns end
}

// TimingConfig holds phase and animation durations in milliseconds.
type TimingConfig struct {
	GeneratingMS     int `yaml:"generating_ms"`
	ShowProblemMS    int `yaml:"show_problem_ms"`
	ShowContainersMS int `yaml:"show_containers_ms"`
	ResultMS         int `yaml:"result_ms"`
	PreviewMoveMS    int `yaml:"preview_move_ms"`
	MoveMS           int `yaml:"move_ms"`
	ContainerDelayMS int `yaml:"container_delay_ms"`
	UnitDelayMS      int `yaml:"unit_delay_ms"`
}

// DisplayConfig holds presentation settings.
type DisplayConfig struct {
	Locale        string `yaml:"locale"`
	UnitRune      string `yaml:"unit_rune"`
	ContainerRune string `yaml:"container_rune"`
}

// Duration converts a millisecond setting to a time.Duration.
func Duration(ms int) time.Duration {
	return time.Duration(ms) * time.Millisecond
}

// Validate checks that the configuration can drive a round.
// The problem ranges must admit at least one pair whose product lies in
// [1, MaxDividend], otherwise the generator could never succeed.
func (c DivisionConfig) Validate() error {
	p := c.Problem
	if p.MinDivisor < DivisorFloor || p.MaxDivisor < p.MinDivisor {
		return fmt.Errorf("%w: divisor range [%d, %d], min_divisor must be at least %d",
			ErrInvalid, p.MinDivisor, p.MaxDivisor, DivisorFloor)
	}
	if p.MinQuotient < 1 || p.MaxQuotient < p.MinQuotient || p.MaxQuotient > PadMax {
		return fmt.Errorf("%w: quotient range [%d, %d] must lie within [1, %d]",
			ErrInvalid, p.MinQuotient, p.MaxQuotient, PadMax)
	}
	if p.MaxDividend > DividendLimit {
		return fmt.Errorf("%w: max_dividend %d exceeds %d", ErrInvalid, p.MaxDividend, DividendLimit)
	}
	if p.MinDivisor*p.MinQuotient > p.MaxDividend {
		return fmt.Errorf("%w: smallest dividend %d exceeds max_dividend %d",
			ErrInvalid, p.MinDivisor*p.MinQuotient, p.MaxDividend)
	}

	l := c.Layout
	if l.Columns < 1 {
		return fmt.Errorf("%w: layout columns %d", ErrInvalid, l.Columns)
	}
	if l.HSpacing <= 0 || l.VSpacing <= 0 || l.PreviewSpacing <= 0 {
		return fmt.Errorf("%w: layout spacing must be positive", ErrInvalid)
	}

	tm := c.Timing
	for name, v := range map[string]int{
		"generating_ms":      tm.GeneratingMS,
		"show_problem_ms":    tm.ShowProblemMS,
		"show_containers_ms": tm.ShowContainersMS,
		"result_ms":          tm.ResultMS,
	} {
		if v <= 0 {
			return fmt.Errorf("%w: timing %s must be positive, got %d", ErrInvalid, name, v)
		}
	}
	if tm.PreviewMoveMS < 0 || tm.MoveMS < 0 || tm.ContainerDelayMS < 0 || tm.UnitDelayMS < 0 {
		return fmt.Errorf("%w: animation timings must not be negative", ErrInvalid)
	}

	d := c.Display
	if utf8.RuneCountInString(d.UnitRune) != 1 {
		return fmt.Errorf("%w: unit_rune %q must be a single character", ErrInvalid, d.UnitRune)
	}
	if utf8.RuneCountInString(d.ContainerRune) != 1 {
		return fmt.Errorf("%w: container_rune %q must be a single character", ErrInvalid, d.ContainerRune)
	}
	return nil
}
