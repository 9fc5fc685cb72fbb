package config

import (
	_ "embed"
)

//go:embed defaults/division.yaml
var defaultDivisionYAML []byte

// DefaultDivisionConfig returns the built-in trainer configuration.
func DefaultDivisionConfig() DivisionConfig {
	return DivisionConfig{
		Problem: ProblemConfig{
			MinDivisor:  2,
			MaxDivisor:  10,
			MinQuotient: 1,
			MaxQuotient: 10,
			MaxDividend: 100,
		},
		Layout: LayoutConfig{
			Columns:        10,
			HSpacing:       8.5,
			VSpacing:       7.5,
			StartTop:       8,
			FinalTop:       85,
			PreviewSpacing: 6,
			PreviewBottom:  78,
		},
		Timing: TimingConfig{
			GeneratingMS:     500,
			ShowProblemMS:    2000,
			ShowContainersMS: 500,
			ResultMS:         3000,
			PreviewMoveMS:    500,
			MoveMS:           1500,
			ContainerDelayMS: 150,
			UnitDelayMS:      25,
		},
		Display: DisplayConfig{
			Locale:        "en",
			UnitRune:      "●",
			ContainerRune: "▄",
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultDivisionYAML
}
