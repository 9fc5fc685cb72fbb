package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-division/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick a language, then start the trainer",
	Long: `Show a language picker, then start the trainer in that language.

Controls:
  Up/Down/j/k  - Navigate
  Enter/Space  - Select
  Q/Esc        - Quit

Examples:
  division menu
  division menu --fps 60`,
	Args: cobra.NoArgs,
	Run:  runMenu,
}

func runMenu(cmd *cobra.Command, _ []string) {
	s, err := loadSettings(cmd)
	if err != nil {
		fail("%v", err)
	}
	s.withTerminalSize()

	result, err := tui.RunMenu(s.Runtime, s.Division.Display.Locale)
	if err != nil {
		fail("running menu: %v", err)
	}
	if result.Quit {
		return
	}

	logger, closeLog, err := s.interactiveLogger()
	if err != nil {
		fail("%v", err)
	}
	defer closeLog()

	results, err := tui.Run(tui.GameOptions{
		Config:  s.Division,
		Runtime: result.Config,
		Locale:  result.Locale,
		Logger:  logger,
	})
	if err != nil {
		closeLog()
		fail("running trainer: %v", err)
	}
	printSummary(results)
}
