package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-division/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Start the trainer",
	Long: `Start the division trainer in the terminal.

Each round deals units onto the screen, shows the division and then the
containers. Pick how many units go in each container and pack them.

Controls:
  0-9, x       - Pick an answer (x is ten)
  Left/Right   - Move the selection
  Enter        - Pack
  Space        - Skip the result and start the next round
  Tab          - Show rounds played this session
  Q/Ctrl+C     - Quit

Examples:
  division play
  division play --lang ru
  division play --seed 42 --config ./my-division.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func runPlay(cmd *cobra.Command, _ []string) {
	s, err := loadSettings(cmd)
	if err != nil {
		fail("%v", err)
	}
	s.withTerminalSize()

	logger, closeLog, err := s.interactiveLogger()
	if err != nil {
		fail("%v", err)
	}
	defer closeLog()

	results, err := tui.Run(tui.GameOptions{
		Config:  s.Division,
		Runtime: s.Runtime,
		Logger:  logger,
	})
	if err != nil {
		closeLog()
		fail("running trainer: %v", err)
	}
	printSummary(results)
}

// printSummary reports the session score after the alt screen closes.
func printSummary(results []tui.RoundResult) {
	if len(results) == 0 {
		return
	}
	correct := 0
	for _, r := range results {
		if r.Correct {
			correct++
		}
	}
	fmt.Printf("%d of %d rounds answered correctly\n", correct, len(results))
}
