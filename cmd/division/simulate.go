package main

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-division/internal/division"
)

var (
	flagRounds   int
	flagAccuracy float64
	flagSpeed    float64
	flagSkip     bool
	flagTimeout  time.Duration
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Play rounds headlessly with a scripted player",
	Long: `Run the trainer without a terminal. A scripted player answers each
round correctly with the given probability; phase timers run in real time,
scaled by --speed. Every transition is logged, so --log-level debug shows
the full state machine.

Examples:
  division simulate
  division simulate --rounds 50 --accuracy 0.6 --speed 100
  division simulate --skip --log-level debug`,
	Args: cobra.NoArgs,
	Run:  runSimulate,
}

func init() {
	simulateCmd.Flags().IntVar(&flagRounds, "rounds", 10, "Number of rounds to play")
	simulateCmd.Flags().Float64Var(&flagAccuracy, "accuracy", 0.8, "Probability of a correct answer (0-1)")
	simulateCmd.Flags().Float64Var(&flagSpeed, "speed", 20, "Timer speed-up factor")
	simulateCmd.Flags().BoolVar(&flagSkip, "skip", false, "Skip result screens instead of waiting")
	simulateCmd.Flags().DurationVar(&flagTimeout, "timeout", 5*time.Minute, "Give up after this long")
}

func runSimulate(cmd *cobra.Command, _ []string) {
	s, err := loadSettings(cmd)
	if err != nil {
		fail("%v", err)
	}
	if flagRounds < 1 {
		fail("--rounds must be at least 1, got %d", flagRounds)
	}
	if flagAccuracy < 0 || flagAccuracy > 1 {
		fail("--accuracy must be between 0 and 1, got %g", flagAccuracy)
	}

	logger, closeLog, err := s.consoleLogger("division")
	if err != nil {
		fail("%v", err)
	}
	defer closeLog()

	ctx, cancel := context.WithTimeout(context.Background(), flagTimeout)
	defer cancel()
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	rng := rand.New(rand.NewSource(s.Runtime.Seed))
	ctrl := division.NewController(s.Division, rng, division.WithLogger(logger))

	lastRound, played, correct := 0, 0, 0
	observe := func(snap division.Snapshot) {
		if !snap.Phase.Resolved() || snap.Round == lastRound {
			return
		}
		lastRound = snap.Round
		played++
		if snap.Phase == division.PhaseSuccess {
			correct++
		}
		logger.Info("round resolved",
			"round", snap.Round,
			"problem", fmt.Sprintf("%d : %d", snap.Problem.Dividend, snap.Problem.Divisor),
			"answer", snap.Answer,
			"result", snap.Phase,
			"message", snap.Message,
		)
		if played >= flagRounds {
			cancel()
		}
	}

	driver := division.NewDriver(ctrl,
		division.WithObserver(observe),
		division.WithScript(division.RandomPlayer(rng, flagAccuracy, flagSkip)),
		division.WithSpeed(flagSpeed),
	)

	logger.Info("simulation started", "seed", s.Runtime.Seed, "rounds", flagRounds, "speed", flagSpeed)
	err = driver.Run(ctx)
	if errors.Is(err, context.DeadlineExceeded) {
		logger.Warn("simulation timed out", "played", played)
	}

	fmt.Printf("%d of %d rounds answered correctly\n", correct, played)
}
