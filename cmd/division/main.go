// division is a terminal trainer for integer division: units are dealt
// into containers and the player picks how many go in each.
//
// Usage:
//
//	division play        - Start the trainer
//	division menu        - Pick a language, then start the trainer
//	division serve       - Start SSH server for remote play
//	division generate    - Print generated rounds as YAML
//	division simulate    - Play rounds headlessly with a scripted player
//
// Global flags:
//
//	--fps <rate>         - Set frame rate (default: 30)
//	--seed <value>       - Set RNG seed for reproducible rounds
//	--config <path>      - Load trainer config from a YAML file
//	--lang <locale>      - Display language (en, ru)
//	--log-level <level>  - debug, info, warn or error
//	--log-file <path>    - Write logs to a file
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagConfig   string
	flagLang     string
	flagLogLevel string
	flagLogFile  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "division",
	Short: "Division trainer - pack units into containers in your terminal",
	Long: `Division is a terminal trainer for integer division. Each round shows
a number of units and a row of containers; pick how many units go in each
container and pack them.

Available commands:
  play      - Start the trainer
  menu      - Pick a language, then start the trainer
  serve     - Start SSH server for remote play
  generate  - Print generated rounds as YAML
  simulate  - Play rounds headlessly with a scripted player

Environment:
  DIVISION_CONFIG, DIVISION_LOCALE, DIVISION_SEED,
  DIVISION_TICK_RATE, DIVISION_LOG_LEVEL, DIVISION_LOG_FILE

Examples:
  division play
  division play --lang ru --seed 42
  division serve --ssh :2222
  division generate --count 5
  division simulate --rounds 20 --accuracy 0.7`,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 30, "Frame rate")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to trainer config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLang, "lang", "", "Display language (en, ru)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(simulateCmd)
}

// fail prints an error the way every command reports it and exits.
func fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}
