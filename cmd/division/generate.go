package main

import (
	"math/rand"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-division/internal/division"
)

var (
	flagCount      int
	flagWithLayout bool
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Print generated rounds as YAML",
	Long: `Generate rounds with the configured ranges and print them as YAML.
With the same --seed the output is identical, which makes it handy for
checking a config file.

Examples:
  division generate
  division generate --count 10 --seed 7
  division generate --layout --config ./my-division.yaml`,
	Args: cobra.NoArgs,
	Run:  runGenerate,
}

func init() {
	generateCmd.Flags().IntVar(&flagCount, "count", 1, "Number of rounds to generate")
	generateCmd.Flags().BoolVar(&flagWithLayout, "layout", false, "Include unit positions")
}

type positionDoc struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

type unitDoc struct {
	ID        int         `yaml:"id"`
	Container int         `yaml:"container"`
	Initial   positionDoc `yaml:"initial"`
	Final     positionDoc `yaml:"final"`
}

type roundDoc struct {
	Dividend int       `yaml:"dividend"`
	Divisor  int       `yaml:"divisor"`
	Quotient int       `yaml:"quotient"`
	Units    []unitDoc `yaml:"units,omitempty"`
}

type generateDoc struct {
	Seed   int64      `yaml:"seed"`
	Rounds []roundDoc `yaml:"rounds"`
}

func runGenerate(cmd *cobra.Command, _ []string) {
	s, err := loadSettings(cmd)
	if err != nil {
		fail("%v", err)
	}
	if flagCount < 1 {
		fail("--count must be at least 1, got %d", flagCount)
	}

	gen := division.NewGenerator(s.Division)
	rng := rand.New(rand.NewSource(s.Runtime.Seed))

	doc := generateDoc{Seed: s.Runtime.Seed}
	for i := 0; i < flagCount; i++ {
		p, units := gen.Generate(rng)
		round := roundDoc{Dividend: p.Dividend, Divisor: p.Divisor, Quotient: p.Quotient}
		if flagWithLayout {
			for _, u := range units {
				round.Units = append(round.Units, unitDoc{
					ID:        u.ID,
					Container: p.ContainerOf(u.ID),
					Initial:   positionDoc(u.Initial),
					Final:     positionDoc(u.Final),
				})
			}
		}
		doc.Rounds = append(doc.Rounds, round)
	}

	enc := yaml.NewEncoder(os.Stdout)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		fail("encoding rounds: %v", err)
	}
	if err := enc.Close(); err != nil {
		fail("encoding rounds: %v", err)
	}
}
