// Package division implements the division trainer: problem generation,
// the round state machine and the unit layout mapping.
// It has no terminal dependencies; the platform layer renders snapshots.
package division

import (
	"math/rand"

	"github.com/vovakirdan/tui-division/internal/config"
)

// maxGenerateAttempts bounds the rejection loop in Generate.
const maxGenerateAttempts = 1000

// Position is a point in percent of the viewport (0-100 on both axes).
type Position struct {
	X float64
	Y float64
}

// Problem is one round's division: Dividend = Divisor * Quotient.
type Problem struct {
	Dividend int
	Divisor  int
	Quotient int
}

// Valid reports whether the problem satisfies its invariant within the
// given bounds.
func (p Problem) Valid(bounds config.ProblemConfig) bool {
	return p.Dividend == p.Divisor*p.Quotient &&
		p.Divisor >= bounds.MinDivisor && p.Divisor <= bounds.MaxDivisor &&
		p.Quotient >= bounds.MinQuotient && p.Quotient <= bounds.MaxQuotient &&
		p.Dividend >= 1 && p.Dividend <= bounds.MaxDividend
}

// ContainerOf returns the container a unit is packed into.
func (p Problem) ContainerOf(id int) int {
	if p.Quotient <= 0 {
		return 0
	}
	return id / p.Quotient
}

// Unit is one token being divided. ID is its index in the round.
type Unit struct {
	ID      int
	Initial Position // Grid slot
	Final   Position // Resting slot inside its container
}

// Generator produces solvable problems and their unit placements.
type Generator struct {
	bounds config.ProblemConfig
	layout config.LayoutConfig
}

// NewGenerator creates a generator from the trainer configuration.
func NewGenerator(cfg config.DivisionConfig) *Generator {
	return &Generator{
		bounds: cfg.Problem,
		layout: cfg.Layout,
	}
}

// Bounds returns the problem ranges the generator samples from.
func (g *Generator) Bounds() config.ProblemConfig {
	return g.bounds
}

// Generate samples a problem and lays out its units.
// The result depends only on the generator's configuration and rng.
func (g *Generator) Generate(rng *rand.Rand) (Problem, []Unit) {
	p := g.sample(rng)
	return p, g.Units(p)
}

// sample draws divisor and quotient until the dividend is in range.
// With the default ranges the first draw always succeeds, but custom
// ranges may not, so the loop stays.
func (g *Generator) sample(rng *rand.Rand) Problem {
	b := g.bounds
	for i := 0; i < maxGenerateAttempts; i++ {
		divisor := b.MinDivisor + rng.Intn(b.MaxDivisor-b.MinDivisor+1)
		quotient := b.MinQuotient + rng.Intn(b.MaxQuotient-b.MinQuotient+1)
		dividend := divisor * quotient
		if dividend == 0 || dividend > b.MaxDividend {
			continue
		}
		return Problem{Dividend: dividend, Divisor: divisor, Quotient: quotient}
	}

	// Validated configs always admit the smallest pair.
	return Problem{
		Dividend: b.MinDivisor * b.MinQuotient,
		Divisor:  b.MinDivisor,
		Quotient: b.MinQuotient,
	}
}

// Units lays out the problem's units: a centered grid of fixed width
// for the initial slots, and the center of each container's band for
// the final slots.
func (g *Generator) Units(p Problem) []Unit {
	l := g.layout
	gridWidth := float64(l.Columns) * l.HSpacing
	startLeft := (100 - gridWidth) / 2

	bandWidth := 0.0
	if p.Divisor > 0 {
		bandWidth = 100 / float64(p.Divisor)
	}

	units := make([]Unit, p.Dividend)
	for i := range units {
		row := i / l.Columns
		col := i % l.Columns
		box := p.ContainerOf(i)

		units[i] = Unit{
			ID: i,
			Initial: Position{
				X: startLeft + float64(col)*l.HSpacing,
				Y: l.StartTop + float64(row)*l.VSpacing,
			},
			Final: Position{
				X: float64(box)*bandWidth + bandWidth/2,
				Y: l.FinalTop,
			},
		}
	}
	return units
}
