package problemgen

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"

	"github.com/abhisek/mathex/internal/expr"
	"github.com/abhisek/mathex/internal/rational"
)

// Search bounds. A request that cannot be satisfied stops after
// count*BudgetFactor slot attempts, each drawing at most MaxSlotAttempts
// candidates.
const (
	MaxSlotAttempts = 50
	BudgetFactor    = 20
	MaxOperators    = 3
)

// ErrInvalidArgs is returned for a non-positive count or a range below 2.
var ErrInvalidArgs = errors.New("problemgen: invalid arguments")

// Generator produces distinct, classroom-legal exercises.
type Generator struct {
	config Config
	rng    *rand.Rand
	logger *slog.Logger
}

// Option configures a Generator.
type Option func(*Generator)

// WithSeed makes generation reproducible.
func WithSeed(seed uint64) Option {
	return func(g *Generator) {
		g.rng = rand.New(rand.NewPCG(seed, seed))
	}
}

// WithRand sets the random source.
func WithRand(r *rand.Rand) Option {
	return func(g *Generator) {
		g.rng = r
	}
}

// WithLogger sets the logger used for rejected candidates and shortfall
// warnings. Defaults to slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(g *Generator) {
		g.logger = l
	}
}

// New creates a Generator. Without WithSeed or WithRand the random source
// is seeded from the runtime's global generator.
func New(cfg Config, opts ...Option) *Generator {
	g := &Generator{config: cfg}
	for _, opt := range opts {
		opt(g)
	}
	if g.rng == nil {
		g.rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	if g.logger == nil {
		g.logger = slog.Default()
	}
	return g
}

// Result is the outcome of one Generate call.
type Result struct {
	// Exercises are in acceptance order; Exercises[i].Index == i+1.
	Exercises []Exercise

	// Requested is the count asked for.
	Requested int

	// Attempts is the number of slot attempts spent, at most
	// Requested*BudgetFactor.
	Attempts int

	// Shortfall is Requested - len(Exercises). A positive shortfall means
	// the attempt budget ran out first.
	Shortfall int
}

// Generate produces up to count distinct exercises whose operands and
// answers stay below rangeBound. Running out of attempts is not an error:
// the result is short and Shortfall says by how much. ctx is checked
// between slot attempts.
func (g *Generator) Generate(ctx context.Context, count, rangeBound int) (*Result, error) {
	if count < 1 {
		return nil, fmt.Errorf("%w: count must be positive, got %d", ErrInvalidArgs, count)
	}
	if rangeBound < 2 {
		return nil, fmt.Errorf("%w: range must be at least 2, got %d", ErrInvalidArgs, rangeBound)
	}

	res := &Result{
		Exercises: make([]Exercise, 0, count),
		Requested: count,
	}
	seen := newKeySet(count)
	budget := count * BudgetFactor

	for len(res.Exercises) < count && res.Attempts < budget {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("generation interrupted after %d attempts: %w", res.Attempts, err)
		}
		res.Attempts++

		ex, ok := g.generateOne(rangeBound)
		if !ok {
			continue
		}
		if !seen.add(ex.Key()) {
			g.logger.Debug("duplicate exercise skipped", "expression", ex.Expression)
			continue
		}
		ex.Index = len(res.Exercises) + 1
		res.Exercises = append(res.Exercises, ex)
	}

	res.Shortfall = count - len(res.Exercises)
	if res.Shortfall > 0 {
		g.logger.Warn("generated fewer exercises than requested",
			"requested", count,
			"produced", len(res.Exercises),
			"attempts", res.Attempts,
			"range", rangeBound,
		)
	}
	return res, nil
}

// generateOne fills one slot, drawing up to MaxSlotAttempts candidates.
func (g *Generator) generateOne(rangeBound int) (Exercise, bool) {
	for i := 0; i < MaxSlotAttempts; i++ {
		c, err := g.draw(rangeBound)
		if err != nil {
			continue
		}
		if verr := runValidators(g.config.Validators, c); verr != nil {
			g.logger.Debug("candidate rejected", "expression", c.Expression, "reason", verr.Message, "validator", verr.Validator)
			if !verr.Retryable {
				return Exercise{}, false
			}
			continue
		}
		return Exercise{Expression: c.Expression, Answer: c.Answer}, true
	}
	return Exercise{}, false
}

// draw builds and evaluates one random candidate. Draws the range cannot
// satisfy and expressions that fail to evaluate come back as errors.
func (g *Generator) draw(rangeBound int) (*Candidate, error) {
	k := g.rng.IntN(MaxOperators) + 1

	c := &Candidate{
		Operands: make([]rational.Rational, k+1),
		Ops:      make([]expr.Op, k),
		Range:    rangeBound,
	}
	for i := range c.Operands {
		v, err := drawOperand(g.rng, rangeBound)
		if err != nil {
			return nil, err
		}
		c.Operands[i] = v
	}
	for i := range c.Ops {
		c.Ops[i] = expr.Ops[g.rng.IntN(len(expr.Ops))]
	}
	if k == MaxOperators && g.rng.IntN(2) == 0 {
		c.Shape = GroupFirst + Shape(g.rng.IntN(2))
	}

	answer, err := expr.Evaluate(c.Render())
	if err != nil {
		return nil, err
	}
	c.Answer = answer
	return c, nil
}
