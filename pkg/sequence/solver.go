package sequence

import (
	"fmt"

	"go.uber.org/zap"
)

// Solver finds shortest sequences over a fixed alphabet. It holds only
// immutable configuration; concurrent Solve calls do not share state.
type Solver struct {
	alphabet *Alphabet
	bounds   Bounds
	logger   *zap.Logger
}

// Option configures a Solver.
type Option func(*Solver)

// WithBounds overrides DefaultBounds.
func WithBounds(b Bounds) Option {
	return func(s *Solver) {
		s.bounds = b
	}
}

// WithLogger sets the logger used for resolver warnings and solve summaries.
func WithLogger(logger *zap.Logger) Option {
	return func(s *Solver) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// NewSolver returns a Solver over alphabet. A nil alphabet selects Default().
func NewSolver(alphabet *Alphabet, opts ...Option) (*Solver, error) {
	if alphabet == nil {
		alphabet = Default()
	}

	s := &Solver{
		alphabet: alphabet,
		bounds:   DefaultBounds(),
		logger:   zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}

	if err := s.bounds.Validate(); err != nil {
		return nil, fmt.Errorf("failed to create solver: %w", err)
	}
	return s, nil
}

// Alphabet returns the solver's alphabet.
func (s *Solver) Alphabet() *Alphabet { return s.alphabet }

// Bounds returns the solver's search bounds.
func (s *Solver) Bounds() Bounds { return s.bounds }

// ShortestBody runs the body search alone.
func (s *Solver) ShortestBody(target int) ([]int, bool) {
	return ShortestBody(s.alphabet, s.bounds, target)
}

type bodyOutcome struct {
	body  []int
	found bool
}

// Solve returns the shortest sequence summing to target whose last three
// elements satisfy tail. Among equally short sequences, the first tail in
// enumeration order wins: third-last outermost, last innermost, each in
// resolved-option order.
func (s *Solver) Solve(target int, tail Tail) Result {
	third := s.resolve("third_last", tail.ThirdLast)
	second := s.resolve("second_last", tail.SecondLast)
	last := s.resolve("last", tail.Last)

	if len(third) == 0 || len(second) == 0 || len(last) == 0 {
		s.logger.Debug("tail position has no valid assignment, skipping search",
			zap.Int("target", target),
			zap.Stringer("third_last", tail.ThirdLast),
			zap.Stringer("second_last", tail.SecondLast),
			zap.Stringer("last", tail.Last))
		return NotFound()
	}

	// Body searches depend only on the body target; distinct tails often share a sum.
	memo := make(map[int]bodyOutcome)
	var best []int
	candidates := 0

	for _, n3 := range third {
		for _, n2 := range second {
			for _, n1 := range last {
				candidates++
				bodyTarget := target - (n3 + n2 + n1)

				out, ok := memo[bodyTarget]
				if !ok {
					body, found, _ := searchBody(s.alphabet.values, s.bounds, bodyTarget)
					out = bodyOutcome{body: body, found: found}
					memo[bodyTarget] = out
				}
				if !out.found {
					continue
				}

				if best == nil || len(out.body)+TailLength < len(best) {
					best = make([]int, 0, len(out.body)+TailLength)
					best = append(best, out.body...)
					best = append(best, n3, n2, n1)
				}
			}
		}
	}

	if best == nil {
		s.logger.Debug("no sequence within search bounds",
			zap.Int("target", target),
			zap.Int("candidates", candidates),
			zap.Int("searches", len(memo)))
		return NotFound()
	}

	s.logger.Debug("sequence found",
		zap.Int("target", target),
		zap.Int("candidates", candidates),
		zap.Int("searches", len(memo)),
		zap.Int("length", len(best)))
	return newResult(best)
}

// resolve maps c to its option set, warning when an exact value is rejected.
func (s *Solver) resolve(position string, c Constraint) []int {
	options := s.alphabet.Resolve(c)
	if v, exact := c.Value(); exact && len(options) == 0 {
		s.logger.Warn("exact constraint value is not in the alphabet",
			zap.String("position", position),
			zap.Int("value", v),
			zap.Ints("alphabet", s.alphabet.values))
	}
	return options
}
