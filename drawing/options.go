package drawing

import "math/rand"

// DefaultSolverPath names the certified SAT solver binary invoked for
// shape synthesis when no WithSolverPath option overrides it. Any solver
// honoring cadical's "-certified -certified-output=<path>" convention
// works.
const DefaultSolverPath = "cadical"

// DefaultMaxIterations bounds both the shape-repair loop (bend insertion
// on UNSAT) and the outer ordering-repair loop (cycle lifting on a
// non-realizable ordering graph).
const DefaultMaxIterations = 256

// DefaultSeed seeds the random source driving tie-breaks inside shape
// repair. The seed fixes only those tie-breaks: variable numbering and the
// cycle basis follow the graph's map iteration order, which can differ
// between runs, so two bare Draw(g) calls can produce different drawings.
const DefaultSeed = 42

type config struct {
	solverPath    string
	maxIterations int
	rng           *rand.Rand
}

func newConfig() *config {
	return &config{
		solverPath:    DefaultSolverPath,
		maxIterations: DefaultMaxIterations,
		rng:           rand.New(rand.NewSource(DefaultSeed)),
	}
}

// Option customizes a Draw call.
type Option func(*config)

// WithSolverPath overrides the certified SAT solver binary invoked during
// shape synthesis.
func WithSolverPath(path string) Option {
	return func(c *config) { c.solverPath = path }
}

// WithMaxIterations overrides the iteration cap shared by the shape-repair
// and ordering-repair loops.
func WithMaxIterations(n int) Option {
	return func(c *config) { c.maxIterations = n }
}

// WithSeed reseeds the random source driving tie-breaks during shape
// repair, for callers that want a different sequence of tie-breaks than
// the default seed produces.
func WithSeed(seed int64) Option {
	return func(c *config) { c.rng = rand.New(rand.NewSource(seed)) }
}

// WithRand installs a caller-supplied random source directly. Options are
// applied in order, so if both WithSeed and WithRand are given, the later
// one decides the source.
func WithRand(rng *rand.Rand) Option {
	return func(c *config) { c.rng = rng }
}
