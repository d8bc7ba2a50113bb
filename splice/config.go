package splice

import "math/rand"

// Config holds a Splicer's immutable-after-construction parameters
// (spec.md §3, "Splicer configuration"). Build one with NewConfig and the
// With* options below.
type Config struct {
	Chaos        int // percent chance a delete/splice ignores kind-compatibility
	Deletions    int // percent chance a given edit is a deletion rather than a replacement
	InterSplices int // exclusive upper bound on edits composed per Splice call
	MaxSize      int // soft byte cap on produced output
	Reparse      int // edits between intermediate render+reparse passes
	Rand         *rand.Rand
}

// Option configures a Config via NewConfig.
type Option func(*Config)

// WithChaos sets the percent chance (clamped to [0,100]) that an edit
// ignores kind-compatibility.
func WithChaos(percent int) Option {
	return func(c *Config) { c.Chaos = clampPercent(percent) }
}

// WithDeletions sets the percent chance (clamped to [0,100]) that a
// composed edit is a deletion rather than a replacement.
func WithDeletions(percent int) Option {
	return func(c *Config) { c.Deletions = clampPercent(percent) }
}

// WithInterSplices sets the exclusive upper bound on edits composed per
// Splice call. Values < 2 make Splice always return "nothing to do", per
// spec.md §4.3.2 step 1.
func WithInterSplices(n int) Option {
	return func(c *Config) { c.InterSplices = n }
}

// WithMaxSize sets the soft byte cap on produced output.
func WithMaxSize(n int) Option {
	return func(c *Config) { c.MaxSize = n }
}

// WithReparse sets the number of edits between intermediate render+reparse
// passes. A value of 1 reparses after every edit (maximal fidelity, most
// CPU); a very large value effectively reparses only at the end (fastest,
// least fidelity against context-sensitive desync). See DESIGN.md for why
// this module defaults to a small positive integer rather than either
// extreme.
func WithReparse(n int) Option {
	return func(c *Config) { c.Reparse = n }
}

// WithRand replaces the PRNG passed to NewConfig as the source of all the
// Splicer's random decisions. There is no fallback generator: a Config
// whose Rand is nil makes Splice panic on first use, since an unseeded
// global source would defeat the reproducibility contract of spec.md §4.3.3.
func WithRand(r *rand.Rand) Option {
	return func(c *Config) { c.Rand = r }
}

func clampPercent(p int) int {
	if p < 0 {
		return 0
	}
	if p > 100 {
		return 100
	}
	return p
}

// candidateRetryLimit bounds the typed-splice candidate search of
// spec.md §4.3.1 before promoting unconditionally to chaotic mode.
const candidateRetryLimit = 100

// DefaultConfig returns a Config with values chosen for a moderate,
// general-purpose mutator: low chaos so typed splices dominate, a modest
// deletion rate, up to 15 composed edits per call (InterSplices 16, an
// exclusive bound), and a reparse interval
// of 8 — frequent enough that node ids stay fresh across a multi-edit call
// without reparsing after every single edit. rng must not be nil.
func DefaultConfig(rng *rand.Rand) *Config {
	return &Config{
		Chaos:        5,
		Deletions:    15,
		InterSplices: 16,
		MaxSize:      1 << 20,
		Reparse:      8,
		Rand:         rng,
	}
}

// NewConfig builds a Config from DefaultConfig(rng), applying opts in order.
func NewConfig(rng *rand.Rand, opts ...Option) *Config {
	c := DefaultConfig(rng)
	for _, opt := range opts {
		opt(c)
	}
	return c
}
