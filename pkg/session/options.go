package session

import loggerpkg "github.com/minhyannv/ai-playground/pkg/logger"

// Option configures optional runtime dependencies for Session.
type Option func(*sessionDeps)

type sessionDeps struct {
	logger loggerpkg.Logger
	seed   string
}

// WithLogger injects a logger dependency.
func WithLogger(l loggerpkg.Logger) Option {
	return func(d *sessionDeps) {
		d.logger = l
	}
}

// WithGameSeed makes the first turn a game invitation built from rules.
func WithGameSeed(rules string) Option {
	return func(d *sessionDeps) {
		d.seed = rules
	}
}
