package analyzer

import "github.com/sirupsen/logrus"

// config holds the resolved configuration for an analysis run.
type config struct {
	runner Runner
	logger logrus.FieldLogger
}

// Option configures an analysis run.
type Option func(*config)

// WithRunner replaces the command runner used to execute tools. Useful
// for tests and sandboxed execution.
func WithRunner(r Runner) Option {
	return func(c *config) {
		c.runner = r
	}
}

// WithLogger routes command outcome reporting to the given logger instead
// of the process-wide standard logger.
func WithLogger(l logrus.FieldLogger) Option {
	return func(c *config) {
		c.logger = l
	}
}
