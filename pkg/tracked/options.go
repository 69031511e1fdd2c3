package tracked

import "time"

// Observer receives a notification after each effect execution.
// Implementations must not retain the Summary's maps past the call;
// copy what they need.
type Observer interface {
	ObserveRun(name string, s Summary, d time.Duration)
}

type config struct {
	name     string
	equals   func(a, b any) bool
	observer Observer
}

func defaultConfig() config {
	return config{equals: Is}
}

// Option configures a tracked effect.
type Option interface {
	isOption()
	apply(c *config)
}

type optionFunc func(*config)

func (f optionFunc) isOption()       {}
func (f optionFunc) apply(c *config) { f(c) }

// WithName sets an observability label for the effect. The name appears
// in Observer notifications and nowhere else; it does not affect change
// detection.
func WithName(name string) Option {
	return optionFunc(func(c *config) {
		c.name = name
	})
}

// WithEquals overrides the equality used to compare a dependency's
// current value against its previous value. The default is Is.
//
// This only affects the per-key comparison inside the change summary.
// The host primitive keeps using its own documented equality to decide
// when the body runs at all.
func WithEquals(eq func(a, b any) bool) Option {
	return optionFunc(func(c *config) {
		if eq != nil {
			c.equals = eq
		}
	})
}

// WithObserver registers an observer notified after every execution of
// the effect body.
func WithObserver(o Observer) Option {
	return optionFunc(func(c *config) {
		c.observer = o
	})
}
