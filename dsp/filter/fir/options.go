package fir

// DefaultTaps is the tap count of the reference design.
const DefaultTaps = 99

type config struct {
	taps int
}

// Option configures a Filter at construction.
type Option func(*config)

// WithTaps sets the number of taps. Values < 1 are ignored.
func WithTaps(n int) Option {
	return func(c *config) {
		if n >= 1 {
			c.taps = n
		}
	}
}

func applyOptions(opts []Option) config {
	cfg := config{taps: DefaultTaps}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}
