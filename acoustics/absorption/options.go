package absorption

// NitrogenExponent selects how the exponential term of the nitrogen
// relaxation frequency is evaluated.
type NitrogenExponent int

const (
	// NitrogenExponentLiteral evaluates exp(-4.17*(t_a/t_r)^-1/3 - 1).
	NitrogenExponentLiteral NitrogenExponent = iota

	// NitrogenExponentISO evaluates exp(-4.17*((t_a/t_r)^(-1/3) - 1)) as
	// published in ISO 9613-1.
	NitrogenExponentISO
)

// String returns a human-readable name for the exponent form.
func (e NitrogenExponent) String() string {
	switch e {
	case NitrogenExponentLiteral:
		return "literal"
	case NitrogenExponentISO:
		return "iso"
	default:
		return "unknown"
	}
}

// Config holds the absorption model and filter settings.
type Config struct {
	SampleRate       float64
	NitrogenExponent NitrogenExponent
}

// Option mutates a Config.
type Option func(*Config)

// DefaultConfig returns the literal nitrogen exponent and a 48 kHz sample
// rate for filtering.
func DefaultConfig() Config {
	return Config{
		SampleRate:       48000,
		NitrogenExponent: NitrogenExponentLiteral,
	}
}

// WithSampleRate sets the sample rate used by [Filter].
func WithSampleRate(sampleRate float64) Option {
	return func(cfg *Config) {
		if sampleRate > 0 {
			cfg.SampleRate = sampleRate
		}
	}
}

// WithNitrogenExponent selects the nitrogen relaxation exponent form.
// Unknown values are ignored.
func WithNitrogenExponent(e NitrogenExponent) Option {
	return func(cfg *Config) {
		if e == NitrogenExponentLiteral || e == NitrogenExponentISO {
			cfg.NitrogenExponent = e
		}
	}
}

// ApplyOptions applies zero or more options to the default config.
func ApplyOptions(opts ...Option) Config {
	cfg := DefaultConfig()

	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	return cfg
}
