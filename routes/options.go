package routes

import (
	"math/rand"
	"time"

	"github.com/katalvlaran/airpaths/weight"
	"github.com/sirupsen/logrus"
)

// Column layout of the route file.
const (
	DefaultDelimiter   = ","
	DefaultSourceCol   = 2 // source airport code
	DefaultDestCol     = 4 // destination airport code
	DefaultMinFields   = 6
	defaultScanBufSize = 1024 * 1024
)

// Options configures a Load run.
type Options struct {
	Delimiter string
	SourceCol int
	DestCol   int
	MinFields int
	WeightFn  weight.WeightFn
	Rand      *rand.Rand
	Logger    logrus.FieldLogger
}

// Option represents a functional option for configuring Load.
type Option func(*Options)

// WithDelimiter sets the field separator. Panics on an empty delimiter.
func WithDelimiter(sep string) Option {
	if sep == "" {
		panic("routes: delimiter must be non-empty")
	}

	return func(o *Options) { o.Delimiter = sep }
}

// WithColumns selects the 0-based source and destination columns.
// MinFields is raised if needed so both columns always exist.
// Panics on negative indexes.
func WithColumns(src, dst int) Option {
	if src < 0 || dst < 0 {
		panic("routes: column indexes must be non-negative")
	}

	return func(o *Options) {
		o.SourceCol = src
		o.DestCol = dst
	}
}

// WithMinFields sets how many fields a row needs to be accepted.
func WithMinFields(n int) Option {
	return func(o *Options) { o.MinFields = n }
}

// WithWeightFn injects the per-route weight generator.
func WithWeightFn(fn weight.WeightFn) Option {
	return func(o *Options) {
		if fn != nil {
			o.WeightFn = fn
		}
	}
}

// WithRand sets the random source handed to the WeightFn.
func WithRand(rng *rand.Rand) Option {
	return func(o *Options) { o.Rand = rng }
}

// WithSeed seeds a private random source for reproducible weights.
func WithSeed(seed int64) Option {
	return WithRand(rand.New(rand.NewSource(seed)))
}

// WithLogger sets where skipped-row diagnostics go.
func WithLogger(l logrus.FieldLogger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// DefaultOptions returns the layout of the OpenFlights routes file with
// uniformly random weights in [300, 1000] and a time-seeded random source.
func DefaultOptions() Options {
	return Options{
		Delimiter: DefaultDelimiter,
		SourceCol: DefaultSourceCol,
		DestCol:   DefaultDestCol,
		MinFields: DefaultMinFields,
		WeightFn:  weight.DefaultRouteWeightFn,
		Rand:      rand.New(rand.NewSource(time.Now().UnixNano())),
		Logger:    logrus.StandardLogger(),
	}
}

func resolveOptions(opts []Option) Options {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if need := max(cfg.SourceCol, cfg.DestCol) + 1; cfg.MinFields < need {
		cfg.MinFields = need
	}

	return cfg
}
