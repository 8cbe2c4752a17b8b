package dijkstra

import (
	"errors"
	"math"
)

// Sentinel errors returned by Dijkstra.
var (
	// ErrEmptySource indicates that no source vertex ID was provided.
	ErrEmptySource = errors.New("dijkstra: source vertex ID is empty")

	// ErrNilGraph indicates that a nil *core.Graph was passed to Dijkstra.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrBadMaxDistance indicates that MaxDistance was set to a negative value.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")
)

// Options configures a single Dijkstra run.
//
// Source      – starting vertex ID (must be non-empty).
// MaxDistance – vertices whose shortest distance exceeds this are left out.
//
//	Must be ≥ 0. Default is math.MaxInt64 (no cap).
type Options struct {
	Source      string // The ID of the source vertex
	MaxDistance int64  // Maximum distance to explore
}

// Option represents a functional option for configuring Dijkstra.
type Option func(*Options)

// Source sets the starting vertex ID. It must be supplied on every call.
func Source(id string) Option {
	return func(o *Options) {
		o.Source = id
	}
}

// WithMaxDistance caps the explored radius. Vertices whose best distance would
// exceed max are not recorded and not expanded.
// Panics with ErrBadMaxDistance if max < 0.
func WithMaxDistance(max int64) Option {
	if max < 0 {
		panic(ErrBadMaxDistance.Error())
	}

	return func(o *Options) {
		o.MaxDistance = max
	}
}

// DefaultOptions returns Options for source with no distance cap.
func DefaultOptions(source string) Options {
	return Options{
		Source:      source,
		MaxDistance: math.MaxInt64,
	}
}
