// Package prismgraph turns free-text graph commands into sampled 2D series
// and 3D surfaces.
package prismgraph

import (
	"runtime"

	"github.com/ukaji3/prismgraph-go/pkg/prismgraph/compiler"
	"github.com/ukaji3/prismgraph-go/pkg/prismgraph/parser"
	"go.uber.org/zap"
)

// Variant selects the 2D or 3D pipeline.
type Variant = parser.Variant

const (
	// Variant2D plots one or more curves y = f(x).
	Variant2D = parser.Variant2D
	// Variant3D plots a single surface z = f(x, y).
	Variant3D = parser.Variant3D
)

// PlotLimits configures the 2D pipeline.
type PlotLimits struct {
	// DefaultMin and DefaultMax bound x when no range directive is given.
	DefaultMin float64 `yaml:"default_min"`
	DefaultMax float64 `yaml:"default_max"`
	// DefaultStep is the sampling step when no resolution directive is given.
	DefaultStep float64 `yaml:"default_step"`
	// MinSamples and MaxSamples clamp the derived sample count.
	MinSamples int `yaml:"min_samples"`
	MaxSamples int `yaml:"max_samples"`
	// DirectiveMinSamples and DirectiveMaxSamples bound an accepted
	// "samples N" directive.
	DirectiveMinSamples int `yaml:"directive_min_samples"`
	DirectiveMaxSamples int `yaml:"directive_max_samples"`
}

// SurfaceLimits configures the 3D pipeline.
type SurfaceLimits struct {
	// DefaultMin and DefaultMax bound both axes when no range directive is given.
	DefaultMin float64 `yaml:"default_min"`
	DefaultMax float64 `yaml:"default_max"`
	// DefaultResolution is the samples per axis when no directive is given.
	DefaultResolution int `yaml:"default_resolution"`
	// MinResolution and MaxResolution clamp the samples per axis.
	MinResolution int `yaml:"min_resolution"`
	MaxResolution int `yaml:"max_resolution"`
}

// Limits groups the tunable caps of both pipelines.
type Limits struct {
	Plot    PlotLimits    `yaml:"plot"`
	Surface SurfaceLimits `yaml:"surface"`
}

// DefaultLimits returns the stock caps.
func DefaultLimits() Limits {
	return Limits{
		Plot: PlotLimits{
			DefaultMin:          -10,
			DefaultMax:          10,
			DefaultStep:         0.05,
			MinSamples:          200,
			MaxSamples:          2000,
			DirectiveMinSamples: 20,
			DirectiveMaxSamples: 4000,
		},
		Surface: SurfaceLimits{
			DefaultMin:        -6,
			DefaultMax:        6,
			DefaultResolution: 35,
			MinResolution:     10,
			MaxResolution:     80,
		},
	}
}

// Options configures graph computations.
type Options struct {
	// Engine selects the expression backend (default govaluate).
	Engine compiler.Engine
	// Limits holds sampling caps and defaults.
	Limits Limits
	// Concurrency bounds PlotBatch parallelism. If zero, defaults to GOMAXPROCS.
	Concurrency int
	// Logger receives debug diagnostics. If nil, logging is disabled.
	Logger *zap.Logger
}

// DefaultOptions returns default options.
func DefaultOptions() Options {
	return Options{
		Engine: compiler.EngineGovaluate,
		Limits: DefaultLimits(),
	}
}

// logger returns the configured logger or a no-op logger.
func (o Options) logger() *zap.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return zap.NewNop()
}

// concurrency returns the effective batch parallelism.
func (o Options) concurrency() int {
	if o.Concurrency > 0 {
		return o.Concurrency
	}
	return runtime.GOMAXPROCS(0)
}

// withDefaults fills zero-valued limits from DefaultLimits.
func (o Options) withDefaults() Options {
	d := DefaultLimits()
	p, s := &o.Limits.Plot, &o.Limits.Surface

	if p.DefaultMin == 0 && p.DefaultMax == 0 {
		p.DefaultMin, p.DefaultMax = d.Plot.DefaultMin, d.Plot.DefaultMax
	}
	if p.DefaultStep <= 0 {
		p.DefaultStep = d.Plot.DefaultStep
	}
	if p.MinSamples <= 0 {
		p.MinSamples = d.Plot.MinSamples
	}
	if p.MaxSamples < p.MinSamples {
		p.MaxSamples = max(d.Plot.MaxSamples, p.MinSamples)
	}
	if p.DirectiveMinSamples <= 0 {
		p.DirectiveMinSamples = d.Plot.DirectiveMinSamples
	}
	if p.DirectiveMaxSamples < p.DirectiveMinSamples {
		p.DirectiveMaxSamples = max(d.Plot.DirectiveMaxSamples, p.DirectiveMinSamples)
	}

	if s.DefaultMin == 0 && s.DefaultMax == 0 {
		s.DefaultMin, s.DefaultMax = d.Surface.DefaultMin, d.Surface.DefaultMax
	}
	if s.MinResolution <= 0 {
		s.MinResolution = d.Surface.MinResolution
	}
	if s.MaxResolution < s.MinResolution {
		s.MaxResolution = max(d.Surface.MaxResolution, s.MinResolution)
	}
	if s.DefaultResolution <= 0 {
		s.DefaultResolution = d.Surface.DefaultResolution
	}

	return o
}
