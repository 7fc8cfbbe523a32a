package prismgraph

import (
	"fmt"
	"strings"

	"github.com/ukaji3/prismgraph-go/pkg/prismgraph/compiler"
	"github.com/ukaji3/prismgraph-go/pkg/prismgraph/models"
	"github.com/ukaji3/prismgraph-go/pkg/prismgraph/parser"
	"github.com/ukaji3/prismgraph-go/pkg/prismgraph/sampler"
	"go.uber.org/zap"
)

// Surface parses a free-text 3D graph command and samples the first
// compilable expression over the x × y grid.
func Surface(input string, opts Options) (*models.SurfaceResult, error) {
	opts = opts.withDefaults()
	limits := opts.Limits.Surface
	log := opts.logger().With(zap.String("variant", Variant3D.String()))

	if strings.TrimSpace(input) == "" {
		return nil, NewGraphError(Variant3D, nil, ErrEmptyInput)
	}

	ext := parser.ExtractDirectives(parser.Tokenize(input), parser.Rules{Variant: Variant3D})
	if len(ext.Expressions) == 0 {
		return nil, NewGraphError(Variant3D, nil, ErrNoExpressions)
	}

	comp, err := compiler.New(opts.Engine)
	if err != nil {
		return nil, err
	}

	notes := []string{}
	fallback := sampler.Range{Min: limits.DefaultMin, Max: limits.DefaultMax}
	axis := func(name string, given *sampler.Range) sampler.Range {
		if given == nil {
			return fallback
		}
		r, widened := sampler.NormalizeRange(*given, fallback)
		if widened {
			notes = append(notes, collapsedRangeNote(name, r))
		}
		return r
	}
	xr := axis("x", ext.Directives.X)
	yr := axis("y", ext.Directives.Y)

	res := sampler.Resolution{Count: limits.DefaultResolution}
	if ext.Directives.Resolution != nil {
		res = *ext.Directives.Resolution
	}
	n := sampler.SampleCount(xr.Span(), res, limits.MinResolution, limits.MaxResolution)
	if res.Count > 0 && res.Count != n {
		notes = append(notes, fmt.Sprintf("Grid resolution %d is outside [%d, %d]; using %d.",
			res.Count, limits.MinResolution, limits.MaxResolution, n))
	}

	var (
		ev         compiler.Evaluator
		expression string
	)
	for _, candidate := range ext.Expressions {
		normalized := parser.Normalize(candidate, Variant3D)
		if normalized == "" {
			notes = append(notes, fmt.Sprintf("Skipped %q because it has no expression after the \"=\".", candidate))
			continue
		}
		if ev != nil {
			notes = append(notes, fmt.Sprintf("Only one surface is plotted at a time; ignored %q.", candidate))
			continue
		}

		compiled, err := comp.Compile(normalized, "x", "y")
		if err != nil {
			log.Debug("Skipping expression", zap.String("input", candidate), zap.Error(err))
			notes = append(notes, fmt.Sprintf("Could not parse %q", candidate))
			continue
		}
		ev, expression = compiled, normalized
	}

	if ev == nil {
		return nil, NewGraphError(Variant3D, notes, ErrNothingPlottable)
	}

	xs := sampler.Linspace(xr.Min, xr.Max, n)
	ys := sampler.Linspace(yr.Min, yr.Max, n)
	grid := sampler.Sample2D(ev, xs, ys)

	if grid.Valid == 0 {
		notes = append(notes, fmt.Sprintf("No real-valued points found for %q within the selected range.", expression))
		return nil, NewGraphError(Variant3D, notes, ErrNothingPlottable)
	}

	result := &models.SurfaceResult{
		Expression:      expression,
		Label:           "z = " + expression,
		Color:           ColorFor(0),
		XValues:         xs,
		YValues:         ys,
		ZMatrix:         grid.Z,
		XRange:          [2]float64{xr.Min, xr.Max},
		YRange:          [2]float64{yr.Min, yr.Max},
		ZRange:          [2]float64{grid.ZMin, grid.ZMax},
		Resolution:      n,
		ValidPointCount: grid.Valid,
		Notes:           notes,
	}
	result.Summary = summarizeSurface(result)

	log.Debug("Plotted surface",
		zap.String("expression", expression),
		zap.Int("resolution", n),
		zap.Int("valid", grid.Valid))

	return result, nil
}
