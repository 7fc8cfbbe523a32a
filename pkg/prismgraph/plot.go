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

// Plot parses a free-text 2D graph command and samples every expression
// over the resulting x domain.
func Plot(input string, opts Options) (*models.GraphResult, error) {
	opts = opts.withDefaults()
	limits := opts.Limits.Plot
	log := opts.logger().With(zap.String("variant", Variant2D.String()))

	if strings.TrimSpace(input) == "" {
		return nil, NewGraphError(Variant2D, nil, ErrEmptyInput)
	}

	ext := parser.ExtractDirectives(parser.Tokenize(input), parser.Rules{
		Variant:    Variant2D,
		MinSamples: limits.DirectiveMinSamples,
		MaxSamples: limits.DirectiveMaxSamples,
	})
	if len(ext.Expressions) == 0 {
		return nil, NewGraphError(Variant2D, nil, ErrNoExpressions)
	}

	comp, err := compiler.New(opts.Engine)
	if err != nil {
		return nil, err
	}

	notes := []string{}
	fallback := sampler.Range{Min: limits.DefaultMin, Max: limits.DefaultMax}
	xr := fallback
	if ext.Directives.X != nil {
		var widened bool
		xr, widened = sampler.NormalizeRange(*ext.Directives.X, fallback)
		if widened {
			notes = append(notes, collapsedRangeNote("x", xr))
		}
	}

	res := sampler.Resolution{Step: limits.DefaultStep}
	if ext.Directives.Resolution != nil {
		res = *ext.Directives.Resolution
	}
	n := sampler.SampleCount(xr.Span(), res, limits.MinSamples, limits.MaxSamples)
	if res.Step > 0 && res.Count == 0 && xr.Span()/res.Step+1 > float64(limits.MaxSamples) {
		notes = append(notes, fmt.Sprintf("Step %s is too fine for this range; using %d samples.", formatNumber(res.Step), n))
	}
	step := xr.Span() / float64(n-1)
	xs := sampler.Linspace(xr.Min, xr.Max, n)

	var series []models.Series
	for _, candidate := range ext.Expressions {
		expression := parser.Normalize(candidate, Variant2D)
		if expression == "" {
			notes = append(notes, fmt.Sprintf("Skipped %q because it has no expression after the \"=\".", candidate))
			continue
		}

		ev, err := comp.Compile(expression, "x")
		if err != nil {
			log.Debug("Skipping expression", zap.String("input", candidate), zap.Error(err))
			notes = append(notes, fmt.Sprintf("Could not parse %q", candidate))
			continue
		}

		ys, valid := sampler.Sample1D(ev, "x", xs)
		if valid == 0 {
			notes = append(notes, fmt.Sprintf("No real-valued points found for %q within the selected range.", expression))
			continue
		}

		idx := len(series)
		points := make([]models.Point, len(xs))
		for i, x := range xs {
			points[i] = models.Point{X: x, Y: ys[i]}
		}
		series = append(series, models.Series{
			ID:              seriesID(idx, expression),
			Expression:      expression,
			Label:           "y = " + expression,
			Color:           ColorFor(idx),
			Points:          points,
			ValidPointCount: valid,
		})
	}

	if len(series) == 0 {
		return nil, NewGraphError(Variant2D, notes, ErrNothingPlottable)
	}

	result := &models.GraphResult{
		XMin:        xr.Min,
		XMax:        xr.Max,
		Step:        step,
		SampleCount: n,
		Series:      series,
		Notes:       notes,
	}
	result.Summary = summarizePlot(result)

	log.Debug("Plotted",
		zap.Int("series", len(series)),
		zap.Int("samples", n),
		zap.Int("notes", len(notes)))

	return result, nil
}

func collapsedRangeNote(axis string, r sampler.Range) string {
	return fmt.Sprintf("The %s range collapsed to a single value; widened to [%s, %s].",
		axis, formatNumber(r.Min), formatNumber(r.Max))
}
