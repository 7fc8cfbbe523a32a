package prismgraph

import (
	"fmt"
	"strconv"

	"github.com/ukaji3/prismgraph-go/pkg/prismgraph/models"
	"github.com/ukaji3/prismgraph-go/pkg/prismgraph/sampler"
)

func summarizePlot(r *models.GraphResult) []string {
	noun := "expressions"
	if len(r.Series) == 1 {
		noun = "expression"
	}

	lines := []string{
		fmt.Sprintf("Plotted %d %s for x in [%s, %s] with %d samples (step %s).",
			len(r.Series), noun, formatNumber(r.XMin), formatNumber(r.XMax), r.SampleCount, formatNumber(r.Step)),
	}
	for _, s := range r.Series {
		lines = append(lines, fmt.Sprintf("%s: %d of %d points are real-valued.", s.Label, s.ValidPointCount, len(s.Points)))
	}
	return lines
}

func summarizeSurface(r *models.SurfaceResult) []string {
	return []string{
		fmt.Sprintf("Plotted %s for x in [%s, %s] and y in [%s, %s] on a %dx%d grid.",
			r.Label,
			formatNumber(r.XRange[0]), formatNumber(r.XRange[1]),
			formatNumber(r.YRange[0]), formatNumber(r.YRange[1]),
			r.Resolution, r.Resolution),
		fmt.Sprintf("%d of %d grid points are real-valued; z spans [%s, %s].",
			r.ValidPointCount, r.TotalPoints(), formatNumber(r.ZRange[0]), formatNumber(r.ZRange[1])),
	}
}

// formatNumber renders v compactly for display.
func formatNumber(v float64) string {
	return strconv.FormatFloat(sampler.Round6(v), 'f', -1, 64)
}
