package output

import (
	"bufio"
	"fmt"
	"html"
	"io"
	"math"
	"strings"

	"github.com/ukaji3/prismgraph-go/pkg/prismgraph/models"
)

// DefaultSVGWidth and DefaultSVGHeight are used when WriteSVG gets a
// non-positive size.
const (
	DefaultSVGWidth  = 800
	DefaultSVGHeight = 500
)

const svgMargin = 40.0

// WriteSVG renders a 2D result as a static SVG line chart. Each series is
// drawn as polylines that break at unevaluable samples.
func WriteSVG(w io.Writer, r *models.GraphResult, width, height int) error {
	if width <= 0 {
		width = DefaultSVGWidth
	}
	if height <= 0 {
		height = DefaultSVGHeight
	}

	yMin, yMax := yBounds(r)
	plotW := float64(width) - 2*svgMargin
	plotH := float64(height) - 2*svgMargin

	px := func(x float64) float64 {
		return svgMargin + (x-r.XMin)/(r.XMax-r.XMin)*plotW
	}
	py := func(y float64) float64 {
		return svgMargin + (yMax-y)/(yMax-yMin)*plotH
	}

	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, `<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">`+"\n",
		width, height, width, height)
	fmt.Fprintf(bw, `<rect width="%d" height="%d" fill="#ffffff"/>`+"\n", width, height)

	// Axes are drawn only where zero lies inside the visible window.
	if r.XMin <= 0 && r.XMax >= 0 {
		x := px(0)
		fmt.Fprintf(bw, `<line class="axis" x1="%s" y1="%s" x2="%s" y2="%s" stroke="#9ca3af" stroke-width="1"/>`+"\n",
			coord(x), coord(svgMargin), coord(x), coord(svgMargin+plotH))
	}
	if yMin <= 0 && yMax >= 0 {
		y := py(0)
		fmt.Fprintf(bw, `<line class="axis" x1="%s" y1="%s" x2="%s" y2="%s" stroke="#9ca3af" stroke-width="1"/>`+"\n",
			coord(svgMargin), coord(y), coord(svgMargin+plotW), coord(y))
	}

	for _, s := range r.Series {
		fmt.Fprintf(bw, `<g id="%s" stroke="%s" fill="none" stroke-width="2">`+"\n", s.ID, s.Color)
		fmt.Fprintf(bw, "<title>%s</title>\n", html.EscapeString(s.Label))
		for _, seg := range segments(s.Points) {
			var b strings.Builder
			for i, p := range seg {
				if i > 0 {
					b.WriteByte(' ')
				}
				b.WriteString(coord(px(p.X)))
				b.WriteByte(',')
				b.WriteString(coord(py(*p.Y)))
			}
			fmt.Fprintf(bw, `<polyline points="%s"/>`+"\n", b.String())
		}
		bw.WriteString("</g>\n")
	}

	fmt.Fprintf(bw, `<text x="%s" y="%s" font-size="12" fill="#374151">%s</text>`+"\n",
		coord(svgMargin), coord(float64(height)-svgMargin/3),
		html.EscapeString(fmt.Sprintf("x: [%s, %s]  y: [%s, %s]",
			formatFloat(r.XMin), formatFloat(r.XMax), formatFloat(yMin), formatFloat(yMax))))
	bw.WriteString("</svg>\n")

	return bw.Flush()
}

// segments splits points into runs of consecutive valid samples.
// Single-point runs are dropped since a polyline needs two vertices.
func segments(points []models.Point) [][]models.Point {
	var out [][]models.Point
	var cur []models.Point
	flush := func() {
		if len(cur) > 1 {
			out = append(out, cur)
		}
		cur = nil
	}
	for _, p := range points {
		if p.Y == nil {
			flush()
			continue
		}
		cur = append(cur, p)
	}
	flush()
	return out
}

// yBounds returns the visible y window. An empty or flat result gets a
// unit window around its value.
func yBounds(r *models.GraphResult) (float64, float64) {
	lo, hi := math.Inf(1), math.Inf(-1)
	for _, s := range r.Series {
		for _, p := range s.Points {
			if p.Y == nil {
				continue
			}
			lo = math.Min(lo, *p.Y)
			hi = math.Max(hi, *p.Y)
		}
	}
	if math.IsInf(lo, 1) {
		return -1, 1
	}
	if hi-lo < 1e-9 {
		return lo - 1, hi + 1
	}
	pad := (hi - lo) * 0.05
	return lo - pad, hi + pad
}

func coord(v float64) string {
	return fmt.Sprintf("%.2f", v)
}
