package output

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/ukaji3/prismgraph-go/pkg/prismgraph/models"
)

// WriteCSV writes a 2D result in long format: one row per series sample
// with columns series_id, label, x, y. Failed samples have an empty y.
func WriteCSV(w io.Writer, r *models.GraphResult) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"series_id", "label", "x", "y"}); err != nil {
		return err
	}

	for _, s := range r.Series {
		for _, p := range s.Points {
			if err := cw.Write([]string{s.ID, s.Label, formatFloat(p.X), formatValue(p.Y)}); err != nil {
				return err
			}
		}
	}

	cw.Flush()
	return cw.Error()
}

// WriteSurfaceCSV writes a 3D result as a matrix. The header row holds the
// x values and the first column holds the y values.
func WriteSurfaceCSV(w io.Writer, r *models.SurfaceResult) error {
	cw := csv.NewWriter(w)

	header := make([]string, 0, len(r.XValues)+1)
	header = append(header, "y\\x")
	for _, x := range r.XValues {
		header = append(header, formatFloat(x))
	}
	if err := cw.Write(header); err != nil {
		return err
	}

	for row, y := range r.YValues {
		record := make([]string, 0, len(r.XValues)+1)
		record = append(record, formatFloat(y))
		for _, z := range r.ZMatrix[row] {
			record = append(record, formatValue(z))
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

func formatValue(v *float64) string {
	if v == nil {
		return ""
	}
	return formatFloat(*v)
}
