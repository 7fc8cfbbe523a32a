package output

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ukaji3/prismgraph-go/pkg/prismgraph/models"
	"github.com/xuri/excelize/v2"
)

func ptr(v float64) *float64 { return &v }

func sampleGraph() *models.GraphResult {
	return &models.GraphResult{
		XMin:        -1,
		XMax:        1,
		Step:        0.5,
		SampleCount: 5,
		Series: []models.Series{
			{
				ID:         "a",
				Expression: "x^2",
				Label:      "y = x^2",
				Color:      "#2563eb",
				Points: []models.Point{
					{X: -1, Y: ptr(1)}, {X: -0.5, Y: ptr(0.25)}, {X: 0, Y: ptr(0)},
					{X: 0.5, Y: ptr(0.25)}, {X: 1, Y: ptr(1)},
				},
				ValidPointCount: 5,
			},
			{
				ID:         "b",
				Expression: "sqrt(x)",
				Label:      "y = sqrt(x)",
				Color:      "#dc2626",
				Points: []models.Point{
					{X: -1}, {X: -0.5}, {X: 0, Y: ptr(0)},
					{X: 0.5, Y: ptr(0.707107)}, {X: 1, Y: ptr(1)},
				},
				ValidPointCount: 3,
			},
		},
		Notes:   []string{},
		Summary: []string{"Plotted 2 series."},
	}
}

func sampleSurface() *models.SurfaceResult {
	return &models.SurfaceResult{
		Expression: "x + y",
		Label:      "z = x + y",
		Color:      "#2563eb",
		XValues:    []float64{0, 1, 2},
		YValues:    []float64{0, 1},
		ZMatrix: [][]*float64{
			{ptr(0), ptr(1), ptr(2)},
			{ptr(1), nil, ptr(3)},
		},
		XRange:          [2]float64{0, 2},
		YRange:          [2]float64{0, 1},
		ZRange:          [2]float64{0, 3},
		Resolution:      3,
		ValidPointCount: 5,
		Notes:           []string{},
		Summary:         []string{"Surface z = x + y."},
	}
}

func TestToJSON(t *testing.T) {
	data, err := ToJSON(sampleGraph(), false)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "\n")

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, 5.0, decoded["sample_count"])

	series := decoded["series"].([]interface{})
	first := series[1].(map[string]interface{})["points"].([]interface{})[0].(map[string]interface{})
	assert.Nil(t, first["y"])

	pretty, err := ToJSON(sampleGraph(), true)
	require.NoError(t, err)
	assert.Contains(t, string(pretty), "\n  \"x_min\": -1")
}

func TestSurfaceToJSON(t *testing.T) {
	data, err := SurfaceToJSON(sampleSurface(), false)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"z_matrix":[[0,1,2],[1,null,3]]`)
	assert.Contains(t, string(data), `"resolution":3`)
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, sampleGraph()))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 11)

	assert.Equal(t, []string{"series_id", "label", "x", "y"}, records[0])
	assert.Equal(t, []string{"a", "y = x^2", "-0.5", "0.25"}, records[2])
	assert.Equal(t, []string{"b", "y = sqrt(x)", "-1", ""}, records[6])
	assert.Equal(t, []string{"b", "y = sqrt(x)", "0.5", "0.707107"}, records[9])
}

func TestWriteSurfaceCSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteSurfaceCSV(&buf, sampleSurface()))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	assert.Equal(t, [][]string{
		{"y\\x", "0", "1", "2"},
		{"0", "0", "1", "2"},
		{"1", "1", "", "3"},
	}, records)
}

func TestWriteXLSX(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteXLSX(&buf, sampleGraph()))

	f, err := excelize.OpenReader(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{DataSheet}, f.GetSheetList())

	rows, err := f.GetRows(DataSheet)
	require.NoError(t, err)
	require.Len(t, rows, 6)
	assert.Equal(t, []string{"x", "y = x^2", "y = sqrt(x)"}, rows[0])
	assert.Equal(t, "0.25", rows[2][1])

	value, err := f.GetCellValue(DataSheet, "C2")
	require.NoError(t, err)
	assert.Empty(t, value)

	value, err = f.GetCellValue(DataSheet, "C5")
	require.NoError(t, err)
	assert.Equal(t, "0.707107", value)
}

func TestWriteXLSXNoSeries(t *testing.T) {
	var buf bytes.Buffer
	err := WriteXLSX(&buf, &models.GraphResult{XMin: -1, XMax: 1, SampleCount: 5})
	assert.ErrorIs(t, err, ErrNoSeries)
	assert.Zero(t, buf.Len())
}

func TestWriteSurfaceXLSX(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteSurfaceXLSX(&buf, sampleSurface()))

	f, err := excelize.OpenReader(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(SurfaceSheet)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, []string{"y\\x", "0", "1", "2"}, rows[0])
	assert.Equal(t, []string{"1", "1", "", "3"}, rows[2])
}

func TestWriteSVG(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteSVG(&buf, sampleGraph(), 0, 0))
	svg := buf.String()

	assert.True(t, strings.HasPrefix(svg, `<svg xmlns="http://www.w3.org/2000/svg" width="800" height="500"`))
	assert.True(t, strings.HasSuffix(svg, "</svg>\n"))
	assert.Equal(t, 2, strings.Count(svg, "<polyline"))
	assert.Equal(t, 2, strings.Count(svg, `class="axis"`))
	assert.Contains(t, svg, `stroke="#dc2626"`)
	assert.Contains(t, svg, "<title>y = sqrt(x)</title>")
}

func TestSegments(t *testing.T) {
	points := []models.Point{
		{X: 0, Y: ptr(1)}, {X: 1, Y: ptr(2)}, {X: 2},
		{X: 3, Y: ptr(1)}, {X: 4},
		{X: 5, Y: ptr(0)}, {X: 6, Y: ptr(0)}, {X: 7, Y: ptr(0)},
	}

	segs := segments(points)
	require.Len(t, segs, 2)
	assert.Len(t, segs[0], 2)
	assert.Len(t, segs[1], 3)
	assert.Empty(t, segments(nil))
}

func TestYBounds(t *testing.T) {
	lo, hi := yBounds(&models.GraphResult{Series: []models.Series{{Points: []models.Point{{X: 0}}}}})
	assert.Equal(t, -1.0, lo)
	assert.Equal(t, 1.0, hi)

	flat := &models.GraphResult{Series: []models.Series{{Points: []models.Point{{X: 0, Y: ptr(3)}, {X: 1, Y: ptr(3)}}}}}
	lo, hi = yBounds(flat)
	assert.Equal(t, 2.0, lo)
	assert.Equal(t, 4.0, hi)
}
