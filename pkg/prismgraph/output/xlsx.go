package output

import (
	"errors"
	"fmt"
	"io"

	"github.com/ukaji3/prismgraph-go/pkg/prismgraph/models"
	"github.com/xuri/excelize/v2"
)

// ErrNoSeries is returned when a 2D result has nothing to export.
var ErrNoSeries = errors.New("result has no series")

const (
	// DataSheet holds 2D samples: x in column A, one column per series.
	DataSheet = "Data"
	// SurfaceSheet holds the 3D matrix: x values in row 1, y values in column A.
	SurfaceSheet = "Surface"
)

// WriteXLSX writes a 2D result as a workbook with a data sheet and a
// native scatter chart.
func WriteXLSX(w io.Writer, r *models.GraphResult) error {
	if len(r.Series) == 0 {
		return ErrNoSeries
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", DataSheet); err != nil {
		return err
	}

	header := []interface{}{"x"}
	for _, s := range r.Series {
		header = append(header, s.Label)
	}
	if err := f.SetSheetRow(DataSheet, "A1", &header); err != nil {
		return err
	}

	for i := range r.Series[0].Points {
		row := []interface{}{r.Series[0].Points[i].X}
		for _, s := range r.Series {
			row = append(row, cellValue(s.Points[i].Y))
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(DataSheet, cell, &row); err != nil {
			return err
		}
	}

	lastRow := len(r.Series[0].Points) + 1
	xRange, err := columnRange(DataSheet, 1, 2, lastRow)
	if err != nil {
		return err
	}

	chart := &excelize.Chart{
		Type:         excelize.Scatter,
		Title:        []excelize.RichTextRun{{Text: chartTitle(r)}},
		XAxis:        excelize.ChartAxis{Title: []excelize.RichTextRun{{Text: "x"}}},
		YAxis:        excelize.ChartAxis{Title: []excelize.RichTextRun{{Text: "y"}}},
		Dimension:    excelize.ChartDimension{Width: 720, Height: 480},
		ShowBlanksAs: "gap",
	}
	for i := range r.Series {
		col := i + 2
		name, err := excelize.CoordinatesToCellName(col, 1, true)
		if err != nil {
			return err
		}
		values, err := columnRange(DataSheet, col, 2, lastRow)
		if err != nil {
			return err
		}
		chart.Series = append(chart.Series, excelize.ChartSeries{
			Name:       DataSheet + "!" + name,
			Categories: xRange,
			Values:     values,
			Marker:     excelize.ChartMarker{Symbol: "none"},
		})
	}

	anchor, err := excelize.CoordinatesToCellName(len(r.Series)+3, 2)
	if err != nil {
		return err
	}
	if err := f.AddChart(DataSheet, anchor, chart); err != nil {
		return fmt.Errorf("failed to add chart: %w", err)
	}

	return f.Write(w)
}

// WriteSurfaceXLSX writes a 3D result as a matrix sheet with a surface chart.
// Each chart series is one row of the matrix.
func WriteSurfaceXLSX(w io.Writer, r *models.SurfaceResult) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SurfaceSheet); err != nil {
		return err
	}

	header := []interface{}{"y\\x"}
	for _, x := range r.XValues {
		header = append(header, x)
	}
	if err := f.SetSheetRow(SurfaceSheet, "A1", &header); err != nil {
		return err
	}

	for i, y := range r.YValues {
		row := []interface{}{y}
		for _, z := range r.ZMatrix[i] {
			row = append(row, cellValue(z))
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(SurfaceSheet, cell, &row); err != nil {
			return err
		}
	}

	lastCol := len(r.XValues) + 1
	categories, err := rowRange(SurfaceSheet, 1, 2, lastCol)
	if err != nil {
		return err
	}

	chart := &excelize.Chart{
		Type:      excelize.Surface3D,
		Title:     []excelize.RichTextRun{{Text: r.Label}},
		Dimension: excelize.ChartDimension{Width: 720, Height: 540},
		Legend:    excelize.ChartLegend{Position: "none"},
	}
	for i := range r.YValues {
		rowNum := i + 2
		name, err := excelize.CoordinatesToCellName(1, rowNum, true)
		if err != nil {
			return err
		}
		values, err := rowRange(SurfaceSheet, rowNum, 2, lastCol)
		if err != nil {
			return err
		}
		chart.Series = append(chart.Series, excelize.ChartSeries{
			Name:       SurfaceSheet + "!" + name,
			Categories: categories,
			Values:     values,
		})
	}

	anchor, err := excelize.CoordinatesToCellName(lastCol+2, 2)
	if err != nil {
		return err
	}
	if err := f.AddChart(SurfaceSheet, anchor, chart); err != nil {
		return fmt.Errorf("failed to add chart: %w", err)
	}

	return f.Write(w)
}

// columnRange returns an absolute reference like Data!$B$2:$B$402.
func columnRange(sheet string, col, fromRow, toRow int) (string, error) {
	return cellRange(sheet, col, fromRow, col, toRow)
}

// rowRange returns an absolute reference like Surface!$B$3:$AK$3.
func rowRange(sheet string, row, fromCol, toCol int) (string, error) {
	return cellRange(sheet, fromCol, row, toCol, row)
}

func cellRange(sheet string, c1, r1, c2, r2 int) (string, error) {
	start, err := excelize.CoordinatesToCellName(c1, r1, true)
	if err != nil {
		return "", err
	}
	end, err := excelize.CoordinatesToCellName(c2, r2, true)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s!%s:%s", sheet, start, end), nil
}

func cellValue(v *float64) interface{} {
	if v == nil {
		return nil
	}
	return *v
}

func chartTitle(r *models.GraphResult) string {
	if len(r.Series) == 1 {
		return r.Series[0].Label
	}
	return fmt.Sprintf("%d series", len(r.Series))
}
