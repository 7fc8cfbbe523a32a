package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/ukaji3/prismgraph-go/pkg/prismgraph"
	"github.com/ukaji3/prismgraph-go/pkg/prismgraph/models"
	"github.com/ukaji3/prismgraph-go/pkg/prismgraph/output"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true)
	noteStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#d97706"))
	errorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#dc2626")).Bold(true)
	boxStyle   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
)

// renderGraph computes input and writes it in the selected --format.
func renderGraph(w io.Writer, variant prismgraph.Variant, input string, opts prismgraph.Options) error {
	if variant == prismgraph.Variant3D {
		r, err := prismgraph.Surface(input, opts)
		if err != nil {
			return err
		}
		return writeSurface(w, r)
	}

	r, err := prismgraph.Plot(input, opts)
	if err != nil {
		return err
	}
	return writePlot(w, r)
}

func writePlot(w io.Writer, r *models.GraphResult) error {
	switch format {
	case "csv":
		return output.WriteCSV(w, r)
	case "xlsx":
		return output.WriteXLSX(w, r)
	case "svg":
		return output.WriteSVG(w, r, 0, 0)
	case "text":
		_, err := fmt.Fprintln(w, plotText(r))
		return err
	}

	data, err := output.ToJSON(r, pretty)
	if err != nil {
		return fmt.Errorf("serialization failed: %w", err)
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}

func writeSurface(w io.Writer, r *models.SurfaceResult) error {
	switch format {
	case "csv":
		return output.WriteSurfaceCSV(w, r)
	case "xlsx":
		return output.WriteSurfaceXLSX(w, r)
	case "text":
		_, err := fmt.Fprintln(w, surfaceText(r))
		return err
	}

	data, err := output.SurfaceToJSON(r, pretty)
	if err != nil {
		return fmt.Errorf("serialization failed: %w", err)
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}

// batchRecord is the JSON form of one batch item.
type batchRecord struct {
	Input   string                `json:"input"`
	Graph   *models.GraphResult   `json:"graph,omitempty"`
	Surface *models.SurfaceResult `json:"surface,omitempty"`
	Error   string                `json:"error,omitempty"`
}

func renderBatch(w io.Writer, items []prismgraph.BatchItem) error {
	if format == "text" {
		blocks := make([]string, 0, len(items))
		for _, item := range items {
			switch {
			case item.Err != nil:
				blocks = append(blocks, boxStyle.Render(titleStyle.Render(item.Input)+"\n"+errorStyle.Render(item.Err.Error())))
			case item.Surface != nil:
				blocks = append(blocks, surfaceText(item.Surface))
			default:
				blocks = append(blocks, plotText(item.Graph))
			}
		}
		_, err := fmt.Fprintln(w, strings.Join(blocks, "\n"))
		return err
	}

	records := make([]batchRecord, len(items))
	for i, item := range items {
		records[i] = batchRecord{Input: item.Input, Graph: item.Graph, Surface: item.Surface}
		if item.Err != nil {
			records[i].Error = item.Err.Error()
		}
	}

	var data []byte
	var err error
	if pretty {
		data, err = json.MarshalIndent(records, "", "  ")
	} else {
		data, err = json.Marshal(records)
	}
	if err != nil {
		return fmt.Errorf("serialization failed: %w", err)
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}

func plotText(r *models.GraphResult) string {
	var lines []string
	for _, s := range r.Series {
		swatch := lipgloss.NewStyle().Foreground(lipgloss.Color(s.Color)).Render("■")
		lines = append(lines, fmt.Sprintf("%s %s  %d/%d points", swatch, titleStyle.Render(s.Label), s.ValidPointCount, len(s.Points)))
	}
	lines = append(lines, r.Summary...)
	for _, note := range r.Notes {
		lines = append(lines, noteStyle.Render("! "+note))
	}
	return boxStyle.Render(strings.Join(lines, "\n"))
}

func surfaceText(r *models.SurfaceResult) string {
	swatch := lipgloss.NewStyle().Foreground(lipgloss.Color(r.Color)).Render("■")
	lines := []string{
		fmt.Sprintf("%s %s  %d/%d points", swatch, titleStyle.Render(r.Label), r.ValidPointCount, r.TotalPoints()),
	}
	lines = append(lines, r.Summary...)
	for _, note := range r.Notes {
		lines = append(lines, noteStyle.Render("! "+note))
	}
	return boxStyle.Render(strings.Join(lines, "\n"))
}
