package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ukaji3/prismgraph-go/pkg/prismgraph"
	"github.com/ukaji3/prismgraph-go/pkg/prismgraph/compiler"
	"github.com/ukaji3/prismgraph-go/pkg/prismgraph/models"
	"github.com/xuri/excelize/v2"
)

func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestPlotCommandJSON(t *testing.T) {
	out, err := execute(t, "", "plot", "y = x^2, x from 0 to 2")
	require.NoError(t, err)

	var result models.GraphResult
	require.NoError(t, json.Unmarshal([]byte(out), &result))
	assert.Equal(t, 0.0, result.XMin)
	assert.Equal(t, 2.0, result.XMax)
	require.Len(t, result.Series, 1)
	assert.Equal(t, "y = x^2", result.Series[0].Label)
}

func TestPlotCommandStdinAndFile(t *testing.T) {
	out, err := execute(t, "y = 2x", "plot", "--format", "csv")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "series_id,label,x,y\n"))

	path := filepath.Join(t.TempDir(), "cmd.txt")
	require.NoError(t, os.WriteFile(path, []byte("y = cos(x)"), 0644))
	out, err = execute(t, "", "plot", "-f", path, "--format", "text")
	require.NoError(t, err)
	assert.Contains(t, out, "y = cos(x)")
}

func TestSurfaceCommandXLSX(t *testing.T) {
	path := filepath.Join(t.TempDir(), "surface.xlsx")
	_, err := execute(t, "", "surface", "z = x * y, grid 12", "--format", "xlsx", "-o", path)
	require.NoError(t, err)

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Surface")
	require.NoError(t, err)
	assert.Len(t, rows, 13)
}

func TestCommandErrors(t *testing.T) {
	_, err := execute(t, "", "plot", "--format", "png", "y = x")
	require.Error(t, err)

	_, err = execute(t, "", "surface", "--format", "svg", "z = x")
	require.Error(t, err)

	_, err = execute(t, "", "plot", "--engine", "mathjs", "y = x")
	require.Error(t, err)
	assert.True(t, errors.Is(err, compiler.ErrUnknownEngine))

	_, err = execute(t, "", "plot", "   ")
	require.Error(t, err)
	assert.True(t, errors.Is(err, prismgraph.ErrEmptyInput))

	_, err = execute(t, "", "plot", "--watch", "y = x")
	require.Error(t, err)

	_, err = execute(t, "y = x", "batch", "--format", "csv")
	require.Error(t, err)
}

func TestBatchCommand(t *testing.T) {
	stdin := "# curves\ny = x^2\n\ny = sqrt(x), x from -10 to -5\n"
	out, err := execute(t, stdin, "batch", "--engine", "expr")
	require.NoError(t, err)

	var records []batchRecord
	require.NoError(t, json.Unmarshal([]byte(out), &records))
	require.Len(t, records, 2)
	assert.NotNil(t, records[0].Graph)
	assert.Empty(t, records[0].Error)
	assert.Nil(t, records[1].Graph)
	assert.NotEmpty(t, records[1].Error)
}

func TestBatchCommandWorkbook(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()
	f.SetCellValue("Sheet1", "A1", "z = x + y")
	f.SetCellValue("Sheet1", "B1", "grid 10")
	f.SetCellValue("Sheet1", "A2", "z = x * y")

	path := filepath.Join(t.TempDir(), "commands.xlsx")
	require.NoError(t, f.SaveAs(path))

	out, err := execute(t, "", "batch", "--surface", "-f", path)
	require.NoError(t, err)

	var records []batchRecord
	require.NoError(t, json.Unmarshal([]byte(out), &records))
	require.Len(t, records, 2)
	assert.Equal(t, "z = x + y, grid 10", records[0].Input)
	require.NotNil(t, records[0].Surface)
	assert.Equal(t, 10, records[0].Surface.Resolution)
	require.NotNil(t, records[1].Surface)
	assert.Equal(t, 35, records[1].Surface.Resolution)
}

func TestConfigFlag(t *testing.T) {
	path := filepath.Join(t.TempDir(), "limits.yaml")
	require.NoError(t, os.WriteFile(path, []byte("limits:\n  plot:\n    default_min: 0\n    default_max: 4\n"), 0644))

	out, err := execute(t, "", "plot", "--config", path, "y = x")
	require.NoError(t, err)

	var result models.GraphResult
	require.NoError(t, json.Unmarshal([]byte(out), &result))
	assert.Equal(t, 0.0, result.XMin)
	assert.Equal(t, 4.0, result.XMax)
}

func TestWatchFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cmd.txt")
	require.NoError(t, os.WriteFile(path, []byte("y = x"), 0644))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	renders := make(chan struct{}, 16)
	done := make(chan error, 1)
	go func() {
		done <- watchFile(ctx, path, func() error {
			select {
			case renders <- struct{}{}:
			default:
			}
			return nil
		})
	}()

	// Keep writing until the watcher has registered and reported a change.
	deadline := time.After(5 * time.Second)
	tick := time.NewTicker(50 * time.Millisecond)
	defer tick.Stop()
loop:
	for {
		select {
		case <-renders:
			break loop
		case <-tick.C:
			require.NoError(t, os.WriteFile(path, []byte("y = 2x"), 0644))
		case <-deadline:
			t.Fatal("no re-render after file change")
		}
	}

	cancel()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("watcher did not stop")
	}
}
