// Package input reads batches of graph commands from text and XLSX sources.
package input

import (
	"bufio"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"
)

// ReadLines returns one command per non-blank line of r. Lines starting
// with "#" are comments.
func ReadLines(r io.Reader) ([]string, error) {
	var commands []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		if cmd, ok := command(scanner.Text()); ok {
			commands = append(commands, cmd)
		}
	}
	return commands, scanner.Err()
}

// ReadXLSX returns one command per non-empty row of a workbook sheet. The
// non-empty cells of a row are joined with ", " so an expression and its
// directives may sit in separate columns. If sheet is empty, the first
// sheet is used.
func ReadXLSX(r io.Reader, sheet string) ([]string, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()

	if sheet == "" {
		sheet = f.GetSheetName(0)
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q: %w", sheet, err)
	}

	var commands []string
	for _, row := range rows {
		var cells []string
		for _, value := range row {
			if value = strings.TrimSpace(value); value != "" {
				cells = append(cells, value)
			}
		}
		if cmd, ok := command(strings.Join(cells, ", ")); ok {
			commands = append(commands, cmd)
		}
	}
	return commands, nil
}

// IsWorkbook reports whether path names an XLSX file.
func IsWorkbook(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx", ".xlsm":
		return true
	}
	return false
}

func command(line string) (string, bool) {
	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, "#") {
		return "", false
	}
	return line, true
}
