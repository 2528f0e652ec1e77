// Package ingest reads the core's external inputs — item catalogues,
// order rows, and container catalogues — from CSV, Excel, and JSON and
// turns them into model values. Delimiter sniffing and header-alias
// matching are adapted from the teacher's part-list importer.
package ingest

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/piwi3910/cratepack/internal/model"
	"github.com/xuri/excelize/v2"
)

// ItemResult holds the parsed item catalogue plus non-fatal diagnostics.
type ItemResult struct {
	Items    map[string]model.Item
	Warnings []string
}

var itemHeaderAliases = map[string][]string{
	"id":     {"id", "item", "item id", "sku"},
	"width":  {"width", "w"},
	"height": {"height", "h"},
	"length": {"length", "l", "depth", "d"},
	"weight": {"weight", "weight g", "weight_g", "grams"},
	"fit":    {"fit ratio", "fit_ratio", "fitratio", "fit"},
}

type itemColumns struct {
	ID, Width, Height, Length, Weight, Fit int
}

// ReadItemCatalogue reads an item catalogue file, CSV or Excel selected
// by extension, keyed by ID.
func ReadItemCatalogue(path string) (ItemResult, error) {
	rows, err := readTabularFile(path)
	if err != nil {
		return ItemResult{}, err
	}
	return parseItemRows(rows), nil
}

func detectItemColumns(header []string) (itemColumns, bool) {
	cols := itemColumns{-1, -1, -1, -1, -1, -1}
	found := false
	for i, cell := range header {
		normalized := strings.ToLower(strings.TrimSpace(cell))
		for role, aliases := range itemHeaderAliases {
			for _, alias := range aliases {
				if normalized != alias {
					continue
				}
				found = true
				switch role {
				case "id":
					cols.ID = setIfUnset(cols.ID, i)
				case "width":
					cols.Width = setIfUnset(cols.Width, i)
				case "height":
					cols.Height = setIfUnset(cols.Height, i)
				case "length":
					cols.Length = setIfUnset(cols.Length, i)
				case "weight":
					cols.Weight = setIfUnset(cols.Weight, i)
				case "fit":
					cols.Fit = setIfUnset(cols.Fit, i)
				}
			}
		}
	}
	return cols, found
}

func setIfUnset(cur, idx int) int {
	if cur == -1 {
		return idx
	}
	return cur
}

func parseItemRows(rows [][]string) ItemResult {
	result := ItemResult{Items: map[string]model.Item{}}
	if len(rows) == 0 {
		return result
	}

	cols, hasHeader := detectItemColumns(rows[0])
	start := 0
	if hasHeader {
		start = 1
	} else {
		cols = itemColumns{ID: 0, Width: 1, Height: 2, Length: 3, Weight: 4, Fit: 5}
	}

	for i := start; i < len(rows); i++ {
		row := rows[i]
		if isEmptyRow(row) {
			continue
		}
		lineLabel := fmt.Sprintf("row %d", i+1)

		id := cell(row, cols.ID)
		if id == "" {
			result.Warnings = append(result.Warnings, fmt.Sprintf("%s: missing ID, skipped", lineLabel))
			continue
		}

		width, werr := parseFloat(cell(row, cols.Width))
		height, herr := parseFloat(cell(row, cols.Height))
		length, lerr := parseFloat(cell(row, cols.Length))
		weight, _ := parseFloat(cell(row, cols.Weight))
		fit, ferr := parseFloat(cell(row, cols.Fit))
		if fit == 0 && ferr != nil {
			fit = 100
		}

		if werr != nil || herr != nil || lerr != nil {
			result.Warnings = append(result.Warnings, fmt.Sprintf("%s: invalid dimensions for item %q, skipped", lineLabel, id))
			continue
		}
		if width <= 0 || height <= 0 || length <= 0 {
			result.Warnings = append(result.Warnings, fmt.Sprintf("%s: non-positive dimensions for item %q, skipped", lineLabel, id))
			continue
		}

		result.Items[id] = model.NewItem(id, width, height, length, weight, fit, "")
	}
	return result
}

func cell(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

func isEmptyRow(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}

func parseFloat(s string) (float64, error) {
	if s == "" {
		return 0, fmt.Errorf("empty")
	}
	return strconv.ParseFloat(s, 64)
}

// detectCSVDelimiter scores comma/semicolon/tab/pipe by consistency of
// resulting column counts, same heuristic the teacher's importer used.
func detectCSVDelimiter(data []byte) rune {
	candidates := []rune{',', ';', '\t', '|'}
	best := ','
	bestScore := 0

	for _, delim := range candidates {
		reader := csv.NewReader(bytes.NewReader(data))
		reader.Comma = delim
		reader.LazyQuotes = true
		reader.FieldsPerRecord = -1

		records, err := reader.ReadAll()
		if err != nil || len(records) < 1 || len(records[0]) < 2 {
			continue
		}

		firstCols := len(records[0])
		score := 0
		for _, row := range records {
			if len(row) == firstCols {
				score++
			}
		}
		weighted := score*10 + firstCols
		if weighted > bestScore {
			bestScore = weighted
			best = delim
		}
	}
	return best
}

func readTabularFile(path string) ([][]string, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx", ".xls":
		return readExcelRows(path)
	default:
		return readCSVRows(path)
	}
}

func readCSVRows(path string) ([][]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	data = bytes.TrimPrefix(data, []byte{0xEF, 0xBB, 0xBF})
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, nil
	}

	reader := csv.NewReader(bytes.NewReader(data))
	reader.Comma = detectCSVDelimiter(data)
	reader.LazyQuotes = true
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return records, nil
}

func readExcelRows(path string) ([][]string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, nil
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("read sheet in %s: %w", path, err)
	}
	return rows, nil
}
