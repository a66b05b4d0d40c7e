package excel

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/example/engpractice/internal/database"
)

// ImportConfig defines how a spelling word list file is read
type ImportConfig struct {
	FilePath   string // Path to the Excel or CSV file
	WordColumn string // Column with the word
	SheetName  string // Name of the sheet to import
	StartRow   int    // The row to start importing from (1-based index)
}

// DefaultImportConfig returns the default import configuration
func DefaultImportConfig(path string) ImportConfig {
	return ImportConfig{
		FilePath:   path,
		WordColumn: "A",
		SheetName:  "Sheet1",
		StartRow:   1,
	}
}

// ImportResult holds the result of an import operation
type ImportResult struct {
	TotalProcessed int
	Added          int
	Skipped        int
	Errors         []string
}

// ImportWords imports spelling words from an Excel or CSV file
func ImportWords(config ImportConfig) (*ImportResult, error) {
	ext := strings.ToLower(filepath.Ext(config.FilePath))

	var (
		words []string
		err   error
	)
	if ext == ".csv" {
		words, err = readCSV(config)
	} else {
		words, err = readExcel(config)
	}
	if err != nil {
		return nil, err
	}

	result := &ImportResult{
		TotalProcessed: len(words),
		Errors:         make([]string, 0),
	}

	repo := database.NewWordListRepository()
	added, err := repo.Add(words)
	if err != nil {
		return nil, fmt.Errorf("failed to save words: %v", err)
	}
	result.Added = added
	result.Skipped = result.TotalProcessed - added

	return result, nil
}

// readExcel reads the word column from an Excel file
func readExcel(config ImportConfig) ([]string, error) {
	f, err := excelize.OpenFile(config.FilePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open Excel file: %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows(config.SheetName)
	if err != nil {
		return nil, fmt.Errorf("failed to get rows: %v", err)
	}

	colIdx := columnToIndex(config.WordColumn)
	var words []string
	for i, row := range rows {
		if i < config.StartRow-1 {
			continue
		}
		if colIdx < len(row) {
			if w := cleanWord(row[colIdx]); w != "" {
				words = append(words, w)
			}
		}
	}
	return words, nil
}

// readCSV reads the word column from a CSV file
func readCSV(config ImportConfig) ([]string, error) {
	file, err := os.Open(config.FilePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open CSV file: %v", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1 // Allow variable number of fields
	reader.LazyQuotes = true

	colIdx := columnToIndex(config.WordColumn)
	var words []string
	rowNum := 0
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("error reading CSV: %v", err)
		}

		rowNum++
		if rowNum < config.StartRow {
			continue
		}
		if colIdx < len(row) {
			if w := cleanWord(row[colIdx]); w != "" {
				words = append(words, w)
			}
		}
	}
	return words, nil
}

// cleanWord drops header cells and anything that isn't a single word
func cleanWord(cell string) string {
	w := strings.Trim(strings.TrimSpace(cell), "\"")
	if w == "" || strings.ContainsAny(w, " \t") {
		return ""
	}
	if strings.EqualFold(w, "word") || strings.EqualFold(w, "words") {
		return ""
	}
	return strings.ToLower(w)
}

// columnToIndex converts a column letter (A, B, ..., Z, AA, ...) to a zero-based index
func columnToIndex(column string) int {
	column = strings.ToUpper(strings.TrimSpace(column))
	index := 0
	for _, c := range column {
		if c < 'A' || c > 'Z' {
			return 0
		}
		index = index*26 + int(c-'A') + 1
	}
	if index == 0 {
		return 0
	}
	return index - 1
}
