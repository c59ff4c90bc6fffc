// Package cstimer reads csTimer session exports, either the native
// semicolon-delimited CSV or an xlsx re-export of the same table.
package cstimer

import (
	"encoding/csv"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"unicode"

	"solvestats/domain/core"
	"solvestats/domain/solve"

	"github.com/xuri/excelize/v2"
)

// Column headers in a csTimer export. The status column holds the display
// time and starts with "DNF" for failed attempts; the raw time column
// holds the undecorated duration.
const (
	statusColumn  = "Time"
	rawTimeColumn = "P.1"
)

// Options controls how an export is read.
type Options struct {
	// Delimiter for CSV files. csTimer exports use ';'.
	Delimiter rune
	// SkipMalformed drops rows whose raw time fails to parse instead of
	// aborting the whole read. Aborting is the default so a bad row cannot
	// silently skew the statistics.
	SkipMalformed bool
}

// DefaultOptions returns options matching a stock csTimer CSV export.
func DefaultOptions() Options {
	return Options{Delimiter: ';'}
}

// Reader handles reading csTimer CSV and Excel session exports.
type Reader struct {
	filePath string
	fileType string // "xlsx" or "csv"
	opts     Options
}

// NewReader creates a reader for the given export file, picking the format
// from the file extension.
func NewReader(filePath string, opts Options) *Reader {
	if opts.Delimiter == 0 {
		opts.Delimiter = ';'
	}
	fileType := "csv"
	if strings.ToLower(filepath.Ext(filePath)) == ".xlsx" {
		fileType = "xlsx"
	}
	return &Reader{filePath: filePath, fileType: fileType, opts: opts}
}

// ReadSolves reads every attempt from the export in file order.
func (r *Reader) ReadSolves() ([]solve.Solve, error) {
	if _, err := os.Stat(r.filePath); err != nil {
		return nil, core.NewSourceReadError(r.filePath, err)
	}

	var rows [][]string
	var err error
	switch r.fileType {
	case "csv":
		rows, err = r.readCSVRows()
	case "xlsx":
		rows, err = r.readExcelRows()
	default:
		err = core.NewSourceReadError(r.filePath, fmt.Errorf("unsupported file type %q", r.fileType))
	}
	if err != nil {
		return nil, err
	}

	return r.processRows(rows)
}

func (r *Reader) readCSVRows() ([][]string, error) {
	f, err := os.Open(r.filePath)
	if err != nil {
		return nil, core.NewSourceReadError(r.filePath, err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.Comma = r.opts.Delimiter
	reader.FieldsPerRecord = -1

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, core.NewSourceReadError(r.filePath, err)
	}
	return rows, nil
}

func (r *Reader) readExcelRows() ([][]string, error) {
	f, err := excelize.OpenFile(r.filePath)
	if err != nil {
		return nil, core.NewSourceReadError(r.filePath, err)
	}
	defer f.Close()

	rows, err := f.GetRows(f.GetSheetName(0))
	if err != nil {
		return nil, core.NewSourceReadError(r.filePath, err)
	}
	return rows, nil
}

// processRows converts raw rows into solves. The header row identifies the
// status and raw time columns by name, not position.
func (r *Reader) processRows(rows [][]string) ([]solve.Solve, error) {
	if len(rows) == 0 {
		return nil, core.NewSourceReadError(r.filePath, fmt.Errorf("export has no header row"))
	}

	statusIdx, rawIdx := -1, -1
	for i, header := range rows[0] {
		switch strings.TrimSpace(header) {
		case statusColumn:
			statusIdx = i
		case rawTimeColumn:
			rawIdx = i
		}
	}
	if statusIdx == -1 {
		return nil, core.NewMissingColumnError(statusColumn)
	}
	if rawIdx == -1 {
		return nil, core.NewMissingColumnError(rawTimeColumn)
	}

	solves := make([]solve.Solve, 0, len(rows)-1)
	skipped := 0
	for n, row := range rows[1:] {
		if len(row) <= statusIdx || len(row) <= rawIdx {
			return nil, core.NewSourceReadError(r.filePath, fmt.Errorf("row %d has %d fields", n+1, len(row)))
		}

		dnf, err := classifyStatus(n+1, row[statusIdx])
		if err != nil {
			return nil, err
		}
		if dnf {
			solves = append(solves, solve.NewDNF(row[rawIdx]))
			continue
		}

		s, err := solve.NewSolve(row[rawIdx])
		if err != nil {
			if r.opts.SkipMalformed {
				skipped++
				continue
			}
			return nil, err
		}
		solves = append(solves, s)
	}

	if skipped > 0 {
		log.Printf("[SolveReader] Skipped %d malformed rows in %s", skipped, r.filePath)
	}
	return solves, nil
}

// classifyStatus maps the status field to an explicit failure flag. A
// valid attempt starts with a digit, a failed one with the DNF marker;
// anything else is rejected instead of being guessed at.
func classifyStatus(row int, status string) (dnf bool, err error) {
	trimmed := strings.TrimSpace(status)
	if trimmed == "" {
		return false, core.NewUnknownStatusError(row, status)
	}
	if strings.HasPrefix(trimmed, "DNF") {
		return true, nil
	}
	if unicode.IsDigit(rune(trimmed[0])) {
		return false, nil
	}
	return false, core.NewUnknownStatusError(row, status)
}
