package reader

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/JonMunkholm/PGTReport/internal/engine"
	"github.com/JonMunkholm/PGTReport/internal/schema"
)

// headerMarker identifies the column-header row inside a submission file.
// Both exchange templates carry several banner rows above the real header,
// so the reader scans for the first row containing this column name.
const headerMarker = "联交所参与者名称"

// headerScanLimit bounds how deep the header scan goes before giving up.
const headerScanLimit = 30

var (
	ErrHeaderNotFound = errors.New("header row not found (expected a row containing '联交所参与者名称')")
	ErrNoDataRows     = errors.New("no data rows found after the header row")
)

// ReadRows decodes a CSV submission into engine rows for the given variant.
// Cells are trimmed, rows with no content are skipped, and row ordinals are
// 1-based counting from the first row after the header.
func ReadRows(r io.Reader, variant *schema.Variant) ([]engine.Row, error) {
	cr := csv.NewReader(stripBOM(r))
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read csv: %w", err)
	}

	headerIdx := -1
	for i, rec := range records {
		if i >= headerScanLimit {
			break
		}
		if isHeaderRow(rec) {
			headerIdx = i
			break
		}
	}
	if headerIdx == -1 {
		return nil, ErrHeaderNotFound
	}

	var rows []engine.Row
	ordinal := 0
	for _, rec := range records[headerIdx+1:] {
		ordinal++
		cells := make(map[int]string)
		empty := true
		for pos := 0; pos < variant.FieldCount() && pos < len(rec); pos++ {
			v := strings.TrimSpace(rec[pos])
			if v == "" {
				continue
			}
			cells[pos] = v
			empty = false
		}
		if empty {
			continue
		}
		rows = append(rows, engine.Row{Ordinal: ordinal, Cells: cells})
	}
	if len(rows) == 0 {
		return nil, ErrNoDataRows
	}
	return rows, nil
}

func isHeaderRow(rec []string) bool {
	for _, cell := range rec {
		if strings.Contains(cell, headerMarker) {
			return true
		}
	}
	return false
}

// stripBOM removes a UTF-8 byte order mark so the first header cell
// compares clean. Files exported from spreadsheet tools often carry one.
func stripBOM(r io.Reader) io.Reader {
	br := bufio.NewReader(r)
	head, err := br.Peek(3)
	if err == nil && head[0] == 0xEF && head[1] == 0xBB && head[2] == 0xBF {
		br.Discard(3)
	}
	return br
}
