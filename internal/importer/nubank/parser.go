// Package nubank parses Nubank CSV exports into transaction params. Two
// layouts exist in the wild: the credit card export
// (date,category,title,amount) and the account statement
// (Data,Valor,Identificador,Descrição). The header row decides which one a
// file is.
package nubank

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
	"time"

	enc "github.com/bolsofacil/api/internal/encoding"
	"github.com/bolsofacil/api/internal/money"
	"github.com/bolsofacil/api/internal/transaction"
)

type Importer struct{}

func New() *Importer {
	return &Importer{}
}

func (i *Importer) Parse(r io.Reader) ([]transaction.CreateParams, error) {
	utf8r, err := enc.NewUTF8Reader(r)
	if err != nil {
		return nil, fmt.Errorf("detecting encoding: %w", err)
	}

	reader := csv.NewReader(utf8r)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading csv: %w", err)
	}

	profile, cols, headerIdx := detectProfile(rows)
	if profile == nil {
		return nil, fmt.Errorf("no matching Nubank layout: expected card or account statement columns")
	}

	return parseRows(profile, cols, rows[headerIdx+1:])
}

// colIndex maps header names to their position in the row.
type colIndex map[string]int

func detectProfile(rows [][]string) (*profile, colIndex, int) {
	for rowIdx, row := range rows {
		cols := make(colIndex)

		for i, cell := range row {
			name := strings.TrimSpace(cell)
			if name != "" {
				cols[name] = i
			}
		}

		for i := range profiles {
			if matchesProfile(&profiles[i], cols) {
				return &profiles[i], cols, rowIdx
			}
		}
	}

	return nil, nil, 0
}

func matchesProfile(p *profile, cols colIndex) bool {
	for _, name := range p.requiredCols() {
		if _, ok := cols[name]; !ok {
			return false
		}
	}

	return true
}

// parseRows converts data rows to transaction params. Rows whose date or
// amount does not parse are skipped rather than failing the file: Nubank
// exports occasionally carry footer lines.
func parseRows(p *profile, cols colIndex, rows [][]string) ([]transaction.CreateParams, error) {
	var params []transaction.CreateParams

	for _, row := range rows {
		date, ok := parseDate(p, row, cols)
		if !ok {
			continue
		}

		title := cellValue(row, cols, p.titleCol)
		if title == "" {
			continue
		}

		amount, err := money.Parse(cellValue(row, cols, p.amountCol))
		if err != nil {
			continue
		}

		if amount == 0 {
			continue
		}

		txType := p.typeFor(amount)
		if amount < 0 {
			amount = amount.Neg()
		}

		params = append(params, transaction.CreateParams{
			Title:    title,
			Amount:   amount,
			Type:     txType,
			Category: cellValue(row, cols, p.categoryCol),
			Date:     date,
		})
	}

	return params, nil
}

func parseDate(p *profile, row []string, cols colIndex) (time.Time, bool) {
	raw := cellValue(row, cols, p.dateCol)
	if raw == "" {
		return time.Time{}, false
	}

	date, err := time.Parse(p.dateLayout, raw)
	if err != nil {
		return time.Time{}, false
	}

	return date, true
}

func cellValue(row []string, cols colIndex, name string) string {
	if name == "" {
		return ""
	}

	idx, ok := cols[name]
	if !ok || idx >= len(row) {
		return ""
	}

	return strings.TrimSpace(row[idx])
}
