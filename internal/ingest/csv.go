// Package ingest parses ledger-row CSV exports from the receivables sheet.
// Input is assumed dirty: amounts may carry thousands separators or be
// blank, dates arrive in mixed formats. Malformed fields degrade to zero or
// absent values and are logged, never fatal.
package ingest

import (
	"encoding/csv"
	"errors"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/finview/receivables/internal/dates"
	"github.com/finview/receivables/internal/ledger"
)

// ErrMissingHeader is returned when the required columns cannot be found.
var ErrMissingHeader = errors.New("ingest: missing customer or number column")

// ReadRows decodes the sheet CSV. The header row names the columns:
// customer, number, date, due_date, debit, credit, matching, sales_rep.
// Unknown columns are ignored, row order is preserved.
func ReadRows(r io.Reader, log *slog.Logger) ([]ledger.Row, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		return nil, err
	}
	col := make(map[string]int, len(header))
	for i, name := range header {
		col[strings.ToLower(strings.TrimSpace(name))] = i
	}
	if _, ok := col["customer"]; !ok {
		return nil, ErrMissingHeader
	}
	if _, ok := col["number"]; !ok {
		return nil, ErrMissingHeader
	}

	field := func(rec []string, name string) string {
		i, ok := col[name]
		if !ok || i >= len(rec) {
			return ""
		}
		return strings.TrimSpace(rec[i])
	}

	rows := make([]ledger.Row, 0, 64)
	line := 1
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		line++
		row := ledger.Row{
			Customer: field(rec, "customer"),
			Number:   field(rec, "number"),
			Matching: field(rec, "matching"),
			SalesRep: field(rec, "sales_rep"),
		}
		if row.Customer == "" {
			log.Warn("skipping row without customer", "line", line)
			continue
		}
		row.DebitMinor = parseAmountMinor(field(rec, "debit"), log, line, "debit")
		row.CreditMinor = parseAmountMinor(field(rec, "credit"), log, line, "credit")
		row.Date = parseDate(field(rec, "date"), log, line, "date")
		row.DueDate = parseDate(field(rec, "due_date"), log, line, "due_date")
		rows = append(rows, row)
	}
	return rows, nil
}

// parseAmountMinor converts a sheet amount into minor units. Thousands
// separators are stripped first; anything still unparseable counts as zero.
func parseAmountMinor(s string, log *slog.Logger, line int, col string) int64 {
	if s == "" {
		return 0
	}
	cleaned := strings.ReplaceAll(s, ",", "")
	cleaned = strings.TrimSpace(cleaned)
	d, err := decimal.NewFromString(cleaned)
	if err != nil {
		log.Warn("unparseable amount treated as zero", "line", line, "column", col, "value", s)
		return 0
	}
	return d.Shift(2).Round(0).IntPart()
}

func parseDate(s string, log *slog.Logger, line int, col string) *time.Time {
	if s == "" {
		return nil
	}
	t, ok := dates.ParseFlexible(s)
	if !ok {
		log.Warn("unparseable date treated as absent", "line", line, "column", col, "value", s)
		return nil
	}
	return &t
}
