package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/finview/receivables/internal/report"
	"github.com/finview/receivables/internal/slug"
)

// setRow writes one row of cells starting at column 1.
func setRow(f *excelize.File, sheet string, row int, values ...any) error {
	for i, v := range values {
		cell, err := excelize.CoordinatesToCellName(i+1, row)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, cell, v); err != nil {
			return err
		}
	}
	return nil
}

// major converts minor units to a display amount for spreadsheet cells.
func major(minor int64) float64 { return float64(minor) / 100 }

// CustomersWorkbook builds the overview workbook with one sheet listing all
// customers in the order given.
func CustomersWorkbook(curr string, customers []report.CustomerSummary) (*excelize.File, error) {
	f := excelize.NewFile()
	const sheet = "Customers"
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return nil, err
	}
	header := []any{
		"Customer", "Net Debt (" + curr + ")", "Open Balance (" + curr + ")",
		"At Date", "1-30", "31-60", "61-90", "91-120", "Older",
		"Score", "Rating",
	}
	if err := setRow(f, sheet, 1, header...); err != nil {
		return nil, err
	}
	for i, c := range customers {
		err := setRow(f, sheet, i+2,
			c.Name,
			major(c.NetDebtMinor),
			major(c.OpenBalanceMinor),
			major(c.Aging.AtDateMinor),
			major(c.Aging.OneToThirtyMinor),
			major(c.Aging.ThirtyOneToSixtyMinor),
			major(c.Aging.SixtyOneToNinetyMinor),
			major(c.Aging.NinetyOneToOneTwentyMinor),
			major(c.Aging.OlderMinor),
			c.Score,
			string(c.Rating),
		)
		if err != nil {
			return nil, err
		}
	}
	return f, nil
}

const (
	openItemsSheet = "Open Items"
	monthlySheet   = "Monthly"
)

// CustomerWorkbook builds the per-customer drill-down: a summary sheet named
// after the customer, an open-items sheet and a monthly-trend sheet.
func CustomerWorkbook(curr string, a report.CustomerAnalysis) (*excelize.File, error) {
	f := excelize.NewFile()
	summary := slug.SheetName(a.Name)
	// A customer named like one of the fixed sheets would collide and let
	// the later headers clobber the summary rows.
	if summary == openItemsSheet || summary == monthlySheet {
		summary = slug.SheetName(summary + " Summary")
	}
	if err := f.SetSheetName("Sheet1", summary); err != nil {
		return nil, err
	}

	rows := [][]any{
		{"Customer", a.Name},
		{"Net Debt (" + curr + ")", major(a.NetDebtMinor)},
		{"Open Balance (" + curr + ")", major(a.OpenBalanceMinor)},
		{"Score", a.Score},
		{"Rating", string(a.Rating)},
		{"At Date", major(a.Aging.AtDateMinor)},
		{"1-30", major(a.Aging.OneToThirtyMinor)},
		{"31-60", major(a.Aging.ThirtyOneToSixtyMinor)},
		{"61-90", major(a.Aging.SixtyOneToNinetyMinor)},
		{"91-120", major(a.Aging.NinetyOneToOneTwentyMinor)},
		{"Older", major(a.Aging.OlderMinor)},
	}
	if a.LastSale != nil {
		rows = append(rows, []any{"Last Sale", a.LastSale.Format("2006-01-02")})
	}
	if a.LastPayment != nil {
		rows = append(rows, []any{"Last Payment", a.LastPayment.Format("2006-01-02")})
	}
	for i, r := range rows {
		if err := setRow(f, summary, i+1, r...); err != nil {
			return nil, err
		}
	}

	if _, err := f.NewSheet(openItemsSheet); err != nil {
		return nil, err
	}
	if err := setRow(f, openItemsSheet, 1, "Number", "Date", "Due Date", "Debit", "Credit", "Amount", "Matching"); err != nil {
		return nil, err
	}
	for i, inv := range a.OpenInvoices {
		err := setRow(f, openItemsSheet, i+2,
			inv.Number,
			formatDate(inv.Date),
			formatDate(inv.DueDate),
			major(inv.DebitMinor),
			major(inv.CreditMinor),
			major(inv.AmountMinor),
			inv.Matching,
		)
		if err != nil {
			return nil, err
		}
	}

	if _, err := f.NewSheet(monthlySheet); err != nil {
		return nil, err
	}
	if err := setRow(f, monthlySheet, 1, "Month", "Sales", "Payments", "Net"); err != nil {
		return nil, err
	}
	for i, m := range a.Monthly {
		label := fmt.Sprintf("%04d-%02d", m.Year, int(m.Month))
		if err := setRow(f, monthlySheet, i+2, label, major(m.DebitMinor), major(m.CreditMinor), major(m.NetMinor())); err != nil {
			return nil, err
		}
	}
	return f, nil
}
