// Package report exports a single simulation as an Excel workbook and delivers it
// by email.
package report

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"

	"github.com/syrilster/payroll-scenario-simulator/internal/format"
	"github.com/syrilster/payroll-scenario-simulator/internal/model"
)

const (
	SheetName   = "Simulation"
	ContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

	figuresHeaderRow = 10
)

// Workbook writes the employee, the figures of the result and any warnings to a
// one-sheet workbook.
func Workbook(e model.Employee, r model.Result, p format.Preview) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	f.SetSheetName("Sheet1", SheetName)
	w := &sheetWriter{f: f}

	w.setColWidth("A", "A", 28)
	w.setColWidth("B", "C", 22)

	boldStyle := w.newStyle(`{"font":{"bold":true}}`)
	negativeStyle := w.newStyle(`{"font":{"color":"#FF0000","bold":true}}`)
	positiveStyle := w.newStyle(`{"font":{"color":"#22C55E","bold":true}}`)

	employeeRows := []struct {
		label string
		value interface{}
	}{
		{"Collaborateur", e.Name},
		{"Service", e.Department},
		{"Contrat", string(e.Contract)},
		{"ETP Actuel", toFloat(e.Etp)},
		{"Salaire Brut", toFloat(e.Salary)},
		{"Coût Total", toFloat(e.TotalCost)},
	}
	for i, row := range employeeRows {
		n := strconv.Itoa(i + 1)
		w.set("A"+n, row.label)
		w.set("B"+n, row.value)
		w.style("A"+n, boldStyle)
	}

	w.set("A8", "Action")
	w.set("B8", p.Title)
	w.style("A8", boldStyle)

	header := strconv.Itoa(figuresHeaderRow)
	w.set("A"+header, "Indicateur")
	w.set("B"+header, "Montant")
	w.set("C"+header, "Affichage")
	w.styleRange("A"+header, "C"+header, boldStyle)

	amounts := figureAmounts(r)
	row := figuresHeaderRow + 1
	for _, fig := range p.Figures {
		n := strconv.Itoa(row)
		w.set("A"+n, fig.Label)
		if amount, ok := amounts[fig.Key]; ok {
			w.set("B"+n, toFloat(amount))
		}
		w.set("C"+n, fig.Value)
		switch fig.Tone {
		case format.ToneNegative:
			w.style("C"+n, negativeStyle)
		case format.TonePositive:
			w.style("C"+n, positiveStyle)
		}
		row++
	}

	if len(r.Warnings) > 0 {
		row++
		n := strconv.Itoa(row)
		w.set("A"+n, "Avertissements")
		w.style("A"+n, boldStyle)
		for _, warn := range r.Warnings {
			row++
			n = strconv.Itoa(row)
			w.set("A"+n, warn.Code)
			w.set("B"+n, warn.Message)
		}
	}

	if w.err != nil {
		return nil, fmt.Errorf("write simulation workbook: %w", w.err)
	}
	f.SetActiveSheet(f.GetSheetIndex(SheetName))

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("encode simulation workbook: %w", err)
	}
	return buf, nil
}

// figureAmounts maps preview figure keys to the raw amount behind them.
func figureAmounts(r model.Result) map[string]decimal.Decimal {
	switch {
	case r.Salary != nil:
		return map[string]decimal.Decimal{
			"current_salary": r.Salary.CurrentSalary,
			"adjustment":     r.Salary.Adjustment,
			"new_salary":     r.Salary.NewSalary,
		}
	case r.Exit != nil:
		return map[string]decimal.Decimal{
			"notice_cost":    r.Exit.NoticeCost,
			"severance_pay":  r.Exit.SeverancePay,
			"annual_savings": r.Exit.AnnualSavings,
		}
	case r.Replacement != nil:
		return map[string]decimal.Decimal{
			"current_annual_cost": r.Replacement.CurrentAnnualCost,
			"new_annual_cost":     r.Replacement.NewAnnualCost,
			"variance":            r.Replacement.Variance,
		}
	case r.Etp != nil:
		return map[string]decimal.Decimal{
			"current_monthly_cost": r.Etp.CurrentMonthlyCost,
			"new_monthly_cost":     r.Etp.NewMonthlyCost,
			"annual_savings":       r.Etp.AnnualSavings,
		}
	}
	return nil
}

func toFloat(d decimal.Decimal) float64 {
	f, _ := d.Float64()
	return f
}

// sheetWriter keeps the first error raised while filling the sheet.
type sheetWriter struct {
	f   *excelize.File
	err error
}

func (w *sheetWriter) set(axis string, value interface{}) {
	if w.err != nil {
		return
	}
	w.err = w.f.SetCellValue(SheetName, axis, value)
}

func (w *sheetWriter) style(axis string, styleID int) {
	w.styleRange(axis, axis, styleID)
}

func (w *sheetWriter) styleRange(from, to string, styleID int) {
	if w.err != nil {
		return
	}
	w.err = w.f.SetCellStyle(SheetName, from, to, styleID)
}

func (w *sheetWriter) setColWidth(from, to string, width float64) {
	if w.err != nil {
		return
	}
	w.err = w.f.SetColWidth(SheetName, from, to, width)
}

func (w *sheetWriter) newStyle(style string) int {
	if w.err != nil {
		return 0
	}
	id, err := w.f.NewStyle(style)
	w.err = err
	return id
}
