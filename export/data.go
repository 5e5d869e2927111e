// Package export writes a bill-of-quantities report to interchange
// formats: CSV, XLSX and PDF. All exporters consume the same flattened Data
// built from a boq.Report; none of them computes a figure on its own.
package export

import (
	"encoding/csv"
	"io"

	"github.com/shopspring/decimal"

	"github.com/autoqs/boq"
)

// Row levels in Data.Rows.
const (
	LevelTradeHeader = iota // a trade section header, name only
	LevelItem               // a priced item line
	LevelSubtotal           // a trade subtotal line
)

// Row is one flattened line of the exported table.
type Row struct {
	Level       int
	ItemNo      string
	Description string
	Unit        string
	Quantity    decimal.Decimal
	Formula     string

	RateMaterial decimal.Decimal
	RateLabor    decimal.Decimal
	Overhead     decimal.Decimal
	FullRate     decimal.Decimal
	Amount       decimal.Decimal
}

// Data is everything an exporter needs, ready flattened.
type Data struct {
	Title       string
	ProjectType string
	Standard    string
	Currency    string
	CreatedDate string

	Rows []Row

	PrimeCost     decimal.Decimal
	OverheadTotal decimal.Decimal
	GrandTotal    decimal.Decimal

	Assumptions []boq.Assumption
	Suppliers   []boq.Supplier
}

// Flatten projects a report into export rows: a header line per trade, an
// item line per row, a subtotal line per trade.
func Flatten(r *boq.Report) Data {
	d := Data{
		Title:         r.Title,
		ProjectType:   r.ProjectSummary.ProjectType,
		Standard:      string(r.ProjectSummary.MeasurementStandard),
		Currency:      r.ProjectSummary.Currency,
		CreatedDate:   r.GeneratedOn.Format("2006-01-02"),
		PrimeCost:     r.PrimeCost,
		OverheadTotal: r.OverheadTotal,
		GrandTotal:    r.GrandTotal,
		Assumptions:   r.Assumptions,
		Suppliers:     r.Suppliers,
	}
	for _, t := range r.Trades {
		d.Rows = append(d.Rows, Row{Level: LevelTradeHeader, Description: t.TradeName})
		for _, it := range t.Rows {
			d.Rows = append(d.Rows, Row{
				Level:        LevelItem,
				ItemNo:       it.ItemNo,
				Description:  it.Description,
				Unit:         it.Unit,
				Quantity:     it.Quantity,
				Formula:      it.QuantityFormula,
				RateMaterial: it.RateMaterial,
				RateLabor:    it.RateLabor,
				Overhead:     it.OverheadAndProfit,
				FullRate:     it.FullRate,
				Amount:       it.Amount,
			})
		}
		d.Rows = append(d.Rows, Row{
			Level:       LevelSubtotal,
			Description: "Subtotal " + t.TradeName,
			Amount:      t.Subtotal,
		})
	}
	return d
}

// money formats an amount in the data's currency.
func (d *Data) money(v decimal.Decimal) string {
	return boq.M(v, d.Currency).String()
}

// csvHeader is the column layout shared by the tabular exporters.
var csvHeader = []string{"Item No", "Description", "Unit", "Qty", "Rate (Material)", "Rate (Labor)", "O&P", "Full Rate", "Amount"}

// WriteCSV writes the flattened table to w as CSV. Amounts are written as
// plain decimals so spreadsheets can aggregate them.
func WriteCSV(w io.Writer, d Data) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{d.Title + " - " + d.ProjectType + " (" + d.Currency + ")"}); err != nil {
		return err
	}
	if err := cw.Write(csvHeader); err != nil {
		return err
	}
	for _, r := range d.Rows {
		switch r.Level {
		case LevelTradeHeader:
			cw.Write([]string{"", r.Description})
		case LevelItem:
			cw.Write([]string{
				r.ItemNo, r.Description, r.Unit, r.Quantity.String(),
				r.RateMaterial.String(), r.RateLabor.String(), r.Overhead.String(),
				r.FullRate.String(), r.Amount.String(),
			})
		case LevelSubtotal:
			cw.Write([]string{"", r.Description, "", "", "", "", "", "", r.Amount.String()})
		}
	}
	cw.Write([]string{""})
	cw.Write([]string{"", "Prime Cost", "", "", "", "", "", "", d.PrimeCost.String()})
	cw.Write([]string{"", "Overhead & Profit", "", "", "", "", "", "", d.OverheadTotal.String()})
	cw.Write([]string{"", "Grand Total", "", "", "", "", "", "", d.GrandTotal.String()})
	for _, a := range d.Assumptions {
		cw.Write([]string{"", "Assumption (" + string(a.Category) + ")", a.Text})
	}
	cw.Flush()
	return cw.Error()
}
