package boq

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Report is the print-ready projection of an estimate: one flattened row
// per item, per-trade subtotals, and the summary figures. Every figure in a
// report comes from the computation methods on the estimate; renderers
// consume the rows as is and never price anything themselves.
type Report struct {
	Title       string
	GeneratedOn time.Time

	ProjectSummary ProjectSummary
	Trades         []ReportTrade

	PrimeCost     decimal.Decimal
	OverheadTotal decimal.Decimal
	GrandTotal    decimal.Decimal

	Assumptions []Assumption
	Suppliers   []Supplier
	Sources     []Source
}

// ReportTrade is one trade section of a report.
type ReportTrade struct {
	TradeName string
	Rows      []ReportRow
	Subtotal  decimal.Decimal
}

// ReportRow is one flattened item line.
type ReportRow struct {
	ItemNo            string
	Description       string
	Unit              string
	Quantity          decimal.Decimal
	QuantityFormula   string
	RateMaterial      decimal.Decimal
	RateLabor         decimal.Decimal
	OverheadAndProfit decimal.Decimal
	FullRate          decimal.Decimal
	Amount            decimal.Decimal
	Remarks           string
}

// BuildReport flattens the estimate into a report dated at now.
func (e *Estimate) BuildReport(now time.Time) *Report {
	r := &Report{
		Title:          "Bill of Quantities",
		GeneratedOn:    now,
		ProjectSummary: e.ProjectSummary,
		Trades:         make([]ReportTrade, 0, len(e.Trades)),
		PrimeCost:      e.PrimeCost(),
		OverheadTotal:  e.OverheadTotal(),
		GrandTotal:     e.GrandTotal(),
		Assumptions:    e.Assumptions,
		Suppliers:      e.RecommendedSuppliers,
		Sources:        e.Sources,
	}
	r.ProjectSummary.TotalEstimatedCost = r.GrandTotal
	for i := range e.Trades {
		t := &e.Trades[i]
		rt := ReportTrade{
			TradeName: t.TradeName,
			Rows:      make([]ReportRow, 0, len(t.Items)),
			Subtotal:  t.Total(),
		}
		for j := range t.Items {
			it := &t.Items[j]
			rt.Rows = append(rt.Rows, ReportRow{
				ItemNo:            it.ItemNo,
				Description:       it.Description,
				Unit:              it.Unit,
				Quantity:          it.Quantity,
				QuantityFormula:   it.QuantityFormula,
				RateMaterial:      it.RateMaterial,
				RateLabor:         it.RateLabor,
				OverheadAndProfit: it.UnitOverheadAndProfit(),
				FullRate:          it.FullUnitRate(),
				Amount:            it.Total(),
				Remarks:           it.Remarks,
			})
		}
		r.Trades = append(r.Trades, rt)
	}
	return r
}

// Currency returns the report's currency code.
func (r *Report) Currency() string { return r.ProjectSummary.Currency }

// Amount wraps a figure in the report's currency for display.
func (r *Report) Amount(d decimal.Decimal) Money {
	return M(d, r.ProjectSummary.Currency)
}

// Filename returns the base name (no extension) for files derived from the
// report: "BOQ_<project>_<date>", with the project type sanitized to
// letters, digits, dashes and underscores.
func (r *Report) Filename() string {
	project := r.ProjectSummary.ProjectType
	if project == "" {
		project = "Project"
	}
	var b strings.Builder
	for _, c := range project {
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9', c == '-', c == '_':
			b.WriteRune(c)
		default:
			b.WriteRune('_')
		}
	}
	return "BOQ_" + b.String() + "_" + r.GeneratedOn.Format("2006-01-02")
}
