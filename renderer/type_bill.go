package renderer

import (
	"github.com/autoqs/boq"
)

// Bill is the render-ready view of a report. Every amount is already
// formatted in the report's currency so that templates only place strings.
type Bill struct {
	Title       string `json:"title"`
	GeneratedOn string `json:"generatedOn"`

	ProjectType string `json:"projectType"`
	Structure   string `json:"structure,omitempty"`
	Floors      string `json:"floors,omitempty"`
	Standard    string `json:"measurementStandard"`
	Currency    string `json:"currency"`
	Notes       string `json:"notes,omitempty"`

	Trades []BillTrade `json:"trades"`

	PrimeCost     string `json:"primeCost"`
	OverheadTotal string `json:"overheadTotal"`
	GrandTotal    string `json:"grandTotal"`

	Assumptions []BillAssumption `json:"assumptions"`
	Suppliers   []BillSupplier   `json:"suppliers,omitempty"`
	Sources     []boq.Source     `json:"sources,omitempty"`
}

// BillTrade is one trade section of the view.
type BillTrade struct {
	Name     string    `json:"name"`
	Rows     []BillRow `json:"rows"`
	Subtotal string    `json:"subtotal"`
}

// BillRow is one formatted item line.
type BillRow struct {
	ItemNo       string `json:"itemNo"`
	Description  string `json:"description"`
	Unit         string `json:"unit"`
	Quantity     string `json:"quantity"`
	Formula      string `json:"formula,omitempty"`
	RateMaterial string `json:"rateMaterial"`
	RateLabor    string `json:"rateLabor"`
	Overhead     string `json:"overhead"`
	FullRate     string `json:"fullRate"`
	Amount       string `json:"amount"`
	Remarks      string `json:"remarks,omitempty"`
}

// BillAssumption is one formatted assumption.
type BillAssumption struct {
	Category string `json:"category"`
	Text     string `json:"text"`
}

// BillSupplier is one formatted supplier recommendation.
type BillSupplier struct {
	Trade          string `json:"trade"`
	Name           string `json:"name"`
	Contact        string `json:"contact"`
	Location       string `json:"location,omitempty"`
	Specialization string `json:"specialization,omitempty"`
	Rating         string `json:"rating,omitempty"`
	EstimatedQuote string `json:"estimatedQuote,omitempty"`
}

// NewBill creates the render-ready view of a report.
func NewBill(r *boq.Report) *Bill {
	b := &Bill{
		Title:         r.Title,
		GeneratedOn:   r.GeneratedOn.Format("2006-01-02"),
		ProjectType:   r.ProjectSummary.ProjectType,
		Structure:     r.ProjectSummary.Structure,
		Floors:        r.ProjectSummary.Floors,
		Standard:      string(r.ProjectSummary.MeasurementStandard),
		Currency:      r.ProjectSummary.Currency,
		Notes:         r.ProjectSummary.Notes,
		Trades:        make([]BillTrade, 0, len(r.Trades)),
		PrimeCost:     r.Amount(r.PrimeCost).String(),
		OverheadTotal: r.Amount(r.OverheadTotal).String(),
		GrandTotal:    r.Amount(r.GrandTotal).String(),
		Assumptions:   make([]BillAssumption, 0, len(r.Assumptions)),
		Sources:       r.Sources,
	}

	for _, t := range r.Trades {
		bt := BillTrade{
			Name:     t.TradeName,
			Rows:     make([]BillRow, 0, len(t.Rows)),
			Subtotal: r.Amount(t.Subtotal).String(),
		}
		for _, row := range t.Rows {
			bt.Rows = append(bt.Rows, BillRow{
				ItemNo:       row.ItemNo,
				Description:  row.Description,
				Unit:         row.Unit,
				Quantity:     row.Quantity.String(),
				Formula:      row.QuantityFormula,
				RateMaterial: r.Amount(row.RateMaterial).String(),
				RateLabor:    r.Amount(row.RateLabor).String(),
				Overhead:     r.Amount(row.OverheadAndProfit).String(),
				FullRate:     r.Amount(row.FullRate).String(),
				Amount:       r.Amount(row.Amount).String(),
				Remarks:      row.Remarks,
			})
		}
		b.Trades = append(b.Trades, bt)
	}

	for _, a := range r.Assumptions {
		b.Assumptions = append(b.Assumptions, BillAssumption{
			Category: string(a.Category),
			Text:     a.Text,
		})
	}

	for _, s := range r.Suppliers {
		contact := s.PhoneNumber
		if s.Email != "" {
			if contact != "" {
				contact += " / "
			}
			contact += s.Email
		}
		b.Suppliers = append(b.Suppliers, BillSupplier{
			Trade:          s.Trade,
			Name:           s.Name,
			Contact:        contact,
			Location:       s.Location,
			Specialization: s.Specialization,
			Rating:         s.Rating,
			EstimatedQuote: s.EstimatedQuote,
		})
	}
	return b
}
