package boq

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/shopspring/decimal"
)

func init() {
	// amounts are persisted as JSON numbers, not strings
	decimal.MarshalJSONWithoutQuotes = true
}

// MarshalJSON writes the item in canonical field order with its derived
// figures alongside. The totalRate and totalCost fields are recomputed here,
// never read back: the persisted form carries them for human inspection and
// downstream tools only.
func (it BOQItem) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("id", it.ID)
	w.Append("itemNo", it.ItemNo)
	w.Append("description", it.Description)
	w.Append("unit", it.Unit)
	w.Append("quantity", it.Quantity)
	w.Optional("quantityFormula", it.QuantityFormula)
	w.Append("rateMaterial", it.RateMaterial)
	w.Append("rateLabor", it.RateLabor)
	if it.RateAnalysis != nil {
		w.Append("rateAnalysis", it.RateAnalysis)
	}
	w.Append("totalRate", it.FullUnitRate())
	w.Append("totalCost", it.Total())
	w.Optional("remarks", it.Remarks)
	w.Optional("userNotes", it.UserNotes)
	return w.MarshalJSON()
}

// MarshalJSON writes the trade with its total recomputed from the items.
func (t TradeGroup) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("tradeName", t.TradeName)
	w.Append("tradeTotal", t.Total())
	w.Append("items", t.Items)
	return w.MarshalJSON()
}

// MarshalJSON writes the estimate with the summary's total overwritten by
// the recomputed grand total.
func (e *Estimate) MarshalJSON() ([]byte, error) {
	ps := e.ProjectSummary
	ps.TotalEstimatedCost = e.GrandTotal()

	var w jsonObjectWriter
	w.Append("projectSummary", ps)
	w.Append("boqItems", e.Trades)
	w.Append("assumptions", e.Assumptions)
	if len(e.RecommendedSuppliers) > 0 {
		w.Append("recommendedSuppliers", e.RecommendedSuppliers)
	}
	if len(e.Sources) > 0 {
		w.Append("sources", e.Sources)
	}
	if e.IsInsufficientInfo {
		w.Append("isInsufficientInfo", true)
		w.Optional("missingInfoReason", e.MissingInfoReason)
	}
	return w.MarshalJSON()
}

// EncodeEstimate writes the estimate to w as indented JSON.
func EncodeEstimate(w io.Writer, e *Estimate) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(e); err != nil {
		return fmt.Errorf("cannot encode estimate: %w", err)
	}
	return nil
}

// ParseError reports a payload that is not a conforming estimate: broken
// JSON, or a document missing one of the required collections. It is a
// distinct kind from the insufficient-information state, which is a valid
// estimate carrying a flag.
type ParseError struct {
	Reason string
	Err    error
}

func (e *ParseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("invalid estimate payload: %s: %v", e.Reason, e.Err)
	}
	return "invalid estimate payload: " + e.Reason
}

func (e *ParseError) Unwrap() error { return e.Err }

// DecodeEstimate reads an estimate from r, enforces the payload contract
// and normalizes the result: items and assumptions that arrived without an
// identifier get one, and the item identifiers are checked for integrity.
//
// The payload must be a JSON object carrying `projectSummary`, a `boqItems`
// array whose trades each have a non-null `items` array, and an
// `assumptions` array (possibly empty). Anything else returns a *ParseError.
// Derived fields present in the payload (trade totals, item totals, the
// summary total) are discarded and recomputed on demand.
func DecodeEstimate(r io.Reader) (*Estimate, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("cannot read estimate: %w", err)
	}

	// A missing key and an explicit null both leave the pointer nil.
	var shape struct {
		ProjectSummary *json.RawMessage `json:"projectSummary"`
		Trades         *json.RawMessage `json:"boqItems"`
		Assumptions    *json.RawMessage `json:"assumptions"`
	}
	if err := json.Unmarshal(data, &shape); err != nil {
		return nil, &ParseError{Reason: "not a JSON object", Err: err}
	}
	if shape.ProjectSummary == nil {
		return nil, &ParseError{Reason: "missing projectSummary"}
	}
	if shape.Trades == nil {
		return nil, &ParseError{Reason: "missing boqItems"}
	}
	if shape.Assumptions == nil {
		return nil, &ParseError{Reason: "missing assumptions"}
	}

	e := NewEstimate()
	if err := json.Unmarshal(data, e); err != nil {
		return nil, &ParseError{Reason: "malformed estimate fields", Err: err}
	}
	for i := range e.Trades {
		if e.Trades[i].Items == nil {
			return nil, &ParseError{Reason: fmt.Sprintf("trade %q has no items array", e.Trades[i].TradeName)}
		}
	}

	Normalize(e)
	if err := e.CheckIntegrity(); err != nil {
		return nil, err
	}
	return e, nil
}

// Normalize assigns identifiers to items and assumptions that have none.
// Existing identifiers are never changed.
func Normalize(e *Estimate) {
	taken := e.ItemIDs()
	delete(taken, "")
	for ti := range e.Trades {
		if e.Trades[ti].Items == nil {
			e.Trades[ti].Items = make([]BOQItem, 0)
		}
		for ii := range e.Trades[ti].Items {
			it := &e.Trades[ti].Items[ii]
			if it.ID == "" {
				it.ID = uniqueItemID(ti, ii, taken)
				taken[it.ID] = struct{}{}
			}
		}
	}
	for i := range e.Assumptions {
		if e.Assumptions[i].ID == "" {
			e.Assumptions[i].ID = newAssumptionID(i)
		}
	}
}
