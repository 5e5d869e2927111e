package boq

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Every mutation below takes the current estimate as an immutable snapshot
// and returns a new one; the input is never modified. Shared structure is
// reused where possible, only the touched trade and item are deep-copied.
// Operations with out-of-range positions return the input snapshot as is.

// ItemField names a directly editable field of a BOQItem. The set is
// closed: overhead and profit has its own operation because it rewrites the
// rate analysis as a whole.
type ItemField string

const (
	FieldItemNo          ItemField = "itemNo"
	FieldDescription     ItemField = "description"
	FieldUnit            ItemField = "unit"
	FieldQuantity        ItemField = "quantity"
	FieldQuantityFormula ItemField = "quantityFormula"
	FieldRateMaterial    ItemField = "rateMaterial"
	FieldRateLabor       ItemField = "rateLabor"
	FieldRemarks         ItemField = "remarks"
	FieldUserNotes       ItemField = "userNotes"
)

// ItemFields lists the editable fields.
var ItemFields = []ItemField{
	FieldItemNo, FieldDescription, FieldUnit,
	FieldQuantity, FieldQuantityFormula,
	FieldRateMaterial, FieldRateLabor,
	FieldRemarks, FieldUserNotes,
}

// IsNumeric reports whether the field holds an amount rather than text.
func (f ItemField) IsNumeric() bool {
	switch f {
	case FieldQuantity, FieldRateMaterial, FieldRateLabor:
		return true
	}
	return false
}

// parseAmount coerces free text to a decimal amount. Anything that does not
// parse, blanks included, becomes zero so that a half-typed cell never
// poisons the totals.
func parseAmount(s string) decimal.Decimal {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return decimal.Decimal{}
	}
	return d
}

// clone returns a shallow copy of the estimate with fresh slice headers for
// trades and assumptions. Trade items still alias the input until a trade is
// individually cloned.
func (e *Estimate) clone() *Estimate {
	out := *e
	out.Trades = make([]TradeGroup, len(e.Trades))
	copy(out.Trades, e.Trades)
	out.Assumptions = make([]Assumption, len(e.Assumptions))
	copy(out.Assumptions, e.Assumptions)
	return &out
}

// cloneTrade unaliases the trade at idx in an already cloned estimate.
func (e *Estimate) cloneTrade(idx int) {
	items := make([]BOQItem, len(e.Trades[idx].Items))
	copy(items, e.Trades[idx].Items)
	e.Trades[idx].Items = items
}

// UpdateItemField returns a snapshot with one field of one item replaced.
// Numeric fields coerce their value through parseAmount.
func (e *Estimate) UpdateItemField(tradeIdx, itemIdx int, field ItemField, value string) *Estimate {
	if tradeIdx < 0 || tradeIdx >= len(e.Trades) {
		return e
	}
	if itemIdx < 0 || itemIdx >= len(e.Trades[tradeIdx].Items) {
		return e
	}
	out := e.clone()
	out.cloneTrade(tradeIdx)
	it := &out.Trades[tradeIdx].Items[itemIdx]
	switch field {
	case FieldItemNo:
		it.ItemNo = value
	case FieldDescription:
		it.Description = value
	case FieldUnit:
		it.Unit = value
	case FieldQuantity:
		it.Quantity = parseAmount(value)
	case FieldQuantityFormula:
		it.QuantityFormula = value
	case FieldRateMaterial:
		it.RateMaterial = parseAmount(value)
	case FieldRateLabor:
		it.RateLabor = parseAmount(value)
	case FieldRemarks:
		it.Remarks = value
	case FieldUserNotes:
		it.UserNotes = value
	default:
		return e
	}
	return out
}

// UpdateItemOverhead returns a snapshot with the item's overhead and profit
// set to an explicit per-unit figure. The rate analysis is rebuilt around
// the item's current rates so its base mirror stays in step; an existing
// narrative and plant figure survive the rewrite.
func (e *Estimate) UpdateItemOverhead(tradeIdx, itemIdx int, value string) *Estimate {
	if tradeIdx < 0 || tradeIdx >= len(e.Trades) {
		return e
	}
	if itemIdx < 0 || itemIdx >= len(e.Trades[tradeIdx].Items) {
		return e
	}
	out := e.clone()
	out.cloneTrade(tradeIdx)
	it := &out.Trades[tradeIdx].Items[itemIdx]
	op := parseAmount(value)
	ra := RateAnalysis{
		BaseMaterial:      it.RateMaterial,
		BaseLabor:         it.RateLabor,
		OverheadAndProfit: &op,
	}
	if it.RateAnalysis != nil {
		ra.PlantAndEquipment = it.RateAnalysis.PlantAndEquipment
		ra.Narrative = it.RateAnalysis.Narrative
	}
	it.RateAnalysis = &ra
	return out
}

// AddItem returns a snapshot with a blank item appended to the trade at
// tradeIdx. The item gets a fresh identifier, the next display number for
// the trade, a quantity of one, and an explicit zero overhead so the default
// markup never applies to hand-entered lines.
func (e *Estimate) AddItem(tradeIdx int) *Estimate {
	if tradeIdx < 0 || tradeIdx >= len(e.Trades) {
		return e
	}
	out := e.clone()
	out.cloneTrade(tradeIdx)
	zero := decimal.Decimal{}
	it := BOQItem{
		ID:       uniqueItemID(tradeIdx, len(out.Trades[tradeIdx].Items), e.ItemIDs()),
		ItemNo:   e.NextItemNo(tradeIdx),
		Unit:     "ea",
		Quantity: decimal.NewFromInt(1),
		RateAnalysis: &RateAnalysis{
			OverheadAndProfit: &zero,
			Narrative:         "Manual Entry",
		},
	}
	out.Trades[tradeIdx].Items = append(out.Trades[tradeIdx].Items, it)
	return out
}

// DeleteItem returns a snapshot with the item removed from its trade. The
// remaining items keep their display numbers.
func (e *Estimate) DeleteItem(tradeIdx, itemIdx int) *Estimate {
	if tradeIdx < 0 || tradeIdx >= len(e.Trades) {
		return e
	}
	if itemIdx < 0 || itemIdx >= len(e.Trades[tradeIdx].Items) {
		return e
	}
	out := e.clone()
	old := e.Trades[tradeIdx].Items
	items := make([]BOQItem, 0, len(old)-1)
	items = append(items, old[:itemIdx]...)
	items = append(items, old[itemIdx+1:]...)
	out.Trades[tradeIdx].Items = items
	return out
}

// AddTrade returns a snapshot with an empty trade section appended.
func (e *Estimate) AddTrade() *Estimate {
	out := e.clone()
	out.Trades = append(out.Trades, TradeGroup{
		TradeName: "New Trade Section",
		Items:     make([]BOQItem, 0),
	})
	return out
}

// RenameTrade returns a snapshot with the trade's name replaced.
func (e *Estimate) RenameTrade(tradeIdx int, name string) *Estimate {
	if tradeIdx < 0 || tradeIdx >= len(e.Trades) {
		return e
	}
	out := e.clone()
	out.Trades[tradeIdx].TradeName = name
	return out
}

// DeleteTrade returns a snapshot with the trade and all its items removed.
func (e *Estimate) DeleteTrade(tradeIdx int) *Estimate {
	if tradeIdx < 0 || tradeIdx >= len(e.Trades) {
		return e
	}
	out := e.clone()
	trades := make([]TradeGroup, 0, len(e.Trades)-1)
	trades = append(trades, e.Trades[:tradeIdx]...)
	trades = append(trades, e.Trades[tradeIdx+1:]...)
	out.Trades = trades
	return out
}

// AddAssumption returns a snapshot with a new assumption appended.
// Whitespace-only text is rejected and leaves the snapshot unchanged.
func (e *Estimate) AddAssumption(category AssumptionCategory, text string) *Estimate {
	if isBlank(text) {
		return e
	}
	out := e.clone()
	out.Assumptions = append(out.Assumptions, Assumption{
		ID:       newAssumptionID(len(out.Assumptions)),
		Category: category,
		Text:     strings.TrimSpace(text),
	})
	return out
}

// UpdateAssumption returns a snapshot with the assumption at idx rewritten.
// The assumption keeps its identifier. Whitespace-only text is rejected the
// same way AddAssumption rejects it, so an edit can never blank out a note
// that was non-blank on creation.
func (e *Estimate) UpdateAssumption(idx int, category AssumptionCategory, text string) *Estimate {
	if idx < 0 || idx >= len(e.Assumptions) {
		return e
	}
	if isBlank(text) {
		return e
	}
	out := e.clone()
	out.Assumptions[idx].Category = category
	out.Assumptions[idx].Text = strings.TrimSpace(text)
	return out
}

// DeleteAssumption returns a snapshot with the assumption at idx removed.
func (e *Estimate) DeleteAssumption(idx int) *Estimate {
	if idx < 0 || idx >= len(e.Assumptions) {
		return e
	}
	out := e.clone()
	notes := make([]Assumption, 0, len(e.Assumptions)-1)
	notes = append(notes, e.Assumptions[:idx]...)
	notes = append(notes, e.Assumptions[idx+1:]...)
	out.Assumptions = notes
	return out
}
