package boq

import "github.com/shopspring/decimal"

// defaultOverheadRate is the fallback overhead and profit markup applied
// when an item carries no explicit figure.
var defaultOverheadRate = decimal.NewFromFloat(0.15)

// UnitOverheadAndProfit returns the per-unit overhead and profit for the
// item. An explicit figure on the rate analysis is authoritative verbatim,
// zero and negative included; without one the overhead is derived as the
// default markup on material plus labor.
func (it *BOQItem) UnitOverheadAndProfit() decimal.Decimal {
	if it.RateAnalysis != nil && it.RateAnalysis.OverheadAndProfit != nil {
		return *it.RateAnalysis.OverheadAndProfit
	}
	return it.RateMaterial.Add(it.RateLabor).Mul(defaultOverheadRate)
}

// FullUnitRate returns the complete unit rate: material, labor and overhead
// combined.
func (it *BOQItem) FullUnitRate() decimal.Decimal {
	return it.RateMaterial.Add(it.RateLabor).Add(it.UnitOverheadAndProfit())
}

// Total returns the item's extended amount, quantity times full unit rate.
func (it *BOQItem) Total() decimal.Decimal {
	return it.Quantity.Mul(it.FullUnitRate())
}

// Total returns the sum of the trade's item totals. The cached TradeTotal
// field is ignored.
func (t *TradeGroup) Total() decimal.Decimal {
	var sum decimal.Decimal
	for i := range t.Items {
		sum = sum.Add(t.Items[i].Total())
	}
	return sum
}

// GrandTotal returns the sum of all item totals across the estimate.
func (e *Estimate) GrandTotal() decimal.Decimal {
	var sum decimal.Decimal
	for i := range e.Trades {
		sum = sum.Add(e.Trades[i].Total())
	}
	return sum
}

// PrimeCost returns the overhead-free cost of the works: for each item,
// quantity times material plus labor.
func (e *Estimate) PrimeCost() decimal.Decimal {
	var sum decimal.Decimal
	for i := range e.Trades {
		for j := range e.Trades[i].Items {
			it := &e.Trades[i].Items[j]
			base := it.RateMaterial.Add(it.RateLabor)
			sum = sum.Add(it.Quantity.Mul(base))
		}
	}
	return sum
}

// OverheadTotal returns the overhead and profit carried by the whole
// estimate: for each item, quantity times its unit overhead. It holds that
// PrimeCost plus OverheadTotal equals GrandTotal exactly.
func (e *Estimate) OverheadTotal() decimal.Decimal {
	var sum decimal.Decimal
	for i := range e.Trades {
		for j := range e.Trades[i].Items {
			it := &e.Trades[i].Items[j]
			sum = sum.Add(it.Quantity.Mul(it.UnitOverheadAndProfit()))
		}
	}
	return sum
}
