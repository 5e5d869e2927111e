package boq

import (
	"github.com/shopspring/decimal"
)

// d parses a decimal literal for test fixtures.
func d(s string) decimal.Decimal {
	v, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return v
}

// dp returns a pointer to a decimal literal, for explicit overhead figures.
func dp(s string) *decimal.Decimal {
	v := d(s)
	return &v
}

// newTestEstimate builds a small two-trade estimate exercising the three
// overhead cases: derived, explicit nonzero and explicit zero.
func newTestEstimate() *Estimate {
	return &Estimate{
		ProjectSummary: ProjectSummary{
			ProjectType:         "Residential Villa",
			Structure:           "Concrete Frame",
			Floors:              "G+1",
			MeasurementStandard: NRM2,
			Currency:            "LKR",
			CurrencySymbol:      "LKR",
		},
		Trades: []TradeGroup{
			{
				TradeName: "Substructure",
				Items: []BOQItem{
					{
						ID:              "item-0-0-aaaaaaa",
						ItemNo:          "1.1",
						Description:     "Excavation for strip foundations",
						Unit:            "m3",
						Quantity:        d("10"),
						QuantityFormula: "L: 10m x W: 1m x D: 1m = 10m3",
						RateMaterial:    d("10"),
						RateLabor:       d("5"),
					},
					{
						ID:           "item-0-1-bbbbbbb",
						ItemNo:       "1.2",
						Description:  "Concrete for footings",
						Unit:         "m3",
						Quantity:     d("4"),
						RateMaterial: d("100"),
						RateLabor:    d("20"),
						RateAnalysis: &RateAnalysis{
							BaseMaterial:      d("100"),
							BaseLabor:         d("20"),
							PlantAndEquipment: d("10"),
							OverheadAndProfit: dp("25"),
							Narrative:         "Pumped C25 concrete",
						},
					},
				},
			},
			{
				TradeName: "Finishes",
				Items: []BOQItem{
					{
						ID:           "item-1-0-ccccccc",
						ItemNo:       "2.1",
						Description:  "Emulsion paint to walls",
						Unit:         "m2",
						Quantity:     d("50"),
						RateMaterial: d("2"),
						RateLabor:    d("1"),
						RateAnalysis: &RateAnalysis{
							BaseMaterial:      d("2"),
							BaseLabor:         d("1"),
							OverheadAndProfit: dp("0"),
							Narrative:         "Manual Entry",
						},
					},
				},
			},
		},
		Assumptions: []Assumption{
			{ID: "note-0-aaaaaaa", Category: AssumptionQuantity, Text: "Normal soil assumed"},
		},
	}
}
