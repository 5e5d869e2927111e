package boq

import "testing"

func TestNextItemNo(t *testing.T) {
	tests := []struct {
		name     string
		lastNo   string
		tradeIdx int
		want     string
	}{
		{name: "increments last numeric segment", lastNo: "2.3.4", tradeIdx: 0, want: "2.3.5"},
		{name: "single segment", lastNo: "7", tradeIdx: 0, want: "8"},
		{name: "two segments", lastNo: "1.9", tradeIdx: 0, want: "1.10"},
		{name: "non numeric tail falls back to position", lastNo: "3.a", tradeIdx: 0, want: "1.2"},
		{name: "blank number falls back to position", lastNo: "", tradeIdx: 0, want: "1.2"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			e := &Estimate{Trades: []TradeGroup{{
				TradeName: "Substructure",
				Items:     []BOQItem{{ID: "item-0-0-aaaaaaa", ItemNo: tc.lastNo}},
			}}}
			if got := e.NextItemNo(tc.tradeIdx); got != tc.want {
				t.Errorf("NextItemNo(%d) after %q = %q, want %q", tc.tradeIdx, tc.lastNo, got, tc.want)
			}
		})
	}
}

func TestNextItemNoEmptyTrade(t *testing.T) {
	e := &Estimate{Trades: []TradeGroup{
		{TradeName: "Substructure"},
		{TradeName: "Finishes"},
	}}
	if got := e.NextItemNo(0); got != "1.1" {
		t.Errorf("NextItemNo(0) = %q, want 1.1", got)
	}
	if got := e.NextItemNo(1); got != "2.1" {
		t.Errorf("NextItemNo(1) = %q, want 2.1", got)
	}
}

func TestNextItemNoOnlyLastSegmentMatters(t *testing.T) {
	// leading segments may be anything, only the tail must be numeric
	e := &Estimate{Trades: []TradeGroup{{
		TradeName: "Openings",
		Items:     []BOQItem{{ID: "item-0-0-aaaaaaa", ItemNo: "D.2"}},
	}}}
	if got := e.NextItemNo(0); got != "D.3" {
		t.Errorf("NextItemNo(0) = %q, want D.3", got)
	}
}

func TestNextItemNoOutOfRange(t *testing.T) {
	e := NewEstimate()
	if got := e.NextItemNo(5); got != "6.1" {
		t.Errorf("NextItemNo(5) = %q, want 6.1", got)
	}
}
