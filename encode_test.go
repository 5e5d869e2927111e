package boq

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"
)

func TestEncodeDecodeRoundTrip(t *testing.T) {
	e := newTestEstimate()

	var buf bytes.Buffer
	if err := EncodeEstimate(&buf, e); err != nil {
		t.Fatalf("encode: %v", err)
	}
	decoded, err := DecodeEstimate(&buf)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}

	if len(decoded.Trades) != len(e.Trades) {
		t.Fatalf("trades = %d, want %d", len(decoded.Trades), len(e.Trades))
	}
	for ti := range e.Trades {
		if decoded.Trades[ti].TradeName != e.Trades[ti].TradeName {
			t.Errorf("trade %d name = %q, want %q", ti, decoded.Trades[ti].TradeName, e.Trades[ti].TradeName)
		}
		for ii := range e.Trades[ti].Items {
			got, want := decoded.Trades[ti].Items[ii], e.Trades[ti].Items[ii]
			if got.ID != want.ID {
				t.Errorf("item %d.%d id = %q, want %q", ti, ii, got.ID, want.ID)
			}
			if !got.Total().Equal(want.Total()) {
				t.Errorf("item %d.%d total = %s, want %s", ti, ii, got.Total(), want.Total())
			}
		}
	}
	if !decoded.GrandTotal().Equal(e.GrandTotal()) {
		t.Errorf("GrandTotal = %s, want %s", decoded.GrandTotal(), e.GrandTotal())
	}
	// explicit zero overhead must survive the round trip as explicit
	ra := decoded.Trades[1].Items[0].RateAnalysis
	if ra == nil || ra.OverheadAndProfit == nil || !ra.OverheadAndProfit.IsZero() {
		t.Error("explicit zero overhead lost in round trip")
	}
}

func TestEncodeWritesDerivedFigures(t *testing.T) {
	e := newTestEstimate()
	// poison the cached values, the encoder must ignore them
	e.Trades[0].TradeTotal = d("1")
	e.ProjectSummary.TotalEstimatedCost = d("2")

	var buf bytes.Buffer
	if err := EncodeEstimate(&buf, e); err != nil {
		t.Fatal(err)
	}

	var raw struct {
		ProjectSummary struct {
			TotalEstimatedCost json.Number `json:"totalEstimatedCost"`
		} `json:"projectSummary"`
		Trades []struct {
			TradeTotal json.Number `json:"tradeTotal"`
			Items      []map[string]json.RawMessage
		} `json:"boqItems"`
	}
	if err := json.Unmarshal(buf.Bytes(), &raw); err != nil {
		t.Fatal(err)
	}

	if raw.ProjectSummary.TotalEstimatedCost.String() != "902.5" {
		t.Errorf("totalEstimatedCost = %s, want 902.5", raw.ProjectSummary.TotalEstimatedCost)
	}
	if raw.Trades[0].TradeTotal.String() != "752.5" {
		t.Errorf("tradeTotal = %s, want 752.5", raw.Trades[0].TradeTotal)
	}
	item := raw.Trades[0].Items[0]
	if string(item["totalRate"]) != "17.25" {
		t.Errorf("totalRate = %s, want 17.25", item["totalRate"])
	}
	if string(item["totalCost"]) != "172.5" {
		t.Errorf("totalCost = %s, want 172.5", item["totalCost"])
	}
	// amounts are numbers, not strings
	if bytes.HasPrefix(item["quantity"], []byte(`"`)) {
		t.Error("quantity serialized as a string")
	}
}

func TestDecodeAssignsMissingIdentifiers(t *testing.T) {
	payload := `{
		"projectSummary": {"projectType": "Warehouse", "currency": "USD", "currencySymbol": "$"},
		"boqItems": [
			{"tradeName": "Substructure", "items": [
				{"itemNo": "1.1", "description": "Excavation", "unit": "m3", "quantity": 5, "rateMaterial": 2, "rateLabor": 1},
				{"id": "item-0-1-fixed", "itemNo": "1.2", "description": "Backfill", "unit": "m3", "quantity": 3, "rateMaterial": 1, "rateLabor": 1}
			]}
		],
		"assumptions": [{"category": "General", "text": "Flat site"}]
	}`

	e, err := DecodeEstimate(strings.NewReader(payload))
	if err != nil {
		t.Fatal(err)
	}

	first := e.Trades[0].Items[0]
	if first.ID == "" {
		t.Error("missing item identifier not assigned")
	}
	if !strings.HasPrefix(first.ID, "item-0-0-") {
		t.Errorf("assigned id = %q, want item-0-0- prefix", first.ID)
	}
	if e.Trades[0].Items[1].ID != "item-0-1-fixed" {
		t.Error("existing identifier was rewritten")
	}
	if e.Assumptions[0].ID == "" {
		t.Error("missing assumption identifier not assigned")
	}
}

func TestDecodeRejectsDuplicateItemIDs(t *testing.T) {
	payload := `{
		"projectSummary": {"projectType": "Shed"},
		"boqItems": [
			{"tradeName": "A", "items": [{"id": "item-x", "itemNo": "1.1"}]},
			{"tradeName": "B", "items": [{"id": "item-x", "itemNo": "2.1"}]}
		],
		"assumptions": []
	}`
	if _, err := DecodeEstimate(strings.NewReader(payload)); err == nil {
		t.Error("expected an error for duplicate item identifiers")
	}
}

func TestDecodeIgnoresStaleDerivedFields(t *testing.T) {
	// totals in the payload are advisory, never read back
	payload := `{
		"projectSummary": {"projectType": "Shed", "currency": "USD", "currencySymbol": "$", "totalEstimatedCost": 999999},
		"boqItems": [
			{"tradeName": "Works", "tradeTotal": 888888, "items": [
				{"id": "item-0-0-a", "itemNo": "1.1", "unit": "m2", "quantity": 2, "rateMaterial": 10, "rateLabor": 0,
				 "totalRate": 777, "totalCost": 666}
			]}
		],
		"assumptions": []
	}`
	e, err := DecodeEstimate(strings.NewReader(payload))
	if err != nil {
		t.Fatal(err)
	}
	// 2 x (10 x 1.15) = 23
	if got := e.GrandTotal(); !got.Equal(d("23")) {
		t.Errorf("GrandTotal = %s, want 23", got)
	}
}

func TestDecodeMinimalConformingObject(t *testing.T) {
	payload := `{"projectSummary": {}, "boqItems": [], "assumptions": []}`
	e, err := DecodeEstimate(strings.NewReader(payload))
	if err != nil {
		t.Fatal(err)
	}
	if e.Trades == nil || e.Assumptions == nil {
		t.Error("collections should be empty, not nil")
	}
}

func TestDecodeRejectsNonConformingPayload(t *testing.T) {
	tests := []struct {
		name    string
		payload string
	}{
		{"broken JSON", `{"projectSummary":`},
		{"unrelated object", `{"foo": 1}`},
		{"empty object", `{}`},
		{"assumptions only", `{"assumptions": []}`},
		{"missing assumptions", `{"projectSummary": {}, "boqItems": []}`},
		{"null trades", `{"projectSummary": {}, "boqItems": null, "assumptions": []}`},
		{"trade without items", `{"projectSummary": {}, "boqItems": [{"tradeName": "A"}], "assumptions": []}`},
		{"trade with null items", `{"projectSummary": {}, "boqItems": [{"tradeName": "A", "items": null}], "assumptions": []}`},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := DecodeEstimate(strings.NewReader(tc.payload))
			if err == nil {
				t.Fatal("accepted a non-conforming payload")
			}
			var pe *ParseError
			if !errors.As(err, &pe) {
				t.Errorf("error = %v, want a *ParseError", err)
			}
		})
	}
}

func TestSyncCurrency(t *testing.T) {
	e := newTestEstimate()
	uk, err := CountryByCode("UK")
	if err != nil {
		t.Fatal(err)
	}
	e.SyncCurrency(uk)
	if e.ProjectSummary.Currency != "GBP" || e.ProjectSummary.CurrencySymbol != "£" {
		t.Errorf("currency = %s %s, want GBP £", e.ProjectSummary.Currency, e.ProjectSummary.CurrencySymbol)
	}
}
