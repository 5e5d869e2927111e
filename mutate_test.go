package boq

import (
	"reflect"
	"testing"
)

func TestUpdateItemFieldLeavesInputUntouched(t *testing.T) {
	e := newTestEstimate()
	before := e.GrandTotal()

	updated := e.UpdateItemField(0, 0, FieldQuantity, "20")

	if !e.GrandTotal().Equal(before) {
		t.Errorf("input snapshot changed: GrandTotal = %s, want %s", e.GrandTotal(), before)
	}
	if !updated.Trades[0].Items[0].Quantity.Equal(d("20")) {
		t.Errorf("quantity = %s, want 20", updated.Trades[0].Items[0].Quantity)
	}
	if updated.Trades[0].Items[0].ID != e.Trades[0].Items[0].ID {
		t.Error("item identifier changed across the update")
	}
}

func TestUpdateItemFieldText(t *testing.T) {
	e := newTestEstimate()
	updated := e.UpdateItemField(0, 0, FieldDescription, "Bulk excavation")
	if got := updated.Trades[0].Items[0].Description; got != "Bulk excavation" {
		t.Errorf("description = %q", got)
	}
	// sibling item in the same trade is untouched
	if !reflect.DeepEqual(updated.Trades[0].Items[1], e.Trades[0].Items[1]) {
		t.Error("sibling item changed")
	}
}

func TestUpdateItemFieldCoercesBadNumbersToZero(t *testing.T) {
	e := newTestEstimate()
	for _, input := range []string{"abc", "", "  ", "12x"} {
		updated := e.UpdateItemField(0, 0, FieldRateMaterial, input)
		if got := updated.Trades[0].Items[0].RateMaterial; !got.IsZero() {
			t.Errorf("rateMaterial after %q = %s, want 0", input, got)
		}
	}
}

func TestUpdateItemFieldOutOfRange(t *testing.T) {
	e := newTestEstimate()
	if got := e.UpdateItemField(9, 0, FieldUnit, "m"); got != e {
		t.Error("out-of-range trade should return the input snapshot")
	}
	if got := e.UpdateItemField(0, 9, FieldUnit, "m"); got != e {
		t.Error("out-of-range item should return the input snapshot")
	}
}

func TestUpdateItemOverhead(t *testing.T) {
	e := newTestEstimate()
	updated := e.UpdateItemOverhead(0, 0, "3.50")

	it := updated.Trades[0].Items[0]
	if it.RateAnalysis == nil || it.RateAnalysis.OverheadAndProfit == nil {
		t.Fatal("rate analysis not set")
	}
	if !it.RateAnalysis.OverheadAndProfit.Equal(d("3.50")) {
		t.Errorf("overhead = %s, want 3.50", it.RateAnalysis.OverheadAndProfit)
	}
	// base mirror resynchronized from the item's rates
	if !it.RateAnalysis.BaseMaterial.Equal(it.RateMaterial) {
		t.Errorf("baseMaterial = %s, want %s", it.RateAnalysis.BaseMaterial, it.RateMaterial)
	}
	if !it.RateAnalysis.BaseLabor.Equal(it.RateLabor) {
		t.Errorf("baseLabor = %s, want %s", it.RateAnalysis.BaseLabor, it.RateLabor)
	}
	if !it.FullUnitRate().Equal(d("18.50")) {
		t.Errorf("FullUnitRate() = %s, want 18.50", it.FullUnitRate())
	}
	// input untouched: still deriving 15%
	if !e.Trades[0].Items[0].UnitOverheadAndProfit().Equal(d("2.25")) {
		t.Error("input snapshot changed")
	}
}

func TestUpdateItemOverheadKeepsPlantAndNarrative(t *testing.T) {
	e := newTestEstimate()
	updated := e.UpdateItemOverhead(0, 1, "30")
	ra := updated.Trades[0].Items[1].RateAnalysis
	if !ra.PlantAndEquipment.Equal(d("10")) {
		t.Errorf("plant = %s, want 10", ra.PlantAndEquipment)
	}
	if ra.Narrative != "Pumped C25 concrete" {
		t.Errorf("narrative = %q", ra.Narrative)
	}
}

func TestAddItem(t *testing.T) {
	e := newTestEstimate()
	updated := e.AddItem(0)

	if len(updated.Trades[0].Items) != 3 {
		t.Fatalf("items = %d, want 3", len(updated.Trades[0].Items))
	}
	if len(e.Trades[0].Items) != 2 {
		t.Fatal("input snapshot changed")
	}

	added := updated.Trades[0].Items[2]
	if added.ItemNo != "1.3" {
		t.Errorf("itemNo = %q, want 1.3", added.ItemNo)
	}
	if added.Unit != "ea" {
		t.Errorf("unit = %q, want ea", added.Unit)
	}
	if !added.Quantity.Equal(d("1")) {
		t.Errorf("quantity = %s, want 1", added.Quantity)
	}
	// explicit zero overhead keeps hand-entered lines out of the default markup
	if !added.Total().IsZero() {
		t.Errorf("new item total = %s, want 0", added.Total())
	}
	if added.ID == "" {
		t.Error("no identifier assigned")
	}
	if _, dup := e.ItemIDs()[added.ID]; dup {
		t.Errorf("identifier %q collides with an existing item", added.ID)
	}
	if added.RateAnalysis.Narrative != "Manual Entry" {
		t.Errorf("narrative = %q", added.RateAnalysis.Narrative)
	}
	if err := updated.CheckIntegrity(); err != nil {
		t.Errorf("integrity: %v", err)
	}
}

func TestDeleteItem(t *testing.T) {
	e := newTestEstimate()
	updated := e.DeleteItem(0, 0)

	if len(updated.Trades[0].Items) != 1 {
		t.Fatalf("items = %d, want 1", len(updated.Trades[0].Items))
	}
	// survivor keeps its display number
	if updated.Trades[0].Items[0].ItemNo != "1.2" {
		t.Errorf("itemNo = %q, want 1.2", updated.Trades[0].Items[0].ItemNo)
	}
	if len(e.Trades[0].Items) != 2 {
		t.Error("input snapshot changed")
	}
}

func TestAddRenameDeleteTrade(t *testing.T) {
	e := newTestEstimate()

	added := e.AddTrade()
	if len(added.Trades) != 3 {
		t.Fatalf("trades = %d, want 3", len(added.Trades))
	}
	if added.Trades[2].TradeName != "New Trade Section" {
		t.Errorf("name = %q", added.Trades[2].TradeName)
	}
	if added.Trades[2].Items == nil || len(added.Trades[2].Items) != 0 {
		t.Error("new trade should start with an empty item list")
	}

	renamed := added.RenameTrade(2, "External Works")
	if renamed.Trades[2].TradeName != "External Works" {
		t.Errorf("renamed = %q", renamed.Trades[2].TradeName)
	}
	if added.Trades[2].TradeName != "New Trade Section" {
		t.Error("rename modified its input snapshot")
	}

	deleted := renamed.DeleteTrade(0)
	if len(deleted.Trades) != 2 {
		t.Fatalf("trades = %d, want 2", len(deleted.Trades))
	}
	if deleted.Trades[0].TradeName != "Finishes" {
		t.Errorf("first trade = %q, want Finishes", deleted.Trades[0].TradeName)
	}
	// cascade: the deleted trade's items are gone from the totals
	if !deleted.GrandTotal().Equal(d("150")) {
		t.Errorf("GrandTotal() = %s, want 150", deleted.GrandTotal())
	}
}

func TestAssumptionLifecycle(t *testing.T) {
	e := newTestEstimate()

	added := e.AddAssumption(AssumptionPricing, "  Rates as of Q3  ")
	if len(added.Assumptions) != 2 {
		t.Fatalf("assumptions = %d, want 2", len(added.Assumptions))
	}
	a := added.Assumptions[1]
	if a.Text != "Rates as of Q3" {
		t.Errorf("text = %q, want trimmed", a.Text)
	}
	if a.ID == "" {
		t.Error("no identifier assigned")
	}

	edited := added.UpdateAssumption(1, AssumptionGeneral, "Revised basis")
	if edited.Assumptions[1].Category != AssumptionGeneral {
		t.Errorf("category = %q", edited.Assumptions[1].Category)
	}
	if edited.Assumptions[1].ID != a.ID {
		t.Error("identifier changed across the edit")
	}

	deleted := edited.DeleteAssumption(0)
	if len(deleted.Assumptions) != 1 {
		t.Fatalf("assumptions = %d, want 1", len(deleted.Assumptions))
	}
	if deleted.Assumptions[0].ID != a.ID {
		t.Error("wrong assumption deleted")
	}
}

func TestAddAssumptionRejectsBlankText(t *testing.T) {
	e := newTestEstimate()
	for _, input := range []string{"", "   ", "\t\n"} {
		if got := e.AddAssumption(AssumptionGeneral, input); got != e {
			t.Errorf("AddAssumption(%q) should return the input snapshot", input)
		}
	}
}

func TestUpdateAssumptionRejectsBlankText(t *testing.T) {
	e := newTestEstimate()
	for _, input := range []string{"", "   ", "\t\n"} {
		if got := e.UpdateAssumption(0, AssumptionGeneral, input); got != e {
			t.Errorf("UpdateAssumption(0, %q) should return the input snapshot", input)
		}
	}
	if e.Assumptions[0].Text != "Normal soil assumed" {
		t.Error("input snapshot changed")
	}
}
