// Package boq implements an editable, internally consistent Bill of
// Quantities: the estimate data model, the derived-value computation rules,
// the mutation operations that preserve its invariants across edits, and the
// projection of an estimate into a flat, print-ready report.
package boq

import (
	"fmt"
	"math/rand"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// ProjectSummary describes the project the estimate was priced for.
//
// It is owned by the Estimate; the only mutation it ever receives is the
// currency synchronization from the selected country (see SyncCurrency).
type ProjectSummary struct {
	ProjectType         string              `json:"projectType"`
	Structure           string              `json:"structure"`
	Floors              string              `json:"floors"`
	MeasurementStandard MeasurementStandard `json:"measurementStandard"`
	Currency            string              `json:"currency"`
	CurrencySymbol      string              `json:"currencySymbol"`
	TotalEstimatedCost  decimal.Decimal     `json:"totalEstimatedCost"`
	Notes               string              `json:"notes,omitempty"`
}

// RateAnalysis is the build-up behind an item's unit rate.
//
// BaseMaterial and BaseLabor are a denormalized mirror of the item's own rate
// fields, resynchronized by the overhead update path; they are not an
// independent source of truth. OverheadAndProfit is nullable: when set it is
// authoritative verbatim (zero and negative included), when nil the unit
// overhead is derived (see BOQItem.UnitOverheadAndProfit).
type RateAnalysis struct {
	BaseMaterial      decimal.Decimal  `json:"baseMaterial"`
	BaseLabor         decimal.Decimal  `json:"baseLabor"`
	PlantAndEquipment decimal.Decimal  `json:"plantAndEquipment"`
	OverheadAndProfit *decimal.Decimal `json:"overheadAndProfit,omitempty"`
	Narrative         string           `json:"narrative,omitempty"`
}

// BOQItem is a single priced line of the bill.
//
// ID is unique within the estimate and immutable for the item's lifetime.
// ItemNo is a display convenience: user-editable free text, not required to
// be unique, and never a valid lookup key.
type BOQItem struct {
	ID              string          `json:"id"`
	ItemNo          string          `json:"itemNo"`
	Description     string          `json:"description"`
	Unit            string          `json:"unit"`
	Quantity        decimal.Decimal `json:"quantity"`
	QuantityFormula string          `json:"quantityFormula"`
	RateMaterial    decimal.Decimal `json:"rateMaterial"`
	RateLabor       decimal.Decimal `json:"rateLabor"`
	RateAnalysis    *RateAnalysis   `json:"rateAnalysis,omitempty"`
	Remarks         string          `json:"remarks,omitempty"`
	UserNotes       string          `json:"userNotes,omitempty"`
}

// TradeGroup is a named section of the bill grouping related items.
// Item order is significant: it is the display and report order.
//
// TradeTotal is a cached value carried by generated payloads. It is not
// authoritative; every consumer recomputes the trade total from the items.
type TradeGroup struct {
	TradeName  string          `json:"tradeName"`
	TradeTotal decimal.Decimal `json:"tradeTotal"`
	Items      []BOQItem       `json:"items"`
}

// AssumptionCategory classifies an assumption.
type AssumptionCategory string

const (
	AssumptionQuantity      AssumptionCategory = "Quantity"
	AssumptionSpecification AssumptionCategory = "Specification"
	AssumptionSiteCondition AssumptionCategory = "Site Condition"
	AssumptionGeneral       AssumptionCategory = "General"
	AssumptionPricing       AssumptionCategory = "Pricing"
)

// AssumptionCategories lists the valid categories in display order.
var AssumptionCategories = []AssumptionCategory{
	AssumptionQuantity,
	AssumptionSpecification,
	AssumptionSiteCondition,
	AssumptionGeneral,
	AssumptionPricing,
}

// ParseAssumptionCategory parses a string into an AssumptionCategory.
func ParseAssumptionCategory(s string) (AssumptionCategory, error) {
	for _, c := range AssumptionCategories {
		if string(c) == s {
			return c, nil
		}
	}
	return "", fmt.Errorf("unknown assumption category: %q", s)
}

// Assumption is a note qualifying the basis of the estimate.
//
// The mutation API addresses assumptions by position (the sequence is
// insertion-ordered); the id is assigned at creation so that a stable handle
// exists alongside the positional one.
type Assumption struct {
	ID       string             `json:"id,omitempty"`
	Category AssumptionCategory `json:"category"`
	Text     string             `json:"text"`
}

// Supplier is a recommended vendor for a trade. Read-mostly: suppliers are
// produced at generation time and only displayed or exported afterwards.
type Supplier struct {
	Trade              string `json:"trade"`
	Name               string `json:"name"`
	PhoneNumber        string `json:"phoneNumber"`
	Email              string `json:"email"`
	Website            string `json:"website,omitempty"`
	Location           string `json:"location,omitempty"`
	ServiceLevel       string `json:"serviceLevel,omitempty"`
	Specialization     string `json:"specialization,omitempty"`
	Rating             string `json:"rating,omitempty"`
	TypicalProjectSize string `json:"typicalProjectSize,omitempty"`
	Testimonial        string `json:"testimonial,omitempty"`
	EstimatedQuote     string `json:"estimatedQuote,omitempty"`
}

// Source is a citation attached by the generation step. Read-only here.
type Source struct {
	Title string `json:"title"`
	URI   string `json:"uri"`
}

// Estimate is the root of the costed ledger: the project summary, the
// ordered trade groups and their items, and the qualifying metadata.
//
// An Estimate value is treated as an immutable snapshot: every mutation
// operation returns a new snapshot and leaves its input untouched.
type Estimate struct {
	ProjectSummary       ProjectSummary `json:"projectSummary"`
	Trades               []TradeGroup   `json:"boqItems"`
	Assumptions          []Assumption   `json:"assumptions"`
	RecommendedSuppliers []Supplier     `json:"recommendedSuppliers,omitempty"`
	Sources              []Source       `json:"sources,omitempty"`
	IsInsufficientInfo   bool           `json:"isInsufficientInfo,omitempty"`
	MissingInfoReason    string         `json:"missingInfoReason,omitempty"`
}

// NewEstimate creates an empty estimate.
func NewEstimate() *Estimate {
	return &Estimate{
		Trades:      make([]TradeGroup, 0),
		Assumptions: make([]Assumption, 0),
	}
}

// ItemCount returns the total number of items across all trades.
func (e *Estimate) ItemCount() int {
	n := 0
	for _, t := range e.Trades {
		n += len(t.Items)
	}
	return n
}

// ItemIDs returns the set of all item identifiers in the estimate.
func (e *Estimate) ItemIDs() map[string]struct{} {
	ids := make(map[string]struct{}, e.ItemCount())
	for _, t := range e.Trades {
		for _, it := range t.Items {
			ids[it.ID] = struct{}{}
		}
	}
	return ids
}

// CheckIntegrity verifies the structural invariants of the estimate:
// every item has an identifier, and no identifier appears twice.
func (e *Estimate) CheckIntegrity() error {
	seen := make(map[string]string, e.ItemCount())
	for _, t := range e.Trades {
		for _, it := range t.Items {
			if it.ID == "" {
				return fmt.Errorf("trade %q: item %q has no identifier", t.TradeName, it.ItemNo)
			}
			if other, dup := seen[it.ID]; dup {
				return fmt.Errorf("duplicate item id %q in trades %q and %q", it.ID, other, t.TradeName)
			}
			seen[it.ID] = t.TradeName
		}
	}
	return nil
}

// SyncCurrency overwrites the summary's currency fields from the selected
// country. Generated payloads are not trusted for these fields.
func (e *Estimate) SyncCurrency(c Country) {
	e.ProjectSummary.Currency = c.Currency
	e.ProjectSummary.CurrencySymbol = c.CurrencySymbol
}

// newItemID builds an identifier for an item that arrived without one, or
// for a brand-new manual item. The trade and item positions make it
// deterministically distinguishable, the random suffix makes it unique even
// after items move or get deleted.
func newItemID(tradeIdx, itemIdx int) string {
	suffix := strconv.FormatInt(rand.Int63(), 36)
	if len(suffix) > 7 {
		suffix = suffix[:7]
	}
	return fmt.Sprintf("item-%d-%d-%s", tradeIdx, itemIdx, suffix)
}

// newAssumptionID builds an identifier for an assumption created by hand or
// arriving from generation without one.
func newAssumptionID(idx int) string {
	suffix := strconv.FormatInt(rand.Int63(), 36)
	if len(suffix) > 7 {
		suffix = suffix[:7]
	}
	return fmt.Sprintf("note-%d-%s", idx, suffix)
}

// uniqueItemID returns a fresh identifier not present in taken.
func uniqueItemID(tradeIdx, itemIdx int, taken map[string]struct{}) string {
	for {
		id := newItemID(tradeIdx, itemIdx)
		if _, exists := taken[id]; !exists {
			return id
		}
	}
}

// isBlank reports whether s is empty or whitespace-only.
func isBlank(s string) bool { return strings.TrimSpace(s) == "" }
