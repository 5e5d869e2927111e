package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"

	"github.com/autoqs/boq"
)

type setCmd struct {
	file  string
	trade int
	item  int
	field string
	value string
}

func (*setCmd) Name() string     { return "set" }
func (*setCmd) Synopsis() string { return "set one field of an item" }
func (*setCmd) Usage() string {
	return `aqs set [-file <file>] -trade <index> -item <index> -field <name> -value <text>

  Replaces one field of one item. Editable fields: itemNo, description,
  unit, quantity, quantityFormula, rateMaterial, rateLabor, remarks,
  userNotes. Numeric fields accept decimal text; unparsable input becomes
  zero.

Usage Examples:
$ aqs set -trade 0 -item 2 -field quantity -value 650
$ aqs set -trade 0 -item 2 -field description -value "Excavation in trench"

`
}

func (c *setCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.file, "file", DefaultEstimateFile, "estimate file to edit")
	f.IntVar(&c.trade, "trade", -1, "zero-based trade position")
	f.IntVar(&c.item, "item", -1, "zero-based item position in the trade")
	f.StringVar(&c.field, "field", "", "field to set")
	f.StringVar(&c.value, "value", "", "new value")
}

func (c *setCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	var field boq.ItemField
	for _, known := range boq.ItemFields {
		if string(known) == c.field {
			field = known
		}
	}
	if field == "" {
		return fail(fmt.Errorf("unknown field %q, want one of %v", c.field, boq.ItemFields))
	}

	estimate, err := readEstimate(c.file)
	if err != nil {
		return fail(err)
	}
	if c.trade < 0 || c.trade >= len(estimate.Trades) {
		return fail(fmt.Errorf("no trade at position %d", c.trade))
	}
	if c.item < 0 || c.item >= len(estimate.Trades[c.trade].Items) {
		return fail(fmt.Errorf("no item at position %d in trade %d", c.item, c.trade))
	}

	updated := estimate.UpdateItemField(c.trade, c.item, field, c.value)
	if err := writeEstimate(c.file, updated); err != nil {
		return fail(err)
	}

	it := updated.Trades[c.trade].Items[c.item]
	total := boq.M(updated.GrandTotal(), updated.ProjectSummary.Currency)
	fmt.Printf("Set %s of item %s, grand total now %s\n", field, it.ItemNo, total)
	return subcommands.ExitSuccess
}
