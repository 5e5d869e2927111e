package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"

	"github.com/autoqs/boq"
)

type setOpCmd struct {
	file  string
	trade int
	item  int
	value string
}

func (*setOpCmd) Name() string     { return "set-op" }
func (*setOpCmd) Synopsis() string { return "pin an item's per-unit overhead and profit" }
func (*setOpCmd) Usage() string {
	return `aqs set-op [-file <file>] -trade <index> -item <index> -value <amount>

  Sets an explicit per-unit overhead and profit figure on the item. The
  explicit figure is applied verbatim; setting 0 disables the default 15%
  markup for that item.

Usage Examples:
$ aqs set-op -trade 0 -item 2 -value 1.50
$ aqs set-op -trade 0 -item 2 -value 0

`
}

func (c *setOpCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.file, "file", DefaultEstimateFile, "estimate file to edit")
	f.IntVar(&c.trade, "trade", -1, "zero-based trade position")
	f.IntVar(&c.item, "item", -1, "zero-based item position in the trade")
	f.StringVar(&c.value, "value", "", "per-unit overhead and profit amount")
}

func (c *setOpCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	updated := estimate.UpdateItemOverhead(c.trade, c.item, c.value)
	if err := writeEstimate(c.file, updated); err != nil {
		return fail(err)
	}

	it := updated.Trades[c.trade].Items[c.item]
	rate := boq.M(it.FullUnitRate(), updated.ProjectSummary.Currency)
	fmt.Printf("Set overhead of item %s, full unit rate now %s\n", it.ItemNo, rate)
	return subcommands.ExitSuccess
}
