package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"
)

type deleteItemCmd struct {
	file  string
	trade int
	item  int
}

func (*deleteItemCmd) Name() string     { return "delete-item" }
func (*deleteItemCmd) Synopsis() string { return "remove an item from its trade section" }
func (*deleteItemCmd) Usage() string {
	return `aqs delete-item [-file <file>] -trade <index> -item <index>

  Removes the item at the given position. The remaining items keep their
  display numbers.

Usage Examples:
$ aqs delete-item -trade 0 -item 2

`
}

func (c *deleteItemCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.file, "file", DefaultEstimateFile, "estimate file to edit")
	f.IntVar(&c.trade, "trade", -1, "zero-based trade position")
	f.IntVar(&c.item, "item", -1, "zero-based item position in the trade")
}

func (c *deleteItemCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	removed := estimate.Trades[c.trade].Items[c.item]
	updated := estimate.DeleteItem(c.trade, c.item)
	if err := writeEstimate(c.file, updated); err != nil {
		return fail(err)
	}

	fmt.Printf("Deleted item %s (%s)\n", removed.ItemNo, removed.Description)
	return subcommands.ExitSuccess
}
