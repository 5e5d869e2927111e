package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"
)

type addItemCmd struct {
	file  string
	trade int
}

func (*addItemCmd) Name() string     { return "add-item" }
func (*addItemCmd) Synopsis() string { return "append a blank item to a trade section" }
func (*addItemCmd) Usage() string {
	return `aqs add-item [-file <file>] -trade <index>

  Appends a new item to the trade at the given zero-based position. The
  item starts with quantity 1, unit "ea", zero rates and an explicit zero
  overhead, and takes the next number in the trade's numbering.

Usage Examples:
$ aqs add-item -trade 0

`
}

func (c *addItemCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.file, "file", DefaultEstimateFile, "estimate file to edit")
	f.IntVar(&c.trade, "trade", -1, "zero-based trade position")
}

func (c *addItemCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	estimate, err := readEstimate(c.file)
	if err != nil {
		return fail(err)
	}
	if c.trade < 0 || c.trade >= len(estimate.Trades) {
		return fail(fmt.Errorf("no trade at position %d", c.trade))
	}

	updated := estimate.AddItem(c.trade)
	if err := writeEstimate(c.file, updated); err != nil {
		return fail(err)
	}

	items := updated.Trades[c.trade].Items
	added := items[len(items)-1]
	fmt.Printf("Added item %s to trade %q\n", added.ItemNo, updated.Trades[c.trade].TradeName)
	return subcommands.ExitSuccess
}
