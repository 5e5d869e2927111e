package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"
)

type deleteTradeCmd struct {
	file  string
	trade int
	yes   bool
}

func (*deleteTradeCmd) Name() string     { return "delete-trade" }
func (*deleteTradeCmd) Synopsis() string { return "remove a trade section and all its items" }
func (*deleteTradeCmd) Usage() string {
	return `aqs delete-trade [-file <file>] -trade <index> -yes

  Removes the trade section and every item in it. The command refuses to
  run without -yes.

Usage Examples:
$ aqs delete-trade -trade 3 -yes

`
}

func (c *deleteTradeCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.file, "file", DefaultEstimateFile, "estimate file to edit")
	f.IntVar(&c.trade, "trade", -1, "zero-based trade position")
	f.BoolVar(&c.yes, "yes", false, "confirm the deletion")
}

func (c *deleteTradeCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	estimate, err := readEstimate(c.file)
	if err != nil {
		return fail(err)
	}
	if c.trade < 0 || c.trade >= len(estimate.Trades) {
		return fail(fmt.Errorf("no trade at position %d", c.trade))
	}

	t := estimate.Trades[c.trade]
	if !c.yes {
		return fail(fmt.Errorf("deleting trade %q would remove %d items, re-run with -yes to confirm",
			t.TradeName, len(t.Items)))
	}

	updated := estimate.DeleteTrade(c.trade)
	if err := writeEstimate(c.file, updated); err != nil {
		return fail(err)
	}

	fmt.Printf("Deleted trade %q and its %d items\n", t.TradeName, len(t.Items))
	return subcommands.ExitSuccess
}
