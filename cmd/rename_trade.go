package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"
)

type renameTradeCmd struct {
	file  string
	trade int
	name  string
}

func (*renameTradeCmd) Name() string     { return "rename-trade" }
func (*renameTradeCmd) Synopsis() string { return "rename a trade section" }
func (*renameTradeCmd) Usage() string {
	return `aqs rename-trade [-file <file>] -trade <index> -name <name>

Usage Examples:
$ aqs rename-trade -trade 3 -name "Roofing"

`
}

func (c *renameTradeCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.file, "file", DefaultEstimateFile, "estimate file to edit")
	f.IntVar(&c.trade, "trade", -1, "zero-based trade position")
	f.StringVar(&c.name, "name", "", "new trade name")
}

func (c *renameTradeCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.name == "" {
		return fail(fmt.Errorf("-name is required"))
	}
	estimate, err := readEstimate(c.file)
	if err != nil {
		return fail(err)
	}
	if c.trade < 0 || c.trade >= len(estimate.Trades) {
		return fail(fmt.Errorf("no trade at position %d", c.trade))
	}

	old := estimate.Trades[c.trade].TradeName
	updated := estimate.RenameTrade(c.trade, c.name)
	if err := writeEstimate(c.file, updated); err != nil {
		return fail(err)
	}

	fmt.Printf("Renamed trade %q to %q\n", old, c.name)
	return subcommands.ExitSuccess
}
