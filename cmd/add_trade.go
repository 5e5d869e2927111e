package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"
)

type addTradeCmd struct {
	file string
	name string
}

func (*addTradeCmd) Name() string     { return "add-trade" }
func (*addTradeCmd) Synopsis() string { return "append an empty trade section" }
func (*addTradeCmd) Usage() string {
	return `aqs add-trade [-file <file>] [-name <name>]

  Appends an empty trade section at the end of the bill. Without -name the
  section is called "New Trade Section" and can be renamed later.

Usage Examples:
$ aqs add-trade -name "External Works"

`
}

func (c *addTradeCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.file, "file", DefaultEstimateFile, "estimate file to edit")
	f.StringVar(&c.name, "name", "", "name of the new trade section")
}

func (c *addTradeCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	estimate, err := readEstimate(c.file)
	if err != nil {
		return fail(err)
	}

	updated := estimate.AddTrade()
	if c.name != "" {
		updated = updated.RenameTrade(len(updated.Trades)-1, c.name)
	}
	if err := writeEstimate(c.file, updated); err != nil {
		return fail(err)
	}

	fmt.Printf("Added trade %q at position %d\n",
		updated.Trades[len(updated.Trades)-1].TradeName, len(updated.Trades)-1)
	return subcommands.ExitSuccess
}
