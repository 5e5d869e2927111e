package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"
)

type deleteAssumptionCmd struct {
	file  string
	index int
}

func (*deleteAssumptionCmd) Name() string     { return "delete-assumption" }
func (*deleteAssumptionCmd) Synopsis() string { return "remove an assumption" }
func (*deleteAssumptionCmd) Usage() string {
	return `aqs delete-assumption [-file <file>] -index <index>

Usage Examples:
$ aqs delete-assumption -index 0

`
}

func (c *deleteAssumptionCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.file, "file", DefaultEstimateFile, "estimate file to edit")
	f.IntVar(&c.index, "index", -1, "zero-based assumption position")
}

func (c *deleteAssumptionCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	estimate, err := readEstimate(c.file)
	if err != nil {
		return fail(err)
	}
	if c.index < 0 || c.index >= len(estimate.Assumptions) {
		return fail(fmt.Errorf("no assumption at position %d", c.index))
	}

	removed := estimate.Assumptions[c.index]
	updated := estimate.DeleteAssumption(c.index)
	if err := writeEstimate(c.file, updated); err != nil {
		return fail(err)
	}

	fmt.Printf("Deleted assumption %d (%s)\n", c.index, removed.Category)
	return subcommands.ExitSuccess
}
