package cmd

import (
	"context"
	"flag"
	"fmt"
	"strings"

	"github.com/google/subcommands"

	"github.com/autoqs/boq"
)

type editAssumptionCmd struct {
	file     string
	index    int
	category string
	text     string
}

func (*editAssumptionCmd) Name() string     { return "edit-assumption" }
func (*editAssumptionCmd) Synopsis() string { return "rewrite an assumption" }
func (*editAssumptionCmd) Usage() string {
	return `aqs edit-assumption [-file <file>] -index <index> [-category <name>] -text <text>

  Rewrites the assumption at the given zero-based position. It keeps its
  identifier.

Usage Examples:
$ aqs edit-assumption -index 0 -category General -text "Revised basis"

`
}

func (c *editAssumptionCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.file, "file", DefaultEstimateFile, "estimate file to edit")
	f.IntVar(&c.index, "index", -1, "zero-based assumption position")
	f.StringVar(&c.category, "category", string(boq.AssumptionGeneral), "assumption category")
	f.StringVar(&c.text, "text", "", "assumption text")
}

func (c *editAssumptionCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	category, err := boq.ParseAssumptionCategory(c.category)
	if err != nil {
		return fail(err)
	}
	if strings.TrimSpace(c.text) == "" {
		return fail(fmt.Errorf("-text must not be blank"))
	}

	estimate, err := readEstimate(c.file)
	if err != nil {
		return fail(err)
	}
	if c.index < 0 || c.index >= len(estimate.Assumptions) {
		return fail(fmt.Errorf("no assumption at position %d", c.index))
	}

	updated := estimate.UpdateAssumption(c.index, category, c.text)
	if err := writeEstimate(c.file, updated); err != nil {
		return fail(err)
	}

	fmt.Printf("Updated assumption %d (%s)\n", c.index, category)
	return subcommands.ExitSuccess
}
