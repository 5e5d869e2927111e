package cmd

import (
	"context"
	"flag"
	"fmt"
	"strings"

	"github.com/google/subcommands"

	"github.com/autoqs/boq"
)

type addAssumptionCmd struct {
	file     string
	category string
	text     string
}

func (*addAssumptionCmd) Name() string     { return "add-assumption" }
func (*addAssumptionCmd) Synopsis() string { return "append an assumption to the estimate" }
func (*addAssumptionCmd) Usage() string {
	return `aqs add-assumption [-file <file>] [-category <name>] -text <text>

  Appends an assumption. Categories: Quantity, Specification,
  Site Condition, General, Pricing. Blank text is rejected.

Usage Examples:
$ aqs add-assumption -category Pricing -text "Rates as of Q3 2026"

`
}

func (c *addAssumptionCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.file, "file", DefaultEstimateFile, "estimate file to edit")
	f.StringVar(&c.category, "category", string(boq.AssumptionGeneral), "assumption category")
	f.StringVar(&c.text, "text", "", "assumption text")
}

func (c *addAssumptionCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	updated := estimate.AddAssumption(category, c.text)
	if err := writeEstimate(c.file, updated); err != nil {
		return fail(err)
	}

	fmt.Printf("Added assumption %d (%s)\n", len(updated.Assumptions)-1, category)
	return subcommands.ExitSuccess
}
