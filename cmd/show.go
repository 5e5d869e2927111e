package cmd

import (
	"context"
	"flag"
	"os"
	"time"

	"github.com/google/subcommands"

	"github.com/autoqs/boq"
	"github.com/autoqs/boq/renderer"
)

type showCmd struct {
	file            string
	jsonOutput      bool
	skipSuppliers   bool
	skipAssumptions bool
}

func (*showCmd) Name() string     { return "show" }
func (*showCmd) Synopsis() string { return "display the estimate as a formatted report" }
func (*showCmd) Usage() string {
	return `aqs show [-file <file>] [-json]

  Renders the estimate as a markdown report on the terminal: trades with
  their priced items, subtotals, prime cost, overhead and grand total.

Usage Examples:
# Show the default estimate file.
$ aqs show

# Show the canonical JSON instead.
$ aqs show -file villa.json -json

`
}

func (c *showCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.file, "file", DefaultEstimateFile, "estimate file to show")
	f.BoolVar(&c.jsonOutput, "json", false, "print the canonical JSON instead of the report")
	f.BoolVar(&c.skipSuppliers, "no-suppliers", false, "do not render the suppliers section")
	f.BoolVar(&c.skipAssumptions, "no-assumptions", false, "do not render the assumptions section")
}

func (c *showCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	estimate, err := readEstimate(c.file)
	if err != nil {
		return fail(err)
	}

	if c.jsonOutput {
		if err := boq.EncodeEstimate(os.Stdout, estimate); err != nil {
			return fail(err)
		}
		return subcommands.ExitSuccess
	}

	// not an error: the model parsed the request but could not price it
	if estimate.IsInsufficientInfo {
		printMarkdown("# Insufficient Information\n\n" + estimate.MissingInfoReason + "\n")
		return subcommands.ExitSuccess
	}

	report := estimate.BuildReport(time.Now())
	md := renderer.RenderBill(renderer.NewBill(report), renderer.BillRenderOptions{
		SkipSuppliers:   c.skipSuppliers,
		SkipAssumptions: c.skipAssumptions,
	})
	printMarkdown(md)
	return subcommands.ExitSuccess
}
