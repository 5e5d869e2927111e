// Package cmd implements the CLI application to manage a bill-of-quantities
// estimate file.
package cmd

import (
	"fmt"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/google/subcommands"

	"github.com/autoqs/boq"
)

// Commands lists the subcommands in registration order.
// A main package iterates it to register them, and Execute the selected one.
var Commands = []subcommands.Command{
	&generateCmd{},
	&showCmd{},
	&exportCmd{},

	&addItemCmd{},
	&setCmd{},
	&setOpCmd{},
	&deleteItemCmd{},

	&addTradeCmd{},
	&renameTradeCmd{},
	&deleteTradeCmd{},

	&addAssumptionCmd{},
	&editAssumptionCmd{},
	&deleteAssumptionCmd{},

	&topicCmd{},
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

// DefaultEstimateFile is the estimate file used when -file is not given.
const DefaultEstimateFile = "estimate.json"

// readEstimate loads and normalizes the estimate file.
func readEstimate(filename string) (*boq.Estimate, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("cannot open estimate file %q: %w", filename, err)
	}
	defer f.Close()
	return boq.DecodeEstimate(f)
}

// writeEstimate writes the estimate back, derived figures recomputed.
func writeEstimate(filename string, e *boq.Estimate) error {
	f, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("cannot write estimate file %q: %w", filename, err)
	}
	defer f.Close()
	return boq.EncodeEstimate(f, e)
}

// printMarkdown renders markdown to the terminal, falling back to the raw
// text when the renderer cannot be created.
func printMarkdown(md string) {
	out, err := glamour.Render(md, "auto")
	if err != nil {
		fmt.Println(md)
		return
	}
	fmt.Print(out)
}

// fail prints the error and returns the failure status.
func fail(err error) subcommands.ExitStatus {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	return subcommands.ExitFailure
}
