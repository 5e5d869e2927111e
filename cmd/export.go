package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/google/subcommands"

	"github.com/autoqs/boq/export"
)

type exportCmd struct {
	file   string
	format string
	output string
}

func (*exportCmd) Name() string     { return "export" }
func (*exportCmd) Synopsis() string { return "export the estimate to CSV, XLSX or PDF" }
func (*exportCmd) Usage() string {
	return `aqs export [-file <file>] -format <csv|xlsx|pdf> [-o <file>]

  Writes the report to an interchange format. Without -o the output is
  named BOQ_<project>_<date> with the format's extension.

Usage Examples:
# Export the default estimate file to a spreadsheet.
$ aqs export -format xlsx

# Export to a specific PDF file.
$ aqs export -file villa.json -format pdf -o villa.pdf

`
}

func (c *exportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.file, "file", DefaultEstimateFile, "estimate file to export")
	f.StringVar(&c.format, "format", "csv", "output format: csv, xlsx or pdf")
	f.StringVar(&c.output, "o", "", "output file (default BOQ_<project>_<date>.<ext>)")
}

func (c *exportCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	estimate, err := readEstimate(c.file)
	if err != nil {
		return fail(err)
	}
	report := estimate.BuildReport(time.Now())
	data := export.Flatten(report)

	output := c.output
	if output == "" {
		output = report.Filename() + "." + c.format
	}

	switch c.format {
	case "csv":
		f, err := os.Create(output)
		if err != nil {
			return fail(err)
		}
		defer f.Close()
		if err := export.WriteCSV(f, data); err != nil {
			return fail(err)
		}

	case "xlsx":
		b, err := export.GenerateExcel(data)
		if err != nil {
			return fail(err)
		}
		if err := os.WriteFile(output, b, 0644); err != nil {
			return fail(err)
		}

	case "pdf":
		b, err := export.GeneratePDF(data)
		if err != nil {
			return fail(err)
		}
		if err := os.WriteFile(output, b, 0644); err != nil {
			return fail(err)
		}

	default:
		return fail(fmt.Errorf("unknown format %q, want csv, xlsx or pdf", c.format))
	}

	fmt.Printf("Wrote %s\n", output)
	return subcommands.ExitSuccess
}
