package cmd

import (
	"context"
	"flag"
	"fmt"
	"io"
	"mime"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/subcommands"

	"github.com/autoqs/boq"
	"github.com/autoqs/boq/estimator"
)

type generateCmd struct {
	country  string
	standard string
	output   string
	attach   string
	model    string
}

func (*generateCmd) Name() string     { return "generate" }
func (*generateCmd) Synopsis() string { return "generate a priced estimate from a project description" }
func (*generateCmd) Usage() string {
	return `aqs generate [-country <code>] [-standard <code>] [-attach <file>] [-o <file>] < description.txt

  Reads the project description from stdin, prices it with Gemini grounded
  on web search, and writes the resulting estimate file.

Usage Examples:
# Price a Sri Lankan villa project to NRM2.
$ aqs generate -country LK -standard NRM2 -o villa.json < villa.txt

# Include a floor plan.
$ aqs generate -country UK -attach plan.png -o house.json < house.txt

`
}

func (c *generateCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.country, "country", "LK", "two-letter country code for the pricing locale")
	f.StringVar(&c.standard, "standard", "NRM2", "measurement standard (NRM1, NRM2, SMM7, CESMM4, POMI)")
	f.StringVar(&c.output, "o", DefaultEstimateFile, "output estimate file")
	f.StringVar(&c.attach, "attach", "", "optional drawing or document to send with the description")
	f.StringVar(&c.model, "model", "", "override the Gemini model")
}

func (c *generateCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	country, err := boq.CountryByCode(strings.ToUpper(c.country))
	if err != nil {
		return fail(err)
	}
	standard, err := boq.ParseMeasurementStandard(c.standard)
	if err != nil {
		return fail(err)
	}

	description, err := io.ReadAll(os.Stdin)
	if err != nil {
		return fail(fmt.Errorf("cannot read project description: %w", err))
	}

	req := estimator.Request{
		Description: string(description),
		Standard:    standard,
		Country:     country,
	}
	if c.attach != "" {
		data, err := os.ReadFile(c.attach)
		if err != nil {
			return fail(fmt.Errorf("cannot read attachment: %w", err))
		}
		req.File = &estimator.Attachment{
			MIMEType: mime.TypeByExtension(filepath.Ext(c.attach)),
			Data:     data,
		}
	}

	client, err := estimator.NewClient(ctx)
	if err != nil {
		return fail(err)
	}
	gen := estimator.New(client)
	if c.model != "" {
		gen.Model = c.model
	}

	fmt.Fprintf(os.Stderr, "Pricing project for %s (%s)...\n", country.Name, country.Currency)
	estimate, err := gen.Generate(ctx, req)
	if err != nil {
		return fail(err)
	}

	if err := writeEstimate(c.output, estimate); err != nil {
		return fail(err)
	}
	if estimate.IsInsufficientInfo {
		fmt.Printf("Wrote %s: insufficient information to price the project: %s\n",
			c.output, estimate.MissingInfoReason)
		return subcommands.ExitSuccess
	}
	total := boq.M(estimate.GrandTotal(), estimate.ProjectSummary.Currency)
	fmt.Printf("Wrote %s: %d trades, %d items, grand total %s\n",
		c.output, len(estimate.Trades), estimate.ItemCount(), total)
	return subcommands.ExitSuccess
}
