// Command aqs manages bill-of-quantities estimate files: generating them
// from a project description, editing them, and exporting reports.
package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"

	"github.com/autoqs/boq/cmd"
)

func main() {
	// Shell completion, a no-op outside of completion mode.
	completion().Complete("aqs")

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	commander.Register(commander.CommandsCommand(), "")

	for _, c := range cmd.Commands {
		commander.Register(c, "")
	}

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}

// completion describes the command tree for shell completion.
func completion() *complete.Command {
	file := map[string]complete.Predictor{"file": predict.Files("*.json")}
	sub := map[string]*complete.Command{
		"generate": {Flags: map[string]complete.Predictor{
			"country":  predict.Set{"LK", "UK", "US", "AE", "SA", "AU", "CA", "IN", "SG", "ZA", "QA"},
			"standard": predict.Set{"NRM1", "NRM2", "SMM7", "CESMM4", "POMI"},
			"attach":   predict.Files("*"),
			"o":        predict.Files("*.json"),
		}},
		"show":   {Flags: file},
		"export": {Flags: map[string]complete.Predictor{"file": predict.Files("*.json"), "format": predict.Set{"csv", "xlsx", "pdf"}}},

		"add-item":    {Flags: file},
		"set":         {Flags: file},
		"set-op":      {Flags: file},
		"delete-item": {Flags: file},

		"add-trade":    {Flags: file},
		"rename-trade": {Flags: file},
		"delete-trade": {Flags: file},

		"add-assumption":    {Flags: file},
		"edit-assumption":   {Flags: file},
		"delete-assumption": {Flags: file},

		"topic": {},
	}
	return &complete.Command{Sub: sub}
}
