// Command stk tracks a personal stock portfolio: buys, sells,
// conditional orders, price metrics and reports.
package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/google/subcommands"
	"github.com/mbellan/stockfolio/cmd"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

func main() {
	// shell completion support, a no-op outside of a completion request
	sub := make(map[string]*complete.Command, len(cmd.Commands))
	for _, c := range cmd.Commands {
		sub[c.Name()] = &complete.Command{}
	}
	completer := &complete.Command{
		Sub: sub,
		Flags: map[string]complete.Predictor{
			"config": predict.Files("*.yaml"),
		},
	}
	completer.Complete("stk")

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))

	commander.Register(commander.HelpCommand(), "help")
	commander.Register(commander.FlagsCommand(), "help")
	for _, c := range cmd.Commands {
		commander.Register(c, "")
	}

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}
