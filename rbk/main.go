package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/etawil/recon/cmd"
	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

// completion describes the rbk command line for shell completion.
// Running "COMP_INSTALL=1 rbk" installs it.
var completion = &complete.Command{
	Flags: map[string]complete.Predictor{
		"session-file": predict.Files("*.jsonl"),
	},
	Sub: map[string]*complete.Command{
		"load": {Flags: map[string]complete.Predictor{
			"accounts": predict.Files("*"),
			"groups":   predict.Files("*"),
		}},
		"select": {Flags: map[string]complete.Predictor{
			"names": predict.Something,
			"clear": predict.Nothing,
		}},
		"rate": {Flags: map[string]complete.Predictor{
			"fetch": predict.Nothing,
			"base":  predict.Something,
			"quote": predict.Something,
		}},
		"carry":      {},
		"report":     {},
		"summary":    {},
		"export":     {Flags: map[string]complete.Predictor{"o": predict.Files("*")}},
		"commission": {},
		"add-row":    {},
		"rm-row":     {},
		"set-row":    {Flags: map[string]complete.Predictor{"f": predict.Set{"lots", "rebate"}}},
		"book":       {},
		"confirm":    {},
		"unconfirm":  {Flags: map[string]complete.Predictor{"clear": predict.Nothing}},
		"topic":      {},
		"assist":     {},
	},
}

func main() {
	completion.Complete("rbk")

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "help")
	commander.Register(commander.FlagsCommand(), "help")
	commander.Register(commander.CommandsCommand(), "help")
	cmd.Register(commander)

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}
