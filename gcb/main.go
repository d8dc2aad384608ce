// Command gcb manages a dual-currency cash book from the command line.
package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"

	"github.com/giya/cashbook/cmd"
)

func main() {
	// Shell completion exits the process when invoked by the shell.
	completion().Complete("gcb")

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))

	for _, c := range cmd.Commands {
		commander.Register(c, "")
	}
	commander.Register(commander.HelpCommand(), "help")
	commander.Register(commander.FlagsCommand(), "help")
	commander.Register(commander.CommandsCommand(), "help")

	flag.Parse()

	// Unknown subcommands fall through to gcb-<name> extensions.
	if args := flag.Args(); len(args) > 0 && !known(args[0]) {
		if ran, code := cmd.RunExtension(args[0], args[1:]); ran {
			os.Exit(code)
		}
	}

	os.Exit(int(commander.Execute(context.Background())))
}

func known(name string) bool {
	switch name {
	case "help", "flags", "commands":
		return true
	}
	for _, c := range cmd.Commands {
		if c.Name() == name {
			return true
		}
	}
	return false
}

func completion() *complete.Command {
	sub := make(map[string]*complete.Command, len(cmd.Commands))
	for _, c := range cmd.Commands {
		sub[c.Name()] = &complete.Command{}
	}
	return &complete.Command{
		Sub: sub,
		Flags: map[string]complete.Predictor{
			"cashbook-file": predict.Files("*.jsonl"),
			"settings-file": predict.Files("*.json"),
			"closes-file":   predict.Files("*.jsonl"),
		},
	}
}
