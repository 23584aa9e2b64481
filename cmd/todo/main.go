package main

import (
	"errors"
	"flag"
	"os"

	"github.com/Makepad-fr/tada/internal/cli"
	"github.com/Makepad-fr/tada/internal/config"
	"github.com/Makepad-fr/tada/internal/ui"
)

func main() {
	// Root flags, config file and TADA_* env are resolved together.
	fs := flag.NewFlagSet("todo", flag.ContinueOnError)
	fs.Usage = cli.PrintHelp
	cfg, args, err := config.Load(fs, os.Args[1:])
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		ui.Fail("config: " + err.Error())
		os.Exit(2)
	}

	os.Exit(cli.Run(args, cli.Options{Config: cfg}))
}
