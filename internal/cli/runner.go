package cli

import (
	"fmt"

	"github.com/Makepad-fr/tada/internal/config"
	"github.com/Makepad-fr/tada/internal/logging"
	"github.com/Makepad-fr/tada/internal/store/memstore"
	"github.com/Makepad-fr/tada/internal/tui"
	"github.com/Makepad-fr/tada/internal/ui"
)

// Version is set at build time with -ldflags "-X ...cli.Version=...".
var Version = "dev"

// Options carry the resolved root configuration.
type Options struct {
	Config *config.Config
}

// startTUI is swapped out in tests.
var startTUI = tui.Run

// Run dispatches subcommands and returns an exit code (0 ok, 1 error, 2 usage).
func Run(args []string, opt Options) int {
	cmd := "run"
	if len(args) > 0 {
		cmd = args[0]
	}

	switch cmd {
	case "help", "-h", "--help":
		PrintHelp()
		return 0

	case "version":
		fmt.Fprintf(ui.Stdout(), "todo %s\n", Version)
		return 0

	case "run":
		if len(args) > 1 {
			ui.Fail("usage: todo [flags] [run]")
			return 2
		}
		return doRun(opt)
	}

	ui.Fail("unknown subcommand: " + cmd)
	PrintHelp()
	return 2
}

func PrintHelp() {
	fmt.Fprint(ui.Stdout(), `todo - a tiny in-memory to-do list

Usage:
  todo [flags] [subcommand]

Subcommands:
  run        Open the task window (default)
  version    Print the version
  help       Show this help

Flags:
  -dark              Start in dark mode
  -config <path>     TOML config file (default: <user config dir>/tada/config.toml)
  -log-file <path>   Write logs to a file
  -log-level <lvl>   debug, info, warn, error
  -char-limit <n>    Maximum task length

Tasks are kept in memory and discarded on exit.
`)
}

func doRun(opt Options) int {
	cfg := opt.Config
	if cfg == nil {
		cfg = &config.Config{CharLimit: config.DefaultCharLimit, Log: config.LogConfig{Level: config.DefaultLogLevel}}
	}

	logger, closeLog, err := logging.New(logging.Options{File: cfg.Log.File, Level: cfg.Log.Level})
	if err != nil {
		ui.Fail("log: " + err.Error())
		return 1
	}
	defer closeLog()

	logger.Info("starting", "version", Version, "dark", cfg.Dark, "config", cfg.File)
	if err := startTUI(memstore.New(),
		tui.WithDark(cfg.Dark),
		tui.WithCharLimit(cfg.CharLimit),
		tui.WithLogger(logger),
	); err != nil {
		logger.Error("tui exited", "err", err)
		ui.Fail("tui: " + err.Error())
		return 1
	}
	logger.Info("bye")
	return 0
}
