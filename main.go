package main

import (
	"flag"
	"fmt"
	"os"

	"travelhub/internal/config"
	"travelhub/internal/logger"
	"travelhub/internal/output"
	"travelhub/ui/console"
	"travelhub/ui/tui"
)

func main() {
	var (
		cfgPath = flag.String("config", "", "path to a YAML config file")
		from    = flag.String("from", "", "departure country (console mode)")
		to      = flag.String("to", "", "destination country (console mode)")
		purpose = flag.String("purpose", "", "travel purpose: tourism, business, study, work, transit (console mode)")
	)
	flag.Parse()

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	// Any selection flag switches to the one-shot console report.
	if *from != "" || *to != "" || *purpose != "" {
		os.Exit(runConsole(output.Query{From: *from, To: *to, Purpose: *purpose}))
	}

	log, err := logger.ForTUI(cfg.LogLevel, cfg.LogFormat, cfg.LogFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	if err := tui.Start(cfg, log); err != nil {
		fmt.Fprintf(os.Stderr, "Error running TUI: %v\n", err)
		os.Exit(1)
	}
}

func runConsole(q output.Query) int {
	res, _, err := output.Run(q)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 2
	}
	if res == nil {
		fmt.Fprintln(os.Stderr, "Select both a departure (-from) and a destination (-to) country.")
		return 2
	}
	console.Print(os.Stdout, *res)
	return 0
}

