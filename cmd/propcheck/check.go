package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/shipq/propcheck/cli"
	"github.com/shipq/propcheck/config"
	"github.com/shipq/propcheck/journal"
	"github.com/shipq/propcheck/logging"
	"github.com/shipq/propcheck/render"
	"github.com/shipq/propcheck/runner"
	"github.com/shipq/propcheck/watch"
)

// checkCmd runs the example suite, once or under a file watcher.
func checkCmd(watchMode bool) {
	cfg, err := config.Load("")
	if err != nil {
		cli.FatalErr("loading config", err)
	}

	logger := logging.ProdLogger
	if cfg.Dev {
		logger = logging.DevLogger
	}
	logger = logging.ForSuite(logger, exampleSuiteName, cfg.Seed)

	var j *journal.Journal
	if cfg.JournalPath != "" {
		j, err = journal.Open(cfg.JournalPath)
		if err != nil {
			cli.FatalErr("opening journal", err)
		}
		defer j.Close()
	}

	runOnce := func() bool {
		s := exampleSuite(logger)
		results := s.Run(runner.Params{Seed: cfg.Seed, Runs: cfg.Runs})

		fmt.Print(render.Summary(s.Name(), results))

		if j != nil {
			if _, err := j.Append(context.Background(), s.Name(), results); err != nil {
				cli.Warnf("journal append failed: %v", err)
			}
		}

		ok := true
		for _, res := range results {
			if !res.Passed() {
				ok = false
			}
		}
		if !ok {
			cli.Reproducef(cfg.Seed)
		}
		return ok
	}

	if !watchMode {
		if !runOnce() {
			os.Exit(1)
		}
		return
	}

	if len(cfg.WatchPaths) == 0 {
		cli.Fatal("watch mode needs [watch] paths in propcheck.ini")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	runOnce()
	w := watch.New(cfg.WatchPaths, 0, logger)
	cli.Infof("watching %v (ctrl-c to stop)", cfg.WatchPaths)
	if err := w.Run(ctx, func() { runOnce() }); err != nil {
		cli.FatalErr("watcher", err)
	}
}
