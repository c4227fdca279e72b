package main

import (
	"context"

	"github.com/shipq/propcheck/cli"
	"github.com/shipq/propcheck/config"
	"github.com/shipq/propcheck/journal"
)

// historyCmd lists recent journaled runs of the example suite.
func historyCmd() {
	cfg, err := config.Load("")
	if err != nil {
		cli.FatalErr("loading config", err)
	}
	if cfg.JournalPath == "" {
		cli.Fatal("no [journal] path configured in propcheck.ini")
	}

	j, err := journal.Open(cfg.JournalPath)
	if err != nil {
		cli.FatalErr("opening journal", err)
	}
	defer j.Close()

	runs, err := j.RecentRuns(context.Background(), exampleSuiteName, 20)
	if err != nil {
		cli.FatalErr("reading journal", err)
	}
	if len(runs) == 0 {
		cli.Info("no recorded runs yet")
		return
	}

	for _, r := range runs {
		status := "ok"
		if r.Failed > 0 {
			status = "FAILED"
		}
		cli.Infof("#%d  %s  %d checks  %d failed  %s",
			r.RunID, r.RecordedAt.Format("2006-01-02 15:04:05"), r.Checks, r.Failed, status)
	}
}
