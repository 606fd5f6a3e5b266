// Command wildwatch watches a directory for filesystem events and reports
// create/rename events whose resulting path matches a compiled wildcard
// pattern. The pattern is compiled exactly once at startup; the resulting
// *wildmatch.Matcher is shared, without further synchronization, between
// the event-handling goroutine and a periodic summary-printing goroutine,
// demonstrating that a compiled matcher is safe for concurrent readers.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync/atomic"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/gowildcard/wildmatch"
	"github.com/gowildcard/wildmatch/internal/cliconfig"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	if err := newRootCommand(logger).Execute(); err != nil {
		logger.Error("wildwatch failed", "error", err)
		os.Exit(1)
	}
}

func newRootCommand(logger *slog.Logger) *cobra.Command {
	v := cliconfig.NewViper()

	cmd := &cobra.Command{
		Use:   "wildwatch",
		Short: "Report filesystem events whose path matches a compiled wildcard pattern",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := cliconfig.Load(v)
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}

			return runWildwatch(cmd, logger, cfg)
		},
	}

	if err := cliconfig.BindFlags(cmd.Flags(), v); err != nil {
		logger.Error("bind flags", "error", err)
		os.Exit(1)
	}

	return cmd
}

func runWildwatch(cmd *cobra.Command, logger *slog.Logger, cfg *cliconfig.Config) error {
	flags := 0
	if cfg.IgnoreCase {
		flags = wildmatch.IgnoreCase
	}

	matcher, err := wildmatch.Compile(cfg.Pattern, flags)
	if err != nil {
		return fmt.Errorf("compile pattern: %w", err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer watcher.Close()

	if err := watcher.Add(cfg.Root); err != nil {
		return fmt.Errorf("watch %s: %w", cfg.Root, err)
	}

	var matchCount atomic.Int64

	done := make(chan struct{})

	go printSummaryPeriodically(cmd, matcher, &matchCount, done)

	defer close(done)

	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}

			if !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}

			candidate := event.Name
			if cfg.Basename {
				candidate = filepath.Base(event.Name)
			}

			if matcher.Matches(candidate) {
				matchCount.Add(1)
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", event.Op, event.Name)
			}

		case werr, ok := <-watcher.Errors:
			if !ok {
				return nil
			}

			logger.Warn("watch error", "error", werr)
		}
	}
}

// printSummaryPeriodically logs a running match count every few seconds,
// reading the same *wildmatch.Matcher concurrently from the event loop's
// goroutine — the point being that neither goroutine needs a lock to do so.
func printSummaryPeriodically(cmd *cobra.Command, matcher *wildmatch.Matcher, matchCount *atomic.Int64, done <-chan struct{}) {
	ticker := time.NewTicker(5 * time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-done:
			return
		case <-ticker.C:
			fmt.Fprintf(cmd.ErrOrStderr(), "matcher has %d nodes, %d matches so far\n", matcher.Len(), matchCount.Load())
		}
	}
}
