// Command wildls walks a directory tree and prints every path whose
// basename or full relative path matches a compiled wildcard pattern. It
// is the Go-idiomatic analogue of the original source's
// list-matching-files examples: one compiles the pattern once up front by
// default, or, with --no-reuse, recompiles it for every visited entry to
// make the "compile is expensive, matching is cheap" tradeoff observable.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/gabriel-vasile/mimetype"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/gowildcard/wildmatch"
	"github.com/gowildcard/wildmatch/internal/cliconfig"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	if err := newRootCommand(logger).Execute(); err != nil {
		logger.Error("wildls failed", "error", err)
		os.Exit(1)
	}
}

func newRootCommand(logger *slog.Logger) *cobra.Command {
	v := cliconfig.NewViper()

	cmd := &cobra.Command{
		Use:   "wildls",
		Short: "List filesystem paths matching a compiled wildcard pattern",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := cliconfig.Load(v)
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}

			return runWildls(cmd, logger, cfg, afero.NewOsFs())
		},
	}

	if err := cliconfig.BindFlags(cmd.Flags(), v); err != nil {
		logger.Error("bind flags", "error", err)
		os.Exit(1)
	}

	return cmd
}

func runWildls(cmd *cobra.Command, logger *slog.Logger, cfg *cliconfig.Config, fs afero.Fs) error {
	flags := 0
	if cfg.IgnoreCase {
		flags = wildmatch.IgnoreCase
	}

	var matcher *wildmatch.Matcher

	if !cfg.NoReuse {
		m, err := wildmatch.Compile(cfg.Pattern, flags)
		if err != nil {
			return fmt.Errorf("compile pattern: %w", err)
		}

		matcher = m
	}

	afs := &afero.Afero{Fs: fs}

	visit := func(path string, info os.FileInfo) error {
		candidate := path
		if cfg.Basename {
			candidate = filepath.Base(path)
		}

		m := matcher
		if cfg.NoReuse {
			compiled, cerr := wildmatch.Compile(cfg.Pattern, flags)
			if cerr != nil {
				return fmt.Errorf("compile pattern: %w", cerr)
			}

			m = compiled
		}

		if !m.Matches(candidate) {
			return nil
		}

		kind := "unknown"

		f, ferr := afs.Open(path)
		if ferr == nil {
			defer f.Close()

			if mtype, derr := mimetype.DetectReader(f); derr == nil {
				kind = mtype.String()
			}
		}

		fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", path, kind)

		return nil
	}

	return walkDir(fs, cfg.Root, cfg.Follow, logger, visit)
}

// walkDir recursively visits every regular file under dir. Unlike
// afero.Walk, it distinguishes a symlink's own (unresolved) info, from
// afero.ReadDir, against its resolved target's info, from fs.Stat, so that
// follow controls whether a symlinked directory is descended into.
func walkDir(fs afero.Fs, dir string, follow bool, logger *slog.Logger, visit func(path string, info os.FileInfo) error) error {
	entries, err := afero.ReadDir(fs, dir)
	if err != nil {
		return fmt.Errorf("read dir %s: %w", dir, err)
	}

	for _, entry := range entries {
		path := filepath.Join(dir, entry.Name())

		info := entry
		if info.Mode()&os.ModeSymlink != 0 {
			if !follow {
				continue
			}

			resolved, serr := fs.Stat(path)
			if serr != nil {
				logger.Warn("resolve symlink failed", "path", path, "error", serr)
				continue
			}

			info = resolved
		}

		if info.IsDir() {
			if err := walkDir(fs, path, follow, logger, visit); err != nil {
				return err
			}

			continue
		}

		if err := visit(path, info); err != nil {
			return err
		}
	}

	return nil
}
