// Command csvconcat merges every CSV file in a directory into one table,
// tagging each row with the file it came from.
//
// With no flags it reads data/raw_data and writes data/hfea-ivf.csv.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/yi-working/csvconcat/internal/check"
	"github.com/yi-working/csvconcat/internal/config"
	"github.com/yi-working/csvconcat/internal/display"
	"github.com/yi-working/csvconcat/internal/logging"
	"github.com/yi-working/csvconcat/internal/pipeline"
)

// version and commit are injected at build time via -ldflags.
var (
	version = "1.0.0"
	commit  = "unknown"
)

func main() {
	os.Exit(run())
}

func run() int {
	// Phase 1: Bootstrap. The logger doesn't exist yet, so errors go
	// directly to stderr via fmt.
	cfg := config.DefaultConfig()
	if err := config.ParseFlags(&cfg, version, os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "csvconcat: %v\n", err)
		return 1
	}

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "csvconcat: %v\n", err)
		return 1
	}

	log, err := logging.NewLogger(&cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "csvconcat: %v\n", err)
		return 1
	}
	defer log.Close()

	// Phase 2: Logger available. All output goes through log from here on.
	if cfg.Verbose || cfg.CheckOnly {
		display.PrintBanner(os.Stdout)
	}

	if cfg.CheckOnly {
		if !check.RunCheck(&cfg, log) {
			return 1
		}
		return 0
	}

	if err := check.Preflight(&cfg); err != nil {
		log.Error("%v", err)
		return 1
	}
	if err := validateOutputPath(&cfg); err != nil {
		log.Error("%v", err)
		log.Error("Choose an output path outside: %s", cfg.InputDir)
		return 1
	}

	log.Debug(cfg.Verbose, "=== csvconcat v%s (%s) ===", version, commit)
	log.Info("In:  %s", cfg.InputDir)
	log.Info("Out: %s (%s)", cfg.OutputPath, cfg.Format)
	if cfg.DryRun {
		log.Warn("DRY RUN - no files will be written")
	}

	// Phase 3: Signal handling. Cancel the context on SIGINT/SIGTERM so the
	// pipeline stops before writing instead of leaving partial output.
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigCh)
	go func() {
		select {
		case <-sigCh:
			log.Warn("Received interrupt, aborting before output is written")
			cancel()
		case <-ctx.Done():
		}
	}()

	// Phase 4: Run pipeline (discover -> load -> tag -> concat -> write).
	if _, err := pipeline.Run(ctx, &cfg, log, version); err != nil {
		log.Error("%v", err)
		if errors.Is(err, pipeline.ErrNoInputFiles) {
			log.Error("Nothing to merge; add CSV files to %s", cfg.InputDir)
		}
		return 1
	}
	return 0
}

// validateOutputPath resolves both locations and rejects an output that the
// next run would read back as an input.
func validateOutputPath(cfg *config.Config) error {
	inputAbs, err := absPath(cfg.InputDir)
	if err != nil {
		return fmt.Errorf("input not found: %s", cfg.InputDir)
	}
	outDirAbs, err := absPath(filepath.Dir(cfg.OutputPath))
	if err != nil {
		if cfg.DryRun {
			return nil
		}
		return fmt.Errorf("cannot resolve output path: %s", cfg.OutputPath)
	}
	return cfg.ValidatePaths(inputAbs, filepath.Join(outDirAbs, filepath.Base(cfg.OutputPath)))
}

// absPath returns the absolute, symlink-resolved path for safe comparison
// of input vs output locations.
func absPath(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}
	return filepath.EvalSymlinks(abs)
}
