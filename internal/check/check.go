// Package check provides run diagnostics (--check mode) and the pre-run
// validation (Preflight) for the input directory and the output location.
package check

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/yi-working/csvconcat/internal/config"
	"github.com/yi-working/csvconcat/internal/pipeline"
)

// Logger is the subset of *logging.Logger that RunCheck writes to.
type Logger interface {
	Info(string, ...interface{})
	Success(string, ...interface{})
	Warn(string, ...interface{})
	Error(string, ...interface{})
}

// RunCheck reports on the input directory, the files it would merge, and
// whether the output location accepts writes. It returns false when a run
// with cfg would fail before reading any file.
func RunCheck(cfg *config.Config, log Logger) bool {
	log.Info("=== System Check ===")
	ok := true

	files, err := pipeline.Discover(cfg.InputDir, cfg.Match)
	switch {
	case err != nil:
		log.Error("Input: %v", err)
		ok = false
	case len(files) == 0:
		log.Warn("Input: %s has no entries containing %q", cfg.InputDir, cfg.Match)
		ok = false
	default:
		log.Success("Input: %s (%d matching files)", cfg.InputDir, len(files))
		for _, f := range files {
			log.Info("  %s", f)
		}
	}

	if cfg.OutputPath == "" {
		log.Warn("Output: not set")
		return false
	}
	if err := checkOutputWritable(cfg.OutputPath); err != nil {
		log.Error("Output: %v", err)
		ok = false
	} else {
		log.Success("Output: %s is writable", cfg.OutputPath)
	}
	return ok
}

// Preflight is the fail-fast subset of RunCheck: the input directory must
// be listable and the output directory must accept new files. It does not
// require any input to match; Run reports that case itself.
func Preflight(cfg *config.Config) error {
	fi, err := os.Stat(cfg.InputDir)
	if err != nil {
		return fmt.Errorf("%w: %w", pipeline.ErrInputDir, err)
	}
	if !fi.IsDir() {
		return fmt.Errorf("%w: %s is not a directory", pipeline.ErrInputDir, cfg.InputDir)
	}
	if cfg.DryRun {
		return nil
	}
	if err := checkOutputWritable(cfg.OutputPath); err != nil {
		return fmt.Errorf("%w: %w", pipeline.ErrOutputUnwritable, err)
	}
	return nil
}

// checkOutputWritable verifies that the output's parent directory exists and
// that a file can be created in it. An existing output that is a directory
// is rejected.
func checkOutputWritable(path string) error {
	if fi, err := os.Stat(path); err == nil && fi.IsDir() {
		return fmt.Errorf("%s is a directory", path)
	}
	dir := filepath.Dir(path)
	f, err := os.CreateTemp(dir, ".csvconcat-check-*")
	if err != nil {
		return err
	}
	name := f.Name()
	f.Close()
	return os.Remove(name)
}
