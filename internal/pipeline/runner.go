package pipeline

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/yi-working/csvconcat/internal/config"
	"github.com/yi-working/csvconcat/internal/csvfile"
	"github.com/yi-working/csvconcat/internal/display"
	"github.com/yi-working/csvconcat/internal/logging"
	"github.com/yi-working/csvconcat/internal/manifest"
	"github.com/yi-working/csvconcat/internal/naming"
	"github.com/yi-working/csvconcat/internal/sink"
	"github.com/yi-working/csvconcat/internal/table"
)

// FileResult records what one input contributed to the combined table.
type FileResult struct {
	Path    string
	Source  string
	Rows    int
	Columns []string
	Bytes   int64
}

// Merged is the outcome of [Merge]: the combined table plus per-file detail.
type Merged struct {
	Table *table.Table
	Files []FileResult
}

// Run is the top-level batch entry point: merge every matching file, then
// write the combined table (unless DryRun) and the optional manifest.
// Version is recorded in the manifest.
func Run(ctx context.Context, cfg *config.Config, log *logging.Logger, version string) (RunStats, error) {
	var stats RunStats

	merged, err := Merge(ctx, cfg, log, &stats)
	if err != nil {
		return stats, err
	}

	if cfg.DryRun {
		printReport(os.Stdout, merged, cfg)
		log.Success("[DRY] Would write %s to %s", display.FormatShape(stats.Rows, stats.Columns), cfg.OutputPath)
		return stats, nil
	}

	if ctx.Err() != nil {
		return stats, fmt.Errorf("%w before writing %s", ErrInterrupted, cfg.OutputPath)
	}

	start := time.Now()
	res, err := sink.WriteFile(cfg.OutputPath, cfg.Format, merged.Table)
	if err != nil {
		return stats, fmt.Errorf("%w: %w", ErrOutputUnwritable, err)
	}
	stats.OutputBytes = res.Bytes
	log.Debug(cfg.Verbose, "Wrote %s in %s", cfg.OutputPath, time.Since(start).Round(time.Millisecond))

	if cfg.ManifestPath != "" {
		m := buildManifest(cfg, merged, version)
		if err := manifest.Write(cfg.ManifestPath, m); err != nil {
			return stats, fmt.Errorf("%w: %w", ErrManifest, err)
		}
		log.Info("Manifest: %s", cfg.ManifestPath)
	}

	logSummary(cfg, log, &stats)
	return stats, nil
}

// Merge discovers, loads, tags and concatenates the inputs. It never writes.
// stats may be nil.
func Merge(ctx context.Context, cfg *config.Config, log *logging.Logger, stats *RunStats) (*Merged, error) {
	if stats == nil {
		stats = &RunStats{}
	}

	files, err := Discover(cfg.InputDir, cfg.Match)
	if err != nil {
		return nil, err
	}
	stats.Total = len(files)
	if len(files) == 0 {
		return nil, fmt.Errorf("%w: no entry of %s contains %q", ErrNoInputFiles, cfg.InputDir, cfg.Match)
	}
	log.Info("Found %d files", stats.Total)

	merged := &Merged{Files: make([]FileResult, 0, len(files))}
	tables := make([]*table.Table, 0, len(files))
	for i, path := range files {
		stats.Current = i + 1
		if ctx.Err() != nil {
			return nil, fmt.Errorf("%w while loading %s", ErrInterrupted, path)
		}

		t, fr, err := loadFile(cfg, path)
		if err != nil {
			return nil, err
		}
		log.Info("[%d/%d] %s: %s rows, %d columns", stats.Current, stats.Total,
			filepath.Base(path), display.FormatCount(fr.Rows), len(fr.Columns))
		log.Debug(cfg.Verbose, "  %s = %q", cfg.SourceColumn, fr.Source)

		tables = append(tables, t)
		merged.Files = append(merged.Files, fr)
		stats.Loaded++
		stats.InputBytes += fr.Bytes
	}

	merged.Table = table.Concat(tables...)
	merged.Table.MoveToEnd(cfg.SourceColumn)
	stats.Rows = merged.Table.Len()
	stats.Columns = merged.Table.Width()
	return merged, nil
}

// loadFile reads one input and assigns its source tag.
func loadFile(cfg *config.Config, path string) (*table.Table, FileResult, error) {
	fr := FileResult{Path: path, Source: naming.SourceTag(path, cfg.SourceMode)}

	t, err := csvfile.ReadFile(path)
	if err != nil {
		if errors.Is(err, csvfile.ErrMalformed) {
			return nil, fr, err
		}
		return nil, fr, fmt.Errorf("%w: %w", ErrReadInput, err)
	}
	if fi, err := os.Stat(path); err == nil {
		fr.Bytes = fi.Size()
	}

	fr.Rows = t.Len()
	fr.Columns = append([]string(nil), t.Columns...)
	t.Assign(cfg.SourceColumn, fr.Source)
	return t, fr, nil
}

func buildManifest(cfg *config.Config, merged *Merged, version string) *manifest.Manifest {
	m := &manifest.Manifest{
		GeneratedAt:  time.Now().UTC().Truncate(time.Second),
		Version:      version,
		InputDir:     cfg.InputDir,
		Output:       cfg.OutputPath,
		Format:       string(cfg.Format),
		SourceColumn: cfg.SourceColumn,
		SourceMode:   string(cfg.SourceMode),
		Rows:         merged.Table.Len(),
		Columns:      merged.Table.Columns,
	}
	for _, f := range merged.Files {
		m.Inputs = append(m.Inputs, manifest.Input{
			Path:    f.Path,
			Source:  f.Source,
			Rows:    f.Rows,
			Columns: f.Columns,
		})
	}
	return m
}

func logSummary(cfg *config.Config, log *logging.Logger, stats *RunStats) {
	log.Info("==============================")
	log.Success("Merged %d files into %s", stats.Loaded, cfg.OutputPath)
	log.Info("  Shape: %s", display.FormatShape(stats.Rows, stats.Columns))
	log.Info("  Size: input %s -> output %s (%d%%)",
		display.FormatBytes(stats.InputBytes),
		display.FormatBytes(stats.OutputBytes),
		stats.SizeRatio())
}
