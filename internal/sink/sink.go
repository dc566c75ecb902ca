// Package sink persists the combined table. Output is staged in a temporary
// file next to the destination and renamed into place only after a complete
// write, so a failed run never leaves a truncated output behind.
package sink

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"

	"github.com/yi-working/csvconcat/internal/config"
	"github.com/yi-working/csvconcat/internal/csvfile"
	"github.com/yi-working/csvconcat/internal/table"
)

// Result describes a committed output file.
type Result struct {
	Path  string
	Rows  int
	Bytes int64
}

// WriteFile encodes t in the given format and atomically replaces path.
// The parent directory must already exist.
func WriteFile(path string, format config.OutputFormat, t *table.Table) (Result, error) {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".tmp-*")
	if err != nil {
		return Result{}, err
	}
	committed := false
	defer func() {
		if !committed {
			tmp.Close()
			os.Remove(tmp.Name())
		}
	}()

	if err := encode(tmp, format, t); err != nil {
		return Result{}, err
	}
	if err := tmp.Sync(); err != nil {
		return Result{}, err
	}
	fi, err := tmp.Stat()
	if err != nil {
		return Result{}, err
	}
	if err := tmp.Close(); err != nil {
		return Result{}, err
	}
	if err := os.Chmod(tmp.Name(), 0o644); err != nil {
		return Result{}, err
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return Result{}, err
	}
	committed = true

	return Result{Path: path, Rows: t.Len(), Bytes: fi.Size()}, nil
}

func encode(f *os.File, format config.OutputFormat, t *table.Table) error {
	bw := bufio.NewWriter(f)
	var err error
	switch format {
	case config.FormatCSV:
		err = csvfile.Write(bw, t)
	case config.FormatParquet:
		err = writeParquet(bw, t)
	default:
		err = fmt.Errorf("unsupported output format %q", format)
	}
	if err != nil {
		return err
	}
	return bw.Flush()
}
