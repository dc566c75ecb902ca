// Package csvfile decodes CSV files into tables and encodes tables back to
// CSV text.
//
// Decoding follows the conventions the merged datasets were originally
// produced with: a UTF-8 byte order mark is dropped, blank lines are
// skipped, blank header cells become "Unnamed: <i>", repeated header names
// are numbered "x", "x.1", "x.2", short rows are padded with missing
// cells, and empty cells are missing. A row longer than the header, or a
// cell that is not valid UTF-8, is an error.
package csvfile

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"unicode/utf8"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"github.com/yi-working/csvconcat/internal/table"
)

// ErrMalformed marks input that could not be parsed as a CSV table.
var ErrMalformed = errors.New("malformed CSV")

// ReadFile opens path and decodes it with [Read].
func ReadFile(path string) (*table.Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	t, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return t, nil
}

// Read decodes a whole CSV stream. The first record is the header.
func Read(r io.Reader) (*table.Table, error) {
	cr := csv.NewReader(transform.NewReader(bufio.NewReader(r), unicode.BOMOverride(transform.Nop)))
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	header, err := cr.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("%w: no columns to parse", ErrMalformed)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	if err := checkUTF8(cr, header); err != nil {
		return nil, err
	}

	t := table.New(headerNames(header)...)
	width := t.Width()
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
		}
		if len(rec) > width {
			line, _ := cr.FieldPos(0)
			return nil, fmt.Errorf("%w: line %d: expected %d fields, saw %d", ErrMalformed, line, width, len(rec))
		}
		if err := checkUTF8(cr, rec); err != nil {
			return nil, err
		}

		row := make([]*string, width)
		for i := range rec {
			if rec[i] != "" {
				row[i] = &rec[i]
			}
		}
		if err := t.Append(row); err != nil {
			return nil, err
		}
	}
	return t, nil
}

// checkUTF8 rejects a record holding bytes that are not UTF-8, so they can
// never reach the merged output.
func checkUTF8(cr *csv.Reader, rec []string) error {
	for i, cell := range rec {
		if !utf8.ValidString(cell) {
			line, _ := cr.FieldPos(i)
			return fmt.Errorf("%w: line %d: invalid UTF-8", ErrMalformed, line)
		}
	}
	return nil
}

// headerNames fills blank names and numbers repeats so every column name in
// the table is unique.
func headerNames(header []string) []string {
	names := make([]string, len(header))
	next := make(map[string]int, len(header))
	for i, name := range header {
		if name == "" {
			name = fmt.Sprintf("Unnamed: %d", i)
		}
		if n, dup := next[name]; dup {
			base := name
			for {
				name = fmt.Sprintf("%s.%d", base, n)
				n++
				if _, taken := next[name]; !taken {
					break
				}
			}
			next[base] = n
		}
		next[name] = 1
		names[i] = name
	}
	return names
}
