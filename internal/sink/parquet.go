package sink

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/xitongsys/parquet-go-source/writerfile"
	"github.com/xitongsys/parquet-go/common"
	"github.com/xitongsys/parquet-go/parquet"
	"github.com/xitongsys/parquet-go/writer"

	"github.com/yi-working/csvconcat/internal/table"
)

// ErrColumnName is returned when a column name cannot be expressed in a
// parquet schema tag.
var ErrColumnName = errors.New("column name not representable in parquet schema")

const parquetParallelism = 4

// writeParquet writes every column as an optional UTF-8 byte array; missing
// cells become nulls.
func writeParquet(w io.Writer, t *table.Table) error {
	schemaDef, err := buildParquetSchema(t.Columns)
	if err != nil {
		return err
	}

	pfw := writerfile.NewWriterFile(struct{ io.Writer }{w})
	pw, err := writer.NewJSONWriter(schemaDef, pfw, parquetParallelism)
	if err != nil {
		return fmt.Errorf("parquet schema: %w", err)
	}
	pw.CompressionType = parquet.CompressionCodec_SNAPPY

	rec := make(map[string]*string, t.Width())
	for _, row := range t.Rows {
		for i, c := range t.Columns {
			rec[c] = row[i]
		}
		b, err := json.Marshal(rec)
		if err != nil {
			_ = pw.WriteStop()
			return err
		}
		if err := pw.Write(string(b)); err != nil {
			_ = pw.WriteStop()
			return fmt.Errorf("parquet write: %w", err)
		}
	}
	if err := pw.WriteStop(); err != nil {
		return fmt.Errorf("parquet finalize: %w", err)
	}
	return pfw.Close()
}

// buildParquetSchema renders the JSON schema for columns. parquet-go keys
// every field by common.StringToVariableName(name), so two names that map
// to the same identifier ("x" and "X", "a b" and "a32b") are rejected.
func buildParquetSchema(columns []string) (string, error) {
	fields := make([]map[string]string, 0, len(columns))
	inNames := make(map[string]string, len(columns))
	for _, name := range columns {
		if strings.ContainsAny(name, ",=") || strings.TrimSpace(name) != name || name == "" {
			return "", fmt.Errorf("%w: %q", ErrColumnName, name)
		}
		in := common.StringToVariableName(name)
		if prev, dup := inNames[in]; dup {
			return "", fmt.Errorf("%w: %q collides with %q", ErrColumnName, name, prev)
		}
		inNames[in] = name
		fields = append(fields, map[string]string{
			"Tag": fmt.Sprintf("name=%s, type=BYTE_ARRAY, convertedtype=UTF8, repetitiontype=OPTIONAL", name),
		})
	}
	out := map[string]any{
		"Tag":    "name=parquet_go_root, repetitiontype=REQUIRED",
		"Fields": fields,
	}
	b, err := json.Marshal(out)
	if err != nil {
		return "", err
	}
	return string(b), nil
}
