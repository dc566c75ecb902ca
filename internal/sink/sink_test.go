package sink

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xitongsys/parquet-go-source/local"
	"github.com/xitongsys/parquet-go/reader"

	"github.com/yi-working/csvconcat/internal/config"
	"github.com/yi-working/csvconcat/internal/table"
)

func sampleTable(t *testing.T) *table.Table {
	t.Helper()
	tb := table.New("x", "y", "source")
	require.NoError(t, tb.AppendStrings("1", "2", "data/raw_data/a"))
	one, src := "3", "data/raw_data/b"
	require.NoError(t, tb.Append([]*string{&one, nil, &src}))
	return tb
}

func TestWriteFile_CSV(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "hfea-ivf.csv")

	res, err := WriteFile(path, config.FormatCSV, sampleTable(t))
	require.NoError(t, err)

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "x,y,source\n1,2,data/raw_data/a\n3,,data/raw_data/b\n", string(b))
	assert.Equal(t, 2, res.Rows)
	assert.Equal(t, int64(len(b)), res.Bytes)

	fi, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o644), fi.Mode().Perm())
}

func TestWriteFile_OverwritesAndLeavesNoTemp(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.csv")
	require.NoError(t, os.WriteFile(path, []byte("stale contents that are longer than the new output\n"), 0o644))

	_, err := WriteFile(path, config.FormatCSV, table.New("only"))
	require.NoError(t, err)

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "only\n", string(b))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temporary file should be renamed away")
}

func TestWriteFile_MissingDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nope", "out.csv")
	_, err := WriteFile(path, config.FormatCSV, sampleTable(t))
	assert.Error(t, err)
	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr))
}

func TestWriteFile_FailureKeepsPreviousOutput(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.parquet")
	require.NoError(t, os.WriteFile(path, []byte("previous"), 0o644))

	_, err := WriteFile(path, config.FormatParquet, table.New("bad,name"))
	require.ErrorIs(t, err, ErrColumnName)

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "previous", string(b))
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temporary file should be removed on failure")
}

func TestWriteFile_Parquet(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "hfea-ivf.parquet")

	res, err := WriteFile(path, config.FormatParquet, sampleTable(t))
	require.NoError(t, err)
	assert.Equal(t, 2, res.Rows)

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Greater(t, len(b), 8)
	assert.True(t, bytes.HasPrefix(b, []byte("PAR1")), "missing leading magic")
	assert.True(t, bytes.HasSuffix(b, []byte("PAR1")), "missing trailing magic")

	fr, err := local.NewLocalFileReader(path)
	require.NoError(t, err)
	defer fr.Close()
	pr, err := reader.NewParquetReader(fr, nil, 1)
	require.NoError(t, err)
	defer pr.ReadStop()
	assert.Equal(t, int64(2), pr.GetNumRows())
}

func TestBuildParquetSchema_RejectsBadNames(t *testing.T) {
	for _, name := range []string{"a,b", "k=v", " padded", ""} {
		_, err := buildParquetSchema([]string{name})
		assert.ErrorIs(t, err, ErrColumnName, "name %q", name)
	}
	for _, cols := range [][]string{{"x", "X"}, {"source", "Source"}, {"a b", "a32b"}} {
		_, err := buildParquetSchema(cols)
		assert.ErrorIs(t, err, ErrColumnName, "columns %q", cols)
	}
	_, err := buildParquetSchema([]string{"x", "source", "Unnamed: 2", "x.1"})
	assert.NoError(t, err)
}

func TestWriteFile_ParquetCaseCollisionWritesNothing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.parquet")
	tb := table.New("x", "X")
	require.NoError(t, tb.AppendStrings("1", "2"))

	_, err := WriteFile(path, config.FormatParquet, tb)
	require.ErrorIs(t, err, ErrColumnName)
	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr), "output should not exist")
	entries, _ := os.ReadDir(filepath.Dir(path))
	assert.Empty(t, entries, "temp file left behind")
}
