package manifest

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "meta", "run.yaml")
	m := &Manifest{
		GeneratedAt:  time.Date(2026, 10, 15, 9, 30, 0, 0, time.UTC),
		Version:      "1.0.0",
		InputDir:     "data/raw_data",
		Output:       "data/hfea-ivf.csv",
		Format:       "csv",
		SourceColumn: "source",
		SourceMode:   "strip",
		Rows:         3,
		Columns:      []string{"x", "y", "z", "source"},
		Inputs: []Input{
			{Path: "data/raw_data/a.csv", Source: "data/raw_data/a", Rows: 2, Columns: []string{"x", "y"}},
			{Path: "data/raw_data/b.csv", Source: "data/raw_data/b", Rows: 1, Columns: []string{"x", "z"}},
		},
	}

	require.NoError(t, Write(path, m))
	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, m, got)
}

func TestMarshal_Keys(t *testing.T) {
	b, err := Marshal(&Manifest{Output: "data/hfea-ivf.csv", Inputs: []Input{{Path: "a.csv"}}})
	require.NoError(t, err)
	s := string(b)
	assert.True(t, strings.Contains(s, "output: data/hfea-ivf.csv"), s)
	assert.True(t, strings.Contains(s, "- path: a.csv"), s)
}

func TestLoad_Missing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}
