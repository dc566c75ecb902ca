package check

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yi-working/csvconcat/internal/config"
	"github.com/yi-working/csvconcat/internal/pipeline"
)

type fakeLogger struct {
	lines []string
}

func (f *fakeLogger) add(level, format string, args []interface{}) {
	f.lines = append(f.lines, level+" "+fmt.Sprintf(format, args...))
}
func (f *fakeLogger) Info(format string, args ...interface{})    { f.add("INFO", format, args) }
func (f *fakeLogger) Success(format string, args ...interface{}) { f.add("SUCCESS", format, args) }
func (f *fakeLogger) Warn(format string, args ...interface{})    { f.add("WARN", format, args) }
func (f *fakeLogger) Error(format string, args ...interface{})   { f.add("ERROR", format, args) }

func layout(t *testing.T) config.Config {
	t.Helper()
	root := t.TempDir()
	in := filepath.Join(root, "raw_data")
	require.NoError(t, os.MkdirAll(in, 0o755))
	cfg := config.DefaultConfig()
	cfg.InputDir = in
	cfg.OutputPath = filepath.Join(root, "hfea-ivf.csv")
	return cfg
}

func TestRunCheck_Healthy(t *testing.T) {
	cfg := layout(t)
	require.NoError(t, os.WriteFile(filepath.Join(cfg.InputDir, "a.csv"), []byte("x\n1\n"), 0o644))

	log := &fakeLogger{}
	assert.True(t, RunCheck(&cfg, log), "lines: %v", log.lines)
	assert.Contains(t, log.lines, "SUCCESS Input: "+cfg.InputDir+" (1 matching files)")

	entries, err := os.ReadDir(filepath.Dir(cfg.OutputPath))
	require.NoError(t, err)
	assert.Len(t, entries, 1, "probe file must be cleaned up")
}

func TestRunCheck_NoMatches(t *testing.T) {
	cfg := layout(t)
	log := &fakeLogger{}
	assert.False(t, RunCheck(&cfg, log))
}

func TestRunCheck_MissingInput(t *testing.T) {
	cfg := layout(t)
	cfg.InputDir = filepath.Join(cfg.InputDir, "nope")
	log := &fakeLogger{}
	assert.False(t, RunCheck(&cfg, log))
}

func TestPreflight(t *testing.T) {
	cfg := layout(t)
	assert.NoError(t, Preflight(&cfg))

	missingIn := cfg
	missingIn.InputDir = filepath.Join(cfg.InputDir, "nope")
	assert.ErrorIs(t, Preflight(&missingIn), pipeline.ErrInputDir)

	fileIn := cfg
	fileIn.InputDir = filepath.Join(cfg.InputDir, "a.csv")
	require.NoError(t, os.WriteFile(fileIn.InputDir, []byte("x\n"), 0o644))
	assert.ErrorIs(t, Preflight(&fileIn), pipeline.ErrInputDir)

	missingOut := cfg
	missingOut.OutputPath = filepath.Join(filepath.Dir(cfg.OutputPath), "missing", "out.csv")
	assert.ErrorIs(t, Preflight(&missingOut), pipeline.ErrOutputUnwritable)

	dirOut := cfg
	dirOut.OutputPath = cfg.InputDir
	assert.ErrorIs(t, Preflight(&dirOut), pipeline.ErrOutputUnwritable)

	dry := missingOut
	dry.DryRun = true
	assert.NoError(t, Preflight(&dry))
}
