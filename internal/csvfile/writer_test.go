package csvfile

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yi-working/csvconcat/internal/table"
)

func TestWrite(t *testing.T) {
	tb := table.New("x", "y", "source")
	one, src := "1", "data/raw_data/a"
	require.NoError(t, tb.Append([]*string{&one, nil, &src}))
	require.NoError(t, tb.AppendStrings("a,b", `q"t`, "data/raw_data/b"))

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, tb))

	want := "x,y,source\n" +
		"1,,data/raw_data/a\n" +
		"\"a,b\",\"q\"\"t\",data/raw_data/b\n"
	assert.Equal(t, want, buf.String())
}

func TestWrite_HeaderOnly(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, table.New("x", "y")))
	assert.Equal(t, "x,y\n", buf.String())
}

func TestWriteThenRead(t *testing.T) {
	in := "x,y\n1,\n\"multi\nline\",2\n"
	tb, err := Read(strings.NewReader(in))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, tb))
	assert.Equal(t, in, buf.String())
}
