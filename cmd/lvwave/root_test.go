package main

import (
	"bytes"
	"context"
	"encoding/csv"
	"path/filepath"
	"strconv"
	"testing"

	parquet "github.com/parquet-go/parquet-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// execute runs the root command with args and captures both streams.
func execute(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	cmd := newRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err = cmd.ExecuteContext(context.Background())

	return out.String(), errOut.String(), err
}

// smallGrid keeps command tests fast: 64 one-hertz samples.
var smallGrid = []string{"--f-max", "64", "--delta-f", "1", "--f-min", "20", "--log.level", "error"}

func TestStrainCmd_CSV(t *testing.T) {
	out, _, err := execute(t, append([]string{"strain", "--format", "csv", "--workers", "2"}, smallGrid...)...)
	require.NoError(t, err)

	recs, err := csv.NewReader(bytes.NewBufferString(out)).ReadAll()
	require.NoError(t, err)
	require.Len(t, recs, 65)
	assert.Equal(t, []string{"frequency", "plus_re", "plus_im", "cross_re", "cross_im"}, recs[0])

	for _, rec := range recs[1:] {
		f, err := strconv.ParseFloat(rec[0], 64)
		require.NoError(t, err)
		plus, err := strconv.ParseFloat(rec[1], 64)
		require.NoError(t, err)
		if f < 20 {
			assert.Zero(t, plus, "%g Hz", f)
		} else {
			assert.NotZero(t, plus, "%g Hz", f)
		}
	}
}

func TestStrainCmd_RawParquetFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "h.parquet")
	args := append([]string{"strain", "--polarize=false", "--format", "parquet", "--output", path}, smallGrid...)
	out, _, err := execute(t, args...)
	require.NoError(t, err)
	assert.Empty(t, out)

	rows, err := parquet.ReadFile[strainRow](path)
	require.NoError(t, err)
	require.Len(t, rows, 64)
	assert.Equal(t, 30.0, rows[30].Frequency)
	assert.NotZero(t, rows[30].Re)
	assert.Zero(t, rows[10].Re)
}

func TestProbeCmd(t *testing.T) {
	out, _, err := execute(t, "probe", "--log.level", "error")
	require.NoError(t, err)
	assert.Contains(t, out, "merger-ringdown")
	assert.Contains(t, out, "inspiral")
}

func TestBenchCmd(t *testing.T) {
	out, _, err := execute(t, append([]string{"bench", "--repeat", "2"}, smallGrid...)...)
	require.NoError(t, err)
	assert.Contains(t, out, "Average evaluation time:")
	assert.Contains(t, out, "(2 runs, 1 workers)")
}

func TestTimeDomainCmd(t *testing.T) {
	out, _, err := execute(t, append([]string{"timedomain", "--format", "csv"}, smallGrid...)...)
	require.NoError(t, err)

	recs, err := csv.NewReader(bytes.NewBufferString(out)).ReadAll()
	require.NoError(t, err)
	require.Len(t, recs, 129)
	assert.Equal(t, []string{"time", "strain"}, recs[0])
	assert.Equal(t, "-0.5", recs[1][0])
}

func TestRootCmd_Errors(t *testing.T) {
	_, _, err := execute(t, "strain", "--model", "eob")
	assert.ErrorIs(t, err, errUnknownModel)

	_, _, err = execute(t, "strain", "--mass-ratio", "3", "--log.level", "error")
	assert.Error(t, err)

	_, _, err = execute(t, "strain", "--log.level", "shout")
	assert.Error(t, err)

	_, _, err = execute(t, "strain", "extra")
	assert.Error(t, err)
}

func TestRootCmd_LogsToStderr(t *testing.T) {
	_, stderr, err := execute(t, append([]string{"probe", "--log.format", "json"}, smallGrid[:4]...)...)
	require.NoError(t, err)
	assert.Empty(t, stderr, "probe logs nothing at info")

	out, stderr, err := execute(t, "strain", "--f-max", "32", "--delta-f", "1", "--log.format", "json", "--format", "csv")
	require.NoError(t, err)
	assert.NotEmpty(t, out)
	assert.Contains(t, stderr, `"msg":"strain written"`)
	assert.Contains(t, stderr, `"logger":"strain"`)
}

func TestRootCmd_RejectsZeroFMin(t *testing.T) {
	_, _, err := execute(t, "timedomain", "--f-min", "0", "--f-max", "64", "--delta-f", "1")
	assert.ErrorIs(t, err, errBadGrid)
}
