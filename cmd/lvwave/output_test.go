package main

import (
	"bytes"
	"encoding/csv"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	parquet "github.com/parquet-go/parquet-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var sampleRows = []strainRow{
	{Frequency: 20, Re: 1.5e-22, Im: -3.25e-22},
	{Frequency: 20.25, Re: -2e-23, Im: 0},
	{Frequency: 20.5, Re: 0, Im: 7.125e-23},
}

func TestWriteRows_CSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, writeRows(&buf, formatCSV, sampleRows))

	recs, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, recs, len(sampleRows)+1)
	assert.Equal(t, []string{"frequency", "re", "im"}, recs[0])
	assert.Equal(t, []string{"20", "1.5e-22", "-3.25e-22"}, recs[1])
	assert.Equal(t, []string{"20.5", "0", "7.125e-23"}, recs[3])
}

func TestWriteRows_Table(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, writeRows(&buf, formatTable, []timeRow{{Time: -1, Strain: 2}}))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, []string{"time", "strain"}, strings.Fields(lines[0]))
	assert.Equal(t, []string{"-1.00000000e+00", "2.00000000e+00"}, strings.Fields(lines[1]))
}

func TestWriteRows_Parquet(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, writeRows(&buf, formatParquet, sampleRows))

	r := parquet.NewGenericReader[strainRow](bytes.NewReader(buf.Bytes()))
	defer r.Close()
	require.EqualValues(t, len(sampleRows), r.NumRows())

	got := make([]strainRow, len(sampleRows))
	n, err := r.Read(got)
	if !errors.Is(err, io.EOF) {
		require.NoError(t, err)
	}
	require.Equal(t, len(sampleRows), n)
	assert.Equal(t, sampleRows, got)
}

func TestWriteRows_UnknownFormat(t *testing.T) {
	err := writeRows(io.Discard, "hdf5", sampleRows)
	assert.ErrorIs(t, err, errUnknownFormat)
}

func TestOpenOutput(t *testing.T) {
	var fallback bytes.Buffer
	w, closeFn, err := openOutput("", &fallback)
	require.NoError(t, err)
	assert.Same(t, &fallback, w)
	assert.NoError(t, closeFn())

	path := filepath.Join(t.TempDir(), "out.csv")
	w, closeFn, err = openOutput(path, &fallback)
	require.NoError(t, err)
	_, err = io.WriteString(w, "frequency\n")
	require.NoError(t, err)
	require.NoError(t, closeFn())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "frequency\n", string(data))

	_, _, err = openOutput(filepath.Join(t.TempDir(), "no", "such", "dir.csv"), &fallback)
	assert.Error(t, err)
}
