package main

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"text/tabwriter"

	parquet "github.com/parquet-go/parquet-go"
)

// Output formats accepted by --format.
const (
	formatTable   = "table"
	formatCSV     = "csv"
	formatParquet = "parquet"
)

// record is one output row. Column order of header and values must match.
type record interface {
	header() []string
	values() []float64
}

// polarizedRow is one frequency sample of h₊ and h×.
type polarizedRow struct {
	Frequency float64 `parquet:"frequency"`
	PlusRe    float64 `parquet:"plus_re"`
	PlusIm    float64 `parquet:"plus_im"`
	CrossRe   float64 `parquet:"cross_re"`
	CrossIm   float64 `parquet:"cross_im"`
}

func (polarizedRow) header() []string {
	return []string{"frequency", "plus_re", "plus_im", "cross_re", "cross_im"}
}

func (r polarizedRow) values() []float64 {
	return []float64{r.Frequency, r.PlusRe, r.PlusIm, r.CrossRe, r.CrossIm}
}

// strainRow is one frequency sample of the raw strain h.
type strainRow struct {
	Frequency float64 `parquet:"frequency"`
	Re        float64 `parquet:"re"`
	Im        float64 `parquet:"im"`
}

func (strainRow) header() []string { return []string{"frequency", "re", "im"} }

func (r strainRow) values() []float64 { return []float64{r.Frequency, r.Re, r.Im} }

// timeRow is one time-domain sample.
type timeRow struct {
	Time   float64 `parquet:"time"`
	Strain float64 `parquet:"strain"`
}

func (timeRow) header() []string { return []string{"time", "strain"} }

func (r timeRow) values() []float64 { return []float64{r.Time, r.Strain} }

// writeRows encodes rows to w in the given format.
func writeRows[T record](w io.Writer, format string, rows []T) error {
	switch format {
	case formatTable:
		return writeTable(w, rows)
	case formatCSV:
		return writeCSV(w, rows)
	case formatParquet:
		pw := parquet.NewGenericWriter[T](w, parquet.Compression(&parquet.Snappy))
		if _, err := pw.Write(rows); err != nil {
			return fmt.Errorf("parquet write: %w", err)
		}
		if err := pw.Close(); err != nil {
			return fmt.Errorf("parquet close: %w", err)
		}
		return nil
	default:
		return fmt.Errorf("%q: %w", format, errUnknownFormat)
	}
}

func writeTable[T record](w io.Writer, rows []T) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	var zero T
	for _, h := range zero.header() {
		fmt.Fprintf(tw, "%s\t", h)
	}
	fmt.Fprintln(tw)
	for _, r := range rows {
		for _, x := range r.values() {
			fmt.Fprintf(tw, "%.8e\t", x)
		}
		fmt.Fprintln(tw)
	}

	return tw.Flush()
}

func writeCSV[T record](w io.Writer, rows []T) error {
	cw := csv.NewWriter(w)
	var zero T
	if err := cw.Write(zero.header()); err != nil {
		return err
	}
	line := make([]string, len(zero.header()))
	for _, r := range rows {
		for i, x := range r.values() {
			line[i] = strconv.FormatFloat(x, 'g', -1, 64)
		}
		if err := cw.Write(line); err != nil {
			return err
		}
	}
	cw.Flush()

	return cw.Error()
}

// openOutput returns path opened for writing, or fallback when path is empty.
// The returned close function is always safe to call.
func openOutput(path string, fallback io.Writer) (io.Writer, func() error, error) {
	if path == "" {
		return fallback, func() error { return nil }, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, nil, fmt.Errorf("create output: %w", err)
	}

	return f, f.Close, nil
}
