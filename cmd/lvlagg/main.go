// Command lvlagg applies a group-wise aggregation kernel to a CSV file:
// rows are grouped by one key column and every other numeric column is
// reduced with the selected kernel.
//
// Example:
//
//	lvlagg --group city --agg mean weather.csv
//	cat trades.csv | lvlagg --group symbol --agg median
package main

import (
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvlagg/core"
	"github.com/katalvlaran/lvlagg/na"
	"github.com/katalvlaran/lvlagg/reduce"
)

type opts struct {
	group    string
	agg      string
	ddof     int64
	minCount int64
}

func main() {
	var o opts

	root := &cobra.Command{
		Use:   "lvlagg [FILE]",
		Short: "Group-wise CSV aggregation",
		Long: `lvlagg reads a CSV with a header row, groups rows by the --group
column, and reduces every other numeric column with the selected kernel.
Cells that fail to parse as numbers are treated as missing. Reads stdin
when no FILE is given.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			in := os.Stdin
			if len(args) == 1 && args[0] != "-" {
				f, err := os.Open(args[0])
				if err != nil {
					return err
				}
				defer f.Close()
				in = f
			}

			return run(in, os.Stdout, o)
		},
	}

	root.Flags().StringVarP(&o.group, "group", "g", "", "name of the key column to group by (required)")
	root.Flags().StringVarP(&o.agg, "agg", "a", "mean", "kernel: sum|mean|min|max|median|var|count")
	root.Flags().Int64Var(&o.ddof, "ddof", 1, "delta degrees of freedom for var")
	root.Flags().Int64Var(&o.minCount, "min-count", -1, "minimum non-missing observations per cell (sum/min/max)")
	_ = root.MarkFlagRequired("group")

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "lvlagg:", err)
		os.Exit(1)
	}
}

// run parses the CSV, factorizes the key column into dense labels, and
// dispatches to the requested reducer.
func run(in io.Reader, w io.Writer, o opts) error {
	header, records, err := readCSV(in)
	if err != nil {
		return err
	}

	keyCol := -1
	for i, name := range header {
		if name == o.group {
			keyCol = i
		}
	}
	if keyCol < 0 {
		return fmt.Errorf("group column %q not found", o.group)
	}

	// Factorize group keys in first-appearance order.
	labels := make([]int, len(records))
	groupIdx := make(map[string]int)
	var groups []string
	for i, rec := range records {
		key := rec[keyCol]
		g, ok := groupIdx[key]
		if !ok {
			g = len(groups)
			groupIdx[key] = g
			groups = append(groups, key)
		}
		labels[i] = g
	}

	// Everything but the key column becomes a value column; cells that
	// fail to parse are missing (NaN).
	var valCols []int
	for i := range header {
		if i != keyCol {
			valCols = append(valCols, i)
		}
	}
	n, k, ngroups := len(records), len(valCols), len(groups)
	values, err := core.NewBlock[float64](n, k)
	if err != nil {
		return err
	}
	for i, rec := range records {
		for j, c := range valCols {
			v, perr := strconv.ParseFloat(rec[c], 64)
			if perr != nil {
				v = math.NaN()
			}
			values.Data[values.Index(i, j)] = v
		}
	}

	out, err := core.NewBlock[float64](ngroups, k)
	if err != nil {
		return err
	}
	counts := make([]int64, ngroups)

	switch o.agg {
	case "sum":
		ro := reduce.DefaultOptions()
		ro.MinCount = o.minCount
		err = reduce.Sum(na.Float[float64]{}, out, counts, values, labels, ro)
	case "mean":
		err = reduce.Mean(out, counts, values, labels, reduce.DefaultOptions())
	case "min":
		ro := reduce.DefaultOptions()
		ro.MinCount = o.minCount
		err = reduce.Min(na.Float[float64]{}, out, counts, values, labels, ro)
	case "max":
		ro := reduce.DefaultOptions()
		ro.MinCount = o.minCount
		err = reduce.Max(na.Float[float64]{}, out, counts, values, labels, ro)
	case "median":
		err = reduce.Median(out, counts, values, labels, reduce.DefaultOptions())
	case "var":
		vo := reduce.DefaultVarOptions()
		vo.DDof = o.ddof
		err = reduce.Var(out, counts, values, labels, vo)
	case "count":
		err = reduce.Mean(out, counts, values, labels, reduce.DefaultOptions())
	default:
		return fmt.Errorf("unknown aggregation %q", o.agg)
	}
	if err != nil {
		return err
	}

	return printTable(w, o.agg, header, valCols, groups, out, counts)
}

func readCSV(in io.Reader) (header []string, records [][]string, err error) {
	r := csv.NewReader(in)
	r.TrimLeadingSpace = true
	all, err := r.ReadAll()
	if err != nil {
		return nil, nil, err
	}
	if len(all) < 1 {
		return nil, nil, fmt.Errorf("empty input")
	}

	return all[0], all[1:], nil
}

func printTable(
	w io.Writer,
	agg string,
	header []string,
	valCols []int,
	groups []string,
	out core.Block[float64],
	counts []int64,
) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "group\tn")
	if agg != "count" {
		for _, c := range valCols {
			fmt.Fprintf(tw, "\t%s(%s)", agg, header[c])
		}
	}
	fmt.Fprintln(tw)

	for g, name := range groups {
		fmt.Fprintf(tw, "%s\t%d", name, counts[g])
		if agg != "count" {
			for j := 0; j < out.Cols; j++ {
				fmt.Fprintf(tw, "\t%.6g", out.Data[out.Index(g, j)])
			}
		}
		fmt.Fprintln(tw)
	}

	return tw.Flush()
}

