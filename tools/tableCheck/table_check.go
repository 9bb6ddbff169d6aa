package main

import (
	"bufio"
	"encoding/csv"
	"flag"
	"fmt"
	"io"
	"math"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/notargets/compflow/relations"
	"github.com/notargets/compflow/types"
)

var (
	csvFile   string
	gamma     = 1.4
	tolerance = 1.e-3
)

// Checks the relations against a CSV of tabulated values, one entry per line:
//
//	family, M, key, expected[, theta in degrees]
//
// where key is a name from the family's Ratios() map, e.g. "normal, 2, p2_p1, 4.5".
// Angles (beta, theta, nu, mu) are tabulated in degrees.
func main() {
	csvFilePtr := flag.String("csvFile", csvFile, "file containing tabulated reference values")
	gammaPtr := flag.Float64("gamma", gamma, "ratio of specific heats of the table")
	tolPtr := flag.Float64("tol", tolerance, "largest relative error accepted")
	flag.Parse()
	csvFile, gamma, tolerance = *csvFilePtr, *gammaPtr, *tolPtr
	if len(csvFile) == 0 {
		flag.Usage()
		os.Exit(1)
	}
	g, err := relations.NewGas(gamma)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	fmt.Printf("Input file: %v\n", csvFile)
	f, err := os.Open(csvFile)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer f.Close()
	var entries []Entry
	if entries, err = readCSV(f); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	studies := check(g, entries)
	if failed := report(os.Stdout, studies, tolerance); failed > 0 {
		fmt.Printf("%d entries exceed the tolerance %g\n", failed, tolerance)
		os.Exit(2)
	}
}

type Entry struct {
	Family   types.Family
	M        float64
	Key      string
	Expected float64
	Theta    float64 // radians
	Line     int
}

type Result struct {
	Entry
	Calculated, RelErr float64
	Err                error
}

type TableStudy struct {
	family  types.Family
	results []Result
	maxErr  float64
}

func (ts *TableStudy) Add(r Result) {
	ts.results = append(ts.results, r)
	if r.Err == nil && r.RelErr > ts.maxErr {
		ts.maxErr = r.RelErr
	}
}

func readCSV(r io.Reader) (entries []Entry, err error) {
	var (
		records [][]string
	)
	cr := csv.NewReader(bufio.NewReader(r))
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true
	cr.Comment = '#'
	if records, err = cr.ReadAll(); err != nil {
		return
	}
	for i, rec := range records {
		if len(rec) < 4 {
			err = fmt.Errorf("line %d: need family, M, key, expected, have %q", i+1, rec)
			return
		}
		if i == 0 && strings.EqualFold(rec[0], "family") {
			continue // header
		}
		e := Entry{Key: strings.TrimSpace(rec[2]), Line: i + 1}
		if e.Family, err = types.ParseFamily(rec[0]); err != nil {
			err = fmt.Errorf("line %d: %w", i+1, err)
			return
		}
		if e.M, err = strconv.ParseFloat(strings.TrimSpace(rec[1]), 64); err != nil {
			err = fmt.Errorf("line %d: Mach number: %w", i+1, err)
			return
		}
		if e.Expected, err = strconv.ParseFloat(strings.TrimSpace(rec[3]), 64); err != nil {
			err = fmt.Errorf("line %d: expected value: %w", i+1, err)
			return
		}
		if len(rec) > 4 && strings.TrimSpace(rec[4]) != "" {
			var theta float64
			if theta, err = strconv.ParseFloat(strings.TrimSpace(rec[4]), 64); err != nil {
				err = fmt.Errorf("line %d: theta: %w", i+1, err)
				return
			}
			e.Theta = theta * math.Pi / 180
		}
		entries = append(entries, e)
	}
	return
}

func ratios(g relations.Gas, e Entry) (m map[string]float64, err error) {
	switch e.Family {
	case types.Isentropic:
		var ip relations.IsentropicProperties
		ip, err = g.Isentropic(e.M)
		m = ip.Ratios()
	case types.NormalShock:
		var ns relations.NormalShockProperties
		ns, err = g.NormalShock(e.M)
		m = ns.Ratios()
	case types.ObliqueShock:
		var ob relations.ObliqueShockProperties
		ob, err = g.ObliqueShock(e.M, e.Theta, types.WeakShock)
		m = ob.Ratios()
	case types.Expansion:
		var ep relations.ExpansionProperties
		ep, err = g.Expansion(e.M)
		m = ep.Ratios()
	}
	return
}

var angleKeys = map[string]bool{"beta": true, "theta": true, "nu": true, "mu": true}

// check evaluates every entry, grouped by family
func check(g relations.Gas, entries []Entry) (studies map[types.Family]*TableStudy) {
	studies = make(map[types.Family]*TableStudy)
	for _, e := range entries {
		ts, ok := studies[e.Family]
		if !ok {
			ts = &TableStudy{family: e.Family}
			studies[e.Family] = ts
		}
		r := Result{Entry: e}
		m, err := ratios(g, e)
		switch {
		case err != nil:
			r.Err = err
		default:
			val, found := m[e.Key]
			if !found {
				r.Err = fmt.Errorf("no %s value named %q", e.Family, e.Key)
				break
			}
			if angleKeys[e.Key] {
				val *= 180 / math.Pi
			}
			r.Calculated = val
			r.RelErr = math.Abs((e.Expected - val) / e.Expected)
		}
		ts.Add(r)
	}
	return
}

// report prints every study and returns the number of failed entries
func report(w io.Writer, studies map[types.Family]*TableStudy, tol float64) (failed int) {
	fams := make([]int, 0, len(studies))
	for f := range studies {
		fams = append(fams, int(f))
	}
	sort.Ints(fams)
	for _, f := range fams {
		ts := studies[types.Family(f)]
		fmt.Fprintf(w, "Family = %s, Entries = %d, Max Relative Error = %8.2e\n",
			ts.family, len(ts.results), ts.maxErr)
		for _, r := range ts.results {
			if r.Err != nil {
				failed++
				fmt.Fprintf(w, "%4d, M = %v, %s: %v\n", r.Line, r.M, r.Key, r.Err)
				continue
			}
			mark := ""
			if r.RelErr > tol {
				failed++
				mark = " FAIL"
			}
			fmt.Fprintf(w, "%4d, M = %v, %s, %v, %v, %8.2e%s\n",
				r.Line, r.M, r.Key, r.Expected, r.Calculated, r.RelErr, mark)
		}
	}
	return
}
