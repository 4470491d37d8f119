// Codegen reads the supported currencies from currency_data.csv and writes
// the lookup tables of the money package to currency_data.go.
// It is run from the module root by go generate.
package main

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"go/format"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"text/template"
)

const (
	dataDir    = "scripts/currency"
	outputFile = "currency_data.go"

	// unknownCode must become index 0, the zero value of Currency.
	unknownCode = "XXX"
)

type currency struct {
	Name string
	Code string
	Num  string
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "codegen: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	in, err := os.Open(filepath.Join(dataDir, "currency_data.csv"))
	if err != nil {
		return err
	}
	defer func() { _ = in.Close() }()

	currs, err := parseCurrencies(in)
	if err != nil {
		return fmt.Errorf("parsing currencies: %w", err)
	}

	tmpl, err := template.New("currency_data.tmpl").
		Funcs(template.FuncMap{"lower": strings.ToLower}).
		ParseFiles(filepath.Join(dataDir, "currency_data.tmpl"))
	if err != nil {
		return err
	}
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, currs); err != nil {
		return fmt.Errorf("rendering template: %w", err)
	}
	src, err := format.Source(buf.Bytes())
	if err != nil {
		return fmt.Errorf("formatting output: %w", err)
	}
	return os.WriteFile(outputFile, src, 0o644) //nolint:gosec
}

// parseCurrencies reads Name,Code,Num records and returns them ordered by
// code, with the unknown currency first.
func parseCurrencies(r io.Reader) ([]currency, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = 3
	cr.TrimLeadingSpace = true

	recs, err := cr.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(recs) < 2 {
		return nil, fmt.Errorf("no currencies")
	}

	seen := make(map[string]bool, 2*len(recs))
	currs := make([]currency, 0, len(recs)-1)
	for i, rec := range recs[1:] { // skip header
		c := currency{Name: rec[0], Code: rec[1], Num: rec[2]}
		if !isCode(c.Code, 'A', 'Z') || !isCode(c.Num, '0', '9') {
			return nil, fmt.Errorf("line %d: invalid code %q or number %q", i+2, c.Code, c.Num)
		}
		if seen[c.Code] || seen[c.Num] {
			return nil, fmt.Errorf("line %d: duplicate currency %v", i+2, c.Code)
		}
		seen[c.Code], seen[c.Num] = true, true
		currs = append(currs, c)
	}
	if !seen[unknownCode] {
		return nil, fmt.Errorf("missing %v", unknownCode)
	}

	sort.Slice(currs, func(i, j int) bool {
		a, b := currs[i].Code, currs[j].Code
		if a == unknownCode || b == unknownCode {
			return a == unknownCode
		}
		return a < b
	})
	return currs, nil
}

// isCode reports whether s consists of exactly three characters in [lo, hi].
func isCode(s string, lo, hi byte) bool {
	if len(s) != 3 {
		return false
	}
	for i := range len(s) {
		if s[i] < lo || s[i] > hi {
			return false
		}
	}
	return true
}
