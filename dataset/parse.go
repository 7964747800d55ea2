// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package dataset reads and writes plain-text numeric tables.
//
// A dataset file holds one or more tables of numbers. Each data line
// holds one row of a table, with fields separated by white space or
// commas. Fields may be NaN, Inf or -Inf. Lines starting with # are
// comments.
//
// Lines of the form "key: value", where key starts with a lower-case
// letter and holds no upper-case letters or spaces, are configuration
// lines. A configuration value applies to every following table until
// it is set again. The "columns" key names the columns of the
// following tables, separated by white space or commas.
//
// A blank line, or a configuration line following data, ends the
// current table.
package dataset

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"
	"unicode"
)

// ErrColumn is returned for a column that is not in a table.
var ErrColumn = errors.New("no such column")

// Table is one block of rows from a dataset file.
type Table struct {
	// Config is the configuration in effect for this table.
	Config map[string]string

	// Columns names each column. If the configuration has no
	// "columns" key, or it is empty, columns are named col1, col2
	// and so on.
	Columns []string

	// Rows holds the data, one slice per line.
	Rows [][]float64

	// Line is the line number of the first row.
	Line int
}

// Label returns the table's "label" configuration value, or "".
func (t *Table) Label() string {
	return t.Config["label"]
}

// Column returns a copy of the named column. name may also be a
// 1-based column index.
func (t *Table) Column(name string) ([]float64, error) {
	idx := -1
	for i, c := range t.Columns {
		if c == name {
			idx = i
			break
		}
	}
	if idx < 0 {
		if n, err := strconv.Atoi(name); err == nil && n >= 1 && n <= len(t.Columns) {
			idx = n - 1
		}
	}
	if idx < 0 {
		return nil, fmt.Errorf("column %q: %w", name, ErrColumn)
	}
	col := make([]float64, len(t.Rows))
	for i, row := range t.Rows {
		col[i] = row[idx]
	}
	return col, nil
}

var configRe = regexp.MustCompile(`^(\p{Ll}[^\p{Lu}\s\x85\xa0\x{1680}\x{2000}-\x{200a}\x{2028}\x{2029}\x{202f}\x{205f}\x{3000}]*):(?:[ \t]+(.*))?$`)

// A SyntaxError reports a malformed line.
type SyntaxError struct {
	Line int
	Msg  string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("line %d: %s", e.Line, e.Msg)
}

func isSep(r rune) bool {
	return unicode.IsSpace(r) || r == ','
}

// Parse parses a dataset file from r. It returns the tables in the
// order they appear.
func Parse(r io.Reader) ([]*Table, error) {
	var tables []*Table
	config := make(map[string]string)
	var cur *Table

	scanner := bufio.NewScanner(r)
	lineno := 0
	for scanner.Scan() {
		lineno++
		line := strings.TrimSpace(scanner.Text())

		switch {
		case line == "":
			cur = nil
			continue
		case strings.HasPrefix(line, "#"):
			continue
		}

		// Configuration lines.
		if m := configRe.FindStringSubmatch(line); m != nil {
			cur = nil
			config[m[1]] = m[2]
			continue
		}

		// Data lines.
		fields := strings.FieldsFunc(line, isSep)
		row := make([]float64, len(fields))
		for i, f := range fields {
			v, err := strconv.ParseFloat(f, 64)
			if err != nil {
				return nil, &SyntaxError{lineno, fmt.Sprintf("bad number %q", f)}
			}
			row[i] = v
		}
		if cur == nil {
			var err error
			if cur, err = newTable(config, len(row), lineno); err != nil {
				return nil, err
			}
			tables = append(tables, cur)
		}
		if len(row) != len(cur.Columns) {
			return nil, &SyntaxError{lineno, fmt.Sprintf("row has %d fields, want %d", len(row), len(cur.Columns))}
		}
		cur.Rows = append(cur.Rows, row)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return tables, nil
}

func newTable(config map[string]string, width, lineno int) (*Table, error) {
	t := &Table{Config: make(map[string]string, len(config)), Line: lineno}
	for k, v := range config {
		t.Config[k] = v
	}
	if names, ok := config["columns"]; ok && strings.TrimSpace(names) != "" {
		t.Columns = strings.FieldsFunc(names, isSep)
		if len(t.Columns) != width {
			return nil, &SyntaxError{lineno, fmt.Sprintf("row has %d fields but %d columns are named", width, len(t.Columns))}
		}
		return t, nil
	}
	t.Columns = make([]string, width)
	for i := range t.Columns {
		t.Columns[i] = fmt.Sprintf("col%d", i+1)
	}
	return t, nil
}
