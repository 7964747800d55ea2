// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dataset

import (
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"
)

// Fprint writes tables to w in the form read by Parse. Each table's
// configuration is written only where it differs from the previous
// table's.
func Fprint(w io.Writer, tables []*Table) error {
	last := map[string]string{}
	for i, t := range tables {
		if i > 0 {
			if _, err := fmt.Fprint(w, "\n"); err != nil {
				return err
			}
		}

		config := make(map[string]string, len(t.Config)+1)
		for k, v := range t.Config {
			config[k] = v
		}
		// Columns are always written from t.Columns. Default
		// names are spelled out when they replace named columns.
		delete(config, "columns")
		if _, named := last["columns"]; named || !defaultColumns(t.Columns) {
			config["columns"] = strings.Join(t.Columns, " ")
		}

		// Print changed configuration values. Keys cannot be
		// unset, so a dropped key is written as empty.
		var keys []string
		for k := range config {
			keys = append(keys, k)
		}
		for k := range last {
			if _, ok := config[k]; !ok {
				keys = append(keys, k)
			}
		}
		sort.Strings(keys)
		for _, k := range keys {
			v, ok := last[k]
			if ok && v == config[k] {
				continue
			}
			line := k + ":"
			if config[k] != "" {
				line += " " + config[k]
			}
			if _, err := fmt.Fprintln(w, line); err != nil {
				return err
			}
		}
		last = config

		// Format rows, right aligned.
		cells := make([][]string, len(t.Rows))
		var widths []int
		for i, row := range t.Rows {
			cells[i] = make([]string, len(row))
			for j, v := range row {
				s := strconv.FormatFloat(v, 'g', -1, 64)
				cells[i][j] = s
				if j >= len(widths) {
					widths = append(widths, len(s))
				} else if len(s) > widths[j] {
					widths[j] = len(s)
				}
			}
		}
		for _, row := range cells {
			for j, s := range row {
				sep := "  "
				if j == len(row)-1 {
					sep = "\n"
				}
				if _, err := fmt.Fprintf(w, "%*s%s", widths[j], s, sep); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

func defaultColumns(names []string) bool {
	for i, name := range names {
		if name != fmt.Sprintf("col%d", i+1) {
			return false
		}
	}
	return true
}
