// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package table

import "fmt"

// ColumnKinds returns a table listing the name and kind
// of each column, in String columns named Names and Types.
func (dt *Table) ColumnKinds() *Table {
	n := dt.NumColumns()
	kinds := make([]string, n)
	for i, cl := range dt.columns.Values {
		kinds[i] = cl.Kind().String()
	}
	nt := NewTable()
	nt.columns.Add("Names", NewStringColumn("Names", dt.ColumnNames()...))
	nt.columns.Add("Types", NewStringColumn("Types", kinds...))
	return nt
}

// KeysStatus returns a table describing the keys, in String columns
// named KeyName and Status: one row per filter criterion, named
// FilterKey1, FilterKey2 and so on, then OrderKey and GroupKey rows
// with "null" for a key that is not set.
func (dt *Table) KeysStatus() *Table {
	var names, status []string
	for i, lbl := range dt.FilterKey.Labels() {
		names = append(names, fmt.Sprintf("FilterKey%d", i+1))
		status = append(status, lbl)
	}
	names = append(names, "OrderKey", "GroupKey")
	status = append(status, orNull(dt.OrderKey.Label, dt.OrderKey.IsSet()), orNull(dt.GroupKey.Column, dt.GroupKey.IsSet()))
	nt := NewTable()
	nt.columns.Add("KeyName", NewStringColumn("KeyName", names...))
	nt.columns.Add("Status", NewStringColumn("Status", status...))
	return nt
}

func orNull(s string, set bool) string {
	if !set {
		return "null"
	}
	return s
}
