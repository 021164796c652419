// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package table

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/mattn/go-shellwords"
)

// AddCriterionExpr adds a criterion from a text expression of the form
//
//	[first|and|or] column op operand...
//
// where op is one of > < >= <= == != in notin. The combinator defaults
// to first for an empty filter key, and to and otherwise. Operands are
// parsed according to the column kind, and use shell quoting for
// values containing spaces, e.g. `Name == "Amy Lee"`. An operand of the
// form @name compares with the named column. The in and notin operators
// take one or more operands.
func (dt *Table) AddCriterionExpr(expr string) error {
	words, err := shellwords.Parse(expr)
	if err != nil {
		return fmt.Errorf("table.AddCriterionExpr: %q: %v: %w", expr, err, ErrState)
	}
	comb := First
	if dt.FilterKey.IsSet() {
		comb = And
	}
	if len(words) > 0 {
		if c, err := ParseCombinator(words[0]); err == nil {
			comb = c
			words = words[1:]
		}
	}
	if len(words) < 3 {
		return fmt.Errorf("table.AddCriterionExpr: %q is not of the form [first|and|or] column op operand: %w", expr, ErrState)
	}
	column, operands := words[0], words[2:]
	op, err := ParseOp(words[1])
	if err != nil {
		return err
	}
	cr := dt.Where(comb)
	if op != In && op != NotIn {
		if len(operands) != 1 {
			return fmt.Errorf("table.AddCriterionExpr: %q: operator %s takes one operand: %w", expr, op, ErrState)
		}
		if other, ok := strings.CutPrefix(operands[0], "@"); ok {
			return cr.compareColumns(column, op, other)
		}
	}
	cl, err := dt.Column(column)
	if err != nil {
		return err
	}
	vals := make([]any, len(operands))
	for i, s := range operands {
		vals[i], err = parseOperand(cl.Kind(), s)
		if err != nil {
			return fmt.Errorf("table.AddCriterionExpr: %q: %w", expr, err)
		}
	}
	return cr.compare(column, op, vals...)
}

// parseOperand parses the text of an operand for a column of the given kind.
// Int columns accept float operands, which promote the comparison.
func parseOperand(kind Kind, s string) (any, error) {
	switch kind {
	case String:
		return s, nil
	case Int:
		if i, err := strconv.ParseInt(s, 10, 64); err == nil {
			return i, nil
		}
		fallthrough
	case Float:
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return nil, fmt.Errorf("operand %q is not a number: %w", s, ErrState)
		}
		return f, nil
	}
	return nil, fmt.Errorf("operand %q for a column without values: %w", s, ErrState)
}
