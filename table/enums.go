// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package table

import (
	"fmt"
	"strings"
)

// Kind is the kind of values held in a [Column].
type Kind int32

const (
	// Auto is the kind of a column without data, and requests
	// type inference when reading text.
	Auto Kind = iota

	// Float is a column of float64 values, with NaN for missing values.
	Float

	// Int is a column of int64 values.
	Int

	// String is a column of string values, which can be null.
	String
)

var kindNames = [...]string{"auto", "float", "int", "string"}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("Kind(%d)", k)
	}
	return kindNames[k]
}

// ParseKind returns the [Kind] for the given name, accepting the
// short names dbl, str and the long names double, integer as well.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "auto":
		return Auto, nil
	case "float", "float64", "dbl", "double":
		return Float, nil
	case "int", "int64", "integer":
		return Int, nil
	case "string", "str":
		return String, nil
	}
	return Auto, fmt.Errorf("table.ParseKind: unknown kind %q: %w", s, ErrState)
}

// MarshalText implements [encoding.TextMarshaler].
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler],
// accepting the names that [ParseKind] does.
func (k *Kind) UnmarshalText(text []byte) error {
	v, err := ParseKind(string(text))
	if err != nil {
		return err
	}
	*k = v
	return nil
}

// Combinator determines how a criterion folds with the
// result of the criteria recorded before it.
type Combinator int32

const (
	// First starts a new result from the criterion values,
	// discarding anything recorded before it.
	First Combinator = iota

	// And keeps rows that pass both the prior result and the criterion.
	And

	// Or keeps rows that pass either the prior result or the criterion.
	Or
)

var combinatorNames = [...]string{"first", "and", "or"}

func (c Combinator) String() string {
	if c < 0 || int(c) >= len(combinatorNames) {
		return fmt.Sprintf("Combinator(%d)", c)
	}
	return combinatorNames[c]
}

// ParseCombinator returns the [Combinator] with the given name.
func ParseCombinator(s string) (Combinator, error) {
	for i, nm := range combinatorNames {
		if strings.EqualFold(s, nm) {
			return Combinator(i), nil
		}
	}
	return First, fmt.Errorf("table.ParseCombinator: unknown combinator %q: %w", s, ErrState)
}

// Op is a comparison operator used by criteria.
type Op int32

const (
	Gt Op = iota
	Lt
	Ge
	Le
	Eq
	Ne
	In
	NotIn
)

var opNames = [...]string{">", "<", ">=", "<=", "==", "!=", "in", "notin"}

func (op Op) String() string {
	if op < 0 || int(op) >= len(opNames) {
		return fmt.Sprintf("Op(%d)", op)
	}
	return opNames[op]
}

// ParseOp returns the [Op] for the given operator symbol.
func ParseOp(s string) (Op, error) {
	for i, nm := range opNames {
		if strings.EqualFold(s, nm) {
			return Op(i), nil
		}
	}
	return Gt, fmt.Errorf("table.ParseOp: unknown operator %q: %w", s, ErrState)
}
