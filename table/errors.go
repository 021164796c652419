// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package table

import (
	"fmt"

	"cogentcore.org/dataframe/base/errors"
	"cogentcore.org/dataframe/base/slicesx"
	"github.com/adrg/strutil"
	"github.com/adrg/strutil/metrics"
)

// Error classes returned by table operations. Errors are wrapped with
// context, so test for them with [errors.Is].
var (
	// ErrLookup is returned for an unknown column name, or a row or
	// column position that is out of range after negative wrapping.
	ErrLookup = errors.New("lookup error")

	// ErrEmptyResult is returned when a criterion or the full filter
	// fold matches no rows.
	ErrEmptyResult = errors.New("no rows match criteria")

	// ErrState is returned when an operation needs a key that is not
	// set, or a column kind that is incompatible with the operation.
	ErrState = errors.New("invalid state")
)

// suggestThreshold is the minimum similarity for a "did you mean" hint.
const suggestThreshold = 0.5

// wrapIndex normalizes a possibly negative position into
// a sequence of length n, returning an [ErrLookup] error
// if it is out of range. what names the sequence for the message.
func wrapIndex(what string, i, n int) (int, error) {
	j, ok := slicesx.NegIndex(i, n)
	if !ok {
		return 0, fmt.Errorf("table: %s index %d is out of range for %d %ss: %w", what, i, n, what, ErrLookup)
	}
	return j, nil
}

// wrapRange normalizes the half-open range [from, to) over a
// sequence of length n. from wraps like [wrapIndex], and a negative
// to counts from one past the end, so -1 extends through the last element.
func wrapRange(what string, from, to, n int) (int, int, error) {
	f, err := wrapIndex(what, from, n)
	if err != nil {
		return 0, 0, err
	}
	t := to
	if t < 0 {
		t += n + 1
	}
	if t < 0 || t > n || f >= t {
		return 0, 0, fmt.Errorf("table: %s range [%d, %d) is empty or out of range for %d %ss: %w", what, from, to, n, what, ErrLookup)
	}
	return f, t, nil
}

// notFound returns the [ErrLookup] error for an unknown column name,
// suggesting the most similar existing name if there is one.
func notFound(name string, names []string) error {
	best, score := "", 0.0
	lev := metrics.NewLevenshtein()
	for _, nm := range names {
		s := strutil.Similarity(name, nm, lev)
		if s > score {
			best, score = nm, s
		}
	}
	if score >= suggestThreshold {
		return fmt.Errorf("table: column %q not found (did you mean %q?): %w", name, best, ErrLookup)
	}
	return fmt.Errorf("table: column %q not found: %w", name, ErrLookup)
}
