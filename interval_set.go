// Copyright (c) 2012-2022 The ANTLR Project. All rights reserved.
// Use of this file is governed by the BSD 3-clause license that
// can be found in the LICENSE.txt file in the project root.

package antlr

import (
	"fmt"
	"sort"
	"strings"
)

// Interval is an inclusive [Start, Stop] range of code points or token
// types.
type Interval struct {
	Start int
	Stop  int
}

func NewInterval(start, stop int) *Interval {
	return &Interval{Start: start, Stop: stop}
}

func (i *Interval) Contains(item int) bool { return item >= i.Start && item <= i.Stop }

func (i *Interval) Length() int { return i.Stop - i.Start + 1 }

func (i *Interval) String() string {
	if i.Start == i.Stop {
		return fmt.Sprintf("%d", i.Start)
	}
	return fmt.Sprintf("%d..%d", i.Start, i.Stop)
}

// IntervalSet is the compact, sorted, non-overlapping range set named in
// §2/§3 — the vocabulary representation for Set/NotSet transitions (§3),
// LOOK results (§4.6), and lexer accept-state reach.
type IntervalSet struct {
	intervals []*Interval
	readOnly  bool
}

func NewIntervalSet() *IntervalSet {
	return &IntervalSet{}
}

// NewIntervalSetFromIntervals builds a set directly from intervals that
// are already sorted by Start and non-overlapping; it neither sorts nor
// merges them. The deserializer (§4.1) sorts each decoded set with
// sortIntervals before calling it.
func NewIntervalSetFromIntervals(intervals []*Interval) *IntervalSet {
	return &IntervalSet{intervals: intervals}
}

func (is *IntervalSet) mustBeMutable() {
	if is.readOnly {
		panic(ErrSetReadonly)
	}
}

func (is *IntervalSet) AddOne(v int) { is.AddRange(v, v) }

func (is *IntervalSet) AddRange(start, stop int) {
	is.mustBeMutable()
	is.addInterval(NewInterval(start, stop))
}

func (is *IntervalSet) addInterval(addition *Interval) {
	if len(is.intervals) == 0 {
		is.intervals = append(is.intervals, addition)
		return
	}

	// Find insertion point and merge with any overlapping/adjacent
	// neighbors; linear scan is acceptable, these sets stay small
	// (vocabulary fragments, not whole alphabets).
	for k, existing := range is.intervals {
		if addition.Stop < existing.Start-1 {
			merged := make([]*Interval, 0, len(is.intervals)+1)
			merged = append(merged, is.intervals[:k]...)
			merged = append(merged, addition)
			merged = append(merged, is.intervals[k:]...)
			is.intervals = merged
			return
		}
		if addition.Start > existing.Stop+1 {
			continue
		}
		// Overlap or adjacency: absorb and keep merging forward.
		if addition.Start < existing.Start {
			existing.Start = addition.Start
		}
		if addition.Stop > existing.Stop {
			existing.Stop = addition.Stop
			is.coalesceFrom(k)
		}
		return
	}
	is.intervals = append(is.intervals, addition)
}

// coalesceFrom merges interval k forward with any following intervals it
// now overlaps or touches, after its Stop has grown.
func (is *IntervalSet) coalesceFrom(k int) {
	j := k + 1
	for j < len(is.intervals) && is.intervals[j].Start <= is.intervals[k].Stop+1 {
		if is.intervals[j].Stop > is.intervals[k].Stop {
			is.intervals[k].Stop = is.intervals[j].Stop
		}
		j++
	}
	is.intervals = append(is.intervals[:k+1], is.intervals[j:]...)
}

func (is *IntervalSet) addSet(other *IntervalSet) *IntervalSet {
	is.mustBeMutable()
	if other == nil {
		return is
	}
	for _, iv := range other.intervals {
		is.addInterval(NewInterval(iv.Start, iv.Stop))
	}
	return is
}

func (is *IntervalSet) AddSet(other *IntervalSet) *IntervalSet { return is.addSet(other) }

// removeOne removes a single value, splitting an interval if necessary.
func (is *IntervalSet) removeOne(v int) {
	is.mustBeMutable()
	for k, iv := range is.intervals {
		if v < iv.Start || v > iv.Stop {
			continue
		}
		switch {
		case iv.Start == iv.Stop:
			is.intervals = append(is.intervals[:k], is.intervals[k+1:]...)
		case v == iv.Start:
			iv.Start++
		case v == iv.Stop:
			iv.Stop--
		default:
			right := NewInterval(v+1, iv.Stop)
			iv.Stop = v - 1
			tail := append([]*Interval{right}, is.intervals[k+1:]...)
			is.intervals = append(is.intervals[:k+1], tail...)
		}
		return
	}
}

func (is *IntervalSet) Contains(item int) bool {
	// intervals are kept sorted and non-overlapping; binary search.
	lo, hi := 0, len(is.intervals)-1
	for lo <= hi {
		mid := (lo + hi) / 2
		iv := is.intervals[mid]
		switch {
		case item < iv.Start:
			hi = mid - 1
		case item > iv.Stop:
			lo = mid + 1
		default:
			return true
		}
	}
	return false
}

func (is *IntervalSet) Length() int {
	n := 0
	for _, iv := range is.intervals {
		n += iv.Length()
	}
	return n
}

func (is *IntervalSet) GetIntervals() []*Interval { return is.intervals }

// Complement returns the set of values in [minValue..maxValue] not present
// in is — used for NotSet transitions (§3) and LOOK (§4.6).
func (is *IntervalSet) Complement(minValue, maxValue int) *IntervalSet {
	result := NewIntervalSet()
	result.AddRange(minValue, maxValue)
	for _, iv := range is.intervals {
		result.removeRange(iv.Start, iv.Stop)
	}
	return result
}

func (is *IntervalSet) removeRange(start, stop int) {
	for v := start; v <= stop; v++ {
		if is.Contains(v) {
			is.removeOne(v)
		}
	}
}

func (is *IntervalSet) SetReadonly(readOnly bool) { is.readOnly = readOnly }

func (is *IntervalSet) String() string { return is.StringVerbose(nil, nil, false) }

func (is *IntervalSet) StringVerbose(literalNames, symbolicNames []string, elemsAreChar bool) string {
	if is == nil || len(is.intervals) == 0 {
		return "{}"
	}
	parts := make([]string, 0, len(is.intervals))
	for _, iv := range is.intervals {
		if iv.Start == iv.Stop {
			parts = append(parts, is.elementName(literalNames, symbolicNames, iv.Start, elemsAreChar))
			continue
		}
		parts = append(parts, fmt.Sprintf("%s..%s",
			is.elementName(literalNames, symbolicNames, iv.Start, elemsAreChar),
			is.elementName(literalNames, symbolicNames, iv.Stop, elemsAreChar)))
	}
	if len(parts) > 1 {
		return "{" + strings.Join(parts, ", ") + "}"
	}
	return parts[0]
}

func (is *IntervalSet) elementName(literalNames, symbolicNames []string, a int, elemsAreChar bool) string {
	switch a {
	case TokenEOF:
		return "<EOF>"
	case TokenEpsilon:
		return "<EPSILON>"
	default:
		if elemsAreChar {
			return fmt.Sprintf("'%c'", rune(a))
		}
		if literalNames != nil && a < len(literalNames) && literalNames[a] != "" {
			return literalNames[a]
		}
		if symbolicNames != nil && a < len(symbolicNames) {
			return symbolicNames[a]
		}
		return fmt.Sprintf("%d", a)
	}
}

// sortIntervals orders intervals by Start; the deserializer applies it to
// every decoded set, BMP and supplementary-plane alike (§4.1/§6).
func sortIntervals(intervals []*Interval) {
	sort.Slice(intervals, func(i, j int) bool { return intervals[i].Start < intervals[j].Start })
}
