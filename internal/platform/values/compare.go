package values

import (
	"cmp"
	"math"
	"slices"
)

// Ordering is the result of a three-way comparison.
type Ordering int

const (
	Less    Ordering = -1
	Equal   Ordering = 0
	Greater Ordering = 1
)

// Comparator orders two values.
type Comparator func(a, b Value) Ordering

// DefaultComparator is the ordering used when a caller supplies none.
var DefaultComparator Comparator = Compare

// Compare orders a and b by their natural ordering: numbers numerically,
// strings lexicographically, sequences element-wise then by length, mappings
// by sorted keys then values, and sets by their sorted members. Values of
// different kinds order by kind: null, number, string, sequence, mapping, set.
func Compare(a, b Value) Ordering {
	if a.kind != b.kind {
		return ordering(cmp.Compare(a.kind, b.kind))
	}
	switch a.kind {
	case KindNull:
		return Equal
	case KindNumber:
		return ordering(compareNumbers(a, b))
	case KindString:
		return ordering(cmp.Compare(a.s, b.s))
	case KindSequence:
		return compareLists(a.items, b.items)
	case KindSet:
		return compareLists(sortedItems(a.items), sortedItems(b.items))
	case KindMapping:
		return compareMappings(a.entries, b.entries)
	default:
		return Equal
	}
}

// Sort orders items in place with cmpFn, or DefaultComparator when nil.
func Sort(items []Value, cmpFn Comparator) {
	if cmpFn == nil {
		cmpFn = DefaultComparator
	}
	slices.SortStableFunc(items, func(a, b Value) int {
		return int(cmpFn(a, b))
	})
}

func compareNumbers(a, b Value) int {
	switch {
	case !a.isFloat && !b.isFloat:
		return cmp.Compare(a.i, b.i)
	case a.isFloat && b.isFloat:
		return cmp.Compare(a.f, b.f)
	case b.isFloat:
		return compareIntFloat(a.i, b.f)
	default:
		return -compareIntFloat(b.i, a.f)
	}
}

// compareIntFloat orders i against f without rounding i through float64,
// which would collapse distinct integers above 2^53. NaN orders first.
func compareIntFloat(i int64, f float64) int {
	switch {
	case math.IsNaN(f):
		return 1
	case f >= math.MaxInt64:
		return -1
	case f < math.MinInt64:
		return 1
	}
	whole := math.Trunc(f)
	if result := cmp.Compare(i, int64(whole)); result != 0 {
		return result
	}
	return cmp.Compare(whole, f)
}

func compareLists(a, b []Value) Ordering {
	for i := 0; i < len(a) && i < len(b); i++ {
		if result := Compare(a[i], b[i]); result != Equal {
			return result
		}
	}
	return ordering(cmp.Compare(len(a), len(b)))
}

func compareMappings(a, b map[string]Value) Ordering {
	leftKeys := sortedKeys(a)
	rightKeys := sortedKeys(b)
	for i := 0; i < len(leftKeys) && i < len(rightKeys); i++ {
		if result := cmp.Compare(leftKeys[i], rightKeys[i]); result != 0 {
			return ordering(result)
		}
		if result := Compare(a[leftKeys[i]], b[rightKeys[i]]); result != Equal {
			return result
		}
	}
	return ordering(cmp.Compare(len(leftKeys), len(rightKeys)))
}

func sortedKeys(entries map[string]Value) []string {
	keys := make([]string, 0, len(entries))
	for key := range entries {
		keys = append(keys, key)
	}
	slices.Sort(keys)
	return keys
}

func sortedItems(items []Value) []Value {
	out := slices.Clone(items)
	slices.SortFunc(out, func(a, b Value) int {
		return int(Compare(a, b))
	})
	return out
}

func ordering(result int) Ordering {
	switch {
	case result < 0:
		return Less
	case result > 0:
		return Greater
	default:
		return Equal
	}
}
