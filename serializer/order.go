package serializer

import (
	"cmp"
	"fmt"
	"math"
	"reflect"
	"slices"
	"unicode/utf8"
)

type entry struct {
	key, value reflect.Value
}

// sortedEntries returns the entries of a map ordered by key, so that the
// output does not depend on Go's randomized map iteration.
func sortedEntries(v reflect.Value) []entry {
	entries := make([]entry, 0, v.Len())

	it := v.MapRange()
	for it.Next() {
		entries = append(entries, entry{key: it.Key(), value: it.Value()})
	}

	slices.SortStableFunc(entries, func(a, b entry) int {
		return compareKeys(unwrap(a.key), unwrap(b.key))
	})

	return entries
}

// compareKeys orders numbers numerically, strings lexically and booleans
// false before true. Keys of different kinds, or of kinds without a natural
// order, are ordered by type name and then by their printed form.
func compareKeys(a, b reflect.Value) int {
	if !a.IsValid() || !b.IsValid() {
		return cmp.Compare(boolInt(a.IsValid()), boolInt(b.IsValid()))
	}

	if a.Kind() == b.Kind() {
		switch a.Kind() {
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
			return cmp.Compare(a.Int(), b.Int())
		case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
			return cmp.Compare(a.Uint(), b.Uint())
		case reflect.Float32, reflect.Float64:
			return compareFloats(a.Float(), b.Float())
		case reflect.String:
			return cmp.Compare(a.String(), b.String())
		case reflect.Bool:
			return cmp.Compare(boolInt(a.Bool()), boolInt(b.Bool()))
		default:
		}
	}

	if c := cmp.Compare(a.Type().String(), b.Type().String()); c != 0 {
		return c
	}

	return cmp.Compare(sprint(a), sprint(b))
}

// compareFloats puts NaN first, like fmt does for map keys.
func compareFloats(a, b float64) int {
	switch {
	case math.IsNaN(a) && math.IsNaN(b):
		return 0
	case math.IsNaN(a):
		return -1
	case math.IsNaN(b):
		return 1
	default:
		return cmp.Compare(a, b)
	}
}

func sprint(v reflect.Value) string {
	if !v.CanInterface() {
		return v.String()
	}

	return fmt.Sprint(v.Interface())
}

func boolInt(b bool) int {
	if b {
		return 1
	}

	return 0
}

// truncate keeps the first n runes of text.
func truncate(text string, n int) string {
	if n < 0 || utf8.RuneCountInString(text) <= n {
		return text
	}

	i := 0
	for pos := range text {
		if i == n {
			return text[:pos]
		}
		i++
	}

	return text
}
