package model

import "sort"

// stableSort sorts items in place using less as a strict "a before b"
// predicate, preserving relative order of elements the predicate treats
// as equal.
func stableSort(items []Item, less func(a, b Item) bool) {
	sort.SliceStable(items, func(i, j int) bool {
		return less(items[i], items[j])
	})
}
