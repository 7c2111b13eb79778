// Package reposition locates an item in a sorted collection after its key
// changed, using the item's previous position as a hint.
//
// The collection is only reachable through a key accessor, and every lookup
// may be expensive for the host (a file-info query), so the search touches
// the hint first and then bisects only the side of the collection the new key
// must have moved to.
package reposition

import (
	"cmp"
	"sort"
)

// Search returns the position of target in a collection of n keys sorted
// ascending under compare.
//
// If the key at hint equals target, hint is returned without further
// lookups. Otherwise the leftmost position whose key is >= target is
// returned, searching only after hint when the hint key is smaller and only
// before hint when it is larger. When target is not present the result is
// its insertion point on that side, which may be n.
//
// A hint outside [0, n) is clamped. Search returns 0 for an empty collection.
func Search[K any](hint int, target K, n int, keyAt func(int) K, compare func(a, b K) int) int {
	if n <= 0 {
		return 0
	}
	if hint < 0 {
		hint = 0
	} else if hint >= n {
		hint = n - 1
	}

	atLeast := func(i int) bool {
		return compare(keyAt(i), target) >= 0
	}

	switch c := compare(keyAt(hint), target); {
	case c == 0:
		return hint
	case c < 0:
		// keyAt(hint) < target, so hint itself can be skipped.
		lo := hint + 1
		return lo + sort.Search(n-lo, func(i int) bool { return atLeast(lo + i) })
	default:
		return sort.Search(hint, atLeast)
	}
}

// SearchOrdered is Search for naturally ordered keys.
func SearchOrdered[K cmp.Ordered](hint int, target K, n int, keyAt func(int) K) int {
	return Search(hint, target, n, keyAt, cmp.Compare[K])
}

// Find runs Search and reports whether the returned position holds target.
// Callers use it to avoid moving a cursor to the wrong item when the
// collection no longer contains the key.
func Find[K any](hint int, target K, n int, keyAt func(int) K, compare func(a, b K) int) (int, bool) {
	pos := Search(hint, target, n, keyAt, compare)
	if pos < 0 || pos >= n {
		return pos, false
	}
	return pos, compare(keyAt(pos), target) == 0
}
