// Package bsearch provides binary search functionality for sorted collections.
//
// Every function assumes its input is sorted ascending under the ordering it
// compares with. On unsorted input the result is unspecified, but all probes
// stay within bounds.
package bsearch

import "cmp"

// LocateBy performs a binary search on a sorted collection of size elements.
// The comparison function f should return:
//   - negative value if the element at index is less than the target
//   - zero if the element at index equals the target
//   - positive value if the element at index is greater than the target
//
// When several elements equal the target, the smallest index is returned.
// f is called at most ceil(log2(size))+1 times.
func LocateBy(size int, f func(int) int) Index {
	if size <= 0 {
		return Index{}
	}

	low, high := 0, size-1
	for low < high {
		mid := low + (high-low)/2
		if f(mid) < 0 {
			// target is strictly after mid
			low = mid + 1
		} else {
			high = mid
		}
	}

	if f(low) != 0 {
		return Index{}
	}
	return found(low)
}

// Locate searches s for target using the natural ordering of E.
func Locate[S ~[]E, E cmp.Ordered](s S, target E) Index {
	return LocateBy(len(s), func(i int) int {
		return cmp.Compare(s[i], target)
	})
}

// LocateFunc is like Locate but compares with cmp, which returns the ordering
// of an element relative to target in the manner of slices.BinarySearchFunc.
func LocateFunc[S ~[]E, E, T any](s S, target T, cmp func(E, T) int) Index {
	return LocateBy(len(s), func(i int) int {
		return cmp(s[i], target)
	})
}

// ErrNotFound is returned by Index.Err when the target is absent.
var ErrNotFound = &NotFoundError{}

// NotFoundError represents an error when an element is not found during binary search.
type NotFoundError struct{}

func (e *NotFoundError) Error() string {
	return "not found"
}
