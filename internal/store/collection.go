package store

import "strconv"

// Find returns the first element satisfying pred, in array order.
func Find[T any](items []T, pred func(T) bool) (T, bool) {
	for _, it := range items {
		if pred(it) {
			return it, true
		}
	}
	var zero T
	return zero, false
}

// MatchesID reports whether the path parameter denotes the numeric id.
// "1" matches id 1, as does "01".
func MatchesID(id int, param string) bool {
	n, err := strconv.Atoi(param)
	return err == nil && n == id
}

// Remove splices target out of items by identity and reports whether it was
// present. Identity removal avoids index races when the slice changed shape
// between lookup and removal.
func Remove[T comparable](items []T, target T) ([]T, bool) {
	for i, it := range items {
		if it == target {
			return append(items[:i], items[i+1:]...), true
		}
	}
	return items, false
}
