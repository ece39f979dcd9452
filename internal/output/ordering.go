package output

import "sort"

// SortedIDs returns the keys of an id-keyed result mapping in ascending
// order, for deterministic report output.
func SortedIDs[V any](m map[int]V) []int {
	ids := make([]int, 0, len(m))
	for id := range m {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}
