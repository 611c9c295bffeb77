package index

import "github.com/cbr9/information-retrieval-twitter/pkg/types"

// Intersect merges two ascending, duplicate-free DocID sequences in
// O(|a|+|b|) and returns their ascending, duplicate-free intersection.
// Intersecting with an empty slice returns an empty slice.
func Intersect(a, b []types.DocID) []types.DocID {
	out := make([]types.DocID, 0, minInt(len(a), len(b)))
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		switch {
		case a[i] < b[j]:
			i++
		case a[i] == b[j]:
			out = append(out, a[i])
			i++
			j++
		default:
			j++
		}
	}
	return out
}

// IntersectTermIDs is Intersect's counterpart over TermID sequences,
// used to combine the k-gram candidate sets during wildcard
// resolution.
func IntersectTermIDs(a, b []types.TermID) []types.TermID {
	out := make([]types.TermID, 0, minInt(len(a), len(b)))
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		switch {
		case a[i] < b[j]:
			i++
		case a[i] == b[j]:
			out = append(out, a[i])
			i++
			j++
		default:
			j++
		}
	}
	return out
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
