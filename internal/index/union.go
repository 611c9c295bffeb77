package index

import (
	"sort"

	"github.com/cbr9/information-retrieval-twitter/pkg/types"
)

// UnionDocIDs returns the ascending, duplicate-free union of several
// already-sorted DocID slices. Used to fold the posting lists of a
// wildcard's candidate terms into a single document-ID set (D_q).
func UnionDocIDs(lists ...[]types.DocID) []types.DocID {
	seen := make(map[types.DocID]struct{})
	for _, l := range lists {
		for _, id := range l {
			seen[id] = struct{}{}
		}
	}
	out := make([]types.DocID, 0, len(seen))
	for id := range seen {
		out = append(out, id)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
