package corpus

import (
	"strings"

	"github.com/cbr9/information-retrieval-twitter/pkg/types"
)

// RowStore is the external row store the document projector (C7)
// reads from. It deduplicates rows by full-row equality at load time,
// grounded in the original data pipeline's drop_duplicates pass, so
// the same (id, handle, name, body) tuple never yields two output
// lines even if the corpus file repeats it.
type RowStore struct {
	rows []Row
}

// NewRowStore builds a RowStore from rows, dropping exact duplicates
// while preserving first-seen order.
func NewRowStore(rows []Row) *RowStore {
	seen := make(map[Row]struct{}, len(rows))
	deduped := make([]Row, 0, len(rows))
	for _, row := range rows {
		if _, dup := seen[row]; dup {
			continue
		}
		seen[row] = struct{}{}
		deduped = append(deduped, row)
	}

	return &RowStore{rows: deduped}
}

// Len returns the number of distinct rows held by the store.
func (s *RowStore) Len() int {
	return len(s.rows)
}

// Project implements the document projector (C7): given a sorted
// result set of document IDs and the original wildcard terms (for the
// post-filter), it returns the surviving rows in the row store's
// iteration order.
func (s *RowStore) Project(ids []types.DocID, wildcardTerms []string) []Row {
	if len(ids) == 0 {
		return nil
	}

	wanted := make(map[types.DocID]struct{}, len(ids))
	for _, id := range ids {
		wanted[id] = struct{}{}
	}

	pieces := wildcardPieces(wildcardTerms)

	var out []Row
	for _, row := range s.rows {
		if _, ok := wanted[row.ID]; !ok {
			continue
		}
		if !matchesPieces(row.Body, pieces) {
			continue
		}
		out = append(out, row)
	}
	return out
}

// wildcardPieces splits each wildcard-containing term on '*' and
// drops empty pieces, producing the substrings the post-filter
// requires to all appear in a candidate body.
func wildcardPieces(terms []string) []string {
	var pieces []string
	for _, t := range terms {
		if !strings.Contains(t, "*") {
			continue
		}
		for _, p := range strings.Split(t, "*") {
			if p != "" {
				pieces = append(pieces, p)
			}
		}
	}
	return pieces
}

// matchesPieces requires every piece to appear as a case-insensitive
// substring of body, in any order. Non-wildcard terms are already
// guaranteed by the index and need no post-filter.
func matchesPieces(body string, pieces []string) bool {
	lower := strings.ToLower(body)
	for _, p := range pieces {
		if !strings.Contains(lower, strings.ToLower(p)) {
			return false
		}
	}
	return true
}
