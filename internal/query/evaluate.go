package query

import (
	"github.com/cbr9/information-retrieval-twitter/internal/index"
	"github.com/cbr9/information-retrieval-twitter/pkg/types"
)

// Evaluate runs the conjunctive query evaluator (C6): resolve terms
// into literal term IDs and a wildcard document-ID set, then fold the
// literal terms' posting lists in via repeated intersection. The
// order terms are consumed in does not affect the result.
func Evaluate(r *Resolver, terms []string) ([]types.DocID, error) {
	if len(terms) == 0 {
		return nil, nil
	}

	literalIDs, docIDs, hadWildcard, err := r.Resolve(terms)
	if err != nil {
		return nil, err
	}

	if hadWildcard && len(docIDs) == 0 {
		return nil, nil
	}

	first := !hadWildcard
	for _, tid := range literalIDs {
		postings := r.Index.Postings[tid]
		if first {
			docIDs = postings
			first = false
		} else {
			docIDs = index.Intersect(docIDs, postings)
		}
		if len(docIDs) == 0 {
			return nil, nil
		}
	}

	return docIDs, nil
}
