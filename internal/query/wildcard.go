// Package query implements the wildcard resolver (C5) and the
// conjunctive query evaluator (C6).
package query

import (
	"strings"

	"github.com/cbr9/information-retrieval-twitter/internal/index"
	"github.com/cbr9/information-retrieval-twitter/internal/kgram"
	"github.com/cbr9/information-retrieval-twitter/pkg/types"
)

// Resolver resolves query terms against a built index.
type Resolver struct {
	Index  *index.Index
	Policy types.OOVKgramPolicy
}

// NewResolver returns a Resolver for idx, using policy to decide
// whether a missing k-gram fails the whole query or is treated as an
// empty candidate set for that term.
func NewResolver(idx *index.Index, policy types.OOVKgramPolicy) *Resolver {
	return &Resolver{Index: idx, Policy: policy}
}

// Resolve splits terms into literal term IDs and a combined wildcard
// document-ID set.
func (r *Resolver) Resolve(terms []string) (literalIDs []types.TermID, wildcardDocIDs []types.DocID, hadWildcard bool, err error) {
	first := true

	for _, q := range terms {
		if !strings.Contains(q, "*") {
			tid, ok := r.Index.TokenToID[q]
			if !ok {
				return nil, nil, false, types.Errorf("query.Resolve", types.ErrOOVTerm, "term %q not in vocabulary", q)
			}
			literalIDs = append(literalIDs, tid)
			continue
		}

		hadWildcard = true
		grams, err := r.candidateGrams(q)
		if err != nil {
			return nil, nil, false, err
		}

		candidates, ok, err := r.intersectCandidates(grams)
		if err != nil {
			return nil, nil, false, err
		}

		var docIDs []types.DocID
		if ok {
			lists := make([][]types.DocID, 0, len(candidates))
			for _, tid := range candidates {
				lists = append(lists, r.Index.Postings[tid])
			}
			docIDs = index.UnionDocIDs(lists...)
		}

		if first {
			wildcardDocIDs = docIDs
			first = false
		} else {
			wildcardDocIDs = index.Intersect(wildcardDocIDs, docIDs)
		}
	}

	return literalIDs, wildcardDocIDs, hadWildcard, nil
}

// candidateGrams returns the k-grams a candidate term must contain to
// satisfy pattern q, covering the both-ends-wildcard and
// single-wildcard cases. It rejects patterns with two or more internal
// wildcards, or an empty pattern after stripping wildcards.
func (r *Resolver) candidateGrams(q string) ([]string, error) {
	k := r.Index.K

	if strings.HasPrefix(q, "*") && strings.HasSuffix(q, "*") && len(q) >= 3 {
		body := strings.Trim(q, "*")
		if strings.Contains(body, "*") {
			return nil, types.Errorf("query.candidateGrams", types.ErrUnsupportedPattern,
				"pattern %q has more than one internal wildcard", q)
		}
		if body == "" {
			return nil, types.Errorf("query.candidateGrams", types.ErrUnsupportedPattern,
				"pattern %q is empty after stripping wildcards", q)
		}
		return kgram.Grams(body, k, kgram.None), nil
	}

	parts := strings.SplitN(q, "*", 2)
	left, right := parts[0], parts[1]
	if strings.Contains(right, "*") {
		return nil, types.Errorf("query.candidateGrams", types.ErrUnsupportedPattern,
			"pattern %q has more than one internal wildcard", q)
	}
	if left == "" && right == "" {
		return nil, types.Errorf("query.candidateGrams", types.ErrUnsupportedPattern,
			"pattern %q is empty after stripping wildcards", q)
	}

	var grams []string
	if left != "" {
		grams = append(grams, kgram.Grams(left, k, kgram.Left)...)
	}
	if right != "" {
		grams = append(grams, kgram.Grams(right, k, kgram.Right)...)
	}
	return grams, nil
}

// intersectCandidates looks up each k-gram and intersects their
// TermID sets. With no k-grams to check (every fragment is too short
// to yield one), every indexed term is a candidate and the projection's
// post-filter does the matching. ok is false when the overall candidate
// set for this wildcard term is empty — either because a k-gram was
// missing under the "empty" policy, or because the intersection itself
// came up empty.
func (r *Resolver) intersectCandidates(grams []string) (candidates []types.TermID, ok bool, err error) {
	if len(grams) == 0 {
		all := make([]types.TermID, 0, len(r.Index.Postings))
		for tid := range r.Index.Postings {
			all = append(all, tid)
		}
		return all, len(all) > 0, nil
	}

	var acc []types.TermID
	for i, g := range grams {
		ids, present := r.Index.KGrams[g]
		if !present {
			if r.Policy == types.OOVKgramFail {
				return nil, false, types.Errorf("query.intersectCandidates", types.ErrOOVKgram,
					"k-gram %q not in index", g)
			}
			return nil, false, nil
		}
		if i == 0 {
			acc = ids
		} else {
			acc = index.IntersectTermIDs(acc, ids)
		}
		if len(acc) == 0 {
			return nil, false, nil
		}
	}
	return acc, true, nil
}
