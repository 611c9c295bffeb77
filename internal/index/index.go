// Package index implements the index builder (C3): a scan of the
// corpus that populates the dictionary, the token-to-ID table, the
// inverted index (term -> sorted posting list of document IDs), and
// the k-gram index (k-gram -> sorted set of term IDs).
package index

import (
	"sort"

	"github.com/cespare/xxhash/v2"

	"github.com/cbr9/information-retrieval-twitter/internal/kgram"
	"github.com/cbr9/information-retrieval-twitter/internal/normalize"
	"github.com/cbr9/information-retrieval-twitter/pkg/types"
)

// termIDSeed is the fixed seed used for every per-token hash. Using a
// fresh hasher per token, rather than a single running hasher fed
// tokens in sequence, is what makes TermID reproducible across runs
// for a given input; see Build.
const termIDSeed = 0x5477_3565_5469_6d65

// DictEntry mirrors types.DictEntry but keyed internally by token for
// build-time bookkeeping before the final dictionary is frozen.
type DictEntry = types.DictEntry

// Index is the populated, immutable result of Build: the dictionary,
// the token-to-ID table, the posting lists, and the k-gram index.
type Index struct {
	K int

	Dictionary map[string]DictEntry
	TokenToID  map[string]types.TermID
	Postings   map[types.TermID][]types.DocID
	KGrams     map[string][]types.TermID

	SkippedRows int
}

// Doc is the minimal shape Build needs from a corpus row: an ID and a
// raw, not-yet-normalized body.
type Doc struct {
	ID   types.DocID
	Body string
}

// Build scans docs (up to limit documents) and returns the populated
// Index. Tokens are normalized with normalize.Tokens using stopwords.
// k is the k-gram window length; tokens are always both-anchored
// during indexing.
func Build(docs []Doc, stopwords map[string]struct{}, k int, limit int) (*Index, error) {
	if limit <= 0 {
		limit = len(docs)
	}
	if limit > len(docs) {
		limit = len(docs)
	}

	idx := &Index{
		K:          k,
		Dictionary: make(map[string]DictEntry),
		TokenToID:  make(map[string]types.TermID),
		Postings:   make(map[types.TermID][]types.DocID),
		KGrams:     make(map[string][]types.TermID),
	}

	postingSets := make(map[types.TermID]map[types.DocID]struct{})
	kgramSets := make(map[string]map[types.TermID]struct{})

	for _, d := range docs[:limit] {
		tokens := normalize.Tokens(d.Body, stopwords)
		for _, token := range tokens {
			tid, ok := idx.TokenToID[token]
			if !ok {
				tid = freshTermID(token)
				idx.TokenToID[token] = tid
				idx.Dictionary[token] = DictEntry{TermID: tid, Size: 0}
			}

			for _, g := range kgram.Grams(token, k, kgram.Both) {
				set, ok := kgramSets[g]
				if !ok {
					set = make(map[types.TermID]struct{})
					kgramSets[g] = set
				}
				set[tid] = struct{}{}
			}

			set, ok := postingSets[tid]
			if !ok {
				set = make(map[types.DocID]struct{})
				postingSets[tid] = set
			}
			if _, already := set[d.ID]; !already {
				set[d.ID] = struct{}{}
				entry := idx.Dictionary[token]
				entry.Size++
				idx.Dictionary[token] = entry
			}
		}
	}

	for tid, set := range postingSets {
		idx.Postings[tid] = sortedDocIDs(set)
	}
	for g, set := range kgramSets {
		idx.KGrams[g] = sortedTermIDs(set)
	}

	if err := idx.validate(); err != nil {
		return nil, err
	}

	return idx, nil
}

// freshTermID hashes the UTF-8 bytes of token alone, with a fresh
// fixed-seed hasher every call. A shared running hasher fed tokens in
// sequence would make each ID depend on the history of prior tokens,
// which is not reproducible; this does not.
func freshTermID(token string) types.TermID {
	h := xxhash.NewWithSeed(termIDSeed)
	_, _ = h.WriteString(token)
	return types.TermID(h.Sum64())
}

func sortedDocIDs(set map[types.DocID]struct{}) []types.DocID {
	out := make([]types.DocID, 0, len(set))
	for id := range set {
		out = append(out, id)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

func sortedTermIDs(set map[types.TermID]struct{}) []types.TermID {
	out := make([]types.TermID, 0, len(set))
	for id := range set {
		out = append(out, id)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// validate checks the sortedness/dedup invariant on every posting
// list and k-gram bucket. A violation indicates a builder bug, not a
// bad input, and is surfaced as ErrInternalInvariant.
func (idx *Index) validate() error {
	for tid, postings := range idx.Postings {
		if !isStrictlyIncreasing(postings) {
			return types.Errorf("index.Build", types.ErrInternalInvariant,
				"posting list for term %d is not strictly increasing", tid)
		}
	}
	for g, ids := range idx.KGrams {
		if !isStrictlyIncreasingTermIDs(ids) {
			return types.Errorf("index.Build", types.ErrInternalInvariant,
				"k-gram bucket %q is not strictly increasing", g)
		}
	}
	return nil
}

func isStrictlyIncreasing(ids []types.DocID) bool {
	for i := 1; i < len(ids); i++ {
		if ids[i-1] >= ids[i] {
			return false
		}
	}
	return true
}

func isStrictlyIncreasingTermIDs(ids []types.TermID) bool {
	for i := 1; i < len(ids); i++ {
		if ids[i-1] >= ids[i] {
			return false
		}
	}
	return true
}
