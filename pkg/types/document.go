// Package types defines the core data types for the tweet search service.
package types

// DocID is a document identifier as given in the corpus.
type DocID uint64

// TermID is a deterministic identifier for a distinct token, derived by
// hashing the token's bytes with a fixed seed (see internal/index).
type TermID uint64

// Document is an immutable record loaded from the corpus. Only ID and
// Body participate in the index; UserHandle and UserName are passed
// through unchanged to the projection layer.
type Document struct {
	ID         DocID  `json:"id"`
	UserHandle string `json:"user_handle"`
	UserName   string `json:"user_name"`
	Body       string `json:"body"`
}

// DictEntry is the dictionary's per-token bookkeeping. Size is derived
// (the posting-list length); the authoritative data is the posting list
// itself.
type DictEntry struct {
	TermID TermID `json:"term_id"`
	Size   int    `json:"size"`
}

// SearchResult is a matched document's ID, user fields, and body.
type SearchResult struct {
	DocID      DocID  `json:"doc_id"`
	UserHandle string `json:"user_handle"`
	UserName   string `json:"user_name"`
	Body       string `json:"body"`
}

// QueryResponse wraps a query's matched documents with metadata.
type QueryResponse struct {
	Results      []SearchResult `json:"results"`
	TotalResults int            `json:"total_results"`
}
