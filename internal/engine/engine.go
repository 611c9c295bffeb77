// Package engine wires the corpus loader, the index builder, and the
// query evaluator together into the single object the CLI, the HTTP
// server, and the MCP tool all drive.
package engine

import (
	"log"

	"github.com/google/uuid"

	"github.com/cbr9/information-retrieval-twitter/internal/corpus"
	"github.com/cbr9/information-retrieval-twitter/internal/events"
	"github.com/cbr9/information-retrieval-twitter/internal/index"
	"github.com/cbr9/information-retrieval-twitter/internal/normalize"
	"github.com/cbr9/information-retrieval-twitter/internal/query"
	"github.com/cbr9/information-retrieval-twitter/pkg/types"
)

// Engine holds the immutable, queryable state built from a corpus: the
// index, the row store used for projection, and the resolver that
// reads the index.
type Engine struct {
	cfg      types.Config
	idx      *index.Index
	resolver *query.Resolver
	rows     *corpus.RowStore
	emitter  *events.Emitter
	buildID  string
}

// Build loads the corpus and stopwords described by cfg, builds the
// index, and returns a ready-to-query Engine. emitter may be nil.
func Build(cfg types.Config, emitter *events.Emitter) (*Engine, error) {
	buildID := uuid.NewString()
	if emitter != nil {
		emitter.Emit(events.BuildStartedEvent(buildID))
	}

	stopwords, err := normalize.LoadStopwords(cfg.Corpus.StopwordsPath)
	if err != nil {
		return nil, err
	}

	loaded, err := corpus.Load(cfg.Corpus.Path)
	if err != nil {
		return nil, err
	}
	if loaded.SkippedRows > 0 && emitter != nil {
		emitter.Emit(events.RowSkippedEvent(buildID, -1, "malformed row, schema mismatch"))
	}

	docs := make([]index.Doc, len(loaded.Rows))
	for i, row := range loaded.Rows {
		docs[i] = index.Doc{ID: row.ID, Body: row.Body}
	}

	idx, err := index.Build(docs, stopwords, cfg.Index.K, cfg.Index.Limit)
	if err != nil {
		return nil, err
	}

	if emitter != nil {
		emitter.Emit(events.BuildCompletedEvent(buildID, len(docs), len(idx.TokenToID), loaded.SkippedRows))
	}

	return &Engine{
		cfg:      cfg,
		idx:      idx,
		resolver: query.NewResolver(idx, cfg.Index.OOVKgramPolicy),
		rows:     corpus.NewRowStore(loaded.Rows),
		emitter:  emitter,
		buildID:  buildID,
	}, nil
}

// LoadOrBuild loads a persisted index from cfg.Persist.Path if
// persistence is enabled and a valid blob exists; otherwise it
// rebuilds from the corpus and, if persistence is enabled, saves the
// freshly built index back to the store.
func LoadOrBuild(cfg types.Config, emitter *events.Emitter) (*Engine, error) {
	if !cfg.Persist.Enabled {
		return Build(cfg, emitter)
	}

	store, err := index.OpenStore(cfg.Persist.Path)
	if err != nil {
		return nil, err
	}
	defer store.Close()

	if idx, buildID, err := store.Load(); err == nil {
		loaded, err := corpus.Load(cfg.Corpus.Path)
		if err != nil {
			return nil, err
		}
		return &Engine{
			cfg:      cfg,
			idx:      idx,
			resolver: query.NewResolver(idx, cfg.Index.OOVKgramPolicy),
			rows:     corpus.NewRowStore(loaded.Rows),
			emitter:  emitter,
			buildID:  buildID,
		}, nil
	}

	e, err := Build(cfg, emitter)
	if err != nil {
		return nil, err
	}

	if buildID, err := store.Save(e.idx); err != nil {
		log.Printf("index persist: failed to save: %v", err)
	} else {
		e.buildID = buildID
	}

	return e, nil
}

// Query runs the conjunctive query evaluator against terms and
// projects the result into document rows, applying the wildcard
// post-filter.
func (e *Engine) Query(terms []string) ([]corpus.Row, error) {
	ids, err := query.Evaluate(e.resolver, terms)
	if err != nil {
		if e.emitter != nil {
			e.emitter.Emit(events.QueryFailedEvent(terms, err.Error()))
		}
		return nil, err
	}
	return e.rows.Project(ids, terms), nil
}

// Stats returns basic counters for health/metrics endpoints.
func (e *Engine) Stats() map[string]int {
	return map[string]int{
		"documents": e.rows.Len(),
		"terms":     len(e.idx.TokenToID),
	}
}

// BuildID returns the identifier assigned to the current build.
func (e *Engine) BuildID() string {
	return e.buildID
}
