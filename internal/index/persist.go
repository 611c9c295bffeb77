package index

import (
	"encoding/json"

	"github.com/cockroachdb/pebble"
	"github.com/google/uuid"

	"github.com/cbr9/information-retrieval-twitter/pkg/types"
)

// persistKey is the single Pebble key the built index is stored
// under. The index is small enough, and rebuilt infrequently enough,
// that one opaque blob per store is simpler than a per-record key
// layout.
var persistKey = []byte("idx:blob")

// blobMagic and blobVersion prefix the stored payload so a future,
// incompatible encoding can be detected instead of silently
// misparsed.
const (
	blobMagic   byte = 0xB7
	blobVersion byte = 0x01
)

// snapshot is the JSON-serializable form of an Index plus the build
// identifier assigned when it was written.
type snapshot struct {
	BuildID    string                          `json:"build_id"`
	K          int                             `json:"k"`
	Dictionary map[string]types.DictEntry      `json:"dictionary"`
	TokenToID  map[string]types.TermID         `json:"token_to_id"`
	Postings   map[types.TermID][]types.DocID  `json:"postings"`
	KGrams     map[string][]types.TermID       `json:"kgrams"`
}

// Store is an optional on-disk cache for a built Index, backed by
// Pebble, so that a server process does not have to re-scan the
// corpus on every restart.
type Store struct {
	db *pebble.DB
}

// OpenStore opens or creates a Pebble database at path.
func OpenStore(path string) (*Store, error) {
	db, err := pebble.Open(path, &pebble.Options{})
	if err != nil {
		return nil, types.WrapError("index.persist.Open", types.ErrStorageIO, err)
	}
	return &Store{db: db}, nil
}

// Close closes the underlying Pebble database.
func (s *Store) Close() error {
	if err := s.db.Close(); err != nil {
		return types.WrapError("index.persist.Close", types.ErrStorageIO, err)
	}
	return nil
}

// Save encodes idx as a versioned JSON blob, tagged with a fresh
// build ID, and writes it under the single persistence key.
func (s *Store) Save(idx *Index) (buildID string, err error) {
	buildID = uuid.NewString()

	snap := snapshot{
		BuildID:    buildID,
		K:          idx.K,
		Dictionary: idx.Dictionary,
		TokenToID:  idx.TokenToID,
		Postings:   idx.Postings,
		KGrams:     idx.KGrams,
	}

	body, err := json.Marshal(snap)
	if err != nil {
		return "", types.WrapError("index.persist.Save", types.ErrStorageIO, err)
	}

	payload := make([]byte, 0, len(body)+2)
	payload = append(payload, blobMagic, blobVersion)
	payload = append(payload, body...)

	if err := s.db.Set(persistKey, payload, pebble.Sync); err != nil {
		return "", types.WrapError("index.persist.Save", types.ErrStorageIO, err)
	}
	return buildID, nil
}

// Load reads and decodes the persisted index, if one exists. It
// returns types.ErrNotFound if no index has been saved yet.
func (s *Store) Load() (*Index, string, error) {
	payload, closer, err := s.db.Get(persistKey)
	if err == pebble.ErrNotFound {
		return nil, "", types.WrapError("index.persist.Load", types.ErrNotFound, err)
	}
	if err != nil {
		return nil, "", types.WrapError("index.persist.Load", types.ErrStorageIO, err)
	}
	defer closer.Close()

	if len(payload) < 2 || payload[0] != blobMagic {
		return nil, "", types.Errorf("index.persist.Load", types.ErrStorageCorrupt, "missing blob magic byte")
	}
	if payload[1] != blobVersion {
		return nil, "", types.Errorf("index.persist.Load", types.ErrStorageCorrupt, "unsupported blob version %d", payload[1])
	}

	var snap snapshot
	if err := json.Unmarshal(payload[2:], &snap); err != nil {
		return nil, "", types.WrapError("index.persist.Load", types.ErrStorageCorrupt, err)
	}

	idx := &Index{
		K:          snap.K,
		Dictionary: snap.Dictionary,
		TokenToID:  snap.TokenToID,
		Postings:   snap.Postings,
		KGrams:     snap.KGrams,
	}
	if err := idx.validate(); err != nil {
		return nil, "", err
	}
	return idx, snap.BuildID, nil
}
