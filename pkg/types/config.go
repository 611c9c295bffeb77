package types

import (
	"time"
)

// Config holds all configuration for the tweet search service.
type Config struct {
	// Corpus configuration
	Corpus CorpusConfig `json:"corpus"`

	// Index build configuration
	Index IndexConfig `json:"index"`

	// Optional on-disk index cache configuration
	Persist PersistConfig `json:"persist"`

	// Server configuration
	Server ServerConfig `json:"server"`

	// Logging configuration
	Log LogConfig `json:"log"`
}

// CorpusConfig locates the corpus and stopwords inputs.
type CorpusConfig struct {
	Path          string `json:"path"`
	StopwordsPath string `json:"stopwords_path"`
}

// OOVKgramPolicy controls what happens when a k-gram of a wildcard
// fragment is absent from the k-gram index: fail the whole query, or
// treat that fragment as matching no candidates.
type OOVKgramPolicy string

const (
	// OOVKgramFail surfaces the missing k-gram as a query error.
	OOVKgramFail OOVKgramPolicy = "fail"
	// OOVKgramEmpty treats the wildcard term as matching no candidates.
	OOVKgramEmpty OOVKgramPolicy = "empty"
)

// IndexConfig holds index-build parameters.
type IndexConfig struct {
	K              int            `json:"k"`               // k-gram window size
	Limit          int            `json:"limit"`            // max documents indexed
	OOVKgramPolicy OOVKgramPolicy `json:"oov_kgram_policy"`
}

// PersistConfig controls optional persistence of the built index.
type PersistConfig struct {
	Enabled bool   `json:"enabled"`
	Path    string `json:"path"` // pebble data directory
}

// ServerConfig holds HTTP server configuration.
type ServerConfig struct {
	Port            int           `json:"port"`
	ReadTimeout     time.Duration `json:"read_timeout"`
	WriteTimeout    time.Duration `json:"write_timeout"`
	ShutdownTimeout time.Duration `json:"shutdown_timeout"`
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level  string `json:"level"`  // trace, debug, info, warn, error
	Format string `json:"format"` // text, json
	Output string `json:"output"` // stdout, stderr, file path
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Corpus: CorpusConfig{
			Path:          "./data/twitter-cleaned.tsv",
			StopwordsPath: "./data/stopwords/english.txt",
		},
		Index: IndexConfig{
			K:              3,
			Limit:          200_000,
			OOVKgramPolicy: OOVKgramFail,
		},
		Persist: PersistConfig{
			Enabled: false,
			Path:    "./data/index.db",
		},
		Server: ServerConfig{
			Port:            8080,
			ReadTimeout:     30 * time.Second,
			WriteTimeout:    30 * time.Second,
			ShutdownTimeout: 10 * time.Second,
		},
		Log: LogConfig{
			Level:  "info",
			Format: "text",
			Output: "stdout",
		},
	}
}
