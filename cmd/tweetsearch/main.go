// Command tweetsearch runs a single conjunctive query against the
// tweet corpus and prints each matching body on its own line.
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/cbr9/information-retrieval-twitter/internal/engine"
	"github.com/cbr9/information-retrieval-twitter/pkg/types"
)

// termList collects repeated --terms flags, in the order given.
type termList []string

func (t *termList) String() string {
	return fmt.Sprint([]string(*t))
}

func (t *termList) Set(value string) error {
	*t = append(*t, value)
	return nil
}

func main() {
	var terms termList
	flag.Var(&terms, "terms", "a query term; repeat for each term (required)")

	corpusPath := flag.String("corpus", "", "path to the tab-separated corpus file")
	flag.StringVar(corpusPath, "c", "", "path to the tab-separated corpus file (shorthand)")

	stopwordsPath := flag.String("stopwords", "", "path to the stopwords file")
	persistPath := flag.String("persist", "", "optional path to a persisted index cache")
	oovPolicy := flag.String("oov-kgram-policy", "", `k-gram OOV policy: "fail" or "empty"`)

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, `tweetsearch - conjunctive Boolean wildcard search over a tweet corpus

Usage: tweetsearch query --terms <T1> --terms <T2> ...

Options:
  -c, --corpus PATH        Corpus TSV path (default: ./data/twitter-cleaned.tsv)
  --stopwords PATH         Stopwords file path
  --persist PATH           Optional persisted index cache path
  --oov-kgram-policy MODE  "fail" (default) or "empty"

Examples:
  tweetsearch query --terms covid --terms numbers
  tweetsearch query --terms "vacc*on"
`)
	}

	if len(os.Args) < 2 || os.Args[1] != "query" {
		flag.Usage()
		os.Exit(1)
	}
	flag.CommandLine.Parse(os.Args[2:])

	if len(terms) == 0 {
		fmt.Fprintln(os.Stderr, "error: at least one --terms value is required")
		os.Exit(1)
	}

	cfg := types.DefaultConfig()
	if *corpusPath != "" {
		cfg.Corpus.Path = *corpusPath
	}
	if *stopwordsPath != "" {
		cfg.Corpus.StopwordsPath = *stopwordsPath
	}
	if *persistPath != "" {
		cfg.Persist.Enabled = true
		cfg.Persist.Path = *persistPath
	}
	switch *oovPolicy {
	case string(types.OOVKgramFail):
		cfg.Index.OOVKgramPolicy = types.OOVKgramFail
	case string(types.OOVKgramEmpty):
		cfg.Index.OOVKgramPolicy = types.OOVKgramEmpty
	case "":
		// keep default
	default:
		fmt.Fprintf(os.Stderr, "error: unknown --oov-kgram-policy %q\n", *oovPolicy)
		os.Exit(1)
	}

	eng, err := engine.LoadOrBuild(*cfg, nil)
	if err != nil {
		fatal(err)
	}

	rows, err := eng.Query(terms)
	if err != nil {
		fatal(err)
	}

	for _, row := range rows {
		fmt.Println(row.Body)
	}
}

func fatal(err error) {
	var e *types.Error
	if errors.As(err, &e) {
		fmt.Fprintf(os.Stderr, "error: %s\n", e.Error())
	} else {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
	}
	os.Exit(1)
}
