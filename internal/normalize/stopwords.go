package normalize

import (
	"bufio"
	"os"

	"github.com/cbr9/information-retrieval-twitter/pkg/types"
)

// LoadStopwords reads one token per line from path, ignoring blank
// lines. Stopwords are punctuation-stripped the same way body tokens
// are, so a stopwords file can list either form interchangeably.
func LoadStopwords(path string) (map[string]struct{}, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, types.WrapError("normalize.LoadStopwords", types.ErrCorpusIO, err)
	}
	defer f.Close()

	stopwords := make(map[string]struct{})
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			continue
		}
		word := RemovePunctuation(line)
		if word == "" {
			continue
		}
		stopwords[word] = struct{}{}
	}
	if err := scanner.Err(); err != nil {
		return nil, types.WrapError("normalize.LoadStopwords", types.ErrCorpusIO, err)
	}

	return stopwords, nil
}
