// Package corpus loads the tab-separated tweet corpus and provides
// the row store consulted by the document projector (C7).
package corpus

import (
	"encoding/csv"
	"errors"
	"io"
	"os"
	"strconv"

	"github.com/cbr9/information-retrieval-twitter/pkg/types"
)

// Row is one parsed corpus record: id, user handle, user name, body.
type Row struct {
	ID         types.DocID
	UserHandle string
	UserName   string
	Body       string
}

// LoadResult is the outcome of Load: the parsed rows plus a count of
// rows skipped for being malformed.
type LoadResult struct {
	Rows        []Row
	SkippedRows int
}

// Load reads a tab-separated corpus file. The first row is a header
// and is discarded. A row that does not parse into the four-column
// schema, or whose id is not a valid u64, is skipped and counted
// rather than failing the whole load; an unreadable file is fatal.
//
// There is no third-party CSV library anywhere in the reference
// corpus this project draws its stack from, so this reaches for
// encoding/csv rather than hand-rolling a tab-splitter.
func Load(path string) (*LoadResult, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, types.WrapError("corpus.Load", types.ErrCorpusIO, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.Comma = '\t'
	r.FieldsPerRecord = -1
	r.LazyQuotes = true

	result := &LoadResult{}

	if _, err := r.Read(); err != nil {
		if err == io.EOF {
			return result, nil
		}
		return nil, types.WrapError("corpus.Load", types.ErrCorpusIO, err)
	}

	for {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		var parseErr *csv.ParseError
		if errors.As(err, &parseErr) {
			// A row csv can't tokenize at all (e.g. unbalanced
			// quotes) is malformed, not an I/O failure: skip and
			// count it like any other schema mismatch.
			result.SkippedRows++
			continue
		}
		if err != nil {
			return nil, types.WrapError("corpus.Load", types.ErrCorpusIO, err)
		}

		row, ok := parseRow(record)
		if !ok {
			result.SkippedRows++
			continue
		}
		result.Rows = append(result.Rows, row)
	}

	return result, nil
}

func parseRow(record []string) (Row, bool) {
	if len(record) != 4 {
		return Row{}, false
	}

	id, err := strconv.ParseUint(record[0], 10, 64)
	if err != nil {
		return Row{}, false
	}

	return Row{
		ID:         types.DocID(id),
		UserHandle: record[1],
		UserName:   record[2],
		Body:       record[3],
	}, true
}
