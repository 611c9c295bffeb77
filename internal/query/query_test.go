package query

import (
	"errors"
	"reflect"
	"testing"

	"github.com/cbr9/information-retrieval-twitter/internal/index"
	"github.com/cbr9/information-retrieval-twitter/pkg/types"
)

func buildIndex(t *testing.T, docs []index.Doc) *index.Index {
	t.Helper()
	idx, err := index.Build(docs, map[string]struct{}{"the": {}}, 3, 0)
	if err != nil {
		t.Fatalf("index.Build() error = %v", err)
	}
	return idx
}

func TestEvaluate_LiteralConjunction(t *testing.T) {
	idx := buildIndex(t, []index.Doc{
		{ID: 1, Body: "the quick brown fox"},
		{ID: 2, Body: "quick brown dogs"},
	})
	r := NewResolver(idx, types.OOVKgramFail)

	got, err := Evaluate(r, []string{"quick", "brown"})
	if err != nil {
		t.Fatalf("Evaluate() error = %v", err)
	}
	want := []types.DocID{1, 2}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Evaluate() = %v, want %v", got, want)
	}
}

func TestEvaluate_OOVTerm(t *testing.T) {
	idx := buildIndex(t, []index.Doc{
		{ID: 1, Body: "the quick brown fox"},
		{ID: 2, Body: "quick brown dogs"},
	})
	r := NewResolver(idx, types.OOVKgramFail)

	if _, err := Evaluate(r, []string{"fox"}); err != nil {
		t.Errorf("Evaluate([fox]) unexpected error = %v", err)
	}

	_, err := Evaluate(r, []string{"cat"})
	if !errors.Is(err, types.ErrOOVTerm) {
		t.Errorf("Evaluate([cat]) error = %v, want ErrOOVTerm", err)
	}
}

func TestEvaluate_NoDocumentMatchesAllThree(t *testing.T) {
	idx := buildIndex(t, []index.Doc{
		{ID: 10, Body: "vaccine covid"},
		{ID: 11, Body: "malaria vaccine"},
	})
	r := NewResolver(idx, types.OOVKgramFail)

	got, err := Evaluate(r, []string{"vaccine", "covid", "malaria"})
	if err != nil {
		t.Fatalf("Evaluate() error = %v", err)
	}
	if len(got) != 0 {
		t.Errorf("Evaluate() = %v, want empty", got)
	}

	got, err = Evaluate(r, []string{"vaccine", "covid"})
	if err != nil {
		t.Fatalf("Evaluate() error = %v", err)
	}
	if !reflect.DeepEqual(got, []types.DocID{10}) {
		t.Errorf("Evaluate() = %v, want [10]", got)
	}
}

func TestEvaluate_WildcardCandidateSetBeforePostFilter(t *testing.T) {
	idx := buildIndex(t, []index.Doc{
		{ID: 20, Body: "vaccination"},
		{ID: 21, Body: "vacation"},
	})
	r := NewResolver(idx, types.OOVKgramFail)

	got, err := Evaluate(r, []string{"vacc*on"})
	if err != nil {
		t.Fatalf("Evaluate() error = %v", err)
	}
	want := []types.DocID{20}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Evaluate() candidate set = %v, want %v (vacation lacks the k-gram \"acc\"; post-filter happens at projection, not here)", got, want)
	}
}

func TestEvaluate_WildcardIntersectedWithLiteral(t *testing.T) {
	idx := buildIndex(t, []index.Doc{
		{ID: 30, Body: "coronavirus numbers"},
		{ID: 31, Body: "covid numbers"},
	})
	r := NewResolver(idx, types.OOVKgramFail)

	got, err := Evaluate(r, []string{"*nu*", "covid"})
	if err != nil {
		t.Fatalf("Evaluate() error = %v", err)
	}
	want := []types.DocID{31}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Evaluate() = %v, want %v", got, want)
	}
}

func TestEvaluate_EmptyQuery(t *testing.T) {
	idx := buildIndex(t, []index.Doc{{ID: 1, Body: "hello"}})
	r := NewResolver(idx, types.OOVKgramFail)

	got, err := Evaluate(r, nil)
	if err != nil {
		t.Fatalf("Evaluate() error = %v", err)
	}
	if len(got) != 0 {
		t.Errorf("Evaluate(nil) = %v, want empty", got)
	}
}

func TestResolve_UnsupportedPattern(t *testing.T) {
	idx := buildIndex(t, []index.Doc{{ID: 1, Body: "monumental"}})
	r := NewResolver(idx, types.OOVKgramFail)

	_, _, _, err := r.Resolve([]string{"*mon*al*"})
	if !errors.Is(err, types.ErrUnsupportedPattern) {
		t.Errorf("Resolve() error = %v, want ErrUnsupportedPattern", err)
	}
}

func TestResolve_EmptyPatternAfterStripping(t *testing.T) {
	idx := buildIndex(t, []index.Doc{{ID: 1, Body: "monumental"}})
	r := NewResolver(idx, types.OOVKgramFail)

	_, _, _, err := r.Resolve([]string{"*"})
	if !errors.Is(err, types.ErrUnsupportedPattern) {
		t.Errorf("Resolve() error = %v, want ErrUnsupportedPattern", err)
	}
}

func TestResolve_OOVKgramPolicyFail(t *testing.T) {
	idx := buildIndex(t, []index.Doc{{ID: 1, Body: "covid"}})
	r := NewResolver(idx, types.OOVKgramFail)

	_, _, _, err := r.Resolve([]string{"zzz*"})
	if !errors.Is(err, types.ErrOOVKgram) {
		t.Errorf("Resolve() error = %v, want ErrOOVKgram", err)
	}
}

func TestResolve_OOVKgramPolicyEmpty(t *testing.T) {
	idx := buildIndex(t, []index.Doc{{ID: 1, Body: "covid"}})
	r := NewResolver(idx, types.OOVKgramEmpty)

	_, docIDs, hadWildcard, err := r.Resolve([]string{"zzz*"})
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if !hadWildcard {
		t.Error("expected hadWildcard = true")
	}
	if len(docIDs) != 0 {
		t.Errorf("docIDs = %v, want empty under OOVKgramEmpty policy", docIDs)
	}
}
