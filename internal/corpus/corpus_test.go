package corpus

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/cbr9/information-retrieval-twitter/pkg/types"
)

func writeTempCorpus(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "corpus.tsv")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write temp corpus: %v", err)
	}
	return path
}

func TestLoad_ParsesWellFormedRows(t *testing.T) {
	path := writeTempCorpus(t, "id\tuser_id\tuser_name\tbody\n1\t@a\tA\tthe quick brown fox\n2\t@b\tB\tquick brown dogs\n")

	result, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(result.Rows) != 2 {
		t.Fatalf("got %d rows, want 2", len(result.Rows))
	}
	if result.Rows[0].ID != 1 || result.Rows[0].UserHandle != "@a" {
		t.Errorf("row 0 = %+v, unexpected", result.Rows[0])
	}
}

func TestLoad_SkipsMalformedRows(t *testing.T) {
	path := writeTempCorpus(t, "id\tuser_id\tuser_name\tbody\n1\t@a\tA\tok\nbad\trow\n2\t@b\tB\tok too\n")

	result, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(result.Rows) != 2 {
		t.Fatalf("got %d rows, want 2", len(result.Rows))
	}
	if result.SkippedRows != 1 {
		t.Errorf("SkippedRows = %d, want 1", result.SkippedRows)
	}
}

func TestLoad_UnreadableFileIsFatal(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "does-not-exist.tsv"))
	if err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestRowStore_DeduplicatesFullRows(t *testing.T) {
	rows := []Row{
		{ID: 1, UserHandle: "@a", UserName: "A", Body: "hello"},
		{ID: 1, UserHandle: "@a", UserName: "A", Body: "hello"},
		{ID: 2, UserHandle: "@b", UserName: "B", Body: "world"},
	}

	store := NewRowStore(rows)
	if store.Len() != 2 {
		t.Errorf("Len() = %d, want 2", store.Len())
	}
}

func TestRowStore_ProjectFiltersByIDAndPostFilter(t *testing.T) {
	rows := []Row{
		{ID: 20, UserHandle: "@a", UserName: "A", Body: "vaccination"},
		{ID: 21, UserHandle: "@b", UserName: "B", Body: "vacation"},
	}
	store := NewRowStore(rows)

	got := store.Project([]types.DocID{20, 21}, []string{"vacc*on"})
	if len(got) != 1 || got[0].ID != 20 {
		t.Errorf("Project() = %+v, want only row 20 (vacation lacks the \"vacc\" piece)", got)
	}
}

func TestRowStore_ProjectNoWildcardTermsSkipsPostFilter(t *testing.T) {
	rows := []Row{{ID: 1, UserHandle: "@a", UserName: "A", Body: "quick brown fox"}}
	store := NewRowStore(rows)

	got := store.Project([]types.DocID{1}, []string{"quick", "brown"})
	if len(got) != 1 {
		t.Errorf("Project() = %+v, want 1 row", got)
	}
}

func TestRowStore_ProjectEmptyIDsReturnsNil(t *testing.T) {
	store := NewRowStore([]Row{{ID: 1, Body: "hello"}})
	if got := store.Project(nil, nil); got != nil {
		t.Errorf("Project(nil) = %v, want nil", got)
	}
}
