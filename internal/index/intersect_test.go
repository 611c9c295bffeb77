package index

import (
	"reflect"
	"testing"

	"github.com/cbr9/information-retrieval-twitter/pkg/types"
)

func docIDs(vs ...uint64) []types.DocID {
	out := make([]types.DocID, len(vs))
	for i, v := range vs {
		out[i] = types.DocID(v)
	}
	return out
}

func TestIntersect(t *testing.T) {
	tests := []struct {
		name string
		a, b []types.DocID
		want []types.DocID
	}{
		{"disjoint", docIDs(1, 3, 5), docIDs(2, 4, 6), docIDs()},
		{"overlap", docIDs(1, 2, 3, 4), docIDs(2, 4, 6), docIDs(2, 4)},
		{"empty a", nil, docIDs(1, 2), docIDs()},
		{"empty b", docIDs(1, 2), nil, docIDs()},
		{"identical", docIDs(1, 2, 3), docIDs(1, 2, 3), docIDs(1, 2, 3)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Intersect(tt.a, tt.b)
			if len(got) == 0 && len(tt.want) == 0 {
				return
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Intersect(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestIntersectCommutative(t *testing.T) {
	a := docIDs(1, 2, 3, 7, 9)
	b := docIDs(2, 3, 5, 9)

	ab := Intersect(a, b)
	ba := Intersect(b, a)

	if !reflect.DeepEqual(ab, ba) {
		t.Errorf("Intersect not commutative: %v vs %v", ab, ba)
	}
}

func TestUnionDocIDs(t *testing.T) {
	got := UnionDocIDs(docIDs(1, 3), docIDs(2, 3, 4), nil)
	want := docIDs(1, 2, 3, 4)
	if !reflect.DeepEqual(got, want) {
		t.Errorf("UnionDocIDs() = %v, want %v", got, want)
	}
}
