package listview

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"pet-manager/internal/domain/pets"
)

var sample = []pets.Pet{
	{ID: 1, Name: "Rex", Species: "Dog", Age: 3},
	{ID: 2, Name: "Mia", Species: "Cat", Age: 2},
}

func TestRender_SearchAndFilterCombine(t *testing.T) {
	tests := []struct {
		name    string
		search  string
		filter  string
		wantIDs []int64
	}{
		{"dog filter + r", "r", "Dog", []int64{1}},
		{"filter is case-insensitive", "", "dog", []int64{1}},
		{"search matches species", "CAT", "all", []int64{2}},
		{"all + empty search", "", "all", []int64{1, 2}},
		{"empty filter means all", "", "", []int64{1, 2}},
		{"no match", "z", "all", []int64{}},
		{"search ok but filter excludes", "mia", "Dog", []int64{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := Render(sample, tt.search, tt.filter)
			got := make([]int64, 0, len(v.Items))
			for _, p := range v.Items {
				got = append(got, p.ID)
			}
			if diff := cmp.Diff(tt.wantIDs, got); diff != "" {
				t.Fatalf("ids mismatch (-want +got):\n%s", diff)
			}
			if v.Count != len(tt.wantIDs) || v.Empty != (len(tt.wantIDs) == 0) {
				t.Fatalf("count/empty mismatch: %#v", v)
			}
		})
	}
}

func TestRender_IsIdempotent(t *testing.T) {
	a := Render(sample, "i", "all")
	b := Render(sample, "i", "all")
	if diff := cmp.Diff(a, b); diff != "" {
		t.Fatalf("render not idempotent (-first +second):\n%s", diff)
	}
}

func TestRender_PreservesInsertionOrder(t *testing.T) {
	items := []pets.Pet{
		{ID: 30, Name: "Zed", Species: "dog"},
		{ID: 10, Name: "Abe", Species: "dog"},
	}
	v := Render(items, "", "dog")
	if v.Items[0].ID != 30 || v.Items[1].ID != 10 {
		t.Fatalf("expected insertion order, got %#v", v.Items)
	}
}

type testPort struct {
	items []pets.Pet
	empty bool
	count int
	calls int
}

func (p *testPort) RenderList(items []pets.Pet) { p.items = items; p.calls++ }
func (p *testPort) ShowEmptyState(empty bool)   { p.empty = empty }
func (p *testPort) SetCount(n int)              { p.count = n }

func TestDraw_EmptyStateWithZeroCount(t *testing.T) {
	port := &testPort{count: 99}
	Draw(port, Render(sample, "z", "all"))

	if !port.empty || port.count != 0 || len(port.items) != 0 {
		t.Fatalf("expected empty state with count 0, got %#v", port)
	}
}

func TestDraw_FullRebuild(t *testing.T) {
	port := &testPort{}
	Draw(port, Render(sample, "", "all"))
	Draw(port, Render(sample, "rex", "all"))

	if port.calls != 2 || len(port.items) != 1 || port.empty || port.count != 1 {
		t.Fatalf("expected list rebuilt to Rex only, got %#v", port)
	}
}

func TestSpecies_DistinctSorted(t *testing.T) {
	items := append(sample, pets.Pet{ID: 3, Name: "Bo", Species: "dog"}, pets.Pet{ID: 4, Name: "X", Species: " "})
	if diff := cmp.Diff([]string{"cat", "dog"}, Species(items)); diff != "" {
		t.Fatalf("species mismatch (-want +got):\n%s", diff)
	}
}
