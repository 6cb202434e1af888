package genealogy

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestComputeStats(t *testing.T) {
	family, err := LoadFamily("testdata/mappanyukki.yaml")
	if err != nil {
		t.Fatalf("LoadFamily failed: %v", err)
	}

	got := ComputeStats(family.Persons)
	want := Stats{
		Total:                8,
		Male:                 4,
		Female:               4,
		Living:               6,
		Deceased:             2,
		Generations:          4,
		AvgChildrenPerParent: 1.8,
		OldestBirthYear:      1920,
		NewestBirthYear:      2010,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("ComputeStats mismatch (-want +got):\n%s", diff)
	}
}

func TestComputeStats_Edges(t *testing.T) {
	if got := ComputeStats(nil); got != (Stats{}) {
		t.Errorf("ComputeStats(nil) = %+v, want zero", got)
	}

	// a pure cycle has no root, but a non-empty family has one generation
	cyclic := []Person{
		{ID: "a", Children: []string{"b"}, Living: true},
		{ID: "b", Children: []string{"a"}, BirthDate: "not-a-date"},
	}
	got := ComputeStats(cyclic)
	if got.Generations != 1 {
		t.Errorf("Generations = %d, want 1", got.Generations)
	}
	if got.OldestBirthYear != 0 || got.NewestBirthYear != 0 {
		t.Errorf("birth years = %d..%d, want none", got.OldestBirthYear, got.NewestBirthYear)
	}
	if got.Living != 1 || got.Deceased != 1 || got.AvgChildrenPerParent != 1 {
		t.Errorf("unexpected counts: %+v", got)
	}
}
