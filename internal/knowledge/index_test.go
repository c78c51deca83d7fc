package knowledge

import (
	"strings"
	"testing"

	"github.com/eshfaq-ux/foliochat/internal/profile"
)

func TestBuildIndex_CoversProfile(t *testing.T) {
	p := profile.Default()
	idx := BuildIndex(p)

	categories := map[string]bool{}
	for _, e := range idx.entries {
		categories[e.Category] = true
	}
	for _, want := range []string{"personal", "skills", "projects", "experience", "contact"} {
		if !categories[want] {
			t.Errorf("index missing category %q", want)
		}
	}
}

func TestSearch_FindsContactByKeyword(t *testing.T) {
	idx := BuildIndex(profile.Default())
	results := idx.Search("how do I email you", 3)
	if len(results) == 0 {
		t.Fatal("no results for contact query")
	}
	if results[0].ID != "contact-info" {
		t.Errorf("top result = %q, want contact-info", results[0].ID)
	}
}

func TestSearch_KeywordOutranksContent(t *testing.T) {
	idx := &Index{entries: []Entry{
		{ID: "a", Content: "mentions docker in passing", Category: "x"},
		{ID: "b", Content: "nothing relevant", Category: "x", Keywords: []string{"docker"}},
	}}
	results := idx.Search("docker", 2)
	if len(results) != 2 {
		t.Fatalf("len = %d, want 2", len(results))
	}
	if results[0].ID != "b" {
		t.Errorf("keyword match should outrank content match, got %q first", results[0].ID)
	}
}

func TestSearch_LimitAndZeroScoreFiltering(t *testing.T) {
	idx := BuildIndex(profile.Default())
	results := idx.Search("project", 2)
	if len(results) > 2 {
		t.Errorf("limit not applied: %d results", len(results))
	}
	for _, r := range results {
		if r.Score <= 0 {
			t.Errorf("zero-score entry %q returned", r.ID)
		}
	}
}

func TestSearch_EmptyQuery(t *testing.T) {
	idx := BuildIndex(profile.Default())
	if got := idx.Search("   ", 3); got != nil {
		t.Errorf("expected nil for empty query, got %d results", len(got))
	}
}

func TestSearch_Deterministic(t *testing.T) {
	idx := BuildIndex(profile.Default())
	a := idx.Search("ai automation skills", 5)
	b := idx.Search("ai automation skills", 5)
	if len(a) != len(b) {
		t.Fatal("result count differs between identical queries")
	}
	for i := range a {
		if a[i].ID != b[i].ID {
			t.Errorf("result order differs at %d: %q vs %q", i, a[i].ID, b[i].ID)
		}
	}
}

func TestSearch_ProjectByTechnology(t *testing.T) {
	idx := BuildIndex(profile.Default())
	results := idx.Search("redis", 3)
	found := false
	for _, r := range results {
		if strings.HasPrefix(r.ID, "project-") {
			found = true
		}
	}
	if !found {
		t.Error("expected a project entry for technology query")
	}
}
