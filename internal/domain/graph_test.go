package domain

import (
	"testing"
)

func testNotes() []Note {
	return []Note{
		{
			Path:    "02-Notes/hub.md",
			Title:   "Hub",
			Body:    "central index connecting everything",
			Tags:    []string{"meta"},
			HasMeta: true,
		},
		{
			Path:    "02-Notes/spaced-repetition.md",
			Title:   "Spaced Repetition",
			Body:    "review cards at growing intervals to fight forgetting",
			Tags:    []string{"learning"},
			Links:   []string{"hub", "missing-note"},
			HasMeta: true,
		},
		{
			Path:  "02-Notes/loner.md",
			Title: "Loner",
			Body:  "nothing points here and this points nowhere",
		},
		{
			Path:    "03-Projects/flashcards.md",
			Title:   "Flashcards",
			Body:    "review cards at growing intervals, a practical setup",
			Tags:    []string{"learning"},
			Links:   []string{"spaced-repetition"},
			HasMeta: true,
		},
	}
}

func TestGraphResolve(t *testing.T) {
	g := BuildGraph(testNotes())

	tests := []struct {
		name   string
		target string
		want   string
		ok     bool
	}{
		{name: "stem", target: "hub", want: "02-Notes/hub.md", ok: true},
		{name: "basename", target: "hub.md", want: "02-Notes/hub.md", ok: true},
		{name: "unknown", target: "nothing", ok: false},
		{name: "case sensitive", target: "Hub", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := g.Resolve(tt.target)
			if ok != tt.ok {
				t.Fatalf("Resolve(%q) ok = %v, want %v", tt.target, ok, tt.ok)
			}
			if ok && got != tt.want {
				t.Errorf("Resolve(%q) = %q, want %q", tt.target, got, tt.want)
			}
		})
	}
}

func TestGraphBacklinks(t *testing.T) {
	g := BuildGraph(testNotes())

	back := g.Backlinks("02-Notes/spaced-repetition.md")
	if len(back) != 1 || back[0] != "03-Projects/flashcards.md" {
		t.Errorf("unexpected backlinks %v", back)
	}

	if got := g.Backlinks("02-Notes/loner.md"); len(got) != 0 {
		t.Errorf("expected no backlinks for loner, got %v", got)
	}
}

func TestGraphBrokenLinks(t *testing.T) {
	g := BuildGraph(testNotes())

	broken := g.BrokenLinks()
	if len(broken) != 1 {
		t.Fatalf("expected 1 broken link, got %d", len(broken))
	}
	if broken[0].SourcePath != "02-Notes/spaced-repetition.md" || broken[0].Target != "missing-note" {
		t.Errorf("unexpected broken link %+v", broken[0])
	}
}

func TestGraphOrphans(t *testing.T) {
	g := BuildGraph(testNotes())

	report := g.Orphans()

	if len(report.Isolated) != 1 || report.Isolated[0] != "02-Notes/loner.md" {
		t.Errorf("expected loner to be isolated, got %v", report.Isolated)
	}
	// hub has a backlink but no outgoing links.
	if !containsString(report.NoLinks, "02-Notes/hub.md") {
		t.Errorf("expected hub in NoLinks, got %v", report.NoLinks)
	}
	if containsString(report.NoBacklinks, "02-Notes/hub.md") {
		t.Errorf("hub has a backlink, got %v", report.NoBacklinks)
	}
	if !containsString(report.NoMeta, "02-Notes/loner.md") {
		t.Errorf("expected loner in NoMeta, got %v", report.NoMeta)
	}
}

func TestGraphSimilarity(t *testing.T) {
	g := BuildGraph(testNotes())

	score := g.Similarity("02-Notes/spaced-repetition.md", "03-Projects/flashcards.md")
	if score <= 0 {
		t.Fatalf("expected positive similarity for overlapping notes, got %f", score)
	}
	if score > 1 {
		t.Errorf("similarity must not exceed 1, got %f", score)
	}

	reverse := g.Similarity("03-Projects/flashcards.md", "02-Notes/spaced-repetition.md")
	if score != reverse {
		t.Errorf("similarity is not symmetric: %f vs %f", score, reverse)
	}

	if got := g.Similarity("02-Notes/hub.md", "nope.md"); got != 0 {
		t.Errorf("unknown path should score 0, got %f", got)
	}
}

func TestGraphSuggestFor(t *testing.T) {
	g := BuildGraph(testNotes())

	// flashcards already links to spaced-repetition, so the suggestion
	// engine must not propose it again.
	for _, s := range g.SuggestFor("03-Projects/flashcards.md", 0.01, 10) {
		if s.Path == "02-Notes/spaced-repetition.md" {
			t.Error("suggested a note that is already linked")
		}
	}

	// hub links nowhere, so the similar notes are all fair game.
	suggestions := g.SuggestFor("02-Notes/spaced-repetition.md", 0.01, 10)
	found := false
	for _, s := range suggestions {
		if s.Path == "03-Projects/flashcards.md" {
			found = true
		}
	}
	if !found {
		t.Errorf("expected flashcards among suggestions, got %v", suggestions)
	}

	for i := 1; i < len(suggestions); i++ {
		if suggestions[i].Score > suggestions[i-1].Score {
			t.Error("suggestions are not sorted by descending score")
		}
	}

	if got := g.SuggestFor("02-Notes/spaced-repetition.md", 0.01, 0); len(got) != 0 {
		t.Errorf("limit 0 should return nothing, got %v", got)
	}
}

func containsString(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
