package commands

import (
	"context"
	"strings"
	"testing"

	"cognet/internal/domain"
)

func TestComputeStats(t *testing.T) {
	notes := []domain.Note{
		{
			Path: "a.md", Title: "A", Body: "one two three",
			Tags: []string{"go", "cli"}, Links: []string{"b", "missing"},
			HasMeta: true,
		},
		{
			Path: "b.md", Title: "B", Body: "four five",
			Tags: []string{"go"},
		},
		{
			Path: "c.md", Title: "C", Body: "",
		},
	}

	s := ComputeStats(notes)

	if s.NoteCount != 3 {
		t.Errorf("NoteCount = %d, want 3", s.NoteCount)
	}
	if s.WordCount != 5 {
		t.Errorf("WordCount = %d, want 5", s.WordCount)
	}
	if s.LinkCount != 2 {
		t.Errorf("LinkCount = %d, want 2", s.LinkCount)
	}
	if s.BrokenLinks != 1 {
		t.Errorf("BrokenLinks = %d, want 1", s.BrokenLinks)
	}
	if s.DistinctTags != 2 {
		t.Errorf("DistinctTags = %d, want 2", s.DistinctTags)
	}
	if s.TaggedNotes != 2 {
		t.Errorf("TaggedNotes = %d, want 2", s.TaggedNotes)
	}
	if s.WithMeta != 1 {
		t.Errorf("WithMeta = %d, want 1", s.WithMeta)
	}
	if len(s.TopTags) == 0 || s.TopTags[0].Tag != "go" || s.TopTags[0].Count != 2 {
		t.Errorf("TopTags = %v, want go:2 first", s.TopTags)
	}
	if len(s.TopTargets) == 0 || s.TopTargets[0].Tag != "b" {
		t.Errorf("TopTargets = %v, want b first", s.TopTargets)
	}
	if len(s.ByRoot) != 1 || s.ByRoot[0].Root != "." || s.ByRoot[0].Count != 3 {
		t.Errorf("ByRoot = %v, want [. 3]", s.ByRoot)
	}
}

func TestTopDir(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{path: "02-Notes/a.md", want: "02-Notes"},
		{path: "02-Notes/deep/b.md", want: "02-Notes"},
		{path: "root.md", want: "."},
	}
	for _, tt := range tests {
		if got := topDir(tt.path); got != tt.want {
			t.Errorf("topDir(%q) = %q, want %q", tt.path, got, tt.want)
		}
	}
}

func TestComputeStatsEmpty(t *testing.T) {
	s := ComputeStats(nil)

	if s.NoteCount != 0 || s.WordCount != 0 || s.BrokenLinks != 0 {
		t.Errorf("empty corpus should produce zero stats, got %+v", s)
	}
}

func TestStatsCommandExecute(t *testing.T) {
	repo := newStubRepo(
		domain.Note{Path: "a.md", Title: "A", Body: "hello world", Tags: []string{"go"}, HasMeta: true},
		domain.Note{Path: "b.md", Title: "B", Body: "more text here"},
	)

	result, err := NewStatsCommand(repo).Execute(context.Background())
	if err != nil {
		t.Fatal(err)
	}

	doc := result.Doc
	if !strings.HasPrefix(doc, "# System Statistics\n") {
		t.Error("document should open with the statistics heading")
	}
	if !strings.Contains(doc, "- Notes: 2\n") {
		t.Error("document should report the note count")
	}
	if !strings.Contains(doc, "- Words per note: 2.5\n") {
		t.Error("document should report average words per note")
	}
	if !strings.Contains(doc, "- #go: 1\n") {
		t.Error("document should list top tags")
	}
}
