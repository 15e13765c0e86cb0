package commands

import (
	"context"
	"strings"
	"testing"

	"cognet/internal/domain"
)

func TestOrphansCommandExecute(t *testing.T) {
	repo := newStubRepo(
		domain.Note{
			Path: "hub.md", Title: "Hub", Tags: []string{"meta"}, HasMeta: true,
		},
		domain.Note{
			Path: "linked.md", Title: "Linked", Links: []string{"hub"},
			Tags: []string{"x"}, HasMeta: true,
		},
		domain.Note{
			Path: "loner.md", Title: "Loner", Body: "nobody knows me",
		},
	)

	result, err := NewOrphansCommand(repo).Execute(context.Background())
	if err != nil {
		t.Fatal(err)
	}

	report := result.Report
	if len(report.Isolated) != 1 || report.Isolated[0] != "loner.md" {
		t.Errorf("isolated = %v, want [loner.md]", report.Isolated)
	}
	if len(report.NoMeta) != 1 || report.NoMeta[0] != "loner.md" {
		t.Errorf("no-meta = %v, want [loner.md]", report.NoMeta)
	}

	doc := result.Doc
	if !strings.HasPrefix(doc, "# Orphan Notes Report\n") {
		t.Error("document should open with the report heading")
	}
	if !strings.Contains(doc, "## Completely Isolated Notes") {
		t.Error("document should list isolated notes")
	}
	if !strings.Contains(doc, "- `loner.md`") {
		t.Error("document should name the isolated note")
	}
	if !strings.Contains(doc, "## Recommendations") {
		t.Error("document should end with recommendations")
	}
}

func TestOrphansCommandAllConnected(t *testing.T) {
	repo := newStubRepo(
		domain.Note{Path: "a.md", Title: "A", Tags: []string{"t"}, Links: []string{"b"}, HasMeta: true},
		domain.Note{Path: "b.md", Title: "B", Tags: []string{"t"}, Links: []string{"a"}, HasMeta: true},
	)

	result, err := NewOrphansCommand(repo).Execute(context.Background())
	if err != nil {
		t.Fatal(err)
	}

	if len(result.Report.Isolated) != 0 {
		t.Errorf("expected no isolated notes, got %v", result.Report.Isolated)
	}
	if strings.Contains(result.Doc, "## Completely Isolated Notes") {
		t.Error("connected corpus should omit the isolated section")
	}
}
