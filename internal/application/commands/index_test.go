package commands

import (
	"context"
	"strings"
	"testing"
	"time"

	"cognet/internal/domain"
)

func TestIndexCommandExecute(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	repo := newStubRepo(
		domain.Note{
			Path: "old.md", Title: "Old", Tags: []string{"archive"},
			ModTime: now.AddDate(0, 0, -30),
		},
		domain.Note{
			Path: "fresh.md", Title: "Fresh", Tags: []string{"active"},
			ModTime: now.AddDate(0, 0, -2),
		},
		domain.Note{
			Path: "untagged.md", Title: "Untagged",
			ModTime: now.AddDate(0, 0, -1),
		},
	)

	cmd := NewIndexCommand(repo, IndexParams{RecentDays: 7, Now: now})
	result, err := cmd.Execute(context.Background())
	if err != nil {
		t.Fatal(err)
	}

	doc := result.Doc
	if !strings.Contains(doc, "Total notes: 3") {
		t.Error("index should report the total note count")
	}
	if !strings.Contains(doc, "## Recently Updated (last 7 days)") {
		t.Error("index should have a recent-updates section")
	}
	if strings.Contains(doc, "[Old](old.md) - ") {
		t.Error("stale notes must not appear in the recent section")
	}
	// Most recent first.
	untagged := strings.Index(doc, "[Untagged](untagged.md)")
	fresh := strings.Index(doc, "[Fresh](fresh.md)")
	if untagged < 0 || fresh < 0 || untagged > fresh {
		t.Error("recent notes should be ordered newest first")
	}
	if !strings.Contains(doc, "### #active (1)") {
		t.Error("index should group notes by tag")
	}
	if !strings.Contains(doc, "## Untagged") {
		t.Error("index should list untagged notes")
	}
}

func TestIndexCommandDefaults(t *testing.T) {
	repo := newStubRepo(domain.Note{Path: "a.md", Title: "A"})

	// Zero params fall back to a 7-day window ending now.
	cmd := NewIndexCommand(repo, IndexParams{})
	result, err := cmd.Execute(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(result.Doc, "Total notes: 1") {
		t.Error("index should render with default parameters")
	}
}

func TestIndexCommandStable(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	repo := newStubRepo(
		domain.Note{Path: "b.md", Title: "B", Tags: []string{"t"}, ModTime: now.AddDate(0, 0, -1)},
		domain.Note{Path: "a.md", Title: "A", Tags: []string{"t"}, ModTime: now.AddDate(0, 0, -1)},
	)
	cmd := NewIndexCommand(repo, IndexParams{RecentDays: 7, Now: now})

	first, err := cmd.Execute(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	second, err := cmd.Execute(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if first.Doc != second.Doc {
		t.Error("index must render identically for a fixed corpus and time")
	}
}
