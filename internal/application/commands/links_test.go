package commands

import (
	"context"
	"strings"
	"testing"

	"cognet/internal/domain"
)

func linkCorpus() []domain.Note {
	return []domain.Note{
		{
			Path:  "02-Notes/spaced-repetition.md",
			Title: "Spaced Repetition",
			Body:  "review cards at growing intervals against forgetting",
			Tags:  []string{"learning"},
			Links: []string{"missing-note"},
		},
		{
			Path:  "02-Notes/flashcards.md",
			Title: "Flashcards",
			Body:  "review cards at growing intervals, deck setup notes",
			Tags:  []string{"learning"},
		},
		{
			Path:  "02-Notes/gardening.md",
			Title: "Gardening",
			Body:  "compost soil seedlings watering",
			Tags:  []string{"garden"},
		},
	}
}

func TestLinksCommandExecute(t *testing.T) {
	repo := newStubRepo(linkCorpus()...)
	cmd := NewLinksCommand(repo, LinkParams{MinSimilarity: 0.1, MaxSuggestions: 5})

	result, err := cmd.Execute(context.Background())
	if err != nil {
		t.Fatal(err)
	}

	if len(result.Broken) != 1 {
		t.Fatalf("expected 1 broken link, got %d", len(result.Broken))
	}
	if result.Broken[0].Target != "missing-note" {
		t.Errorf("broken target = %q", result.Broken[0].Target)
	}

	suggestions := result.Suggestions["02-Notes/spaced-repetition.md"]
	found := false
	for _, s := range suggestions {
		if s.Path == "02-Notes/flashcards.md" {
			found = true
		}
		if s.Path == "02-Notes/gardening.md" {
			t.Error("gardening should not be suggested for spaced repetition")
		}
	}
	if !found {
		t.Errorf("expected flashcards suggested, got %v", suggestions)
	}
}

func TestLinksCommandReport(t *testing.T) {
	repo := newStubRepo(linkCorpus()...)
	cmd := NewLinksCommand(repo, LinkParams{MinSimilarity: 0.1, MaxSuggestions: 5})

	result, err := cmd.Execute(context.Background())
	if err != nil {
		t.Fatal(err)
	}

	report := result.Report
	if !strings.HasPrefix(report, "# Link Audit Report\n") {
		t.Error("report should open with the audit heading")
	}
	if !strings.Contains(report, "## Broken Links") {
		t.Error("report should contain a broken links section")
	}
	if !strings.Contains(report, "- Broken link to: `missing-note`") {
		t.Error("report should list the broken target")
	}
	if !strings.Contains(report, "## Suggested Links") {
		t.Error("report should contain a suggestions section")
	}
	if !strings.Contains(report, "## Recommendations") {
		t.Error("report should end with recommendations")
	}
}

func TestLinksCommandCleanCorpus(t *testing.T) {
	repo := newStubRepo(domain.Note{
		Path: "a.md", Title: "A", Body: "totally unique words here", Links: []string{"b"},
	}, domain.Note{
		Path: "b.md", Title: "B", Body: "other unrelated content entirely",
	})
	cmd := NewLinksCommand(repo, LinkParams{MinSimilarity: 0.9, MaxSuggestions: 5})

	result, err := cmd.Execute(context.Background())
	if err != nil {
		t.Fatal(err)
	}

	if len(result.Broken) != 0 {
		t.Errorf("expected no broken links, got %v", result.Broken)
	}
	if strings.Contains(result.Report, "## Broken Links") {
		t.Error("clean corpus should omit the broken links section")
	}
	if strings.Contains(result.Report, "## Suggested Links") {
		t.Error("no suggestions means no suggestions section")
	}
}
