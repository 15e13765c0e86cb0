package commands

import (
	"context"
	"testing"

	"cognet/internal/domain"
)

func TestFuzzyScore(t *testing.T) {
	tests := []struct {
		name      string
		target    string
		query     string
		wantScore int
		wantMin   int // use this for relative comparisons
	}{
		{
			name:      "exact match",
			target:    "Zettelkasten",
			query:     "Zettelkasten",
			wantScore: 150, // 100 for contains + 50 for prefix
		},
		{
			name:      "prefix match",
			target:    "Zettelkasten Workflow",
			query:     "Zettelkasten",
			wantScore: 150, // 100 for contains + 50 for prefix
		},
		{
			name:      "substring match",
			target:    "My Zettelkasten",
			query:     "Zettelkasten",
			wantScore: 100, // contains only
		},
		{
			name:    "fuzzy match all chars at start",
			target:  "Zettelkasten",
			query:   "zet",
			wantMin: 100, // should be high due to prefix
		},
		{
			name:      "no match",
			target:    "Zettelkasten",
			query:     "xyq",
			wantScore: 0,
		},
		{
			name:      "empty query",
			target:    "Zettelkasten",
			query:     "",
			wantScore: 0,
		},
		{
			name:    "case insensitive",
			target:  "ZETTELKASTEN",
			query:   "zettelkasten",
			wantMin: 100,
		},
		{
			name:    "path match",
			target:  "02-Notes/spaced-repetition.md",
			query:   "spaced-rep",
			wantMin: 100,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			score := FuzzyScore(tt.target, tt.query)

			if tt.wantScore > 0 {
				if score != tt.wantScore {
					t.Errorf("expected score %d, got %d", tt.wantScore, score)
				}
			} else if tt.wantMin > 0 {
				if score < tt.wantMin {
					t.Errorf("expected score >= %d, got %d", tt.wantMin, score)
				}
			} else {
				if score != 0 {
					t.Errorf("expected score 0, got %d", score)
				}
			}
		})
	}
}

func TestFuzzyScore_Ordering(t *testing.T) {
	// Test that better matches score higher
	query := "habits"

	exactScore := FuzzyScore("habits", query)          // exact + prefix = 150
	prefixScore := FuzzyScore("habits tracker", query) // contains + prefix = 150
	containsScore := FuzzyScore("good habits", query)  // contains only = 100
	fuzzyScore := FuzzyScore("h.a.b.i.t.s", query)     // fuzzy match only

	if exactScore < prefixScore {
		t.Errorf("exact match should score >= prefix: %d < %d", exactScore, prefixScore)
	}
	if prefixScore < containsScore {
		t.Errorf("prefix match should score >= contains: %d < %d", prefixScore, containsScore)
	}
	if containsScore <= fuzzyScore {
		t.Errorf("contains match should score higher than fuzzy: %d <= %d", containsScore, fuzzyScore)
	}
}

func TestFuzzySort(t *testing.T) {
	notes := []domain.Note{
		{Path: "notes/random.md", Title: "Random Name"},
		{Path: "notes/habit-tracker.md", Title: "Habit Tracker", Tags: []string{"habits"}},
		{Path: "notes/cooking.md", Title: "Cooking", Tags: []string{"recipes"}},
		{Path: "notes/old-habits.md", Title: "My Habits"},
	}

	sorted := FuzzySort(notes, "habits")

	if len(sorted) < 2 {
		t.Fatalf("expected at least 2 results, got %d", len(sorted))
	}

	foundHabit := false
	for _, r := range sorted {
		if r.Note.Title == "Habit Tracker" || r.Note.Title == "My Habits" {
			foundHabit = true
		}
		if r.Note.Title == "Random Name" {
			t.Error("unrelated note should not match")
		}
	}
	if !foundHabit {
		t.Error("expected habit matches in results")
	}

	// Verify results are sorted by score descending
	for i := 1; i < len(sorted); i++ {
		if sorted[i].Score > sorted[i-1].Score {
			t.Errorf("results not sorted by score: %d > %d at index %d",
				sorted[i].Score, sorted[i-1].Score, i)
		}
	}
}

func TestSearchCommandExecute(t *testing.T) {
	repo := newStubRepo(
		domain.Note{Path: "a.md", Title: "Habit Tracker"},
		domain.Note{Path: "b.md", Title: "Cooking"},
	)

	results, err := NewSearchCommand(repo, "habit").Execute(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if len(results) != 1 || results[0].Note.Title != "Habit Tracker" {
		t.Errorf("unexpected results %v", results)
	}
}

func TestSearchCommandShortQuery(t *testing.T) {
	repo := newStubRepo(domain.Note{Path: "a.md", Title: "A"})

	results, err := NewSearchCommand(repo, "a").Execute(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if results != nil {
		t.Errorf("queries under 2 chars should return nothing, got %v", results)
	}
}
