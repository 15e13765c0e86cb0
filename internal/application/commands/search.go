package commands

import (
	"context"
	"sort"
	"strings"

	"cognet/internal/domain"
	"cognet/internal/ports"
)

// SearchResult pairs a matching note with its relevance score.
type SearchResult struct {
	Note  domain.Note
	Score int
}

// SearchCommand searches the corpus with fuzzy matching over note
// titles, paths, and tags.
type SearchCommand struct {
	repo  ports.CorpusRepository
	Query string
}

// NewSearchCommand creates a new SearchCommand.
func NewSearchCommand(repo ports.CorpusRepository, query string) *SearchCommand {
	return &SearchCommand{
		repo:  repo,
		Query: query,
	}
}

// Execute runs the search and returns scored, sorted results.
func (c *SearchCommand) Execute(ctx context.Context) ([]SearchResult, error) {
	if len(c.Query) < 2 {
		return nil, nil
	}

	corpus, err := c.repo.LoadCorpus(ctx)
	if err != nil {
		return nil, err
	}

	return FuzzySort(corpus.Notes, c.Query), nil
}

// FuzzyScore calculates a relevance score for how well target matches query
func FuzzyScore(target, query string) int {
	target = strings.ToLower(target)
	query = strings.ToLower(query)

	if len(query) == 0 {
		return 0
	}

	// Check for exact substring match first (highest priority)
	if strings.Contains(target, query) {
		score := 100
		// Bonus if it starts with query
		if strings.HasPrefix(target, query) {
			score += 50
		}
		return score
	}

	// Fuzzy match: check if chars appear in order
	score := 0
	queryIdx := 0
	prevMatchIdx := -1

	for i := 0; i < len(target) && queryIdx < len(query); i++ {
		if target[i] == query[queryIdx] {
			if prevMatchIdx == i-1 {
				score += 10 // consecutive chars
			}
			if i == 0 {
				score += 15 // start of string
			}
			if i > 0 && (target[i-1] == ' ' || target[i-1] == '.' || target[i-1] == '-') {
				score += 10 // after separator
			}
			score += 1
			prevMatchIdx = i
			queryIdx++
		}
	}

	if queryIdx == len(query) {
		return score
	}
	return 0
}

// FuzzySort scores notes against the query and returns the matches by
// descending relevance, ties in corpus order.
func FuzzySort(notes []domain.Note, query string) []SearchResult {
	scored := make([]SearchResult, 0, len(notes))

	for _, n := range notes {
		best := max(FuzzyScore(n.Title, query), FuzzyScore(n.Path, query))
		for _, tag := range n.Tags {
			best = max(best, FuzzyScore(tag, query))
		}

		if best > 0 {
			scored = append(scored, SearchResult{Note: n, Score: best})
		}
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})

	return scored
}
