package commands

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"cognet/internal/domain"
	"cognet/internal/ports"
)

// IndexParams configures index generation.
type IndexParams struct {
	RecentDays int       // window for the recent-updates section
	Now        time.Time // reference time; zero means time.Now
}

// IndexResult holds the generated index document.
type IndexResult struct {
	Doc    string
	Corpus *domain.Corpus
}

// IndexCommand builds the master note index: all notes grouped by tag,
// plus the notes modified within the recent window.
type IndexCommand struct {
	repo   ports.CorpusRepository
	Params IndexParams
}

// NewIndexCommand creates a new IndexCommand.
func NewIndexCommand(repo ports.CorpusRepository, params IndexParams) *IndexCommand {
	return &IndexCommand{repo: repo, Params: params}
}

// Execute loads the corpus and renders the index document.
func (c *IndexCommand) Execute(ctx context.Context) (*IndexResult, error) {
	corpus, err := c.repo.LoadCorpus(ctx)
	if err != nil {
		return nil, err
	}

	now := c.Params.Now
	if now.IsZero() {
		now = time.Now()
	}
	days := c.Params.RecentDays
	if days <= 0 {
		days = 7
	}

	return &IndexResult{
		Doc:    renderIndex(corpus.Notes, now, days),
		Corpus: corpus,
	}, nil
}

func renderIndex(notes []domain.Note, now time.Time, recentDays int) string {
	var b strings.Builder
	b.WriteString("# Note Index\n\n")
	fmt.Fprintf(&b, "Total notes: %d\n", len(notes))

	cutoff := now.AddDate(0, 0, -recentDays)
	recent := make([]domain.Note, 0)
	for _, n := range notes {
		if !n.ModTime.IsZero() && n.ModTime.After(cutoff) {
			recent = append(recent, n)
		}
	}
	if len(recent) > 0 {
		sort.SliceStable(recent, func(i, j int) bool {
			return recent[i].ModTime.After(recent[j].ModTime)
		})
		fmt.Fprintf(&b, "\n## Recently Updated (last %d days)\n\n", recentDays)
		for _, n := range recent {
			fmt.Fprintf(&b, "- [%s](%s) - %s\n", n.Title, n.Path, n.ModTime.Format("2006-01-02"))
		}
	}

	byTag := make(map[string][]domain.Note)
	var untagged []domain.Note
	for _, n := range notes {
		if len(n.Tags) == 0 {
			untagged = append(untagged, n)
			continue
		}
		for _, tag := range n.Tags {
			byTag[tag] = append(byTag[tag], n)
		}
	}

	tags := make([]string, 0, len(byTag))
	for tag := range byTag {
		tags = append(tags, tag)
	}
	sort.Strings(tags)

	if len(tags) > 0 {
		b.WriteString("\n## Notes by Tag\n")
		for _, tag := range tags {
			members := byTag[tag]
			fmt.Fprintf(&b, "\n### #%s (%d)\n", tag, len(members))
			members = append([]domain.Note(nil), members...)
			domain.SortNotesByTitle(members)
			for _, n := range members {
				fmt.Fprintf(&b, "- [%s](%s)\n", n.Title, n.Path)
			}
		}
	}

	if len(untagged) > 0 {
		b.WriteString("\n## Untagged\n\n")
		untagged = append([]domain.Note(nil), untagged...)
		domain.SortNotesByTitle(untagged)
		for _, n := range untagged {
			fmt.Fprintf(&b, "- [%s](%s)\n", n.Title, n.Path)
		}
	}

	return b.String()
}
