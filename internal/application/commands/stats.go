package commands

import (
	"context"
	"fmt"
	"strings"

	"cognet/internal/domain"
	"cognet/internal/ports"
)

// Stats aggregates corpus-wide numbers.
type Stats struct {
	NoteCount    int
	WordCount    int
	LinkCount    int
	BrokenLinks  int
	DistinctTags int
	TaggedNotes  int
	WithMeta     int
	TopTags      []domain.TagCount
	TopTargets   []domain.TagCount // most linked-to targets
	ByRoot       []RootCount       // notes per top-level directory
}

// RootCount pairs a top-level directory with its note count.
type RootCount struct {
	Root  string
	Count int
}

// StatsResult holds the computed stats and the rendered document.
type StatsResult struct {
	Stats  Stats
	Doc    string
	Corpus *domain.Corpus
}

// StatsCommand computes vault-wide statistics.
type StatsCommand struct {
	repo ports.CorpusRepository
}

// NewStatsCommand creates a new StatsCommand.
func NewStatsCommand(repo ports.CorpusRepository) *StatsCommand {
	return &StatsCommand{repo: repo}
}

// Execute loads the corpus and renders the stats document.
func (c *StatsCommand) Execute(ctx context.Context) (*StatsResult, error) {
	corpus, err := c.repo.LoadCorpus(ctx)
	if err != nil {
		return nil, err
	}

	stats := ComputeStats(corpus.Notes)
	return &StatsResult{
		Stats:  stats,
		Doc:    renderStats(stats),
		Corpus: corpus,
	}, nil
}

// ComputeStats aggregates statistics over the given notes.
func ComputeStats(notes []domain.Note) Stats {
	var s Stats
	s.NoteCount = len(notes)

	tags := domain.NewTagCounter()
	targets := domain.NewTagCounter()
	roots := domain.NewTagCounter()
	for _, n := range notes {
		s.WordCount += len(strings.Fields(n.Body))
		s.LinkCount += len(n.Links)
		if len(n.Tags) > 0 {
			s.TaggedNotes++
		}
		if n.HasMeta {
			s.WithMeta++
		}
		tags.Add(n.Tags...)
		targets.Add(n.Links...)
		roots.Add(topDir(n.Path))
	}
	s.DistinctTags = tags.Len()
	s.TopTags = tags.MostCommon(10)
	s.TopTargets = targets.MostCommon(5)

	for _, rc := range roots.MostCommon(-1) {
		s.ByRoot = append(s.ByRoot, RootCount{Root: rc.Tag, Count: rc.Count})
	}

	graph := domain.BuildGraph(notes)
	s.BrokenLinks = len(graph.BrokenLinks())

	return s
}

// topDir returns the first path segment of a note path, or "." for
// notes at the vault root.
func topDir(path string) string {
	if i := strings.IndexAny(path, `/\`); i > 0 {
		return path[:i]
	}
	return "."
}

func renderStats(s Stats) string {
	var b strings.Builder
	b.WriteString("# System Statistics\n\n")
	b.WriteString("## Totals\n")
	fmt.Fprintf(&b, "- Notes: %d\n", s.NoteCount)
	fmt.Fprintf(&b, "- Words: %d\n", s.WordCount)
	fmt.Fprintf(&b, "- Links: %d\n", s.LinkCount)
	fmt.Fprintf(&b, "- Broken links: %d\n", s.BrokenLinks)
	fmt.Fprintf(&b, "- Distinct tags: %d\n", s.DistinctTags)
	fmt.Fprintf(&b, "- Notes with tags: %d\n", s.TaggedNotes)
	fmt.Fprintf(&b, "- Notes with metadata: %d\n", s.WithMeta)

	if len(s.ByRoot) > 0 {
		b.WriteString("\n## Notes by Directory\n")
		for _, rc := range s.ByRoot {
			fmt.Fprintf(&b, "- %s: %d\n", rc.Root, rc.Count)
		}
	}

	if s.NoteCount > 0 {
		b.WriteString("\n## Averages\n")
		fmt.Fprintf(&b, "- Words per note: %.1f\n", float64(s.WordCount)/float64(s.NoteCount))
		fmt.Fprintf(&b, "- Links per note: %.1f\n", float64(s.LinkCount)/float64(s.NoteCount))
	}

	if len(s.TopTags) > 0 {
		b.WriteString("\n## Top Tags\n")
		for _, tc := range s.TopTags {
			fmt.Fprintf(&b, "- #%s: %d\n", tc.Tag, tc.Count)
		}
	}

	if len(s.TopTargets) > 0 {
		b.WriteString("\n## Most Referenced\n")
		for _, tc := range s.TopTargets {
			fmt.Fprintf(&b, "- [[%s]]: %d\n", tc.Tag, tc.Count)
		}
	}

	return b.String()
}
