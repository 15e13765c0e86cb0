package commands

import (
	"context"
	"fmt"
	"strings"

	"cognet/internal/domain"
	"cognet/internal/ports"
)

// OrphansResult holds the outcome of an orphan scan.
type OrphansResult struct {
	Report domain.OrphanReport
	Doc    string
	Corpus *domain.Corpus
}

// OrphansCommand finds disconnected notes: no outgoing links, no
// backlinks, no tags, or no metadata at all.
type OrphansCommand struct {
	repo ports.CorpusRepository
}

// NewOrphansCommand creates a new OrphansCommand.
func NewOrphansCommand(repo ports.CorpusRepository) *OrphansCommand {
	return &OrphansCommand{repo: repo}
}

// Execute scans the corpus and renders the orphan report document.
func (c *OrphansCommand) Execute(ctx context.Context) (*OrphansResult, error) {
	corpus, err := c.repo.LoadCorpus(ctx)
	if err != nil {
		return nil, err
	}

	graph := domain.BuildGraph(corpus.Notes)
	report := graph.Orphans()

	return &OrphansResult{
		Report: report,
		Doc:    renderOrphanReport(report),
		Corpus: corpus,
	}, nil
}

func renderOrphanReport(report domain.OrphanReport) string {
	var b strings.Builder
	b.WriteString("# Orphan Notes Report\n")

	if len(report.Isolated) > 0 {
		b.WriteString("\n## Completely Isolated Notes\n\n")
		b.WriteString("These notes have no links, no backlinks, and no tags:\n\n")
		writePathList(&b, report.Isolated)
	}

	if len(report.NoLinks) > 0 {
		b.WriteString("\n## Notes Without Outgoing Links\n\n")
		writePathList(&b, report.NoLinks)
	}

	if len(report.NoBacklinks) > 0 {
		b.WriteString("\n## Notes Without Backlinks\n\n")
		writePathList(&b, report.NoBacklinks)
	}

	if len(report.NoTags) > 0 {
		b.WriteString("\n## Notes Without Tags\n\n")
		writePathList(&b, report.NoTags)
	}

	if len(report.NoMeta) > 0 {
		b.WriteString("\n## Notes Without Metadata\n\n")
		writePathList(&b, report.NoMeta)
	}

	b.WriteString("\n## Recommendations\n\n")
	b.WriteString("1. Review isolated notes first; connect or archive them\n")
	b.WriteString("2. Add tags to untagged notes so clustering can see them\n")
	b.WriteString("3. Add front matter to notes missing metadata\n")

	return b.String()
}

func writePathList(b *strings.Builder, paths []string) {
	for _, p := range paths {
		fmt.Fprintf(b, "- `%s`\n", p)
	}
}
