package commands

import (
	"context"
	"fmt"
	"strings"

	"cognet/internal/domain"
	"cognet/internal/ports"
)

// LinkParams configures the link audit.
type LinkParams struct {
	MinSimilarity  float64 // minimum overlap score for a suggestion
	MaxSuggestions int     // suggestions kept per note
}

// LinksResult holds the outcome of a link audit.
type LinksResult struct {
	Broken      []domain.BrokenLink
	Suggestions map[string][]domain.Suggestion // note path -> suggested targets
	Report      string
	Corpus      *domain.Corpus
}

// LinksCommand audits wiki links: it finds targets that resolve to no
// note and suggests new connections between content-similar notes.
type LinksCommand struct {
	repo   ports.CorpusRepository
	Params LinkParams
}

// NewLinksCommand creates a new LinksCommand.
func NewLinksCommand(repo ports.CorpusRepository, params LinkParams) *LinksCommand {
	return &LinksCommand{repo: repo, Params: params}
}

// Execute runs the audit and renders the report document.
func (c *LinksCommand) Execute(ctx context.Context) (*LinksResult, error) {
	corpus, err := c.repo.LoadCorpus(ctx)
	if err != nil {
		return nil, err
	}

	graph := domain.BuildGraph(corpus.Notes)
	broken := graph.BrokenLinks()

	suggestions := make(map[string][]domain.Suggestion)
	for _, n := range corpus.Notes {
		if s := graph.SuggestFor(n.Path, c.Params.MinSimilarity, c.Params.MaxSuggestions); len(s) > 0 {
			suggestions[n.Path] = s
		}
	}

	return &LinksResult{
		Broken:      broken,
		Suggestions: suggestions,
		Report:      renderLinkReport(corpus.Notes, broken, suggestions),
		Corpus:      corpus,
	}, nil
}

func renderLinkReport(notes []domain.Note, broken []domain.BrokenLink, suggestions map[string][]domain.Suggestion) string {
	var b strings.Builder
	b.WriteString("# Link Audit Report\n")

	if len(broken) > 0 {
		b.WriteString("\n## Broken Links\n\n")
		b.WriteString("The following links are broken and need to be fixed:\n")
		lastSource := ""
		for _, bl := range broken {
			if bl.SourcePath != lastSource {
				fmt.Fprintf(&b, "\n### In `%s`:\n", bl.SourcePath)
				lastSource = bl.SourcePath
			}
			fmt.Fprintf(&b, "- Broken link to: `%s`\n", bl.Target)
		}
	}

	if len(suggestions) > 0 {
		b.WriteString("\n## Suggested Links\n\n")
		b.WriteString("Consider adding these connections between related notes:\n")
		// Corpus order keeps the report stable run to run.
		for _, n := range notes {
			targets, ok := suggestions[n.Path]
			if !ok {
				continue
			}
			fmt.Fprintf(&b, "\n### For `%s`:\n", n.Path)
			for _, s := range targets {
				fmt.Fprintf(&b, "- `%s` (similarity: %.0f%%)\n", s.Path, s.Score*100)
			}
		}
	}

	b.WriteString("\n## Recommendations\n\n")
	b.WriteString("1. Fix broken links to maintain system integrity\n")
	b.WriteString("2. Review suggested connections for relevant links\n")
	b.WriteString("3. Consider adding bidirectional links for strong connections\n")

	return b.String()
}
