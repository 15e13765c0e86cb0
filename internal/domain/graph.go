package domain

import (
	"path/filepath"
	"regexp"
	"sort"
	"strings"
)

var wordPattern = regexp.MustCompile(`\w+`)

// Words too common to signal any content overlap.
var commonWords = map[string]struct{}{
	"the": {}, "a": {}, "an": {}, "and": {}, "or": {},
	"but": {}, "in": {}, "on": {}, "at": {},
}

// BrokenLink is a wiki link whose target resolves to no note.
type BrokenLink struct {
	SourcePath string
	Target     string
}

// Suggestion proposes a connection between two notes.
type Suggestion struct {
	Path  string
	Score float64
}

// OrphanReport categorizes disconnected notes by what they lack.
type OrphanReport struct {
	NoLinks     []string
	NoBacklinks []string
	NoTags      []string
	NoMeta      []string
	Isolated    []string // no links, no backlinks and no tags
}

// Graph captures the link structure of a corpus. Link targets resolve
// against note filenames and filename stems; targets stay otherwise
// opaque (no case or extension normalization).
type Graph struct {
	Notes     []Note
	resolve   map[string]string   // link target name -> note path
	backlinks map[string][]string // note path -> linking note paths
	words     []map[string]struct{}
	byPath    map[string]int
}

// BuildGraph indexes the corpus for link resolution and backlinks.
func BuildGraph(notes []Note) *Graph {
	g := &Graph{
		Notes:     notes,
		resolve:   make(map[string]string, len(notes)*2),
		backlinks: make(map[string][]string),
		byPath:    make(map[string]int, len(notes)),
	}

	for i, n := range notes {
		g.byPath[n.Path] = i
		base := filepath.Base(n.Path)
		g.resolve[base] = n.Path
		g.resolve[strings.TrimSuffix(base, filepath.Ext(base))] = n.Path
	}

	for _, n := range notes {
		for _, link := range n.Links {
			if target, ok := g.resolve[link]; ok && target != n.Path {
				g.backlinks[target] = append(g.backlinks[target], n.Path)
			}
		}
	}

	g.words = make([]map[string]struct{}, len(notes))
	for i, n := range notes {
		g.words[i] = contentWords(n.Body)
	}

	return g
}

// Resolve maps a link target to a note path, if any note matches.
func (g *Graph) Resolve(target string) (string, bool) {
	path, ok := g.resolve[target]
	return path, ok
}

// Backlinks returns the sorted paths of notes linking to the given note.
func (g *Graph) Backlinks(path string) []string {
	sources := append([]string(nil), g.backlinks[path]...)
	sort.Strings(sources)
	return sources
}

// BrokenLinks returns every link whose target resolves to no note,
// in corpus order.
func (g *Graph) BrokenLinks() []BrokenLink {
	var broken []BrokenLink
	for _, n := range g.Notes {
		for _, link := range n.Links {
			if _, ok := g.resolve[link]; !ok {
				broken = append(broken, BrokenLink{SourcePath: n.Path, Target: link})
			}
		}
	}
	return broken
}

// Orphans categorizes notes that lack connections.
func (g *Graph) Orphans() OrphanReport {
	var report OrphanReport
	for _, n := range g.Notes {
		isolated := true

		if len(n.Links) == 0 {
			report.NoLinks = append(report.NoLinks, n.Path)
		} else {
			isolated = false
		}

		if len(g.backlinks[n.Path]) == 0 {
			report.NoBacklinks = append(report.NoBacklinks, n.Path)
		} else {
			isolated = false
		}

		if len(n.Tags) == 0 {
			report.NoTags = append(report.NoTags, n.Path)
		} else {
			isolated = false
		}

		if !n.HasMeta {
			report.NoMeta = append(report.NoMeta, n.Path)
		}

		if isolated {
			report.Isolated = append(report.Isolated, n.Path)
		}
	}
	return report
}

// Similarity scores the content overlap of two notes: Jaccard similarity
// of their word sets plus a 0.10 boost per shared tag, capped at 1.
func (g *Graph) Similarity(a, b string) float64 {
	i, ok := g.byPath[a]
	if !ok {
		return 0
	}
	j, ok := g.byPath[b]
	if !ok {
		return 0
	}
	return g.similarity(i, j)
}

func (g *Graph) similarity(i, j int) float64 {
	wa, wb := g.words[i], g.words[j]
	if len(wa) == 0 || len(wb) == 0 {
		return 0
	}

	intersection := 0
	for w := range wa {
		if _, ok := wb[w]; ok {
			intersection++
		}
	}
	union := len(wa) + len(wb) - intersection

	shared := 0
	for _, tag := range g.Notes[i].Tags {
		if g.Notes[j].HasTag(tag) {
			shared++
		}
	}

	score := float64(intersection)/float64(union) + 0.1*float64(shared)
	if score > 1 {
		score = 1
	}
	return score
}

// SuggestFor returns up to limit notes similar to the given note, ordered
// by descending score, ties broken by corpus order.
func (g *Graph) SuggestFor(path string, min float64, limit int) []Suggestion {
	i, ok := g.byPath[path]
	if !ok {
		return nil
	}

	var out []Suggestion
	for j := range g.Notes {
		if j == i {
			continue
		}
		if g.alreadyLinked(i, j) {
			continue
		}
		if score := g.similarity(i, j); score >= min {
			out = append(out, Suggestion{Path: g.Notes[j].Path, Score: score})
		}
	}

	sort.SliceStable(out, func(a, b int) bool {
		return out[a].Score > out[b].Score
	})
	if limit >= 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}

func (g *Graph) alreadyLinked(i, j int) bool {
	target := g.Notes[j].Path
	for _, link := range g.Notes[i].Links {
		if resolved, ok := g.resolve[link]; ok && resolved == target {
			return true
		}
	}
	return false
}

func contentWords(text string) map[string]struct{} {
	words := wordPattern.FindAllString(strings.ToLower(text), -1)
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		if _, common := commonWords[w]; common {
			continue
		}
		set[w] = struct{}{}
	}
	return set
}
