package domain

import (
	"fmt"
	"sort"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var titleCaser = cases.Title(language.English)

// TagCount pairs a tag with the number of notes carrying it.
type TagCount struct {
	Tag   string
	Count int
}

// TagCounter counts tag occurrences while remembering first-seen order,
// so ties in MostCommon resolve the same way on every run.
type TagCounter struct {
	counts map[string]int
	order  []string
}

// NewTagCounter creates an empty tag counter.
func NewTagCounter() *TagCounter {
	return &TagCounter{counts: make(map[string]int)}
}

// Add increments the count for each given tag.
func (c *TagCounter) Add(tags ...string) {
	for _, tag := range tags {
		if _, seen := c.counts[tag]; !seen {
			c.order = append(c.order, tag)
		}
		c.counts[tag]++
	}
}

// Count returns the count for a tag, zero if unseen.
func (c *TagCounter) Count(tag string) int {
	return c.counts[tag]
}

// Len returns the number of distinct tags counted.
func (c *TagCounter) Len() int {
	return len(c.counts)
}

// MostCommon returns up to n tags ordered by descending count,
// ties broken by first-seen order.
func (c *TagCounter) MostCommon(n int) []TagCount {
	ranked := make([]TagCount, 0, len(c.order))
	for _, tag := range c.order {
		ranked = append(ranked, TagCount{Tag: tag, Count: c.counts[tag]})
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Count > ranked[j].Count
	})
	if n >= 0 && len(ranked) > n {
		ranked = ranked[:n]
	}
	return ranked
}

// Theme is the published view of one cluster of thematically related notes.
type Theme struct {
	Name        string
	Description string
	Notes       []Note
	Tags        *TagCounter
	CommonLinks []string // intersection of member link sets, sorted
}

// NewTheme derives a theme from the notes of one cluster. Members must be
// in corpus order so tag tie-breaking stays deterministic. The ordinal is
// the 1-based cluster discovery order, used only when no member has tags.
func NewTheme(ordinal int, notes []Note) Theme {
	tags := NewTagCounter()
	for _, n := range notes {
		tags.Add(n.Tags...)
	}

	top := tags.MostCommon(3)
	names := make([]string, 0, len(top))
	for _, tc := range top {
		names = append(names, tc.Tag)
	}

	var name, related string
	if len(names) == 0 {
		// Clusters whose members share no tags still need a stable name.
		name = fmt.Sprintf("Theme %d", ordinal)
		related = name
	} else {
		name = titleCaser.String(strings.Join(names, " "))
		related = strings.Join(names, ", ")
	}

	return Theme{
		Name:        name,
		Description: fmt.Sprintf("%d-member cluster related to %s", len(notes), related),
		Notes:       notes,
		Tags:        tags,
		CommonLinks: commonLinks(notes),
	}
}

// Slug returns the filename-safe form of the theme name. Spaces become
// hyphens; anything outside [a-z0-9-] is dropped, so tags carrying path
// separators or punctuation cannot escape the output directory.
func (t Theme) Slug() string {
	lowered := strings.ReplaceAll(strings.ToLower(t.Name), " ", "-")
	return strings.Map(func(r rune) rune {
		if r == '-' || (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			return r
		}
		return -1
	}, lowered)
}

// Filename returns the summary document filename for the theme.
func (t Theme) Filename() string {
	return "theme-" + t.Slug() + ".md"
}

// Summary renders the theme's index document.
func (t Theme) Summary() string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Theme: %s\n\n", t.Name)
	fmt.Fprintf(&b, "%s\n\n", t.Description)
	b.WriteString("## Overview\n")
	fmt.Fprintf(&b, "- Notes: %d\n", len(t.Notes))
	fmt.Fprintf(&b, "- Core Tags: %s\n", formatTags(t.Tags.MostCommon(5)))

	b.WriteString("\n## Notes in this Theme\n")
	members := make([]Note, len(t.Notes))
	copy(members, t.Notes)
	SortNotesByTitle(members)
	for _, n := range members {
		fmt.Fprintf(&b, "- [%s](%s)\n", n.Title, n.Path)
	}

	if len(t.CommonLinks) > 0 {
		b.WriteString("\n## Common References\n")
		b.WriteString("These links appear in every note of the theme:\n")
		for _, link := range t.CommonLinks {
			fmt.Fprintf(&b, "- [[%s]]\n", link)
		}
	}

	return b.String()
}

// RenderMasterIndex renders the master theme index. Themes are listed by
// descending member count; ties keep discovery order.
func RenderMasterIndex(themes []Theme) string {
	ordered := make([]Theme, len(themes))
	copy(ordered, themes)
	sort.SliceStable(ordered, func(i, j int) bool {
		return len(ordered[i].Notes) > len(ordered[j].Notes)
	})

	var b strings.Builder
	b.WriteString("# Thematic Clusters\n\n")
	b.WriteString("## Overview\n")
	fmt.Fprintf(&b, "Found %d thematic clusters in your notes:\n", len(ordered))

	for _, t := range ordered {
		fmt.Fprintf(&b, "\n### %s\n", t.Name)
		fmt.Fprintf(&b, "- Notes: %d\n", len(t.Notes))
		fmt.Fprintf(&b, "- Core Tags: %s\n", formatTags(t.Tags.MostCommon(3)))
		fmt.Fprintf(&b, "- [View Full Analysis](%s)\n", t.Filename())
	}

	return b.String()
}

// SortThemesBySize sorts themes by descending member count, preserving
// discovery order among equals.
func SortThemesBySize(themes []Theme) {
	sort.SliceStable(themes, func(i, j int) bool {
		return len(themes[i].Notes) > len(themes[j].Notes)
	})
}

func formatTags(counts []TagCount) string {
	if len(counts) == 0 {
		return "(none)"
	}
	parts := make([]string, 0, len(counts))
	for _, tc := range counts {
		parts = append(parts, "#"+tc.Tag)
	}
	return strings.Join(parts, ", ")
}

// commonLinks returns the sorted intersection of all member link sets.
// Any member with no links makes the intersection empty.
func commonLinks(notes []Note) []string {
	if len(notes) == 0 {
		return nil
	}
	common := make(map[string]struct{}, len(notes[0].Links))
	for _, l := range notes[0].Links {
		common[l] = struct{}{}
	}
	for _, n := range notes[1:] {
		if len(common) == 0 {
			return nil
		}
		member := make(map[string]struct{}, len(n.Links))
		for _, l := range n.Links {
			member[l] = struct{}{}
		}
		for l := range common {
			if _, ok := member[l]; !ok {
				delete(common, l)
			}
		}
	}
	if len(common) == 0 {
		return nil
	}
	out := make([]string, 0, len(common))
	for l := range common {
		out = append(out, l)
	}
	sort.Strings(out)
	return out
}
