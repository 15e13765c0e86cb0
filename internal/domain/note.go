package domain

import (
	"path/filepath"
	"slices"
	"strings"
	"time"
)

// Note represents one markdown note with its extracted metadata.
type Note struct {
	Path    string   // path relative to the vault root, unique per corpus
	Title   string   // front-matter title, or filename stem
	Body    string   // note text with the front-matter block removed
	Tags    []string // de-duplicated, first-seen order (front matter, then inline)
	Links   []string // [[wiki link]] targets, verbatim, de-duplicated
	HasMeta bool     // whether a front-matter block was present
	ModTime time.Time
}

// Stem returns the filename of the note without its extension.
func Stem(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// HasTag reports whether the note carries the given tag.
func (n Note) HasTag(tag string) bool {
	return slices.Contains(n.Tags, tag)
}

// Document returns the combined text used for vectorization:
// title, tags, and body joined by spaces.
func (n Note) Document() string {
	parts := make([]string, 0, 3)
	parts = append(parts, n.Title)
	if len(n.Tags) > 0 {
		parts = append(parts, strings.Join(n.Tags, " "))
	}
	parts = append(parts, n.Body)
	return strings.Join(parts, " ")
}

// SkippedFile records a file excluded from the corpus and why.
type SkippedFile struct {
	Path   string
	Reason string
}

// Corpus is the ordered collection of notes for one run, plus the
// files that could not be read. Order is stable within a run.
type Corpus struct {
	Notes   []Note
	Skipped []SkippedFile
}

// SortNotesByTitle sorts notes by title, ties broken by path.
func SortNotesByTitle(notes []Note) {
	slices.SortFunc(notes, func(a, b Note) int {
		if c := strings.Compare(a.Title, b.Title); c != 0 {
			return c
		}
		return strings.Compare(a.Path, b.Path)
	})
}
