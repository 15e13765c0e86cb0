// Package filesystem implements the corpus repository over a directory
// tree of markdown notes.
package filesystem

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/rs/zerolog/log"

	"cognet/internal/domain"
)

// Repository implements ports.CorpusRepository over a vault directory.
type Repository struct {
	vaultPath string
	roots     []string
}

// NewRepository creates a repository scanning the given root directories.
// Roots outside the vault are allowed; note paths are reported relative
// to the vault where possible.
func NewRepository(vaultPath string, roots []string) *Repository {
	return &Repository{
		vaultPath: expandHome(vaultPath),
		roots:     roots,
	}
}

// LoadCorpus walks every root recursively and parses each markdown file
// into a note. Walk order is lexical per directory, so the corpus order
// is stable run to run. Missing roots are treated as empty; unreadable
// files are skipped and recorded.
func (r *Repository) LoadCorpus(ctx context.Context) (*domain.Corpus, error) {
	corpus := &domain.Corpus{}

	for _, root := range r.roots {
		root := expandHome(root)
		if _, err := os.Stat(root); errors.Is(err, fs.ErrNotExist) {
			continue
		}

		err := filepath.WalkDir(root, func(path string, entry fs.DirEntry, err error) error {
			if err := ctx.Err(); err != nil {
				return err
			}
			if err != nil {
				corpus.Skipped = append(corpus.Skipped, domain.SkippedFile{
					Path:   r.relPath(path),
					Reason: err.Error(),
				})
				return nil
			}
			if entry.IsDir() {
				if strings.HasPrefix(entry.Name(), ".") {
					return filepath.SkipDir
				}
				return nil
			}
			if !strings.EqualFold(filepath.Ext(entry.Name()), ".md") {
				return nil
			}

			relPath := r.relPath(path)
			raw, err := os.ReadFile(path)
			if err != nil {
				log.Warn().Str("path", relPath).Err(err).Msg("skipping unreadable note")
				corpus.Skipped = append(corpus.Skipped, domain.SkippedFile{
					Path:   relPath,
					Reason: err.Error(),
				})
				return nil
			}

			note := ParseNote(relPath, string(raw))
			if info, err := entry.Info(); err == nil {
				note.ModTime = info.ModTime()
			}
			corpus.Notes = append(corpus.Notes, note)
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("walk %s: %w", root, err)
		}
	}

	return corpus, nil
}

// ReadNote returns the raw content of a note by vault-relative path.
func (r *Repository) ReadNote(path string) (string, error) {
	data, err := os.ReadFile(r.AbsPath(path))
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// AbsPath resolves a vault-relative note path to an absolute path.
func (r *Repository) AbsPath(path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(r.vaultPath, path)
}

// WriteDocs writes filename->content documents into dir. Filenames are
// written in sorted order; the first failure aborts and is returned.
func (r *Repository) WriteDocs(dir string, docs map[string]string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create output dir %s: %w", dir, err)
	}

	names := make([]string, 0, len(docs))
	for name := range docs {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		path := filepath.Join(dir, name)
		if err := os.WriteFile(path, []byte(docs[name]), 0o644); err != nil {
			return fmt.Errorf("write %s: %w", path, err)
		}
	}
	return nil
}

// relPath reports a path relative to the vault root, falling back to the
// path itself when it lies outside the vault.
func (r *Repository) relPath(path string) string {
	rel, err := filepath.Rel(r.vaultPath, path)
	if err != nil || strings.HasPrefix(rel, "..") {
		return path
	}
	return rel
}

// expandHome expands a leading ~ to the user's home directory.
func expandHome(path string) string {
	if strings.HasPrefix(path, "~") {
		home, err := os.UserHomeDir()
		if err == nil {
			return filepath.Join(home, path[1:])
		}
	}
	return path
}
