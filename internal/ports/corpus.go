package ports

import (
	"context"

	"cognet/internal/domain"
)

// CorpusRepository defines the interface for reading the note corpus
// and writing generated reports.
type CorpusRepository interface {
	// LoadCorpus walks the configured source directories and returns the
	// parsed notes in stable order. Unreadable files are recorded in the
	// corpus skip list, not returned as errors.
	LoadCorpus(ctx context.Context) (*domain.Corpus, error)

	// ReadNote returns the raw content of one note by vault-relative path.
	ReadNote(path string) (string, error)

	// AbsPath resolves a vault-relative note path to an absolute path.
	AbsPath(path string) string

	// WriteDocs writes the given filename->content documents into dir,
	// creating it if needed. Any write failure is fatal to the run.
	WriteDocs(dir string, docs map[string]string) error
}
