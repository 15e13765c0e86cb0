package commands

import (
	"context"
	"path/filepath"

	"cognet/internal/application"
	"cognet/internal/domain"
)

// stubRepo is an in-memory ports.CorpusRepository for command tests.
type stubRepo struct {
	corpus  *domain.Corpus
	loadErr error
	written map[string]map[string]string // dir -> docs
}

func newStubRepo(notes ...domain.Note) *stubRepo {
	return &stubRepo{corpus: &domain.Corpus{Notes: notes}}
}

func (r *stubRepo) LoadCorpus(ctx context.Context) (*domain.Corpus, error) {
	if r.loadErr != nil {
		return nil, r.loadErr
	}
	return r.corpus, nil
}

func (r *stubRepo) ReadNote(path string) (string, error) {
	for _, n := range r.corpus.Notes {
		if n.Path == path {
			return n.Body, nil
		}
	}
	return "", application.ErrNotFound
}

func (r *stubRepo) AbsPath(path string) string {
	return filepath.Join("/vault", path)
}

func (r *stubRepo) WriteDocs(dir string, docs map[string]string) error {
	if r.written == nil {
		r.written = make(map[string]map[string]string)
	}
	copied := make(map[string]string, len(docs))
	for k, v := range docs {
		copied[k] = v
	}
	r.written[dir] = copied
	return nil
}
