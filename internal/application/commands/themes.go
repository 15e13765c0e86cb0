package commands

import (
	"context"

	"cognet/internal/analysis"
	"cognet/internal/application"
	"cognet/internal/domain"
	"cognet/internal/ports"
)

// ClusterParams configures the theme-clustering pipeline.
type ClusterParams struct {
	MinThemeSize        int      // minimum notes per published theme, >= 2
	SimilarityThreshold float64  // minimum cosine similarity, in (0, 1)
	MaxFeatures         int      // vocabulary cap
	StopWords           []string // nil means the default list
}

// Validate checks the parameter ranges before any pipeline work.
func (p ClusterParams) Validate() error {
	if p.MinThemeSize < 2 {
		return &application.ValidationError{Field: "min_theme_size", Message: "must be at least 2"}
	}
	if p.SimilarityThreshold <= 0 || p.SimilarityThreshold >= 1 {
		return &application.ValidationError{Field: "similarity_threshold", Message: "must be in (0, 1)"}
	}
	if p.MaxFeatures <= 0 {
		return &application.ValidationError{Field: "max_features", Message: "must be positive"}
	}
	return nil
}

// ThemesResult holds the outcome of one clustering run.
type ThemesResult struct {
	Themes  []domain.Theme
	Noise   []domain.Note     // notes not dense enough for any theme
	Docs    map[string]string // filename -> rendered document
	Corpus  *domain.Corpus
	Skipped []domain.SkippedFile
}

// ThemesCommand runs the full clustering pipeline: corpus -> vectors ->
// similarity matrix -> density clusters -> themes -> rendered documents.
type ThemesCommand struct {
	repo   ports.CorpusRepository
	Params ClusterParams
}

// NewThemesCommand creates a new ThemesCommand.
func NewThemesCommand(repo ports.CorpusRepository, params ClusterParams) *ThemesCommand {
	return &ThemesCommand{repo: repo, Params: params}
}

// Execute runs the pipeline. An empty corpus is not an error: the result
// carries zero themes and a master index reporting zero clusters.
func (c *ThemesCommand) Execute(ctx context.Context) (*ThemesResult, error) {
	if err := c.Params.Validate(); err != nil {
		return nil, err
	}

	corpus, err := c.repo.LoadCorpus(ctx)
	if err != nil {
		return nil, err
	}

	themes, noise := Cluster(corpus.Notes, c.Params)

	docs := make(map[string]string, len(themes)+1)
	for _, theme := range themes {
		docs[theme.Filename()] = theme.Summary()
	}
	docs["theme-clusters.md"] = domain.RenderMasterIndex(themes)

	return &ThemesResult{
		Themes:  themes,
		Noise:   noise,
		Docs:    docs,
		Corpus:  corpus,
		Skipped: corpus.Skipped,
	}, nil
}

// Cluster groups notes into themes and returns the themes in discovery
// order along with the noise notes. The partition is deterministic for a
// fixed corpus and parameters.
func Cluster(notes []domain.Note, params ClusterParams) (themes []domain.Theme, noise []domain.Note) {
	if len(notes) == 0 {
		return nil, nil
	}

	docs := make([]string, len(notes))
	for i, n := range notes {
		docs[i] = n.Document()
	}

	vectorizer := analysis.NewVectorizer(params.MaxFeatures, params.StopWords)
	vectors := vectorizer.FitTransform(docs)
	similarity := analysis.SimilarityMatrix(vectors)

	// DBSCAN works on distances; similarity threshold becomes the radius.
	distance := make([][]float64, len(similarity))
	for i, row := range similarity {
		distance[i] = make([]float64, len(row))
		for j, sim := range row {
			distance[i][j] = 1 - sim
		}
	}

	clusters, noiseIdx := analysis.DBSCAN(distance, 1-params.SimilarityThreshold, params.MinThemeSize)

	for ordinal, members := range clusters {
		clusterNotes := make([]domain.Note, 0, len(members))
		for _, idx := range members {
			clusterNotes = append(clusterNotes, notes[idx])
		}
		themes = append(themes, domain.NewTheme(ordinal+1, clusterNotes))
	}
	for _, idx := range noiseIdx {
		noise = append(noise, notes[idx])
	}
	return themes, noise
}
