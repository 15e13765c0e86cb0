package analysis

import (
	"math"
	"testing"
)

func TestVectorizerFit(t *testing.T) {
	docs := []string{
		"spaced repetition helps memory",
		"spaced repetition scheduling for flashcards",
		"gardening tips for spring",
	}

	v := NewVectorizer(0, nil)
	v.Fit(docs)

	if v.Dimension() == 0 {
		t.Fatal("expected a non-empty vocabulary")
	}
	// Unigrams and adjacent bigrams are both vocabulary candidates.
	if _, ok := v.vocabulary["spaced"]; !ok {
		t.Error("expected unigram 'spaced' in vocabulary")
	}
	if _, ok := v.vocabulary["spaced repetition"]; !ok {
		t.Error("expected bigram 'spaced repetition' in vocabulary")
	}
	// "for" is a stop word and must never appear, alone or in bigrams.
	if _, ok := v.vocabulary["for"]; ok {
		t.Error("stop word leaked into vocabulary")
	}
	for term := range v.vocabulary {
		if term == "tips for" || term == "for spring" {
			t.Errorf("bigram %q crosses a stop word", term)
		}
	}
}

func TestVectorizerMaxFeatures(t *testing.T) {
	docs := []string{
		"alpha beta gamma delta epsilon",
		"alpha beta gamma zeta eta",
	}

	v := NewVectorizer(3, nil)
	v.Fit(docs)

	if v.Dimension() != 3 {
		t.Errorf("expected vocabulary capped at 3, got %d", v.Dimension())
	}
}

func TestVectorizerMaxFeaturesEvictsUbiquitous(t *testing.T) {
	// "kernel" appears in every document with a high raw count; under a
	// tight cap the discriminative singleton terms must win the slots.
	docs := []string{
		"kernel kernel kernel scheduler",
		"kernel kernel kernel memory",
		"kernel kernel kernel filesystems",
	}

	capped := NewVectorizer(2, nil)
	capped.Fit(docs)
	if capped.Dimension() != 2 {
		t.Fatalf("expected vocabulary capped at 2, got %d", capped.Dimension())
	}
	if _, ok := capped.vocabulary["kernel"]; ok {
		t.Error("ubiquitous term survived the cap ahead of discriminative terms")
	}

	// Without cap pressure the term stays in the vocabulary.
	uncapped := NewVectorizer(0, nil)
	uncapped.Fit(docs)
	if _, ok := uncapped.vocabulary["kernel"]; !ok {
		t.Error("expected 'kernel' in the uncapped vocabulary")
	}
}

func TestVectorizerTransform(t *testing.T) {
	docs := []string{
		"spaced repetition helps memory",
		"spaced repetition scheduling",
		"gardening tips",
	}

	v := NewVectorizer(0, nil)
	vectors := v.FitTransform(docs)

	if len(vectors) != len(docs) {
		t.Fatalf("expected %d vectors, got %d", len(docs), len(vectors))
	}
	for i, vec := range vectors {
		if len(vec) != v.Dimension() {
			t.Fatalf("vector %d has dimension %d, want %d", i, len(vec), v.Dimension())
		}
		var norm float64
		for _, x := range vec {
			norm += x * x
		}
		norm = math.Sqrt(norm)
		if math.Abs(norm-1) > 1e-9 {
			t.Errorf("vector %d is not L2-normalized: norm %f", i, norm)
		}
	}
}

func TestVectorizerTransformNoMatches(t *testing.T) {
	v := NewVectorizer(0, nil)
	v.Fit([]string{"alpha beta", "alpha gamma"})

	vec := v.Transform("completely unrelated words")
	for i, x := range vec {
		if x != 0 {
			t.Fatalf("expected zero vector, got %f at %d", x, i)
		}
	}
}

func TestVectorizerEmptyCorpus(t *testing.T) {
	v := NewVectorizer(0, nil)
	v.Fit(nil)

	if v.Dimension() != 0 {
		t.Errorf("empty corpus should give empty vocabulary, got %d", v.Dimension())
	}
}

func TestVectorizerDeterminism(t *testing.T) {
	docs := []string{
		"notes about go concurrency patterns",
		"go concurrency with channels and goroutines",
		"testing go services in practice",
	}

	a := NewVectorizer(10, nil).FitTransform(docs)
	b := NewVectorizer(10, nil).FitTransform(docs)

	for i := range a {
		for j := range a[i] {
			if a[i][j] != b[i][j] {
				t.Fatalf("vectors differ between runs at [%d][%d]", i, j)
			}
		}
	}
}
