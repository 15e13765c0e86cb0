// Package analysis implements the numerical core of theme clustering:
// TF-IDF vectorization, cosine similarity, and density-based grouping.
package analysis

import (
	"math"
	"regexp"
	"sort"
	"strings"
)

// DefaultMaxFeatures caps the vocabulary when no limit is configured.
const DefaultMaxFeatures = 1000

var tokenPattern = regexp.MustCompile(`\w\w+`)

// Vectorizer turns documents into TF-IDF weighted vectors over a shared
// vocabulary of unigrams and bigrams. Fit builds the vocabulary from a
// corpus; Transform then produces one vector per document. Given the same
// corpus and configuration the vocabulary and all vectors are identical
// run to run.
type Vectorizer struct {
	maxFeatures int
	stopwords   map[string]struct{}
	vocabulary  map[string]int
	idf         []float64
}

// NewVectorizer creates an unfitted vectorizer. A non-positive maxFeatures
// falls back to DefaultMaxFeatures; nil stopwords fall back to the default
// list.
func NewVectorizer(maxFeatures int, stopwords []string) *Vectorizer {
	if maxFeatures <= 0 {
		maxFeatures = DefaultMaxFeatures
	}
	if stopwords == nil {
		stopwords = DefaultStopWords()
	}
	set := make(map[string]struct{}, len(stopwords))
	for _, w := range stopwords {
		set[w] = struct{}{}
	}
	return &Vectorizer{
		maxFeatures: maxFeatures,
		stopwords:   set,
		vocabulary:  make(map[string]int),
	}
}

// Dimension returns the fitted vocabulary size.
func (v *Vectorizer) Dimension() int {
	return len(v.vocabulary)
}

// Fit builds the vocabulary and IDF weights from the corpus. Vocabulary
// terms are selected by cumulative tf·idf mass; terms present in every
// document are evicted first when the feature cap binds, so a ubiquitous
// high-frequency term never displaces a discriminative one. Ties resolve
// lexicographically. An empty or all-stop-word corpus yields an empty
// vocabulary, not an error.
func (v *Vectorizer) Fit(docs []string) {
	df := make(map[string]int)
	tf := make(map[string]int)
	for _, doc := range docs {
		terms := v.terms(doc)
		seen := make(map[string]struct{}, len(terms))
		for _, term := range terms {
			tf[term]++
			if _, ok := seen[term]; ok {
				continue
			}
			seen[term] = struct{}{}
			df[term]++
		}
	}

	n := float64(len(docs))
	idfOf := func(term string) float64 {
		// Smoothed IDF, always > 0.
		return math.Log((1+n)/(1+float64(df[term]))) + 1.0
	}

	type scored struct {
		term       string
		score      float64
		ubiquitous bool
	}
	ranked := make([]scored, 0, len(df))
	for term := range df {
		ranked = append(ranked, scored{
			term:       term,
			score:      float64(tf[term]) * idfOf(term),
			ubiquitous: len(docs) > 1 && df[term] == len(docs),
		})
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].ubiquitous != ranked[j].ubiquitous {
			return !ranked[i].ubiquitous
		}
		if ranked[i].score != ranked[j].score {
			return ranked[i].score > ranked[j].score
		}
		return ranked[i].term < ranked[j].term
	})
	if len(ranked) > v.maxFeatures {
		ranked = ranked[:v.maxFeatures]
	}

	selected := make([]string, 0, len(ranked))
	for _, s := range ranked {
		selected = append(selected, s.term)
	}
	sort.Strings(selected)

	v.vocabulary = make(map[string]int, len(selected))
	v.idf = make([]float64, len(selected))
	for i, term := range selected {
		v.vocabulary[term] = i
		v.idf[i] = idfOf(term)
	}
}

// Transform computes the L2-normalized TF-IDF vector for one document.
// A document with no vocabulary terms maps to the zero vector.
func (v *Vectorizer) Transform(doc string) []float64 {
	vec := make([]float64, len(v.vocabulary))

	counts := make(map[int]int)
	total := 0
	for _, term := range v.terms(doc) {
		if idx, ok := v.vocabulary[term]; ok {
			counts[idx]++
			total++
		}
	}
	if total == 0 {
		return vec
	}

	for idx, count := range counts {
		vec[idx] = float64(count) / float64(total) * v.idf[idx]
	}

	var norm float64
	for _, x := range vec {
		norm += x * x
	}
	norm = math.Sqrt(norm)
	if norm > 0 {
		for i := range vec {
			vec[i] /= norm
		}
	}
	return vec
}

// FitTransform fits the vocabulary and returns one vector per document.
func (v *Vectorizer) FitTransform(docs []string) [][]float64 {
	v.Fit(docs)
	vectors := make([][]float64, len(docs))
	for i, doc := range docs {
		vectors[i] = v.Transform(doc)
	}
	return vectors
}

// terms tokenizes a document into stop-word-filtered unigrams and
// adjacent bigrams.
func (v *Vectorizer) terms(doc string) []string {
	raw := tokenPattern.FindAllString(strings.ToLower(doc), -1)
	tokens := raw[:0]
	for _, t := range raw {
		if _, stop := v.stopwords[t]; stop {
			continue
		}
		tokens = append(tokens, t)
	}

	terms := make([]string, 0, len(tokens)*2)
	terms = append(terms, tokens...)
	for i := 0; i+1 < len(tokens); i++ {
		terms = append(terms, tokens[i]+" "+tokens[i+1])
	}
	return terms
}
