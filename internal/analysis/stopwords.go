package analysis

// DefaultStopWords returns the default English stop-word list. Terms on
// this list never enter the vocabulary, alone or inside a bigram.
func DefaultStopWords() []string {
	return []string{
		"a", "an", "the", "and", "or", "but", "if", "then", "else", "for",
		"to", "of", "in", "on", "at", "by", "with", "as", "is", "are",
		"was", "were", "be", "been", "being", "it", "this", "that", "these",
		"those", "from", "up", "down", "over", "under", "again", "further",
		"than", "so", "such", "into", "about", "between", "through",
		"during", "before", "after", "above", "below", "out", "off", "own",
		"same", "too", "very", "can", "will", "just", "don", "should",
		"now", "not", "no", "nor", "only", "have", "has", "had", "do",
		"does", "did", "you", "your", "they", "their", "them", "its",
		"what", "which", "who", "whom", "when", "where", "why", "how",
		"all", "any", "both", "each", "few", "more", "most", "other",
		"some", "we", "our", "he", "she", "his", "her", "my", "me",
	}
}
