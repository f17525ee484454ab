package gdc

import "sort"

// InvalidWord is a token outside the closed vocabulary.
type InvalidWord struct {
	Word  string `json:"word"`
	Index int    `json:"index"`
}

// VocabularyReport is the result of ValidateVocabulary.
type VocabularyReport struct {
	Valid        bool          `json:"valid"`
	InvalidWords []InvalidWord `json:"invalidWords"`
}

// buildVocabulary derives every admissible surface form from lex.
func buildVocabulary(lex *Lexicon) map[string]struct{} {
	vocab := make(map[string]struct{})
	add := func(w string) {
		vocab[Normalize(w)] = struct{}{}
	}
	for _, a := range lex.Articles {
		add(a.Word)
	}
	for _, n := range lex.Nouns {
		add(n.Word)
		add(Pluralize(n.Word))
	}
	for _, c := range lex.Conjugations {
		add(c.Sing)
		add(c.Plur)
	}
	for _, adj := range lex.Adjectives {
		for _, v := range adjectiveVariants(adj) {
			add(v)
		}
	}
	for _, c := range lex.Connectors {
		add(c)
	}
	for _, p := range lex.Punctuation {
		vocab[p] = struct{}{}
	}
	return vocab
}

// InVocabulary reports whether token is an admissible surface form.
func (e *Engine) InVocabulary(token string) bool {
	_, ok := e.vocabulary[Normalize(token)]
	return ok
}

// ValidateVocabulary reports every non-empty token that is not part of
// the closed vocabulary, with its position.
func (e *Engine) ValidateVocabulary(tokens []string) VocabularyReport {
	invalid := []InvalidWord{}
	for i, t := range tokens {
		if Normalize(t) == "" {
			continue
		}
		if !e.InVocabulary(t) {
			invalid = append(invalid, InvalidWord{Word: t, Index: i})
		}
	}
	return VocabularyReport{Valid: len(invalid) == 0, InvalidWords: invalid}
}

// Vocabulary returns the closed vocabulary in sorted order.
func (e *Engine) Vocabulary() []string {
	words := make([]string, 0, len(e.vocabulary))
	for w := range e.vocabulary {
		words = append(words, w)
	}
	sort.Strings(words)
	return words
}
