package gdc

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadLexicon reads a YAML lexicon file.
func LoadLexicon(path string) (*Lexicon, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open lexicon: %w", err)
	}
	defer f.Close()

	lex, err := ParseLexicon(f)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return lex, nil
}

// ParseLexicon decodes a YAML lexicon. Unknown keys are rejected so that
// typos in the data file do not silently drop entries.
func ParseLexicon(r io.Reader) (*Lexicon, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var lex Lexicon
	if err := dec.Decode(&lex); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty document", ErrInvalidLexicon)
		}
		return nil, fmt.Errorf("%w: %w", ErrInvalidLexicon, err)
	}
	if lex.Conjugations == nil {
		lex.Conjugations = make(map[string]Conjugation)
	}
	return &lex, nil
}

// buildIndexes fills the classification maps. Entries are inserted in
// lexicon order and never overwritten, so the first entry producing a
// form wins, as a linear scan would.
func (e *Engine) buildIndexes() {
	for i, a := range e.lex.Articles {
		addFirst(e.articles, Normalize(a.Word), i)
	}
	for i, n := range e.lex.Nouns {
		addFirst(e.nounSing, Normalize(n.Word), i)
	}
	for i, n := range e.lex.Nouns {
		addFirst(e.nounPlur, Normalize(Pluralize(n.Word)), i)
	}
	for i, v := range e.lex.Verbs {
		addFirst(e.verbLemmas, Normalize(v.Word), i)
	}
	for _, lemma := range e.lex.conjugationLemmas() {
		c := e.lex.Conjugations[lemma]
		addFirst(e.verbForms, Normalize(c.Sing), verbForm{lemma: lemma})
		addFirst(e.verbForms, Normalize(c.Plur), verbForm{lemma: lemma, plural: true})
	}
	for i, adj := range e.lex.Adjectives {
		for _, v := range adjectiveVariants(adj) {
			addFirst(e.adjForms, v, i)
		}
	}
	for _, c := range e.lex.Connectors {
		addFirst(e.connectors, Normalize(c), c)
	}
	for _, p := range e.lex.Punctuation {
		e.punctuation[p] = true
	}
}

func addFirst[V any](m map[string]V, key string, v V) {
	if _, ok := m[key]; !ok {
		m[key] = v
	}
}
