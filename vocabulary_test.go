package gdc

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateVocabulary(t *testing.T) {
	e := newTestEngine(t)
	tests := []struct {
		name    string
		tokens  []string
		invalid []InvalidWord
	}{
		{"empty", []string{}, []InvalidWord{}},
		{"valid", Tokenize("Los gatos comen el buen pan."), []InvalidWord{}},
		{"unknown word", []string{"El", "gato", "xyz", "come"}, []InvalidWord{{Word: "xyz", Index: 2}}},
		{"two unknown words", []string{"foo", "gato", "bar"}, []InvalidWord{{"foo", 0}, {"bar", 2}}},
		{"blank token skipped", []string{"el", " ", "gato"}, []InvalidWord{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			report := e.ValidateVocabulary(tt.tokens)
			assert.Equal(t, len(tt.invalid) == 0, report.Valid)
			assert.Equal(t, tt.invalid, report.InvalidWords)
		})
	}
}

func TestVocabularyForms(t *testing.T) {
	e := newTestEngine(t)
	for _, w := range []string{
		"el", "Las", "gato", "gatos", "lápices", "come", "comen", "están",
		"roja", "buen", "gran", "ningún", "hermoso", "y", "hacia", ".", "¡",
	} {
		assert.True(t, e.InVocabulary(w), "word %s", w)
	}
	// verb lemmas are classified but not part of the vocabulary
	assert.False(t, e.InVocabulary("comer"))
	assert.False(t, e.InVocabulary("xyz"))
}

func TestVocabularySorted(t *testing.T) {
	e := newTestEngine(t)
	words := e.Vocabulary()
	assert.True(t, sort.StringsAreSorted(words))
	assert.Contains(t, words, "perros")
}
