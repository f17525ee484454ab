package gdc

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitIntoSentences(t *testing.T) {
	tests := []struct {
		text string
		want []string
	}{
		{"", []string{}},
		{"   ", []string{}},
		{". ! ?", []string{}},
		{"sin punto", []string{"sin punto"}},
		{"El gato come. El perro duerme!", []string{"El gato come", "El perro duerme"}},
		{"Uno...  Dos?! Tres", []string{"Uno", "Dos", "Tres"}},
		{"¿Quién canta? La niña.", []string{"¿Quién canta", "La niña"}},
		{"\ufeffEl\u00a0gato come.\u2003\u00a0", []string{"El\u00a0gato come"}},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, SplitIntoSentences(tt.text), "text %q", tt.text)
	}
}

func TestTokenize(t *testing.T) {
	tests := []struct {
		sentence string
		want     []string
	}{
		{"", []string{}},
		{"  \t ", []string{}},
		{"El gato come", []string{"El", "gato", "come"}},
		{"  el   gato\tcome  ", []string{"el", "gato", "come"}},
		{"El gato come.", []string{"El", "gato", "come", "."}},
		{"¿Quién canta?", []string{"¿", "Quién", "canta", "?"}},
		{"¡Hola!", []string{"¡", "Hola", "!"}},
		{"gato,perro;luz:casa", []string{"gato", ",", "perro", ";", "luz", ":", "casa"}},
		{`«libro» (carta) "flor"`, []string{"«", "libro", "»", "(", "carta", ")", `"`, "flor", `"`}},
		{"come...", []string{"come", ".", ".", "."}},
		{"el\u00a0gato\u2003come", []string{"el", "gato", "come"}},
		{"\u00a0la\u202fluz\u3000brilla.\u00a0", []string{"la", "luz", "brilla", "."}},
		{"\ufeffel\ufeffperro", []string{"el", "perro"}},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Tokenize(tt.sentence), "sentence %q", tt.sentence)
	}
}
