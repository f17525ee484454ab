package gdc

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

// vowels lists the lowercase vowels, accented ones included, that select
// the "+s" plural suffix.
const vowels = "aeiouáéíóú"

// Normalize returns the lookup key for a word: surrounding whitespace
// removed, accents composed (NFC) and Spanish lowercasing applied.
// Punctuation is not affected.
func Normalize(s string) string {
	s = norm.NFC.String(strings.TrimFunc(s, isSpace))
	// a Caser keeps state between calls, so it is not shared
	return cases.Lower(language.Spanish).String(s)
}

// endsInVowel reports whether the last rune of the (normalized) word is a vowel.
func endsInVowel(word string) bool {
	if word == "" {
		return false
	}
	r := []rune(word)
	return strings.ContainsRune(vowels, r[len(r)-1])
}

// replaceLast replaces the final rune of word (known to be ASCII) with repl.
func replaceLast(word, repl string) string {
	return word[:len(word)-1] + repl
}
