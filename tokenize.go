package gdc

import (
	"regexp"
	"strings"
	"unicode"
)

// reSentenceEnd matches one or more sentence-final marks.
var reSentenceEnd = regexp.MustCompile(`[.!?]+`)

// rePunct matches the punctuation marks that always form their own token.
var rePunct = regexp.MustCompile(`([.,!?;:()«»"¿¡])`)

// isSpace reports Unicode white space, counting the byte order mark that
// word processors leave in pasted text.
func isSpace(r rune) bool {
	return unicode.IsSpace(r) || r == '\uFEFF'
}

// SplitIntoSentences splits text on runs of '.', '!' and '?'. Pieces are
// trimmed and empty pieces dropped; the marks themselves are discarded.
func SplitIntoSentences(text string) []string {
	sentences := []string{}
	if text == "" {
		return sentences
	}
	for _, part := range reSentenceEnd.Split(text, -1) {
		part = strings.TrimFunc(part, isSpace)
		if part != "" {
			sentences = append(sentences, part)
		}
	}
	return sentences
}

// Tokenize splits a sentence into word and punctuation tokens on any
// Unicode white space. Each mark of . , ! ? ; : ( ) « » " ¿ ¡ becomes
// a token of its own.
func Tokenize(sentence string) []string {
	tokens := []string{}
	if sentence == "" {
		return tokens
	}
	return append(tokens, strings.FieldsFunc(rePunct.ReplaceAllString(sentence, " $1 "), isSpace)...)
}
