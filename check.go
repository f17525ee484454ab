package gdc

import (
	"fmt"
	"strings"
)

// Names of the checks that run before the grammar rules.
const (
	CheckVocabulary        = "Vocabulary"
	CheckInputRequired     = "Input required"
	CheckCopy              = "Copy check"
	CheckRequiredStructure = "Required structure"
)

// SentenceReport is the result of checking one sentence of a text.
type SentenceReport struct {
	Sentence string        `json:"sentence"`
	Tokens   []string      `json:"tokens"`
	Valid    bool          `json:"valid"`
	Errors   []ReportError `json:"errors"`
}

// TextReport is the result of CheckText.
type TextReport struct {
	Valid     bool             `json:"valid"`
	Score     int              `json:"score"`
	Sentences []SentenceReport `json:"sentences"`
}

// CheckText splits text into sentences and checks each one. A sentence
// with words outside the vocabulary gets a single vocabulary error and is
// not checked against the grammar rules. The score counts valid sentences.
// Text without any sentence is invalid.
func (e *Engine) CheckText(text string) TextReport {
	report := TextReport{Valid: true, Sentences: []SentenceReport{}}
	sentences := SplitIntoSentences(text)
	if len(sentences) == 0 {
		report.Valid = false
		return report
	}
	for _, s := range sentences {
		sr := e.checkSentence(s)
		if sr.Valid {
			report.Score++
		} else {
			report.Valid = false
		}
		report.Sentences = append(report.Sentences, sr)
	}
	return report
}

func (e *Engine) checkSentence(sentence string) SentenceReport {
	tokens := Tokenize(sentence)
	sr := SentenceReport{Sentence: sentence, Tokens: tokens}
	if vocab := e.ValidateVocabulary(tokens); !vocab.Valid {
		sr.Errors = []ReportError{vocabularyError(vocab)}
		return sr
	}
	res := e.ValidateTokens(tokens)
	sr.Valid = res.Valid
	sr.Errors = res.Errors
	return sr
}

func vocabularyError(vocab VocabularyReport) ReportError {
	quoted := make([]string, len(vocab.InvalidWords))
	for i, w := range vocab.InvalidWords {
		quoted[i] = fmt.Sprintf("%q", w.Word)
	}
	return ReportError{
		Rule:    CheckVocabulary,
		Message: "words not allowed: " + strings.Join(quoted, ", "),
		Index:   vocab.InvalidWords[0].Index,
	}
}

// AttemptReport is the result of CheckAttempt.
type AttemptReport struct {
	Valid  bool          `json:"valid"`
	Errors []ReportError `json:"errors"`
	// Score is TotalWords plus BankWords, zero for a rejected attempt.
	Score      int      `json:"score"`
	TotalWords int      `json:"totalWords"`
	BankWords  int      `json:"bankWords"`
	UsedWords  []string `json:"usedWords"`
}

// CheckAttempt checks a sentence written around a generated fragment.
// The input must use the vocabulary, contain fragment without being a
// copy of it and pass the grammar rules. Tokens drawn from bank add one
// point each on top of the token count.
func (e *Engine) CheckAttempt(fragment, input string, bank []string) AttemptReport {
	report := AttemptReport{Errors: []ReportError{}, UsedWords: []string{}}
	reject := func(rule, msg string) AttemptReport {
		report.Errors = append(report.Errors, ReportError{Rule: rule, Message: msg})
		return report
	}

	input = strings.TrimFunc(input, isSpace)
	if input == "" {
		return reject(CheckInputRequired, "write something before checking")
	}

	tokens := Tokenize(input)
	if vocab := e.ValidateVocabulary(tokens); !vocab.Valid {
		report.Errors = append(report.Errors, vocabularyError(vocab))
		return report
	}

	target, attempt := collapse(fragment), collapse(input)
	if attempt == target {
		return reject(CheckCopy, "the fragment cannot be copied as it is")
	}
	if !strings.Contains(attempt, target) {
		return reject(CheckRequiredStructure, fmt.Sprintf("the sentence must include %q", fragment))
	}

	res := e.ValidateTokens(tokens)
	report.Valid = res.Valid
	report.Errors = res.Errors
	report.TotalWords = len(tokens)

	inBank := make(map[string]bool, len(bank))
	for _, w := range bank {
		inBank[Normalize(w)] = true
	}
	for _, t := range tokens {
		if inBank[Normalize(t)] {
			report.UsedWords = append(report.UsedWords, t)
		}
	}
	report.BankWords = len(report.UsedWords)
	if report.Valid {
		report.Score = report.TotalWords + report.BankWords
	}
	return report
}

// collapse lowercases s and reduces its whitespace to single spaces.
func collapse(s string) string {
	return strings.Join(strings.FieldsFunc(Normalize(s), isSpace), " ")
}

// WordBank draws n distinct surface forms from the vocabulary, without
// punctuation. Fewer are returned when the vocabulary is smaller.
func (e *Engine) WordBank(n int) []string {
	words := []string{}
	for _, w := range e.Vocabulary() {
		if !e.punctuation[w] {
			words = append(words, w)
		}
	}
	e.shuffle(len(words), func(i, j int) {
		words[i], words[j] = words[j], words[i]
	})
	if n < 0 {
		n = 0
	}
	if n > len(words) {
		n = len(words)
	}
	return words[:n:n]
}
