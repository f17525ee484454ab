// Package gdc implements a context-sensitive grammar engine for a
// constructed fragment of Spanish: it classifies words against a static
// lexicon, generates agreeing sentence fragments, validates sentences
// against agreement and semantic selection rules and builds a
// constituency tree for display.
package gdc

import (
	"math/rand/v2"
	"path/filepath"
	"sync"

	"github.com/rs/zerolog/log"
)

// LexiconFile is the name of the lexicon inside a data directory.
const LexiconFile = "lexicon.yaml"

// verbForm is a conjugated surface form resolved to its lemma.
type verbForm struct {
	lemma  string
	plural bool
}

// Engine holds the loaded lexicon and provides the public API.
// All methods are safe for concurrent use.
type Engine struct {
	lex *Lexicon

	// The maps below are keyed by Normalize(form); values index into lex.
	// Each map keeps the first lexicon entry producing a given form.
	articles    map[string]int
	nounSing    map[string]int
	nounPlur    map[string]int
	verbLemmas  map[string]int
	verbForms   map[string]verbForm
	adjForms    map[string]int
	connectors  map[string]string
	punctuation map[string]bool // verbatim keys

	// vocabulary is the closed set of admissible surface forms.
	vocabulary map[string]struct{}

	// mu guards rng; *rand.Rand is not safe for concurrent use.
	mu  sync.Mutex
	rng *rand.Rand
}

// Option configures an Engine.
type Option func(*Engine)

// WithRand sets the random source used by the generator and the word bank.
func WithRand(r *rand.Rand) Option {
	return func(e *Engine) {
		e.rng = r
	}
}

// New loads the lexicon from dataDir and returns a ready-to-use Engine.
func New(dataDir string, opts ...Option) (*Engine, error) {
	lex, err := LoadLexicon(filepath.Join(dataDir, LexiconFile))
	if err != nil {
		return nil, err
	}
	return NewFromLexicon(lex, opts...)
}

// NewFromLexicon validates lex, precomputes the lookup indexes and the
// closed vocabulary and returns an Engine. lex must not be modified
// afterwards.
func NewFromLexicon(lex *Lexicon, opts ...Option) (*Engine, error) {
	if err := lex.validate(); err != nil {
		return nil, err
	}
	e := &Engine{
		lex:         lex,
		articles:    make(map[string]int),
		nounSing:    make(map[string]int),
		nounPlur:    make(map[string]int),
		verbLemmas:  make(map[string]int),
		verbForms:   make(map[string]verbForm),
		adjForms:    make(map[string]int),
		connectors:  make(map[string]string),
		punctuation: make(map[string]bool),
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.rng == nil {
		e.rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	e.buildIndexes()
	e.vocabulary = buildVocabulary(lex)

	log.Info().
		Int("articles", len(lex.Articles)).
		Int("nouns", len(lex.Nouns)).
		Int("adjectives", len(lex.Adjectives)).
		Int("verbs", len(lex.Verbs)).
		Int("vocabulary", len(e.vocabulary)).
		Msg("lexicon loaded")
	return e, nil
}

// Lexicon returns the lexicon the engine was built from.
// The caller must treat it as read-only.
func (e *Engine) Lexicon() *Lexicon {
	return e.lex
}

// intn draws a random index in [0, n).
func (e *Engine) intn(n int) int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.rng.IntN(n)
}

// chance returns true with probability p.
func (e *Engine) chance(p float64) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.rng.Float64() < p
}

// shuffle permutes n elements through swap.
func (e *Engine) shuffle(n int, swap func(i, j int)) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.rng.Shuffle(n, swap)
}
