package gdc

import (
	"errors"
	"fmt"
	"sort"

	"github.com/rs/zerolog/log"
)

// ErrInvalidLexicon is wrapped by every structural lexicon error
// returned from New and LoadLexicon.
var ErrInvalidLexicon = errors.New("invalid lexicon")

// Gender is the grammatical gender of a lexical entry.
type Gender string

const (
	Masculine Gender = "m"
	Feminine  Gender = "f"
	// Neutral marks nouns that take either article and invariable adjectives.
	Neutral Gender = "n"
)

func (g Gender) valid() bool {
	return g == Masculine || g == Feminine || g == Neutral
}

// String returns a readable name.
func (g Gender) String() string {
	switch g {
	case Masculine:
		return "masculine"
	case Feminine:
		return "feminine"
	case Neutral:
		return "neutral"
	default:
		return "unknown"
	}
}

// VerbType is the subcategorization of a verb.
type VerbType string

const (
	Transitive   VerbType = "t"
	Intransitive VerbType = "i"
	Copulative   VerbType = "b"
)

func (v VerbType) valid() bool {
	return v == Transitive || v == Intransitive || v == Copulative
}

// String returns a readable name.
func (v VerbType) String() string {
	switch v {
	case Transitive:
		return "transitive"
	case Intransitive:
		return "intransitive"
	case Copulative:
		return "copulative"
	default:
		return "unknown"
	}
}

// Article is a determiner form with fixed gender and number.
type Article struct {
	Word   string `yaml:"word" json:"word"`
	Gender Gender `yaml:"gender" json:"gender"`
	Plural bool   `yaml:"plural" json:"plural"`
}

// Noun is a singular noun lemma with its semantic features.
type Noun struct {
	Word     string   `yaml:"word" json:"word"`
	Gender   Gender   `yaml:"gender" json:"gender"`
	Features []string `yaml:"features" json:"features"`
}

// HasAnyFeature reports whether the noun carries at least one of required.
func (n Noun) HasAnyFeature(required []string) bool {
	return intersects(n.Features, required)
}

// Adjective is an adjective lemma. Type is the gender of the base form,
// Neutral for invariable adjectives.
type Adjective struct {
	Base string `yaml:"base" json:"base"`
	Type Gender `yaml:"type" json:"type"`
}

// Restrictions lists the semantic features a verb selects for its
// subject and object. An empty list means no restriction.
type Restrictions struct {
	Subj []string `yaml:"subj" json:"subj,omitempty"`
	Obj  []string `yaml:"obj" json:"obj,omitempty"`
}

// Verb is an infinitive with its subcategory and selection restrictions.
type Verb struct {
	Word         string       `yaml:"word" json:"word"`
	Type         VerbType     `yaml:"type" json:"type"`
	Restrictions Restrictions `yaml:"restrictions" json:"restrictions"`
}

// Conjugation holds the third-person present forms of a verb.
type Conjugation struct {
	Sing string `yaml:"sing" json:"sing"`
	Plur string `yaml:"plur" json:"plur"`
}

// Lexicon is the static word list the engine works from.
// It must not be modified once handed to the engine.
type Lexicon struct {
	Articles     []Article              `yaml:"articles" json:"articles"`
	Nouns        []Noun                 `yaml:"nouns" json:"nouns"`
	Adjectives   []Adjective            `yaml:"adjectives" json:"adjectives"`
	Verbs        []Verb                 `yaml:"verbs" json:"verbs"`
	Conjugations map[string]Conjugation `yaml:"conjugations" json:"conjugations"`
	Connectors   []string               `yaml:"connectors" json:"connectors"`
	Punctuation  []string               `yaml:"punctuation" json:"punctuation"`
}

// conjugationLemmas returns the conjugation table keys in a stable order.
func (lex *Lexicon) conjugationLemmas() []string {
	keys := make([]string, 0, len(lex.Conjugations))
	for k := range lex.Conjugations {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// validate checks the structural constraints the generator relies on.
// Problems that only degrade generation are logged instead.
func (lex *Lexicon) validate() error {
	for i, a := range lex.Articles {
		if a.Word == "" {
			return fmt.Errorf("%w: article #%d has no word", ErrInvalidLexicon, i)
		}
		if a.Gender != Masculine && a.Gender != Feminine {
			return fmt.Errorf("%w: article %q has gender %q", ErrInvalidLexicon, a.Word, a.Gender)
		}
	}
	for _, g := range []Gender{Masculine, Feminine} {
		for _, pl := range []bool{false, true} {
			if len(lex.articlesFor(g, pl)) == 0 {
				return fmt.Errorf("%w: no article for gender %s (plural=%t)", ErrInvalidLexicon, g, pl)
			}
		}
	}
	if len(lex.Nouns) == 0 {
		return fmt.Errorf("%w: no nouns", ErrInvalidLexicon)
	}
	for i, n := range lex.Nouns {
		if n.Word == "" {
			return fmt.Errorf("%w: noun #%d has no word", ErrInvalidLexicon, i)
		}
		if !n.Gender.valid() {
			return fmt.Errorf("%w: noun %q has gender %q", ErrInvalidLexicon, n.Word, n.Gender)
		}
	}
	for i, a := range lex.Adjectives {
		if a.Base == "" {
			return fmt.Errorf("%w: adjective #%d has no base", ErrInvalidLexicon, i)
		}
		if !a.Type.valid() {
			return fmt.Errorf("%w: adjective %q has type %q", ErrInvalidLexicon, a.Base, a.Type)
		}
	}
	var transitive, other int
	for i, v := range lex.Verbs {
		if v.Word == "" {
			return fmt.Errorf("%w: verb #%d has no word", ErrInvalidLexicon, i)
		}
		if !v.Type.valid() {
			return fmt.Errorf("%w: verb %q has type %q", ErrInvalidLexicon, v.Word, v.Type)
		}
		if v.Type == Transitive {
			transitive++
		} else {
			other++
		}
	}
	if transitive == 0 || other == 0 {
		return fmt.Errorf("%w: need transitive and intransitive/copulative verbs (got %d and %d)",
			ErrInvalidLexicon, transitive, other)
	}
	for lemma, c := range lex.Conjugations {
		if c.Sing == "" || c.Plur == "" {
			return fmt.Errorf("%w: conjugation of %q is incomplete", ErrInvalidLexicon, lemma)
		}
	}
	lex.warnSoftProblems()
	return nil
}

func (lex *Lexicon) warnSoftProblems() {
	for _, v := range lex.Verbs {
		if _, ok := lex.Conjugations[v.Word]; !ok {
			log.Warn().Str("verb", v.Word).Msg("verb has no conjugation, generated fragments will use the infinitive")
		}
		if len(v.Restrictions.Subj) > 0 && !lex.anyNounWith(v.Restrictions.Subj) {
			log.Warn().
				Str("verb", v.Word).
				Strs("subj", v.Restrictions.Subj).
				Msg("no noun satisfies the subject restriction")
		}
		if len(v.Restrictions.Obj) > 0 && !lex.anyNounWith(v.Restrictions.Obj) {
			log.Warn().
				Str("verb", v.Word).
				Strs("obj", v.Restrictions.Obj).
				Msg("no noun satisfies the object restriction")
		}
	}
}

func (lex *Lexicon) anyNounWith(features []string) bool {
	for _, n := range lex.Nouns {
		if n.HasAnyFeature(features) {
			return true
		}
	}
	return false
}

// articlesFor returns the articles of the given gender and number.
func (lex *Lexicon) articlesFor(g Gender, plural bool) []Article {
	var out []Article
	for _, a := range lex.Articles {
		if a.Gender == g && a.Plural == plural {
			out = append(out, a)
		}
	}
	return out
}

func intersects(have, want []string) bool {
	for _, w := range want {
		for _, h := range have {
			if h == w {
				return true
			}
		}
	}
	return false
}
