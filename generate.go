package gdc

import "strings"

const (
	pluralProbability    = 0.3
	adjectiveProbability = 0.4
)

// nounPhrase is a generated [Det (Adj) N] phrase.
type nounPhrase struct {
	noun      Noun
	gender    Gender
	plural    bool
	article   Article
	adjective *Adjective
}

func (np nounPhrase) words() []string {
	words := []string{np.article.Word}
	if np.adjective != nil {
		words = append(words, AgreeAdjective(*np.adjective, np.gender, np.plural, true))
	}
	if np.plural {
		return append(words, Pluralize(np.noun.Word))
	}
	return append(words, np.noun.Word)
}

// GenerateFragment builds a random sentence from one of two templates,
// [NP VP] or [NP VP NP]. Every fragment passes ValidateTokens and
// ValidateVocabulary once tokenized.
func (e *Engine) GenerateFragment() string {
	withObject := e.intn(2) == 1
	verb := e.pickVerb(withObject)

	subj := e.nounPhrase(verb.Restrictions.Subj, nil)
	words := subj.words()
	words = append(words, e.Conjugate(verb.Word, subj.plural))
	if withObject {
		obj := e.nounPhrase(verb.Restrictions.Obj, &subj)
		words = append(words, obj.words()...)
	}
	return strings.Join(words, " ")
}

// pickVerb draws a transitive verb for the object template and an
// intransitive or copulative one otherwise.
func (e *Engine) pickVerb(transitive bool) Verb {
	var pool []Verb
	for _, v := range e.lex.Verbs {
		if (v.Type == Transitive) == transitive {
			pool = append(pool, v)
		}
	}
	return pool[e.intn(len(pool))]
}

// nounPhrase draws a noun phrase whose noun satisfies required when the
// lexicon allows it. When other is set, the phrase is built to differ
// from it: other's noun is avoided and, if it must repeat, the phrase gets
// an adjective other does not use.
func (e *Engine) nounPhrase(required []string, other *nounPhrase) nounPhrase {
	pool := e.nounsWith(required)
	if other != nil {
		if rest := nounsExcept(pool, other.noun.Word); len(rest) > 0 {
			pool = rest
		}
	}

	np := nounPhrase{noun: pool[e.intn(len(pool))]}
	np.gender = np.noun.Gender
	if np.gender == Neutral {
		np.gender = Masculine
		if e.chance(0.5) {
			np.gender = Feminine
		}
	}
	np.plural = e.chance(pluralProbability)

	articles := e.lex.articlesFor(np.gender, np.plural)
	np.article = articles[e.intn(len(articles))]

	repeated := other != nil && other.noun.Word == np.noun.Word
	if repeated || e.chance(adjectiveProbability) {
		np.adjective = e.pickAdjective(other)
	}
	return np
}

// nounsWith returns the nouns carrying one of required. Restrictions only
// steer generation: with no matching noun the whole noun list is used.
func (e *Engine) nounsWith(required []string) []Noun {
	if len(required) == 0 {
		return e.lex.Nouns
	}
	var out []Noun
	for _, n := range e.lex.Nouns {
		if n.HasAnyFeature(required) {
			out = append(out, n)
		}
	}
	if len(out) == 0 {
		return e.lex.Nouns
	}
	return out
}

func nounsExcept(nouns []Noun, word string) []Noun {
	var out []Noun
	for _, n := range nouns {
		if n.Word != word {
			out = append(out, n)
		}
	}
	return out
}

// pickAdjective draws an adjective, avoiding the one used by other when
// an alternative exists. It returns nil for a lexicon without adjectives.
func (e *Engine) pickAdjective(other *nounPhrase) *Adjective {
	pool := e.lex.Adjectives
	if other != nil && other.adjective != nil {
		var rest []Adjective
		for _, a := range pool {
			if a.Base != other.adjective.Base {
				rest = append(rest, a)
			}
		}
		if len(rest) > 0 {
			pool = rest
		}
	}
	if len(pool) == 0 {
		return nil
	}
	adj := pool[e.intn(len(pool))]
	return &adj
}
