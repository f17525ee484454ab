package gdc

import "fmt"

// Category is the morphosyntactic class assigned to a token.
type Category int

// Categories, CategoryOther being the residual class.
const (
	CategoryOther Category = iota
	CategoryArticle
	CategoryNoun
	CategoryVerb
	CategoryAdjective
	CategoryConnector
	CategoryPunctuation
)

var categoryNames = []string{"Other", "Article", "Noun", "Verb", "Adjective", "Connector", "Punctuation"}

// String returns a readable name.
func (c Category) String() string {
	if int(c) < len(categoryNames) && c >= 0 {
		return categoryNames[c]
	}
	return "Other"
}

// MarshalText encodes the category by name.
func (c Category) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText decodes a category name.
func (c *Category) UnmarshalText(b []byte) error {
	for i, name := range categoryNames {
		if name == string(b) {
			*c = Category(i)
			return nil
		}
	}
	return fmt.Errorf("unknown category %q", string(b))
}

// WordInfo is the classification of a single token.
// Only the fields meaningful for Category are set.
type WordInfo struct {
	// Token is the raw token as given.
	Token    string   `json:"token"`
	Category Category `json:"category"`
	// Lemma is the lexicon entry the token was derived from
	// (noun singular, verb infinitive, adjective base, article, connector).
	Lemma  string `json:"lemma,omitempty"`
	Gender Gender `json:"gender,omitempty"`
	Plural bool   `json:"plural"`
	// Features are the semantic tags of a noun.
	Features []string `json:"features,omitempty"`
	// VerbType and Restrictions are set for verbs.
	VerbType     VerbType      `json:"verbType,omitempty"`
	Restrictions *Restrictions `json:"restrictions,omitempty"`
	// AdjectiveType is the lexical type of an adjective.
	AdjectiveType Gender `json:"adjectiveType,omitempty"`
}

// Is reports whether the token belongs to category c.
func (w WordInfo) Is(c Category) bool {
	return w.Category == c
}

// detail is the inflection summary shown on syntax tree leaves.
func (w WordInfo) detail() string {
	switch w.Category {
	case CategoryArticle, CategoryNoun:
		if w.Gender == "" {
			return ""
		}
		if w.Plural {
			return string(w.Gender) + ", pl"
		}
		return string(w.Gender) + ", sg"
	case CategoryVerb:
		if w.Plural {
			return "plural"
		}
		return "singular"
	default:
		return ""
	}
}
