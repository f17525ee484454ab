package gdc

import "strings"

// apocope is a short prenominal form of an adjective.
type apocope struct {
	form          string
	masculineOnly bool
}

// apocopes maps adjective lemmas to the form they take right before a
// singular noun.
var apocopes = map[string]apocope{
	"bueno":   {form: "buen", masculineOnly: true},
	"grande":  {form: "gran"},
	"ninguno": {form: "ningún", masculineOnly: true},
	"uno":     {form: "un", masculineOnly: true},
}

// Pluralize returns the plural of a noun: a final "z" becomes "ces",
// a final vowel takes "s", anything else takes "es".
// The classifier recognises noun plurals with this same function.
func Pluralize(noun string) string {
	switch {
	case strings.HasSuffix(noun, "z"):
		return replaceLast(noun, "ces")
	case endsInVowel(Normalize(noun)):
		return noun + "s"
	default:
		return noun + "es"
	}
}

// AgreeAdjective inflects adj for the given gender and number.
// Prenominal singular adjectives listed in the apocope table are shortened
// (bueno -> buen); otherwise the final vowel is flipped when the lexical
// type disagrees with gender and a plural suffix is added.
func AgreeAdjective(adj Adjective, g Gender, plural, prenominal bool) string {
	word := Normalize(adj.Base)

	if prenominal && !plural {
		if ap, ok := apocopes[word]; ok && (!ap.masculineOnly || g == Masculine) {
			return ap.form
		}
	}

	if adj.Type == Masculine && g == Feminine && strings.HasSuffix(word, "o") {
		word = replaceLast(word, "a")
	}
	if adj.Type == Feminine && g == Masculine && strings.HasSuffix(word, "a") {
		word = replaceLast(word, "o")
	}

	if plural {
		if endsInVowel(word) {
			return word + "s"
		}
		return word + "es"
	}
	return word
}

// adjectiveVariants lists every surface form of adj the engine accepts:
// the base, the apocopated literal if the lemma has one, and each
// gender/number inflection AgreeAdjective can produce.
func adjectiveVariants(adj Adjective) []string {
	base := Normalize(adj.Base)
	variants := []string{base}
	if ap, ok := apocopes[base]; ok {
		variants = append(variants, ap.form)
	}
	for _, g := range []Gender{Masculine, Feminine} {
		for _, pl := range []bool{false, true} {
			variants = append(variants, AgreeAdjective(adj, g, pl, false))
		}
	}
	return unique(variants)
}

// Conjugate returns the third-person form of lemma for the given number.
// A verb missing from the conjugation table is returned unchanged.
func (e *Engine) Conjugate(lemma string, plural bool) string {
	c, ok := e.lex.Conjugations[lemma]
	if !ok {
		c, ok = e.lex.Conjugations[Normalize(lemma)]
	}
	if !ok {
		return lemma
	}
	if plural {
		return c.Plur
	}
	return c.Sing
}

// unique returns a deduplicated slice preserving order.
func unique(ss []string) []string {
	seen := make(map[string]bool)
	var out []string
	for _, s := range ss {
		if !seen[s] {
			seen[s] = true
			out = append(out, s)
		}
	}
	return out
}
