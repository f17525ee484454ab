package gdc

import (
	"fmt"
	"strings"
)

// RuleError is one violation found by a rule.
type RuleError struct {
	Message string `json:"message"`
	// Index is the position of the offending token.
	Index int `json:"index"`
}

// RuleResult is the outcome of running one rule over a token stream.
type RuleResult struct {
	Valid  bool        `json:"valid"`
	Errors []RuleError `json:"errors"`
}

func (r *RuleResult) fail(index int, format string, args ...any) {
	r.Valid = false
	r.Errors = append(r.Errors, RuleError{Message: fmt.Sprintf(format, args...), Index: index})
}

func newResult() RuleResult {
	return RuleResult{Valid: true, Errors: []RuleError{}}
}

// Rule is a context-sensitive check over a tokenized sentence.
type Rule interface {
	Name() string
	Validate(tokens []string) RuleResult
}

// Names of the grammar rules, as reported in ReportError.Rule.
const (
	RuleArticleNoun   = "Article–Noun agreement"
	RuleNounAdjective = "Noun–Adjective agreement"
	RuleSubjectVerb   = "Subject–Verb agreement"
	RuleSemantic      = "Semantic selection restrictions"
)

// Rules returns the engine's rules in evaluation order.
func (e *Engine) Rules() []Rule {
	return []Rule{
		articleNounRule{e},
		nounAdjectiveRule{e},
		subjectVerbRule{e},
		semanticRule{e},
	}
}

func number(plural bool) string {
	if plural {
		return "plural"
	}
	return "singular"
}

// ---- article-noun agreement ----------------------------------------------

// articleNounRule checks gender and number of every article directly
// followed by a noun. Neutral nouns only check number.
type articleNounRule struct{ e *Engine }

func (articleNounRule) Name() string { return RuleArticleNoun }

func (r articleNounRule) Validate(tokens []string) RuleResult {
	res := newResult()
	infos := r.e.classifyAll(tokens)
	for i := 0; i+1 < len(infos); i++ {
		art, noun := infos[i], infos[i+1]
		if !art.Is(CategoryArticle) || !noun.Is(CategoryNoun) {
			continue
		}
		if noun.Gender != Neutral && art.Gender != noun.Gender {
			res.fail(i, "article '%s' (%s) does not agree in gender with noun '%s' (%s)",
				tokens[i], art.Gender, tokens[i+1], noun.Gender)
		}
		if art.Plural != noun.Plural {
			res.fail(i, "article '%s' (%s) does not agree in number with noun '%s' (%s)",
				tokens[i], number(art.Plural), tokens[i+1], number(noun.Plural))
		}
	}
	return res
}

// ---- noun-adjective agreement --------------------------------------------

// nounAdjectiveRule checks adjectives adjacent to a noun. The adjective's
// number and gender are read from its ending, not from the lexicon:
// a final "s" means plural, "o"/"os" masculine and "a"/"as" feminine.
// Gender is only checked after the noun.
type nounAdjectiveRule struct{ e *Engine }

func (nounAdjectiveRule) Name() string { return RuleNounAdjective }

func (r nounAdjectiveRule) Validate(tokens []string) RuleResult {
	res := newResult()
	infos := r.e.classifyAll(tokens)
	for i, noun := range infos {
		if !noun.Is(CategoryNoun) {
			continue
		}
		if i > 0 && infos[i-1].Is(CategoryAdjective) {
			adjPlural := surfacePlural(tokens[i-1])
			if noun.Plural != adjPlural {
				res.fail(i-1, "adjective '%s' (%s) does not agree in number with noun '%s' (%s)",
					tokens[i-1], number(adjPlural), tokens[i], number(noun.Plural))
			}
		}
		if i+1 < len(infos) && infos[i+1].Is(CategoryAdjective) {
			adj := tokens[i+1]
			adjPlural := surfacePlural(adj)
			if noun.Plural != adjPlural {
				res.fail(i, "noun '%s' (%s) does not agree in number with adjective '%s' (%s)",
					tokens[i], number(noun.Plural), adj, number(adjPlural))
			}
			masc, fem := surfaceGender(adj)
			if noun.Gender == Masculine && fem {
				res.fail(i, "noun '%s' (%s) does not agree in gender with feminine adjective '%s'", tokens[i], noun.Gender, adj)
			}
			if noun.Gender == Feminine && masc {
				res.fail(i, "noun '%s' (%s) does not agree in gender with masculine adjective '%s'", tokens[i], noun.Gender, adj)
			}
		}
	}
	return res
}

func surfacePlural(word string) bool {
	return strings.HasSuffix(Normalize(word), "s")
}

func surfaceGender(word string) (masculine, feminine bool) {
	w := Normalize(word)
	masculine = strings.HasSuffix(w, "o") || strings.HasSuffix(w, "os")
	feminine = strings.HasSuffix(w, "a") || strings.HasSuffix(w, "as")
	return
}

// ---- subject-verb agreement ----------------------------------------------

// subjectVerbRule checks that the first verb is conjugated for the number
// of the first noun preceding it. Without such a noun, or with a verb form
// missing from the conjugation table, the rule holds vacuously.
type subjectVerbRule struct{ e *Engine }

func (subjectVerbRule) Name() string { return RuleSubjectVerb }

func (r subjectVerbRule) Validate(tokens []string) RuleResult {
	res := newResult()
	infos := r.e.classifyAll(tokens)
	c := findClause(infos)
	if c.subject < 0 || c.verb < 0 {
		return res
	}
	verbToken := tokens[c.verb]
	vf, ok := r.e.verbForms[Normalize(verbToken)]
	if !ok {
		return res
	}
	plural := infos[c.subject].Plural
	expected := r.e.Conjugate(vf.lemma, plural)
	if Normalize(verbToken) != Normalize(expected) {
		res.fail(c.verb, "verb '%s' does not agree in number with the subject (%s); expected '%s'",
			verbToken, number(plural), expected)
	}
	return res
}

// ---- selection restrictions ----------------------------------------------

// semanticRule checks the verb's selection restrictions: the subject must
// carry at least one of the required subject features, and the object,
// when present, one of the required object features.
type semanticRule struct{ e *Engine }

func (semanticRule) Name() string { return RuleSemantic }

func (r semanticRule) Validate(tokens []string) RuleResult {
	res := newResult()
	infos := r.e.classifyAll(tokens)
	c := findClause(infos)
	if c.subject < 0 || c.verb < 0 {
		return res
	}
	verb := infos[c.verb]
	if verb.Restrictions == nil {
		return res
	}
	if req := verb.Restrictions.Subj; len(req) > 0 && !intersects(infos[c.subject].Features, req) {
		res.fail(c.verb, "semantic mismatch (subject): '%s' does not meet the restrictions of verb '%s'; requires %s",
			tokens[c.subject], tokens[c.verb], strings.Join(req, ", "))
	}
	// reported at the object noun itself, which may follow an article
	// or adjective rather than the verb directly
	if req := verb.Restrictions.Obj; c.object >= 0 && len(req) > 0 && !intersects(infos[c.object].Features, req) {
		res.fail(c.object, "semantic mismatch (object): '%s' does not meet the restrictions of verb '%s'; requires %s",
			tokens[c.object], tokens[c.verb], strings.Join(req, ", "))
	}
	return res
}

// clause holds token positions of the first subject, verb and object, -1
// when absent. The subject is the first noun before the first verb and the
// object the first noun after it.
type clause struct {
	subject, verb, object int
}

func findClause(infos []WordInfo) clause {
	c := clause{subject: -1, verb: -1, object: -1}
	for i, info := range infos {
		switch {
		case info.Is(CategoryVerb) && c.verb < 0:
			c.verb = i
		case info.Is(CategoryNoun) && c.verb < 0 && c.subject < 0:
			c.subject = i
		case info.Is(CategoryNoun) && c.verb >= 0:
			c.object = i
			return c
		}
	}
	return c
}

// ---- aggregation ----------------------------------------------------------

// ReportError is a rule violation tagged with the rule's name.
type ReportError struct {
	Rule    string `json:"rule"`
	Message string `json:"message"`
	Index   int    `json:"index"`
}

// ValidationReport aggregates the failures of all rules.
type ValidationReport struct {
	Valid  bool          `json:"valid"`
	Errors []ReportError `json:"errors"`
}

// ValidateTokens runs every rule over tokens and collects all errors.
// Rules never short-circuit each other.
func (e *Engine) ValidateTokens(tokens []string) ValidationReport {
	report := ValidationReport{Valid: true, Errors: []ReportError{}}
	for _, rule := range e.Rules() {
		res := rule.Validate(tokens)
		if res.Valid {
			continue
		}
		report.Valid = false
		for _, re := range res.Errors {
			report.Errors = append(report.Errors, ReportError{
				Rule:    rule.Name(),
				Message: re.Message,
				Index:   re.Index,
			})
		}
	}
	return report
}
