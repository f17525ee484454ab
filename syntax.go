package gdc

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Symbol names a constituent of the syntax tree.
type Symbol string

const (
	SymbolSentence     Symbol = "S"
	SymbolNounPhrase   Symbol = "NP"
	SymbolVerbPhrase   Symbol = "VP"
	SymbolPrepPhrase   Symbol = "PP"
	SymbolDeterminer   Symbol = "Det"
	SymbolAdjective    Symbol = "Adj"
	SymbolNoun         Symbol = "N"
	SymbolVerb         Symbol = "V"
	SymbolPreposition  Symbol = "Prep"
	SymbolConjunction  Symbol = "Conj"
	SymbolPunctuation  Symbol = "Punct"
	SymbolUnclassified Symbol = "Other"
)

// Productions shown on non-terminal nodes.
const (
	ruleSentence     = "S → (NP | VP | PP | Conj | Punct)*"
	ruleNounPhrase   = "NP → (Det) (Adj*) N (Adj*)"
	ruleVerbPhrase   = "VP → V (NP | PP | Adj)*"
	rulePrepPhrase   = "PP → Prep (NP)"
	ruleDeterminer   = "Det → Article"
	ruleAdjective    = "Adj → Adjective"
	ruleNoun         = "N → Noun"
	ruleVerb         = "V → Verb"
	rulePreposition  = "Prep → Preposition"
	ruleConjunction  = "Conj → Conjunction"
	rulePunctuation  = "Punct → Punctuation"
	ruleUnclassified = "unstructured token"
)

// prepositions tells prepositions apart from conjunctions among connectors.
var prepositions = map[string]bool{
	"en": true, "a": true, "de": true, "con": true, "por": true, "para": true,
	"sin": true, "sobre": true, "bajo": true, "ante": true, "desde": true,
	"hasta": true, "hacia": true, "según": true, "durante": true,
	"mediante": true, "entre": true, "contra": true, "tras": true,
}

// SyntaxNode is a node of the parse tree, either *Terminal or *NonTerminal.
type SyntaxNode interface {
	syntaxNode()
}

// Terminal is a leaf holding one input token.
type Terminal struct {
	Token    string   `json:"token"`
	Category Category `json:"category"`
	// Detail summarises inflection: "m, sg" for articles and nouns,
	// "singular"/"plural" for verbs.
	Detail string `json:"detail,omitempty"`
}

// NonTerminal is a constituent with the production that built it.
type NonTerminal struct {
	Symbol   Symbol       `json:"symbol"`
	Rule     string       `json:"rule"`
	Children []SyntaxNode `json:"children"`
}

func (*Terminal) syntaxNode()    {}
func (*NonTerminal) syntaxNode() {}

// MarshalJSON tags the node with its kind.
func (t *Terminal) MarshalJSON() ([]byte, error) {
	type plain Terminal
	return json.Marshal(struct {
		Kind string `json:"kind"`
		*plain
	}{"terminal", (*plain)(t)})
}

// MarshalJSON tags the node with its kind.
func (n *NonTerminal) MarshalJSON() ([]byte, error) {
	type plain NonTerminal
	return json.Marshal(struct {
		Kind string `json:"kind"`
		*plain
	}{"nonterminal", (*plain)(n)})
}

// BuildSyntaxTree parses tokens into a phrase-structure tree. It never
// fails: tokens no production accepts become unclassified leaves, so the
// leaves of the tree always spell out tokens in order.
func (e *Engine) BuildSyntaxTree(tokens []string) SyntaxNode {
	p := &parser{tokens: tokens, infos: e.classifyAll(tokens)}
	return p.sentence()
}

// parser holds the cursor of one parse.
type parser struct {
	tokens []string
	infos  []WordInfo
	pos    int
}

func (p *parser) done() bool {
	return p.pos >= len(p.tokens)
}

func (p *parser) is(c Category) bool {
	return !p.done() && p.infos[p.pos].Is(c)
}

func (p *parser) atPreposition() bool {
	return p.is(CategoryConnector) && prepositions[Normalize(p.tokens[p.pos])]
}

// consume wraps the current token in a pre-terminal node and advances.
func (p *parser) consume(sym Symbol, rule string) *NonTerminal {
	info := p.infos[p.pos]
	leaf := &Terminal{Token: p.tokens[p.pos], Category: info.Category, Detail: info.detail()}
	p.pos++
	return &NonTerminal{Symbol: sym, Rule: rule, Children: []SyntaxNode{leaf}}
}

func (p *parser) match(c Category, sym Symbol, rule string) *NonTerminal {
	if !p.is(c) {
		return nil
	}
	return p.consume(sym, rule)
}

func (p *parser) sentence() *NonTerminal {
	root := &NonTerminal{Symbol: SymbolSentence, Rule: ruleSentence, Children: []SyntaxNode{}}
	for !p.done() {
		root.Children = append(root.Children, p.constituent())
	}
	return root
}

// constituent parses the next top-level constituent, trying productions
// in a fixed priority order.
func (p *parser) constituent() SyntaxNode {
	switch {
	case p.is(CategoryPunctuation):
		return p.consume(SymbolPunctuation, rulePunctuation)
	case p.is(CategoryConnector) && !p.atPreposition():
		return p.consume(SymbolConjunction, ruleConjunction)
	case p.is(CategoryVerb):
		return p.verbPhrase()
	case p.atPreposition():
		return p.prepPhrase()
	}
	if p.is(CategoryArticle) || p.is(CategoryNoun) || p.is(CategoryAdjective) {
		if np := p.nounPhrase(true); np != nil {
			return np
		}
	}
	return p.consume(SymbolUnclassified, ruleUnclassified)
}

// nounPhrase parses (Det) (Adj*) N (Adj*). Without a noun head the cursor
// is restored and nil returned.
func (p *parser) nounPhrase(trailingAdjectives bool) *NonTerminal {
	start := p.pos
	np := &NonTerminal{Symbol: SymbolNounPhrase, Rule: ruleNounPhrase}

	if det := p.match(CategoryArticle, SymbolDeterminer, ruleDeterminer); det != nil {
		np.Children = append(np.Children, det)
	}
	np.Children = append(np.Children, p.adjectives()...)

	head := p.match(CategoryNoun, SymbolNoun, ruleNoun)
	if head == nil {
		p.pos = start
		return nil
	}
	np.Children = append(np.Children, head)

	if trailingAdjectives {
		np.Children = append(np.Children, p.adjectives()...)
	}
	return np
}

func (p *parser) adjectives() []SyntaxNode {
	var out []SyntaxNode
	for p.is(CategoryAdjective) {
		out = append(out, p.consume(SymbolAdjective, ruleAdjective))
	}
	return out
}

// verbPhrase parses V followed by any number of complements. Object noun
// phrases take no trailing adjectives so that a following adjective is
// read as a predicative complement.
func (p *parser) verbPhrase() *NonTerminal {
	vp := &NonTerminal{Symbol: SymbolVerbPhrase, Rule: ruleVerbPhrase}
	vp.Children = append(vp.Children, p.consume(SymbolVerb, ruleVerb))
	for !p.done() {
		if p.atPreposition() {
			vp.Children = append(vp.Children, p.prepPhrase())
			continue
		}
		if np := p.nounPhrase(false); np != nil {
			vp.Children = append(vp.Children, np)
			continue
		}
		if p.is(CategoryAdjective) {
			vp.Children = append(vp.Children, p.consume(SymbolAdjective, ruleAdjective))
			continue
		}
		break
	}
	return vp
}

// prepPhrase parses Prep (NP). The cursor must be at a preposition.
func (p *parser) prepPhrase() *NonTerminal {
	pp := &NonTerminal{Symbol: SymbolPrepPhrase, Rule: rulePrepPhrase}
	pp.Children = append(pp.Children, p.consume(SymbolPreposition, rulePreposition))
	if np := p.nounPhrase(true); np != nil {
		pp.Children = append(pp.Children, np)
	}
	return pp
}

// Leaves returns the tokens of the tree's terminals from left to right.
func Leaves(node SyntaxNode) []string {
	leaves := []string{}
	var walk func(SyntaxNode)
	walk = func(n SyntaxNode) {
		switch n := n.(type) {
		case *Terminal:
			leaves = append(leaves, n.Token)
		case *NonTerminal:
			for _, c := range n.Children {
				walk(c)
			}
		}
	}
	if node != nil {
		walk(node)
	}
	return leaves
}

// Render returns an indented text view of the tree, one node per line.
func Render(node SyntaxNode) string {
	var sb strings.Builder
	renderNode(&sb, node, 0)
	return sb.String()
}

func renderNode(sb *strings.Builder, node SyntaxNode, depth int) {
	indent := strings.Repeat("  ", depth)
	switch n := node.(type) {
	case *Terminal:
		if n.Detail != "" {
			fmt.Fprintf(sb, "%s%q [%s; %s]\n", indent, n.Token, n.Category, n.Detail)
		} else {
			fmt.Fprintf(sb, "%s%q [%s]\n", indent, n.Token, n.Category)
		}
	case *NonTerminal:
		fmt.Fprintf(sb, "%s%s\n", indent, n.Symbol)
		for _, c := range n.Children {
			renderNode(sb, c, depth+1)
		}
	}
}
