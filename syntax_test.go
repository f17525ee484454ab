package gdc

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// shape renders a tree as nested symbols, e.g. "S(NP(Det N) VP(V))".
func shape(node SyntaxNode) string {
	switch n := node.(type) {
	case *Terminal:
		return ""
	case *NonTerminal:
		if len(n.Children) == 1 {
			if _, ok := n.Children[0].(*Terminal); ok {
				return string(n.Symbol)
			}
		}
		s := string(n.Symbol) + "("
		for i, c := range n.Children {
			if i > 0 {
				s += " "
			}
			s += shape(c)
		}
		return s + ")"
	}
	return "?"
}

func TestBuildSyntaxTree(t *testing.T) {
	e := newTestEngine(t)
	tests := []struct {
		sentence string
		want     string
	}{
		{"", "S()"},
		{"El perro come la manzana roja.", "S(NP(Det N) VP(V NP(Det N) Adj) Punct)"},
		{"los gatos rojos duermen", "S(NP(Det N Adj) VP(V))"},
		{"el gran árbol crece en la ciudad", "S(NP(Det Adj N) VP(V PP(Prep NP(Det N))))"},
		{"el perro y el gato", "S(NP(Det N) Conj NP(Det N))"},
		{"en la casa", "S(PP(Prep NP(Det N)))"},
		{"hacia", "S(PP(Prep))"},
		{"el rojo", "S(Other Other)"},
		{"la casa es grande", "S(NP(Det N) VP(V Adj))"},
		{"la casa grande es", "S(NP(Det N Adj) VP(V))"},
		{"xyz gato", "S(Other NP(N))"},
		{"¿ duerme ?", "S(Punct VP(V) Punct)"},
	}
	for _, tt := range tests {
		t.Run(tt.sentence, func(t *testing.T) {
			tokens := Tokenize(tt.sentence)
			tree := e.BuildSyntaxTree(tokens)
			assert.Equal(t, tt.want, shape(tree))
			assert.Equal(t, tokens, Leaves(tree))
		})
	}
}

func TestSyntaxTreeLeavesOfGeneratedFragments(t *testing.T) {
	e := newTestEngine(t)
	for i := 0; i < 500; i++ {
		tokens := Tokenize(e.GenerateFragment() + ".")
		assert.Equal(t, tokens, Leaves(e.BuildSyntaxTree(tokens)))
	}
}

func TestSyntaxTreeTerminals(t *testing.T) {
	e := newTestEngine(t)
	root, ok := e.BuildSyntaxTree([]string{"Los", "gatos", "comen"}).(*NonTerminal)
	require.True(t, ok)
	require.Len(t, root.Children, 2)

	np := root.Children[0].(*NonTerminal)
	det := np.Children[0].(*NonTerminal).Children[0].(*Terminal)
	assert.Equal(t, &Terminal{Token: "Los", Category: CategoryArticle, Detail: "m, pl"}, det)

	vp := root.Children[1].(*NonTerminal)
	assert.Equal(t, ruleVerbPhrase, vp.Rule)
	verb := vp.Children[0].(*NonTerminal).Children[0].(*Terminal)
	assert.Equal(t, "plural", verb.Detail)
}

func TestSyntaxTreeJSON(t *testing.T) {
	e := newTestEngine(t)
	b, err := json.Marshal(e.BuildSyntaxTree([]string{"el", "gato"}))
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, json.Unmarshal(b, &doc))
	assert.Equal(t, "nonterminal", doc["kind"])
	assert.Equal(t, "S", doc["symbol"])
	np := doc["children"].([]any)[0].(map[string]any)
	assert.Equal(t, "NP", np["symbol"])
	det := np["children"].([]any)[0].(map[string]any)
	leaf := det["children"].([]any)[0].(map[string]any)
	assert.Equal(t, "terminal", leaf["kind"])
	assert.Equal(t, "Article", leaf["category"])
	assert.Equal(t, "m, sg", leaf["detail"])
}

func TestRender(t *testing.T) {
	e := newTestEngine(t)
	out := Render(e.BuildSyntaxTree([]string{"el", "gato", "duerme"}))
	want := "S\n" +
		"  NP\n" +
		"    Det\n" +
		"      \"el\" [Article; m, sg]\n" +
		"    N\n" +
		"      \"gato\" [Noun; m, sg]\n" +
		"  VP\n" +
		"    V\n" +
		"      \"duerme\" [Verb; singular]\n"
	assert.Equal(t, want, out)
}
