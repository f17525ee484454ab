package gdc

// WordInfo classifies a single token. Words are matched case-insensitively,
// punctuation verbatim. The lookup order is significant: the first step
// that matches decides the category, and unmatched tokens are classified
// as CategoryOther.
func (e *Engine) WordInfo(token string) WordInfo {
	key := Normalize(token)
	info := WordInfo{Token: token}

	if i, ok := e.articles[key]; ok {
		a := e.lex.Articles[i]
		info.Category = CategoryArticle
		info.Lemma = a.Word
		info.Gender = a.Gender
		info.Plural = a.Plural
		return info
	}

	if i, ok := e.nounSing[key]; ok {
		e.fillNoun(&info, i, false)
		return info
	}
	if i, ok := e.nounPlur[key]; ok {
		e.fillNoun(&info, i, true)
		return info
	}

	if i, ok := e.verbLemmas[key]; ok {
		v := e.lex.Verbs[i]
		info.Category = CategoryVerb
		info.Lemma = v.Word
		info.VerbType = v.Type
		info.Restrictions = &v.Restrictions
		return info
	}
	if vf, ok := e.verbForms[key]; ok {
		info.Category = CategoryVerb
		info.Lemma = vf.lemma
		info.Plural = vf.plural
		info.VerbType = Intransitive
		info.Restrictions = &Restrictions{}
		if i, ok := e.verbLemmas[Normalize(vf.lemma)]; ok {
			v := e.lex.Verbs[i]
			info.VerbType = v.Type
			info.Restrictions = &v.Restrictions
		}
		return info
	}

	if i, ok := e.adjForms[key]; ok {
		adj := e.lex.Adjectives[i]
		info.Category = CategoryAdjective
		info.Lemma = adj.Base
		info.AdjectiveType = adj.Type
		return info
	}

	if c, ok := e.connectors[key]; ok {
		info.Category = CategoryConnector
		info.Lemma = c
		return info
	}

	if e.punctuation[token] {
		info.Category = CategoryPunctuation
		return info
	}

	info.Category = CategoryOther
	return info
}

func (e *Engine) fillNoun(info *WordInfo, i int, plural bool) {
	n := e.lex.Nouns[i]
	info.Category = CategoryNoun
	info.Lemma = n.Word
	info.Gender = n.Gender
	info.Plural = plural
	info.Features = n.Features
}

// classifyAll classifies every token of a sentence.
func (e *Engine) classifyAll(tokens []string) []WordInfo {
	infos := make([]WordInfo, len(tokens))
	for i, t := range tokens {
		infos[i] = e.WordInfo(t)
	}
	return infos
}
