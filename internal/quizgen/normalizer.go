package quizgen

import (
	"fmt"
	"sort"

	"quizzable/internal/domain"
)

// GetTerms returns a derived term pool honoring the requested orientation.
//
// For AnswerWithDef the pool is returned unchanged (copied). For
// AnswerWithTerm every entry is inverted, which fails when two terms share a
// definition. For AnswerWithBoth each entry is flipped independently with
// 50% probability; when a flip would collide with a key already present the
// entry keeps its original orientation so the pool size is preserved.
func (g *Generator) GetTerms(terms domain.Terms, answerWith domain.AnswerWith) (domain.Terms, error) {
	if err := terms.Validate(); err != nil {
		return nil, err
	}
	if !answerWith.Valid() {
		return nil, domain.NewInvalidTermsError(fmt.Sprintf("unrecognized answer_with mode: %q", answerWith))
	}

	switch answerWith {
	case domain.AnswerWithDef:
		return terms.Clone(), nil

	case domain.AnswerWithTerm:
		inverted := make(domain.Terms, len(terms))
		for term, def := range terms {
			if _, dup := inverted[def]; dup {
				return nil, domain.NewInvalidTermsError(fmt.Sprintf("duplicate definition prevents inversion: %q", def))
			}
			inverted[def] = term
		}
		return inverted, nil

	default: // AnswerWithBoth
		return g.mixTerms(terms)
	}
}

// mixTerms flips each entry independently with 50% probability. Entries are
// visited in sorted key order so the outcome depends only on the rng state.
func (g *Generator) mixTerms(terms domain.Terms) (domain.Terms, error) {
	keys := make([]string, 0, len(terms))
	for term := range terms {
		keys = append(keys, term)
	}
	sort.Strings(keys)

	mixed := make(domain.Terms, len(terms))
	for _, term := range keys {
		def := terms[term]
		flip := g.rng.Intn(2) == 1

		key, value := term, def
		if flip {
			key, value = def, term
		}
		if _, taken := mixed[key]; taken {
			// Collision with an earlier entry: fall back to the other
			// orientation before giving up.
			key, value = value, key
			if _, taken := mixed[key]; taken {
				return nil, domain.NewInvalidTermsError(fmt.Sprintf("entry %q collides in both orientations", term))
			}
		}
		mixed[key] = value
	}
	return mixed, nil
}
