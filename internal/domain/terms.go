package domain

// Terms is a term pool: a mapping from terms (prompts) to definitions
// (answers). A pool is never mutated in place; normalization and generation
// work on derived copies.
type Terms map[string]string

// AnswerWith selects the orientation of generated questions: whether the
// term or the definition is used as the prompt.
type AnswerWith string

const (
	// AnswerWithDef keeps the pool as-is: prompt is the term, answer is the
	// definition.
	AnswerWithDef AnswerWith = "def"
	// AnswerWithTerm inverts every entry: prompt is the definition, answer
	// is the term.
	AnswerWithTerm AnswerWith = "term"
	// AnswerWithBoth flips each entry independently with 50% probability.
	AnswerWithBoth AnswerWith = "both"
)

// Valid reports whether a is one of the recognized orientations.
func (a AnswerWith) Valid() bool {
	switch a {
	case AnswerWithDef, AnswerWithTerm, AnswerWithBoth:
		return true
	}
	return false
}

// Validate validates the term pool
func (t Terms) Validate() error {
	if len(t) == 0 {
		return NewInvalidTermsError("term pool is empty")
	}
	for term, def := range t {
		if term == "" {
			return NewInvalidTermsError("term pool contains an empty term")
		}
		if def == "" {
			return NewInvalidTermsError("term pool contains an empty definition for term: " + term)
		}
	}
	return nil
}

// Clone returns a copy of the pool.
func (t Terms) Clone() Terms {
	out := make(Terms, len(t))
	for term, def := range t {
		out[term] = def
	}
	return out
}
