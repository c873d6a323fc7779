package quizgen

import (
	"testing"

	"quizzable/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetFRQQuestion(t *testing.T) {
	g := newSeeded(42)
	terms := spanishTerms()

	question, err := g.GetFRQQuestion(terms)
	require.NoError(t, err)

	def, ok := terms[question.Term]
	require.True(t, ok, "term %q not drawn from the pool", question.Term)
	assert.Equal(t, def, question.Answer)
}

func TestGetFRQQuestion_EmptyPool(t *testing.T) {
	g := newSeeded(42)

	question, err := g.GetFRQQuestion(domain.Terms{})
	require.Error(t, err)
	assert.Nil(t, question)
	assert.True(t, domain.IsCode(err, domain.ErrInvalidTerms))
}

func TestGetMCQQuestion(t *testing.T) {
	terms := spanishTerms()

	for seed := int64(0); seed < 20; seed++ {
		g := newSeeded(seed)
		question, err := g.GetMCQQuestion(terms, 4)
		require.NoError(t, err)
		require.NoError(t, question.Validate())

		assert.Len(t, question.Options, 4)

		// With a 4-entry pool and 4 options, every definition appears.
		for _, def := range terms {
			assert.Contains(t, question.Options, def)
		}

		// Exactly one option is marked correct and it matches the term's
		// true definition.
		correct := 0
		for option, isCorrect := range question.Options {
			if isCorrect {
				correct++
				assert.Equal(t, question.Answer, option)
			}
		}
		assert.Equal(t, 1, correct)
		assert.Equal(t, terms[question.Term], question.Answer)
	}
}

func TestGetMCQQuestion_Bounds(t *testing.T) {
	g := newSeeded(1)
	terms := spanishTerms()

	tests := []struct {
		name     string
		nOptions int
	}{
		{"one option", 1},
		{"zero options", 0},
		{"negative options", -3},
		{"more options than terms", len(terms) + 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			question, err := g.GetMCQQuestion(terms, tt.nOptions)
			require.Error(t, err)
			assert.Nil(t, question)
			assert.True(t, domain.IsCode(err, domain.ErrInvalidOptions))
		})
	}
}

func TestGetMCQQuestion_DuplicateDefinitions(t *testing.T) {
	g := newSeeded(1)
	// Only two distinct definitions exist, so three options cannot be built.
	terms := domain.Terms{"cat": "gato", "kitty": "gato", "dog": "perro"}

	question, err := g.GetMCQQuestion(terms, 3)
	require.Error(t, err)
	assert.Nil(t, question)
	assert.True(t, domain.IsCode(err, domain.ErrInvalidOptions))
}

func TestGetTrueFalseQuestion(t *testing.T) {
	terms := spanishTerms()
	sawTrueCase := false
	sawFalseCase := false

	for seed := int64(0); seed < 100; seed++ {
		g := newSeeded(seed)
		question, err := g.GetTrueFalseQuestion(terms)
		require.NoError(t, err)

		trueDef, ok := terms[question.Term]
		require.True(t, ok, "anchor term %q not drawn from the pool", question.Term)

		// The answer always holds the true definition.
		assert.Equal(t, trueDef, question.Answer)

		if question.Definition == question.Answer {
			sawTrueCase = true
		} else {
			sawFalseCase = true
			// The substituted definition belongs to another entry.
			found := false
			for term, def := range terms {
				if term != question.Term && def == question.Definition {
					found = true
					break
				}
			}
			assert.True(t, found, "shown definition %q not drawn from the pool", question.Definition)
		}
	}

	assert.True(t, sawTrueCase, "no true case generated")
	assert.True(t, sawFalseCase, "no false case generated")
}

func TestGetTrueFalseQuestion_DuplicateDefinitions(t *testing.T) {
	// Both entries share a definition, so even a substituted decoy equals
	// the true definition and the question reads as a true case.
	terms := domain.Terms{"cat": "gato", "kitty": "gato"}

	for seed := int64(0); seed < 20; seed++ {
		g := newSeeded(seed)
		question, err := g.GetTrueFalseQuestion(terms)
		require.NoError(t, err)

		assert.Equal(t, terms[question.Term], question.Answer)
		assert.Equal(t, question.Answer, question.Definition)
	}
}

func TestGetTrueFalseQuestion_NeedsTwoTerms(t *testing.T) {
	g := newSeeded(1)

	question, err := g.GetTrueFalseQuestion(domain.Terms{"cat": "gato"})
	require.Error(t, err)
	assert.Nil(t, question)
	assert.True(t, domain.IsCode(err, domain.ErrInvalidTerms))
}

func TestGetMatchQuestion(t *testing.T) {
	terms := spanishTerms()

	for seed := int64(0); seed < 20; seed++ {
		g := newSeeded(seed)
		question, err := g.GetMatchQuestion(terms, 3)
		require.NoError(t, err)
		require.NoError(t, question.Validate())

		assert.Len(t, question.Terms, 3)
		assert.Len(t, question.Definitions, 3)
		assert.Len(t, question.Answer, 3)

		for _, term := range question.Terms {
			def, ok := question.Answer[term]
			require.True(t, ok, "term %q missing from answer", term)
			assert.Equal(t, terms[term], def)
			assert.Contains(t, question.Definitions, def)
		}
	}
}

func TestGetMatchQuestion_Bounds(t *testing.T) {
	g := newSeeded(1)
	terms := spanishTerms()

	for _, nTerms := range []int{1, 0, -1, len(terms) + 1} {
		question, err := g.GetMatchQuestion(terms, nTerms)
		require.Error(t, err, "nTerms=%d", nTerms)
		assert.Nil(t, question)
		assert.True(t, domain.IsCode(err, domain.ErrInvalidTerms))
	}
}

func TestGetRandomQuestion(t *testing.T) {
	terms := spanishTerms()

	t.Run("single type always dispatches to it", func(t *testing.T) {
		g := newSeeded(7)
		params := DefaultParams()
		params.Types = []domain.QuestionType{domain.TypeFRQ}

		for i := 0; i < 20; i++ {
			question, err := g.GetRandomQuestion(terms, params)
			require.NoError(t, err)
			assert.Equal(t, domain.TypeFRQ, question.Type())
		}
	})

	t.Run("match type is reachable", func(t *testing.T) {
		g := newSeeded(7)
		params := DefaultParams()
		params.Types = []domain.QuestionType{domain.TypeMatch}
		params.NTerms = 3

		question, err := g.GetRandomQuestion(terms, params)
		require.NoError(t, err)
		assert.Equal(t, domain.TypeMatch, question.Type())
	})

	t.Run("any unrecognized type fails", func(t *testing.T) {
		g := newSeeded(7)
		params := DefaultParams()
		params.Types = []domain.QuestionType{domain.TypeFRQ, domain.QuestionType("essay")}

		question, err := g.GetRandomQuestion(terms, params)
		require.Error(t, err)
		assert.Nil(t, question)
		assert.True(t, domain.IsCode(err, domain.ErrInvalidQuestion))
	})

	t.Run("empty type list fails", func(t *testing.T) {
		g := newSeeded(7)
		params := DefaultParams()
		params.Types = nil

		question, err := g.GetRandomQuestion(terms, params)
		require.Error(t, err)
		assert.Nil(t, question)
		assert.True(t, domain.IsCode(err, domain.ErrInvalidQuestion))
	})
}

func TestGetRandomQuestion_CoversAllTypes(t *testing.T) {
	g := newSeeded(11)
	terms := spanishTerms()
	params := DefaultParams()
	params.Types = []domain.QuestionType{domain.TypeMCQ, domain.TypeFRQ, domain.TypeTrueFalse, domain.TypeMatch}
	params.NTerms = 3

	seen := map[domain.QuestionType]bool{}
	for i := 0; i < 200; i++ {
		question, err := g.GetRandomQuestion(terms, params)
		require.NoError(t, err)
		seen[question.Type()] = true
	}

	for _, qt := range params.Types {
		assert.True(t, seen[qt], "type %s never selected", qt)
	}
}
