package quizgen

import (
	"quizzable/internal/domain"
	"quizzable/internal/logger"
	"quizzable/internal/util"

	"go.uber.org/zap"
)

// GetQuiz assembles a quiz of params.Length questions. Each slot
// re-normalizes the pool with params.AnswerWith (so "both" mode re-rolls
// orientations per question) and draws a random question from params.Types.
// The call is atomic: any normalizer or factory error fails the whole quiz.
func (g *Generator) GetQuiz(terms domain.Terms, params Params) (*domain.Quiz, error) {
	if params.Length < 1 {
		return nil, domain.NewInvalidLengthError(params.Length)
	}

	questions := make([]domain.Question, 0, params.Length)
	for i := 0; i < params.Length; i++ {
		normalized, err := g.GetTerms(terms, params.AnswerWith)
		if err != nil {
			return nil, err
		}
		question, err := g.GetRandomQuestion(normalized, params)
		if err != nil {
			return nil, err
		}
		questions = append(questions, question)
	}

	quiz := domain.NewQuiz(util.NewULID(), questions)
	logger.Get().Debug("Generated quiz",
		zap.String("quizID", quiz.ID),
		zap.Int("length", quiz.Len()),
		zap.String("answerWith", string(params.AnswerWith)),
	)
	return quiz, nil
}
