package domain

// Quiz is an ordered sequence of questions. The order is the generation
// order and is meaningful for display. The ID is assigned at generation time
// for logging and host bookkeeping; it is not part of the wire format.
type Quiz struct {
	ID        string
	Questions []Question
}

// NewQuiz creates a new Quiz instance
func NewQuiz(id string, questions []Question) *Quiz {
	return &Quiz{ID: id, Questions: questions}
}

// Len returns the number of questions on the quiz.
func (q *Quiz) Len() int {
	return len(q.Questions)
}

// ToList returns the ordered serialized form of the quiz: each question's
// ToDict output, in generation order.
func (q *Quiz) ToList() []map[string]any {
	out := make([]map[string]any, 0, len(q.Questions))
	for _, question := range q.Questions {
		out = append(out, question.ToDict())
	}
	return out
}

// QuizFromList reconstructs a Quiz from its serialized list form. The
// reconstructed quiz has no ID; identity is a generation-time concern.
func QuizFromList(data []map[string]any) (*Quiz, error) {
	questions := make([]Question, 0, len(data))
	for _, questionData := range data {
		question, err := QuestionFromDict(questionData)
		if err != nil {
			return nil, err
		}
		questions = append(questions, question)
	}
	return NewQuiz("", questions), nil
}
