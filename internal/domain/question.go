package domain

import (
	"fmt"
	"maps"
	"slices"
)

// QuestionType discriminates the question variants. It is carried in the
// serialized form under the "_type" key.
type QuestionType string

const (
	TypeMCQ       QuestionType = "mcq"
	TypeFRQ       QuestionType = "frq"
	TypeTrueFalse QuestionType = "tf"
	TypeMatch     QuestionType = "match"
)

// Valid reports whether qt is one of the recognized question types.
func (qt QuestionType) Valid() bool {
	switch qt {
	case TypeMCQ, TypeFRQ, TypeTrueFalse, TypeMatch:
		return true
	}
	return false
}

// Question is the contract shared by all question variants. A question is
// immutable after construction: it is either built by a generator from a
// term pool, or reconstructed from a previously serialized dictionary.
type Question interface {
	// Type returns the variant discriminator.
	Type() QuestionType
	// ToDict returns the canonical serialized form of the question. The
	// returned map always includes "_type" and "term".
	ToDict() map[string]any
	// CheckAnswer reports whether candidate equals the stored answer. The
	// correct answer is returned regardless of the outcome so the caller
	// can display it.
	CheckAnswer(candidate any) (bool, any)
}

// MCQQuestion is a multiple-choice question. Options maps each candidate
// answer to whether it is the correct one; exactly one entry is true and
// its key equals Answer.
type MCQQuestion struct {
	Term    string
	Options map[string]bool
	Answer  string
}

// NewMCQQuestion creates a new MCQQuestion instance
func NewMCQQuestion(term string, options map[string]bool, answer string) *MCQQuestion {
	return &MCQQuestion{Term: term, Options: options, Answer: answer}
}

func (q *MCQQuestion) Type() QuestionType { return TypeMCQ }

func (q *MCQQuestion) ToDict() map[string]any {
	return map[string]any{
		"_type":   string(TypeMCQ),
		"term":    q.Term,
		"options": maps.Clone(q.Options),
		"answer":  q.Answer,
	}
}

func (q *MCQQuestion) CheckAnswer(candidate any) (bool, any) {
	s, ok := candidate.(string)
	return ok && s == q.Answer, q.Answer
}

// Validate validates the question
func (q *MCQQuestion) Validate() error {
	if q.Term == "" {
		return NewInvalidTermsError("mcq question has an empty term")
	}
	correct := 0
	for option, isCorrect := range q.Options {
		if isCorrect {
			correct++
			if option != q.Answer {
				return NewError(ErrInvalidQuestion, fmt.Sprintf("mcq option %q marked correct but answer is %q", option, q.Answer), nil)
			}
		}
	}
	if correct != 1 {
		return NewError(ErrInvalidQuestion, fmt.Sprintf("mcq question must have exactly one correct option, got %d", correct), nil)
	}
	return nil
}

// FRQQuestion is a free-response question: the user is prompted with Term
// and must produce Answer verbatim.
type FRQQuestion struct {
	Term   string
	Answer string
}

// NewFRQQuestion creates a new FRQQuestion instance
func NewFRQQuestion(term, answer string) *FRQQuestion {
	return &FRQQuestion{Term: term, Answer: answer}
}

func (q *FRQQuestion) Type() QuestionType { return TypeFRQ }

func (q *FRQQuestion) ToDict() map[string]any {
	return map[string]any{
		"_type":  string(TypeFRQ),
		"term":   q.Term,
		"answer": q.Answer,
	}
}

func (q *FRQQuestion) CheckAnswer(candidate any) (bool, any) {
	s, ok := candidate.(string)
	return ok && s == q.Answer, q.Answer
}

// TrueFalseQuestion shows Term alongside Definition, which may or may not be
// the term's true definition. Answer always holds the true definition; the
// frontend compares Definition against Answer to render true/false semantics.
type TrueFalseQuestion struct {
	Term       string
	Definition string
	Answer     string
}

// NewTrueFalseQuestion creates a new TrueFalseQuestion instance
func NewTrueFalseQuestion(term, definition, answer string) *TrueFalseQuestion {
	return &TrueFalseQuestion{Term: term, Definition: definition, Answer: answer}
}

func (q *TrueFalseQuestion) Type() QuestionType { return TypeTrueFalse }

func (q *TrueFalseQuestion) ToDict() map[string]any {
	return map[string]any{
		"_type":  string(TypeTrueFalse),
		"term":   q.Term,
		"def":    q.Definition,
		"answer": q.Answer,
	}
}

func (q *TrueFalseQuestion) CheckAnswer(candidate any) (bool, any) {
	s, ok := candidate.(string)
	return ok && s == q.Answer, q.Answer
}

// MatchQuestion asks the user to pair each entry of Terms with one of
// Definitions. The two lists are shuffled independently; Answer holds the
// correct pairing.
type MatchQuestion struct {
	Terms       []string
	Definitions []string
	Answer      map[string]string
}

// NewMatchQuestion creates a new MatchQuestion instance
func NewMatchQuestion(terms, definitions []string, answer map[string]string) *MatchQuestion {
	return &MatchQuestion{Terms: terms, Definitions: definitions, Answer: answer}
}

func (q *MatchQuestion) Type() QuestionType { return TypeMatch }

func (q *MatchQuestion) ToDict() map[string]any {
	return map[string]any{
		"_type":  string(TypeMatch),
		"term":   slices.Clone(q.Terms),
		"def":    slices.Clone(q.Definitions),
		"answer": maps.Clone(q.Answer),
	}
}

// CheckAnswer compares the full candidate mapping against the stored answer.
func (q *MatchQuestion) CheckAnswer(candidate any) (bool, any) {
	m, ok := candidate.(map[string]string)
	return ok && maps.Equal(m, q.Answer), maps.Clone(q.Answer)
}

// Validate validates the question
func (q *MatchQuestion) Validate() error {
	if len(q.Terms) != len(q.Definitions) || len(q.Terms) != len(q.Answer) {
		return NewError(ErrInvalidQuestion, "match question terms, definitions and answer must have equal length", nil)
	}
	for _, term := range q.Terms {
		if _, ok := q.Answer[term]; !ok {
			return NewError(ErrInvalidQuestion, fmt.Sprintf("match question term %q has no answer entry", term), nil)
		}
	}
	return nil
}

// QuestionFromDict reconstructs a Question from its serialized form. The
// "_type" key selects the variant; missing or malformed required fields for
// that variant yield a DATA_INCOMPLETE error, and an absent or unrecognized
// "_type" yields an INVALID_QUESTION error.
func QuestionFromDict(data map[string]any) (Question, error) {
	rawType, ok := data["_type"]
	if !ok {
		return nil, NewInvalidQuestionError("")
	}
	typeName, ok := rawType.(string)
	if !ok {
		return nil, NewInvalidQuestionError(fmt.Sprintf("%v", rawType))
	}

	switch QuestionType(typeName) {
	case TypeMCQ:
		term, err := stringField(data, "term")
		if err != nil {
			return nil, err
		}
		options, err := boolMapField(data, "options")
		if err != nil {
			return nil, err
		}
		answer, err := stringField(data, "answer")
		if err != nil {
			return nil, err
		}
		return NewMCQQuestion(term, options, answer), nil

	case TypeFRQ:
		term, err := stringField(data, "term")
		if err != nil {
			return nil, err
		}
		answer, err := stringField(data, "answer")
		if err != nil {
			return nil, err
		}
		return NewFRQQuestion(term, answer), nil

	case TypeTrueFalse:
		term, err := stringField(data, "term")
		if err != nil {
			return nil, err
		}
		definition, err := stringField(data, "def")
		if err != nil {
			return nil, err
		}
		answer, err := stringField(data, "answer")
		if err != nil {
			return nil, err
		}
		return NewTrueFalseQuestion(term, definition, answer), nil

	case TypeMatch:
		terms, err := stringListField(data, "term")
		if err != nil {
			return nil, err
		}
		definitions, err := stringListField(data, "def")
		if err != nil {
			return nil, err
		}
		answer, err := stringMapField(data, "answer")
		if err != nil {
			return nil, err
		}
		return NewMatchQuestion(terms, definitions, answer), nil

	default:
		return nil, NewInvalidQuestionError(typeName)
	}
}

// Field extraction below accepts both the natively typed values produced by
// ToDict and the generic forms produced by encoding/json decoding.

func stringField(data map[string]any, key string) (string, error) {
	raw, ok := data[key]
	if !ok {
		return "", NewDataIncompleteError(key)
	}
	s, ok := raw.(string)
	if !ok {
		return "", NewDataIncompleteError(key)
	}
	return s, nil
}

func boolMapField(data map[string]any, key string) (map[string]bool, error) {
	raw, ok := data[key]
	if !ok {
		return nil, NewDataIncompleteError(key)
	}
	switch v := raw.(type) {
	case map[string]bool:
		return maps.Clone(v), nil
	case map[string]any:
		out := make(map[string]bool, len(v))
		for option, flag := range v {
			b, ok := flag.(bool)
			if !ok {
				return nil, NewDataIncompleteError(key)
			}
			out[option] = b
		}
		return out, nil
	}
	return nil, NewDataIncompleteError(key)
}

func stringListField(data map[string]any, key string) ([]string, error) {
	raw, ok := data[key]
	if !ok {
		return nil, NewDataIncompleteError(key)
	}
	switch v := raw.(type) {
	case []string:
		return slices.Clone(v), nil
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			s, ok := item.(string)
			if !ok {
				return nil, NewDataIncompleteError(key)
			}
			out = append(out, s)
		}
		return out, nil
	}
	return nil, NewDataIncompleteError(key)
}

func stringMapField(data map[string]any, key string) (map[string]string, error) {
	raw, ok := data[key]
	if !ok {
		return nil, NewDataIncompleteError(key)
	}
	switch v := raw.(type) {
	case map[string]string:
		return maps.Clone(v), nil
	case map[string]any:
		out := make(map[string]string, len(v))
		for term, def := range v {
			s, ok := def.(string)
			if !ok {
				return nil, NewDataIncompleteError(key)
			}
			out[term] = s
		}
		return out, nil
	}
	return nil, NewDataIncompleteError(key)
}
