package quizgen

import (
	"fmt"
	"math/rand"
	"sort"
	"time"

	"quizzable/internal/domain"
)

// Generator produces randomized questions and quizzes from a term pool. All
// randomness flows through a single *rand.Rand so callers (and tests) can
// seed it for determinism.
type Generator struct {
	rng *rand.Rand
}

// New returns a Generator seeded from the current time.
func New() *Generator {
	return NewWithRand(rand.New(rand.NewSource(time.Now().UnixNano())))
}

// NewWithRand returns a Generator that draws randomness from rng.
func NewWithRand(rng *rand.Rand) *Generator {
	return &Generator{rng: rng}
}

// Params are the knobs for random-question and quiz generation.
type Params struct {
	Types      []domain.QuestionType
	Length     int
	AnswerWith domain.AnswerWith
	NOptions   int
	NTerms     int
}

// DefaultParams returns the library defaults: 10 questions drawn from
// mcq/frq/tf, answering with definitions, 4 MCQ options, 5 match terms.
func DefaultParams() Params {
	return Params{
		Types:      []domain.QuestionType{domain.TypeMCQ, domain.TypeFRQ, domain.TypeTrueFalse},
		Length:     10,
		AnswerWith: domain.AnswerWithDef,
		NOptions:   4,
		NTerms:     5,
	}
}

type entry struct {
	term string
	def  string
}

// sampleEntries returns n distinct entries from terms in random order. Keys
// are sorted before shuffling so that the draw depends only on the rng
// state, not on map iteration order.
func (g *Generator) sampleEntries(terms domain.Terms, n int) []entry {
	keys := make([]string, 0, len(terms))
	for term := range terms {
		keys = append(keys, term)
	}
	sort.Strings(keys)
	g.rng.Shuffle(len(keys), func(i, j int) {
		keys[i], keys[j] = keys[j], keys[i]
	})

	entries := make([]entry, 0, n)
	for _, term := range keys[:n] {
		entries = append(entries, entry{term: term, def: terms[term]})
	}
	return entries
}

// GetFRQQuestion returns a free-response question built from one random
// entry of terms.
func (g *Generator) GetFRQQuestion(terms domain.Terms) (*domain.FRQQuestion, error) {
	if err := terms.Validate(); err != nil {
		return nil, err
	}
	picked := g.sampleEntries(terms, 1)[0]
	return domain.NewFRQQuestion(picked.term, picked.def), nil
}

// GetMCQQuestion returns a multiple-choice question with nOptions answer
// choices: one correct definition and nOptions-1 distinct distractors drawn
// from other entries without replacement.
func (g *Generator) GetMCQQuestion(terms domain.Terms, nOptions int) (*domain.MCQQuestion, error) {
	if err := terms.Validate(); err != nil {
		return nil, err
	}
	if nOptions < 2 || nOptions > len(terms) {
		return nil, domain.NewInvalidOptionsError(nOptions)
	}

	shuffled := g.sampleEntries(terms, len(terms))
	correct := shuffled[0]

	options := map[string]bool{correct.def: true}
	for _, candidate := range shuffled[1:] {
		if len(options) == nOptions {
			break
		}
		if _, taken := options[candidate.def]; taken {
			continue
		}
		options[candidate.def] = false
	}
	if len(options) < nOptions {
		return nil, domain.NewError(domain.ErrInvalidOptions,
			fmt.Sprintf("term pool has fewer than %d distinct definitions", nOptions), nil)
	}

	return domain.NewMCQQuestion(correct.term, options, correct.def), nil
}

// GetTrueFalseQuestion returns a true/false question. With 50% probability
// the shown definition is the anchor term's true definition; otherwise it is
// a randomly chosen definition from another entry. The answer always holds
// the true definition. When the pool contains duplicate definitions the
// decoy may coincide with the anchor's definition, and the question then
// reads as a true case.
func (g *Generator) GetTrueFalseQuestion(terms domain.Terms) (*domain.TrueFalseQuestion, error) {
	if err := terms.Validate(); err != nil {
		return nil, err
	}
	if len(terms) < 2 {
		return nil, domain.NewInvalidTermsError("true/false questions need at least 2 terms")
	}

	picked := g.sampleEntries(terms, 2)
	anchor, decoy := picked[0], picked[1]

	shown := anchor.def
	if g.rng.Intn(2) == 1 {
		shown = decoy.def
	}
	return domain.NewTrueFalseQuestion(anchor.term, shown, anchor.def), nil
}

// GetMatchQuestion returns a matching question over nTerms entries. The term
// list and the definition list are shuffled independently of each other.
func (g *Generator) GetMatchQuestion(terms domain.Terms, nTerms int) (*domain.MatchQuestion, error) {
	if err := terms.Validate(); err != nil {
		return nil, err
	}
	if nTerms < 2 || nTerms > len(terms) {
		return nil, domain.NewInvalidTermsError(fmt.Sprintf("invalid number of match terms: %d", nTerms))
	}

	picked := g.sampleEntries(terms, nTerms)
	termList := make([]string, 0, nTerms)
	defList := make([]string, 0, nTerms)
	answer := make(map[string]string, nTerms)
	for _, e := range picked {
		termList = append(termList, e.term)
		defList = append(defList, e.def)
		answer[e.term] = e.def
	}
	g.rng.Shuffle(len(defList), func(i, j int) {
		defList[i], defList[j] = defList[j], defList[i]
	})

	return domain.NewMatchQuestion(termList, defList, answer), nil
}

// GetRandomQuestion picks a question type uniformly from params.Types and
// dispatches to the matching generator. Every entry of params.Types must be
// a recognized type.
func (g *Generator) GetRandomQuestion(terms domain.Terms, params Params) (domain.Question, error) {
	if len(params.Types) == 0 {
		return nil, domain.NewError(domain.ErrInvalidQuestion, "no question types provided", nil)
	}
	for _, qt := range params.Types {
		if !qt.Valid() {
			return nil, domain.NewInvalidQuestionError(string(qt))
		}
	}

	switch params.Types[g.rng.Intn(len(params.Types))] {
	case domain.TypeMCQ:
		return g.GetMCQQuestion(terms, params.NOptions)
	case domain.TypeFRQ:
		return g.GetFRQQuestion(terms)
	case domain.TypeTrueFalse:
		return g.GetTrueFalseQuestion(terms)
	default:
		return g.GetMatchQuestion(terms, params.NTerms)
	}
}
