package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuiz_ToList(t *testing.T) {
	questions := []Question{
		NewFRQQuestion("Anything that brings a people together.", "Centripetal force"),
		NewTrueFalseQuestion("la iglesia", "shop", "church"),
		NewFRQQuestion("park", "el parque"),
	}
	quiz := NewQuiz("01JXAMPLE", questions)

	assert.Equal(t, 3, quiz.Len())

	data := quiz.ToList()
	require.Len(t, data, len(questions))
	for i, question := range questions {
		assert.Equal(t, question.ToDict(), data[i], "question %d out of order", i)
	}
}

func TestQuizFromList_RoundTrip(t *testing.T) {
	quiz := NewQuiz("01JXAMPLE", []Question{
		NewMCQQuestion("la playa", map[string]bool{"beach": true, "park": false}, "beach"),
		NewFRQQuestion("park", "el parque"),
		NewMatchQuestion(
			[]string{"cat", "dog"},
			[]string{"perro", "gato"},
			map[string]string{"cat": "gato", "dog": "perro"},
		),
	})

	reconstructed, err := QuizFromList(quiz.ToList())
	require.NoError(t, err)
	assert.Empty(t, reconstructed.ID)
	assert.Equal(t, quiz.Questions, reconstructed.Questions)
}

func TestQuizFromList_PropagatesErrors(t *testing.T) {
	data := []map[string]any{
		{"_type": "frq", "term": "park", "answer": "el parque"},
		{"_type": "frq", "term": "incomplete"},
	}

	quiz, err := QuizFromList(data)
	require.Error(t, err)
	assert.Nil(t, quiz)
	assert.True(t, IsCode(err, ErrDataIncomplete))
}
