package grading

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGrade_AllCorrect(t *testing.T) {
	correctCount, score := Grade([]int{0, 1, 2, 3, 4}, []int{0, 1, 2, 3, 4})

	assert.Equal(t, 5, correctCount)
	assert.Equal(t, 100, score)
}

func TestGrade_PartiallyCorrect(t *testing.T) {
	// Last answer is out of range for any realistic option list; it is
	// simply wrong, not an error.
	correctCount, score := Grade([]int{0, 1, 2, 3, 9}, []int{0, 1, 2, 3, 4})

	assert.Equal(t, 4, correctCount)
	assert.Equal(t, 80, score)
}

func TestGrade_OneCorrect(t *testing.T) {
	correctCount, score := Grade([]int{1, 1, 1, 1, 1}, []int{0, 1, 2, 3, 4})

	assert.Equal(t, 1, correctCount)
	assert.Equal(t, 20, score)
}

func TestGrade_ShortAnswerSet(t *testing.T) {
	// Missing slots count as incorrect rather than failing validation.
	correctCount, score := Grade([]int{0, 1}, []int{0, 1, 2, 3})

	assert.Equal(t, 2, correctCount)
	assert.Equal(t, 50, score)
}

func TestGrade_EmptyAnswers(t *testing.T) {
	correctCount, score := Grade(nil, []int{0, 1, 2})

	assert.Equal(t, 0, correctCount)
	assert.Equal(t, 0, score)
}

func TestGrade_NoSelectionSentinel(t *testing.T) {
	correctCount, score := Grade([]int{-1, -1, 2}, []int{0, 1, 2})

	assert.Equal(t, 1, correctCount)
	assert.Equal(t, 33, score)
}

func TestGrade_ExtraAnswersIgnored(t *testing.T) {
	correctCount, score := Grade([]int{0, 1, 0, 0, 0}, []int{0, 1})

	assert.Equal(t, 2, correctCount)
	assert.Equal(t, 100, score)
}

func TestGrade_EmptyKey(t *testing.T) {
	correctCount, score := Grade([]int{0}, nil)

	assert.Equal(t, 0, correctCount)
	assert.Equal(t, 0, score)
}

func TestGrade_RoundsHalfUp(t *testing.T) {
	testCases := []struct {
		name    string
		answers []int
		correct []int
		score   int
	}{
		// 1/3 = 33.33 -> 33
		{name: "rounds down below half", answers: []int{0, 9, 9}, correct: []int{0, 1, 2}, score: 33},
		// 2/3 = 66.67 -> 67
		{name: "rounds up above half", answers: []int{0, 1, 9}, correct: []int{0, 1, 2}, score: 67},
		// 1/8 = 12.5 -> 13 (half rounds up)
		{name: "half rounds up", answers: []int{0, 9, 9, 9, 9, 9, 9, 9}, correct: []int{0, 1, 2, 3, 4, 5, 6, 7}, score: 13},
		// 5/8 = 62.5 -> 63
		{name: "another half rounds up", answers: []int{0, 1, 2, 3, 4, 9, 9, 9}, correct: []int{0, 1, 2, 3, 4, 5, 6, 7}, score: 63},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, score := Grade(tc.answers, tc.correct)
			assert.Equal(t, tc.score, score)
		})
	}
}

func TestGrade_CorrectCountNeverExceedsTotal(t *testing.T) {
	correct := []int{0, 0, 0}
	correctCount, score := Grade([]int{0, 0, 0, 0, 0, 0}, correct)

	assert.LessOrEqual(t, correctCount, len(correct))
	assert.Equal(t, 100, score)
}

func TestPassed_Boundary(t *testing.T) {
	assert.True(t, Passed(70, 70))
	assert.True(t, Passed(71, 70))
	assert.False(t, Passed(69, 70))
	assert.True(t, Passed(0, 0))
	assert.False(t, Passed(99, 100))
	assert.True(t, Passed(100, 100))
}
