// Package grading recomputes quiz scores on the server from the authoritative
// answer key. Client-reported scores or pass flags are never consulted.
package grading

import "math"

// Grade compares submitted answer indices against the correct indices and
// returns the number of correct answers plus the percentage score.
//
// Grading is permissive on malformed submissions: a missing slot (answers
// shorter than the key) or an index that does not match simply counts as
// incorrect. It never rejects an answer set.
//
// The score is rounded half-up to the nearest integer.
func Grade(answers []int, correct []int) (correctCount int, score int) {
	if len(correct) == 0 {
		return 0, 0
	}

	for i, want := range correct {
		if i >= len(answers) {
			break
		}
		if answers[i] == want {
			correctCount++
		}
	}

	score = roundHalfUp(100 * float64(correctCount) / float64(len(correct)))
	return correctCount, score
}

// Passed reports whether the score meets the passing threshold. A score
// exactly equal to the threshold passes.
func Passed(score, passingScore int) bool {
	return score >= passingScore
}

func roundHalfUp(x float64) int {
	return int(math.Floor(x + 0.5))
}
