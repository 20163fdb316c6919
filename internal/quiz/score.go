package quiz

import "math"

// Score sums the marks of correctly answered questions. answers must hold
// one entry per question.
func Score(questions []Question, answers []*int) int {
	score := 0
	for i, q := range questions {
		if i >= len(answers) {
			break
		}
		score += q.Awarded(answers[i])
	}
	return score
}

func TotalMarks(questions []Question) int {
	total := 0
	for _, q := range questions {
		total += q.Marks
	}
	return total
}

// Percentage rounds score/total to a whole percent. A zero total yields 0.
func Percentage(score, total int) int {
	if total <= 0 {
		return 0
	}
	return int(math.Round(float64(score) * 100 / float64(total)))
}

// Passed compares the exact ratio against the threshold, not the rounded
// percentage.
func Passed(score, total, passPercentage int) bool {
	if total <= 0 {
		return false
	}
	return score*100 >= passPercentage*total
}
