package services

import (
	"sort"
	"strings"

	"github.com/yigit/learnhub/internal/app/models"
)

// GradeQuiz counts correctly answered questions. Answers are matched to
// questions by index; an unanswered question counts as wrong. A multiple
// choice answer is correct only when it selects exactly the correct options.
// Text answers compare case-insensitively after trimming.
func GradeQuiz(questions []models.Question, answers []models.Answer) (correct, total int) {
	byIndex := make(map[int]models.Answer, len(answers))
	for _, a := range answers {
		if _, seen := byIndex[a.QuestionIndex]; !seen {
			byIndex[a.QuestionIndex] = a
		}
	}

	for i, q := range questions {
		a, ok := byIndex[i]
		if ok && a.Kind == q.Kind && answerMatches(q, a) {
			correct++
		}
	}
	return correct, len(questions)
}

func answerMatches(q models.Question, a models.Answer) bool {
	switch q.Kind {
	case models.QuestionMultiple:
		return sameSet(q.CorrectAnswers, a.Selected)
	case models.QuestionText:
		return strings.EqualFold(strings.TrimSpace(q.CorrectText), strings.TrimSpace(a.Text))
	}
	return false
}

func sameSet(want, got []int) bool {
	w := uniqueSorted(want)
	g := uniqueSorted(got)
	if len(w) != len(g) {
		return false
	}
	for i := range w {
		if w[i] != g[i] {
			return false
		}
	}
	return true
}

func uniqueSorted(in []int) []int {
	out := append([]int(nil), in...)
	sort.Ints(out)
	j := 0
	for i, v := range out {
		if i == 0 || v != out[j-1] {
			out[j] = v
			j++
		}
	}
	return out[:j]
}

// PercentScore converts a grade to a 0-100 score, rounded half up.
func PercentScore(correct, total int) int {
	if total == 0 {
		return 0
	}
	return (correct*200 + total) / (2 * total)
}
