package services

import (
	"testing"

	"github.com/yigit/learnhub/internal/app/models"
)

func TestGradeQuiz(t *testing.T) {
	questions := quizLecture().Questions

	tests := []struct {
		name    string
		answers []models.Answer
		correct int
	}{
		{"no answers", nil, 0},
		{
			"all correct",
			[]models.Answer{
				{QuestionIndex: 0, Kind: models.QuestionMultiple, Selected: []int{0, 1}},
				{QuestionIndex: 1, Kind: models.QuestionText, Text: "CHAN"},
				{QuestionIndex: 2, Kind: models.QuestionMultiple, Selected: []int{0}},
			},
			3,
		},
		{
			"partial selection is wrong",
			[]models.Answer{{QuestionIndex: 0, Kind: models.QuestionMultiple, Selected: []int{0}}},
			0,
		},
		{
			"duplicate selections collapse",
			[]models.Answer{{QuestionIndex: 0, Kind: models.QuestionMultiple, Selected: []int{1, 0, 1}}},
			1,
		},
		{
			"kind mismatch is wrong",
			[]models.Answer{{QuestionIndex: 1, Kind: models.QuestionMultiple, Selected: []int{0}}},
			0,
		},
		{
			"first answer per question wins",
			[]models.Answer{
				{QuestionIndex: 2, Kind: models.QuestionMultiple, Selected: []int{1}},
				{QuestionIndex: 2, Kind: models.QuestionMultiple, Selected: []int{0}},
			},
			0,
		},
		{
			"out of range index ignored",
			[]models.Answer{{QuestionIndex: 7, Kind: models.QuestionText, Text: "chan"}},
			0,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			correct, total := GradeQuiz(questions, tt.answers)
			if correct != tt.correct || total != len(questions) {
				t.Errorf("GradeQuiz = %d/%d, want %d/%d", correct, total, tt.correct, len(questions))
			}
		})
	}
}

func TestPercentScore(t *testing.T) {
	tests := []struct {
		correct, total, want int
	}{
		{0, 0, 0},
		{0, 3, 0},
		{1, 3, 33},
		{2, 3, 67},
		{1, 2, 50},
		{1, 8, 13},
		{3, 3, 100},
	}
	for _, tt := range tests {
		if got := PercentScore(tt.correct, tt.total); got != tt.want {
			t.Errorf("PercentScore(%d, %d) = %d, want %d", tt.correct, tt.total, got, tt.want)
		}
	}
}
