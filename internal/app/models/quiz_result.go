package models

import (
	"fmt"
	"time"
)

// Answer is one submitted response. Kind mirrors the question it answers:
// multiple uses Selected, text uses Text.
type Answer struct {
	QuestionIndex int          `json:"questionIndex" example:"0"`
	Kind          QuestionKind `json:"type" example:"multiple"`
	Selected      []int        `json:"selected,omitempty"`
	Text          string       `json:"text,omitempty"`
}

// Validate checks that the fields match the answer kind.
func (a Answer) Validate() error {
	if a.QuestionIndex < 0 {
		return fmt.Errorf("questionIndex must not be negative")
	}
	switch a.Kind {
	case QuestionMultiple:
		if a.Text != "" {
			return fmt.Errorf("multiple choice answer cannot carry text")
		}
	case QuestionText:
		if len(a.Selected) > 0 {
			return fmt.Errorf("text answer cannot carry selected options")
		}
	default:
		return fmt.Errorf("unknown answer type %q", a.Kind)
	}
	return nil
}

// ValidateAnswers validates every answer and prefixes errors with the position.
func ValidateAnswers(answers []Answer) error {
	for i, a := range answers {
		if err := a.Validate(); err != nil {
			return fmt.Errorf("answer %d: %w", i+1, err)
		}
	}
	return nil
}

// QuizResult is one scored attempt of a quiz lecture. Rows are never updated.
type QuizResult struct {
	ID        int64     `json:"id" db:"id" example:"100"`
	StudentID int64     `json:"studentId" db:"student_id" example:"5"`
	LectureID int64     `json:"lectureId" db:"lecture_id" example:"10"`
	Score     int       `json:"score" db:"score" example:"80"`
	MaxScore  int       `json:"maxScore" db:"max_score" example:"100"`
	Answers   []Answer  `json:"answers" db:"answers"`
	DateTaken time.Time `json:"dateTaken" db:"date_taken"`
}
