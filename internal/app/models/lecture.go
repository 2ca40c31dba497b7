package models

import (
	"fmt"
	"strings"
	"time"
)

// LectureType enumerates lecture content kinds
type LectureType string

const (
	LectureText  LectureType = "text"
	LectureVideo LectureType = "video"
	LectureQuiz  LectureType = "quiz"
)

// IsValid reports whether t is a known lecture type.
func (t LectureType) IsValid() bool {
	switch t {
	case LectureText, LectureVideo, LectureQuiz:
		return true
	}
	return false
}

// Lecture defines the lecture model based on the 'lectures' table
type Lecture struct {
	ID        int64       `json:"id" db:"id" example:"10"`
	CourseID  int64       `json:"courseId" db:"course_id" example:"1"`
	Title     string      `json:"title" db:"title" example:"Week 1 quiz"`
	Type      LectureType `json:"type" db:"type" example:"quiz"`
	Content   *string     `json:"content" db:"content"`
	VideoURL  *string     `json:"videoUrl" db:"video_url"`
	Questions []Question  `json:"questions" db:"questions"`
	Order     int         `json:"order" db:"order" example:"1"`
	CreatedAt time.Time   `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time   `json:"updatedAt" db:"updated_at"`
}

// QuestionKind discriminates the Question variants
type QuestionKind string

const (
	QuestionMultiple QuestionKind = "multiple"
	QuestionText     QuestionKind = "text"
)

// Question is one quiz item. Kind selects which answer fields apply:
// multiple uses Options and CorrectAnswers (indexes into Options),
// text uses CorrectText.
type Question struct {
	Kind           QuestionKind `json:"type" example:"multiple"`
	Prompt         string       `json:"question" example:"Which keyword starts a goroutine?"`
	Options        []string     `json:"options,omitempty"`
	CorrectAnswers []int        `json:"correctAnswers,omitempty"`
	CorrectText    string       `json:"correctText,omitempty"`
}

// Validate checks that the fields match the question kind.
func (q Question) Validate() error {
	if strings.TrimSpace(q.Prompt) == "" {
		return fmt.Errorf("question text is required")
	}

	switch q.Kind {
	case QuestionMultiple:
		if len(q.Options) < 2 {
			return fmt.Errorf("multiple choice question needs at least two options")
		}
		if len(q.CorrectAnswers) == 0 {
			return fmt.Errorf("multiple choice question needs at least one correct answer")
		}
		for _, idx := range q.CorrectAnswers {
			if idx < 0 || idx >= len(q.Options) {
				return fmt.Errorf("correct answer index %d out of range", idx)
			}
		}
		if q.CorrectText != "" {
			return fmt.Errorf("multiple choice question cannot carry correctText")
		}
	case QuestionText:
		if strings.TrimSpace(q.CorrectText) == "" {
			return fmt.Errorf("text question needs correctText")
		}
		if len(q.CorrectAnswers) > 0 {
			return fmt.Errorf("text question cannot carry correctAnswers")
		}
	default:
		return fmt.Errorf("unknown question type %q", q.Kind)
	}
	return nil
}

// ValidateQuestions validates every question and prefixes errors with the position.
func ValidateQuestions(questions []Question) error {
	for i, q := range questions {
		if err := q.Validate(); err != nil {
			return fmt.Errorf("question %d: %w", i+1, err)
		}
	}
	return nil
}
