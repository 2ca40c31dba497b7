package models

import "time"

// FinalTest is the single cumulative assessment of a course.
type FinalTest struct {
	ID        int64      `json:"id" db:"id"`
	CourseID  int64      `json:"courseId" db:"course_id"`
	Title     string     `json:"title" db:"title"`
	Questions []Question `json:"questions" db:"questions"`
	PassScore int        `json:"passScore" db:"pass_score" example:"60"`
	CreatedAt time.Time  `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time  `json:"updatedAt" db:"updated_at"`
}

// TestResult is one graded attempt of a course's final test.
type TestResult struct {
	ID          int64     `json:"id" db:"id"`
	StudentID   int64     `json:"studentId" db:"student_id"`
	CourseID    int64     `json:"courseId" db:"course_id"`
	FinalTestID int64     `json:"finalTestId" db:"final_test_id"`
	Score       int       `json:"score" db:"score"`
	MaxScore    int       `json:"maxScore" db:"max_score"`
	Answers     []Answer  `json:"answers" db:"answers"`
	Passed      bool      `json:"passed" db:"passed"`
	DateTaken   time.Time `json:"dateTaken" db:"date_taken"`
}
