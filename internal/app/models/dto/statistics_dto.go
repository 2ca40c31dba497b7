package dto

import "time"

// ScoreBuckets is the number of score distribution buckets.
const ScoreBuckets = 5

// StudentStatistics is the per-student dashboard for one course.
type StudentStatistics struct {
	CompletedQuizzes int                 `json:"completedQuizzes" example:"1"`
	AverageScore     int                 `json:"averageScore" example:"80"`
	BestScore        int                 `json:"bestScore" example:"80"`
	QuizNames        []string            `json:"quizNames"`
	Scores           []*int              `json:"scores" swaggertype:"array,integer"`
	AverageScores    []int               `json:"averageScores"`
	QuizResults      []StudentQuizResult `json:"quizResults"`
}

// StudentQuizResult is one attempt in the student dashboard.
type StudentQuizResult struct {
	ID        int64     `json:"id" example:"100"`
	QuizName  string    `json:"quizName" example:"Week 1 quiz"`
	DateTaken time.Time `json:"dateTaken"`
	Score     int       `json:"score" example:"80"`
}

// TeacherStatistics is the cohort dashboard for one course.
type TeacherStatistics struct {
	EnrolledStudents  int               `json:"enrolledStudents" example:"12"`
	CompletedQuizzes  int               `json:"completedQuizzes" example:"30"`
	AverageScore      int               `json:"averageScore" example:"74"`
	ScoreDistribution [ScoreBuckets]int `json:"scoreDistribution" swaggertype:"array,integer"`
	QuizNames         []string          `json:"quizNames"`
	QuizScores        []int             `json:"quizScores"`
}
