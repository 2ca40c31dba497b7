package services

import (
	"math"

	"github.com/yigit/learnhub/internal/app/models"
	"github.com/yigit/learnhub/internal/app/models/dto"
)

// RoundedMean returns the arithmetic mean rounded half up, or 0 for no scores.
func RoundedMean(scores []int) int {
	if len(scores) == 0 {
		return 0
	}
	sum := 0
	for _, s := range scores {
		sum += s
	}
	return int(math.Floor(float64(sum)/float64(len(scores)) + 0.5))
}

// scoreBucket maps a score to its histogram bucket. Only the first bucket
// includes its lower bound; anything above 80 lands in the last one.
func scoreBucket(score int) int {
	switch {
	case score <= 20:
		return 0
	case score <= 40:
		return 1
	case score <= 60:
		return 2
	case score <= 80:
		return 3
	default:
		return 4
	}
}

// ScoreDistribution histograms result scores into dto.ScoreBuckets buckets.
func ScoreDistribution(results []models.QuizResult) [dto.ScoreBuckets]int {
	var buckets [dto.ScoreBuckets]int
	for _, r := range results {
		buckets[scoreBucket(r.Score)]++
	}
	return buckets
}

func scoresOf(results []models.QuizResult) []int {
	scores := make([]int, len(results))
	for i, r := range results {
		scores[i] = r.Score
	}
	return scores
}

func scoresByLecture(results []models.QuizResult) map[int64][]int {
	byLecture := make(map[int64][]int)
	for _, r := range results {
		byLecture[r.LectureID] = append(byLecture[r.LectureID], r.Score)
	}
	return byLecture
}

func quizTitles(quizzes []models.Lecture) []string {
	names := make([]string, len(quizzes))
	for i, q := range quizzes {
		names[i] = q.Title
	}
	return names
}

// perQuizAverages returns one rounded average per quiz, 0 when unattempted.
func perQuizAverages(quizzes []models.Lecture, all []models.QuizResult) []int {
	byLecture := scoresByLecture(all)
	averages := make([]int, len(quizzes))
	for i, q := range quizzes {
		averages[i] = RoundedMean(byLecture[q.ID])
	}
	return averages
}

// BuildStudentStatistics derives one student's dashboard. quizzes is the
// course's quiz set in display order; all holds every student's results for
// those quizzes, newest first.
func BuildStudentStatistics(quizzes []models.Lecture, all []models.QuizResult, studentID int64) *dto.StudentStatistics {
	titles := make(map[int64]string, len(quizzes))
	for _, q := range quizzes {
		titles[q.ID] = q.Title
	}

	own := make([]models.QuizResult, 0)
	for _, r := range all {
		if r.StudentID == studentID {
			own = append(own, r)
		}
	}

	stats := &dto.StudentStatistics{
		CompletedQuizzes: len(own),
		AverageScore:     RoundedMean(scoresOf(own)),
		QuizNames:        quizTitles(quizzes),
		Scores:           make([]*int, len(quizzes)),
		AverageScores:    perQuizAverages(quizzes, all),
		QuizResults:      make([]dto.StudentQuizResult, 0, len(own)),
	}

	for i, r := range own {
		if i == 0 || r.Score > stats.BestScore {
			stats.BestScore = r.Score
		}
		stats.QuizResults = append(stats.QuizResults, dto.StudentQuizResult{
			ID:        r.ID,
			QuizName:  titles[r.LectureID],
			DateTaken: r.DateTaken,
			Score:     r.Score,
		})
	}

	// own is newest first, so the first hit per quiz is the latest attempt
	for i, q := range quizzes {
		for _, r := range own {
			if r.LectureID == q.ID {
				score := r.Score
				stats.Scores[i] = &score
				break
			}
		}
	}

	return stats
}

// BuildTeacherStatistics derives the cohort dashboard of a course.
// CompletedQuizzes counts attempts, retakes included.
func BuildTeacherStatistics(quizzes []models.Lecture, all []models.QuizResult, enrolledStudents int) *dto.TeacherStatistics {
	return &dto.TeacherStatistics{
		EnrolledStudents:  enrolledStudents,
		CompletedQuizzes:  len(all),
		AverageScore:      RoundedMean(scoresOf(all)),
		ScoreDistribution: ScoreDistribution(all),
		QuizNames:         quizTitles(quizzes),
		QuizScores:        perQuizAverages(quizzes, all),
	}
}
