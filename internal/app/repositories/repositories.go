package repositories

import (
	"github.com/yigit/learnhub/internal/db"
)

// Repositories holds all the repository instances
type Repositories struct {
	UserRepository       *UserRepository
	TokenRepository      *TokenRepository
	CourseRepository     *CourseRepository
	EnrollmentRepository *EnrollmentRepository
	LectureRepository    *LectureRepository
	QuizResultRepository *QuizResultRepository
	FinalTestRepository  *FinalTestRepository
}

// NewRepositories initializes all repositories over one pool
func NewRepositories(database *db.PostgresDB) *Repositories {
	return &Repositories{
		UserRepository:       NewUserRepository(database.Pool),
		TokenRepository:      NewTokenRepository(database.Pool),
		CourseRepository:     NewCourseRepository(database.Pool),
		EnrollmentRepository: NewEnrollmentRepository(database),
		LectureRepository:    NewLectureRepository(database.Pool),
		QuizResultRepository: NewQuizResultRepository(database.Pool),
		FinalTestRepository:  NewFinalTestRepository(database.Pool),
	}
}
