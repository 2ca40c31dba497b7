package services

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/yigit/learnhub/internal/app/models"
	"github.com/yigit/learnhub/internal/app/repositories"
	"github.com/yigit/learnhub/internal/pkg/apperrors"
)

var errStorage = errors.New("connection refused")

// fakeEnrollmentStore keys rows by (user, course) like the table's primary key.
type fakeEnrollmentStore struct {
	mu      sync.Mutex
	rows    map[[2]int64]models.Enrollment
	courses map[int64]*models.Course
	err     error
}

func newFakeEnrollmentStore(courses ...*models.Course) *fakeEnrollmentStore {
	f := &fakeEnrollmentStore{
		rows:    make(map[[2]int64]models.Enrollment),
		courses: make(map[int64]*models.Course),
	}
	for _, c := range courses {
		f.courses[c.ID] = c
	}
	return f
}

func (f *fakeEnrollmentStore) Enroll(_ context.Context, userID, courseID int64) (*models.Enrollment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.enrollLocked(userID, courseID)
}

func (f *fakeEnrollmentStore) enrollLocked(userID, courseID int64) (*models.Enrollment, error) {
	if f.err != nil {
		return nil, f.err
	}
	if _, ok := f.courses[courseID]; !ok {
		return nil, apperrors.ErrCourseNotFound
	}
	key := [2]int64{userID, courseID}
	if e, ok := f.rows[key]; ok {
		return &e, nil
	}
	e := models.Enrollment{UserID: userID, CourseID: courseID, EnrolledAt: time.Now()}
	f.rows[key] = e
	return &e, nil
}

func (f *fakeEnrollmentStore) EnrollMany(_ context.Context, userID int64, courseIDs []int64) ([]models.Enrollment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	// all or nothing, like the transaction
	for _, id := range courseIDs {
		if _, ok := f.courses[id]; !ok {
			return nil, apperrors.ErrCourseNotFound
		}
	}
	out := make([]models.Enrollment, 0, len(courseIDs))
	for _, id := range courseIDs {
		e, err := f.enrollLocked(userID, id)
		if err != nil {
			return nil, err
		}
		out = append(out, *e)
	}
	return out, nil
}

func (f *fakeEnrollmentStore) Delete(_ context.Context, userID, courseID int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	key := [2]int64{userID, courseID}
	if _, ok := f.rows[key]; !ok {
		return apperrors.ErrEnrollmentNotFound
	}
	delete(f.rows, key)
	return nil
}

func (f *fakeEnrollmentStore) ListByUser(_ context.Context, userID int64) ([]models.Enrollment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := []models.Enrollment{}
	for key, e := range f.rows {
		if key[0] == userID {
			e.Course = f.courses[key[1]]
			out = append(out, e)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CourseID < out[j].CourseID })
	return out, nil
}

func (f *fakeEnrollmentStore) CountByCourse(_ context.Context, courseID int64) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return 0, f.err
	}
	n := 0
	for key := range f.rows {
		if key[1] == courseID {
			n++
		}
	}
	return n, nil
}

func (f *fakeEnrollmentStore) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.rows)
}

type fakeUserStore struct {
	users  map[int64]*models.User
	nextID int64
}

func newFakeUserStore(users ...*models.User) *fakeUserStore {
	f := &fakeUserStore{users: make(map[int64]*models.User), nextID: 1}
	for _, u := range users {
		f.users[u.ID] = u
		if u.ID >= f.nextID {
			f.nextID = u.ID + 1
		}
	}
	return f
}

func (f *fakeUserStore) Create(_ context.Context, user *models.User) error {
	for _, u := range f.users {
		if u.Email == user.Email {
			return apperrors.ErrEmailAlreadyExists
		}
	}
	if user.RoleType == "" {
		user.RoleType = models.RoleStudent
	}
	user.ID = f.nextID
	f.nextID++
	user.CreatedAt = time.Now()
	copied := *user
	f.users[user.ID] = &copied
	return nil
}

func (f *fakeUserStore) GetByID(_ context.Context, id int64) (*models.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, apperrors.ErrUserNotFound
	}
	copied := *u
	return &copied, nil
}

func (f *fakeUserStore) GetByEmail(_ context.Context, email string) (*models.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			copied := *u
			return &copied, nil
		}
	}
	return nil, apperrors.ErrUserNotFound
}

func (f *fakeUserStore) EmailExists(_ context.Context, email string) (bool, error) {
	for _, u := range f.users {
		if u.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeUserStore) ListByRole(_ context.Context, role models.RoleType) ([]models.User, error) {
	out := []models.User{}
	for _, u := range f.users {
		if u.RoleType == role {
			out = append(out, *u)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

type fakeTokenStore struct {
	tokens map[string]*repositories.RefreshToken
}

func newFakeTokenStore() *fakeTokenStore {
	return &fakeTokenStore{tokens: make(map[string]*repositories.RefreshToken)}
}

func (f *fakeTokenStore) Create(_ context.Context, token string, userID int64, expiry time.Time) error {
	f.tokens[token] = &repositories.RefreshToken{Token: token, UserID: userID, ExpiryDate: expiry}
	return nil
}

func (f *fakeTokenStore) Get(_ context.Context, token string) (*repositories.RefreshToken, error) {
	t, ok := f.tokens[token]
	if !ok {
		return nil, apperrors.ErrTokenNotFound
	}
	copied := *t
	return &copied, nil
}

func (f *fakeTokenStore) Revoke(_ context.Context, token string) error {
	t, ok := f.tokens[token]
	if !ok {
		return apperrors.ErrTokenNotFound
	}
	t.IsRevoked = true
	return nil
}

// fakeLectureStore also serves the quiz listing used by statistics.
type fakeLectureStore struct {
	lectures map[int64]*models.Lecture
	nextID   int64
	err      error
}

func newFakeLectureStore(lectures ...*models.Lecture) *fakeLectureStore {
	f := &fakeLectureStore{lectures: make(map[int64]*models.Lecture), nextID: 1}
	for _, l := range lectures {
		f.lectures[l.ID] = l
		if l.ID >= f.nextID {
			f.nextID = l.ID + 1
		}
	}
	return f
}

func (f *fakeLectureStore) Create(_ context.Context, l *models.Lecture) error {
	l.ID = f.nextID
	f.nextID++
	copied := *l
	f.lectures[l.ID] = &copied
	return nil
}

func (f *fakeLectureStore) GetByID(_ context.Context, id int64) (*models.Lecture, error) {
	l, ok := f.lectures[id]
	if !ok {
		return nil, apperrors.ErrLectureNotFound
	}
	copied := *l
	return &copied, nil
}

func (f *fakeLectureStore) ListByCourse(_ context.Context, courseID int64) ([]models.Lecture, error) {
	return f.list(courseID, ""), nil
}

func (f *fakeLectureStore) ListQuizzesByCourse(_ context.Context, courseID int64) ([]models.Lecture, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.list(courseID, models.LectureQuiz), nil
}

func (f *fakeLectureStore) list(courseID int64, onlyType models.LectureType) []models.Lecture {
	out := []models.Lecture{}
	for _, l := range f.lectures {
		if l.CourseID == courseID && (onlyType == "" || l.Type == onlyType) {
			out = append(out, *l)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Order != out[j].Order {
			return out[i].Order < out[j].Order
		}
		return out[i].ID < out[j].ID
	})
	return out
}

func (f *fakeLectureStore) Update(_ context.Context, l *models.Lecture) error {
	if _, ok := f.lectures[l.ID]; !ok {
		return apperrors.ErrLectureNotFound
	}
	copied := *l
	f.lectures[l.ID] = &copied
	return nil
}

func (f *fakeLectureStore) Delete(_ context.Context, id int64) error {
	if _, ok := f.lectures[id]; !ok {
		return apperrors.ErrLectureNotFound
	}
	delete(f.lectures, id)
	return nil
}

// fakeQuizResultStore stamps increasing dates so newest-first order is stable.
type fakeQuizResultStore struct {
	results []models.QuizResult
	clock   time.Time
	err     error
}

func newFakeQuizResultStore() *fakeQuizResultStore {
	return &fakeQuizResultStore{clock: time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)}
}

func (f *fakeQuizResultStore) Create(_ context.Context, r *models.QuizResult) error {
	if f.err != nil {
		return f.err
	}
	f.clock = f.clock.Add(time.Minute)
	r.ID = int64(len(f.results) + 1)
	r.DateTaken = f.clock
	f.results = append(f.results, *r)
	return nil
}

func (f *fakeQuizResultStore) newestFirst(keep func(models.QuizResult) bool) []models.QuizResult {
	out := []models.QuizResult{}
	for i := len(f.results) - 1; i >= 0; i-- {
		if keep(f.results[i]) {
			out = append(out, f.results[i])
		}
	}
	return out
}

func (f *fakeQuizResultStore) ListByStudent(_ context.Context, studentID int64, lectureID *int64) ([]models.QuizResult, error) {
	return f.newestFirst(func(r models.QuizResult) bool {
		return r.StudentID == studentID && (lectureID == nil || r.LectureID == *lectureID)
	}), nil
}

func (f *fakeQuizResultStore) ListByLectures(_ context.Context, lectureIDs []int64) ([]models.QuizResult, error) {
	if f.err != nil {
		return nil, f.err
	}
	wanted := make(map[int64]bool, len(lectureIDs))
	for _, id := range lectureIDs {
		wanted[id] = true
	}
	return f.newestFirst(func(r models.QuizResult) bool { return wanted[r.LectureID] }), nil
}
