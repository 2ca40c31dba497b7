package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/yigit/learnhub/internal/app/models"
	"github.com/yigit/learnhub/internal/app/models/dto"
	"github.com/yigit/learnhub/internal/middleware"
	"github.com/yigit/learnhub/internal/pkg/apperrors"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type caller struct {
	id    int64
	email string
	role  models.RoleType
}

var (
	student = caller{id: 5, email: "student@example.com", role: models.RoleStudent}
	teacher = caller{id: 2, email: "teacher@example.com", role: models.RoleTeacher}
)

// asUser stands in for JWTAuth.
func asUser(u caller) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(middleware.UserIDKey, u.id)
		c.Set(middleware.EmailKey, u.email)
		c.Set(middleware.RoleKey, u.role)
		c.Next()
	}
}

func do(r http.Handler, method, target string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		if s, ok := body.(string); ok {
			buf.WriteString(s)
		} else {
			_ = json.NewEncoder(&buf).Encode(body)
		}
	}
	req := httptest.NewRequest(method, target, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func errorDetail(t *testing.T, w *httptest.ResponseRecorder) dto.ErrorDetail {
	t.Helper()
	var resp struct {
		Error dto.ErrorDetail `json:"error"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode error body %q: %v", w.Body.String(), err)
	}
	return resp.Error
}

// fakeAuthorizer treats teacher 2 as the owner of course 1; other courses do not exist.
type fakeAuthorizer struct{}

func (fakeAuthorizer) ValidateCourseOwnership(_ context.Context, courseID, userID int64, role models.RoleType) error {
	if courseID != 1 {
		return apperrors.ErrCourseNotFound
	}
	if role == models.RoleAdmin || userID == 2 {
		return nil
	}
	return apperrors.NewForbiddenError("not the owner")
}

func (f fakeAuthorizer) ValidateStudentStatisticsAccess(ctx context.Context, courseID, studentID, userID int64, role models.RoleType) error {
	if studentID == userID {
		return nil
	}
	return f.ValidateCourseOwnership(ctx, courseID, userID, role)
}

type fakeStatistics struct {
	err error
}

func (f fakeStatistics) StudentStatistics(_ context.Context, courseID, studentID int64) (*dto.StudentStatistics, error) {
	if f.err != nil {
		return nil, f.err
	}
	score := 80
	return &dto.StudentStatistics{
		CompletedQuizzes: 1,
		AverageScore:     80,
		BestScore:        80,
		QuizNames:        []string{"Quiz 1", "Quiz 2"},
		Scores:           []*int{&score, nil},
		AverageScores:    []int{70, 100},
		QuizResults:      []dto.StudentQuizResult{},
	}, nil
}

func (f fakeStatistics) TeacherStatistics(_ context.Context, courseID int64) (*dto.TeacherStatistics, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &dto.TeacherStatistics{
		EnrolledStudents:  2,
		CompletedQuizzes:  3,
		AverageScore:      80,
		ScoreDistribution: [dto.ScoreBuckets]int{0, 0, 1, 1, 1},
		QuizNames:         []string{"Quiz 1", "Quiz 2"},
		QuizScores:        []int{70, 100},
	}, nil
}

func statisticsRouter(u caller, stats StatisticsProvider) *gin.Engine {
	ctrl := NewStatisticsController(stats, fakeAuthorizer{})
	r := gin.New()
	r.Use(asUser(u))
	r.GET("/statistics/student", ctrl.StudentStatistics)
	r.GET("/statistics/teacher", ctrl.TeacherStatistics)
	return r
}

func TestStudentStatisticsParams(t *testing.T) {
	r := statisticsRouter(student, fakeStatistics{})

	tests := []struct {
		target string
		status int
		field  string
	}{
		{"/statistics/student?studentId=5", http.StatusBadRequest, "courseId"},
		{"/statistics/student?courseId=1", http.StatusBadRequest, "studentId"},
		{"/statistics/student?courseId=abc&studentId=5", http.StatusBadRequest, "courseId"},
		{"/statistics/student?courseId=1&studentId=-3", http.StatusBadRequest, "studentId"},
		{"/statistics/student?courseId=1&studentId=5", http.StatusOK, ""},
		{"/statistics/student?courseId=1&studentId=6", http.StatusForbidden, ""},
	}
	for _, tt := range tests {
		w := do(r, http.MethodGet, tt.target, nil)
		if w.Code != tt.status {
			t.Errorf("%s: status = %d, want %d", tt.target, w.Code, tt.status)
			continue
		}
		if tt.field != "" {
			if d := errorDetail(t, w); d.Field != tt.field || d.Code != dto.ErrorCodeValidationFailed {
				t.Errorf("%s: got %+v", tt.target, d)
			}
		}
	}
}

func TestStudentStatisticsBody(t *testing.T) {
	r := statisticsRouter(student, fakeStatistics{})

	w := do(r, http.MethodGet, "/statistics/student?courseId=1&studentId=5", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	var body map[string]json.RawMessage
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	// bare object, not the success envelope
	if _, wrapped := body["data"]; wrapped {
		t.Errorf("statistics should not be wrapped: %s", w.Body.String())
	}
	if string(body["scores"]) != "[80,null]" {
		t.Errorf("scores = %s, want [80,null]", body["scores"])
	}
}

func TestTeacherStatistics(t *testing.T) {
	tests := []struct {
		name   string
		u      caller
		target string
		stats  fakeStatistics
		status int
	}{
		{"missing course", teacher, "/statistics/teacher", fakeStatistics{}, http.StatusBadRequest},
		{"owner", teacher, "/statistics/teacher?courseId=1", fakeStatistics{}, http.StatusOK},
		{"student", student, "/statistics/teacher?courseId=1", fakeStatistics{}, http.StatusForbidden},
		{"unknown course", teacher, "/statistics/teacher?courseId=9", fakeStatistics{}, http.StatusNotFound},
		{"storage failure", teacher, "/statistics/teacher?courseId=1", fakeStatistics{err: errors.New("db down")}, http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := do(statisticsRouter(tt.u, tt.stats), http.MethodGet, tt.target, nil)
			if w.Code != tt.status {
				t.Fatalf("status = %d, want %d (%s)", w.Code, tt.status, w.Body.String())
			}
			if tt.status == http.StatusInternalServerError {
				if d := errorDetail(t, w); d.Message != "Internal server error" {
					t.Errorf("storage cause leaked: %+v", d)
				}
			}
		})
	}

	w := do(statisticsRouter(teacher, fakeStatistics{}), http.MethodGet, "/statistics/teacher?courseId=1", nil)
	var stats dto.TeacherStatistics
	if err := json.Unmarshal(w.Body.Bytes(), &stats); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if stats.ScoreDistribution != [dto.ScoreBuckets]int{0, 0, 1, 1, 1} || stats.EnrolledStudents != 2 {
		t.Errorf("unexpected body %+v", stats)
	}
}

type fakeResults struct {
	recorded []dto.CreateQuizResultRequest
	listed   struct {
		studentID int64
		lectureID *int64
	}
}

func (f *fakeResults) Record(_ context.Context, req *dto.CreateQuizResultRequest) (*models.QuizResult, error) {
	f.recorded = append(f.recorded, *req)
	if req.Score == nil {
		return nil, apperrors.NewValidationError("score", "score is required")
	}
	return &models.QuizResult{ID: 1, StudentID: *req.StudentID, LectureID: *req.LectureID, Score: *req.Score, DateTaken: time.Now()}, nil
}

func (f *fakeResults) List(_ context.Context, studentID int64, lectureID *int64) ([]models.QuizResult, error) {
	f.listed.studentID = studentID
	f.listed.lectureID = lectureID
	return []models.QuizResult{}, nil
}

func quizResultRouter(u caller, results *fakeResults) *gin.Engine {
	ctrl := NewQuizResultController(results)
	r := gin.New()
	r.Use(asUser(u))
	r.POST("/quiz-results", ctrl.CreateQuizResult)
	r.GET("/quiz-results", ctrl.ListQuizResults)
	return r
}

func TestCreateQuizResult(t *testing.T) {
	results := &fakeResults{}
	r := quizResultRouter(student, results)

	w := do(r, http.MethodPost, "/quiz-results", map[string]interface{}{"studentId": 5, "lectureId": 10, "score": 0})
	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d (%s)", w.Code, w.Body.String())
	}
	var created models.QuizResult
	if err := json.Unmarshal(w.Body.Bytes(), &created); err != nil || created.ID != 1 {
		t.Errorf("expected bare quiz result row, got %s", w.Body.String())
	}

	for name, body := range map[string]interface{}{
		"missing score":   map[string]interface{}{"studentId": 5, "lectureId": 10},
		"missing student": map[string]interface{}{"lectureId": 10, "score": 50},
		"malformed":       `{"studentId":`,
	} {
		if w := do(r, http.MethodPost, "/quiz-results", body); w.Code != http.StatusBadRequest {
			t.Errorf("%s: status = %d, want 400", name, w.Code)
		}
	}

	if w := do(r, http.MethodPost, "/quiz-results", map[string]interface{}{"studentId": 6, "lectureId": 10, "score": 50}); w.Code != http.StatusForbidden {
		t.Errorf("recording for another student: status = %d", w.Code)
	}
	if len(results.recorded) != 1 {
		t.Errorf("only the valid request should reach the service, got %d", len(results.recorded))
	}
}

func TestListQuizResults(t *testing.T) {
	results := &fakeResults{}
	r := quizResultRouter(teacher, results)

	if w := do(r, http.MethodGet, "/quiz-results", nil); w.Code != http.StatusBadRequest {
		t.Errorf("missing studentId: status = %d", w.Code)
	}
	if w := do(r, http.MethodGet, "/quiz-results?studentId=5&lectureId=x", nil); w.Code != http.StatusBadRequest {
		t.Errorf("bad lectureId: status = %d", w.Code)
	}

	w := do(r, http.MethodGet, "/quiz-results?studentId=5&lectureId=10", nil)
	if w.Code != http.StatusOK || w.Body.String() != "[]" {
		t.Fatalf("got %d %s", w.Code, w.Body.String())
	}
	if results.listed.studentID != 5 || results.listed.lectureID == nil || *results.listed.lectureID != 10 {
		t.Errorf("filters not passed through: %+v", results.listed)
	}
}

type fakeEnrollments struct {
	users map[string]*models.User
}

func (f *fakeEnrollments) lookup(email string) (*models.User, error) {
	u, ok := f.users[email]
	if !ok {
		return nil, apperrors.ErrUserNotFound
	}
	return u, nil
}

func (f *fakeEnrollments) Enroll(_ context.Context, userID, courseID int64) (*models.Enrollment, error) {
	return &models.Enrollment{UserID: userID, CourseID: courseID}, nil
}

func (f *fakeEnrollments) Unenroll(context.Context, int64, int64) error {
	return apperrors.ErrEnrollmentNotFound
}

func (f *fakeEnrollments) SyncEnrollmentsByEmail(_ context.Context, email string, courseIDs []int64) (*models.User, error) {
	u, err := f.lookup(email)
	if err != nil {
		return nil, err
	}
	for _, id := range courseIDs {
		u.Enrollments = append(u.Enrollments, models.Enrollment{UserID: u.ID, CourseID: id})
	}
	return u, nil
}

func (f *fakeEnrollments) UnenrollByEmail(_ context.Context, email string, _ int64) error {
	_, err := f.lookup(email)
	return err
}

func (f *fakeEnrollments) GetUserWithEnrollments(_ context.Context, email string) (*models.User, error) {
	return f.lookup(email)
}

func userRouter(u caller) *gin.Engine {
	enrollments := &fakeEnrollments{users: map[string]*models.User{
		student.email: {ID: student.id, Email: student.email, RoleType: models.RoleStudent},
	}}
	ctrl := NewUserController(enrollments, nil)
	r := gin.New()
	r.Use(asUser(u))
	r.GET("/users/:email", ctrl.GetUser)
	r.PUT("/users/:email", ctrl.UpdateEnrollments)
	r.DELETE("/users/:email", ctrl.DeleteEnrollment)
	r.DELETE("/courses/:id/enrollment", ctrl.UnenrollSelf)
	return r
}

func TestUserEnrollments(t *testing.T) {
	r := userRouter(student)

	w := do(r, http.MethodGet, "/users/student@example.com", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	var got dto.UserEnrollmentsResponse
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got.Enrollments == nil || len(got.Enrollments) != 0 || got.UserResponse == nil || got.Email != student.email {
		t.Errorf("unexpected body %s", w.Body.String())
	}

	w = do(r, http.MethodPut, "/users/student@example.com", map[string]interface{}{
		"enrollments": []map[string]int{{"courseId": 1}, {"courseId": 2}},
	})
	if w.Code != http.StatusOK || !bytes.Contains(w.Body.Bytes(), []byte(`"courseId":2`)) {
		t.Errorf("sync: %d %s", w.Code, w.Body.String())
	}

	if w := do(r, http.MethodPut, "/users/student@example.com", `{"enrollments":"nope"}`); w.Code != http.StatusBadRequest {
		t.Errorf("malformed sync body: status = %d", w.Code)
	}
	if w := do(r, http.MethodDelete, "/users/student@example.com", map[string]int{"courseId": 1}); w.Code != http.StatusOK {
		t.Errorf("delete: status = %d", w.Code)
	}
	if w := do(r, http.MethodGet, "/users/someone@example.com", nil); w.Code != http.StatusForbidden {
		t.Errorf("reading another user: status = %d", w.Code)
	}
	if w := do(r, http.MethodDelete, "/courses/3/enrollment", nil); w.Code != http.StatusNotFound {
		t.Errorf("leaving a course the user is not in: status = %d", w.Code)
	}
}

func TestUserEnrollmentsUnknownUser(t *testing.T) {
	r := userRouter(teacher)

	if w := do(r, http.MethodGet, "/users/ghost@example.com", nil); w.Code != http.StatusNotFound {
		t.Errorf("GET unknown user: status = %d", w.Code)
	}
	w := do(r, http.MethodPut, "/users/ghost@example.com", map[string]interface{}{
		"enrollments": []map[string]int{{"courseId": 1}},
	})
	if w.Code != http.StatusNotFound {
		t.Errorf("PUT unknown user: status = %d", w.Code)
	}
}
