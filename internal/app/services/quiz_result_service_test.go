package services

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/yigit/learnhub/internal/app/models"
	"github.com/yigit/learnhub/internal/app/models/dto"
	"github.com/yigit/learnhub/internal/pkg/apperrors"
)

func int64Ptr(v int64) *int64 { return &v }

func quizLecture() *models.Lecture {
	return &models.Lecture{
		ID: 10, CourseID: 1, Title: "Week 1 quiz", Type: models.LectureQuiz,
		Questions: []models.Question{
			{Kind: models.QuestionMultiple, Prompt: "Pick go keywords", Options: []string{"go", "goto", "spawn"}, CorrectAnswers: []int{0, 1}},
			{Kind: models.QuestionText, Prompt: "Channel keyword?", CorrectText: "chan"},
			{Kind: models.QuestionMultiple, Prompt: "Zero value of int", Options: []string{"0", "nil"}, CorrectAnswers: []int{0}},
		},
	}
}

func newQuizResultFixture() (*QuizResultService, *fakeQuizResultStore) {
	results := newFakeQuizResultStore()
	lectures := newFakeLectureStore(
		quizLecture(),
		&models.Lecture{ID: 11, CourseID: 1, Title: "Reading", Type: models.LectureText},
	)
	return NewQuizResultService(results, lectures, nil, zerolog.Nop()), results
}

func TestRecordDefaults(t *testing.T) {
	svc, _ := newQuizResultFixture()

	result, err := svc.Record(context.Background(), &dto.CreateQuizResultRequest{
		StudentID: int64Ptr(5),
		LectureID: int64Ptr(10),
		Score:     intPtr(0),
	})
	if err != nil {
		t.Fatalf("Record: %v", err)
	}
	if result.ID == 0 || result.DateTaken.IsZero() {
		t.Errorf("expected stored id and dateTaken, got %+v", result)
	}
	if result.MaxScore != 0 {
		t.Errorf("MaxScore should default to 0, got %d", result.MaxScore)
	}
	if result.Answers != nil {
		t.Errorf("Answers should default to null, got %v", result.Answers)
	}
}

func TestRecordRequiredFields(t *testing.T) {
	svc, results := newQuizResultFixture()

	tests := []struct {
		name  string
		req   dto.CreateQuizResultRequest
		field string
	}{
		{"missing student", dto.CreateQuizResultRequest{LectureID: int64Ptr(10), Score: intPtr(50)}, "studentId"},
		{"missing lecture", dto.CreateQuizResultRequest{StudentID: int64Ptr(5), Score: intPtr(50)}, "lectureId"},
		{"missing score", dto.CreateQuizResultRequest{StudentID: int64Ptr(5), LectureID: int64Ptr(10)}, "score"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := tt.req
			_, err := svc.Record(context.Background(), &req)
			if !errors.Is(err, apperrors.ErrValidationFailed) {
				t.Fatalf("expected validation error, got %v", err)
			}
			if f := apperrors.Field(err); f != tt.field {
				t.Errorf("field = %q, want %q", f, tt.field)
			}
		})
	}
	if len(results.results) != 0 {
		t.Errorf("nothing should be stored")
	}
}

func TestRecordTrustsCallerScore(t *testing.T) {
	svc, _ := newQuizResultFixture()

	// score above maxScore and a non-quiz lecture are both accepted
	result, err := svc.Record(context.Background(), &dto.CreateQuizResultRequest{
		StudentID: int64Ptr(5),
		LectureID: int64Ptr(11),
		Score:     intPtr(150),
		MaxScore:  intPtr(100),
	})
	if err != nil {
		t.Fatalf("Record: %v", err)
	}
	if result.Score != 150 || result.MaxScore != 100 {
		t.Errorf("unexpected stored result %+v", result)
	}
}

func TestRecordRejectsMalformedAnswers(t *testing.T) {
	svc, _ := newQuizResultFixture()

	_, err := svc.Record(context.Background(), &dto.CreateQuizResultRequest{
		StudentID: int64Ptr(5),
		LectureID: int64Ptr(10),
		Score:     intPtr(50),
		Answers:   []models.Answer{{QuestionIndex: 0, Kind: "essay"}},
	})
	if !errors.Is(err, apperrors.ErrValidationFailed) || apperrors.Field(err) != "answers" {
		t.Errorf("expected answers validation error, got %v", err)
	}
}

func TestListNewestFirst(t *testing.T) {
	svc, _ := newQuizResultFixture()
	ctx := context.Background()
	for _, r := range []struct {
		lecture int64
		score   int
	}{{10, 40}, {11, 60}, {10, 90}} {
		if _, err := svc.Record(ctx, &dto.CreateQuizResultRequest{
			StudentID: int64Ptr(5), LectureID: int64Ptr(r.lecture), Score: intPtr(r.score),
		}); err != nil {
			t.Fatalf("Record: %v", err)
		}
	}

	all, err := svc.List(ctx, 5, nil)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(all) != 3 || all[0].Score != 90 || all[2].Score != 40 {
		t.Errorf("unexpected order %+v", all)
	}
	for i := 1; i < len(all); i++ {
		if all[i].DateTaken.After(all[i-1].DateTaken) {
			t.Errorf("results not ordered newest first")
		}
	}

	filtered, err := svc.List(ctx, 5, int64Ptr(10))
	if err != nil {
		t.Fatalf("List filtered: %v", err)
	}
	if len(filtered) != 2 {
		t.Errorf("expected 2 results for lecture 10, got %d", len(filtered))
	}

	none, err := svc.List(ctx, 6, nil)
	if err != nil || len(none) != 0 {
		t.Errorf("expected no results for another student, got %v %v", none, err)
	}
}

func TestSubmitQuizAttempt(t *testing.T) {
	svc, results := newQuizResultFixture()

	resp, err := svc.SubmitQuizAttempt(context.Background(), 5, 10, []models.Answer{
		{QuestionIndex: 0, Kind: models.QuestionMultiple, Selected: []int{1, 0}},
		{QuestionIndex: 1, Kind: models.QuestionText, Text: " Chan "},
		{QuestionIndex: 2, Kind: models.QuestionMultiple, Selected: []int{1}},
	})
	if err != nil {
		t.Fatalf("SubmitQuizAttempt: %v", err)
	}
	if resp.Correct != 2 || resp.Total != 3 {
		t.Errorf("graded %d/%d, want 2/3", resp.Correct, resp.Total)
	}
	stored := results.results[0]
	if stored.Score != 67 || stored.MaxScore != 100 || stored.StudentID != 5 {
		t.Errorf("unexpected stored attempt %+v", stored)
	}
}

func TestSubmitQuizAttemptNotAQuiz(t *testing.T) {
	svc, _ := newQuizResultFixture()

	_, err := svc.SubmitQuizAttempt(context.Background(), 5, 11, nil)
	if !errors.Is(err, apperrors.ErrBadRequest) {
		t.Errorf("expected bad request, got %v", err)
	}
}

func TestSubmitQuizAttemptUnknownLecture(t *testing.T) {
	svc, _ := newQuizResultFixture()

	_, err := svc.SubmitQuizAttempt(context.Background(), 5, 404, nil)
	if !errors.Is(err, apperrors.ErrResourceNotFound) {
		t.Errorf("expected not found, got %v", err)
	}
}
