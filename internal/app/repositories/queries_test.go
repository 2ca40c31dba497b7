package repositories

import (
	"context"
	"strings"
	"testing"

	"github.com/Masterminds/squirrel"
	"github.com/yigit/learnhub/internal/app/models"
	"github.com/yigit/learnhub/internal/db"
)

func assertContains(t *testing.T, sql string, parts ...string) {
	t.Helper()
	for _, p := range parts {
		if !strings.Contains(sql, p) {
			t.Errorf("query %q does not contain %q", sql, p)
		}
	}
}

func TestEnrollmentUpsertQuery(t *testing.T) {
	r := NewEnrollmentRepository(&db.PostgresDB{})

	sql, args, err := r.upsertQuery(5, 7)
	if err != nil {
		t.Fatalf("upsertQuery: %v", err)
	}
	assertContains(t, sql,
		"INSERT INTO enrollments (user_id,course_id) VALUES ($1,$2)",
		"ON CONFLICT (user_id, course_id) DO UPDATE",
		"RETURNING user_id, course_id, enrolled_at",
	)
	if len(args) != 2 || args[0] != int64(5) || args[1] != int64(7) {
		t.Errorf("unexpected args %v", args)
	}
}

func TestEnrollmentDeleteQuery(t *testing.T) {
	r := NewEnrollmentRepository(&db.PostgresDB{})

	sql, args, err := r.deleteQuery(5, 7)
	if err != nil {
		t.Fatalf("deleteQuery: %v", err)
	}
	assertContains(t, sql, "DELETE FROM enrollments WHERE", "course_id = $", "user_id = $")
	if len(args) != 2 {
		t.Errorf("expected 2 args, got %v", args)
	}
}

func TestLectureListQuery(t *testing.T) {
	r := NewLectureRepository(nil)

	t.Run("all lectures", func(t *testing.T) {
		sql, args, err := r.listQuery(3, "")
		if err != nil {
			t.Fatalf("listQuery: %v", err)
		}
		assertContains(t, sql, `"order"`, "FROM lectures WHERE course_id = $1", `ORDER BY "order" ASC, id ASC`)
		if len(args) != 1 {
			t.Errorf("expected 1 arg, got %v", args)
		}
	})

	t.Run("quizzes only", func(t *testing.T) {
		sql, args, err := r.listQuery(3, models.LectureQuiz)
		if err != nil {
			t.Fatalf("listQuery: %v", err)
		}
		assertContains(t, sql, "type = $")
		if len(args) != 2 {
			t.Errorf("expected 2 args, got %v", args)
		}
	})
}

func TestQuizResultListQuery(t *testing.T) {
	r := NewQuizResultRepository(nil)

	sql, args, err := r.listQuery(squirrel.Eq{"lecture_id": []int64{1, 2, 3}})
	if err != nil {
		t.Fatalf("listQuery: %v", err)
	}
	assertContains(t, sql, "FROM quiz_results WHERE lecture_id IN ($1,$2,$3)", "ORDER BY date_taken DESC, id DESC")
	if len(args) != 3 {
		t.Errorf("expected 3 args, got %v", args)
	}
}

func TestQuizResultListByLecturesEmpty(t *testing.T) {
	// no pool: an empty id list must not reach the database
	r := NewQuizResultRepository(nil)

	results, err := r.ListByLectures(context.Background(), nil)
	if err != nil {
		t.Fatalf("ListByLectures: %v", err)
	}
	if results == nil || len(results) != 0 {
		t.Errorf("expected empty non-nil slice, got %#v", results)
	}
}

func TestJSONBParam(t *testing.T) {
	v, err := jsonbParam[models.Answer](nil)
	if err != nil || v != nil {
		t.Fatalf("nil slice: got %v, %v", v, err)
	}

	v, err = jsonbParam([]models.Answer{{QuestionIndex: 0, Kind: models.QuestionText, Text: "go"}})
	if err != nil {
		t.Fatalf("jsonbParam: %v", err)
	}
	s, ok := v.(string)
	if !ok {
		t.Fatalf("expected string, got %T", v)
	}
	assertContains(t, s, `"questionIndex":0`, `"type":"text"`, `"text":"go"`)
}
