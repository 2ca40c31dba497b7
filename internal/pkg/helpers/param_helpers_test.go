package helpers

import (
	"errors"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/yigit/learnhub/internal/pkg/apperrors"
)

func contextWithQuery(query string) *gin.Context {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("GET", "/?"+query, nil)
	return c
}

func TestRequiredInt64Query(t *testing.T) {
	c := contextWithQuery("courseId=12")
	got, err := RequiredInt64Query(c, "courseId")
	if err != nil || got != 12 {
		t.Fatalf("got %d, %v", got, err)
	}

	for _, q := range []string{"", "courseId=", "courseId=abc", "courseId=-3", "courseId=0"} {
		_, err := RequiredInt64Query(contextWithQuery(q), "courseId")
		if !errors.Is(err, apperrors.ErrValidationFailed) {
			t.Errorf("query %q: expected validation error, got %v", q, err)
		}
		if apperrors.Field(err) != "courseId" {
			t.Errorf("query %q: field = %q", q, apperrors.Field(err))
		}
	}
}

func TestOptionalInt64Query(t *testing.T) {
	got, err := OptionalInt64Query(contextWithQuery("studentId=1"), "lectureId")
	if err != nil || got != nil {
		t.Fatalf("absent param: got %v, %v", got, err)
	}

	got, err = OptionalInt64Query(contextWithQuery("lectureId=7"), "lectureId")
	if err != nil || got == nil || *got != 7 {
		t.Fatalf("present param: got %v, %v", got, err)
	}

	if _, err := OptionalInt64Query(contextWithQuery("lectureId=x"), "lectureId"); err == nil {
		t.Fatal("expected error for malformed param")
	}
}

func TestParseDurationFallback(t *testing.T) {
	if d := ParseDuration("bogus", 3); d != 3 {
		t.Fatalf("got %v", d)
	}
	if d := ParseDuration("2s", 3); d.Seconds() != 2 {
		t.Fatalf("got %v", d)
	}
}
