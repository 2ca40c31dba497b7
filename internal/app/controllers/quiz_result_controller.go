package controllers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/learnhub/internal/app/auth"
	"github.com/yigit/learnhub/internal/app/models"
	"github.com/yigit/learnhub/internal/app/models/dto"
	"github.com/yigit/learnhub/internal/middleware"
	"github.com/yigit/learnhub/internal/pkg/helpers"
)

// QuizResultRecorder stores and lists quiz attempts.
type QuizResultRecorder interface {
	Record(ctx context.Context, req *dto.CreateQuizResultRequest) (*models.QuizResult, error)
	List(ctx context.Context, studentID int64, lectureID *int64) ([]models.QuizResult, error)
}

// QuizResultController handles quiz result operations
type QuizResultController struct {
	results QuizResultRecorder
}

// NewQuizResultController creates a new QuizResultController
func NewQuizResultController(results QuizResultRecorder) *QuizResultController {
	return &QuizResultController{results: results}
}

// CreateQuizResult records a client-graded quiz attempt
// @Summary Record a quiz result
// @Description Stores the attempt as submitted. maxScore defaults to 0 and answers to null.
// @Tags quiz-results
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateQuizResultRequest true "Quiz result"
// @Success 201 {object} models.QuizResult
// @Failure 400 {object} dto.ErrorResponse "Missing studentId, lectureId or score"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 403 {object} dto.ErrorResponse "Students can only record their own results"
// @Failure 404 {object} dto.ErrorResponse "Student or lecture not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /quiz-results [post]
func (c *QuizResultController) CreateQuizResult(ctx *gin.Context) {
	var req dto.CreateQuizResultRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}
	userID, role, ok := requireUser(ctx)
	if !ok {
		return
	}
	if req.StudentID != nil {
		if err := auth.ValidateSelfOrStaff(*req.StudentID, userID, role); err != nil {
			middleware.HandleAPIError(ctx, err)
			return
		}
	}

	result, err := c.results.Record(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, result)
}

// ListQuizResults returns a student's quiz attempts
// @Summary List quiz results
// @Description Newest first, optionally for a single lecture
// @Tags quiz-results
// @Produce json
// @Security BearerAuth
// @Param studentId query int true "Student ID"
// @Param lectureId query int false "Lecture ID"
// @Success 200 {array} models.QuizResult
// @Failure 400 {object} dto.ErrorResponse "Missing or invalid studentId"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 403 {object} dto.ErrorResponse "Students can only read their own results"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /quiz-results [get]
func (c *QuizResultController) ListQuizResults(ctx *gin.Context) {
	studentID, err := helpers.RequiredInt64Query(ctx, "studentId")
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	lectureID, err := helpers.OptionalInt64Query(ctx, "lectureId")
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	userID, role, ok := requireUser(ctx)
	if !ok {
		return
	}
	if err := auth.ValidateSelfOrStaff(studentID, userID, role); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	results, err := c.results.List(ctx.Request.Context(), studentID, lectureID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, results)
}
