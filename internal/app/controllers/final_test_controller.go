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

// FinalTestManager manages a course's final test and its attempts.
type FinalTestManager interface {
	Get(ctx context.Context, courseID int64) (*models.FinalTest, error)
	Save(ctx context.Context, courseID int64, req *dto.UpsertFinalTestRequest) (*models.FinalTest, error)
	Submit(ctx context.Context, courseID, studentID int64, answers []models.Answer) (*dto.QuizAttemptResponse, error)
	Results(ctx context.Context, courseID int64, studentID *int64) ([]models.TestResult, error)
}

// FinalTestController handles final test operations
type FinalTestController struct {
	tests FinalTestManager
	authz CourseAuthorizer
}

// NewFinalTestController creates a new FinalTestController
func NewFinalTestController(tests FinalTestManager, authz CourseAuthorizer) *FinalTestController {
	return &FinalTestController{tests: tests, authz: authz}
}

// GetFinalTest returns the course's final test
// @Summary Get final test
// @Tags final-tests
// @Produce json
// @Security BearerAuth
// @Param id path int true "Course ID"
// @Success 200 {object} dto.APIResponse{data=models.FinalTest}
// @Failure 400 {object} dto.ErrorResponse "Invalid course ID"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 404 {object} dto.ErrorResponse "Final test not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /courses/{id}/final-test [get]
func (c *FinalTestController) GetFinalTest(ctx *gin.Context) {
	courseID, ok := pathID(ctx)
	if !ok {
		return
	}

	test, err := c.tests.Get(ctx.Request.Context(), courseID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(test))
}

// SaveFinalTest creates or replaces the course's final test
// @Summary Create or replace final test
// @Tags final-tests
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Course ID"
// @Param request body dto.UpsertFinalTestRequest true "Final test"
// @Success 200 {object} dto.APIResponse{data=models.FinalTest}
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 403 {object} dto.ErrorResponse "Only the course teacher or an admin"
// @Failure 404 {object} dto.ErrorResponse "Course not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /courses/{id}/final-test [put]
func (c *FinalTestController) SaveFinalTest(ctx *gin.Context) {
	courseID, ok := pathID(ctx)
	if !ok {
		return
	}
	var req dto.UpsertFinalTestRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}
	userID, role, ok := requireUser(ctx)
	if !ok {
		return
	}
	if err := c.authz.ValidateCourseOwnership(ctx.Request.Context(), courseID, userID, role); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	test, err := c.tests.Save(ctx.Request.Context(), courseID, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(test))
}

// SubmitFinalTest grades the caller's answers
// @Summary Submit final test answers
// @Tags final-tests
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Course ID"
// @Param request body dto.SubmitAnswersRequest true "Answers"
// @Success 201 {object} dto.APIResponse{data=dto.QuizAttemptResponse}
// @Failure 400 {object} dto.ErrorResponse "Malformed answers"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 404 {object} dto.ErrorResponse "Final test not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /courses/{id}/final-test/results [post]
func (c *FinalTestController) SubmitFinalTest(ctx *gin.Context) {
	courseID, ok := pathID(ctx)
	if !ok {
		return
	}
	var req dto.SubmitAnswersRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}
	userID, _, ok := requireUser(ctx)
	if !ok {
		return
	}

	attempt, err := c.tests.Submit(ctx.Request.Context(), courseID, userID, req.Answers)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(attempt))
}

// ListFinalTestResults returns final test attempts, newest first
// @Summary List final test results
// @Description Students only see their own attempts; the course teacher and admins may see everyone's
// @Tags final-tests
// @Produce json
// @Security BearerAuth
// @Param id path int true "Course ID"
// @Param studentId query int false "Student ID"
// @Success 200 {object} dto.APIResponse{data=[]models.TestResult}
// @Failure 400 {object} dto.ErrorResponse "Invalid parameter"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 404 {object} dto.ErrorResponse "Course not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /courses/{id}/final-test/results [get]
func (c *FinalTestController) ListFinalTestResults(ctx *gin.Context) {
	courseID, ok := pathID(ctx)
	if !ok {
		return
	}
	studentID, err := helpers.OptionalInt64Query(ctx, "studentId")
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	userID, role, ok := requireUser(ctx)
	if !ok {
		return
	}

	if !auth.IsStaff(role) {
		if studentID == nil {
			studentID = &userID
		}
		if err := auth.ValidateSelfOrStaff(*studentID, userID, role); err != nil {
			middleware.HandleAPIError(ctx, err)
			return
		}
	} else if err := c.authz.ValidateCourseOwnership(ctx.Request.Context(), courseID, userID, role); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	results, err := c.tests.Results(ctx.Request.Context(), courseID, studentID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(results))
}
