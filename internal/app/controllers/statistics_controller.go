package controllers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/learnhub/internal/app/models/dto"
	"github.com/yigit/learnhub/internal/middleware"
	"github.com/yigit/learnhub/internal/pkg/helpers"
)

// StatisticsProvider builds the course dashboards.
type StatisticsProvider interface {
	StudentStatistics(ctx context.Context, courseID, studentID int64) (*dto.StudentStatistics, error)
	TeacherStatistics(ctx context.Context, courseID int64) (*dto.TeacherStatistics, error)
}

// StatisticsController serves the student and teacher dashboards
type StatisticsController struct {
	statistics StatisticsProvider
	authz      CourseAuthorizer
}

// NewStatisticsController creates a new StatisticsController
func NewStatisticsController(statistics StatisticsProvider, authz CourseAuthorizer) *StatisticsController {
	return &StatisticsController{statistics: statistics, authz: authz}
}

// StudentStatistics returns one student's quiz statistics for a course
// @Summary Student statistics
// @Description Per-quiz latest scores, course averages and the student's attempt history. Readable by the student, the course teacher and admins.
// @Tags statistics
// @Produce json
// @Security BearerAuth
// @Param courseId query int true "Course ID"
// @Param studentId query int true "Student ID"
// @Success 200 {object} dto.StudentStatistics
// @Failure 400 {object} dto.ErrorResponse "Missing or invalid query parameter"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 404 {object} dto.ErrorResponse "Course not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /statistics/student [get]
func (c *StatisticsController) StudentStatistics(ctx *gin.Context) {
	courseID, err := helpers.RequiredInt64Query(ctx, "courseId")
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	studentID, err := helpers.RequiredInt64Query(ctx, "studentId")
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	userID, role, ok := requireUser(ctx)
	if !ok {
		return
	}
	if err := c.authz.ValidateStudentStatisticsAccess(ctx.Request.Context(), courseID, studentID, userID, role); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	stats, err := c.statistics.StudentStatistics(ctx.Request.Context(), courseID, studentID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, stats)
}

// TeacherStatistics returns the cohort statistics for a course
// @Summary Teacher statistics
// @Description Enrollment count, attempt count, average score, score distribution and per-quiz averages
// @Tags statistics
// @Produce json
// @Security BearerAuth
// @Param courseId query int true "Course ID"
// @Success 200 {object} dto.TeacherStatistics
// @Failure 400 {object} dto.ErrorResponse "Missing or invalid courseId"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 403 {object} dto.ErrorResponse "Only the course teacher or an admin"
// @Failure 404 {object} dto.ErrorResponse "Course not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /statistics/teacher [get]
func (c *StatisticsController) TeacherStatistics(ctx *gin.Context) {
	courseID, err := helpers.RequiredInt64Query(ctx, "courseId")
	if err != nil {
		middleware.HandleAPIError(ctx, err)
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

	stats, err := c.statistics.TeacherStatistics(ctx.Request.Context(), courseID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, stats)
}
