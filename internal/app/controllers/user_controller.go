package controllers

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/yigit/learnhub/internal/app/auth"
	"github.com/yigit/learnhub/internal/app/models"
	"github.com/yigit/learnhub/internal/app/models/dto"
	"github.com/yigit/learnhub/internal/app/services"
	"github.com/yigit/learnhub/internal/middleware"
	"github.com/yigit/learnhub/internal/pkg/apperrors"
)

// EnrollmentManager manages course membership.
type EnrollmentManager interface {
	Enroll(ctx context.Context, userID, courseID int64) (*models.Enrollment, error)
	Unenroll(ctx context.Context, userID, courseID int64) error
	SyncEnrollmentsByEmail(ctx context.Context, email string, courseIDs []int64) (*models.User, error)
	UnenrollByEmail(ctx context.Context, email string, courseID int64) error
	GetUserWithEnrollments(ctx context.Context, email string) (*models.User, error)
}

// UserController handles user and enrollment operations
type UserController struct {
	enrollments EnrollmentManager
	users       services.UserService
}

// NewUserController creates a new UserController
func NewUserController(enrollments EnrollmentManager, users services.UserService) *UserController {
	return &UserController{enrollments: enrollments, users: users}
}

// authorizeEmail lets users act on their own record and staff on anyone's.
func authorizeEmail(ctx *gin.Context, email string) bool {
	_, role, ok := requireUser(ctx)
	if !ok {
		return false
	}
	own := strings.EqualFold(strings.TrimSpace(email), ctx.GetString(middleware.EmailKey))
	if !own && !auth.IsStaff(role) {
		middleware.HandleAPIError(ctx, apperrors.NewForbiddenError("You can only manage your own enrollments"))
		return false
	}
	return true
}

// GetUser returns a user with their enrollments
// @Summary Get user with enrollments
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param email path string true "User email"
// @Success 200 {object} dto.UserEnrollmentsResponse
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 404 {object} dto.ErrorResponse "User not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /users/{email} [get]
func (c *UserController) GetUser(ctx *gin.Context) {
	email := ctx.Param("email")
	if !authorizeEmail(ctx, email) {
		return
	}

	user, err := c.enrollments.GetUserWithEnrollments(ctx.Request.Context(), email)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewUserEnrollmentsResponse(user))
}

// UpdateEnrollments enrolls a user in every listed course
// @Summary Sync enrollments
// @Description Enrolls the user in each listed course. Existing enrollments are kept; the whole batch fails if any course is unknown.
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param email path string true "User email"
// @Param request body dto.UpdateEnrollmentsRequest true "Courses to enroll in"
// @Success 200 {object} dto.UserEnrollmentsResponse
// @Failure 400 {object} dto.ErrorResponse "Malformed body"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 404 {object} dto.ErrorResponse "User or course not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /users/{email} [put]
func (c *UserController) UpdateEnrollments(ctx *gin.Context) {
	email := ctx.Param("email")
	var req dto.UpdateEnrollmentsRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}
	if !authorizeEmail(ctx, email) {
		return
	}

	user, err := c.enrollments.SyncEnrollmentsByEmail(ctx.Request.Context(), email, req.CourseIDs())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewUserEnrollmentsResponse(user))
}

// DeleteEnrollment removes a user from a course
// @Summary Delete enrollment
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param email path string true "User email"
// @Param request body dto.DeleteEnrollmentRequest true "Course to leave"
// @Success 200 {object} dto.MessageResponse
// @Failure 400 {object} dto.ErrorResponse "Malformed body"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 404 {object} dto.ErrorResponse "User or enrollment not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /users/{email} [delete]
func (c *UserController) DeleteEnrollment(ctx *gin.Context) {
	email := ctx.Param("email")
	var req dto.DeleteEnrollmentRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}
	if !authorizeEmail(ctx, email) {
		return
	}

	if err := c.enrollments.UnenrollByEmail(ctx.Request.Context(), email, req.CourseID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Enrollment deleted"})
}

// ListTeachers returns every user with the teacher role
// @Summary List teachers
// @Tags users
// @Produce json
// @Success 200 {array} dto.TeacherResponse
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /teachers [get]
func (c *UserController) ListTeachers(ctx *gin.Context) {
	teachers, err := c.users.ListTeachers(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, teachers)
}

// EnrollSelf enrolls the caller in a course
// @Summary Enroll in a course
// @Tags courses
// @Produce json
// @Security BearerAuth
// @Param id path int true "Course ID"
// @Success 201 {object} dto.APIResponse{data=models.Enrollment}
// @Failure 400 {object} dto.ErrorResponse "Invalid course ID"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 404 {object} dto.ErrorResponse "Course not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /courses/{id}/enrollment [post]
func (c *UserController) EnrollSelf(ctx *gin.Context) {
	courseID, ok := pathID(ctx)
	if !ok {
		return
	}
	userID, _, ok := requireUser(ctx)
	if !ok {
		return
	}

	enrollment, err := c.enrollments.Enroll(ctx.Request.Context(), userID, courseID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(enrollment))
}

// UnenrollSelf removes the caller from a course
// @Summary Leave a course
// @Tags courses
// @Produce json
// @Security BearerAuth
// @Param id path int true "Course ID"
// @Success 200 {object} dto.APIResponse{data=dto.MessageResponse}
// @Failure 400 {object} dto.ErrorResponse "Invalid course ID"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 404 {object} dto.ErrorResponse "Not enrolled"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /courses/{id}/enrollment [delete]
func (c *UserController) UnenrollSelf(ctx *gin.Context) {
	courseID, ok := pathID(ctx)
	if !ok {
		return
	}
	userID, _, ok := requireUser(ctx)
	if !ok {
		return
	}

	if err := c.enrollments.Unenroll(ctx.Request.Context(), userID, courseID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.MessageResponse{Message: "Enrollment deleted"}))
}
