package controllers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/learnhub/internal/app/models"
	"github.com/yigit/learnhub/internal/app/models/dto"
	"github.com/yigit/learnhub/internal/middleware"
)

// CourseManager is the course CRUD surface.
type CourseManager interface {
	List(ctx context.Context) ([]models.Course, error)
	Get(ctx context.Context, id int64) (*models.Course, error)
	Create(ctx context.Context, req *dto.CreateCourseRequest, callerID int64, callerRole models.RoleType) (*models.Course, error)
	Update(ctx context.Context, id int64, req *dto.UpdateCourseRequest) (*models.Course, error)
	Delete(ctx context.Context, id int64) error
}

// CourseController handles course operations
type CourseController struct {
	courses CourseManager
	authz   CourseAuthorizer
}

// NewCourseController creates a new CourseController
func NewCourseController(courses CourseManager, authz CourseAuthorizer) *CourseController {
	return &CourseController{courses: courses, authz: authz}
}

// ListCourses returns every course
// @Summary List courses
// @Description Newest first, each with a teacher summary
// @Tags courses
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]models.Course}
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /courses [get]
func (c *CourseController) ListCourses(ctx *gin.Context) {
	courses, err := c.courses.List(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(courses))
}

// GetCourse returns one course
// @Summary Get course by ID
// @Tags courses
// @Produce json
// @Param id path int true "Course ID"
// @Success 200 {object} dto.APIResponse{data=models.Course}
// @Failure 400 {object} dto.ErrorResponse "Invalid course ID"
// @Failure 404 {object} dto.ErrorResponse "Course not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /courses/{id} [get]
func (c *CourseController) GetCourse(ctx *gin.Context) {
	id, ok := pathID(ctx)
	if !ok {
		return
	}

	course, err := c.courses.Get(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(course))
}

// CreateCourse handles course creation
// @Summary Create a course
// @Description teacherId defaults to the caller; only admins may set another teacher
// @Tags courses
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateCourseRequest true "Course information"
// @Success 201 {object} dto.APIResponse{data=models.Course}
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 403 {object} dto.ErrorResponse "Forbidden - User does not have permission"
// @Failure 404 {object} dto.ErrorResponse "Teacher not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /courses [post]
func (c *CourseController) CreateCourse(ctx *gin.Context) {
	var req dto.CreateCourseRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}
	userID, role, ok := requireUser(ctx)
	if !ok {
		return
	}

	course, err := c.courses.Create(ctx.Request.Context(), &req, userID, role)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(course))
}

// UpdateCourse handles partial course updates
// @Summary Update a course
// @Tags courses
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Course ID"
// @Param request body dto.UpdateCourseRequest true "Fields to change"
// @Success 200 {object} dto.APIResponse{data=models.Course}
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 403 {object} dto.ErrorResponse "Only the course teacher or an admin"
// @Failure 404 {object} dto.ErrorResponse "Course not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /courses/{id} [put]
func (c *CourseController) UpdateCourse(ctx *gin.Context) {
	id, ok := pathID(ctx)
	if !ok {
		return
	}
	var req dto.UpdateCourseRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}
	if !c.authorize(ctx, id) {
		return
	}

	course, err := c.courses.Update(ctx.Request.Context(), id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(course))
}

// DeleteCourse removes a course with its lectures, enrollments and results
// @Summary Delete a course
// @Tags courses
// @Produce json
// @Security BearerAuth
// @Param id path int true "Course ID"
// @Success 200 {object} dto.APIResponse{data=dto.MessageResponse}
// @Failure 400 {object} dto.ErrorResponse "Invalid course ID"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 403 {object} dto.ErrorResponse "Only the course teacher or an admin"
// @Failure 404 {object} dto.ErrorResponse "Course not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /courses/{id} [delete]
func (c *CourseController) DeleteCourse(ctx *gin.Context) {
	id, ok := pathID(ctx)
	if !ok {
		return
	}
	if !c.authorize(ctx, id) {
		return
	}

	if err := c.courses.Delete(ctx.Request.Context(), id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.MessageResponse{Message: "Course deleted"}))
}

func (c *CourseController) authorize(ctx *gin.Context, courseID int64) bool {
	userID, role, ok := requireUser(ctx)
	if !ok {
		return false
	}
	if err := c.authz.ValidateCourseOwnership(ctx.Request.Context(), courseID, userID, role); err != nil {
		middleware.HandleAPIError(ctx, err)
		return false
	}
	return true
}
