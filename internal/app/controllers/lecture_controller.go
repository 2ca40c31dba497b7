package controllers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/learnhub/internal/app/models"
	"github.com/yigit/learnhub/internal/app/models/dto"
	"github.com/yigit/learnhub/internal/middleware"
	"github.com/yigit/learnhub/internal/pkg/helpers"
)

// LectureManager is the lecture CRUD surface.
type LectureManager interface {
	ListByCourse(ctx context.Context, courseID int64) ([]models.Lecture, error)
	Get(ctx context.Context, id int64) (*models.Lecture, error)
	Create(ctx context.Context, req *dto.CreateLectureRequest) (*models.Lecture, error)
	Update(ctx context.Context, lecture *models.Lecture, req *dto.UpdateLectureRequest) (*models.Lecture, error)
	Delete(ctx context.Context, lecture *models.Lecture) error
}

// QuizGrader grades a quiz submission and records it.
type QuizGrader interface {
	SubmitQuizAttempt(ctx context.Context, studentID, lectureID int64, answers []models.Answer) (*dto.QuizAttemptResponse, error)
}

// LectureController handles lecture operations
type LectureController struct {
	lectures LectureManager
	grader   QuizGrader
	authz    CourseAuthorizer
}

// NewLectureController creates a new LectureController
func NewLectureController(lectures LectureManager, grader QuizGrader, authz CourseAuthorizer) *LectureController {
	return &LectureController{lectures: lectures, grader: grader, authz: authz}
}

// ListLectures returns a course's lectures
// @Summary List lectures of a course
// @Description Ordered by the lecture order field
// @Tags lectures
// @Produce json
// @Security BearerAuth
// @Param courseId query int true "Course ID"
// @Success 200 {object} dto.APIResponse{data=[]models.Lecture}
// @Failure 400 {object} dto.ErrorResponse "Missing or invalid courseId"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /lectures [get]
func (c *LectureController) ListLectures(ctx *gin.Context) {
	courseID, err := helpers.RequiredInt64Query(ctx, "courseId")
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	lectures, err := c.lectures.ListByCourse(ctx.Request.Context(), courseID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(lectures))
}

// GetLecture returns one lecture
// @Summary Get lecture by ID
// @Tags lectures
// @Produce json
// @Security BearerAuth
// @Param id path int true "Lecture ID"
// @Success 200 {object} dto.APIResponse{data=models.Lecture}
// @Failure 400 {object} dto.ErrorResponse "Invalid lecture ID"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 404 {object} dto.ErrorResponse "Lecture not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /lectures/{id} [get]
func (c *LectureController) GetLecture(ctx *gin.Context) {
	id, ok := pathID(ctx)
	if !ok {
		return
	}

	lecture, err := c.lectures.Get(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(lecture))
}

// CreateLecture handles lecture creation
// @Summary Create a lecture
// @Tags lectures
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateLectureRequest true "Lecture information"
// @Success 201 {object} dto.APIResponse{data=models.Lecture}
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 403 {object} dto.ErrorResponse "Only the course teacher or an admin"
// @Failure 404 {object} dto.ErrorResponse "Course not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /lectures [post]
func (c *LectureController) CreateLecture(ctx *gin.Context) {
	var req dto.CreateLectureRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}
	if !c.authorize(ctx, req.CourseID) {
		return
	}

	lecture, err := c.lectures.Create(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(lecture))
}

// UpdateLecture handles partial lecture updates
// @Summary Update a lecture
// @Tags lectures
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Lecture ID"
// @Param request body dto.UpdateLectureRequest true "Fields to change"
// @Success 200 {object} dto.APIResponse{data=models.Lecture}
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 403 {object} dto.ErrorResponse "Only the course teacher or an admin"
// @Failure 404 {object} dto.ErrorResponse "Lecture not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /lectures/{id} [put]
func (c *LectureController) UpdateLecture(ctx *gin.Context) {
	var req dto.UpdateLectureRequest
	lecture, ok := c.loadForManagement(ctx, &req)
	if !ok {
		return
	}

	updated, err := c.lectures.Update(ctx.Request.Context(), lecture, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(updated))
}

// DeleteLecture removes a lecture
// @Summary Delete a lecture
// @Tags lectures
// @Produce json
// @Security BearerAuth
// @Param id path int true "Lecture ID"
// @Success 200 {object} dto.APIResponse{data=dto.MessageResponse}
// @Failure 400 {object} dto.ErrorResponse "Invalid lecture ID"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 403 {object} dto.ErrorResponse "Only the course teacher or an admin"
// @Failure 404 {object} dto.ErrorResponse "Lecture not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /lectures/{id} [delete]
func (c *LectureController) DeleteLecture(ctx *gin.Context) {
	lecture, ok := c.loadForManagement(ctx, nil)
	if !ok {
		return
	}

	if err := c.lectures.Delete(ctx.Request.Context(), lecture); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.MessageResponse{Message: "Lecture deleted"}))
}

// SubmitAttempt grades the caller's answers to a quiz lecture
// @Summary Submit a quiz attempt
// @Description Grades the answers on the server and records the percentage as a quiz result
// @Tags lectures
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Lecture ID"
// @Param request body dto.SubmitAnswersRequest true "Answers"
// @Success 201 {object} dto.APIResponse{data=dto.QuizAttemptResponse}
// @Failure 400 {object} dto.ErrorResponse "Malformed answers or lecture is not a quiz"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 404 {object} dto.ErrorResponse "Lecture not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /lectures/{id}/attempts [post]
func (c *LectureController) SubmitAttempt(ctx *gin.Context) {
	lectureID, ok := pathID(ctx)
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

	attempt, err := c.grader.SubmitQuizAttempt(ctx.Request.Context(), userID, lectureID, req.Answers)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(attempt))
}

// loadForManagement resolves the :id lecture, binds body when given and
// checks that the caller manages the lecture's course.
func (c *LectureController) loadForManagement(ctx *gin.Context, body interface{}) (*models.Lecture, bool) {
	id, ok := pathID(ctx)
	if !ok {
		return nil, false
	}
	if body != nil && !middleware.BindJSON(ctx, body) {
		return nil, false
	}

	lecture, err := c.lectures.Get(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return nil, false
	}
	if !c.authorize(ctx, lecture.CourseID) {
		return nil, false
	}
	return lecture, true
}

func (c *LectureController) authorize(ctx *gin.Context, courseID int64) bool {
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
