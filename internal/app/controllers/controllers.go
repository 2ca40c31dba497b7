// Package controllers handles HTTP request handling
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

// CourseAuthorizer checks course level permissions.
type CourseAuthorizer interface {
	ValidateCourseOwnership(ctx context.Context, courseID, userID int64, role models.RoleType) error
	ValidateStudentStatisticsAccess(ctx context.Context, courseID, studentID, userID int64, role models.RoleType) error
}

// requireUser returns the authenticated caller or answers 401.
func requireUser(ctx *gin.Context) (int64, models.RoleType, bool) {
	userID, role, ok := middleware.CurrentUser(ctx)
	if !ok {
		ctx.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")))
		return 0, "", false
	}
	return userID, role, true
}

// pathID reads the :id path parameter or answers 400.
func pathID(ctx *gin.Context) (int64, bool) {
	id, err := helpers.Int64Param(ctx, "id")
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return 0, false
	}
	return id, true
}
