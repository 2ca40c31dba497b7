package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/learnhub/internal/app/models"
	"github.com/yigit/learnhub/internal/app/models/dto"
	"github.com/yigit/learnhub/internal/pkg/apperrors"
	"github.com/yigit/learnhub/internal/pkg/auth"
)

// Context keys set by JWTAuth
const (
	UserIDKey = "userID"
	EmailKey  = "email"
	RoleKey   = "roleType"
)

// TokenValidator validates access tokens.
type TokenValidator interface {
	ValidateToken(tokenString string) (*auth.Claims, error)
}

// AuthMiddleware for authentication and authorization
type AuthMiddleware struct {
	jwtService TokenValidator
}

// NewAuthMiddleware creates a new AuthMiddleware
func NewAuthMiddleware(jwtService TokenValidator) *AuthMiddleware {
	return &AuthMiddleware{jwtService: jwtService}
}

// JWTAuth middleware for JWT token validation
func (m *AuthMiddleware) JWTAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			// Swagger UI sometimes sends the token as a query parameter
			authHeader = c.Query("token")
		}
		if authHeader == "" {
			abortWithError(c, http.StatusUnauthorized,
				dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required").
					WithDetails("Authorization header missing"))
			return
		}

		tokenString, err := auth.ExtractBearerToken(authHeader)
		if err != nil {
			abortWithError(c, http.StatusUnauthorized,
				dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required").
					WithDetails("Invalid token format"))
			return
		}

		claims, err := m.jwtService.ValidateToken(tokenString)
		if err != nil {
			code := dto.ErrorCodeInvalidToken
			details := "Invalid token"
			if errors.Is(err, apperrors.ErrTokenExpired) {
				code = dto.ErrorCodeExpiredToken
				details = "Token has expired"
			}
			abortWithError(c, http.StatusUnauthorized,
				dto.NewErrorDetail(code, "Authentication failed").WithDetails(details))
			return
		}

		c.Set(UserIDKey, claims.UserID)
		c.Set(EmailKey, claims.Email)
		c.Set(RoleKey, models.RoleType(claims.RoleType))

		c.Next()
	}
}

// RoleRequired lets the request through only for one of the given roles.
// It must run after JWTAuth.
func (m *AuthMiddleware) RoleRequired(roles ...models.RoleType) gin.HandlerFunc {
	return func(c *gin.Context) {
		_, role, ok := CurrentUser(c)
		if !ok {
			abortWithError(c, http.StatusUnauthorized,
				dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required").
					WithDetails("User role not found"))
			return
		}

		for _, allowed := range roles {
			if role == allowed {
				c.Next()
				return
			}
		}

		abortWithError(c, http.StatusForbidden,
			dto.NewErrorDetail(dto.ErrorCodeForbidden, "Access denied").
				WithDetails("You don't have sufficient permissions for this operation"))
	}
}

// CurrentUser returns the authenticated user id and role stored by JWTAuth.
func CurrentUser(c *gin.Context) (int64, models.RoleType, bool) {
	rawID, exists := c.Get(UserIDKey)
	if !exists {
		return 0, "", false
	}
	userID, ok := rawID.(int64)
	if !ok {
		return 0, "", false
	}
	role, _ := c.Get(RoleKey)
	roleType, _ := role.(models.RoleType)
	return userID, roleType, true
}
