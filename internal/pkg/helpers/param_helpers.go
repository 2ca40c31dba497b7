package helpers

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/yigit/learnhub/internal/pkg/apperrors"
)

// RequiredInt64Query reads a mandatory positive integer query parameter.
func RequiredInt64Query(c *gin.Context, name string) (int64, error) {
	raw := strings.TrimSpace(c.Query(name))
	if raw == "" {
		return 0, apperrors.NewValidationError(name, fmt.Sprintf("%s is required", name))
	}
	return parsePositive(name, raw)
}

// OptionalInt64Query reads an optional positive integer query parameter.
// A nil result means the parameter was absent.
func OptionalInt64Query(c *gin.Context, name string) (*int64, error) {
	raw := strings.TrimSpace(c.Query(name))
	if raw == "" {
		return nil, nil
	}
	v, err := parsePositive(name, raw)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

// Int64Param reads a positive integer path parameter.
func Int64Param(c *gin.Context, name string) (int64, error) {
	return parsePositive(name, c.Param(name))
}

func parsePositive(name, raw string) (int64, error) {
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || v <= 0 {
		return 0, apperrors.NewValidationError(name, fmt.Sprintf("%s must be a positive integer", name))
	}
	return v, nil
}
