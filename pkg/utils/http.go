package utils

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

var (
	ErrEmptyParameter = errors.New("empty parameter")
	ErrInvalidID      = errors.New("invalid id")
)

// ParseUUIDParam returns the named path parameter in canonical UUID form.
func ParseUUIDParam(c *gin.Context, param string) (string, error) {
	raw := c.Param(param)
	if raw == "" {
		return "", ErrEmptyParameter
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return "", ErrInvalidID
	}
	return id.String(), nil
}
