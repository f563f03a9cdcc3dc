package utils

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/linskybing/staffing-go/internal/domain/owner"
	"github.com/linskybing/staffing-go/pkg/types"
)

var GetClaimsFromContext = func(c *gin.Context) (*types.Claims, error) {
	claimsVal, exists := c.Get("claims")
	if !exists {
		return nil, errors.New("user claims not found in context")
	}

	claims, ok := claimsVal.(*types.Claims)
	if !ok {
		return nil, errors.New("invalid user claims type")
	}

	return claims, nil
}

var GetPrincipalFromContext = func(c *gin.Context) (owner.Principal, error) {
	claims, err := GetClaimsFromContext(c)
	if err != nil {
		return owner.Principal{}, err
	}
	return claims.Principal(), nil
}
