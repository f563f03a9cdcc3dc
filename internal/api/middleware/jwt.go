package middleware

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/linskybing/staffing-go/internal/config"
	"github.com/linskybing/staffing-go/internal/domain/owner"
	"github.com/linskybing/staffing-go/pkg/response"
	"github.com/linskybing/staffing-go/pkg/types"
)

const tokenCookie = "token"

var (
	jwtKey    []byte
	jwtIssuer string

	errNoToken        = errors.New("Authorization required (header or cookie)")
	errBadAuthHeader  = errors.New("Authorization header format must be Bearer {token}")
	errNoOwnerInToken = errors.New("token does not name an owner")
)

// Init reads the signing key and expected issuer from config.
func Init() {
	jwtKey = []byte(config.JwtSecret)
	jwtIssuer = config.Issuer
}

// GenerateToken issues a signed token for an owner. Tokens are normally
// issued by the identity service; this is used by tooling and tests.
var GenerateToken = func(ownerID string, role owner.Kind, username string, expireDuration time.Duration) (string, error) {
	now := time.Now()
	claims := &types.Claims{
		OwnerID:  ownerID,
		Role:     role,
		Username: username,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(expireDuration)),
			IssuedAt:  jwt.NewNumericDate(now),
			Issuer:    jwtIssuer,
		},
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(jwtKey)
}

// ParseToken verifies an HS256 token and returns its claims. When an issuer
// is configured the token must carry it.
func ParseToken(tokenStr string) (*types.Claims, error) {
	opts := []jwt.ParserOption{jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()})}
	if jwtIssuer != "" {
		opts = append(opts, jwt.WithIssuer(jwtIssuer))
	}

	claims := &types.Claims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(*jwt.Token) (interface{}, error) {
		return jwtKey, nil
	}, opts...)
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, jwt.ErrTokenInvalidClaims
	}
	return claims, nil
}

// tokenFromRequest prefers the Authorization header and falls back to the
// token cookie.
func tokenFromRequest(c *gin.Context) (string, error) {
	if header := c.GetHeader("Authorization"); header != "" {
		scheme, token, found := strings.Cut(header, " ")
		if !found || scheme != "Bearer" || token == "" {
			return "", errBadAuthHeader
		}
		return token, nil
	}
	if cookie, err := c.Cookie(tokenCookie); err == nil && cookie != "" {
		return cookie, nil
	}
	return "", errNoToken
}

// JWTAuthMiddleware stores the caller's *types.Claims under "claims".
func JWTAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenStr, err := tokenFromRequest(c)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, response.ErrorResponse{Error: err.Error()})
			return
		}

		claims, err := ParseToken(tokenStr)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Invalid token: " + err.Error()})
			return
		}
		if !claims.Role.Valid() || claims.OwnerID == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, response.ErrorResponse{Error: errNoOwnerInToken.Error()})
			return
		}

		c.Set("claims", claims)
		c.Next()
	}
}
