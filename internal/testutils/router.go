package testutils

import (
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/linskybing/staffing-go/internal/api/middleware"
	"github.com/linskybing/staffing-go/internal/api/routes"
	"github.com/linskybing/staffing-go/internal/application"
	"github.com/linskybing/staffing-go/internal/config"
	"github.com/linskybing/staffing-go/internal/domain/owner"
)

const TestJWTSecret = "test-secret"

// SetupRouter mounts the HTTP surface on services with a fixed signing key.
func SetupRouter(services *application.Services) *gin.Engine {
	gin.SetMode(gin.TestMode)
	config.JwtSecret = TestJWTSecret
	middleware.Init()

	r := gin.New()
	routes.Mount(r, services)
	return r
}

// Token issues a bearer token for the owner or fails the test.
func Token(t *testing.T, kind owner.Kind, ownerID string) string {
	t.Helper()
	token, err := middleware.GenerateToken(ownerID, kind, string(kind)+"-user", time.Hour)
	if err != nil {
		t.Fatalf("generate token: %v", err)
	}
	return token
}
