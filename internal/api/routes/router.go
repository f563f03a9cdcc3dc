package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/linskybing/staffing-go/internal/api/handlers"
	"github.com/linskybing/staffing-go/internal/api/middleware"
	"github.com/linskybing/staffing-go/internal/application"
	"github.com/linskybing/staffing-go/internal/config"
	"github.com/linskybing/staffing-go/internal/cron"
	"github.com/linskybing/staffing-go/internal/domain/owner"
	"github.com/linskybing/staffing-go/internal/repository"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	_ "github.com/linskybing/staffing-go/docs"
)

// RegisterRoutes builds the repositories and services on gormDB, starts the
// background tasks and mounts every endpoint. archive may be nil.
func RegisterRoutes(r *gin.Engine, gormDB *gorm.DB, archive application.FormArchiver) {
	repos_instance := repository.New(gormDB)
	services_instance := application.New(repos_instance, archive)

	// Start background tasks
	cron.StartCleanupTask(services_instance.Audit, config.AuditRetentionDays)
	cron.StartReconcileTask(services_instance.Linker, config.ReconcileInterval)

	Mount(r, services_instance)
}

// Mount registers the HTTP surface for already built services.
func Mount(r *gin.Engine, services_instance *application.Services) {
	handlers_instance := handlers.New(services_instance, r)

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	auth := r.Group("/")
	auth.Use(middleware.JWTAuthMiddleware())
	{
		forms := auth.Group("/forms")
		{
			forms.POST("", middleware.RequireRole(owner.KindAgency, owner.KindBusiness), handlers_instance.Form.CreateForm)
			forms.GET("", handlers_instance.Form.SearchForms)
			forms.GET("/mine", handlers_instance.Form.GetMyForms)
			forms.GET("/:id", handlers_instance.Form.GetFormByID)
			forms.GET("/:id/export", handlers_instance.Form.ExportForm)
			forms.GET("/:id/history", handlers_instance.Audit.GetFormHistory)
			forms.PUT("/:id", handlers_instance.Form.ReplaceForm)
			forms.PATCH("/:id", handlers_instance.Form.PatchForm)
			forms.DELETE("/:id", handlers_instance.Form.DeleteForm)
			forms.DELETE("/:id/:ownerId", handlers_instance.Form.DeleteForm)
		}

		audit := auth.Group("/audit/logs")
		{
			audit.GET("", handlers_instance.Audit.GetAuditLogs)
		}
	}
}
