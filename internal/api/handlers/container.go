package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/linskybing/staffing-go/internal/application"
)

type Handlers struct {
	Audit  *AuditHandler
	Form   *FormHandler
	Router *gin.Engine
}

func New(svc *application.Services, router *gin.Engine) *Handlers {
	h := &Handlers{
		Audit:  NewAuditHandler(svc.Audit),
		Form:   NewFormHandler(svc.Form),
		Router: router,
	}
	return h
}
