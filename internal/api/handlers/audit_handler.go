package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/linskybing/staffing-go/internal/application"
	"github.com/linskybing/staffing-go/internal/repository"
	"github.com/linskybing/staffing-go/pkg/response"
	"github.com/linskybing/staffing-go/pkg/utils"
)

type AuditHandler struct {
	svc *application.AuditService
}

func NewAuditHandler(svc *application.AuditService) *AuditHandler {
	return &AuditHandler{svc: svc}
}

// GetAuditLogs godoc
// @Summary      Query the caller's audit logs
// @Description  Entries written by the calling owner, newest first, filtered by resource, action and time range.
// @Tags         audit
// @Security     BearerAuth
// @Produce      json
// @Param        resource_type query     string   false  "Resource type to filter" example("form")
// @Param        resource_id   query     string   false  "Resource ID to filter"
// @Param        action        query     string   false  "Action type to filter" example("create")
// @Param        start_time    query     string   false  "Start time in RFC3339 format" example("2023-01-01T00:00:00Z")
// @Param        end_time      query     string   false  "End time in RFC3339 format" example("2023-02-01T00:00:00Z")
// @Param        limit         query     int      false  "Max number of records (default 100, max 1000)" example(100)
// @Param        offset        query     int      false  "Offset for pagination" example(0)
// @Success      200 {array}   audit.AuditLog         "List of audit logs"
// @Failure      400 {object}  response.ErrorResponse "Invalid query parameters"
// @Failure      500 {object}  response.ErrorResponse "Internal server error"
// @Router       /audit/logs [get]
func (h *AuditHandler) GetAuditLogs(c *gin.Context) {
	principal, err := utils.GetPrincipalFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unauthorized"})
		return
	}

	filter, ok := bindAuditFilter(c)
	if !ok {
		return
	}

	logs, err := h.svc.OwnerLogs(principal, filter)
	if err != nil {
		writeFormError(c, err)
		return
	}
	c.JSON(http.StatusOK, logs)
}

// GetFormHistory godoc
// @Summary      Change history of a form
// @Description  Every recorded create, update and delete of a form the caller holds.
// @Tags         audit
// @Security     BearerAuth
// @Produce      json
// @Param        id  path      string  true  "Form ID"
// @Success      200 {array}   audit.AuditLog
// @Failure      400 {object}  response.ErrorResponse "Invalid ID"
// @Failure      403 {object}  response.ErrorResponse "Caller does not hold the form"
// @Failure      500 {object}  response.ErrorResponse "Internal server error"
// @Router       /forms/{id}/history [get]
func (h *AuditHandler) GetFormHistory(c *gin.Context) {
	id, ok := formIDParam(c)
	if !ok {
		return
	}
	principal, err := utils.GetPrincipalFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unauthorized"})
		return
	}

	logs, err := h.svc.FormHistory(principal, id)
	if err != nil {
		writeFormError(c, err)
		return
	}
	c.JSON(http.StatusOK, logs)
}

func bindAuditFilter(c *gin.Context) (repository.AuditFilter, bool) {
	var filter repository.AuditFilter

	if rt := c.Query("resource_type"); rt != "" {
		filter.ResourceType = &rt
	}
	if rid := c.Query("resource_id"); rid != "" {
		filter.ResourceID = &rid
	}
	if act := c.Query("action"); act != "" {
		filter.Action = &act
	}

	for param, dst := range map[string]**time.Time{
		"start_time": &filter.Since,
		"end_time":   &filter.Until,
	} {
		raw := c.Query(param)
		if raw == "" {
			continue
		}
		t, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid " + param})
			return filter, false
		}
		*dst = &t
	}

	for param, dst := range map[string]*int{
		"limit":  &filter.Limit,
		"offset": &filter.Offset,
	} {
		raw := c.Query(param)
		if raw == "" {
			continue
		}
		n, err := strconv.Atoi(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid " + param})
			return filter, false
		}
		*dst = n
	}

	return filter, true
}
