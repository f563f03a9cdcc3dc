package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/linskybing/staffing-go/internal/application"
	"github.com/linskybing/staffing-go/internal/config/logger"
	"github.com/linskybing/staffing-go/internal/domain/form"
	"github.com/linskybing/staffing-go/pkg/response"
	"github.com/linskybing/staffing-go/pkg/utils"
	"go.uber.org/zap"
)

type FormHandler struct {
	service *application.FormService
}

func NewFormHandler(service *application.FormService) *FormHandler {
	return &FormHandler{service: service}
}

// writeFormError maps service errors onto HTTP statuses.
func writeFormError(c *gin.Context, err error) {
	var verr *form.ValidationError
	switch {
	case errors.As(err, &verr):
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
	case errors.Is(err, application.ErrFormNotFound):
		c.JSON(http.StatusNotFound, response.ErrorResponse{Error: err.Error()})
	case errors.Is(err, application.ErrNotAuthorized):
		c.JSON(http.StatusForbidden, response.ErrorResponse{Error: err.Error()})
	default:
		logger.Log.Error("form request failed",
			zap.String("path", c.FullPath()),
			zap.Error(err))
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
	}
}

func formIDParam(c *gin.Context) (string, bool) {
	id, err := utils.ParseUUIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid ID"})
		return "", false
	}
	return id, true
}

// CreateForm godoc
// @Summary Create a contract form
// @Description Stores the form and records it on the calling agency or business.
// @Tags forms
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param form body form.CreateFormDTO true "Form document"
// @Success 200 {object} form.Form
// @Failure 400 {object} response.ErrorResponse "Invalid form"
// @Failure 401 {object} response.ErrorResponse "Unauthorized"
// @Failure 403 {object} response.ErrorResponse "Role not allowed"
// @Failure 500 {object} response.ErrorResponse "Store or owner update failed"
// @Router /forms [post]
func (h *FormHandler) CreateForm(c *gin.Context) {
	var input form.CreateFormDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	principal, err := utils.GetPrincipalFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unauthorized"})
		return
	}

	f, err := h.service.CreateForm(c, principal, input)
	if err != nil {
		writeFormError(c, err)
		return
	}

	c.JSON(http.StatusOK, f)
}

// GetFormByID godoc
// @Summary Get a form
// @Description Questions are returned as one sequence indexed by ordering; unused positions are null.
// @Tags forms
// @Security BearerAuth
// @Produce json
// @Param id path string true "Form ID"
// @Success 200 {object} form.View
// @Failure 400 {object} response.ErrorResponse "Invalid ID"
// @Failure 404 {object} response.ErrorResponse "Form not found"
// @Failure 500 {object} response.ErrorResponse "Internal server error"
// @Router /forms/{id} [get]
func (h *FormHandler) GetFormByID(c *gin.Context) {
	id, ok := formIDParam(c)
	if !ok {
		return
	}

	view, err := h.service.GetFormView(id)
	if err != nil {
		writeFormError(c, err)
		return
	}

	c.JSON(http.StatusOK, view)
}

// ReplaceForm godoc
// @Summary Replace a form
// @Description Overwrites the stored form. Fields missing from the body are cleared.
// @Tags forms
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Form ID"
// @Param form body form.ReplaceFormDTO true "Replacement document"
// @Success 200 {object} form.Form
// @Failure 400 {object} response.ErrorResponse "Invalid form"
// @Failure 404 {object} response.ErrorResponse "Form not found"
// @Failure 500 {object} response.ErrorResponse "Internal server error"
// @Router /forms/{id} [put]
func (h *FormHandler) ReplaceForm(c *gin.Context) {
	id, ok := formIDParam(c)
	if !ok {
		return
	}

	var input form.ReplaceFormDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	principal, err := utils.GetPrincipalFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unauthorized"})
		return
	}

	f, err := h.service.ReplaceForm(c, principal, id, input)
	if err != nil {
		writeFormError(c, err)
		return
	}

	c.JSON(http.StatusOK, f)
}

// PatchForm godoc
// @Summary Update part of a form
// @Description JSON merge patch. Absent keys are kept, null clears a field, and each key under questions replaces that question type.
// @Tags forms
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Form ID"
// @Param patch body object true "Merge patch"
// @Success 200 {object} form.Form
// @Failure 400 {object} response.ErrorResponse "Invalid patch"
// @Failure 404 {object} response.ErrorResponse "Form not found"
// @Failure 500 {object} response.ErrorResponse "Internal server error"
// @Router /forms/{id} [patch]
func (h *FormHandler) PatchForm(c *gin.Context) {
	id, ok := formIDParam(c)
	if !ok {
		return
	}

	var patch map[string]json.RawMessage
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	principal, err := utils.GetPrincipalFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unauthorized"})
		return
	}

	f, err := h.service.PatchForm(c, principal, id, patch)
	if err != nil {
		writeFormError(c, err)
		return
	}

	c.JSON(http.StatusOK, f)
}

// DeleteForm godoc
// @Summary Delete a form
// @Description Only an owner holding the form may delete it. The optional ownerId names the counterparty (the business for an agency, the worker for a business) to detach as well.
// @Tags forms
// @Security BearerAuth
// @Param id path string true "Form ID"
// @Param ownerId path string false "Counterparty ID"
// @Success 204 "No Content"
// @Failure 400 {object} response.ErrorResponse "Invalid ID"
// @Failure 403 {object} response.ErrorResponse "Form not held by caller"
// @Failure 404 {object} response.ErrorResponse "Form not found"
// @Failure 500 {object} response.ErrorResponse "Internal server error"
// @Router /forms/{id} [delete]
// @Router /forms/{id}/{ownerId} [delete]
func (h *FormHandler) DeleteForm(c *gin.Context) {
	id, ok := formIDParam(c)
	if !ok {
		return
	}

	var counterpartyID string
	if c.Param("ownerId") != "" {
		var err error
		counterpartyID, err = utils.ParseUUIDParam(c, "ownerId")
		if err != nil {
			c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid owner ID"})
			return
		}
	}

	principal, err := utils.GetPrincipalFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unauthorized"})
		return
	}

	if err := h.service.DeleteForm(c, principal, id, counterpartyID); err != nil {
		writeFormError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// SearchForms godoc
// @Summary Search forms
// @Description Full-text search over title, tags and description, best match first.
// @Tags forms
// @Security BearerAuth
// @Produce json
// @Param q query string false "Search text"
// @Param questionType query string false "Only forms with questions of this type" example(datepicker)
// @Param common query bool false "Filter on the common flag"
// @Param isPublic query bool false "Filter on the isPublic flag"
// @Param limit query int false "Max results (max 100)"
// @Param offset query int false "Offset for pagination"
// @Success 200 {array} form.Form
// @Failure 400 {object} response.ErrorResponse "Invalid query parameters"
// @Failure 500 {object} response.ErrorResponse "Internal server error"
// @Router /forms [get]
func (h *FormHandler) SearchForms(c *gin.Context) {
	var query form.FormQueryDTO
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	forms, err := h.service.SearchForms(query)
	if err != nil {
		writeFormError(c, err)
		return
	}
	if forms == nil {
		forms = []form.Form{}
	}

	c.JSON(http.StatusOK, forms)
}

// GetMyForms godoc
// @Summary List the caller's forms
// @Tags forms
// @Security BearerAuth
// @Produce json
// @Success 200 {array} form.Form
// @Failure 401 {object} response.ErrorResponse "Unauthorized"
// @Failure 500 {object} response.ErrorResponse "Internal server error"
// @Router /forms/mine [get]
func (h *FormHandler) GetMyForms(c *gin.Context) {
	principal, err := utils.GetPrincipalFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unauthorized"})
		return
	}

	forms, err := h.service.ListOwnerForms(principal)
	if err != nil {
		writeFormError(c, err)
		return
	}
	if forms == nil {
		forms = []form.Form{}
	}

	c.JSON(http.StatusOK, forms)
}

// ExportForm godoc
// @Summary Export a form
// @Description Downloads the projected form as JSON or YAML.
// @Tags forms
// @Security BearerAuth
// @Produce json
// @Produce x-yaml
// @Param id path string true "Form ID"
// @Param format query string false "json or yaml" example(yaml)
// @Success 200 {object} form.View
// @Failure 400 {object} response.ErrorResponse "Invalid ID or format"
// @Failure 404 {object} response.ErrorResponse "Form not found"
// @Router /forms/{id}/export [get]
func (h *FormHandler) ExportForm(c *gin.Context) {
	id, ok := formIDParam(c)
	if !ok {
		return
	}

	format := c.DefaultQuery("format", application.ExportJSON)
	data, contentType, err := h.service.ExportForm(id, format)
	if err != nil {
		writeFormError(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="form-`+id+`.`+format+`"`)
	c.Data(http.StatusOK, contentType, data)
}
