package application

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/linskybing/staffing-go/internal/config/logger"
	"github.com/linskybing/staffing-go/internal/domain/audit"
	"github.com/linskybing/staffing-go/internal/domain/form"
	"github.com/linskybing/staffing-go/internal/domain/owner"
	"github.com/linskybing/staffing-go/internal/metrics"
	"github.com/linskybing/staffing-go/internal/repository"
	"github.com/linskybing/staffing-go/pkg/utils"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const (
	ExportJSON = "json"
	ExportYAML = "yaml"
)

// FormArchiver keeps a copy of a form document before it is deleted.
type FormArchiver interface {
	Put(ctx context.Context, key string, data []byte) error
}

type FormService struct {
	Repos   *repository.Repos
	Linker  *FormLinker
	Archive FormArchiver
}

// NewFormService builds the service. archive may be nil, in which case
// deleted forms are not archived.
func NewFormService(repos *repository.Repos, linker *FormLinker, archive FormArchiver) *FormService {
	return &FormService{
		Repos:   repos,
		Linker:  linker,
		Archive: archive,
	}
}

func (s *FormService) CreateForm(c *gin.Context, p owner.Principal, input form.CreateFormDTO) (f *form.Form, err error) {
	defer func() { metrics.ObserveForm("create", err) }()

	if !p.Kind.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrUnknownOwnerKind, p.Kind)
	}
	if !p.Kind.CanCreateForms() {
		return nil, fmt.Errorf("%w: %s owners cannot create forms", ErrNotAuthorized, p.Kind)
	}

	f = input.NewForm()
	if err = form.Validate(f); err != nil {
		return nil, err
	}
	if err = s.Repos.Form.CreateForm(f); err != nil {
		return nil, storeError("create form", err)
	}

	if err = s.Linker.Attach(p.Kind, p.ID, f.ID); err != nil {
		if delErr := s.Repos.Form.DeleteForm(f.ID); delErr != nil {
			logger.Log.Error("failed to remove unattached form",
				zap.String("form_id", f.ID),
				zap.Error(delErr))
		}
		return nil, err
	}

	logger.Log.Info("form created",
		zap.String("form_id", f.ID),
		zap.String("owner_kind", string(p.Kind)),
		zap.String("owner_id", p.ID))
	utils.LogAuditWithConsole(c, audit.ActionCreate, audit.ResourceForm, f.ID, nil, *f, "created form "+f.Title, s.Repos.Audit)
	return f, nil
}

func (s *FormService) GetForm(id string) (*form.Form, error) {
	f, err := s.Repos.Form.GetFormByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, formNotFound(id)
		}
		return nil, storeError("get form", err)
	}
	return &f, nil
}

// GetFormView returns the form with its questions projected by ordering.
func (s *FormService) GetFormView(id string) (form.View, error) {
	f, err := s.GetForm(id)
	if err != nil {
		return form.View{}, err
	}
	return form.NewView(*f), nil
}

// ReplaceForm overwrites the stored document with input. Fields missing
// from input are cleared.
func (s *FormService) ReplaceForm(c *gin.Context, p owner.Principal, id string, input form.ReplaceFormDTO) (f *form.Form, err error) {
	defer func() { metrics.ObserveForm("replace", err) }()

	if !p.Kind.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrUnknownOwnerKind, p.Kind)
	}
	stored, err := s.GetForm(id)
	if err != nil {
		return nil, err
	}

	f = input.Replace(*stored)
	if err = form.ValidateReplacement(f); err != nil {
		return nil, err
	}
	if err = s.save(f); err != nil {
		return nil, err
	}

	utils.LogAuditWithConsole(c, audit.ActionUpdate, audit.ResourceForm, f.ID, *stored, *f, "replaced form "+f.Title, s.Repos.Audit)
	return f, nil
}

// PatchForm merges patch into the stored document.
func (s *FormService) PatchForm(c *gin.Context, p owner.Principal, id string, patch map[string]json.RawMessage) (f *form.Form, err error) {
	defer func() { metrics.ObserveForm("patch", err) }()

	if !p.Kind.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrUnknownOwnerKind, p.Kind)
	}
	f, err = s.GetForm(id)
	if err != nil {
		return nil, err
	}
	// ApplyMergePatch edits the question maps in place.
	before, err := json.Marshal(f)
	if err != nil {
		return nil, err
	}

	if err = form.ApplyMergePatch(f, patch); err != nil {
		return nil, err
	}
	if err = form.ValidateReplacement(f); err != nil {
		return nil, err
	}
	if err = s.save(f); err != nil {
		return nil, err
	}

	utils.LogAuditWithConsole(c, audit.ActionUpdate, audit.ResourceForm, f.ID, json.RawMessage(before), *f, "patched form "+f.Title, s.Repos.Audit)
	return f, nil
}

func (s *FormService) save(f *form.Form) error {
	if err := s.Repos.Form.ReplaceForm(f); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return formNotFound(f.ID)
		}
		return storeError("replace form", err)
	}
	return nil
}

// DeleteForm removes a form the principal holds and detaches it from the
// principal and, if counterpartyID is set, from that counterparty.
func (s *FormService) DeleteForm(c *gin.Context, p owner.Principal, id, counterpartyID string) (err error) {
	defer func() { metrics.ObserveForm("delete", err) }()

	held, err := s.Linker.HasForm(p.Kind, p.ID, id)
	if err != nil {
		return err
	}
	if !held {
		return fmt.Errorf("%w: %s %s does not hold form %s", ErrNotAuthorized, p.Kind, p.ID, id)
	}

	f, err := s.GetForm(id)
	if err != nil {
		return err
	}

	if s.Archive != nil {
		data, err := json.Marshal(f)
		if err != nil {
			return err
		}
		if err := s.Archive.Put(c, "forms/"+id+".json", data); err != nil {
			return storeError("archive form", err)
		}
	}

	if err = s.Repos.Form.DeleteForm(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return formNotFound(id)
		}
		return storeError("delete form", err)
	}
	if err = s.Linker.DetachAll(p, counterpartyID, id); err != nil {
		return err
	}

	logger.Log.Info("form deleted",
		zap.String("form_id", id),
		zap.String("owner_kind", string(p.Kind)),
		zap.String("owner_id", p.ID),
		zap.String("counterparty_id", counterpartyID))
	utils.LogAuditWithConsole(c, audit.ActionDelete, audit.ResourceForm, id, *f, nil, "deleted form "+f.Title, s.Repos.Audit)
	return nil
}

func (s *FormService) SearchForms(query form.FormQueryDTO) ([]form.Form, error) {
	params := repository.FormQueryParams{
		Query:    query.Query,
		Common:   query.Common,
		IsPublic: query.IsPublic,
		Limit:    query.Limit,
		Offset:   query.Offset,
	}
	if query.QuestionType != "" {
		t := form.QuestionType(query.QuestionType)
		if !t.Known() {
			return nil, &form.ValidationError{Problems: []string{
				fmt.Sprintf("questionType %q is not a question type", query.QuestionType),
			}}
		}
		params.QuestionType = &t
	}

	forms, err := s.Repos.Form.SearchForms(params)
	if err != nil {
		return nil, storeError("search forms", err)
	}
	return forms, nil
}

// ListOwnerForms returns the forms referenced by the principal's array.
// References to forms that no longer exist are skipped.
func (s *FormService) ListOwnerForms(p owner.Principal) ([]form.Form, error) {
	if !p.Kind.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrUnknownOwnerKind, p.Kind)
	}
	ids, err := s.Repos.Owner.GetFormIDs(p.Kind, p.ID)
	if err != nil {
		return nil, storeError("list owner forms", err)
	}
	forms, err := s.Repos.Form.ListFormsByIDs(ids)
	if err != nil {
		return nil, storeError("list owner forms", err)
	}
	return forms, nil
}

// ExportForm renders the projected view as JSON or YAML and returns the
// document with its content type.
func (s *FormService) ExportForm(id, format string) ([]byte, string, error) {
	if format == "" {
		format = ExportJSON
	}
	if format != ExportJSON && format != ExportYAML {
		return nil, "", &form.ValidationError{Problems: []string{
			fmt.Sprintf("format %q is not supported", format),
		}}
	}

	view, err := s.GetFormView(id)
	if err != nil {
		return nil, "", err
	}
	data, err := json.Marshal(view)
	if err != nil {
		return nil, "", err
	}
	if format == ExportJSON {
		return data, "application/json", nil
	}

	out, err := utils.JSONToYAML(data)
	if err != nil {
		return nil, "", err
	}
	return out, "application/x-yaml", nil
}
