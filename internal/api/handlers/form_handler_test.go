package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/linskybing/staffing-go/internal/application"
	"github.com/linskybing/staffing-go/internal/domain/form"
	"github.com/linskybing/staffing-go/internal/domain/owner"
	"github.com/linskybing/staffing-go/internal/repository"
	"github.com/linskybing/staffing-go/internal/repository/mock"
	"github.com/linskybing/staffing-go/internal/testutils"
	"github.com/linskybing/staffing-go/pkg/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

const (
	agencyID   = "0f8fad5b-d9cb-469f-a165-70867728950e"
	businessID = "7c9e6679-7425-40de-944b-e07fc1f90ae7"
	formID     = "3fa85f64-5717-4562-b3fc-2c963f66afa6"
)

type formTestEnv struct {
	router    *gin.Engine
	formRepo  *mock.MockFormRepo
	ownerRepo *mock.MockOwnerRepo
	auditRepo *mock.MockAuditRepo
}

func setupFormHandler(t *testing.T) formTestEnv {
	ctrl := gomock.NewController(t)
	t.Cleanup(func() { ctrl.Finish() })

	env := formTestEnv{
		formRepo:  mock.NewMockFormRepo(ctrl),
		ownerRepo: mock.NewMockOwnerRepo(ctrl),
		auditRepo: mock.NewMockAuditRepo(ctrl),
	}
	repos := &repository.Repos{
		Form:  env.formRepo,
		Owner: env.ownerRepo,
		Audit: env.auditRepo,
	}

	orig := utils.LogAuditWithConsole
	utils.LogAuditWithConsole = func(c *gin.Context, action, resourceType, resourceID string, oldData, newData interface{}, msg string, repos repository.AuditRepo) {
	}
	t.Cleanup(func() { utils.LogAuditWithConsole = orig })

	env.router = testutils.SetupRouter(application.New(repos, nil))
	return env
}

func doRequest(t *testing.T, r *gin.Engine, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	switch b := body.(type) {
	case nil:
		reader = bytes.NewReader(nil)
	case string:
		reader = bytes.NewReader([]byte(b))
	default:
		data, err := json.Marshal(b)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

const createBody = `{
	"title": "Contract A",
	"isPublic": true,
	"filled": false,
	"common": false,
	"tags": ["warehouse"],
	"questions": {
		"text": [{"ordering": 0, "title": "Your name"}]
	}
}`

func TestCreateFormHandler(t *testing.T) {
	t.Run("agency creates and owns the form", func(t *testing.T) {
		env := setupFormHandler(t)
		token := testutils.Token(t, owner.KindAgency, agencyID)

		env.formRepo.EXPECT().CreateForm(gomock.Any()).Do(func(f *form.Form) {
			f.ID = formID
			assert.Equal(t, 1, f.Questions.Len())
		}).Return(nil)
		env.ownerRepo.EXPECT().AddForm(owner.KindAgency, agencyID, formID).Return(nil)

		w := doRequest(t, env.router, http.MethodPost, "/forms", token, createBody)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var got map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
		assert.Equal(t, formID, got["id"])
		assert.Contains(t, got["questions"], "text")
	})

	t.Run("worker role is forbidden", func(t *testing.T) {
		env := setupFormHandler(t)
		token := testutils.Token(t, owner.KindWorker, agencyID)

		w := doRequest(t, env.router, http.MethodPost, "/forms", token, createBody)
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("validation failure is a client error", func(t *testing.T) {
		env := setupFormHandler(t)
		token := testutils.Token(t, owner.KindBusiness, businessID)

		body := `{"title": "", "isPublic": true, "filled": false, "common": false,
			"questions": {"text": [{"ordering": 100, "title": "x"}]}}`
		w := doRequest(t, env.router, http.MethodPost, "/forms", token, body)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "ordering must be at most 99")
	})

	t.Run("missing token", func(t *testing.T) {
		env := setupFormHandler(t)

		w := doRequest(t, env.router, http.MethodPost, "/forms", "", createBody)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestGetFormHandler(t *testing.T) {
	t.Run("questions are projected", func(t *testing.T) {
		env := setupFormHandler(t)
		token := testutils.Token(t, owner.KindWorker, agencyID)

		var qs form.QuestionSet
		require.NoError(t, json.Unmarshal([]byte(`{"text": [{"ordering": 0, "title": "Your name"}]}`), &qs))
		env.formRepo.EXPECT().GetFormByID(formID).Return(form.Form{ID: formID, Title: "Contract A", Questions: qs}, nil)

		w := doRequest(t, env.router, http.MethodGet, "/forms/"+formID, token, nil)
		require.Equal(t, http.StatusOK, w.Code)

		var got struct {
			Questions []map[string]any `json:"questions"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
		require.Len(t, got.Questions, 1)
		assert.Equal(t, "text", got.Questions[0]["questionType"])
		assert.Equal(t, "Your name", got.Questions[0]["title"])
	})

	t.Run("not found", func(t *testing.T) {
		env := setupFormHandler(t)
		token := testutils.Token(t, owner.KindAgency, agencyID)

		env.formRepo.EXPECT().GetFormByID(formID).Return(form.Form{}, gorm.ErrRecordNotFound)

		w := doRequest(t, env.router, http.MethodGet, "/forms/"+formID, token, nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Contains(t, w.Body.String(), formID)
	})

	t.Run("malformed id", func(t *testing.T) {
		env := setupFormHandler(t)
		token := testutils.Token(t, owner.KindAgency, agencyID)

		w := doRequest(t, env.router, http.MethodGet, "/forms/not-a-uuid", token, nil)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestReplaceFormHandler(t *testing.T) {
	env := setupFormHandler(t)
	token := testutils.Token(t, owner.KindAgency, agencyID)

	var qs form.QuestionSet
	require.NoError(t, json.Unmarshal([]byte(`{"text": [{"ordering": 0, "title": "Your name"}]}`), &qs))
	env.formRepo.EXPECT().GetFormByID(formID).Return(form.Form{ID: formID, Title: "A", Questions: qs}, nil)
	env.formRepo.EXPECT().ReplaceForm(gomock.Any()).Return(nil)

	w := doRequest(t, env.router, http.MethodPut, "/forms/"+formID, token, `{"title": "B"}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var got map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, "B", got["title"])
	assert.Equal(t, map[string]any{}, got["questions"])
}

func TestPatchFormHandler(t *testing.T) {
	env := setupFormHandler(t)
	token := testutils.Token(t, owner.KindBusiness, businessID)

	env.formRepo.EXPECT().GetFormByID(formID).Return(form.Form{ID: formID, Title: "A", Description: "keep"}, nil)
	env.formRepo.EXPECT().ReplaceForm(gomock.Any()).Return(nil)

	w := doRequest(t, env.router, http.MethodPatch, "/forms/"+formID, token, `{"title": "B"}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Contains(t, w.Body.String(), `"description":"keep"`)

	// unknown keys are rejected before anything is stored
	env.formRepo.EXPECT().GetFormByID(formID).Return(form.Form{ID: formID, Title: "A"}, nil)
	w = doRequest(t, env.router, http.MethodPatch, "/forms/"+formID, token, `{"owner": "x"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "owner is not a form field")
}

func TestDeleteFormHandler(t *testing.T) {
	t.Run("non holder gets 403", func(t *testing.T) {
		env := setupFormHandler(t)
		token := testutils.Token(t, owner.KindAgency, agencyID)

		env.ownerRepo.EXPECT().HasForm(owner.KindAgency, agencyID, formID).Return(false, nil)

		w := doRequest(t, env.router, http.MethodDelete, "/forms/"+formID, token, nil)
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("holder deletes and detaches counterparty", func(t *testing.T) {
		env := setupFormHandler(t)
		token := testutils.Token(t, owner.KindAgency, agencyID)

		env.ownerRepo.EXPECT().HasForm(owner.KindAgency, agencyID, formID).Return(true, nil)
		env.formRepo.EXPECT().GetFormByID(formID).Return(form.Form{ID: formID}, nil)
		env.formRepo.EXPECT().DeleteForm(formID).Return(nil)
		env.ownerRepo.EXPECT().RemoveForm(owner.KindAgency, agencyID, formID).Return(nil)
		env.ownerRepo.EXPECT().RemoveForm(owner.KindBusiness, businessID, formID).Return(nil)

		w := doRequest(t, env.router, http.MethodDelete, "/forms/"+formID+"/"+businessID, token, nil)
		assert.Equal(t, http.StatusNoContent, w.Code)
	})
}

func TestSearchAndMineHandlers(t *testing.T) {
	t.Run("search", func(t *testing.T) {
		env := setupFormHandler(t)
		token := testutils.Token(t, owner.KindWorker, agencyID)

		env.formRepo.EXPECT().SearchForms(gomock.Any()).DoAndReturn(func(p repository.FormQueryParams) ([]form.Form, error) {
			assert.Equal(t, "forklift", p.Query)
			require.NotNil(t, p.IsPublic)
			assert.True(t, *p.IsPublic)
			return nil, nil
		})

		w := doRequest(t, env.router, http.MethodGet, "/forms?q=forklift&isPublic=true", token, nil)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "[]", strings.TrimSpace(w.Body.String()))
	})

	t.Run("bad question type", func(t *testing.T) {
		env := setupFormHandler(t)
		token := testutils.Token(t, owner.KindWorker, agencyID)

		w := doRequest(t, env.router, http.MethodGet, "/forms?questionType=slider", token, nil)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("mine", func(t *testing.T) {
		env := setupFormHandler(t)
		token := testutils.Token(t, owner.KindBusiness, businessID)

		env.ownerRepo.EXPECT().GetFormIDs(owner.KindBusiness, businessID).Return([]string{formID}, nil)
		env.formRepo.EXPECT().ListFormsByIDs([]string{formID}).Return([]form.Form{{ID: formID, Title: "A"}}, nil)

		w := doRequest(t, env.router, http.MethodGet, "/forms/mine", token, nil)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), formID)
	})
}

func TestExportFormHandler(t *testing.T) {
	env := setupFormHandler(t)
	token := testutils.Token(t, owner.KindAgency, agencyID)

	env.formRepo.EXPECT().GetFormByID(formID).Return(form.Form{ID: formID, Title: "Contract A"}, nil)

	w := doRequest(t, env.router, http.MethodGet, "/forms/"+formID+"/export?format=yaml", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/x-yaml", w.Header().Get("Content-Type"))
	assert.Contains(t, w.Body.String(), "title: Contract A")
}

func TestHealthz(t *testing.T) {
	env := setupFormHandler(t)

	w := doRequest(t, env.router, http.MethodGet, "/healthz", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}
