package handlers_test

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/linskybing/staffing-go/internal/domain/audit"
	"github.com/linskybing/staffing-go/internal/domain/owner"
	"github.com/linskybing/staffing-go/internal/repository"
	"github.com/linskybing/staffing-go/internal/testutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetAuditLogsHandler(t *testing.T) {
	t.Run("filters by query", func(t *testing.T) {
		env := setupFormHandler(t)
		token := testutils.Token(t, owner.KindBusiness, businessID)

		env.auditRepo.EXPECT().ListAuditLogs(gomock.Any()).DoAndReturn(func(f repository.AuditFilter) ([]audit.AuditLog, error) {
			assert.Equal(t, businessID, *f.OwnerID)
			assert.Equal(t, audit.ActionDelete, *f.Action)
			require.NotNil(t, f.Since)
			assert.True(t, f.Since.Equal(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)))
			assert.Equal(t, 10, f.Limit)
			return []audit.AuditLog{{ID: 9, OwnerID: businessID, Action: audit.ActionDelete}}, nil
		})

		w := doRequest(t, env.router, http.MethodGet, "/audit/logs?action=delete&start_time=2024-01-01T00:00:00Z&limit=10", token, nil)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var logs []audit.AuditLog
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &logs))
		require.Len(t, logs, 1)
		assert.Equal(t, uint(9), logs[0].ID)
	})

	t.Run("bad time", func(t *testing.T) {
		env := setupFormHandler(t)
		token := testutils.Token(t, owner.KindBusiness, businessID)

		w := doRequest(t, env.router, http.MethodGet, "/audit/logs?end_time=yesterday", token, nil)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "Invalid end_time")
	})

	t.Run("bad limit", func(t *testing.T) {
		env := setupFormHandler(t)
		token := testutils.Token(t, owner.KindBusiness, businessID)

		w := doRequest(t, env.router, http.MethodGet, "/audit/logs?limit=many", token, nil)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestGetFormHistoryHandler(t *testing.T) {
	t.Run("holder", func(t *testing.T) {
		env := setupFormHandler(t)
		token := testutils.Token(t, owner.KindAgency, agencyID)

		env.ownerRepo.EXPECT().HasForm(owner.KindAgency, agencyID, formID).Return(true, nil)
		env.auditRepo.EXPECT().ListAuditLogs(gomock.Any()).Return([]audit.AuditLog{
			{ID: 1, ResourceID: formID, Action: audit.ActionCreate},
		}, nil)

		w := doRequest(t, env.router, http.MethodGet, "/forms/"+formID+"/history", token, nil)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		assert.Contains(t, w.Body.String(), `"action":"create"`)
	})

	t.Run("non-holder", func(t *testing.T) {
		env := setupFormHandler(t)
		token := testutils.Token(t, owner.KindAgency, agencyID)

		env.ownerRepo.EXPECT().HasForm(owner.KindAgency, agencyID, formID).Return(false, nil)

		w := doRequest(t, env.router, http.MethodGet, "/forms/"+formID+"/history", token, nil)
		assert.Equal(t, http.StatusForbidden, w.Code)
	})
}
