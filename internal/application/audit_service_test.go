package application_test

import (
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/linskybing/staffing-go/internal/application"
	"github.com/linskybing/staffing-go/internal/domain/audit"
	"github.com/linskybing/staffing-go/internal/domain/owner"
	"github.com/linskybing/staffing-go/internal/repository"
	"github.com/linskybing/staffing-go/internal/repository/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupAuditMocks(t *testing.T) (*application.AuditService, *mock.MockAuditRepo, *mock.MockOwnerRepo) {
	ctrl := gomock.NewController(t)
	t.Cleanup(func() { ctrl.Finish() })

	mockAudit := mock.NewMockAuditRepo(ctrl)
	mockOwner := mock.NewMockOwnerRepo(ctrl)
	repos := &repository.Repos{
		Form:  mock.NewMockFormRepo(ctrl),
		Owner: mockOwner,
		Audit: mockAudit,
	}
	return application.New(repos, nil).Audit, mockAudit, mockOwner
}

func TestOwnerLogs(t *testing.T) {
	t.Run("scopes to the caller and clamps the limit", func(t *testing.T) {
		svc, mockAudit, _ := setupAuditMocks(t)

		other := "someone-else"
		mockAudit.EXPECT().ListAuditLogs(gomock.Any()).DoAndReturn(func(f repository.AuditFilter) ([]audit.AuditLog, error) {
			require.NotNil(t, f.OwnerID)
			assert.Equal(t, "agency-x", *f.OwnerID)
			assert.Equal(t, application.MaxAuditLimit, f.Limit)
			assert.Zero(t, f.Offset)
			return []audit.AuditLog{{ID: 1, OwnerID: "agency-x"}}, nil
		})

		logs, err := svc.OwnerLogs(agencyX, repository.AuditFilter{OwnerID: &other, Limit: 5000, Offset: -3})
		require.NoError(t, err)
		assert.Len(t, logs, 1)
	})

	t.Run("default limit", func(t *testing.T) {
		svc, mockAudit, _ := setupAuditMocks(t)

		mockAudit.EXPECT().ListAuditLogs(gomock.Any()).DoAndReturn(func(f repository.AuditFilter) ([]audit.AuditLog, error) {
			assert.Equal(t, application.DefaultAuditLimit, f.Limit)
			return nil, nil
		})

		_, err := svc.OwnerLogs(agencyX, repository.AuditFilter{})
		require.NoError(t, err)
	})

	t.Run("store failure", func(t *testing.T) {
		svc, mockAudit, _ := setupAuditMocks(t)

		mockAudit.EXPECT().ListAuditLogs(gomock.Any()).Return(nil, errors.New("db down"))

		_, err := svc.OwnerLogs(agencyX, repository.AuditFilter{})
		var storeErr *application.StoreError
		assert.ErrorAs(t, err, &storeErr)
	})
}

func TestFormHistory(t *testing.T) {
	t.Run("holder sees every entry of the form", func(t *testing.T) {
		svc, mockAudit, mockOwner := setupAuditMocks(t)

		mockOwner.EXPECT().HasForm(owner.KindAgency, "agency-x", "form-1").Return(true, nil)
		mockAudit.EXPECT().ListAuditLogs(gomock.Any()).DoAndReturn(func(f repository.AuditFilter) ([]audit.AuditLog, error) {
			assert.Nil(t, f.OwnerID)
			require.NotNil(t, f.ResourceID)
			assert.Equal(t, "form-1", *f.ResourceID)
			assert.Equal(t, audit.ResourceForm, *f.ResourceType)
			return []audit.AuditLog{
				{ID: 2, OwnerID: "business-y", Action: audit.ActionUpdate},
				{ID: 1, OwnerID: "agency-x", Action: audit.ActionCreate},
			}, nil
		})

		logs, err := svc.FormHistory(agencyX, "form-1")
		require.NoError(t, err)
		assert.Len(t, logs, 2)
	})

	t.Run("non-holder is refused", func(t *testing.T) {
		svc, _, mockOwner := setupAuditMocks(t)

		mockOwner.EXPECT().HasForm(owner.KindAgency, "agency-x", "form-1").Return(false, nil)

		_, err := svc.FormHistory(agencyX, "form-1")
		assert.ErrorIs(t, err, application.ErrNotAuthorized)
	})
}

func TestPurge(t *testing.T) {
	t.Run("cutoff is retention days ago", func(t *testing.T) {
		svc, mockAudit, _ := setupAuditMocks(t)

		mockAudit.EXPECT().PurgeAuditLogsBefore(gomock.Any()).DoAndReturn(func(cutoff time.Time) (int64, error) {
			assert.WithinDuration(t, time.Now().AddDate(0, 0, -30), cutoff, time.Minute)
			return 4, nil
		})

		n, err := svc.Purge(30)
		require.NoError(t, err)
		assert.Equal(t, int64(4), n)
	})

	t.Run("rejects non-positive retention", func(t *testing.T) {
		svc, _, _ := setupAuditMocks(t)

		_, err := svc.Purge(0)
		assert.Error(t, err)
	})

	t.Run("store failure", func(t *testing.T) {
		svc, mockAudit, _ := setupAuditMocks(t)

		mockAudit.EXPECT().PurgeAuditLogsBefore(gomock.Any()).Return(int64(0), errors.New("db down"))

		_, err := svc.Purge(7)
		var storeErr *application.StoreError
		assert.ErrorAs(t, err, &storeErr)
	})
}
