package application

import (
	"fmt"
	"time"

	"github.com/linskybing/staffing-go/internal/config/logger"
	"github.com/linskybing/staffing-go/internal/domain/audit"
	"github.com/linskybing/staffing-go/internal/domain/owner"
	"github.com/linskybing/staffing-go/internal/metrics"
	"github.com/linskybing/staffing-go/internal/repository"
	"go.uber.org/zap"
)

const (
	DefaultAuditLimit = 100
	MaxAuditLimit     = 1000
)

type AuditService struct {
	Repos  *repository.Repos
	Linker *FormLinker
}

func NewAuditService(repos *repository.Repos, linker *FormLinker) *AuditService {
	return &AuditService{
		Repos:  repos,
		Linker: linker,
	}
}

// OwnerLogs lists the entries written by the principal. The filter's owner
// is always overridden.
func (s *AuditService) OwnerLogs(p owner.Principal, filter repository.AuditFilter) ([]audit.AuditLog, error) {
	filter.OwnerID = &p.ID
	filter.Limit = clampLimit(filter.Limit)
	if filter.Offset < 0 {
		filter.Offset = 0
	}

	logs, err := s.Repos.Audit.ListAuditLogs(filter)
	if err != nil {
		return nil, storeError("list audit logs", err)
	}
	return logs, nil
}

// FormHistory lists every change recorded for a form the principal holds,
// whoever made it.
func (s *AuditService) FormHistory(p owner.Principal, formID string) ([]audit.AuditLog, error) {
	held, err := s.Linker.HasForm(p.Kind, p.ID, formID)
	if err != nil {
		return nil, err
	}
	if !held {
		return nil, fmt.Errorf("%w: %s %s does not hold form %s", ErrNotAuthorized, p.Kind, p.ID, formID)
	}

	resourceType := audit.ResourceForm
	logs, err := s.Repos.Audit.ListAuditLogs(repository.AuditFilter{
		ResourceType: &resourceType,
		ResourceID:   &formID,
		Limit:        MaxAuditLimit,
	})
	if err != nil {
		return nil, storeError("list form history", err)
	}
	return logs, nil
}

// Purge drops entries older than retentionDays.
func (s *AuditService) Purge(retentionDays int) (int64, error) {
	if retentionDays <= 0 {
		return 0, fmt.Errorf("retention must be positive, got %d days", retentionDays)
	}
	cutoff := time.Now().AddDate(0, 0, -retentionDays)

	n, err := s.Repos.Audit.PurgeAuditLogsBefore(cutoff)
	if err != nil {
		return 0, storeError("purge audit logs", err)
	}
	metrics.AuditLogsPurged.Add(float64(n))
	logger.Log.Debug("audit logs purged", zap.Int64("rows", n), zap.Time("cutoff", cutoff))
	return n, nil
}

func clampLimit(limit int) int {
	switch {
	case limit <= 0:
		return DefaultAuditLimit
	case limit > MaxAuditLimit:
		return MaxAuditLimit
	}
	return limit
}
