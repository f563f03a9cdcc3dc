package repository

import (
	"time"

	"github.com/linskybing/staffing-go/internal/domain/audit"
	"gorm.io/gorm"
)

// AuditFilter narrows an audit log listing. Nil fields match everything.
type AuditFilter struct {
	OwnerID      *string
	ResourceType *string
	ResourceID   *string
	Action       *string
	Since        *time.Time
	Until        *time.Time
	Limit        int
	Offset       int
}

type AuditRepo interface {
	RecordAuditLog(entry *audit.AuditLog) error
	ListAuditLogs(filter AuditFilter) ([]audit.AuditLog, error)
	PurgeAuditLogsBefore(cutoff time.Time) (int64, error)
}

type DBAuditRepo struct {
	db *gorm.DB
}

func NewAuditRepo(db *gorm.DB) *DBAuditRepo {
	return &DBAuditRepo{db: db}
}

func (r *DBAuditRepo) RecordAuditLog(entry *audit.AuditLog) error {
	return r.db.Create(entry).Error
}

// ListAuditLogs returns matching entries, newest first.
func (r *DBAuditRepo) ListAuditLogs(filter AuditFilter) ([]audit.AuditLog, error) {
	var logs []audit.AuditLog
	query := r.db.Model(&audit.AuditLog{})

	for column, value := range map[string]*string{
		"owner_id":      filter.OwnerID,
		"resource_type": filter.ResourceType,
		"resource_id":   filter.ResourceID,
		"action":        filter.Action,
	} {
		if value != nil {
			query = query.Where(column+" = ?", *value)
		}
	}
	if filter.Since != nil {
		query = query.Where("created_at >= ?", *filter.Since)
	}
	if filter.Until != nil {
		query = query.Where("created_at <= ?", *filter.Until)
	}

	query = query.Order("created_at DESC").Order("id DESC")
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}
	if filter.Offset > 0 {
		query = query.Offset(filter.Offset)
	}

	err := query.Find(&logs).Error
	return logs, err
}

// PurgeAuditLogsBefore deletes entries older than cutoff and reports how many
// rows went.
func (r *DBAuditRepo) PurgeAuditLogsBefore(cutoff time.Time) (int64, error) {
	res := r.db.Where("created_at < ?", cutoff).Delete(&audit.AuditLog{})
	return res.RowsAffected, res.Error
}
