package audit

import (
	"time"

	"gorm.io/datatypes"
)

const (
	ActionCreate = "create"
	ActionUpdate = "update"
	ActionDelete = "delete"

	ResourceForm = "form"
)

type AuditLog struct {
	ID           uint           `json:"id" gorm:"primaryKey"`
	OwnerID      string         `json:"owner_id" gorm:"index"`
	OwnerKind    string         `json:"owner_kind"`
	Action       string         `json:"action" gorm:"index"`
	ResourceType string         `json:"resource_type" gorm:"index"`
	ResourceID   string         `json:"resource_id"`
	OldData      datatypes.JSON `json:"old_data,omitempty" swaggertype:"object"`
	NewData      datatypes.JSON `json:"new_data,omitempty" swaggertype:"object"`
	IPAddress    string         `json:"ip_address"`
	UserAgent    string         `json:"user_agent"`
	Description  string         `json:"description"`
	CreatedAt    time.Time      `json:"created_at" gorm:"index"`
}
