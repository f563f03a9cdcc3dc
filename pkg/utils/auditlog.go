package utils

import (
	"encoding/json"

	"github.com/gin-gonic/gin"
	"github.com/linskybing/staffing-go/internal/config/logger"
	"github.com/linskybing/staffing-go/internal/domain/audit"
	"github.com/linskybing/staffing-go/internal/repository"
	"go.uber.org/zap"
)

var LogAuditWithConsole = func(c *gin.Context, action, resourceType, resourceID string, oldData, newData interface{}, msg string, repos repository.AuditRepo) {
	// Extract data synchronously; the gin context is recycled after the handler returns.
	var ownerID, ownerKind string
	if claims, err := GetClaimsFromContext(c); err == nil {
		ownerID, ownerKind = claims.OwnerID, string(claims.Role)
	}
	ip := c.ClientIP()
	ua := c.GetHeader("User-Agent")

	go func() {
		if err := LogAudit(ownerID, ownerKind, ip, ua, action, resourceType, resourceID, oldData, newData, msg, repos); err != nil {
			logger.Log.Warn("audit log write failed",
				zap.String("action", action),
				zap.String("resource_id", resourceID),
				zap.Error(err))
		}
	}()
}

var LogAudit = func(
	ownerID string,
	ownerKind string,
	ip string,
	ua string,
	action string,
	resourceType string,
	resourceID string,
	before any,
	after any,
	description string,
	repos repository.AuditRepo,
) error {
	var oldData, newData []byte
	var err error

	if before != nil {
		oldData, err = json.Marshal(before)
		if err != nil {
			logger.Log.Warn("audit marshal oldData", zap.Error(err))
		}
	}
	if after != nil {
		newData, err = json.Marshal(after)
		if err != nil {
			logger.Log.Warn("audit marshal newData", zap.Error(err))
		}
	}

	auditLog := &audit.AuditLog{
		OwnerID:      ownerID,
		OwnerKind:    ownerKind,
		Action:       action,
		ResourceType: resourceType,
		ResourceID:   resourceID,
		OldData:      oldData,
		NewData:      newData,
		IPAddress:    ip,
		UserAgent:    ua,
		Description:  description,
	}

	return repos.RecordAuditLog(auditLog)
}
