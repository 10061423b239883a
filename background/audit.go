package background

import (
	log "github.com/sirupsen/logrus"

	"github.com/ai4health/triage-api/schema"
)

const RecordAuditEventTask = "record_audit_event"

// RecordAuditEvent is a background job to persist an audit trail entry
func (m *BackgroundManager) RecordAuditEvent(userID, action, status string, ts int64) error {
	log.WithFields(log.Fields{
		"prefix":  "background",
		"user_id": userID,
		"action":  action,
		"status":  status,
	}).Debug("record audit event")

	return m.store.SaveAuditEvent(schema.AuditEvent{
		UserID:    userID,
		Action:    action,
		Status:    status,
		Timestamp: ts,
	})
}
