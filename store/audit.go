package store

import (
	"context"

	"github.com/ai4health/triage-api/schema"
)

type AuditLogger interface {
	SaveAuditEvent(event schema.AuditEvent) error
}

func (m *mongoDB) SaveAuditEvent(event schema.AuditEvent) error {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	_, err := m.collection(schema.AuditEventCollection).InsertOne(ctx, event)
	return err
}
