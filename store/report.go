package store

import (
	"context"

	"github.com/ai4health/triage-api/schema"
)

type TriageReporter interface {
	SaveTriageReport(report schema.TriageReport) error
}

func (m *mongoDB) SaveTriageReport(report schema.TriageReport) error {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	_, err := m.collection(schema.TriageReportCollection).InsertOne(ctx, report)
	return err
}
