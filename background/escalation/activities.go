package escalation

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/cadence/activity"
	"go.uber.org/zap"

	"github.com/ai4health/triage-api/metrics"
	"github.com/ai4health/triage-api/schema"
)

var ErrDispatchClosed = fmt.Errorf("ambulance already arrived")

// EscalateAmbulanceActivity reassigns the ambulance of an open dispatch to
// the nearest partner which has not been tried yet
func (w *EscalationWorker) EscalateAmbulanceActivity(ctx context.Context, dispatchID string) (*schema.AmbulanceAssignment, error) {
	logger := activity.GetLogger(ctx)

	record, err := w.mongo.GetDispatch(dispatchID)
	if err != nil {
		return nil, err
	}

	if record.Arrived {
		return nil, ErrDispatchClosed
	}

	ambulance, err := w.dispatcher.Reassign(record)
	if err != nil {
		metrics.RecordEscalation("failed")
		return nil, err
	}

	if err := w.mongo.ReassignAmbulance(dispatchID, record.Ambulance.NGOID, *ambulance); err != nil {
		metrics.RecordEscalation("failed")
		return nil, err
	}

	metrics.RecordEscalation("reassigned")
	logger.Info("Ambulance reassigned.",
		zap.String("dispatchID", dispatchID),
		zap.Int64("from", record.Ambulance.NGOID),
		zap.Int64("to", ambulance.NGOID))

	return ambulance, nil
}

// RecordEscalationOutcomeActivity leaves the result of the follow up in the audit trail
func (w *EscalationWorker) RecordEscalationOutcomeActivity(ctx context.Context, dispatchID, outcome string, escalations int) error {
	activity.GetLogger(ctx).Info("Escalation finished.",
		zap.String("dispatchID", dispatchID),
		zap.String("outcome", outcome),
		zap.Int("escalations", escalations))

	return w.mongo.SaveAuditEvent(schema.AuditEvent{
		UserID:    "dispatch:" + dispatchID,
		Action:    "ambulance_escalation",
		Status:    fmt.Sprintf("%s after %d escalations", outcome, escalations),
		Timestamp: time.Now().Unix(),
	})
}
