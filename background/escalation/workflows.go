package escalation

import (
	"time"

	"github.com/getsentry/sentry-go"
	"go.uber.org/cadence/workflow"
	"go.uber.org/zap"

	"github.com/ai4health/triage-api/schema"
	"github.com/ai4health/triage-api/utils"
)

const (
	OutcomeArrived    = "arrived"
	OutcomeUnresolved = "unresolved"
	OutcomeFailed     = "failed"
)

var activityOptions = workflow.ActivityOptions{
	ScheduleToStartTimeout: time.Minute,
	StartToCloseTimeout:    time.Minute,
	HeartbeatTimeout:       time.Second * 20,
}

// AmbulanceEscalationWorkflow waits for the arrival of an ambulance. Each
// time the ambulance is later than its eta plus the grace period, the
// dispatch is handed to the next nearest partner.
func (w *EscalationWorker) AmbulanceEscalationWorkflow(ctx workflow.Context, dispatchID string, etaMinutes int) error {
	ctx = workflow.WithActivityOptions(ctx, activityOptions)
	signalChan := workflow.GetSignalChannel(ctx, utils.AmbulanceArrivedSignal)

	logger := workflow.GetLogger(ctx).With(zap.String("dispatchID", dispatchID))

	outcome := OutcomeUnresolved
	escalations := 0
	eta := etaMinutes

	for {
		arrived := false
		selector := workflow.NewSelector(ctx)

		timerCancelCtx, cancelTimerHandler := workflow.WithCancel(ctx)
		timerFuture := workflow.NewTimer(timerCancelCtx, time.Duration(eta)*time.Minute+w.grace)
		selector.AddFuture(timerFuture, func(f workflow.Future) {
			logger.Info("Ambulance is late", zap.Int("eta", eta))
		})

		selector.AddReceive(signalChan, func(c workflow.Channel, more bool) {
			cancelTimerHandler()
			c.Receive(ctx, nil)
			arrived = true
			logger.Info("Ambulance arrived")
		})

		selector.Select(ctx)

		if arrived {
			outcome = OutcomeArrived
			break
		}

		if escalations >= w.maxEscalations {
			logger.Warn("Escalation limit reached", zap.Int("escalations", escalations))
			break
		}

		var ambulance schema.AmbulanceAssignment
		if err := workflow.ExecuteActivity(ctx, w.EscalateAmbulanceActivity, dispatchID).Get(ctx, &ambulance); err != nil {
			logger.Error("Fail to reassign ambulance.", zap.Error(err))
			sentry.CaptureException(err)
			outcome = OutcomeFailed
			break
		}

		escalations++
		eta = ambulance.ETAMinutes
	}

	if err := workflow.ExecuteActivity(ctx, w.RecordEscalationOutcomeActivity, dispatchID, outcome, escalations).Get(ctx, nil); err != nil {
		logger.Error("Fail to record escalation outcome.", zap.Error(err))
		sentry.CaptureException(err)
		return err
	}

	return nil
}
