package utils

import (
	"context"
	"fmt"
	"time"

	cadenceClient "go.uber.org/cadence/client"
	"go.uber.org/cadence/workflow"
)

// FIXME: there will be an import cycle if we use `github.com/ai4health/triage-api/background/escalation`
const (
	EscalationTaskListName   = "triage-escalation-tasks"
	EscalationWorkflowName   = "AmbulanceEscalationWorkflow"
	AmbulanceArrivedSignal   = "ambulanceArrivedSignal"
	escalationExecutionLimit = 6 * time.Hour
)

// WorkflowClient is the part of the cadence client used to drive escalations
type WorkflowClient interface {
	StartWorkflow(ctx context.Context, options cadenceClient.StartWorkflowOptions, workflow interface{}, args ...interface{}) (*workflow.Execution, error)
	SignalWorkflow(ctx context.Context, workflowID, runID, signalName string, arg interface{}) error
}

// EscalationTrigger starts and stops the follow up of a dispatched ambulance
type EscalationTrigger interface {
	StartEscalation(ctx context.Context, dispatchID string, etaMinutes int) error
	SignalArrival(ctx context.Context, dispatchID string) error
}

type CadenceEscalationTrigger struct {
	client WorkflowClient
}

func NewEscalationTrigger(client WorkflowClient) *CadenceEscalationTrigger {
	return &CadenceEscalationTrigger{client: client}
}

func EscalationWorkflowID(dispatchID string) string {
	return fmt.Sprintf("ambulance-escalation-%s", dispatchID)
}

// StartEscalation is a helper function to start the workflow which
// reassigns the ambulance if it does not arrive in time.
func (t *CadenceEscalationTrigger) StartEscalation(ctx context.Context, dispatchID string, etaMinutes int) error {
	_, err := t.client.StartWorkflow(ctx, cadenceClient.StartWorkflowOptions{
		ID:                           EscalationWorkflowID(dispatchID),
		TaskList:                     EscalationTaskListName,
		ExecutionStartToCloseTimeout: escalationExecutionLimit,
		WorkflowIDReusePolicy:        cadenceClient.WorkflowIDReusePolicyRejectDuplicate,
	}, EscalationWorkflowName, dispatchID, etaMinutes)
	return err
}

// SignalArrival is a helper function to send a signal to
// stop the escalation of a dispatch.
func (t *CadenceEscalationTrigger) SignalArrival(ctx context.Context, dispatchID string) error {
	return t.client.SignalWorkflow(ctx, EscalationWorkflowID(dispatchID), "", AmbulanceArrivedSignal, nil)
}
