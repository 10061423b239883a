package escalation

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"go.uber.org/cadence/testsuite"
	"go.uber.org/cadence/worker"
	"go.uber.org/zap"

	"github.com/ai4health/triage-api/dispatch"
	"github.com/ai4health/triage-api/external/cadence"
	"github.com/ai4health/triage-api/schema"
	"github.com/ai4health/triage-api/utils"
)

type EscalationWorkflowTestSuite struct {
	suite.Suite
	testsuite.WorkflowTestSuite
	env            *testsuite.TestWorkflowEnvironment
	worker         *EscalationWorker
	testDispatchID string
}

func (ts *EscalationWorkflowTestSuite) SetupSuite() {
	ts.SetLogger(zap.NewNop())
	ts.testDispatchID = "5f0c9a4e-2b1d-4c7e-9a55-0d6f1c2b3a41"
	ts.worker = testWorker
}

func (ts *EscalationWorkflowTestSuite) SetupTest() {
	ts.env = ts.NewTestWorkflowEnvironment()
	ts.env.SetWorkerOptions(worker.Options{
		DataConverter: cadence.NewMsgPackDataConverter(),
	})
}

func (ts *EscalationWorkflowTestSuite) AfterTest(suiteName, testName string) {
	ts.env.AssertExpectations(ts.T())
}

func (ts *EscalationWorkflowTestSuite) reassigned(eta int) func(context.Context, string) (*schema.AmbulanceAssignment, error) {
	return func(ctx context.Context, dispatchID string) (*schema.AmbulanceAssignment, error) {
		ts.Equal(ts.testDispatchID, dispatchID)
		return &schema.AmbulanceAssignment{
			Status:     schema.AmbulanceDispatched,
			NGOID:      2,
			ETAMinutes: eta,
		}, nil
	}
}

// TestArrivedInTime tests the workflow stops without escalation when the
// ambulance arrives before its eta
func (ts *EscalationWorkflowTestSuite) TestArrivedInTime() {
	ts.env.RegisterDelayedCallback(func() {
		ts.env.SignalWorkflow(utils.AmbulanceArrivedSignal, nil)
	}, 5*time.Minute)

	ts.env.OnActivity(ts.worker.RecordEscalationOutcomeActivity, mock.Anything, ts.testDispatchID, OutcomeArrived, 0).Return(nil).Once()

	ts.env.ExecuteWorkflow(ts.worker.AmbulanceEscalationWorkflow, ts.testDispatchID, 12)

	ts.True(ts.env.IsWorkflowCompleted())
	ts.NoError(ts.env.GetWorkflowError())
}

// TestArrivedAfterOneEscalation tests a late ambulance is reassigned once
// and the replacement arrives
func (ts *EscalationWorkflowTestSuite) TestArrivedAfterOneEscalation() {
	// first deadline is 12 + 10 minutes, the second one 15 minutes later
	ts.env.RegisterDelayedCallback(func() {
		ts.env.SignalWorkflow(utils.AmbulanceArrivedSignal, nil)
	}, 30*time.Minute)

	ts.env.OnActivity(ts.worker.EscalateAmbulanceActivity, mock.Anything, ts.testDispatchID).Return(ts.reassigned(5)).Once()
	ts.env.OnActivity(ts.worker.RecordEscalationOutcomeActivity, mock.Anything, ts.testDispatchID, OutcomeArrived, 1).Return(nil).Once()

	ts.env.ExecuteWorkflow(ts.worker.AmbulanceEscalationWorkflow, ts.testDispatchID, 12)

	ts.True(ts.env.IsWorkflowCompleted())
	ts.NoError(ts.env.GetWorkflowError())
}

// TestEscalationLimit tests the workflow gives up after the configured
// number of reassignments
func (ts *EscalationWorkflowTestSuite) TestEscalationLimit() {
	ts.env.OnActivity(ts.worker.EscalateAmbulanceActivity, mock.Anything, ts.testDispatchID).Return(ts.reassigned(5)).Times(2)
	ts.env.OnActivity(ts.worker.RecordEscalationOutcomeActivity, mock.Anything, ts.testDispatchID, OutcomeUnresolved, 2).Return(nil).Once()

	ts.env.ExecuteWorkflow(ts.worker.AmbulanceEscalationWorkflow, ts.testDispatchID, 12)

	ts.True(ts.env.IsWorkflowCompleted())
	ts.NoError(ts.env.GetWorkflowError())
}

// TestEscalationFailure tests the outcome is still recorded when no
// ambulance can be reassigned
func (ts *EscalationWorkflowTestSuite) TestEscalationFailure() {
	ts.env.OnActivity(ts.worker.EscalateAmbulanceActivity, mock.Anything, ts.testDispatchID).Return(
		func(ctx context.Context, dispatchID string) (*schema.AmbulanceAssignment, error) {
			return nil, dispatch.ErrNoAmbulanceAvailable
		}).Once()
	ts.env.OnActivity(ts.worker.RecordEscalationOutcomeActivity, mock.Anything, ts.testDispatchID, OutcomeFailed, 0).Return(nil).Once()

	ts.env.ExecuteWorkflow(ts.worker.AmbulanceEscalationWorkflow, ts.testDispatchID, 12)

	ts.True(ts.env.IsWorkflowCompleted())
	ts.NoError(ts.env.GetWorkflowError())
}

func TestEscalationWorkflowTestSuite(t *testing.T) {
	suite.Run(t, new(EscalationWorkflowTestSuite))
}
