package escalation

import (
	"time"

	"github.com/uber-go/tally"
	"go.uber.org/cadence/.gen/go/cadence/workflowserviceclient"
	"go.uber.org/cadence/activity"
	"go.uber.org/cadence/worker"
	"go.uber.org/cadence/workflow"
	"go.uber.org/zap"

	"github.com/ai4health/triage-api/consts"
	"github.com/ai4health/triage-api/dispatch"
	"github.com/ai4health/triage-api/external/cadence"
	"github.com/ai4health/triage-api/store"
	"github.com/ai4health/triage-api/utils"
)

const TaskListName = utils.EscalationTaskListName

// EscalationWorker follows dispatched ambulances and reassigns the late ones
type EscalationWorker struct {
	domain         string
	mongo          store.MongoStore
	dispatcher     *dispatch.Dispatcher
	grace          time.Duration
	maxEscalations int
}

func NewEscalationWorker(domain string, mongo store.MongoStore, dispatcher *dispatch.Dispatcher, grace time.Duration, maxEscalations int) *EscalationWorker {
	if grace <= 0 {
		grace = consts.DefaultEscalationGrace
	}
	if maxEscalations <= 0 {
		maxEscalations = consts.DefaultMaxEscalations
	}

	return &EscalationWorker{
		domain:         domain,
		mongo:          mongo,
		dispatcher:     dispatcher,
		grace:          grace,
		maxEscalations: maxEscalations,
	}
}

func (w *EscalationWorker) Register() {
	workflow.RegisterWithOptions(w.AmbulanceEscalationWorkflow, workflow.RegisterOptions{Name: utils.EscalationWorkflowName})

	activity.RegisterWithOptions(w.EscalateAmbulanceActivity, activity.RegisterOptions{Name: "EscalateAmbulanceActivity"})
	activity.RegisterWithOptions(w.RecordEscalationOutcomeActivity, activity.RegisterOptions{Name: "RecordEscalationOutcomeActivity"})
}

func (w *EscalationWorker) Start(service workflowserviceclient.Interface, logger *zap.Logger) error {
	workerOptions := worker.Options{
		Logger:        logger,
		MetricsScope:  tally.NewTestScope(TaskListName, map[string]string{}),
		DataConverter: cadence.NewMsgPackDataConverter(),
	}

	worker := worker.New(
		service,
		w.domain,
		TaskListName,
		workerOptions)

	if err := worker.Start(); err != nil {
		return err
	}

	logger.Info("Started Worker.", zap.String("worker", TaskListName))
	return nil
}
