package background

import (
	"errors"

	"github.com/RichardKnop/machinery/v1"

	"github.com/ai4health/triage-api/store"
)

// BackgroundManager is a struct for triage background manager
type BackgroundManager struct {
	store store.MongoStore

	taskServer *machinery.Server

	worker *machinery.Worker
}

func New(mongoStore store.MongoStore, taskServer *machinery.Server) *BackgroundManager {
	return &BackgroundManager{
		store:      mongoStore,
		taskServer: taskServer,
	}
}

func (m *BackgroundManager) RegisterTask(name string, taskFunc interface{}) error {
	return m.taskServer.RegisterTask(name, taskFunc)
}

// RegisterTasks registers every task the api may enqueue
func (m *BackgroundManager) RegisterTasks() error {
	return m.RegisterTask(RecordAuditEventTask, m.RecordAuditEvent)
}

// Run spawn workers to execute background jobs
func (m *BackgroundManager) Run() error {
	if m.worker != nil {
		return errors.New("background worker has started")
	}
	m.worker = m.taskServer.NewWorker("triage-worker", 5)
	return m.worker.Launch()
}

// Quit stops the running worker
func (m *BackgroundManager) Quit() {
	if m.worker != nil {
		m.worker.Quit()
	}
}
