package background

import (
	"time"

	"github.com/RichardKnop/machinery/v1/backends/result"
	"github.com/RichardKnop/machinery/v1/tasks"
	"github.com/getsentry/sentry-go"
	log "github.com/sirupsen/logrus"
)

// Auditor keeps the trail of who did what
type Auditor interface {
	Audit(userID, action, status string)
}

// TaskSender is the part of the machinery server used to enqueue tasks
type TaskSender interface {
	SendTask(signature *tasks.Signature) (*result.AsyncResult, error)
}

// TaskAuditor writes audit events through the background queue. When the
// queue is unavailable the event only goes to the log.
type TaskAuditor struct {
	sender TaskSender
	now    func() time.Time
}

func NewTaskAuditor(sender TaskSender) *TaskAuditor {
	return &TaskAuditor{
		sender: sender,
		now:    time.Now,
	}
}

func (a *TaskAuditor) Audit(userID, action, status string) {
	ts := a.now().Unix()
	l := log.WithFields(log.Fields{
		"prefix":  "audit",
		"user_id": userID,
		"action":  action,
		"status":  status,
		"ts":      ts,
	})

	if a.sender == nil {
		l.Info("audit event")
		return
	}

	if _, err := a.sender.SendTask(&tasks.Signature{
		Name: RecordAuditEventTask,
		Args: []tasks.Arg{
			{Type: "string", Value: userID},
			{Type: "string", Value: action},
			{Type: "string", Value: status},
			{Type: "int64", Value: ts},
		},
	}); err != nil {
		sentry.CaptureException(err)
		l.WithError(err).Warn("unable to enqueue audit event")
		return
	}
	l.Debug("audit event enqueued")
}
