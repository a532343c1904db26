package middleware

import (
	"time"

	"github.com/sirupsen/logrus"
)

// Audit writes one structured line per operation: who ran it, what it
// touched, whether it succeeded and how long it took.
type Audit struct {
	log *logrus.Logger
}

func NewAudit(log *logrus.Logger) *Audit {
	return &Audit{log: log}
}

// Record runs op and logs the outcome. The actor is the logged-in
// employee's id, zero before login.
func (a *Audit) Record(actorID int, operation string, targetID int, op func() error) error {
	start := time.Now()
	err := op()
	entry := a.log.WithFields(logrus.Fields{
		"actor":     actorID,
		"operation": operation,
		"target":    targetID,
		"latency":   time.Since(start).String(),
	})
	if err != nil {
		entry.WithError(err).Warn("operation failed")
		return err
	}
	entry.Info("operation completed")
	return nil
}
