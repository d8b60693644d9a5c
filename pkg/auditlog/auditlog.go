package auditlog

import (
	"github.com/ShalinTimalsina/AssetTracker-Test/pkg/models"

	"go.uber.org/zap"
)

type Auditable interface {
	CreateLogView() models.AuditLog
}

// Recorder is the audit surface services depend on; mutations are logged
// through it on a best-effort basis.
type Recorder interface {
	Log(action string, data interface{}, item Auditable)
}

type LogPersister interface {
	PersistLog(auditLog models.AuditLog, data interface{}) error
}

type Auditlog struct {
	r   LogPersister
	log *zap.Logger
}

func (a *Auditlog) Log(action string, data interface{}, item Auditable) {
	auditLog := item.CreateLogView()
	auditLog.Action = action

	if err := a.r.PersistLog(auditLog, data); err != nil {
		a.log.Warn("unable to create audit log entry",
			zap.Int("resource_id", auditLog.ResourceID),
			zap.String("resource_type", auditLog.ResourceType),
			zap.Error(err),
		)
		return
	}

	a.log.Debug("created audit log entry",
		zap.Int("resource_id", auditLog.ResourceID),
		zap.String("action", action),
	)
}

func NewAuditLog(persister LogPersister, log *zap.Logger) *Auditlog {
	return &Auditlog{r: persister, log: log}
}
