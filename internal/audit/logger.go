package audit

import (
	"context"
	"encoding/json"
	"time"

	"go.uber.org/zap"

	"github.com/BruksfildServices01/clinic-scheduler/internal/models"
)

// Store persists audit rows; the gorm repository is the production one.
type Store interface {
	Create(ctx context.Context, log *models.AuditLog) error
}

// Logger writes each event as an AuditLog row.
type Logger struct {
	store   Store
	timeout time.Duration
}

func New(store Store) *Logger {
	return &Logger{store: store, timeout: 5 * time.Second}
}

func (l *Logger) Record(ev Event) error {
	var metaJSON string
	if ev.Metadata != nil {
		if b, err := json.Marshal(ev.Metadata); err == nil {
			metaJSON = string(b)
		}
	}

	row := models.AuditLog{
		UserID:    ev.UserID,
		Action:    ev.Action,
		Entity:    ev.Entity,
		EntityID:  ev.EntityID,
		Metadata:  metaJSON,
		CreatedAt: ev.At,
	}

	ctx, cancel := context.WithTimeout(context.Background(), l.timeout)
	defer cancel()

	return l.store.Create(ctx, &row)
}

// ZapSink writes each event to the structured log.
type ZapSink struct {
	log *zap.Logger
}

func NewZapSink(log *zap.Logger) *ZapSink {
	return &ZapSink{log: log.Named("events")}
}

func (s *ZapSink) Record(ev Event) error {
	s.log.Info(ev.Action,
		zap.String("user_id", ev.UserID),
		zap.String("entity", ev.Entity),
		zap.String("entity_id", ev.EntityID),
		zap.Any("metadata", ev.Metadata),
		zap.Time("at", ev.At),
	)
	return nil
}
