// Package app builds the long-lived dependencies shared by the HTTP server,
// the reminder job and the CLI.
package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/clinic-scheduler/internal/audit"
	"github.com/BruksfildServices01/clinic-scheduler/internal/auth"
	"github.com/BruksfildServices01/clinic-scheduler/internal/config"
	dbpkg "github.com/BruksfildServices01/clinic-scheduler/internal/db"
	"github.com/BruksfildServices01/clinic-scheduler/internal/directory"
	infraRepo "github.com/BruksfildServices01/clinic-scheduler/internal/infra/repository"
	"github.com/BruksfildServices01/clinic-scheduler/internal/jobs"
	"github.com/BruksfildServices01/clinic-scheduler/internal/latency"
	"github.com/BruksfildServices01/clinic-scheduler/internal/mockdata"
	"github.com/BruksfildServices01/clinic-scheduler/internal/notification"
	"github.com/BruksfildServices01/clinic-scheduler/internal/portrait"
	"github.com/BruksfildServices01/clinic-scheduler/internal/session"
	"github.com/BruksfildServices01/clinic-scheduler/internal/store"
	"github.com/BruksfildServices01/clinic-scheduler/internal/timezone"
	ucAppointment "github.com/BruksfildServices01/clinic-scheduler/internal/usecase/appointment"
)

type App struct {
	Config *config.Config
	Log    *zap.Logger
	Clock  *timezone.Clock

	Stores        *store.Registry
	Doctors       *directory.Directory
	Generator     *mockdata.Generator
	Notifications *notification.Center
	Audit         *audit.Dispatcher
	AuditLogs     *infraRepo.AuditGormRepository
	Auth          *auth.Service
	Portraits     portrait.Resolver
	Scheduler     *jobs.Scheduler

	Fetch        *ucAppointment.FetchAppointments
	Create       *ucAppointment.CreateAppointment
	Update       *ucAppointment.UpdateAppointment
	Cancel       *ucAppointment.CancelAppointment
	Complete     *ucAppointment.CompleteAppointment
	Select       *ucAppointment.SelectAppointment
	List         *ucAppointment.ListAppointments
	Availability *ucAppointment.GetAvailability

	db    *gorm.DB
	redis *session.Redis
}

// New wires every component. The database and Redis are only dialled when
// their URLs are configured.
func New(cfg *config.Config, log *zap.Logger) (*App, error) {
	a := &App{
		Config:  cfg,
		Log:     log,
		Clock:   timezone.NewClock(cfg.Appointment.Timezone),
		Stores:  store.NewRegistry(),
		Doctors: directory.Default(),
	}

	a.Notifications = notification.NewCenter(a.Clock.Now)
	a.Generator = mockdata.New(a.Doctors, mockdata.WithClock(a.Clock.Now))

	// -----------------------------
	// audit sinks
	// -----------------------------
	sinks := []audit.Sink{
		audit.NewZapSink(log.Named("audit")),
		notification.NewEventSink(a.Notifications),
	}

	if cfg.Database.URL != "" {
		db, err := dbpkg.NewDB(cfg.Database.URL)
		if err != nil {
			return nil, fmt.Errorf("database: %w", err)
		}
		a.db = db
		a.AuditLogs = infraRepo.NewAuditGormRepository(db)
		sinks = append(sinks, audit.New(a.AuditLogs))
	}

	a.Audit = audit.NewDispatcher(log.Named("audit"), sinks...)

	// -----------------------------
	// sessions + auth
	// -----------------------------
	var sessions session.Storage = session.NewMemory()
	if cfg.Redis.URL != "" {
		r, err := session.NewRedis(cfg.Redis.URL)
		if err != nil {
			a.Close()
			return nil, fmt.Errorf("redis: %w", err)
		}

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := r.Ping(ctx); err != nil {
			_ = r.Close()
			a.Close()
			return nil, fmt.Errorf("redis ping: %w", err)
		}

		a.redis = r
		sessions = r
	}

	svc, err := auth.NewService(cfg.Auth.JWTSecret, cfg.Auth.JWTTTL, sessions)
	if err != nil {
		a.Close()
		return nil, err
	}
	a.Auth = svc

	portraits, err := portrait.New(cfg.Storage)
	if err != nil {
		a.Close()
		return nil, fmt.Errorf("portrait storage: %w", err)
	}
	a.Portraits = portraits

	// -----------------------------
	// use cases
	// -----------------------------
	wait := latency.Fixed(cfg.Appointment.SimulatedLatency)

	a.Fetch = ucAppointment.NewFetchAppointments(wait, a.Generator, cfg.Appointment.FetchBatchSize, a.Audit, log)
	a.Create = ucAppointment.NewCreateAppointment(wait, a.Doctors, a.Clock, a.Audit, log)
	a.Update = ucAppointment.NewUpdateAppointment(wait, a.Doctors, a.Clock, a.Audit, log)
	a.Cancel = ucAppointment.NewCancelAppointment(wait, a.Audit, log)
	a.Complete = ucAppointment.NewCompleteAppointment(wait, a.Clock, a.Audit, log)
	a.Select = ucAppointment.NewSelectAppointment()
	a.List = ucAppointment.NewListAppointments(a.Clock)
	a.Availability = ucAppointment.NewGetAvailability(a.Doctors, a.Clock)

	// -----------------------------
	// reminder job
	// -----------------------------
	reminders := jobs.NewReminders(a.Stores, a.Notifications, a.Clock, log)
	scheduler, err := jobs.NewScheduler(cfg.Reminder.Cron, reminders, a.Clock)
	if err != nil {
		a.Close()
		return nil, err
	}
	a.Scheduler = scheduler

	return a, nil
}

// HasDatabase reports whether audit logs are persisted.
func (a *App) HasDatabase() bool {
	return a.db != nil
}

// Close drains the audit queue before releasing the connections it writes to.
func (a *App) Close() error {
	var errs []error

	if a.Audit != nil {
		a.Audit.Close()
	}
	if a.redis != nil {
		errs = append(errs, a.redis.Close())
	}
	if a.db != nil {
		errs = append(errs, dbpkg.Close(a.db))
	}

	return errors.Join(errs...)
}
