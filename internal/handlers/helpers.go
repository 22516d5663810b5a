package handlers

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/clinic-scheduler/internal/middleware"
	"github.com/BruksfildServices01/clinic-scheduler/internal/models"
	"github.com/BruksfildServices01/clinic-scheduler/internal/portrait"
	"github.com/BruksfildServices01/clinic-scheduler/internal/result"
	"github.com/BruksfildServices01/clinic-scheduler/internal/store"
)

// patientStore returns the authenticated patient's store.
func patientStore(c *gin.Context, stores *store.Registry) *store.Store {
	return stores.ForPatient(middleware.UserID(c))
}

func resolveAll(ctx context.Context, r portrait.Resolver, records []models.Appointment) []models.Appointment {
	out := make([]models.Appointment, 0, len(records))
	for _, ap := range records {
		out = append(out, portrait.Appointment(ctx, r, ap))
	}
	return out
}

func resolveOne(ctx context.Context, r portrait.Resolver, res result.Result[models.Appointment]) result.Result[models.Appointment] {
	if res.OK {
		res.Value = portrait.Appointment(ctx, r, res.Value)
	}
	return res
}

func resolveMany(ctx context.Context, r portrait.Resolver, res result.Result[[]models.Appointment]) result.Result[[]models.Appointment] {
	if res.OK {
		res.Value = resolveAll(ctx, r, res.Value)
	}
	return res
}
