package handlers

import (
	"context"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/clinic-scheduler/internal/httperr"
	infraRepo "github.com/BruksfildServices01/clinic-scheduler/internal/infra/repository"
	"github.com/BruksfildServices01/clinic-scheduler/internal/middleware"
	"github.com/BruksfildServices01/clinic-scheduler/internal/models"
)

// ======================================================
// HANDLER
// ======================================================

type AuditLister interface {
	List(ctx context.Context, f infraRepo.AuditFilter) ([]models.AuditLog, int64, error)
}

type AuditLogsHandler struct {
	logs AuditLister
}

func NewAuditLogsHandler(logs AuditLister) *AuditLogsHandler {
	return &AuditLogsHandler{logs: logs}
}

// List shows the caller's own audit trail, newest first.
func (h *AuditLogsHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	if page <= 0 {
		page = 1
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	if limit <= 0 || limit > 100 {
		limit = 50
	}

	logs, total, err := h.logs.List(c.Request.Context(), infraRepo.AuditFilter{
		UserID: middleware.UserID(c),
		Action: c.Query("action"),
		Limit:  limit,
		Offset: (page - 1) * limit,
	})
	if err != nil {
		httperr.Internal(c, "audit_list_failed", "Could not list audit logs.")
		return
	}

	c.JSON(200, gin.H{
		"page":  page,
		"limit": limit,
		"total": total,
		"logs":  logs,
	})
}
