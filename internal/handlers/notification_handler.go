package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/clinic-scheduler/internal/httperr"
	"github.com/BruksfildServices01/clinic-scheduler/internal/httpresp"
	"github.com/BruksfildServices01/clinic-scheduler/internal/middleware"
	"github.com/BruksfildServices01/clinic-scheduler/internal/models"
	"github.com/BruksfildServices01/clinic-scheduler/internal/notification"
)

type NotificationHandler struct {
	center *notification.Center
}

func NewNotificationHandler(center *notification.Center) *NotificationHandler {
	return &NotificationHandler{center: center}
}

type CreateNotificationRequest struct {
	Title   string `json:"title" binding:"required"`
	Message string `json:"message"`
	Type    string `json:"type" binding:"required"`
}

// List accepts one filter at a time: type, unread=true or recent=true.
func (h *NotificationHandler) List(c *gin.Context) {
	userID := middleware.UserID(c)

	if t := c.Query("type"); t != "" {
		if !notification.Type(t).Valid() {
			httperr.FromError(c, httperr.ErrBusiness("invalid_notification_type"), "")
			return
		}
		httpresp.List(c, h.center.ByType(userID, notification.Type(t)))
		return
	}
	if flag(c, "unread") {
		httpresp.List(c, h.center.Unread(userID))
		return
	}
	if flag(c, "recent") {
		httpresp.List(c, h.center.Recent(userID))
		return
	}

	httpresp.List(c, h.center.List(userID))
}

func (h *NotificationHandler) UnreadCount(c *gin.Context) {
	httpresp.OK(c, gin.H{"unread": h.center.UnreadCount(middleware.UserID(c))})
}

func (h *NotificationHandler) Create(c *gin.Context) {
	var req CreateNotificationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	n, err := h.center.Create(middleware.UserID(c), models.Notification{
		Title:   req.Title,
		Message: req.Message,
		Type:    req.Type,
	})
	if err != nil {
		httperr.FromError(c, err, "notification_create_failed")
		return
	}
	c.JSON(http.StatusCreated, n)
}

func (h *NotificationHandler) MarkRead(c *gin.Context) {
	if err := h.center.MarkRead(middleware.UserID(c), c.Param("id")); err != nil {
		httperr.FromError(c, err, "notification_update_failed")
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *NotificationHandler) MarkAllRead(c *gin.Context) {
	h.center.MarkAllRead(middleware.UserID(c))
	c.Status(http.StatusNoContent)
}

func (h *NotificationHandler) Delete(c *gin.Context) {
	if err := h.center.Delete(middleware.UserID(c), c.Param("id")); err != nil {
		httperr.FromError(c, err, "notification_delete_failed")
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *NotificationHandler) Clear(c *gin.Context) {
	h.center.Clear(middleware.UserID(c))
	c.Status(http.StatusNoContent)
}

func flag(c *gin.Context, name string) bool {
	v, _ := strconv.ParseBool(c.Query(name))
	return v
}
