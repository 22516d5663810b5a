package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/clinic-scheduler/internal/audit"
	"github.com/BruksfildServices01/clinic-scheduler/internal/auth"
	"github.com/BruksfildServices01/clinic-scheduler/internal/httperr"
	"github.com/BruksfildServices01/clinic-scheduler/internal/httpresp"
	"github.com/BruksfildServices01/clinic-scheduler/internal/middleware"
)

type MeHandler struct {
	auth  *auth.Service
	audit *audit.Dispatcher
}

func NewMeHandler(svc *auth.Service, audit *audit.Dispatcher) *MeHandler {
	return &MeHandler{auth: svc, audit: audit}
}

type UpdateMeRequest struct {
	Name           *string `json:"name"`
	Specialty      *string `json:"specialty"`
	ProfilePicture *string `json:"profilePicture"`
}

func (h *MeHandler) GetMe(c *gin.Context) {
	user, ok := h.auth.User(middleware.UserID(c))
	if !ok {
		httperr.NotFound(c, "user_not_found", "User not found.")
		return
	}

	_, remembered, err := h.auth.Remembered(c.Request.Context(), user.ID)
	if err != nil {
		httperr.Internal(c, "session_unavailable", "Could not read the session.")
		return
	}

	httpresp.OK(c, gin.H{
		"user":       user,
		"remembered": remembered,
	})
}

func (h *MeHandler) UpdateMe(c *gin.Context) {
	var req UpdateMeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	userID := middleware.UserID(c)
	user, err := h.auth.UpdateProfile(c.Request.Context(), userID, auth.ProfilePatch{
		Name:           req.Name,
		Specialty:      req.Specialty,
		ProfilePicture: req.ProfilePicture,
	})
	if err != nil {
		httperr.FromError(c, err, "failed_to_update_profile")
		return
	}

	writeAudit(h.audit, userID, actionProfileUpdate, nil)

	httpresp.OK(c, gin.H{"user": user})
}
