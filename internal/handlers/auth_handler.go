package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/clinic-scheduler/internal/audit"
	"github.com/BruksfildServices01/clinic-scheduler/internal/auth"
	"github.com/BruksfildServices01/clinic-scheduler/internal/httperr"
	"github.com/BruksfildServices01/clinic-scheduler/internal/middleware"
)

type AuthHandler struct {
	auth  *auth.Service
	audit *audit.Dispatcher
}

func NewAuthHandler(svc *auth.Service, audit *audit.Dispatcher) *AuthHandler {
	return &AuthHandler{auth: svc, audit: audit}
}

// --------- Requests ---------

type RegisterRequest struct {
	Name      string `json:"name" binding:"required"`
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required,min=6"`
	Role      string `json:"role"`
	Specialty string `json:"specialty"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
	Remember bool   `json:"remember"`
}

// --------- Handlers ---------

func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	user, err := h.auth.SignUp(auth.SignUpInput{
		Name:      req.Name,
		Email:     req.Email,
		Password:  req.Password,
		Role:      req.Role,
		Specialty: req.Specialty,
	})
	if err != nil {
		httperr.FromError(c, err, "failed_to_create_user")
		return
	}

	writeAudit(h.audit, user.ID, actionSignUp, map[string]string{"role": user.Role})

	c.JSON(http.StatusCreated, gin.H{"user": user})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	res, err := h.auth.SignIn(c.Request.Context(), req.Email, req.Password, req.Remember)
	if err != nil {
		httperr.FromError(c, err, "failed_to_sign_in")
		return
	}

	writeAudit(h.audit, res.User.ID, actionSignIn, map[string]bool{"remember": req.Remember})

	c.JSON(http.StatusOK, res)
}

func (h *AuthHandler) Logout(c *gin.Context) {
	userID := middleware.UserID(c)

	if err := h.auth.SignOut(c.Request.Context(), userID); err != nil {
		httperr.Internal(c, "failed_to_sign_out", "Could not clear the session.")
		return
	}

	writeAudit(h.audit, userID, actionSignOut, nil)

	c.Status(http.StatusNoContent)
}
