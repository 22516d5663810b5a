package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/clinic-scheduler/internal/httperr"
	"github.com/BruksfildServices01/clinic-scheduler/internal/httpresp"
	"github.com/BruksfildServices01/clinic-scheduler/internal/middleware"
	"github.com/BruksfildServices01/clinic-scheduler/internal/models"
	"github.com/BruksfildServices01/clinic-scheduler/internal/portrait"
	"github.com/BruksfildServices01/clinic-scheduler/internal/result"
	"github.com/BruksfildServices01/clinic-scheduler/internal/store"
	ucAppointment "github.com/BruksfildServices01/clinic-scheduler/internal/usecase/appointment"
)

// ======================================================
// HANDLER
// ======================================================

type AppointmentHandler struct {
	stores    *store.Registry
	portraits portrait.Resolver

	fetchUC    *ucAppointment.FetchAppointments
	createUC   *ucAppointment.CreateAppointment
	updateUC   *ucAppointment.UpdateAppointment
	cancelUC   *ucAppointment.CancelAppointment
	completeUC *ucAppointment.CompleteAppointment
	selectUC   *ucAppointment.SelectAppointment
	listUC     *ucAppointment.ListAppointments
}

func NewAppointmentHandler(
	stores *store.Registry,
	portraits portrait.Resolver,
	fetchUC *ucAppointment.FetchAppointments,
	createUC *ucAppointment.CreateAppointment,
	updateUC *ucAppointment.UpdateAppointment,
	cancelUC *ucAppointment.CancelAppointment,
	completeUC *ucAppointment.CompleteAppointment,
	selectUC *ucAppointment.SelectAppointment,
	listUC *ucAppointment.ListAppointments,
) *AppointmentHandler {
	return &AppointmentHandler{
		stores:     stores,
		portraits:  portraits,
		fetchUC:    fetchUC,
		createUC:   createUC,
		updateUC:   updateUC,
		cancelUC:   cancelUC,
		completeUC: completeUC,
		selectUC:   selectUC,
		listUC:     listUC,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateAppointmentRequest struct {
	DoctorID string   `json:"doctorId" binding:"required"`
	Date     string   `json:"date" binding:"required"`
	Time     string   `json:"time" binding:"required"`
	Type     string   `json:"type"`
	Status   string   `json:"status"`
	Notes    string   `json:"notes"`
	Symptoms []string `json:"symptoms"`
}

type UpdateAppointmentRequest struct {
	DoctorID *string   `json:"doctorId"`
	Date     *string   `json:"date"`
	Time     *string   `json:"time"`
	Type     *string   `json:"type"`
	Status   *string   `json:"status"`
	Notes    *string   `json:"notes"`
	Symptoms *[]string `json:"symptoms"`
}

type AppointmentsResponse struct {
	store.State
	Appointments []models.Appointment `json:"appointments"`
}

// ======================================================
// FETCH
// ======================================================

func (h *AppointmentHandler) Fetch(c *gin.Context) {
	patientID := middleware.UserID(c)
	st := h.stores.ForPatient(patientID)

	ctx := c.Request.Context()
	fut := result.Async(ctx, func(ctx context.Context) result.Result[[]models.Appointment] {
		return h.fetchUC.Execute(ctx, st, patientID)
	})

	// The fetch sees the same cancellation and settles the store on its own.
	var res result.Result[[]models.Appointment]
	select {
	case <-fut.Done():
		res = fut.Wait()
	case <-ctx.Done():
		res = result.Fail[[]models.Appointment](ctx.Err())
	}

	httpresp.Result(c, http.StatusOK, resolveMany(c.Request.Context(), h.portraits, res))
}

// ======================================================
// LIST
// ======================================================

func (h *AppointmentHandler) List(c *gin.Context) {
	st := patientStore(c, h.stores)

	httpresp.OK(c, AppointmentsResponse{
		State:        st.State(),
		Appointments: resolveAll(c.Request.Context(), h.portraits, h.listUC.All(st)),
	})
}

func (h *AppointmentHandler) Upcoming(c *gin.Context) {
	st := patientStore(c, h.stores)
	httpresp.List(c, resolveAll(c.Request.Context(), h.portraits, h.listUC.Upcoming(st)))
}

func (h *AppointmentHandler) Past(c *gin.Context) {
	st := patientStore(c, h.stores)
	httpresp.List(c, resolveAll(c.Request.Context(), h.portraits, h.listUC.Past(st)))
}

func (h *AppointmentHandler) Get(c *gin.Context) {
	ap, ok := h.listUC.Get(patientStore(c, h.stores), c.Param("id"))
	if !ok {
		httperr.NotFound(c, "appointment_not_found", "Appointment not found.")
		return
	}
	httpresp.OK(c, portrait.Appointment(c.Request.Context(), h.portraits, ap))
}

// ======================================================
// CREATE / UPDATE
// ======================================================

func (h *AppointmentHandler) Create(c *gin.Context) {
	var req CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	res := h.createUC.Execute(c.Request.Context(), patientStore(c, h.stores), ucAppointment.CreateInput{
		PatientID: middleware.UserID(c),
		DoctorID:  req.DoctorID,
		Date:      req.Date,
		Time:      req.Time,
		Status:    req.Status,
		Type:      req.Type,
		Notes:     req.Notes,
		Symptoms:  req.Symptoms,
	})

	httpresp.Result(c, http.StatusCreated, resolveOne(c.Request.Context(), h.portraits, res))
}

func (h *AppointmentHandler) Update(c *gin.Context) {
	var req UpdateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	res := h.updateUC.Execute(c.Request.Context(), patientStore(c, h.stores), c.Param("id"), ucAppointment.UpdateInput{
		DoctorID: req.DoctorID,
		Date:     req.Date,
		Time:     req.Time,
		Status:   req.Status,
		Type:     req.Type,
		Notes:    req.Notes,
		Symptoms: req.Symptoms,
	})

	httpresp.Result(c, http.StatusOK, resolveOne(c.Request.Context(), h.portraits, res))
}

// ======================================================
// STATUS TRANSITIONS
// ======================================================

func (h *AppointmentHandler) Cancel(c *gin.Context) {
	res := h.cancelUC.Execute(c.Request.Context(), patientStore(c, h.stores), c.Param("id"))
	httpresp.Result(c, http.StatusOK, res)
}

func (h *AppointmentHandler) Complete(c *gin.Context) {
	res := h.completeUC.Execute(c.Request.Context(), patientStore(c, h.stores), c.Param("id"))
	httpresp.Result(c, http.StatusOK, resolveOne(c.Request.Context(), h.portraits, res))
}

// ======================================================
// SELECTION
// ======================================================

func (h *AppointmentHandler) Select(c *gin.Context) {
	res := h.selectUC.Execute(patientStore(c, h.stores), c.Param("id"))
	httpresp.Result(c, http.StatusOK, resolveOne(c.Request.Context(), h.portraits, res))
}

func (h *AppointmentHandler) Selection(c *gin.Context) {
	res := h.selectUC.Current(patientStore(c, h.stores))
	httpresp.Result(c, http.StatusOK, resolveOne(c.Request.Context(), h.portraits, res))
}

func (h *AppointmentHandler) ClearSelection(c *gin.Context) {
	httpresp.Result(c, http.StatusOK, h.selectUC.Clear(patientStore(c, h.stores)))
}
