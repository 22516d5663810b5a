package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/clinic-scheduler/internal/directory"
	"github.com/BruksfildServices01/clinic-scheduler/internal/httperr"
	"github.com/BruksfildServices01/clinic-scheduler/internal/httpresp"
	"github.com/BruksfildServices01/clinic-scheduler/internal/models"
	"github.com/BruksfildServices01/clinic-scheduler/internal/portrait"
	"github.com/BruksfildServices01/clinic-scheduler/internal/store"
	ucAppointment "github.com/BruksfildServices01/clinic-scheduler/internal/usecase/appointment"
)

type DoctorHandler struct {
	doctors        *directory.Directory
	portraits      portrait.Resolver
	stores         *store.Registry
	availabilityUC *ucAppointment.GetAvailability
}

func NewDoctorHandler(
	doctors *directory.Directory,
	portraits portrait.Resolver,
	stores *store.Registry,
	availabilityUC *ucAppointment.GetAvailability,
) *DoctorHandler {
	return &DoctorHandler{
		doctors:        doctors,
		portraits:      portraits,
		stores:         stores,
		availabilityUC: availabilityUC,
	}
}

func (h *DoctorHandler) List(c *gin.Context) {
	list := h.doctors.List()
	out := make([]models.Doctor, 0, len(list))
	for _, d := range list {
		out = append(out, portrait.Doctor(c.Request.Context(), h.portraits, d))
	}
	httpresp.List(c, out)
}

func (h *DoctorHandler) Get(c *gin.Context) {
	d, ok := h.doctors.Get(c.Param("id"))
	if !ok {
		httperr.NotFound(c, "doctor_not_found", "Doctor not found.")
		return
	}
	httpresp.OK(c, portrait.Doctor(c.Request.Context(), h.portraits, d))
}

// Availability answers GET /doctors/:id/availability?date=YYYY-MM-DD from
// the caller's own appointments.
func (h *DoctorHandler) Availability(c *gin.Context) {
	date := c.Query("date")
	if date == "" {
		httperr.BadRequest(c, "missing_date", "Query parameter date is required.")
		return
	}

	res := h.availabilityUC.Execute(patientStore(c, h.stores), c.Param("id"), date)
	httpresp.Result(c, http.StatusOK, res)
}
