package dto

import "github.com/BruksfildServices01/clinic-scheduler/internal/models"

// AppointmentListDTO is the flat row the list views print.
type AppointmentListDTO struct {
	ID         string `json:"id"`
	Date       string `json:"date"`
	Time       string `json:"time"`
	Status     string `json:"status"`
	Type       string `json:"type"`
	DoctorName string `json:"doctor_name"`
	Specialty  string `json:"specialty"`
}

func AppointmentList(records []models.Appointment) []AppointmentListDTO {
	out := make([]AppointmentListDTO, 0, len(records))
	for _, ap := range records {
		row := AppointmentListDTO{
			ID:     ap.ID,
			Date:   ap.Date,
			Time:   ap.Time,
			Status: ap.Status,
			Type:   ap.Type,
		}
		if ap.Doctor != nil {
			row.DoctorName = ap.Doctor.Name
			row.Specialty = ap.Doctor.Specialty
		}
		out = append(out, row)
	}
	return out
}
