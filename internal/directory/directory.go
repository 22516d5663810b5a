// Package directory is the read-only doctor reference data.
package directory

import (
	"github.com/BruksfildServices01/clinic-scheduler/internal/models"
)

// Directory hands out copies; callers never mutate the reference list.
type Directory struct {
	doctors []models.Doctor
	byID    map[string]int
}

func New(doctors []models.Doctor) *Directory {
	d := &Directory{
		doctors: append([]models.Doctor(nil), doctors...),
		byID:    make(map[string]int, len(doctors)),
	}
	for i, doc := range d.doctors {
		d.byID[doc.ID] = i
	}
	return d
}

// Default is the five-doctor demo roster.
func Default() *Directory {
	return New([]models.Doctor{
		{
			ID:           "d1",
			Name:         "Dr. Sarah Johnson",
			Specialty:    "Cardiology",
			ProfileImage: "https://randomuser.me/api/portraits/women/44.jpg",
			Rating:       4.8,
		},
		{
			ID:           "d2",
			Name:         "Dr. Michael Chen",
			Specialty:    "Neurology",
			ProfileImage: "https://randomuser.me/api/portraits/men/46.jpg",
			Rating:       4.9,
		},
		{
			ID:           "d3",
			Name:         "Dr. Emily Rodriguez",
			Specialty:    "Pediatrics",
			ProfileImage: "https://randomuser.me/api/portraits/women/63.jpg",
			Rating:       4.7,
		},
		{
			ID:           "d4",
			Name:         "Dr. James Wilson",
			Specialty:    "Orthopedics",
			ProfileImage: "https://randomuser.me/api/portraits/men/33.jpg",
			Rating:       4.6,
		},
		{
			ID:           "d5",
			Name:         "Dr. Lisa Thompson",
			Specialty:    "Dermatology",
			ProfileImage: "https://randomuser.me/api/portraits/women/37.jpg",
			Rating:       4.9,
		},
	})
}

func (d *Directory) List() []models.Doctor {
	return append([]models.Doctor(nil), d.doctors...)
}

func (d *Directory) Get(id string) (models.Doctor, bool) {
	i, ok := d.byID[id]
	if !ok {
		return models.Doctor{}, false
	}
	return d.doctors[i], true
}

func (d *Directory) Len() int {
	return len(d.doctors)
}

// At returns the i-th doctor in roster order.
func (d *Directory) At(i int) models.Doctor {
	return d.doctors[i]
}
