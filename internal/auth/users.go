package auth

import (
	"github.com/BruksfildServices01/clinic-scheduler/internal/models"
)

type Role string

const (
	RolePatient Role = "patient"
	RoleDoctor  Role = "doctor"
	RoleAdmin   Role = "admin"
)

func (r Role) Valid() bool {
	switch r {
	case RolePatient, RoleDoctor, RoleAdmin:
		return true
	}
	return false
}

const DefaultProfilePicture = "https://images.unsplash.com/photo-1472099645785-5658abf4ff4e?ixlib=rb-1.2.1&ixid=eyJhcHBfaWQiOjEyMDd9&auto=format&fit=facearea&facepad=2&w=256&h=256&q=80"

type seedUser struct {
	user     models.User
	password string
}

func demoUsers() []seedUser {
	return []seedUser{
		{
			user: models.User{
				ID:             "1",
				Email:          "john@example.com",
				Name:           "John Doe",
				Role:           string(RolePatient),
				ProfilePicture: DefaultProfilePicture,
			},
			password: "password123",
		},
		{
			user: models.User{
				ID:             "2",
				Email:          "jane@example.com",
				Name:           "Jane Smith",
				Role:           string(RoleDoctor),
				Specialty:      "Cardiology",
				ProfilePicture: "https://images.unsplash.com/photo-1494790108377-be9c29b29330?ixlib=rb-1.2.1&ixid=eyJhcHBfaWQiOjEyMDd9&auto=format&fit=facearea&facepad=2&w=256&h=256&q=80",
			},
			password: "password123",
		},
		{
			user: models.User{
				ID:             "3",
				Email:          "admin@example.com",
				Name:           "Admin User",
				Role:           string(RoleAdmin),
				ProfilePicture: "https://images.unsplash.com/photo-1519244703995-f4e0f30006d5?ixlib=rb-1.2.1&ixid=eyJhcHBfaWQiOjEyMDd9&auto=format&fit=facearea&facepad=2&w=256&h=256&q=80",
			},
			password: "admin123",
		},
	}
}
