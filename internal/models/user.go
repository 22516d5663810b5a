package models

type User struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`

	PasswordHash string `json:"-"`

	Role           string `json:"role"`
	Specialty      string `json:"specialty,omitempty"`
	ProfilePicture string `json:"profilePicture,omitempty"`
}
