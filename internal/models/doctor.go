package models

type Doctor struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Specialty    string  `json:"specialty"`
	ProfileImage string  `json:"profileImage"`
	Rating       float64 `json:"rating"`
}
