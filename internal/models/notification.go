package models

import "time"

type Notification struct {
	ID      string    `json:"id"`
	UserID  string    `json:"-"`
	Title   string    `json:"title"`
	Message string    `json:"message"`
	Type    string    `json:"type"`
	Read    bool      `json:"read"`
	Date    time.Time `json:"date"`
}
