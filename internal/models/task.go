package models

import "time"

type Task struct {
	ID             string
	OwnerID        string
	Title          string
	Description    string
	CompleteStatus bool
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
