package models

import "time"

// AuditFields contains common audit fields for database models.
type AuditFields struct {
	CreatedAt time.Time `json:"createdAt"`
	CreatedBy string    `json:"createdBy"`
}
