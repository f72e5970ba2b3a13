package domain

import "time"

// AuditFields holds standard audit information for domain entities.
type AuditFields struct {
	CreatedAt time.Time `json:"createdAt"`
	CreatedBy string    `json:"createdBy"` // UserID reference (identity provider subject)
}
