package domain

import "time"

// AuditFields records who registered or last changed a registry entry.
// CreatedBy and LastUpdatedBy hold the caller address.
type AuditFields struct {
	CreatedAt     time.Time `json:"createdAt"`
	CreatedBy     string    `json:"createdBy"`
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
	LastUpdatedBy string    `json:"lastUpdatedBy"`
}
