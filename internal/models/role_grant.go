package models

import "time"

// RoleGrant is a row of the role_grants table.
type RoleGrant struct {
	Role      string    `json:"role"`
	Account   string    `json:"account"`
	GrantedBy string    `json:"grantedBy"`
	GrantedAt time.Time `json:"grantedAt"`
}
