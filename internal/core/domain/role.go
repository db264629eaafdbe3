package domain

import "time"

// Role is an access-control role.
type Role string

const (
	RoleDefaultAdmin Role = "DEFAULT_ADMIN" // May grant and revoke roles
	RoleNFTAdmin     Role = "NFT_ADMIN"     // Currencies, collections, prices, listings, purchase keys
	RoleWithdraw     Role = "WITHDRAW"      // May withdraw market balances
)

// AllRoles lists every known role.
var AllRoles = []Role{RoleDefaultAdmin, RoleNFTAdmin, RoleWithdraw}

// Valid reports whether r is a known role.
func (r Role) Valid() bool {
	for _, known := range AllRoles {
		if r == known {
			return true
		}
	}
	return false
}

// RoleGrant records that Account holds Role.
type RoleGrant struct {
	Role      Role      `json:"role"`
	Account   Address   `json:"account"`
	GrantedBy Address   `json:"grantedBy"`
	GrantedAt time.Time `json:"grantedAt"`
}
