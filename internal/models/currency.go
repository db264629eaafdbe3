package models

// Currency is a row of the currencies table.
type Currency struct {
	Address string `json:"address"` // Primary Key, 0x-prefixed hash
	Symbol  string `json:"symbol"`
	AuditFields
}
