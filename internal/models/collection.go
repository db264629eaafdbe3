package models

// Collection is a row of the collections table.
type Collection struct {
	Address  string `json:"address"` // Primary Key, 0x-prefixed hash
	Standard string `json:"standard"`
	Holder   string `json:"holder"` // Zero hash for erc721 collections
	AuditFields
}
