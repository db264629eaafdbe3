package domain

// Currency is a fungible asset accepted as payment.
type Currency struct {
	Address Address `json:"address"` // Contract hash of the fungible asset
	Symbol  string  `json:"symbol"`  // Display label, e.g. "XVC"
	AuditFields
}
