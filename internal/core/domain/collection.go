package domain

// TokenStandard identifies how a collection's items are transferred.
type TokenStandard string

const (
	StandardERC721  TokenStandard = "erc721"
	StandardERC1155 TokenStandard = "erc1155"
)

// Valid reports whether s is a supported standard.
func (s TokenStandard) Valid() bool {
	return s == StandardERC721 || s == StandardERC1155
}

// Collection is an item contract registered with the market.
type Collection struct {
	Address  Address       `json:"address"`  // Contract hash of the item ledger
	Standard TokenStandard `json:"standard"` // erc721 or erc1155
	Holder   Address       `json:"holder"`   // Inventory account for erc1155 items; unused for erc721
	AuditFields
}
