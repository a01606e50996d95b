package domain

// TxOptions is the per-signer signing context (nonce, era, block).
type TxOptions struct {
	Address            string `json:"address"`
	Nonce              uint64 `json:"nonce"`
	BlockHash          string `json:"block_hash"`
	BlockNumber        uint64 `json:"block_number"`
	EraPeriod          uint64 `json:"era_period"`
	GenesisHash        string `json:"genesis_hash"`
	SpecVersion        uint32 `json:"spec_version"`
	TransactionVersion uint32 `json:"transaction_version"`
	Tip                string `json:"tip"`
}

// TxInfo carries chain-level data needed to encode the payload.
type TxInfo struct {
	Address  string `json:"address"`
	ChainID  string `json:"chain_id"`
	Metadata string `json:"metadata,omitempty"`
}

// TxMetadata is the bundle fetched once per signer address.
type TxMetadata struct {
	Options TxOptions `json:"options"`
	Info    TxInfo    `json:"info"`
}

// UnsignedTransaction is ready to be handed to a signer.
type UnsignedTransaction struct {
	Address string    `json:"address"`
	ChainID string    `json:"chain_id"`
	Call    Call      `json:"call"`
	Options TxOptions `json:"options"`
	Info    TxInfo    `json:"info"`
}
