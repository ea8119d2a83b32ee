package sdk

// Env is the per-call execution environment handed over by the host.
// The sender address is already verified by the chain before the contract
// ever runs, so contract code can trust it as caller identity.
type Env struct {
	ContractId string   `json:"contract.id"`
	TxId       string   `json:"tx.id"`
	Sender     Sender   `json:"sender"`
	Intents    []Intent `json:"intents"`
}
