//go:build !wasm
// +build !wasm

package sdk

import (
	"errors"
	"fmt"
	"strconv"
)

// In-memory stand-in for the chain host. Non-wasm builds (unit tests, local
// debugging) link this file instead of the wasmimport bindings, so contract
// code runs unchanged against a controllable environment.

// MockTransfer records one outgoing hive.transfer call.
type MockTransfer struct {
	To     Address
	Amount int64
	Asset  Asset
}

// MockHost holds the fake chain state behind the sdk functions.
type MockHost struct {
	State      map[string]string
	Sender     Address
	ContractID string
	TxID       string
	Timestamp  int64
	Intents    []Intent
	Balances   map[Address]map[Asset]int64
	Transfers  []MockTransfer
	// FailTransferTo makes hive.transfer fail for the listed addresses so
	// tests can exercise the partial-failure path.
	FailTransferTo map[Address]bool
	Logs           []string
}

// NewMockHost returns a host with sane defaults for tests.
func NewMockHost() *MockHost {
	return &MockHost{
		State:          map[string]string{},
		Sender:         Address("hive:someone"),
		ContractID:     "contract:rpgf",
		TxID:           "tx-0",
		Timestamp:      1_700_000_000,
		Balances:       map[Address]map[Asset]int64{},
		FailTransferTo: map[Address]bool{},
	}
}

var mock = NewMockHost()

// Mock exposes the active mock host so tests can tweak sender, clock, balances.
func Mock() *MockHost {
	return mock
}

// ResetMock swaps in a fresh host between tests.
func ResetMock() *MockHost {
	mock = NewMockHost()
	return mock
}

// SetBalance assigns an account balance for one asset.
func (m *MockHost) SetBalance(addr Address, asset Asset, amount int64) {
	if m.Balances[addr] == nil {
		m.Balances[addr] = map[Asset]int64{}
	}
	m.Balances[addr][asset] = amount
}

// BalanceOf reads an account balance, zero when unknown.
func (m *MockHost) BalanceOf(addr Address, asset Asset) int64 {
	if m.Balances[addr] == nil {
		return 0
	}
	return m.Balances[addr][asset]
}

// Log appends to the captured log lines.
// Example payload: sdk.Log("hello rpgf")
func Log(s string) {
	mock.Logs = append(mock.Logs, s)
}

// Abort mirrors the wasm abort: surface the message and stop execution.
func Abort(msg string) {
	panic("abort: " + msg)
}

// Revert mirrors the wasm revert; only the wasm entrypoint wrappers call it.
func Revert(msg string, symbol string) {
	panic(fmt.Sprintf("revert(%s): %s", symbol, msg))
}

// StateSetObject stores a key/value string pair into the fake kv storage.
func StateSetObject(key string, value string) {
	mock.State[key] = value
}

// StateGetObject fetches a key and returns nil when missing.
func StateGetObject(key string) *string {
	val, ok := mock.State[key]
	if !ok {
		return nil
	}
	return &val
}

// StateDeleteObject removes the key entirely.
func StateDeleteObject(key string) {
	delete(mock.State, key)
}

// GetEnv builds the env snapshot from the mock fields.
func GetEnv() Env {
	return Env{
		ContractId: mock.ContractID,
		TxId:       mock.TxID,
		Sender: Sender{
			Address:              mock.Sender,
			RequiredAuths:        []Address{mock.Sender},
			RequiredPostingAuths: []Address{},
		},
		Intents: mock.Intents,
	}
}

// GetEnvKey serves the env keys the contract actually reads.
func GetEnvKey(key string) *string {
	var val string
	switch key {
	case "block.timestamp":
		val = strconv.FormatInt(mock.Timestamp, 10)
	case "contract.id":
		val = mock.ContractID
	case "tx.id":
		val = mock.TxID
	case "msg.sender":
		val = mock.Sender.String()
	default:
		return nil
	}
	return &val
}

// GetBalance queries the fake balance table.
func GetBalance(address Address, asset Asset) int64 {
	return mock.BalanceOf(address, asset)
}

// HiveDraw pulls tokens from the caller into the contract account.
func HiveDraw(amount int64, asset Asset) {
	mock.SetBalance(mock.Sender, asset, mock.BalanceOf(mock.Sender, asset)-amount)
	contractAddr := Address(mock.ContractID)
	mock.SetBalance(contractAddr, asset, mock.BalanceOf(contractAddr, asset)+amount)
}

// HiveTransfer moves tokens from the contract account to a user address,
// failing when the test flagged the recipient.
func HiveTransfer(to Address, amount int64, asset Asset) error {
	if mock.FailTransferTo[to] {
		return errors.New("transfer rejected by host")
	}
	contractAddr := Address(mock.ContractID)
	mock.SetBalance(contractAddr, asset, mock.BalanceOf(contractAddr, asset)-amount)
	mock.SetBalance(to, asset, mock.BalanceOf(to, asset)+amount)
	mock.Transfers = append(mock.Transfers, MockTransfer{To: to, Amount: amount, Asset: asset})
	return nil
}
