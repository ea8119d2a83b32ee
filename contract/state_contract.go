package contract

import (
	"retro_pgf/sdk"
	"strings"
)

// -----------------------------------------------------------------------------
// Contract Configuration State
// -----------------------------------------------------------------------------

// ContractConfig holds the one-time contract setup: the administrator address.
type ContractConfig struct {
	Admin sdk.Address
}

// isContractInitialized returns true if the contract has been initialized.
func isContractInitialized() bool {
	ptr := sdk.StateGetObject(ContractConfigKey)
	return ptr != nil && *ptr != ""
}

// loadContractConfig loads the contract configuration from state.
func loadContractConfig() *ContractConfig {
	ptr := sdk.StateGetObject(ContractConfigKey)
	if ptr == nil || *ptr == "" {
		return nil
	}
	return decodeContractConfig(*ptr)
}

// saveContractConfig stores the contract configuration to state.
func saveContractConfig(cfg *ContractConfig) {
	sdk.StateSetObject(ContractConfigKey, encodeContractConfig(cfg))
}

// requireAdmin gates admin-only operations. An uninitialized contract fails
// distinctly from a wrong caller.
func requireAdmin(caller sdk.Address) error {
	cfg := loadContractConfig()
	if cfg == nil {
		return ErrAdminNotSet
	}
	if cfg.Admin != caller {
		return ErrUnauthorized
	}
	return nil
}

// -----------------------------------------------------------------------------
// Contract Config Encoding
// -----------------------------------------------------------------------------

// encodeContractConfig serializes ContractConfig to a pipe-delimited string.
// Format: admin
func encodeContractConfig(cfg *ContractConfig) string {
	return cfg.Admin.String()
}

// decodeContractConfig deserializes the stored string to ContractConfig.
func decodeContractConfig(data string) *ContractConfig {
	parts := strings.Split(data, "|")
	if len(parts) < 1 || parts[0] == "" {
		return nil
	}
	return &ContractConfig{
		Admin: sdk.Address(parts[0]),
	}
}
