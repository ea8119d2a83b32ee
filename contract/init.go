package contract

// -----------------------------------------------------------------------------
// Contract Initialization
// -----------------------------------------------------------------------------

// Initialize stores the caller as administrator. Must run before any other
// operation; admin-gated calls fail with ErrAdminNotSet until it does, and a
// second initialization is rejected so the admin can never be reassigned.
func Initialize() (string, error) {
	if isContractInitialized() {
		return "", ErrUnauthorized
	}
	cfg := ContractConfig{
		Admin: getSenderAddress(),
	}
	saveContractConfig(&cfg)

	emitInitEvent(cfg.Admin.String())
	return "initialized", nil
}
