package networks

type Network interface {
	GetName() string
	GetChainID() uint64
	GetAlternativeNames() []string
	GetNativeTokenSymbol() string

	// GetNodeVariableName is the env var that, when set, adds a custom RPC
	// node for this network.
	GetNodeVariableName() string
	GetDefaultNodes() map[string]string
}
