package networks

var OptimismSepolia Network = NewOptimismSepolia()

func NewOptimismSepolia() *GenericNetwork {
	return NewGenericNetwork(GenericNetworkConfig{
		Name:              "optimism-sepolia",
		AlternativeNames:  []string{"op-sepolia"},
		ChainID:           11155420,
		NativeTokenSymbol: "ETH",
		NodeVariableName:  "OPTIMISM_SEPOLIA_RPC_URL",
		DefaultNodes: map[string]string{
			"sepolia-optimism": "https://sepolia.optimism.io",
		},
	})
}
