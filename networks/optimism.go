package networks

var OptimismMainnet Network = NewOptimismMainnet()

func NewOptimismMainnet() *GenericNetwork {
	return NewGenericNetwork(GenericNetworkConfig{
		Name:              "optimism",
		AlternativeNames:  []string{"op"},
		ChainID:           10,
		NativeTokenSymbol: "ETH",
		NodeVariableName:  "OPTIMISM_RPC_URL",
		DefaultNodes: map[string]string{
			"mainnet-optimism": "https://mainnet.optimism.io",
		},
	})
}
