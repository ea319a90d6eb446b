package networks

var ArbitrumMainnet Network = NewArbitrumMainnet()

func NewArbitrumMainnet() *GenericNetwork {
	return NewGenericNetwork(GenericNetworkConfig{
		Name:              "arbitrum",
		AlternativeNames:  []string{"arb"},
		ChainID:           42161,
		NativeTokenSymbol: "ETH",
		NodeVariableName:  "ARBITRUM_RPC_URL",
		DefaultNodes: map[string]string{
			"arbitrum-official": "https://arb1.arbitrum.io/rpc",
		},
	})
}
