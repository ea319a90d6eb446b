package networks

var Sepolia Network = NewSepolia()

func NewSepolia() *GenericNetwork {
	return NewGenericNetwork(GenericNetworkConfig{
		Name:              "sepolia",
		ChainID:           11155111,
		NativeTokenSymbol: "ETH",
		NodeVariableName:  "SEPOLIA_RPC_URL",
		DefaultNodes: map[string]string{
			"sepolia-publicnode": "https://ethereum-sepolia-rpc.publicnode.com",
		},
	})
}
