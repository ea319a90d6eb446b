package networks

var EthereumMainnet Network = NewEthereumMainnet()

func NewEthereumMainnet() *GenericNetwork {
	return NewGenericNetwork(GenericNetworkConfig{
		Name:              "mainnet",
		AlternativeNames:  []string{"ethereum", "eth"},
		ChainID:           1,
		NativeTokenSymbol: "ETH",
		NodeVariableName:  "ETH_MAINNET_RPC_URL",
		DefaultNodes: map[string]string{
			"mainnet-infura":     "https://mainnet.infura.io/v3/03cebe177b4746e790f893ec76ec608d",
			"mainnet-publicnode": "https://ethereum-rpc.publicnode.com",
		},
	})
}
