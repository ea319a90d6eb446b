package addresses

import (
	"github.com/tranvictor/addressbook/common"
	"github.com/tranvictor/addressbook/networks"
)

type EthereumAddresses struct {
	Base
	EcosystemReserve               common.Address     `role:"ECOSYSTEM_RESERVE"`
	AaveEcosystemReserveController common.AddressInfo `role:"AAVE_ECOSYSTEM_RESERVE_CONTROLLER"`
	ProxyAdminLong                 common.Address     `role:"PROXY_ADMIN_LONG"`
	AaveSwapper                    common.Address     `role:"AAVE_SWAPPER"`
	AavePolEthBridge               common.Address     `role:"AAVE_POL_ETH_BRIDGE"`
	SDaiPot                        common.Address     `role:"sDAI_POT"`
	StEUR                          common.Address     `role:"stEUR"`
	AgEurEurAggregator             common.Address     `role:"agEUR_EUR_AGGREGATOR"`
	EurUsdAggregator               common.Address     `role:"EUR_USD_AGGREGATOR"`
	WeETHRatioProvider             common.Address     `role:"weETH_RATIO_PROVIDER"`
	PoolAddressesProvider          common.Address     `role:"POOL_ADDRESSES_PROVIDER"`
	UiPoolDataProvider             common.Address     `role:"UI_POOL_DATA_PROVIDER"`
}

var ethereumAddresses = MustDefine("Ethereum", networks.EthereumMainnet.GetChainID(), EthereumAddresses{
	Base: Base{
		ParaswapFeeClaimer:      common.MustAddress("0x9abf798f5314BFd793A9E57A654BEd35af4A1D60"),
		TransparentProxyFactory: common.MustAddress("0x9FB3B12248bf010AEA7cE08343C8499FFAB4770f"),
		ProxyAdmin:              common.MustAddress("0xD3cF979e676265e4f6379749DECe4708B9A22476"),
		Create3Factory:          common.MustAddress("0xcc3C54B95f3f1867A43009B80ed4DD930E3cE2F7"),
		AaveCLRobotOperator:     common.MustAddress("0x1cDF8879eC8bE012bA959EB515b11008E0cb6323"),
		ProtocolGuardian:        common.MustAddress("0x2CFe3ec4d5a6811f4B8067F0DE7e47DfA938Aa30"),
		AaveMerkleDistributor:   common.MustAddress("0xa88c6D90eAe942291325f9ae3c66f3563B93FE10"),
	},
	AaveEcosystemReserveController: common.AddressInfo{
		Value: common.MustAddress("0x3d569673dAa0575c936c7c67c4E6AedA69CC630C"),
		Type:  "IAaveEcosystemReserveController",
	},
	EcosystemReserve:   common.MustAddress("0x25F2226B597E8F9514B3F68F00f494cF4f286491"),
	ProxyAdminLong:     common.MustAddress("0x86C3FfeE349A7cFf7cA88C449717B1b133bfb517"),
	AaveSwapper:        common.MustAddress("0x3ea64b1C0194524b48F9118462C8E9cd61a243c7"),
	AavePolEthBridge:   common.MustAddress("0x1C2BA5b8ab8e795fF44387ba6d251fa65AD20b36"),
	SDaiPot:            common.MustAddress("0x197E90f9FAD81970bA7976f33CbD77088E5D7cf7"),
	StEUR:              common.MustAddress("0x004626A008B1aCdC4c74ab51644093b155e59A23"),
	AgEurEurAggregator: common.MustAddress("0xb4d5289C58CE36080b0748B47F859D8F50dFAACb"),
	EurUsdAggregator:   common.MustAddress("0xb49f677943BC038e9857d61E7d053CaA2C1734C1"),
	WeETHRatioProvider: common.MustAddress("0xCd5fE23C85820F7B72D0926FC9b05b43E359b7ee"),

	PoolAddressesProvider: common.MustAddress("0x2f39d218133AFaB8F2B819B1066c7E434Ad94E9e"),
	UiPoolDataProvider:    common.MustAddress("0xBA6378f1c1D046e9EB0F538560BA7558546edF3C"),
})

var sepoliaAddresses = MustDefine("Sepolia", networks.Sepolia.GetChainID(), Base{
	TransparentProxyFactory:   common.MustAddress("0x84B08568906ee891de1c23175E5B92d7Df7DDCc4"),
	ProxyAdmin:                common.MustAddress("0x8dDa7a1E3e96EB13BE50bB59e80485227E3DE2e7"),
	GhoToken:                  common.MustAddress("0xc4bF5CbDaBE595361438F8c6a187bDc330539c60"),
	GhoFlashminterFacilitator: common.MustAddress("0xB5d0ef1548D9C70d3E7a96cA67A2d7EbC5b1173E"),
})

// Ethereum returns a copy of the Ethereum mainnet table.
func Ethereum() NetworkAddresses[EthereumAddresses] {
	return ethereumAddresses
}

func Sepolia() NetworkAddresses[Base] {
	return sepoliaAddresses
}
