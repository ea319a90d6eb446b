package addresses

import (
	"github.com/tranvictor/addressbook/common"
	"github.com/tranvictor/addressbook/networks"
)

type OptimismAddresses struct {
	Base
	WstETHStETHAggregator common.Address `role:"wstETH_stETH_AGGREGATOR"`
	RETHETHAggregator     common.Address `role:"rETH_ETH_AGGREGATOR"`
	LegacyBridgeExecutor  common.Address `role:"LEGACY_BRIDGE_EXECUTOR"`
	AaveOptEthBridge      common.Address `role:"AAVE_OPT_ETH_BRIDGE"`
	PoolAddressesProvider common.Address `role:"POOL_ADDRESSES_PROVIDER"`
}

var optimismAddresses = MustDefine("Optimism", networks.OptimismMainnet.GetChainID(), OptimismAddresses{
	Base: Base{
		ParaswapFeeClaimer:      common.MustAddress("0x9abf798f5314BFd793A9E57A654BEd35af4A1D60"),
		TransparentProxyFactory: common.MustAddress("0x984b710d22730f799312513a10c1382e9d1fa689"),
		ProxyAdmin:              common.MustAddress("0xD3cF979e676265e4f6379749DECe4708B9A22476"),
		Create3Factory:          common.MustAddress("0x3b56998Ec06477704622ca8e2eA1b4db134cec32"),
		AaveCLRobotOperator:     common.MustAddress("0x55Cf9583D7D30DC4936bAee1f747591dBECe5df7"),
		ProtocolGuardian:        common.MustAddress("0x56C1a4b54921DEA9A344967a8693C7E661D72968"),
		AaveMerkleDistributor:   common.MustAddress("0x1685D81212580DD4cDA287616C2f6F4794927e18"),
	},
	WstETHStETHAggregator: common.MustAddress("0xe59EBa0D492cA53C6f46015EEa00517F2707dc77"),
	RETHETHAggregator:     common.MustAddress("0x22F3727be377781d1579B7C9222382b21c9d1a8f"),
	LegacyBridgeExecutor:  common.MustAddress("0x7d9103572bE58FfE99dc390E8246f02dcAe6f611"),
	AaveOptEthBridge:      common.MustAddress("0xc3250A20F8a7BbDd23adE87737EE46A45Fe5543E"),
	PoolAddressesProvider: common.MustAddress("0xa97684ead0e402dC232d5A977953DF7ECBaB3CDb"),
})

var optimismSepoliaAddresses = MustDefine("OptimismSepolia", networks.OptimismSepolia.GetChainID(), Base{
	GhoToken:                common.MustAddress("0xb13Cfa6f8B2Eed2C37fB00fF0c1A59807C585810"),
	TransparentProxyFactory: common.MustAddress("0x5f4d15d761528c57a5C30c43c1DAb26Fc5452731"),
	ProxyAdmin:              common.MustAddress("0xe892E40C92c2E4D281Be59b2E6300F271d824E75"),
})

func Optimism() NetworkAddresses[OptimismAddresses] {
	return optimismAddresses
}

func OptimismSepolia() NetworkAddresses[Base] {
	return optimismSepoliaAddresses
}
