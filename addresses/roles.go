package addresses

// Role names a contract's function within the protocol, e.g. PROXY_ADMIN.
// Role keys are case sensitive: sDAI_POT and SDAI_POT are different keys.
type Role string

func (r Role) String() string {
	return string(r)
}

// Base roles, shared by every network.
const (
	TransparentProxyFactory   Role = "TRANSPARENT_PROXY_FACTORY"
	ProxyAdmin                Role = "PROXY_ADMIN"
	Create3Factory            Role = "CREATE_3_FACTORY"
	ParaswapFeeClaimer        Role = "PARASWAP_FEE_CLAIMER"
	AaveCLRobotOperator       Role = "AAVE_CL_ROBOT_OPERATOR"
	ProtocolGuardian          Role = "PROTOCOL_GUARDIAN"
	AaveMerkleDistributor     Role = "AAVE_MERKLE_DISTRIBUTOR"
	GhoToken                  Role = "GHO_TOKEN"
	GhoFlashminterFacilitator Role = "GHO_FLASHMINTER_FACILITATOR"
)

// Extension roles. Only the networks that declare them can resolve them.
const (
	EcosystemReserve               Role = "ECOSYSTEM_RESERVE"
	AaveEcosystemReserveController Role = "AAVE_ECOSYSTEM_RESERVE_CONTROLLER"
	ProxyAdminLong                 Role = "PROXY_ADMIN_LONG"
	AaveSwapper                    Role = "AAVE_SWAPPER"
	AavePolEthBridge               Role = "AAVE_POL_ETH_BRIDGE"
	SDaiPot                        Role = "sDAI_POT"
	StEUR                          Role = "stEUR"
	AgEurEurAggregator             Role = "agEUR_EUR_AGGREGATOR"
	EurUsdAggregator               Role = "EUR_USD_AGGREGATOR"
	WeETHRatioProvider             Role = "weETH_RATIO_PROVIDER"
	WstETHStETHAggregator          Role = "wstETH_stETH_AGGREGATOR"
	RETHETHAggregator              Role = "rETH_ETH_AGGREGATOR"
	LegacyBridgeExecutor           Role = "LEGACY_BRIDGE_EXECUTOR"
	AaveOptEthBridge               Role = "AAVE_OPT_ETH_BRIDGE"

	PoolAddressesProvider Role = "POOL_ADDRESSES_PROVIDER"
	UiPoolDataProvider    Role = "UI_POOL_DATA_PROVIDER"
)
