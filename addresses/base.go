package addresses

import (
	"github.com/tranvictor/addressbook/common"
)

// Base is the role schema every network shares. Networks embed it in their
// own address struct and add extension fields next to it. Fields left unset
// are treated as absent: they are not part of the network's role map.
type Base struct {
	TransparentProxyFactory   common.Address `role:"TRANSPARENT_PROXY_FACTORY"`
	ProxyAdmin                common.Address `role:"PROXY_ADMIN"`
	Create3Factory            common.Address `role:"CREATE_3_FACTORY"`
	ParaswapFeeClaimer        common.Address `role:"PARASWAP_FEE_CLAIMER"`
	AaveCLRobotOperator       common.Address `role:"AAVE_CL_ROBOT_OPERATOR"`
	ProtocolGuardian          common.Address `role:"PROTOCOL_GUARDIAN"`
	AaveMerkleDistributor     common.Address `role:"AAVE_MERKLE_DISTRIBUTOR"`
	GhoToken                  common.Address `role:"GHO_TOKEN"`
	GhoFlashminterFacilitator common.Address `role:"GHO_FLASHMINTER_FACILITATOR"`
}
