package quoter

import (
	"github.com/ethereum/go-ethereum/common"

	"github.com/dexlabs/uniswapv3-quoter/entities"
)

// feeSize is the width of a fee tier within a packed path, in bytes.
const feeSize = 3

// EncodeRouteToPath packs a route into the byte path the multi-hop quoter
// functions expect: each hop contributes a 20-byte token address followed by
// a 3-byte big-endian fee tier, and the path is terminated by the final token
// address. When exactOutput is true the hops are emitted in reverse so the
// path reads in swap-execution order.
func EncodeRouteToPath(route *entities.Route, exactOutput bool) []byte {
	hops := len(route.Pools)
	path := make([]byte, 0, (hops+1)*common.AddressLength+hops*feeSize)

	if exactOutput {
		for i := hops; i > 0; i-- {
			path = append(path, route.TokenPath[i].Address.Bytes()...)
			path = appendFee(path, route.Pools[i-1].Fee)
		}
		return append(path, route.TokenPath[0].Address.Bytes()...)
	}

	for i := 0; i < hops; i++ {
		path = append(path, route.TokenPath[i].Address.Bytes()...)
		path = appendFee(path, route.Pools[i].Fee)
	}
	return append(path, route.TokenPath[hops].Address.Bytes()...)
}

func appendFee(path []byte, fee entities.FeeAmount) []byte {
	return append(path, byte(fee>>16), byte(fee>>8), byte(fee))
}
