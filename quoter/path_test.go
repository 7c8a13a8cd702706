package quoter

import (
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/require"

	"github.com/dexlabs/uniswapv3-quoter/entities"
)

func feeBytes(fee entities.FeeAmount) []byte {
	return []byte{byte(fee >> 16), byte(fee >> 8), byte(fee)}
}

func TestEncodeRouteToPath_SingleHop(t *testing.T) {
	t.Parallel()

	route, dai, usdc := singleHopRoute(t)

	path := EncodeRouteToPath(route, false)
	require.Len(t, path, 2*common.AddressLength+feeSize)

	var expected []byte
	expected = append(expected, dai.Address.Bytes()...)
	expected = append(expected, feeBytes(entities.FeeMedium)...)
	expected = append(expected, usdc.Address.Bytes()...)
	require.Equal(t, expected, path)
}

func TestEncodeRouteToPath_MultiHop(t *testing.T) {
	t.Parallel()

	route := multiHopRoute(t, 3)
	tokens := route.TokenPath
	pools := route.Pools

	t.Run("forward", func(t *testing.T) {
		t.Parallel()

		path := EncodeRouteToPath(route, false)
		require.Len(t, path, 4*common.AddressLength+3*feeSize)

		var expected []byte
		for i := 0; i < 3; i++ {
			expected = append(expected, tokens[i].Address.Bytes()...)
			expected = append(expected, feeBytes(pools[i].Fee)...)
		}
		expected = append(expected, tokens[3].Address.Bytes()...)
		require.Equal(t, expected, path)
	})

	t.Run("reversed", func(t *testing.T) {
		t.Parallel()

		path := EncodeRouteToPath(route, true)
		require.Len(t, path, 4*common.AddressLength+3*feeSize)

		var expected []byte
		for i := 3; i > 0; i-- {
			expected = append(expected, tokens[i].Address.Bytes()...)
			expected = append(expected, feeBytes(pools[i-1].Fee)...)
		}
		expected = append(expected, tokens[0].Address.Bytes()...)
		require.Equal(t, expected, path)
	})
}

func TestEncodeRouteToPath_FeeTierBytes(t *testing.T) {
	t.Parallel()

	route := multiHopRoute(t, 3)
	path := EncodeRouteToPath(route, false)

	// Fee tiers sit right after each 20-byte token address, big-endian.
	require.Equal(t, []byte{0x00, 0x0b, 0xb8}, path[20:23]) // 3000
	require.Equal(t, []byte{0x00, 0x01, 0xf4}, path[43:46]) // 500
	require.Equal(t, []byte{0x00, 0x27, 0x10}, path[66:69]) // 10000
}
