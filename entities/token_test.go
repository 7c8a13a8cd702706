package entities

import (
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/require"
)

func TestNewToken(t *testing.T) {
	t.Parallel()

	t.Run("zero address rejected", func(t *testing.T) {
		t.Parallel()

		tok, err := NewToken(1, common.Address{}, 18, "BAD")
		require.ErrorIs(t, err, ErrInvalidArgument)
		require.Nil(t, tok)
	})

	t.Run("equality is chain and address", func(t *testing.T) {
		t.Parallel()

		addr := common.HexToAddress("0x6B175474E89094C44Da98b954EedeAC495271d0F")
		mainnet, err := NewToken(1, addr, 18, "DAI")
		require.NoError(t, err)
		relabeled, err := NewToken(1, addr, 6, "XDAI")
		require.NoError(t, err)
		polygon, err := NewToken(137, addr, 18, "DAI")
		require.NoError(t, err)

		require.True(t, mainnet.Equal(relabeled))
		require.False(t, mainnet.Equal(polygon))
		require.False(t, mainnet.Equal(nil))
	})

	t.Run("sorting by address", func(t *testing.T) {
		t.Parallel()

		low := testToken(t, 1, "0x0000000000000000000000000000000000000001", "LOW")
		high := testToken(t, 1, "0xFFfFfFffFFfffFFfFFfFFFFFffFFFffffFfFFFfF", "HIGH")

		require.True(t, low.SortsBefore(high))
		require.False(t, high.SortsBefore(low))
	})
}

func TestNewCurrencyAmount(t *testing.T) {
	t.Parallel()

	dai := testToken(t, 1, "0x6B175474E89094C44Da98b954EedeAC495271d0F", "DAI")

	t.Run("valid", func(t *testing.T) {
		t.Parallel()

		amt, err := NewCurrencyAmount(dai, big.NewInt(1000))
		require.NoError(t, err)
		require.Zero(t, amt.Quantity.Cmp(big.NewInt(1000)))
	})

	t.Run("zero is allowed", func(t *testing.T) {
		t.Parallel()

		amt, err := NewCurrencyAmount(dai, big.NewInt(0))
		require.NoError(t, err)
		require.Zero(t, amt.Quantity.Sign())
	})

	t.Run("negative rejected", func(t *testing.T) {
		t.Parallel()

		amt, err := NewCurrencyAmount(dai, big.NewInt(-1))
		require.ErrorIs(t, err, ErrInvalidArgument)
		require.Nil(t, amt)
	})

	t.Run("nil inputs rejected", func(t *testing.T) {
		t.Parallel()

		_, err := NewCurrencyAmount(nil, big.NewInt(1))
		require.ErrorIs(t, err, ErrInvalidArgument)

		_, err = NewCurrencyAmount(dai, nil)
		require.ErrorIs(t, err, ErrInvalidArgument)
	})

	t.Run("quantity is copied", func(t *testing.T) {
		t.Parallel()

		q := big.NewInt(42)
		amt, err := NewCurrencyAmount(dai, q)
		require.NoError(t, err)

		q.SetInt64(99)
		require.Zero(t, amt.Quantity.Cmp(big.NewInt(42)))
	})
}
