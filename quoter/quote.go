// Package quoter builds the call parameters (function selector plus
// ABI-encoded arguments) for querying the on-chain quoter contracts about a
// swap route. It performs no I/O: the caller submits the resulting calldata
// through whatever read-only call mechanism it already has.
package quoter

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/pkg/errors"

	"github.com/dexlabs/uniswapv3-quoter/entities"
)

// Packer turns a function name known to a fixed contract interface plus
// typed arguments into calldata. abi.ABI satisfies it directly.
type Packer interface {
	Pack(name string, args ...interface{}) ([]byte, error)
}

// QuoteCallParameters produces the calldata for quoting the given route with
// the given amount. For ExactInput trades the amount is the input quantity,
// for ExactOutput the desired output quantity. A nil opts means defaults:
// no price limit, original Quoter interface.
//
// The function is pure and deterministic; identical inputs yield
// byte-identical output.
func QuoteCallParameters(
	route *entities.Route,
	amount *entities.CurrencyAmount,
	tradeType entities.TradeType,
	opts *Options,
) (*CallParameters, error) {
	if opts == nil {
		opts = &Options{}
	}

	iface := Packer(quoterV1ABI)
	if opts.UseQuoterV2 {
		iface = quoterV2ABI
	}
	return quoteCallParameters(iface, route, amount, tradeType, opts)
}

func quoteCallParameters(
	iface Packer,
	route *entities.Route,
	amount *entities.CurrencyAmount,
	tradeType entities.TradeType,
	opts *Options,
) (*CallParameters, error) {
	var (
		calldata []byte
		err      error
	)

	if len(route.Pools) == 1 {
		calldata, err = packSingleHop(iface, route, amount, tradeType, opts)
	} else {
		if opts.SqrtPriceLimitX96 != nil {
			return nil, errors.Wrap(ErrInvalidArgumentCombination,
				"multi-hop quotes do not accept a price limit")
		}
		calldata, err = packMultiHop(iface, route, amount, tradeType)
	}
	if err != nil {
		return nil, err
	}

	return &CallParameters{
		Calldata: hexutil.Encode(calldata),
		Value:    hexutil.EncodeBig(new(big.Int)),
	}, nil
}

func packSingleHop(
	iface Packer,
	route *entities.Route,
	amount *entities.CurrencyAmount,
	tradeType entities.TradeType,
	opts *Options,
) ([]byte, error) {
	var (
		tokenIn  = route.TokenPath[0].Address
		tokenOut = route.TokenPath[1].Address
		fee      = big.NewInt(int64(route.Pools[0].Fee))
	)

	sqrtPriceLimitX96 := opts.SqrtPriceLimitX96
	if sqrtPriceLimitX96 == nil {
		sqrtPriceLimitX96 = new(big.Int)
	}

	method := methodQuoteExactOutputSingle
	if tradeType == entities.ExactInput {
		method = methodQuoteExactInputSingle
	}

	if !opts.UseQuoterV2 {
		// The original Quoter declares its single-hop arguments
		// positionally as (amount, fee, sqrtPriceLimitX96, tokenIn,
		// tokenOut).
		data, err := iface.Pack(method, amount.Quantity, fee, sqrtPriceLimitX96, tokenIn, tokenOut)
		if err != nil {
			return nil, errors.Wrapf(err, "pack %s", method)
		}
		return data, nil
	}

	// QuoterV2 takes a single tuple argument. The exact-input variant names
	// its amount component amountIn, so the two shapes are distinct structs
	// rather than one mutated record.
	var arg interface{}
	if tradeType == entities.ExactInput {
		arg = ExactInputSingleParams{
			AmountIn:          amount.Quantity,
			Fee:               fee,
			SqrtPriceLimitX96: sqrtPriceLimitX96,
			TokenIn:           tokenIn,
			TokenOut:          tokenOut,
		}
	} else {
		arg = ExactOutputSingleParams{
			Amount:            amount.Quantity,
			Fee:               fee,
			SqrtPriceLimitX96: sqrtPriceLimitX96,
			TokenIn:           tokenIn,
			TokenOut:          tokenOut,
		}
	}

	data, err := iface.Pack(method, arg)
	if err != nil {
		return nil, errors.Wrapf(err, "pack %s", method)
	}
	return data, nil
}

func packMultiHop(
	iface Packer,
	route *entities.Route,
	amount *entities.CurrencyAmount,
	tradeType entities.TradeType,
) ([]byte, error) {
	// Multi-hop quoting encodes the path in swap-execution order, which is
	// reversed for exact-output queries. Both interfaces share this
	// signature.
	method := methodQuoteExactOutput
	if tradeType == entities.ExactInput {
		method = methodQuoteExactInput
	}

	path := EncodeRouteToPath(route, tradeType == entities.ExactOutput)

	data, err := iface.Pack(method, path, amount.Quantity)
	if err != nil {
		return nil, errors.Wrapf(err, "pack %s", method)
	}
	return data, nil
}
