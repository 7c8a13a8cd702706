package quoter

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"
)

const (
	methodQuoteExactInputSingle  = "quoteExactInputSingle"
	methodQuoteExactOutputSingle = "quoteExactOutputSingle"
	methodQuoteExactInput        = "quoteExactInput"
	methodQuoteExactOutput       = "quoteExactOutput"
)

// Options configures how a quote call is encoded.
type Options struct {
	// SqrtPriceLimitX96 bounds the post-trade price. Nil means no limit
	// (encoded as 0). Only valid for single-hop routes.
	SqrtPriceLimitX96 *big.Int

	// UseQuoterV2 selects the QuoterV2 interface instead of the original
	// Quoter.
	UseQuoterV2 bool
}

// CallParameters is the encoded read-only contract call for a quote.
// Value is always the zero encoding since quoting sends no native currency.
type CallParameters struct {
	Calldata string
	Value    string
}

// ExactInputSingleParams mirrors QuoterV2's QuoteExactInputSingleParams
// tuple. The amount component is named amountIn on this variant.
type ExactInputSingleParams struct {
	AmountIn          *big.Int
	Fee               *big.Int
	SqrtPriceLimitX96 *big.Int
	TokenIn           common.Address
	TokenOut          common.Address
}

// ExactOutputSingleParams mirrors QuoterV2's QuoteExactOutputSingleParams
// tuple, which keeps the generic amount name.
type ExactOutputSingleParams struct {
	Amount            *big.Int
	Fee               *big.Int
	SqrtPriceLimitX96 *big.Int
	TokenIn           common.Address
	TokenOut          common.Address
}
