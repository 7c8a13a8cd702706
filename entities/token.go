package entities

import (
	"bytes"

	"github.com/ethereum/go-ethereum/common"
	"github.com/pkg/errors"
)

// Token is an ERC-20 token on a specific chain. Tokens are immutable after
// construction and compared by chain id and address only; decimals and symbol
// are metadata carried along for callers.
type Token struct {
	ChainID  uint64
	Address  common.Address
	Decimals uint8
	Symbol   string
}

// NewToken creates a Token. The zero address is rejected.
func NewToken(chainID uint64, address common.Address, decimals uint8, symbol string) (*Token, error) {
	if address == (common.Address{}) {
		return nil, errors.Wrap(ErrInvalidArgument, "token address cannot be the zero address")
	}
	return &Token{
		ChainID:  chainID,
		Address:  address,
		Decimals: decimals,
		Symbol:   symbol,
	}, nil
}

// Equal reports whether two tokens identify the same asset. Tokens on
// different chains are never equal.
func (t *Token) Equal(other *Token) bool {
	if t == nil || other == nil {
		return false
	}
	return t.ChainID == other.ChainID && t.Address == other.Address
}

// SortsBefore reports whether t sorts before other by address. Pools store
// their tokens in this order.
func (t *Token) SortsBefore(other *Token) bool {
	return bytes.Compare(t.Address.Bytes(), other.Address.Bytes()) < 0
}
