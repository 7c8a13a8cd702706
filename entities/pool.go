package entities

import "github.com/pkg/errors"

// Pool is a V3-style liquidity pool identified by its token pair and fee
// tier. Tokens are stored sorted by address, matching the on-chain ordering.
type Pool struct {
	Token0 *Token
	Token1 *Token
	Fee    FeeAmount
}

// NewPool creates a Pool from two tokens and a fee tier. The tokens must be
// distinct and on the same chain, and the fee must be a deployed tier.
func NewPool(tokenA, tokenB *Token, fee FeeAmount) (*Pool, error) {
	if tokenA == nil || tokenB == nil {
		return nil, errors.Wrap(ErrInvalidArgument, "pool tokens cannot be nil")
	}
	if tokenA.Equal(tokenB) {
		return nil, errors.Wrap(ErrInvalidArgument, "pool tokens must be distinct")
	}
	if tokenA.ChainID != tokenB.ChainID {
		return nil, errors.Wrap(ErrInvalidArgument, "pool tokens must be on the same chain")
	}
	if !fee.Valid() {
		return nil, errors.Wrapf(ErrInvalidArgument, "unknown fee tier %d", fee)
	}

	token0, token1 := tokenA, tokenB
	if tokenB.SortsBefore(tokenA) {
		token0, token1 = tokenB, tokenA
	}
	return &Pool{Token0: token0, Token1: token1, Fee: fee}, nil
}

// ChainID returns the chain both pool tokens live on.
func (p *Pool) ChainID() uint64 {
	return p.Token0.ChainID
}

// InvolvesToken reports whether token is one of the pool's two tokens.
func (p *Pool) InvolvesToken(token *Token) bool {
	return p.Token0.Equal(token) || p.Token1.Equal(token)
}

// OtherToken returns the pool token opposite to the given one, or nil when
// the token is not part of the pool.
func (p *Pool) OtherToken(token *Token) *Token {
	switch {
	case p.Token0.Equal(token):
		return p.Token1
	case p.Token1.Equal(token):
		return p.Token0
	default:
		return nil
	}
}
