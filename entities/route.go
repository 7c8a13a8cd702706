package entities

import (
	"github.com/pkg/errors"
	"go.uber.org/multierr"
)

// Route is an ordered sequence of pools from an input token to an output
// token. TokenPath holds every token visited in order, so
// len(TokenPath) == len(Pools)+1 always holds. Routes are immutable;
// consumers only read them.
type Route struct {
	Pools     []*Pool
	TokenPath []*Token
	Input     *Token
	Output    *Token
}

// NewRoute derives the token path by walking the pools from the input token
// and validates the route end to end. All detected violations are combined
// into a single error.
func NewRoute(pools []*Pool, input, output *Token) (*Route, error) {
	if len(pools) == 0 {
		return nil, errors.Wrap(ErrInvalidArgument, "route must have at least one pool")
	}
	if input == nil || output == nil {
		return nil, errors.Wrap(ErrInvalidArgument, "route endpoints cannot be nil")
	}

	var combined error
	chainID := pools[0].ChainID()
	for i, pool := range pools {
		if pool.ChainID() != chainID {
			combined = multierr.Append(combined,
				errors.Wrapf(ErrInvalidArgument, "pool %d is on chain %d, expected %d", i, pool.ChainID(), chainID))
		}
	}
	if !pools[0].InvolvesToken(input) {
		combined = multierr.Append(combined,
			errors.Wrap(ErrInvalidArgument, "input token is not part of the first pool"))
	}
	if combined != nil {
		return nil, combined
	}

	tokenPath := make([]*Token, 0, len(pools)+1)
	tokenPath = append(tokenPath, input)
	current := input
	for i, pool := range pools {
		next := pool.OtherToken(current)
		if next == nil {
			return nil, errors.Wrapf(ErrInvalidArgument, "pool %d does not connect to the preceding path", i)
		}
		tokenPath = append(tokenPath, next)
		current = next
	}
	if !current.Equal(output) {
		return nil, errors.Wrap(ErrInvalidArgument, "output token does not terminate the path")
	}

	return &Route{
		Pools:     pools,
		TokenPath: tokenPath,
		Input:     input,
		Output:    output,
	}, nil
}

// ChainID returns the chain every pool in the route lives on.
func (r *Route) ChainID() uint64 {
	return r.Pools[0].ChainID()
}
