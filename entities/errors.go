package entities

import "github.com/pkg/errors"

// ErrInvalidArgument is returned when an entity constructor receives
// parameters that violate its invariants.
var ErrInvalidArgument = errors.New("invalid argument")
