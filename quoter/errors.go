package quoter

import "github.com/pkg/errors"

// ErrInvalidArgumentCombination is returned when the requested options cannot
// be expressed against either quoter interface, such as a price limit on a
// multi-hop route.
var ErrInvalidArgumentCombination = errors.New("invalid argument combination")
