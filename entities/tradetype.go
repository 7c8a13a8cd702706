package entities

// TradeType says whether a quoted amount is the input or the output side of
// the swap. It selects the target quoter function and, for multi-hop routes,
// the path encoding direction.
type TradeType int

const (
	ExactInput TradeType = iota
	ExactOutput
)

func (t TradeType) String() string {
	switch t {
	case ExactInput:
		return "exactInput"
	case ExactOutput:
		return "exactOutput"
	default:
		return "unknown"
	}
}
