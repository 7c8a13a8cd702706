package quoter

import (
	"bytes"
	_ "embed"

	"github.com/ethereum/go-ethereum/accounts/abi"
)

// Minimal interface descriptors for the two deployed quoter contracts.
// Parsed once at startup and never mutated afterwards.

//go:embed abis/quoter_v1.json
var quoterV1JSON []byte

//go:embed abis/quoter_v2.json
var quoterV2JSON []byte

var (
	quoterV1ABI abi.ABI
	quoterV2ABI abi.ABI
)

//nolint:gochecknoinits
func init() {
	builder := []struct {
		dst  *abi.ABI
		data []byte
	}{
		{&quoterV1ABI, quoterV1JSON},
		{&quoterV2ABI, quoterV2JSON},
	}

	for _, b := range builder {
		parsed, err := abi.JSON(bytes.NewReader(b.data))
		if err != nil {
			panic(err)
		}
		*b.dst = parsed
	}
}
