package repledger

import (
	"fmt"

	"github.com/mr-tron/base58"
)

type (
	// ID is a raw context, transaction or entity identifier. It is rendered
	// in base58 the same way clients pass it on the command line.
	ID []byte
)

// String implements [fmt.Stringer].
func (id ID) String() string {
	return base58.Encode(id)
}

// DecodeID parses base58 string into a raw identifier of the given size.
func DecodeID(s string, size int) (ID, error) {
	raw, err := base58.Decode(s)
	if err != nil {
		return nil, fmt.Errorf("invalid base58: %w", err)
	}
	if len(raw) != size {
		return nil, fmt.Errorf("invalid identifier length %d, expected %d", len(raw), size)
	}
	return ID(raw), nil
}
