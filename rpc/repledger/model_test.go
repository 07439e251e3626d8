package repledger

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDecodeID(t *testing.T) {
	raw := make([]byte, ContextIDSize)
	for i := range raw {
		raw[i] = byte(i + 1)
	}

	id, err := DecodeID(ID(raw).String(), ContextIDSize)
	require.NoError(t, err)
	require.Equal(t, ID(raw), id)

	_, err = DecodeID(ID(raw).String(), TransactionIDSize)
	require.Error(t, err)

	_, err = DecodeID("not-base58-0OIl", ContextIDSize)
	require.Error(t, err)
}
