package tx

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestVinSerialize(t *testing.T) {
	vin := Vin{
		TxID:     strings.Repeat("ab", 32),
		Vout:     1,
		Script:   "OP_DUP",
		Sequence: 0xFFFFFFFF,
	}
	b, err := vin.Serialize()
	require.NoError(t, err)

	require.Len(t, b, 32+4+1+1+4)
	require.Equal(t, byte(0x01), b[32]) // vout LE
	require.Equal(t, byte(0x01), b[36]) // varint(script_len=1)
	require.Equal(t, byte(0x76), b[37]) // OP_DUP
}

func TestVinBadTxid(t *testing.T) {
	vin := Vin{TxID: "not-hex", Vout: 0, Script: "", Sequence: 0}
	_, err := vin.Serialize()
	require.ErrorIs(t, err, ErrBadTxid)
}

func TestVoutSerialize(t *testing.T) {
	vout := Vout{Value: 5000000000, ScriptPubKey: "OP_DUP OP_HASH160"}
	b, err := vout.Serialize()
	require.NoError(t, err)
	require.Len(t, b, 8+1+2)
}

func TestTransactionSerialize(t *testing.T) {
	txn := Transaction{
		Version: 1,
		Vins: []Vin{{
			TxID:     strings.Repeat("00", 32),
			Vout:     0,
			Script:   "",
			Sequence: 0xFFFFFFFF,
		}},
		Vouts: []Vout{{
			Value:        1000,
			ScriptPubKey: "OP_DUP OP_HASH160",
		}},
		Locktime: 0,
	}

	b, err := txn.Serialize()
	require.NoError(t, err)

	require.Equal(t, byte(1), b[0]) // version, 1 byte per this codec

	vinCount, n := DecodeVarint(b[1:])
	require.Equal(t, uint64(1), vinCount)
	require.Equal(t, 1, n)
}
