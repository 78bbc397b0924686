package tx

import (
	"encoding/binary"
	"encoding/hex"
	"errors"
)

// ErrBadTxid is returned when a Vin's TxID is not 32 bytes of hex.
var ErrBadTxid = errors.New("tx: txid must be 32 bytes of hex")

// Vin is a transaction input. Script is the whitespace-tokenized
// scriptSig, in the same token form ScriptEncode/ScriptDecode use.
type Vin struct {
	TxID     string // 32-byte hex, big-endian as conventionally displayed
	Vout     uint32
	Script   string
	Sequence uint32
}

// Serialize encodes a Vin as: txid(32 BE) || vout(4 LE) ||
// varint(script_len) || script_bytes || sequence(4 LE).
func (v Vin) Serialize() ([]byte, error) {
	txid, err := hex.DecodeString(v.TxID)
	if err != nil || len(txid) != 32 {
		return nil, ErrBadTxid
	}

	scriptBytes, err := ScriptEncode(v.Script)
	if err != nil {
		return nil, err
	}

	out := make([]byte, 0, 32+4+4+len(scriptBytes)+4)
	out = append(out, txid...)

	var voutBytes [4]byte
	binary.LittleEndian.PutUint32(voutBytes[:], v.Vout)
	out = append(out, voutBytes[:]...)

	out = append(out, EncodeVarint(uint64(len(scriptBytes)))...)
	out = append(out, scriptBytes...)

	var seqBytes [4]byte
	binary.LittleEndian.PutUint32(seqBytes[:], v.Sequence)
	out = append(out, seqBytes[:]...)

	return out, nil
}

// Vout is a transaction output.
type Vout struct {
	Value        int64 // satoshis
	ScriptPubKey string
}

// Serialize encodes a Vout as: value(8 LE, signed) ||
// varint(script_len) || script_bytes.
func (v Vout) Serialize() ([]byte, error) {
	scriptBytes, err := ScriptEncode(v.ScriptPubKey)
	if err != nil {
		return nil, err
	}

	out := make([]byte, 0, 8+4+len(scriptBytes))
	var valueBytes [8]byte
	binary.LittleEndian.PutUint64(valueBytes[:], uint64(v.Value))
	out = append(out, valueBytes[:]...)

	out = append(out, EncodeVarint(uint64(len(scriptBytes)))...)
	out = append(out, scriptBytes...)

	return out, nil
}

// Transaction is the small transaction model this module serializes.
//
// Version is written as a single little-endian byte, not Bitcoin's
// canonical 4-byte little-endian field — this preserves the behavior
// being ported rather than mainnet wire compatibility; Version values
// above 255 will truncate. Callers targeting real Bitcoin wire format
// should not rely on this codec.
type Transaction struct {
	Version  uint32
	Vins     []Vin
	Vouts    []Vout
	Locktime uint32
}

// Serialize encodes: version(1 LE) || varint(vin_count) || vins ||
// varint(vout_count) || vouts || locktime(4 LE).
func (t Transaction) Serialize() ([]byte, error) {
	out := []byte{byte(t.Version)}

	out = append(out, EncodeVarint(uint64(len(t.Vins)))...)
	for _, vin := range t.Vins {
		b, err := vin.Serialize()
		if err != nil {
			return nil, err
		}
		out = append(out, b...)
	}

	out = append(out, EncodeVarint(uint64(len(t.Vouts)))...)
	for _, vout := range t.Vouts {
		b, err := vout.Serialize()
		if err != nil {
			return nil, err
		}
		out = append(out, b...)
	}

	var locktimeBytes [4]byte
	binary.LittleEndian.PutUint32(locktimeBytes[:], t.Locktime)
	out = append(out, locktimeBytes[:]...)

	return out, nil
}
