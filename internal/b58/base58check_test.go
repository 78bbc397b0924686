package b58

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRoundTrip(t *testing.T) {
	cases := [][]byte{
		{},
		{0x00},
		{0x00, 0x00, 0x01, 0x02, 0x03},
		{0xff, 0xee, 0xdd},
	}
	for i := 0; i < 100; i++ {
		leadingZeros := make([]byte, i)
		cases = append(cases, append(leadingZeros, 0x01, 0x02))
	}

	for _, payload := range cases {
		encoded := CheckEncode(payload)
		decoded, err := CheckDecode(encoded)
		require.NoError(t, err)
		require.Equal(t, payload, decoded)
	}
}

func TestBadAlphabet(t *testing.T) {
	for _, bad := range []string{"0OlI", "invalid0", "OOO"} {
		_, err := CheckDecode(bad)
		require.ErrorIs(t, err, ErrBadAlphabet)
	}
}

func TestBadCheck(t *testing.T) {
	encoded := CheckEncode([]byte("hello world"))
	// Flip the last character, which is very likely to still be in the alphabet
	// but changes the decoded payload/checksum relationship.
	tampered := encoded[:len(encoded)-1] + flipChar(encoded[len(encoded)-1])
	_, err := CheckDecode(tampered)
	require.Error(t, err)
}

func flipChar(c byte) string {
	for _, r := range Alphabet {
		if byte(r) != c {
			return string(r)
		}
	}
	return "1"
}
