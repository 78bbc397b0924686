package hdwallet

import "errors"

var (
	// ErrUseNextIndex signals that a specific child index produced an
	// invalid key (I_L >= N, or a zero/identity result) and the caller
	// should retry with index+1 along the same path prefix.
	ErrUseNextIndex = errors.New("hdwallet: index invalid, use next index")

	// ErrHardenedFromPublic is returned when hardened derivation
	// (index >= 2^31) is attempted from a public-only extended key.
	ErrHardenedFromPublic = errors.New("hdwallet: cannot derive hardened child from public key")

	// ErrBadPath is returned for an unparseable derivation path.
	ErrBadPath = errors.New("hdwallet: malformed derivation path")

	// ErrBadEntropySize is returned when mnemonic generation is asked
	// for an entropy size outside {128,160,192,224,256}.
	ErrBadEntropySize = errors.New("hdwallet: entropy size must be 128, 160, 192, 224, or 256 bits")

	// ErrBadWordCount is returned when a mnemonic doesn't have
	// 12/15/18/21/24 words.
	ErrBadWordCount = errors.New("hdwallet: mnemonic must have 12, 15, 18, 21, or 24 words")

	// ErrBadWord is returned when a mnemonic word isn't in the wordlist.
	ErrBadWord = errors.New("hdwallet: word not in mnemonic wordlist")

	// ErrBadChecksum is returned when a mnemonic's checksum doesn't
	// match its entropy.
	ErrBadChecksum = errors.New("hdwallet: mnemonic checksum mismatch")
)
