package hdwallet

// Purpose is the BIP-43/44 purpose constant: m/44'/...
const Purpose uint32 = 44

// DeriveKeyFromPath derives a private key from a master key using BIP44
// hierarchical deterministic derivation.
// BIP44 defines a specific derivation path structure: m/purpose'/coin_type'/account'/change/address_index
// Where:
// - purpose: Always 44' (0x8000002C) for BIP44 compliance
// - coin_type: Registered coin type (e.g., 0' for Bitcoin, 60' for Ethereum)
// - account: Account index starting from 0' (allows multiple accounts per coin)
// - change: 0 for external chain (receiving addresses), 1 for internal chain (change addresses)
// - address_index: Address index starting from 0 (sequential address generation)
//
// The apostrophe (') indicates hardened derivation (adds 0x80000000 to the index).
func DeriveKeyFromPath(masterKey *ExtendedPrivateKey, coin, account, chain, address uint32) (*ExtendedPrivateKey, error) {
	// Step 1: Derive purpose level (m/44')
	child, err := DeriveChild(masterKey, Purpose+HardenedOffset)
	if err != nil {
		return nil, err
	}

	// Step 2: Derive coin type level (m/44'/coin_type')
	// Full registry: https://github.com/satoshilabs/slips/blob/master/slip-0044.md
	child, err = DeriveChild(child, coin+HardenedOffset)
	if err != nil {
		return nil, err
	}

	// Step 3: Derive account level (m/44'/coin_type'/account')
	child, err = DeriveChild(child, account+HardenedOffset)
	if err != nil {
		return nil, err
	}

	// Step 4: Derive change level (m/44'/coin_type'/account'/change) — not hardened.
	child, err = DeriveChild(child, chain)
	if err != nil {
		return nil, err
	}

	// Step 5: Derive address index level — not hardened.
	child, err = DeriveChild(child, address)
	if err != nil {
		return nil, err
	}

	return child, nil
}
