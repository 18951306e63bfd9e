package warputils

import "crypto/sha256"

// Constants committed to the derivation digests. They must match the
// on-chain warp route deployment logic byte for byte: a mismatch does not
// fail, it silently predicts the wrong identifiers.
const (
	// DefaultDecimals is the decimals the deployment assigns to the
	// synthetic token.
	DefaultDecimals uint8 = 18

	// syntheticTokenNamePrefix is the start of the token name committed to
	// the token ID digest. The full name is this prefix followed by the hex
	// rendering of the warp route ID.
	syntheticTokenNamePrefix = "Synthetic token for "

	// tokenAddressSlotLength is the width of the slot the remote token
	// address occupies in the warp route preimage: a 32-byte word with the
	// 20-byte address right-aligned.
	tokenAddressSlotLength = 32
)

// DeriveWarpRouteID computes the identifier of the warp route that deployer
// would create for the given remote token. The digest is
// sha256(leftpad32(tokenAddress) || 0x00 || deployer).
func DeriveWarpRouteID(tokenAddress Address, deployer Address) WarpRouteID {
	var slot [tokenAddressSlotLength]byte
	copy(slot[tokenAddressSlotLength-AddressLength:], tokenAddress[:])

	h := sha256.New()
	h.Write(slot[:])
	h.Write([]byte{0})
	h.Write(deployer[:])

	var id WarpRouteID
	copy(id[:], h.Sum(nil))
	return id
}

// DeriveTokenID computes the identifier of the synthetic token minted by a
// warp route. The digest is
// sha256(warpRouteID || "Synthetic token for 0x<hex(warpRouteID)>" || decimals).
func DeriveTokenID(warpRouteID WarpRouteID, decimals uint8) TokenID {
	name := syntheticTokenNamePrefix + warpRouteID.String()

	h := sha256.New()
	h.Write(warpRouteID[:])
	h.Write([]byte(name))
	h.Write([]byte{decimals})

	var id TokenID
	copy(id[:], h.Sum(nil))
	return id
}
