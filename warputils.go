package warputils

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/preston-evans98/sov-warp-utils/tokenid"
)

// AddressLength is the byte length of addresses on both sides of a warp
// route: EVM contract addresses and Sovereign SDK rollup accounts.
const AddressLength = 20

// Address is a 20-byte account or contract address. The normalized format is
// 0x-prefixed lowercase hex.
type Address [AddressLength]byte

func (a Address) Bytes() []byte {
	return a[:]
}

func (a Address) String() string {
	return "0x" + hex.EncodeToString(a[:])
}

func (a Address) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

func (a *Address) UnmarshalText(text []byte) error {
	parsed, err := parseAddress(string(text))
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}

// WarpRouteIDLength is the byte length of a warp route identifier digest.
const WarpRouteIDLength = 32

// WarpRouteID names a specific warp route deployment for a given
// (deployer, token) pair. Rendered as 0x-prefixed lowercase hex.
type WarpRouteID [WarpRouteIDLength]byte

func (id WarpRouteID) Bytes() []byte {
	return id[:]
}

func (id WarpRouteID) String() string {
	return "0x" + hex.EncodeToString(id[:])
}

func (id WarpRouteID) MarshalText() ([]byte, error) {
	return []byte(id.String()), nil
}

func (id *WarpRouteID) UnmarshalText(text []byte) error {
	bz, err := hex.DecodeString(strings.TrimPrefix(string(text), "0x"))
	if err != nil {
		return fmt.Errorf("invalid warp route id %q: %w", string(text), err)
	}
	if len(bz) != WarpRouteIDLength {
		return fmt.Errorf("invalid warp route id %q: expected %d bytes, got %d", string(text), WarpRouteIDLength, len(bz))
	}
	copy(id[:], bz)
	return nil
}

// TokenID is the raw 32-byte identifier of the synthetic token minted by a
// warp route. Its canonical textual form is the checksummed encoding
// implemented by the tokenid package.
type TokenID [tokenid.Size]byte

func (id TokenID) Bytes() []byte {
	return id[:]
}

func (id TokenID) String() string {
	encoded, err := tokenid.Encode(id[:])
	if err != nil {
		// the prefix and payload length are fixed, encoding cannot fail
		panic(err)
	}
	return encoded
}

func (id TokenID) MarshalText() ([]byte, error) {
	return []byte(id.String()), nil
}

func (id *TokenID) UnmarshalText(text []byte) error {
	parsed, err := ParseTokenID(string(text))
	if err != nil {
		return err
	}
	*id = parsed
	return nil
}

// ParseTokenID parses the textual form of a token identifier, validating its
// prefix and checksum.
func ParseTokenID(s string) (TokenID, error) {
	payload, err := tokenid.Decode(s)
	if err != nil {
		return TokenID{}, err
	}
	var id TokenID
	copy(id[:], payload)
	return id, nil
}
