// Package tokenid implements the checksummed text encoding of Sovereign SDK
// token identifiers: bech32m with the human-readable prefix "token_".
package tokenid

import (
	"fmt"

	"github.com/btcsuite/btcd/btcutil/bech32"
)

const (
	// HRP is the human-readable prefix of encoded token identifiers.
	HRP = "token_"

	// Size is the byte length of a token identifier payload.
	Size = 32
)

// Encode renders a raw 32-byte token identifier as a bech32m string.
func Encode(payload []byte) (string, error) {
	if len(payload) != Size {
		return "", fmt.Errorf("expected token identifier length %d, got %d", Size, len(payload))
	}
	converted, err := bech32.ConvertBits(payload, 8, 5, true)
	if err != nil {
		return "", err
	}
	return bech32.EncodeM(HRP, converted)
}

// Decode parses an encoded token identifier, validating the checksum, the
// prefix and the payload length.
func Decode(s string) ([]byte, error) {
	hrp, data, version, err := bech32.DecodeGeneric(s)
	if err != nil {
		return nil, fmt.Errorf("invalid token identifier %s: %w", s, err)
	}
	if version != bech32.VersionM {
		return nil, fmt.Errorf("invalid token identifier %s: not bech32m", s)
	}
	if hrp != HRP {
		return nil, fmt.Errorf("invalid token identifier %s: wrong prefix %q, expected %q", s, hrp, HRP)
	}
	payload, err := bech32.ConvertBits(data, 5, 8, false)
	if err != nil {
		return nil, fmt.Errorf("invalid token identifier %s: %w", s, err)
	}
	if len(payload) != Size {
		return nil, fmt.Errorf("invalid token identifier %s: invalid length %d, expected %d", s, len(payload), Size)
	}
	return payload, nil
}
