package warputils

import (
	"errors"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
)

// Address parsing failure classes. All validation happens up front; the
// derivation itself cannot fail on validated inputs.
var (
	ErrInvalidAddressFormat   = errors.New("invalid address format")
	ErrInvalidDeployerAddress = errors.New("invalid deployer address")
)

func parseAddress(s string) (Address, error) {
	if !common.IsHexAddress(s) {
		return Address{}, fmt.Errorf("%q is not a 20-byte hex address", s)
	}
	return Address(common.HexToAddress(s)), nil
}

// ParseTokenAddress parses the EVM address of the wrapped token contract on
// the origin chain. The 0x prefix is optional and hex digits are
// case-insensitive.
func ParseTokenAddress(s string) (Address, error) {
	addr, err := parseAddress(s)
	if err != nil {
		return Address{}, fmt.Errorf("%w: %w", ErrInvalidAddressFormat, err)
	}
	return addr, nil
}

// ParseDeployerAddress parses the rollup account address that will deploy the
// warp route. Sovereign SDK rollups use the same 20-byte hex address format
// as Ethereum.
func ParseDeployerAddress(s string) (Address, error) {
	addr, err := parseAddress(s)
	if err != nil {
		return Address{}, fmt.Errorf("%w: %w", ErrInvalidDeployerAddress, err)
	}
	return addr, nil
}
