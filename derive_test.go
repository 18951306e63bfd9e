package warputils_test

import (
	"testing"

	warputils "github.com/preston-evans98/sov-warp-utils"
	"github.com/stretchr/testify/require"
)

// Reference fixture produced by an actual warp route deployment.
const (
	fixtureDeployer     = "0xD2C1bE33A0BcD2007136afD8Ed61CC7561aDa747"
	fixtureTokenAddress = "0x4ed7c70F96B99c776995fB64377f0d4aB3B0e1C1"
	fixtureWarpRouteID  = "0x9c081539d40ef7b02d359c5d694e006f0c1130097466cd22d062e07065c6987a"
	fixtureTokenID      = "token_195zght0wmhcx9j462jtj9lypdua4xw07r6jnjfjsddsmzeh2wswq8kfe5m"
)

func parseFixture(t *testing.T) (deployer warputils.Address, tokenAddress warputils.Address) {
	var err error
	deployer, err = warputils.ParseDeployerAddress(fixtureDeployer)
	require.NoError(t, err)
	tokenAddress, err = warputils.ParseTokenAddress(fixtureTokenAddress)
	require.NoError(t, err)
	return deployer, tokenAddress
}

func TestDeriveWarpRouteID(t *testing.T) {
	deployer, tokenAddress := parseFixture(t)

	warpRouteID := warputils.DeriveWarpRouteID(tokenAddress, deployer)
	require.Equal(t, fixtureWarpRouteID, warpRouteID.String())
}

func TestDeriveTokenID(t *testing.T) {
	deployer, tokenAddress := parseFixture(t)

	warpRouteID := warputils.DeriveWarpRouteID(tokenAddress, deployer)
	tokenID := warputils.DeriveTokenID(warpRouteID, warputils.DefaultDecimals)
	require.Equal(t, fixtureTokenID, tokenID.String())
}

func TestDeriveIsDeterministic(t *testing.T) {
	deployer, tokenAddress := parseFixture(t)

	first := warputils.DeriveWarpRouteID(tokenAddress, deployer)
	for i := 0; i < 10; i++ {
		again := warputils.DeriveWarpRouteID(tokenAddress, deployer)
		require.Equal(t, first, again)
		require.Equal(t, warputils.DeriveTokenID(first, 18), warputils.DeriveTokenID(again, 18))
	}
}

func TestDeriveSensitivity(t *testing.T) {
	deployer, tokenAddress := parseFixture(t)
	warpRouteID := warputils.DeriveWarpRouteID(tokenAddress, deployer)

	// flipping any single byte of either input changes the warp route ID
	for i := 0; i < warputils.AddressLength; i++ {
		altDeployer := deployer
		altDeployer[i] ^= 0x01
		require.NotEqual(t, warpRouteID, warputils.DeriveWarpRouteID(tokenAddress, altDeployer))

		altToken := tokenAddress
		altToken[i] ^= 0x01
		require.NotEqual(t, warpRouteID, warputils.DeriveWarpRouteID(altToken, deployer))
	}

	// swapping the argument order must not yield the same identifier
	require.NotEqual(t, warpRouteID, warputils.DeriveWarpRouteID(deployer, tokenAddress))
}

func TestDeriveTokenIDCommitsDecimals(t *testing.T) {
	deployer, tokenAddress := parseFixture(t)
	warpRouteID := warputils.DeriveWarpRouteID(tokenAddress, deployer)

	require.NotEqual(t,
		warputils.DeriveTokenID(warpRouteID, 18),
		warputils.DeriveTokenID(warpRouteID, 6),
	)
}

func TestWarpRouteIDFormat(t *testing.T) {
	deployer, tokenAddress := parseFixture(t)

	warpRouteID := warputils.DeriveWarpRouteID(tokenAddress, deployer)
	require.Regexp(t, "^0x[0-9a-f]{64}$", warpRouteID.String())
}

func TestTokenIDFormat(t *testing.T) {
	deployer, tokenAddress := parseFixture(t)

	warpRouteID := warputils.DeriveWarpRouteID(tokenAddress, deployer)
	tokenID := warputils.DeriveTokenID(warpRouteID, warputils.DefaultDecimals)
	require.Regexp(t, "^token_1[02-9ac-hj-np-z]+$", tokenID.String())
}
