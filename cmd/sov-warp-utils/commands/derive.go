package commands

import (
	"fmt"

	warputils "github.com/preston-evans98/sov-warp-utils"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func CmdDerive() *cobra.Command {
	var deployerInput string
	var tokenAddressInput string
	var decimals uint8
	cmd := &cobra.Command{
		Use:   "derive",
		Short: "Derive the warp route ID and token ID for bridging native Ether from an EVM chain to a Sovereign SDK rollup.",
		Args:  cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, args []string) error {
			deployer, err := warputils.ParseDeployerAddress(deployerInput)
			if err != nil {
				return err
			}
			tokenAddress, err := warputils.ParseTokenAddress(tokenAddressInput)
			if err != nil {
				return err
			}

			warpRouteID := warputils.DeriveWarpRouteID(tokenAddress, deployer)
			tokenID := warputils.DeriveTokenID(warpRouteID, decimals)
			logrus.WithFields(logrus.Fields{
				"deployer": deployer,
				"token":    tokenAddress,
				"decimals": decimals,
			}).Debug("derived warp route identifiers")

			fmt.Fprintf(cmd.OutOrStdout(), "Warp Route ID: %s\n", warpRouteID)
			fmt.Fprintf(cmd.OutOrStdout(), "Token ID: %s\n", tokenID)

			return nil
		},
	}
	cmd.Flags().StringVarP(&deployerInput, "deployer", "d", "", "Address that will deploy the warp route on the Sovereign SDK rollup.")
	cmd.Flags().StringVarP(&tokenAddressInput, "token-address", "t", "", "Ethereum address of the wrapped token on the EVM chain.")
	cmd.Flags().Uint8Var(&decimals, "decimals", warputils.DefaultDecimals, "Decimals of the synthetic token minted on the rollup.")
	_ = cmd.MarkFlagRequired("deployer")
	_ = cmd.MarkFlagRequired("token-address")
	return cmd
}
