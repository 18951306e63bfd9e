package main

import (
	"os"

	"github.com/preston-evans98/sov-warp-utils/cmd/sov-warp-utils/commands"
	"github.com/preston-evans98/sov-warp-utils/cmd/sov-warp-utils/setup"
	"github.com/spf13/cobra"
)

func CmdWarpUtils() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "sov-warp-utils",
		Short:        "Predict warp route identifiers for Sovereign SDK rollups",
		Args:         cobra.ExactArgs(0),
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			args, err := setup.ArgsFromCmd(cmd)
			if err != nil {
				return err
			}
			setup.ConfigureLogger(args)
			return nil
		},
	}
	setup.AddArgs(cmd)

	cmd.AddCommand(commands.CmdDerive())

	return cmd
}

func main() {
	rootCmd := CmdWarpUtils()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
