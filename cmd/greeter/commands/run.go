package commands

import (
	"github.com/spf13/cobra"

	greeter "github.com/branched-services/go-greeter"
)

var greeting string

// runGreeter is replaced in tests.
var runGreeter = greeter.Run

func runCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Deploy the contract, then read, update and re-read its greeting",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("greeting") {
				cfg.Greeting = greeting
			}
			return runGreeter(cmd.Context(), cfg, cmd.OutOrStdout())
		},
	}
	cmd.Flags().StringVar(&greeting, "greeting", "Nihao", "value passed to setGreeting ($GREETER_GREETING)")
	return cmd
}
