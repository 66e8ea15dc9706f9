package commands

import (
	"encoding/json"

	"github.com/spf13/cobra"

	greeter "github.com/branched-services/go-greeter"
)

func compileCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "compile",
		Short: "Compile the Greeter contract and print its ABI and bytecode",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			compiled, err := greeter.NewCompiler(&greeter.ExecSolc{Path: cfg.SolcPath}).CompileGreeter(cmd.Context())
			if err != nil {
				return err
			}
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(compiled.Artifact())
		},
	}
}
