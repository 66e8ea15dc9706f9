package commands

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	greeter "github.com/branched-services/go-greeter"
)

var (
	cfg *greeter.Config

	mode           string
	endpoint       string
	solcPath       string
	privateKey     string
	receiptTimeout time.Duration
	verbosity      int
)

// Execute runs the greeter command tree until it finishes or the process is
// interrupted.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return newRootCmd().ExecuteContext(ctx)
}

func newRootCmd() *cobra.Command {
	run := runCmd()
	root := &cobra.Command{
		Use:   "greeter",
		Short: "Compile, deploy and exercise the Greeter contract",
		Long: `Compiles the embedded Greeter contract, deploys it to the selected network
and prints its greeting before and after an update.

Settings are read from GREETER_* environment variables; flags override them.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			env, err := greeter.Environment()
			if err != nil {
				return err
			}
			flags := cmd.Flags()
			if flags.Changed("mode") {
				env.Mode = mode
			}
			if flags.Changed("endpoint") {
				env.Endpoint = endpoint
			}
			if flags.Changed("solc") {
				env.SolcPath = solcPath
			}
			if flags.Changed("private-key") {
				env.PrivateKey = privateKey
			}
			if flags.Changed("receipt-timeout") {
				env.ReceiptTimeout = receiptTimeout
			}
			if flags.Changed("verbosity") {
				env.Verbosity = verbosity
			}
			setupLogging(cmd.ErrOrStderr(), env.Verbosity)
			cfg = env
			return nil
		},
		RunE: run.RunE,
	}

	pf := root.PersistentFlags()
	pf.StringVar(&mode, "mode", "test", "network mode: test, falcon or local ($GREETER_MODE)")
	pf.StringVar(&endpoint, "endpoint", "", "RPC endpoint for falcon/local, e.g. http://127.0.0.1:8545 ($GREETER_ENDPOINT)")
	pf.StringVar(&solcPath, "solc", "solc", "path to a solc 0.4.x binary ($GREETER_SOLC_PATH)")
	pf.StringVar(&privateKey, "private-key", "", "hex private key used to sign ($GREETER_PRIVATE_KEY)")
	pf.DurationVar(&receiptTimeout, "receipt-timeout", greeter.DefaultReceiptTimeout, "max wait for each receipt ($GREETER_RECEIPT_TIMEOUT)")
	pf.IntVar(&verbosity, "verbosity", 3, "log level 0-5 ($GREETER_VERBOSITY)")

	root.Flags().AddFlagSet(run.LocalFlags())
	root.AddCommand(run, compileCmd())
	return root
}
