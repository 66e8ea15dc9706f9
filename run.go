package greeter

import (
	"context"
	"errors"
	"io"

	"github.com/ethereum/go-ethereum/log"
)

// Run connects, compiles, deploys and drives the Greeter contract once,
// writing the observed values to w. Any failure aborts the run.
func Run(ctx context.Context, cfg *Config, w io.Writer) error {
	return run(ctx, cfg, &ExecSolc{Path: cfg.SolcPath}, w)
}

func run(ctx context.Context, cfg *Config, solc Solc, w io.Writer) (err error) {
	network, err := cfg.Network()
	if err != nil {
		return err
	}
	popts, err := cfg.ProviderOptions()
	if err != nil {
		return err
	}
	log.Debug("Loaded configuration", "config", SafeConfig(*cfg))

	p, err := Connect(ctx, network, popts...)
	if err != nil {
		return err
	}
	defer func() {
		err = errors.Join(err, p.Close())
	}()

	compiled, err := NewCompiler(solc).CompileGreeter(ctx)
	if err != nil {
		return err
	}

	deployment, err := Deploy(ctx, p, compiled, cfg.TxOptions()...)
	if err != nil {
		return err
	}

	g, err := NewGreeter(deployment.Address, compiled.ABI, p.Backend())
	if err != nil {
		return err
	}
	_, err = Interact(ctx, p, g, cfg.Greeting, w, cfg.TxOptions()...)
	return err
}
