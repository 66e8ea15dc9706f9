// Package greeter compiles, deploys and exercises the Greeter demo contract
// on an Ethereum-compatible chain.
//
// The work is a fixed sequence of four steps:
//   - Connect selects a network profile (simulated test chain, the remote
//     "falcon" network, or a local node) and designates a default account
//   - Compiler.CompileGreeter runs solc in standard-JSON mode over the
//     embedded source and extracts the Greeter ABI and bytecode
//   - Deploy estimates gas, submits the creation transaction and waits for
//     its receipt
//   - Interact reads the greeting, updates it, waits for the update to be
//     mined and reads it again
//
// # Basic Usage
//
//	p, err := greeter.Connect(ctx, greeter.TestNetwork())
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer p.Close()
//
//	compiled, err := greeter.NewCompiler(&greeter.ExecSolc{}).CompileGreeter(ctx)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	d, err := greeter.Deploy(ctx, p, compiled)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	g, err := greeter.NewGreeter(d.Address, compiled.ABI, p.Backend())
//	if err != nil {
//	    log.Fatal(err)
//	}
//	_, err = greeter.Interact(ctx, p, g, "Nihao", os.Stdout)
//
// # Network Profiles
//
//   - test: an in-process simulated chain with funded dev accounts; every
//     transaction is sealed into a block immediately.
//
//   - falcon, local: JSON-RPC endpoints. Transactions are signed with a
//     configured private key, or by the node via eth_signTransaction using
//     the first account it reports.
//
// # Errors
//
// Failures are reported as *ConfigurationError, *CompilationError,
// *DeploymentError, *TransactionError or *ConnectivityError. None are
// retried; callers are expected to abort.
package greeter
