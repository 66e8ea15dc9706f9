package greeter

import (
	"bytes"
	"context"
	"os"
	"os/exec"
	"testing"

	"github.com/stretchr/testify/require"
)

// solcForTest returns a solc 0.4.x binary or skips the test.
func solcForTest(t *testing.T) *ExecSolc {
	t.Helper()
	if os.Getenv("INTEGRATION_TEST") != "1" {
		t.Skip("Set INTEGRATION_TEST=1 (and GREETER_SOLC_PATH to a solc 0.4.x binary) to run")
	}
	path := os.Getenv("GREETER_SOLC_PATH")
	if path == "" {
		path = "solc"
	}
	resolved, err := exec.LookPath(path)
	if err != nil {
		t.Skipf("solc not available: %v", err)
	}
	return &ExecSolc{Path: resolved}
}

func TestE2E_CompileGreeterSource(t *testing.T) {
	solc := solcForTest(t)

	compiled, err := NewCompiler(solc).CompileGreeter(context.Background())
	require.NoError(t, err)
	require.NotEmpty(t, compiled.RawABI)
	require.NotEmpty(t, compiled.Bytecode)
	require.Contains(t, compiled.ABI.Methods, MethodGreet)
	require.Contains(t, compiled.ABI.Methods, MethodSetGreeting)
	require.Contains(t, compiled.ABI.Methods, MethodGreeting)
}

func TestE2E_BrokenSourceIsCompilationError(t *testing.T) {
	solc := solcForTest(t)

	_, err := NewCompiler(solc).Compile(context.Background(), "contract", "pragma solidity ^0.4.0; contract Greeter {", GreeterContract)
	var compErr *CompilationError
	require.ErrorAs(t, err, &compErr)
	require.NotEmpty(t, compErr.Messages)
}

func TestE2E_DeployReadWriteRead(t *testing.T) {
	solc := solcForTest(t)
	ctx := context.Background()

	compiled, err := NewCompiler(solc).CompileGreeter(ctx)
	require.NoError(t, err)

	p := connectTest(t)
	d, err := Deploy(ctx, p, compiled)
	require.NoError(t, err)
	g, err := NewGreeter(d.Address, compiled.ABI, p.Backend())
	require.NoError(t, err)

	first, err := g.Greet(p.CallOpts(ctx))
	require.NoError(t, err)
	require.Equal(t, "Hello", first)
	again, err := g.Greet(p.CallOpts(ctx))
	require.NoError(t, err)
	require.Equal(t, first, again)

	var out bytes.Buffer
	res, err := Interact(ctx, p, g, "Nihao", &out)
	require.NoError(t, err)
	require.Equal(t, "Hello", res.Before)
	require.Equal(t, "Nihao", res.After)
	require.Equal(t, "Contract value: Hello\nSetting value to: Nihao\nContract value: Nihao\n", out.String())

	public, err := g.Greeting(p.CallOpts(ctx))
	require.NoError(t, err)
	require.Equal(t, "Nihao", public)
}
