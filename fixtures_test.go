package greeter

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/require"
)

// greeterABIJSON is the ABI solc 0.4 emits for GreeterSource.
const greeterABIJSON = `[
	{"constant":false,"inputs":[{"name":"_greeting","type":"string"}],"name":"setGreeting","outputs":[],"payable":false,"stateMutability":"nonpayable","type":"function"},
	{"constant":true,"inputs":[],"name":"greet","outputs":[{"name":"","type":"string"}],"payable":false,"stateMutability":"view","type":"function"},
	{"constant":true,"inputs":[],"name":"greeting","outputs":[{"name":"","type":"string"}],"payable":false,"stateMutability":"view","type":"function"},
	{"inputs":[],"payable":false,"stateMutability":"nonpayable","type":"constructor"}
]`

// greeterCode deploys a storage contract that behaves like the compiled
// Greeter: it starts out holding "Hello", any call carrying arguments stores
// them and any call without arguments returns the stored value. The stored
// value is the ABI encoding of the string, so setGreeting's argument words
// are exactly greet's return words.
//
// Storage: slot 0 holds the word count n, slots 1..n the encoded words.
//
//	init:    SSTORE(0, 3) SSTORE(1, 0x20) SSTORE(2, 5) SSTORE(3, "Hello")
//	         PUSH1 0x57 PUSH1 0x3f PUSH1 0 CODECOPY PUSH1 0x57 PUSH1 0 RETURN
//	runtime: CALLDATASIZE > 4 ? write : read
//	read:    copy SLOAD(1..n) to memory, RETURN(0, n*32)
//	write:   n = (CALLDATASIZE-4)/32, SSTORE(i+1, CALLDATALOAD(4+32i)), SSTORE(0, n)
var greeterCode = "6003600055602060015560056002557f" +
	"48656c6c6f" + strings.Repeat("00", 27) +
	"6003556057603f60003960576000f3" +
	"60043611602c5760005460005b8181101560245780600101548160200252600101600c565b506020026000f3" +
	"5b6020600436030460005b81811015605157806020026004013581600101556001016036565b5060005500"

// revertCode deploys a contract whose runtime always reverts.
//
//	init:    PUSH1 5 PUSH1 0x0c PUSH1 0 CODECOPY PUSH1 5 PUSH1 0 RETURN
//	runtime: PUSH1 0 PUSH1 0 REVERT
const revertCode = "6005600c60003960056000f3" + "60006000fd"

// invalidCode aborts the constructor with the INVALID opcode.
const invalidCode = "fe"

func compiledFixture(t *testing.T, code string) *CompiledContract {
	t.Helper()
	return &CompiledContract{
		Name:     GreeterContract,
		ABI:      MustParseABI(greeterABIJSON),
		RawABI:   json.RawMessage(greeterABIJSON),
		Bytecode: common.FromHex(code),
	}
}

// solcOutput renders a standard-JSON output document holding one contract.
func solcOutput(t *testing.T, unit, contract, abiJSON, bytecode string, diags ...SolcError) []byte {
	t.Helper()
	entry := map[string]any{
		"abi": json.RawMessage(abiJSON),
		"evm": map[string]any{"bytecode": map[string]any{"object": bytecode}},
	}
	doc := map[string]any{
		"contracts": map[string]any{unit: map[string]any{contract: entry}},
	}
	if len(diags) > 0 {
		doc["errors"] = diags
	}
	out, err := json.Marshal(doc)
	require.NoError(t, err)
	return out
}

func connectTest(t *testing.T, opts ...ProviderOption) *Provider {
	t.Helper()
	p, err := Connect(context.Background(), TestNetwork(), opts...)
	require.NoError(t, err)
	t.Cleanup(func() { _ = p.Close() })
	return p
}

// stopMining makes p submit transactions without sealing blocks, so receipt
// waits can only end by timing out.
func stopMining(t *testing.T, p *Provider) {
	t.Helper()
	auto, ok := p.backend.(*autoMiningClient)
	require.True(t, ok)
	p.backend = auto.Client
}

func deployFixture(t *testing.T, p *Provider, code string) (*Deployment, *Greeter) {
	t.Helper()
	compiled := compiledFixture(t, code)
	d, err := Deploy(context.Background(), p, compiled)
	require.NoError(t, err)
	g, err := NewGreeter(d.Address, compiled.ABI, p.Backend())
	require.NoError(t, err)
	return d, g
}
