package greeter

import (
	"encoding/hex"
	"encoding/json"
	"sort"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
)

// CompiledContract is the ABI and creation bytecode of one named contract.
// It is not modified after compilation.
type CompiledContract struct {
	Name     string
	ABI      abi.ABI
	RawABI   json.RawMessage
	Bytecode []byte
}

// Artifact is the JSON shape written by `greeter compile`.
type Artifact struct {
	ContractName string          `json:"contractName"`
	ABI          json.RawMessage `json:"abi"`
	Bytecode     string          `json:"bytecode"`
}

// Artifact returns the contract in its printable form.
func (c *CompiledContract) Artifact() Artifact {
	return Artifact{
		ContractName: c.Name,
		ABI:          c.RawABI,
		Bytecode:     "0x" + hex.EncodeToString(c.Bytecode),
	}
}

// Contract is a proxy for a deployed contract. Its method table is resolved
// once from the ABI when the proxy is built.
type Contract struct {
	address common.Address
	abi     abi.ABI
	bound   *bind.BoundContract
	methods map[string]*Method
}

// NewContract binds address and contractABI to backend.
func NewContract(address common.Address, contractABI abi.ABI, backend bind.ContractBackend) *Contract {
	c := &Contract{
		address: address,
		abi:     contractABI,
		bound:   bind.NewBoundContract(address, contractABI, backend, backend, backend),
		methods: make(map[string]*Method, len(contractABI.Methods)),
	}
	for name, m := range contractABI.Methods {
		c.methods[name] = newMethod(c, m)
	}
	return c
}

// Address returns the contract address.
func (c *Contract) Address() common.Address {
	return c.address
}

// ABI returns the contract ABI.
func (c *Contract) ABI() abi.ABI {
	return c.abi
}

// Method returns the descriptor for the named method.
func (c *Contract) Method(name string) (*Method, error) {
	m, ok := c.methods[name]
	if !ok {
		return nil, &MethodNotFoundError{Contract: c.address, Method: name}
	}
	return m, nil
}

// HasMethod returns true if the contract has a method with the given name.
func (c *Contract) HasMethod(name string) bool {
	_, ok := c.methods[name]
	return ok
}

// MethodNames returns all method names in the contract ABI, sorted.
func (c *Contract) MethodNames() []string {
	names := make([]string, 0, len(c.methods))
	for name := range c.methods {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Call invokes a method without a transaction and returns its outputs.
func (c *Contract) Call(opts *bind.CallOpts, name string, args ...any) ([]any, error) {
	m, err := c.Method(name)
	if err != nil {
		return nil, err
	}
	if err := m.checkArgs(args); err != nil {
		return nil, err
	}
	var out []any
	if err := c.bound.Call(opts, &out, name, args...); err != nil {
		return nil, err
	}
	return out, nil
}

// Transact submits a transaction invoking a state-changing method.
func (c *Contract) Transact(opts *bind.TransactOpts, name string, args ...any) (*types.Transaction, error) {
	m, err := c.Method(name)
	if err != nil {
		return nil, err
	}
	if m.IsConstant() {
		return nil, ErrConstantMethod
	}
	if err := m.checkArgs(args); err != nil {
		return nil, err
	}
	return c.bound.Transact(opts, name, args...)
}

// ParseABI parses a JSON ABI string into an abi.ABI.
func ParseABI(abiJSON string) (abi.ABI, error) {
	return abi.JSON(strings.NewReader(abiJSON))
}

// MustParseABI is like ParseABI but panics on error.
func MustParseABI(abiJSON string) abi.ABI {
	parsed, err := ParseABI(abiJSON)
	if err != nil {
		panic(err)
	}
	return parsed
}
