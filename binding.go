package greeter

import (
	"fmt"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
)

// Greeter method names.
const (
	MethodGreet       = "greet"
	MethodGreeting    = "greeting"
	MethodSetGreeting = "setGreeting"
)

// Greeter is a typed wrapper around a deployed Greeter contract.
type Greeter struct {
	contract *Contract
}

// NewGreeter binds a deployed Greeter. It fails if the ABI lacks greet or
// setGreeting.
func NewGreeter(address common.Address, contractABI abi.ABI, backend bind.ContractBackend) (*Greeter, error) {
	c := NewContract(address, contractABI, backend)
	for _, name := range []string{MethodGreet, MethodSetGreeting} {
		if _, err := c.Method(name); err != nil {
			return nil, err
		}
	}
	return &Greeter{contract: c}, nil
}

// Address returns the contract address.
func (g *Greeter) Address() common.Address {
	return g.contract.Address()
}

// Contract returns the untyped proxy.
func (g *Greeter) Contract() *Contract {
	return g.contract
}

// Greet calls greet() and returns the stored greeting.
func (g *Greeter) Greet(opts *bind.CallOpts) (string, error) {
	return g.callString(opts, MethodGreet)
}

// Greeting reads the public greeting variable. Solidity generates this
// getter, so it may be absent from hand-written ABIs.
func (g *Greeter) Greeting(opts *bind.CallOpts) (string, error) {
	return g.callString(opts, MethodGreeting)
}

// SetGreeting submits setGreeting(greeting). It does not wait for mining.
func (g *Greeter) SetGreeting(opts *bind.TransactOpts, greeting string) (*types.Transaction, error) {
	return g.contract.Transact(opts, MethodSetGreeting, greeting)
}

func (g *Greeter) callString(opts *bind.CallOpts, method string) (string, error) {
	out, err := g.contract.Call(opts, method)
	if err != nil {
		return "", err
	}
	if len(out) != 1 {
		return "", fmt.Errorf("greeter: %s returned %d values, want 1", method, len(out))
	}
	return *abi.ConvertType(out[0], new(string)).(*string), nil
}
