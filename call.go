package greeter

import (
	"fmt"

	"github.com/ethereum/go-ethereum/accounts/abi"
)

// Method describes one callable method of a Contract: its inputs, outputs
// and mutability.
type Method struct {
	contract *Contract
	method   abi.Method
}

func newMethod(contract *Contract, method abi.Method) *Method {
	return &Method{contract: contract, method: method}
}

// Contract returns the contract the method belongs to.
func (m *Method) Contract() *Contract {
	return m.contract
}

// Name returns the method name.
func (m *Method) Name() string {
	return m.method.Name
}

// Signature returns the canonical signature, e.g. "setGreeting(string)".
func (m *Method) Signature() string {
	return m.method.Sig
}

// Inputs returns the method's input arguments.
func (m *Method) Inputs() abi.Arguments {
	return m.method.Inputs
}

// Outputs returns the method's return values.
func (m *Method) Outputs() abi.Arguments {
	return m.method.Outputs
}

// Mutability returns the declared state mutability (view, pure, nonpayable
// or payable).
func (m *Method) Mutability() string {
	if m.method.StateMutability != "" {
		return m.method.StateMutability
	}
	switch {
	case m.method.Constant:
		return "view"
	case m.method.Payable:
		return "payable"
	default:
		return "nonpayable"
	}
}

// IsConstant returns true if the method does not modify state.
func (m *Method) IsConstant() bool {
	return m.method.IsConstant()
}

// HasReturnValue returns true if the method has a return value.
func (m *Method) HasReturnValue() bool {
	return len(m.method.Outputs) > 0
}

// Selector returns the 4-byte function selector.
func (m *Method) Selector() [4]byte {
	var sel [4]byte
	copy(sel[:], m.method.ID[:4])
	return sel
}

// checkArgs verifies argument count and that each argument packs as the
// declared input type.
func (m *Method) checkArgs(args []any) error {
	if len(args) != len(m.method.Inputs) {
		return &ArgumentError{
			Method: m.method.Name,
			Index:  len(args),
			Err:    fmt.Errorf("got %d arguments, want %d", len(args), len(m.method.Inputs)),
		}
	}
	for i, arg := range args {
		if _, err := (abi.Arguments{m.method.Inputs[i]}).Pack(arg); err != nil {
			return &ArgumentError{Method: m.method.Name, Index: i, Err: err}
		}
	}
	return nil
}
