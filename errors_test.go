package greeter

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/url"
	"syscall"
	"testing"

	"github.com/ethereum/go-ethereum/common"
)

func TestSentinelErrors(t *testing.T) {
	tests := []struct {
		name string
		err  error
		msg  string
	}{
		{"ErrUnknownMode", ErrUnknownMode, "greeter: no provider found for mode"},
		{"ErrMissingEndpoint", ErrMissingEndpoint, "greeter: endpoint required for remote mode"},
		{"ErrInvalidEndpoint", ErrInvalidEndpoint, "greeter: endpoint must be an http(s) or ws(s) URL"},
		{"ErrNoAccounts", ErrNoAccounts, "greeter: node reports no accounts"},
		{"ErrContractNotFound", ErrContractNotFound, "greeter: contract missing from compiler output"},
		{"ErrEmptyArtifact", ErrEmptyArtifact, "greeter: compiled contract has empty abi or bytecode"},
		{"ErrReceiptFailed", ErrReceiptFailed, "greeter: transaction receipt reports failure"},
		{"ErrConstantMethod", ErrConstantMethod, "greeter: method is read-only and cannot be transacted"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.err.Error() != tt.msg {
				t.Errorf("Expected error message %q, got %q", tt.msg, tt.err.Error())
			}
		})
	}
}

func TestConfigurationError(t *testing.T) {
	t.Run("with value", func(t *testing.T) {
		err := &ConfigurationError{Field: "mode", Value: "mainnet", Err: ErrUnknownMode}

		expected := `greeter: configuration mode="mainnet": greeter: no provider found for mode`
		if err.Error() != expected {
			t.Errorf("Expected error message %q, got %q", expected, err.Error())
		}
		if !errors.Is(err, ErrUnknownMode) {
			t.Error("errors.Is should find ErrUnknownMode in chain")
		}
	})

	t.Run("without value", func(t *testing.T) {
		err := &ConfigurationError{Field: "endpoint", Err: ErrMissingEndpoint}

		expected := "greeter: configuration endpoint: greeter: endpoint required for remote mode"
		if err.Error() != expected {
			t.Errorf("Expected error message %q, got %q", expected, err.Error())
		}
	})
}

func TestCompilationError(t *testing.T) {
	t.Run("lists compiler messages", func(t *testing.T) {
		err := &CompilationError{
			Contract: "Greeter",
			Messages: []string{"ParserError: Expected ';'\n", "TypeError: bad"},
			Err:      errors.New("2 compiler error(s)"),
		}

		expected := "greeter: compile Greeter: 2 compiler error(s)\nParserError: Expected ';'\nTypeError: bad"
		if err.Error() != expected {
			t.Errorf("Expected error message %q, got %q", expected, err.Error())
		}
	})

	t.Run("error chain with errors.Is", func(t *testing.T) {
		err := &CompilationError{Contract: "Greeter", Err: fmt.Errorf("%w: contract:Greeter", ErrContractNotFound)}

		if !errors.Is(err, ErrContractNotFound) {
			t.Error("errors.Is should find ErrContractNotFound in chain")
		}
	})
}

func TestDeploymentError(t *testing.T) {
	t.Run("without tx hash", func(t *testing.T) {
		err := &DeploymentError{Stage: StageEstimateGas, Err: errors.New("invalid opcode")}

		expected := "greeter: deploy (estimate gas): invalid opcode"
		if err.Error() != expected {
			t.Errorf("Expected error message %q, got %q", expected, err.Error())
		}
	})

	t.Run("with tx hash", func(t *testing.T) {
		hash := common.HexToHash("0x01")
		err := &DeploymentError{Stage: StageReceipt, TxHash: hash, Err: ErrReceiptFailed}

		expected := "greeter: deploy (receipt, tx " + hash.Hex() + "): greeter: transaction receipt reports failure"
		if err.Error() != expected {
			t.Errorf("Expected error message %q, got %q", expected, err.Error())
		}
		if !errors.Is(err, ErrReceiptFailed) {
			t.Error("errors.Is should find ErrReceiptFailed in chain")
		}
	})
}

func TestTransactionError(t *testing.T) {
	innerErr := errors.New("execution reverted")
	err := &TransactionError{Method: "setGreeting", Err: innerErr}

	expected := "greeter: transaction setGreeting: execution reverted"
	if err.Error() != expected {
		t.Errorf("Expected error message %q, got %q", expected, err.Error())
	}
	if err.Unwrap() != innerErr {
		t.Error("Unwrap should return the inner error")
	}
}

func TestMethodNotFoundError(t *testing.T) {
	addr := common.HexToAddress("0x1234567890123456789012345678901234567890")
	err := &MethodNotFoundError{
		Contract: addr,
		Method:   "transfer",
	}

	expected := `greeter: method "transfer" not found in contract 0x1234567890123456789012345678901234567890`
	if err.Error() != expected {
		t.Errorf("Expected error message %q, got %q", expected, err.Error())
	}
}

func TestArgumentError(t *testing.T) {
	innerErr := errors.New("invalid type")
	err := &ArgumentError{
		Method: "setGreeting",
		Index:  0,
		Err:    innerErr,
	}

	expected := `greeter: argument 0 for method "setGreeting": invalid type`
	if err.Error() != expected {
		t.Errorf("Expected error message %q, got %q", expected, err.Error())
	}
	if err.Unwrap() != innerErr {
		t.Error("Unwrap should return the inner error")
	}
}

func TestWrapConnectivity(t *testing.T) {
	t.Run("wraps url errors", func(t *testing.T) {
		inner := &url.Error{Op: "Post", URL: "http://127.0.0.1:1", Err: syscall.ECONNREFUSED}
		err := wrapConnectivity("http://127.0.0.1:1", "eth_chainId", inner)

		var connErr *ConnectivityError
		if !errors.As(err, &connErr) {
			t.Fatalf("Expected *ConnectivityError, got %T", err)
		}
		if connErr.Op != "eth_chainId" {
			t.Errorf("Expected op eth_chainId, got %q", connErr.Op)
		}
		if !errors.Is(err, syscall.ECONNREFUSED) {
			t.Error("errors.Is should find ECONNREFUSED in chain")
		}
	})

	t.Run("wraps net errors", func(t *testing.T) {
		inner := &net.OpError{Op: "dial", Net: "tcp", Err: errors.New("no route to host")}
		var connErr *ConnectivityError
		if !errors.As(wrapConnectivity("ws://node", "dial", inner), &connErr) {
			t.Error("Expected net.Error to be classified as connectivity")
		}
	})

	t.Run("leaves node answers alone", func(t *testing.T) {
		inner := errors.New("execution reverted")
		if err := wrapConnectivity("http://node", "call", inner); err != inner {
			t.Errorf("Expected error to be returned unchanged, got %v", err)
		}
	})

	t.Run("does not double wrap", func(t *testing.T) {
		inner := &ConnectivityError{Endpoint: "a", Op: "dial", Err: syscall.ECONNREFUSED}
		if err := wrapConnectivity("b", "call", fmt.Errorf("x: %w", inner)); errors.Unwrap(err) != inner {
			t.Errorf("Expected existing ConnectivityError to be kept, got %v", err)
		}
	})

	t.Run("leaves context expiry alone", func(t *testing.T) {
		for _, inner := range []error{
			context.DeadlineExceeded,
			context.Canceled,
			fmt.Errorf("wait mined: %w", context.DeadlineExceeded),
			&url.Error{Op: "Post", URL: "http://node", Err: context.DeadlineExceeded},
		} {
			if err := wrapConnectivity("http://node", "wait mined", inner); err != inner {
				t.Errorf("Expected %v to be returned unchanged, got %v", inner, err)
			}
		}
	})

	t.Run("nil stays nil", func(t *testing.T) {
		if err := wrapConnectivity("a", "b", nil); err != nil {
			t.Errorf("Expected nil, got %v", err)
		}
	})
}

func TestErrorsAreDistinct(t *testing.T) {
	sentinelErrors := []error{
		ErrUnknownMode,
		ErrMissingEndpoint,
		ErrInvalidEndpoint,
		ErrNoAccounts,
		ErrContractNotFound,
		ErrEmptyArtifact,
		ErrReceiptFailed,
		ErrConstantMethod,
	}

	for i, err1 := range sentinelErrors {
		for j, err2 := range sentinelErrors {
			if i != j && errors.Is(err1, err2) {
				t.Errorf("Sentinel errors %d and %d should be distinct", i, j)
			}
		}
	}
}
