package greeter

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/url"
	"strings"
	"syscall"

	"github.com/ethereum/go-ethereum/common"
)

// Sentinel errors for common failure conditions.
var (
	// ErrUnknownMode indicates the network mode is not one of test, falcon or local.
	ErrUnknownMode = errors.New("greeter: no provider found for mode")

	// ErrMissingEndpoint indicates a remote mode was selected without an endpoint URL.
	ErrMissingEndpoint = errors.New("greeter: endpoint required for remote mode")

	// ErrInvalidEndpoint indicates the endpoint is not an http(s) or ws(s) URL.
	ErrInvalidEndpoint = errors.New("greeter: endpoint must be an http(s) or ws(s) URL")

	// ErrNoAccounts indicates the node reported no accounts to use as default.
	ErrNoAccounts = errors.New("greeter: node reports no accounts")

	// ErrContractNotFound indicates the compiler output lacks the requested contract.
	ErrContractNotFound = errors.New("greeter: contract missing from compiler output")

	// ErrEmptyArtifact indicates the compiled contract has no ABI or no bytecode.
	ErrEmptyArtifact = errors.New("greeter: compiled contract has empty abi or bytecode")

	// ErrReceiptFailed indicates a mined transaction reported failure status.
	ErrReceiptFailed = errors.New("greeter: transaction receipt reports failure")

	// ErrConstantMethod indicates a transaction was requested for a read-only method.
	ErrConstantMethod = errors.New("greeter: method is read-only and cannot be transacted")
)

// ConfigurationError indicates unusable network mode, endpoint or account settings.
type ConfigurationError struct {
	Field string
	Value string
	Err   error
}

func (e *ConfigurationError) Error() string {
	if e.Value != "" {
		return fmt.Sprintf("greeter: configuration %s=%q: %v", e.Field, e.Value, e.Err)
	}
	return fmt.Sprintf("greeter: configuration %s: %v", e.Field, e.Err)
}

func (e *ConfigurationError) Unwrap() error {
	return e.Err
}

// CompilationError indicates the compiler rejected the source or its output
// did not contain a usable contract.
type CompilationError struct {
	Contract string
	Messages []string
	Err      error
}

func (e *CompilationError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "greeter: compile %s", e.Contract)
	if e.Err != nil {
		fmt.Fprintf(&b, ": %v", e.Err)
	}
	for _, msg := range e.Messages {
		b.WriteString("\n")
		b.WriteString(strings.TrimSpace(msg))
	}
	return b.String()
}

func (e *CompilationError) Unwrap() error {
	return e.Err
}

// Deployment stages reported by DeploymentError.
const (
	StageEstimateGas = "estimate gas"
	StageSubmit      = "submit"
	StageWaitMined   = "wait mined"
	StageReceipt     = "receipt"
)

// DeploymentError wraps errors that occur while deploying a contract.
type DeploymentError struct {
	Stage  string
	TxHash common.Hash
	Err    error
}

func (e *DeploymentError) Error() string {
	if e.TxHash != (common.Hash{}) {
		return fmt.Sprintf("greeter: deploy (%s, tx %s): %v", e.Stage, e.TxHash.Hex(), e.Err)
	}
	return fmt.Sprintf("greeter: deploy (%s): %v", e.Stage, e.Err)
}

func (e *DeploymentError) Unwrap() error {
	return e.Err
}

// TransactionError indicates a state-changing call was rejected or reverted.
type TransactionError struct {
	Method string
	TxHash common.Hash
	Err    error
}

func (e *TransactionError) Error() string {
	if e.TxHash != (common.Hash{}) {
		return fmt.Sprintf("greeter: transaction %s (tx %s): %v", e.Method, e.TxHash.Hex(), e.Err)
	}
	return fmt.Sprintf("greeter: transaction %s: %v", e.Method, e.Err)
}

func (e *TransactionError) Unwrap() error {
	return e.Err
}

// ConnectivityError indicates the configured endpoint could not be reached.
type ConnectivityError struct {
	Endpoint string
	Op       string
	Err      error
}

func (e *ConnectivityError) Error() string {
	return fmt.Sprintf("greeter: %s via %s: %v", e.Op, e.Endpoint, e.Err)
}

func (e *ConnectivityError) Unwrap() error {
	return e.Err
}

// MethodNotFoundError indicates the contract doesn't have the requested method.
type MethodNotFoundError struct {
	Contract common.Address
	Method   string
}

func (e *MethodNotFoundError) Error() string {
	return fmt.Sprintf("greeter: method %q not found in contract %s", e.Method, e.Contract.Hex())
}

// ArgumentError indicates an issue with a method argument.
type ArgumentError struct {
	Method string
	Index  int
	Err    error
}

func (e *ArgumentError) Error() string {
	return fmt.Sprintf("greeter: argument %d for method %q: %v", e.Index, e.Method, e.Err)
}

func (e *ArgumentError) Unwrap() error {
	return e.Err
}

// isConnectivity reports whether err stems from the transport rather than
// from the node's answer. Context expiry is never a transport failure.
func isConnectivity(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return false
	}
	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		return true
	}
	var netErr net.Error
	if errors.As(err, &netErr) {
		return true
	}
	return errors.Is(err, syscall.ECONNREFUSED) || errors.Is(err, syscall.ECONNRESET)
}

// wrapConnectivity returns err as a *ConnectivityError when it is a
// transport failure and unchanged otherwise.
func wrapConnectivity(endpoint, op string, err error) error {
	if !isConnectivity(err) {
		return err
	}
	var connErr *ConnectivityError
	if errors.As(err, &connErr) {
		return err
	}
	return &ConnectivityError{Endpoint: endpoint, Op: op, Err: err}
}
