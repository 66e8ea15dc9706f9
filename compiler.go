package greeter

import (
	"bytes"
	"context"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os/exec"
	"strings"

	"github.com/ethereum/go-ethereum/log"
)

//go:generate mockgen -source=compiler.go -destination=solc_mocks.go -package=greeter

// Solc compiles a standard-JSON input document into a standard-JSON output
// document.
type Solc interface {
	CompileStandard(ctx context.Context, input []byte) ([]byte, error)
}

// ExecSolc runs the solc executable in --standard-json mode.
type ExecSolc struct {
	// Path of the solc binary; "solc" is looked up in PATH when empty.
	Path string
}

func (s *ExecSolc) path() string {
	if s.Path == "" {
		return "solc"
	}
	return s.Path
}

// CompileStandard feeds input to solc on stdin and returns its stdout.
func (s *ExecSolc) CompileStandard(ctx context.Context, input []byte) ([]byte, error) {
	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, s.path(), "--standard-json")
	cmd.Stdin = bytes.NewReader(input)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			return nil, fmt.Errorf("run %s: %w: %s", s.path(), err, msg)
		}
		return nil, fmt.Errorf("run %s: %w", s.path(), err)
	}
	return stdout.Bytes(), nil
}

// StandardInput is the solc standard-JSON input document.
type StandardInput struct {
	Language string                 `json:"language"`
	Sources  map[string]SourceInput `json:"sources"`
	Settings Settings               `json:"settings"`
}

// SourceInput carries the text of one source unit.
type SourceInput struct {
	Content string `json:"content"`
}

// Settings selects the compiler outputs.
type Settings struct {
	OutputSelection map[string]map[string][]string `json:"outputSelection"`
}

// NewStandardInput requests ABI and bytecode for every contract in every
// source unit.
func NewStandardInput(unit, source string) *StandardInput {
	return &StandardInput{
		Language: "Solidity",
		Sources:  map[string]SourceInput{unit: {Content: source}},
		Settings: Settings{
			OutputSelection: map[string]map[string][]string{
				"*": {"*": {"abi", "evm.bytecode"}},
			},
		},
	}
}

// StandardOutput is the subset of the solc standard-JSON output that is read.
type StandardOutput struct {
	Errors    []SolcError                          `json:"errors"`
	Contracts map[string]map[string]ContractOutput `json:"contracts"`
}

// SolcError is one diagnostic reported by solc.
type SolcError struct {
	Severity         string `json:"severity"`
	Type             string `json:"type"`
	Message          string `json:"message"`
	FormattedMessage string `json:"formattedMessage"`
}

func (e SolcError) String() string {
	if e.FormattedMessage != "" {
		return e.FormattedMessage
	}
	return e.Type + ": " + e.Message
}

// ContractOutput is the per-contract entry of the output map.
type ContractOutput struct {
	ABI json.RawMessage `json:"abi"`
	EVM struct {
		Bytecode struct {
			Object string `json:"object"`
		} `json:"bytecode"`
	} `json:"evm"`
}

// Compiler turns Solidity source into a CompiledContract. Every call
// recompiles from scratch.
type Compiler struct {
	solc Solc
}

// NewCompiler returns a Compiler backed by solc.
func NewCompiler(solc Solc) *Compiler {
	return &Compiler{solc: solc}
}

// CompileGreeter compiles the embedded Greeter source.
func (c *Compiler) CompileGreeter(ctx context.Context) (*CompiledContract, error) {
	return c.Compile(ctx, GreeterSourceUnit, GreeterSource, GreeterContract)
}

// Compile compiles source as unit and extracts the named contract.
func (c *Compiler) Compile(ctx context.Context, unit, source, contract string) (*CompiledContract, error) {
	input, err := json.Marshal(NewStandardInput(unit, source))
	if err != nil {
		return nil, &CompilationError{Contract: contract, Err: err}
	}

	raw, err := c.solc.CompileStandard(ctx, input)
	if err != nil {
		return nil, &CompilationError{Contract: contract, Err: err}
	}

	var out StandardOutput
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, &CompilationError{Contract: contract, Err: fmt.Errorf("decode compiler output: %w", err)}
	}

	var failures []string
	for _, diag := range out.Errors {
		if strings.EqualFold(diag.Severity, "error") {
			failures = append(failures, diag.String())
			continue
		}
		log.Warn("Solidity compiler diagnostic", "contract", contract, "type", diag.Type, "msg", diag.Message)
	}
	if len(failures) > 0 {
		return nil, &CompilationError{Contract: contract, Messages: failures, Err: fmt.Errorf("%d compiler error(s)", len(failures))}
	}

	entry, ok := out.Contracts[unit][contract]
	if !ok {
		return nil, &CompilationError{Contract: contract, Err: fmt.Errorf("%w: %s:%s", ErrContractNotFound, unit, contract)}
	}
	return newCompiledContract(contract, entry)
}

func newCompiledContract(name string, entry ContractOutput) (*CompiledContract, error) {
	var items []json.RawMessage
	if len(entry.ABI) > 0 {
		if err := json.Unmarshal(entry.ABI, &items); err != nil {
			return nil, &CompilationError{Contract: name, Err: fmt.Errorf("decode abi: %w", err)}
		}
	}
	object := strings.TrimPrefix(entry.EVM.Bytecode.Object, "0x")
	if len(items) == 0 || object == "" {
		return nil, &CompilationError{Contract: name, Err: ErrEmptyArtifact}
	}

	parsed, err := ParseABI(string(entry.ABI))
	if err != nil {
		return nil, &CompilationError{Contract: name, Err: fmt.Errorf("parse abi: %w", err)}
	}
	bytecode, err := hex.DecodeString(object)
	if err != nil {
		return nil, &CompilationError{Contract: name, Err: fmt.Errorf("decode bytecode: %w", err)}
	}

	log.Debug("Compiled contract", "contract", name, "methods", len(parsed.Methods), "size", len(bytecode))
	return &CompiledContract{
		Name:     name,
		ABI:      parsed,
		RawABI:   append(json.RawMessage(nil), entry.ABI...),
		Bytecode: bytecode,
	}, nil
}
