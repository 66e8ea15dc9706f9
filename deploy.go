package greeter

import (
	"context"
	"time"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/log"
)

// Deployment records a mined contract creation.
type Deployment struct {
	// Address is the contract address taken from the receipt.
	Address common.Address
	// TxHash is the hash of the creation transaction.
	TxHash common.Hash
	// BlockNumber is the block the creation was mined in.
	BlockNumber uint64
	// GasLimit is the gas limit the creation was submitted with.
	GasLimit uint64
	// GasUsed is the gas consumed by the creation.
	GasUsed uint64
	// DeployedAt is when the receipt was observed.
	DeployedAt time.Time
}

// Deploy estimates gas for the zero-argument constructor, submits the
// creation transaction from the default account and blocks until it is
// mined. The address comes from the receipt.
func Deploy(ctx context.Context, p *Provider, contract *CompiledContract, opts ...TxOption) (*Deployment, error) {
	cfg := newTxConfig(opts)
	backend := p.Backend()

	gasLimit := cfg.gasLimit
	if gasLimit == 0 {
		ctorArgs, err := contract.ABI.Pack("")
		if err != nil {
			return nil, &DeploymentError{Stage: StageEstimateGas, Err: err}
		}
		data := append(append([]byte{}, contract.Bytecode...), ctorArgs...)
		gasLimit, err = backend.EstimateGas(ctx, ethereum.CallMsg{From: p.DefaultAccount(), Data: data})
		if err != nil {
			return nil, &DeploymentError{Stage: StageEstimateGas, Err: p.wrap("eth_estimateGas", err)}
		}
		log.Debug("Estimated deployment gas", "contract", contract.Name, "gas", gasLimit)
	}

	auth, err := p.TransactOpts(ctx)
	if err != nil {
		return nil, &DeploymentError{Stage: StageSubmit, Err: err}
	}
	auth.GasLimit = gasLimit

	_, tx, _, err := bind.DeployContract(auth, contract.ABI, contract.Bytecode, backend)
	if err != nil {
		return nil, &DeploymentError{Stage: StageSubmit, Err: p.wrap("send transaction", err)}
	}
	log.Info("Submitted contract creation", "contract", contract.Name, "tx", tx.Hash(), "gas", gasLimit)

	receipt, err := waitMined(ctx, backend, tx, cfg.receiptTimeout)
	if err != nil {
		return nil, &DeploymentError{Stage: StageWaitMined, TxHash: tx.Hash(), Err: p.wrap("wait mined", err)}
	}
	if receipt.Status != types.ReceiptStatusSuccessful {
		return nil, &DeploymentError{Stage: StageReceipt, TxHash: tx.Hash(), Err: ErrReceiptFailed}
	}

	d := &Deployment{
		Address:     receipt.ContractAddress,
		TxHash:      tx.Hash(),
		BlockNumber: receipt.BlockNumber.Uint64(),
		GasLimit:    gasLimit,
		GasUsed:     receipt.GasUsed,
		DeployedAt:  time.Now(),
	}
	log.Info("Contract deployed", "contract", contract.Name, "address", d.Address, "block", d.BlockNumber, "gasused", d.GasUsed)
	return d, nil
}
