package greeter

import (
	"context"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/ethclient/simulated"
)

// Backend is the chain access needed to deploy and drive a contract.
// Both *ethclient.Client and the simulated client satisfy it.
type Backend interface {
	bind.ContractBackend
	bind.DeployBackend
	ChainID(ctx context.Context) (*big.Int, error)
}

var _ Backend = (*autoMiningClient)(nil)

// autoMiningClient seals a block after every accepted transaction, so the
// simulated chain behaves like an instant-seal dev node.
type autoMiningClient struct {
	simulated.Client
	backend *simulated.Backend
}

func (c *autoMiningClient) SendTransaction(ctx context.Context, tx *types.Transaction) error {
	if err := c.Client.SendTransaction(ctx, tx); err != nil {
		return err
	}
	c.backend.Commit()
	return nil
}

// waitMined blocks until tx is mined, the timeout elapses or ctx ends.
func waitMined(ctx context.Context, b bind.DeployBackend, tx *types.Transaction, timeout time.Duration) (*types.Receipt, error) {
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}
	return bind.WaitMined(ctx, b, tx)
}
