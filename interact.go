package greeter

import (
	"context"
	"fmt"
	"io"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/log"
)

// Interaction is the outcome of the read / write / read sequence.
type Interaction struct {
	Before string
	After  string
	TxHash common.Hash
}

// Interact reads the greeting, sets it to greeting, waits for the
// transaction to be mined and reads it again. Both reads and the update are
// reported on w.
func Interact(ctx context.Context, p *Provider, g *Greeter, greeting string, w io.Writer, opts ...TxOption) (*Interaction, error) {
	cfg := newTxConfig(opts)

	before, err := g.Greet(p.CallOpts(ctx))
	if err != nil {
		return nil, p.wrap("call "+MethodGreet, err)
	}
	fmt.Fprintf(w, "Contract value: %s\n", before)

	receipt, err := setGreetingAndWait(ctx, p, g, greeting, cfg)
	if err != nil {
		return nil, err
	}
	fmt.Fprintf(w, "Setting value to: %s\n", greeting)

	after, err := g.Greet(p.CallOpts(ctx))
	if err != nil {
		return nil, p.wrap("call "+MethodGreet, err)
	}
	fmt.Fprintf(w, "Contract value: %s\n", after)

	return &Interaction{Before: before, After: after, TxHash: receipt.TxHash}, nil
}

func setGreetingAndWait(ctx context.Context, p *Provider, g *Greeter, greeting string, cfg *txConfig) (*types.Receipt, error) {
	auth, err := p.TransactOpts(ctx)
	if err != nil {
		return nil, &TransactionError{Method: MethodSetGreeting, Err: err}
	}
	auth.GasLimit = cfg.gasLimit

	tx, err := g.SetGreeting(auth, greeting)
	if err != nil {
		return nil, &TransactionError{Method: MethodSetGreeting, Err: p.wrap("send transaction", err)}
	}
	log.Debug("Submitted transaction", "method", MethodSetGreeting, "tx", tx.Hash())

	receipt, err := waitMined(ctx, p.Backend(), tx, cfg.receiptTimeout)
	if err != nil {
		return nil, &TransactionError{Method: MethodSetGreeting, TxHash: tx.Hash(), Err: p.wrap("wait mined", err)}
	}
	if receipt.Status != types.ReceiptStatusSuccessful {
		return nil, &TransactionError{Method: MethodSetGreeting, TxHash: tx.Hash(), Err: ErrReceiptFailed}
	}
	log.Info("Transaction mined", "method", MethodSetGreeting, "tx", tx.Hash(), "block", receipt.BlockNumber, "gasused", receipt.GasUsed)
	return receipt, nil
}
