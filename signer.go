package greeter

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/rpc"
)

// signTxArgs is the eth_signTransaction request object.
type signTxArgs struct {
	From                 common.Address  `json:"from"`
	To                   *common.Address `json:"to,omitempty"`
	Gas                  hexutil.Uint64  `json:"gas"`
	GasPrice             *hexutil.Big    `json:"gasPrice,omitempty"`
	MaxFeePerGas         *hexutil.Big    `json:"maxFeePerGas,omitempty"`
	MaxPriorityFeePerGas *hexutil.Big    `json:"maxPriorityFeePerGas,omitempty"`
	Value                *hexutil.Big    `json:"value"`
	Nonce                hexutil.Uint64  `json:"nonce"`
	Input                hexutil.Bytes   `json:"input"`
	ChainID              *hexutil.Big    `json:"chainId,omitempty"`
}

func newSignTxArgs(from common.Address, tx *types.Transaction, chainID *big.Int) signTxArgs {
	args := signTxArgs{
		From:    from,
		To:      tx.To(),
		Gas:     hexutil.Uint64(tx.Gas()),
		Value:   (*hexutil.Big)(tx.Value()),
		Nonce:   hexutil.Uint64(tx.Nonce()),
		Input:   tx.Data(),
		ChainID: (*hexutil.Big)(chainID),
	}
	if tx.Type() == types.LegacyTxType {
		args.GasPrice = (*hexutil.Big)(tx.GasPrice())
	} else {
		args.MaxFeePerGas = (*hexutil.Big)(tx.GasFeeCap())
		args.MaxPriorityFeePerGas = (*hexutil.Big)(tx.GasTipCap())
	}
	return args
}

// decodeSignedTx accepts both the geth reply ({"raw": ..., "tx": ...}) and
// the bare raw-hex reply some dev nodes return.
func decodeSignedTx(reply json.RawMessage) (*types.Transaction, error) {
	var raw hexutil.Bytes
	if err := json.Unmarshal(reply, &raw); err != nil {
		var obj struct {
			Raw hexutil.Bytes `json:"raw"`
		}
		if err := json.Unmarshal(reply, &obj); err != nil {
			return nil, fmt.Errorf("decode eth_signTransaction reply: %w", err)
		}
		raw = obj.Raw
	}
	if len(raw) == 0 {
		return nil, errors.New("eth_signTransaction returned no transaction")
	}
	tx := new(types.Transaction)
	if err := tx.UnmarshalBinary(raw); err != nil {
		return nil, fmt.Errorf("decode signed transaction: %w", err)
	}
	return tx, nil
}

// nodeSigner returns a bind.SignerFn that asks the node to sign with one of
// its unlocked accounts.
func nodeSigner(ctx context.Context, rc *rpc.Client, chainID *big.Int) bind.SignerFn {
	return func(from common.Address, tx *types.Transaction) (*types.Transaction, error) {
		var reply json.RawMessage
		if err := rc.CallContext(ctx, &reply, "eth_signTransaction", newSignTxArgs(from, tx, chainID)); err != nil {
			return nil, err
		}
		return decodeSignedTx(reply)
	}
}
