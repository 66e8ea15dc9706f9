package greeter

import (
	"crypto/ecdsa"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum/params"
)

// DefaultReceiptTimeout bounds each wait for a transaction receipt.
const DefaultReceiptTimeout = 120 * time.Second

// ProviderOption configures Connect.
type ProviderOption func(*providerConfig)

// TxOption configures Deploy and Interact.
type TxOption func(*txConfig)

// providerConfig holds configuration for Connect.
type providerConfig struct {
	privateKey    *ecdsa.PrivateKey
	devAccounts   int
	devBalance    *big.Int
	blockGasLimit uint64
}

// defaultProviderConfig returns the default provider configuration.
func defaultProviderConfig() *providerConfig {
	return &providerConfig{
		devAccounts:   10,
		devBalance:    new(big.Int).Mul(big.NewInt(1000), big.NewInt(params.Ether)),
		blockGasLimit: 30_000_000,
	}
}

// txConfig holds configuration for transaction submission.
type txConfig struct {
	receiptTimeout time.Duration
	gasLimit       uint64
}

// defaultTxConfig returns the default transaction configuration.
func defaultTxConfig() *txConfig {
	return &txConfig{
		receiptTimeout: DefaultReceiptTimeout,
	}
}

func newTxConfig(opts []TxOption) *txConfig {
	cfg := defaultTxConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// WithPrivateKey signs transactions locally with key. The key's address
// becomes the only account and therefore the default account. In test mode
// the address is funded in the genesis block.
func WithPrivateKey(key *ecdsa.PrivateKey) ProviderOption {
	return func(c *providerConfig) {
		c.privateKey = key
	}
}

// WithDevAccounts sets how many funded accounts the simulated chain creates.
// Default is 10. Values below 1 are raised to 1.
func WithDevAccounts(n int) ProviderOption {
	return func(c *providerConfig) {
		if n < 1 {
			n = 1
		}
		c.devAccounts = n
	}
}

// WithDevBalance sets the genesis balance of each simulated account.
// Default is 1000 ether.
func WithDevBalance(wei *big.Int) ProviderOption {
	return func(c *providerConfig) {
		if wei != nil {
			c.devBalance = new(big.Int).Set(wei)
		}
	}
}

// WithBlockGasLimit sets the block gas limit of the simulated chain.
func WithBlockGasLimit(limit uint64) ProviderOption {
	return func(c *providerConfig) {
		c.blockGasLimit = limit
	}
}

// WithReceiptTimeout bounds each wait for a transaction receipt.
// Zero disables the bound and leaves only the caller's context.
func WithReceiptTimeout(d time.Duration) TxOption {
	return func(c *txConfig) {
		if d < 0 {
			d = 0
		}
		c.receiptTimeout = d
	}
}

// WithGasLimit uses a fixed gas limit instead of estimating one.
func WithGasLimit(limit uint64) TxOption {
	return func(c *txConfig) {
		c.gasLimit = limit
	}
}
