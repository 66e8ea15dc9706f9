package greeter

import (
	"context"
	"crypto/ecdsa"
	"errors"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/ethereum/go-ethereum/ethclient/simulated"
	"github.com/ethereum/go-ethereum/log"
	"github.com/ethereum/go-ethereum/rpc"
)

// simulatedEndpoint names the in-process chain in errors and logs.
const simulatedEndpoint = "simulated"

// Provider is a connected chain handle with a designated default account.
// It is used strictly sequentially by one caller.
type Provider struct {
	network  Network
	backend  Backend
	rpc      *rpc.Client // nil in test mode
	chainID  *big.Int
	accounts []common.Address
	key      *ecdsa.PrivateKey // nil when the node signs
	close    func() error
}

// Connect validates network and establishes the connection it describes.
// Configuration problems are reported before any dial. No retries are made.
func Connect(ctx context.Context, network Network, opts ...ProviderOption) (*Provider, error) {
	if err := network.Validate(); err != nil {
		return nil, err
	}
	cfg := defaultProviderConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	var (
		p   *Provider
		err error
	)
	switch network.Mode {
	case ModeTest:
		p, err = connectSimulated(cfg)
	case ModeFalcon, ModeLocal:
		p, err = connectRPC(ctx, network.Endpoint, cfg)
	default:
		return nil, &ConfigurationError{Field: "mode", Value: network.Mode.String(), Err: ErrUnknownMode}
	}
	if err != nil {
		return nil, err
	}
	p.network = network
	log.Info("Connected to chain", "network", network, "chainid", p.chainID, "account", p.DefaultAccount())
	return p, nil
}

func connectSimulated(cfg *providerConfig) (*Provider, error) {
	keys := make([]*ecdsa.PrivateKey, 0, cfg.devAccounts)
	if cfg.privateKey != nil {
		keys = append(keys, cfg.privateKey)
	}
	for len(keys) < cfg.devAccounts {
		key, err := crypto.GenerateKey()
		if err != nil {
			return nil, fmt.Errorf("generate dev account: %w", err)
		}
		keys = append(keys, key)
	}

	alloc := make(types.GenesisAlloc, len(keys))
	accounts := make([]common.Address, len(keys))
	for i, key := range keys {
		accounts[i] = crypto.PubkeyToAddress(key.PublicKey)
		alloc[accounts[i]] = types.Account{Balance: new(big.Int).Set(cfg.devBalance)}
	}

	sim := simulated.NewBackend(alloc, simulated.WithBlockGasLimit(cfg.blockGasLimit))
	client := &autoMiningClient{Client: sim.Client(), backend: sim}
	chainID, err := client.ChainID(context.Background())
	if err != nil {
		sim.Close()
		return nil, fmt.Errorf("simulated chain id: %w", err)
	}
	return &Provider{
		backend:  client,
		chainID:  chainID,
		accounts: accounts,
		key:      keys[0],
		close:    sim.Close,
	}, nil
}

func connectRPC(ctx context.Context, endpoint string, cfg *providerConfig) (*Provider, error) {
	rc, err := rpc.DialContext(ctx, endpoint)
	if err != nil {
		return nil, &ConnectivityError{Endpoint: endpoint, Op: "dial", Err: err}
	}
	client := ethclient.NewClient(rc)
	fail := func(err error) (*Provider, error) {
		client.Close()
		return nil, err
	}

	chainID, err := client.ChainID(ctx)
	if err != nil {
		return fail(&ConnectivityError{Endpoint: endpoint, Op: "eth_chainId", Err: err})
	}

	p := &Provider{
		backend: client,
		rpc:     rc,
		chainID: chainID,
		close: func() error {
			client.Close()
			return nil
		},
	}
	if cfg.privateKey != nil {
		p.key = cfg.privateKey
		p.accounts = []common.Address{crypto.PubkeyToAddress(cfg.privateKey.PublicKey)}
		return p, nil
	}

	var accounts []common.Address
	if err := rc.CallContext(ctx, &accounts, "eth_accounts"); err != nil {
		return fail(wrapConnectivity(endpoint, "eth_accounts", err))
	}
	if len(accounts) == 0 {
		return fail(&ConfigurationError{Field: "accounts", Value: endpoint, Err: ErrNoAccounts})
	}
	p.accounts = accounts
	return p, nil
}

// Network returns the profile the provider was created from.
func (p *Provider) Network() Network {
	return p.network
}

// Endpoint returns the RPC endpoint, or "simulated" in test mode.
func (p *Provider) Endpoint() string {
	if p.network.Endpoint == "" {
		return simulatedEndpoint
	}
	return p.network.Endpoint
}

// Backend returns the chain client.
func (p *Provider) Backend() Backend {
	return p.backend
}

// ChainID returns the chain ID fetched at connect time.
func (p *Provider) ChainID() *big.Int {
	return new(big.Int).Set(p.chainID)
}

// Accounts returns the accounts reported by the chain.
func (p *Provider) Accounts() []common.Address {
	out := make([]common.Address, len(p.accounts))
	copy(out, p.accounts)
	return out
}

// DefaultAccount returns the first reported account.
func (p *Provider) DefaultAccount() common.Address {
	if len(p.accounts) == 0 {
		return common.Address{}
	}
	return p.accounts[0]
}

// TransactOpts returns transaction options sending from the default account.
// Transactions are signed with the configured key, or by the node through
// eth_signTransaction when no key is configured.
func (p *Provider) TransactOpts(ctx context.Context) (*bind.TransactOpts, error) {
	if p.key != nil {
		opts, err := bind.NewKeyedTransactorWithChainID(p.key, p.chainID)
		if err != nil {
			return nil, err
		}
		opts.Context = ctx
		return opts, nil
	}
	if p.rpc == nil {
		return nil, errors.New("greeter: provider has neither a key nor a signing node")
	}
	return &bind.TransactOpts{
		From:    p.DefaultAccount(),
		Signer:  nodeSigner(ctx, p.rpc, p.chainID),
		Context: ctx,
	}, nil
}

// CallOpts returns read-only call options from the default account.
func (p *Provider) CallOpts(ctx context.Context) *bind.CallOpts {
	return &bind.CallOpts{From: p.DefaultAccount(), Context: ctx}
}

// Close releases the connection.
func (p *Provider) Close() error {
	if p.close == nil {
		return nil
	}
	err := p.close()
	p.close = nil
	return err
}

// wrap classifies transport failures as connectivity errors.
func (p *Provider) wrap(op string, err error) error {
	return wrapConnectivity(p.Endpoint(), op, err)
}
