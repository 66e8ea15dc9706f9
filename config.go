package greeter

import (
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/crypto"
	"github.com/kelseyhightower/envconfig"
)

// EnvPrefix prefixes every environment variable read by Environment.
const EnvPrefix = "GREETER"

// Config is used to hold all runtime configuration.
type Config struct {
	Mode           string        `default:"test" envconfig:"MODE"`
	Endpoint       string        `envconfig:"ENDPOINT"`
	PrivateKey     string        `envconfig:"PRIVATE_KEY"`
	SolcPath       string        `default:"solc" envconfig:"SOLC_PATH"`
	ReceiptTimeout time.Duration `default:"2m" envconfig:"RECEIPT_TIMEOUT"`
	Greeting       string        `default:"Nihao" envconfig:"GREETING"`
	DevAccounts    int           `default:"10" envconfig:"DEV_ACCOUNTS"`
	Verbosity      int           `default:"3" envconfig:"VERBOSITY"`
}

// Environment returns configuration sourced from environment variables.
func Environment() (*Config, error) {
	var cfg Config

	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, &ConfigurationError{Field: "environment", Err: err}
	}

	return &cfg, nil
}

// SafeConfig masks sensitive config values.
func SafeConfig(cfg Config) *Config {
	cfgSafe := cfg

	if len(cfgSafe.PrivateKey) > 0 {
		cfgSafe.PrivateKey = "*** Masked ***"
	}

	return &cfgSafe
}

// Network parses Mode and Endpoint.
func (c *Config) Network() (Network, error) {
	return ParseNetwork(c.Mode, c.Endpoint)
}

// ProviderOptions translates the key and account settings into options
// for Connect.
func (c *Config) ProviderOptions() ([]ProviderOption, error) {
	opts := []ProviderOption{WithDevAccounts(c.DevAccounts)}
	if c.PrivateKey != "" {
		key, err := crypto.HexToECDSA(strings.TrimPrefix(strings.TrimSpace(c.PrivateKey), "0x"))
		if err != nil {
			return nil, &ConfigurationError{Field: "private key", Err: err}
		}
		opts = append(opts, WithPrivateKey(key))
	}
	return opts, nil
}

// TxOptions returns the options applied to every transaction.
func (c *Config) TxOptions() []TxOption {
	return []TxOption{WithReceiptTimeout(c.ReceiptTimeout)}
}
