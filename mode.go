package greeter

import (
	"net/url"
	"strings"
)

// Mode selects how the provider reaches a chain.
type Mode uint8

const (
	// ModeTest runs an in-process simulated chain.
	ModeTest Mode = iota + 1

	// ModeFalcon connects to the named remote network over RPC.
	ModeFalcon

	// ModeLocal connects to a node on the developer's machine over RPC.
	ModeLocal
)

// String returns the configuration name of the mode.
func (m Mode) String() string {
	switch m {
	case ModeTest:
		return "test"
	case ModeFalcon:
		return "falcon"
	case ModeLocal:
		return "local"
	default:
		return "unknown"
	}
}

// Remote reports whether the mode needs an endpoint URL.
func (m Mode) Remote() bool {
	return m == ModeFalcon || m == ModeLocal
}

// ParseMode converts a configuration string into a Mode.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "test":
		return ModeTest, nil
	case "falcon":
		return ModeFalcon, nil
	case "local":
		return ModeLocal, nil
	}
	return 0, &ConfigurationError{Field: "mode", Value: s, Err: ErrUnknownMode}
}

// Network is a validated network profile. Endpoint is empty for ModeTest.
type Network struct {
	Mode     Mode
	Endpoint string
}

// TestNetwork returns the profile for the in-process simulated chain.
func TestNetwork() Network {
	return Network{Mode: ModeTest}
}

// FalconNetwork returns the remote-named profile for the given endpoint.
func FalconNetwork(endpoint string) Network {
	return Network{Mode: ModeFalcon, Endpoint: endpoint}
}

// LocalNetwork returns the local-node profile for the given endpoint.
func LocalNetwork(endpoint string) Network {
	return Network{Mode: ModeLocal, Endpoint: endpoint}
}

// ParseNetwork builds a Network from external mode and endpoint strings.
func ParseNetwork(mode, endpoint string) (Network, error) {
	m, err := ParseMode(mode)
	if err != nil {
		return Network{}, err
	}
	n := Network{Mode: m, Endpoint: strings.TrimSpace(endpoint)}
	if err := n.Validate(); err != nil {
		return Network{}, err
	}
	return n, nil
}

// Validate checks the profile without touching the network.
func (n Network) Validate() error {
	switch n.Mode {
	case ModeTest:
		return nil
	case ModeFalcon, ModeLocal:
		if n.Endpoint == "" {
			return &ConfigurationError{Field: "endpoint", Err: ErrMissingEndpoint}
		}
		u, err := url.Parse(n.Endpoint)
		if err != nil || u.Host == "" {
			return &ConfigurationError{Field: "endpoint", Value: n.Endpoint, Err: ErrInvalidEndpoint}
		}
		switch u.Scheme {
		case "http", "https", "ws", "wss":
			return nil
		}
		return &ConfigurationError{Field: "endpoint", Value: n.Endpoint, Err: ErrInvalidEndpoint}
	default:
		return &ConfigurationError{Field: "mode", Value: n.Mode.String(), Err: ErrUnknownMode}
	}
}

func (n Network) String() string {
	if n.Endpoint == "" {
		return n.Mode.String()
	}
	return n.Mode.String() + "@" + n.Endpoint
}
