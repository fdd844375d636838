// Package connector defines the SSH connection parameters handed to the
// transfer engine.
package connector

import (
	"fmt"
	"net"
	"strconv"
)

// AuthType selects how the client authenticates against the server.
type AuthType int

const (
	// AuthNone means no authentication method was chosen yet.
	AuthNone AuthType = iota

	// AuthPassword tries all password based methods (password and
	// keyboard-interactive).
	AuthPassword

	// AuthPublicKey authenticates with a private key file.
	AuthPublicKey
)

func (a AuthType) String() string {
	switch a {
	case AuthPassword:
		return "password"
	case AuthPublicKey:
		return "publickey"
	default:
		return "none"
	}
}

// Options is a set of connection option bits.
type Options uint32

// IgnoreDefaultProxy bypasses the system proxy when connecting.
const IgnoreDefaultProxy Options = 1 << iota

// Has reports whether all bits of o are set.
func (opts Options) Has(o Options) bool {
	return opts&o == o
}

// Config holds the configuration for an SSH connection.
type Config struct {
	// Host is the target hostname or IP address.
	Host string

	// User is the username for authentication.
	User string

	// Port is the SSH port.
	Port int

	// Timeout is the connection timeout in seconds.
	Timeout int

	// Password is used when AuthType is AuthPassword. It may be empty.
	Password string

	// PrivateKeyFile is used when AuthType is AuthPublicKey.
	PrivateKeyFile string

	AuthType AuthType
	Options  Options
}

// Address returns host:port suitable for dialing.
func (c Config) Address() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
}

// String returns a human-readable description of the connection.
func (c Config) String() string {
	if c.User == "" {
		return fmt.Sprintf("sftp://%s", c.Address())
	}
	return fmt.Sprintf("sftp://%s@%s", c.User, c.Address())
}
