package args

import (
	"github.com/neoaurion/QSsh/internal/connector"
)

// Defaults applied by Collect for options that were not given.
const (
	DefaultPort           = 22
	DefaultTimeout        = 30
	DefaultSmallFileCount = 10
	DefaultBigFileSize    = 1024
	DefaultRemotePath     = "/tmp/"
)

// Parameters is the configuration handed to the transfer engine.
type Parameters struct {
	SSH connector.Config

	// RemotePath is the remote directory, always terminated by '/'.
	RemotePath string

	// SmallFileCount is the number of small files to transfer.
	SmallFileCount int

	// BigFileSize is the size of the big file in MB.
	BigFileSize int
}

// NoProxy reports whether the system proxy should be bypassed.
func (p Parameters) NoProxy() bool {
	return p.SSH.Options.Has(connector.IgnoreDefaultProxy)
}

type yamlParameters struct {
	Host           string `yaml:"host"`
	Port           int    `yaml:"port"`
	User           string `yaml:"user"`
	Timeout        int    `yaml:"timeout"`
	Auth           string `yaml:"auth"`
	Password       string `yaml:"password,omitempty"`
	PrivateKeyFile string `yaml:"private_key_file,omitempty"`
	NoProxy        bool   `yaml:"no_proxy"`
	RemotePath     string `yaml:"remote_path"`
	SmallFileCount int    `yaml:"small_file_count"`
	BigFileSize    int    `yaml:"big_file_size_mb"`
}

// MarshalYAML implements yaml.Marshaler. The password is redacted.
func (p Parameters) MarshalYAML() (any, error) {
	out := yamlParameters{
		Host:           p.SSH.Host,
		Port:           p.SSH.Port,
		User:           p.SSH.User,
		Timeout:        p.SSH.Timeout,
		Auth:           p.SSH.AuthType.String(),
		PrivateKeyFile: p.SSH.PrivateKeyFile,
		NoProxy:        p.NoProxy(),
		RemotePath:     p.RemotePath,
		SmallFileCount: p.SmallFileCount,
		BigFileSize:    p.BigFileSize,
	}
	if p.SSH.Password != "" {
		out.Password = "********"
	}
	return out, nil
}
