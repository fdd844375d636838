package args

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/neoaurion/QSsh/internal/connector"
)

func TestParametersYAMLRedactsPassword(t *testing.T) {
	p := Parameters{
		SSH: connector.Config{
			Host:     "example.com",
			User:     "alice",
			Port:     22,
			Timeout:  30,
			Password: "secret",
			AuthType: connector.AuthPassword,
			Options:  connector.IgnoreDefaultProxy,
		},
		RemotePath:     "/tmp/",
		SmallFileCount: 10,
		BigFileSize:    1024,
	}

	data, err := yaml.Marshal(p)
	require.NoError(t, err)

	out := string(data)
	assert.NotContains(t, out, "secret")
	assert.Contains(t, out, "auth: password")
	assert.Contains(t, out, "no_proxy: true")
	assert.NotContains(t, out, "private_key_file")

	var decoded map[string]any
	require.NoError(t, yaml.Unmarshal(data, &decoded))
	assert.Equal(t, "example.com", decoded["host"])
	assert.Equal(t, 1024, decoded["big_file_size_mb"])
	assert.Equal(t, "/tmp/", decoded["remote_path"])
	assert.Equal(t, "********", decoded["password"])
}

func TestParametersYAMLKeyFile(t *testing.T) {
	p := Parameters{
		SSH: connector.Config{
			Host:           "h",
			User:           "u",
			Port:           22,
			PrivateKeyFile: "/key",
			AuthType:       connector.AuthPublicKey,
		},
		RemotePath: "/data/",
	}

	data, err := yaml.Marshal(&p)
	require.NoError(t, err)

	out := string(data)
	assert.Contains(t, out, "auth: publickey")
	assert.Contains(t, out, "private_key_file: /key")
	assert.NotContains(t, out, "password")
}
