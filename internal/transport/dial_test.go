package transport

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mt5-term/internal/config"
)

func TestDialOptions_RequiresAddress(t *testing.T) {
	_, err := DialOptions(config.TransportConfig{})
	require.Error(t, err)
}

func TestDialOptions_KeepaliveIsOptional(t *testing.T) {
	base := config.TransportConfig{Address: "localhost:443"}
	without, err := DialOptions(base)
	require.NoError(t, err)

	base.KeepaliveTime = 30 * time.Second
	with, err := DialOptions(base)
	require.NoError(t, err)

	assert.Len(t, with, len(without)+1)
}

func TestTransportCredentials(t *testing.T) {
	plain := transportCredentials(config.TransportConfig{Address: "x:1"})
	assert.Equal(t, "insecure", plain.Info().SecurityProtocol)

	secure := transportCredentials(config.TransportConfig{Address: "x:1", TLS: true})
	assert.Equal(t, "tls", secure.Info().SecurityProtocol)
}

func TestDial_CreatesLazyChannel(t *testing.T) {
	conn, err := Dial(config.TransportConfig{Address: "127.0.0.1:1"})
	require.NoError(t, err)
	require.NoError(t, conn.Close())
}
