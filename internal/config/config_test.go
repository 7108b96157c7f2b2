package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoad_AppliesDefaultsAndEnv(t *testing.T) {
	path := writeConfig(t, `
terminal:
  login: 5036292718
  server_name: MetaQuotes-Demo
watch:
  symbols: EURUSD,XAUUSD
`)
	t.Setenv("MT5_TERMINAL_PASSWORD", "from-env")

	cfg, err := Load(path)
	require.NoError(t, err)

	require.Equal(t, uint64(5036292718), cfg.Terminal.Login)
	require.Equal(t, "from-env", cfg.Terminal.Password)
	require.Equal(t, "EURUSD", cfg.Terminal.BaseSymbol)
	require.Equal(t, 30*time.Second, cfg.Terminal.ReadinessTimeout)
	require.Equal(t, 500*time.Millisecond, cfg.Transport.ReconnectDelay)
	require.True(t, cfg.Transport.TLS)
	require.Equal(t, []string{"EURUSD", "XAUUSD"}, cfg.Watch.Symbols)
	require.Equal(t, 5, cfg.Retry.MaxAttempts)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
}

func TestLoad_RejectsBothEndpoints(t *testing.T) {
	path := writeConfig(t, `
terminal:
  login: 1
  password: p
  server_name: MetaQuotes-Demo
  host: mt5.example.com
`)
	_, err := Load(path)
	require.ErrorContains(t, err, "server_name")
}

func validConfig() Config {
	return Config{
		App:       AppConfig{Environment: "test"},
		Terminal:  TerminalConfig{Login: 1, Password: "p", Host: "mt5.example.com", Port: 443},
		Transport: TransportConfig{Address: "mt5.mrpc.pro:443", TLS: true},
		Retry:     RetryConfig{MaxAttempts: 3, MinDelay: time.Millisecond, MaxDelay: time.Second},
		Database:  DatabaseConfig{InMemory: true, MaxOpenConns: 1},
		Logging:   LoggingConfig{Level: "info", Encoding: "json"},
	}
}

func TestValidate(t *testing.T) {
	cfg := validConfig()
	require.NoError(t, cfg.Validate())

	cases := map[string]func(*Config){
		"no endpoint":       func(c *Config) { c.Terminal.Host = "" },
		"bad port":          func(c *Config) { c.Terminal.Port = 0 },
		"skip verify plain": func(c *Config) { c.Transport.TLS = false; c.Transport.InsecureSkipVerify = true },
		"negative delay":    func(c *Config) { c.Transport.ReconnectDelay = -time.Second },
		"retry order":       func(c *Config) { c.Retry.MinDelay = time.Minute },
		"profit interval":   func(c *Config) { c.Watch.PositionProfit = true },
		"monitor port":      func(c *Config) { c.Monitor.Enabled = true },
		"database path":     func(c *Config) { c.Database.InMemory = false },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			c := validConfig()
			mutate(&c)
			require.Error(t, c.Validate())
		})
	}
}
