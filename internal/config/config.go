package config

import (
	"errors"
	"fmt"
	"strings"

	mapstructure "github.com/go-viper/mapstructure/v2"
	"github.com/spf13/viper"
)

const (
	defaultConfigPath = "configs/config.yaml"
	envPrefix         = "mt5"
)

// Load 读取配置文件并结合环境变量返回 Config。
// 密码等敏感项通常通过 MT5_TERMINAL_PASSWORD 之类的环境变量提供。
func Load(path string) (*Config, error) {
	v := viper.New()

	if path == "" {
		path = defaultConfigPath
	}

	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil, fmt.Errorf("未找到配置文件 %q: %w", path, err)
		}
		return nil, fmt.Errorf("读取配置文件失败: %w", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg, decodeHook()); err != nil {
		return nil, fmt.Errorf("解析配置失败: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app.environment", "development")

	// 环境变量只覆盖已知键，因此凭据也需要默认值占位。
	v.SetDefault("terminal.login", 0)
	v.SetDefault("terminal.password", "")
	v.SetDefault("terminal.session_id", "")
	v.SetDefault("terminal.server_name", "")
	v.SetDefault("terminal.host", "")
	v.SetDefault("terminal.port", 443)
	v.SetDefault("terminal.base_symbol", "EURUSD")
	v.SetDefault("terminal.wait_for_terminal", true)
	v.SetDefault("terminal.readiness_timeout", "30s")

	v.SetDefault("transport.address", "mt5.mrpc.pro:443")
	v.SetDefault("transport.tls", true)
	v.SetDefault("transport.server_name_override", "")
	v.SetDefault("transport.insecure_skip_verify", false)
	v.SetDefault("transport.keepalive_time", "30s")
	v.SetDefault("transport.keepalive_timeout", "10s")
	v.SetDefault("transport.max_recv_msg_size", 64<<20)
	v.SetDefault("transport.reconnect_delay", "500ms")

	v.SetDefault("retry.max_attempts", 5)
	v.SetDefault("retry.min_delay", "500ms")
	v.SetDefault("retry.max_delay", "5s")

	v.SetDefault("watch.symbols", []string{})
	v.SetDefault("watch.trade_transactions", true)
	v.SetDefault("watch.position_profit", false)
	v.SetDefault("watch.profit_interval", "1s")
	v.SetDefault("watch.snapshot_interval", "5m")

	v.SetDefault("database.path", "data/mt5_journal.db")
	v.SetDefault("database.max_open_conns", 4)
	v.SetDefault("database.max_idle_conns", 4)
	v.SetDefault("database.conn_max_lifetime", "1h")
	v.SetDefault("database.in_memory", false)

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.encoding", "console")
	v.SetDefault("logging.development", true)
	v.SetDefault("logging.output_paths", []string{"stdout"})
	v.SetDefault("logging.error_output_paths", []string{"stderr"})

	v.SetDefault("monitor.enabled", false)
	v.SetDefault("monitor.port", 9108)
}

func decodeHook() viper.DecoderConfigOption {
	return func(dc *mapstructure.DecoderConfig) {
		dc.TagName = "mapstructure"
		dc.DecodeHook = mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		)
	}
}
