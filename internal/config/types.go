package config

import (
	"errors"
	"fmt"
	"time"

	"go.uber.org/multierr"
)

// Config 聚合了客户端运行所需的全部配置项。
type Config struct {
	App       AppConfig       `mapstructure:"app"`
	Terminal  TerminalConfig  `mapstructure:"terminal"`
	Transport TransportConfig `mapstructure:"transport"`
	Retry     RetryConfig     `mapstructure:"retry"`
	Watch     WatchConfig     `mapstructure:"watch"`
	Database  DatabaseConfig  `mapstructure:"database"`
	Logging   LoggingConfig   `mapstructure:"logging"`
	Monitor   MonitorConfig   `mapstructure:"monitor"`
}

// AppConfig 控制应用级参数。
type AppConfig struct {
	Environment string `mapstructure:"environment"`
}

// TerminalConfig 描述账户身份与终端连接方式，server_name 与 host 二选一。
type TerminalConfig struct {
	Login            uint64        `mapstructure:"login"`
	Password         string        `mapstructure:"password"`
	SessionID        string        `mapstructure:"session_id"`
	ServerName       string        `mapstructure:"server_name"`
	Host             string        `mapstructure:"host"`
	Port             int           `mapstructure:"port"`
	BaseSymbol       string        `mapstructure:"base_symbol"`
	WaitForTerminal  bool          `mapstructure:"wait_for_terminal"`
	ReadinessTimeout time.Duration `mapstructure:"readiness_timeout"`
}

// TransportConfig 描述 gRPC 通道。
type TransportConfig struct {
	Address            string        `mapstructure:"address"`
	TLS                bool          `mapstructure:"tls"`
	ServerNameOverride string        `mapstructure:"server_name_override"`
	InsecureSkipVerify bool          `mapstructure:"insecure_skip_verify"`
	KeepaliveTime      time.Duration `mapstructure:"keepalive_time"`
	KeepaliveTimeout   time.Duration `mapstructure:"keepalive_timeout"`
	MaxRecvMsgSize     int           `mapstructure:"max_recv_msg_size"`
	ReconnectDelay     time.Duration `mapstructure:"reconnect_delay"`
}

// RetryConfig 控制首次连接的重试，会话建立后的恢复由客户端负责。
type RetryConfig struct {
	MaxAttempts int           `mapstructure:"max_attempts"`
	MinDelay    time.Duration `mapstructure:"min_delay"`
	MaxDelay    time.Duration `mapstructure:"max_delay"`
}

// WatchConfig 控制需要持续订阅的数据流。
type WatchConfig struct {
	Symbols           []string      `mapstructure:"symbols"`
	TradeTransactions bool          `mapstructure:"trade_transactions"`
	PositionProfit    bool          `mapstructure:"position_profit"`
	ProfitInterval    time.Duration `mapstructure:"profit_interval"`
	SnapshotInterval  time.Duration `mapstructure:"snapshot_interval"`
}

// DatabaseConfig 管理事件日志数据库。
type DatabaseConfig struct {
	Path            string        `mapstructure:"path"`
	MaxOpenConns    int           `mapstructure:"max_open_conns"`
	MaxIdleConns    int           `mapstructure:"max_idle_conns"`
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`
	InMemory        bool          `mapstructure:"in_memory"`
}

// LoggingConfig 控制日志输出。
type LoggingConfig struct {
	Level            string   `mapstructure:"level"`
	Encoding         string   `mapstructure:"encoding"`
	Development      bool     `mapstructure:"development"`
	OutputPaths      []string `mapstructure:"output_paths"`
	ErrorOutputPaths []string `mapstructure:"error_output_paths"`
}

// MonitorConfig 控制 /events 与 /metrics 接口。
type MonitorConfig struct {
	Enabled bool `mapstructure:"enabled"`
	Port    int  `mapstructure:"port"`
}

// Validate 对配置进行基本校验。
func (c *Config) Validate() error {
	var err error

	if c.App.Environment == "" {
		err = multierr.Append(err, errors.New("app.environment 不能为空"))
	}
	if c.Terminal.Login == 0 {
		err = multierr.Append(err, errors.New("terminal.login 不能为空"))
	}
	if c.Terminal.Password == "" {
		err = multierr.Append(err, errors.New("terminal.password 不能为空"))
	}
	if (c.Terminal.ServerName == "") == (c.Terminal.Host == "") {
		err = multierr.Append(err, errors.New("terminal.server_name 与 terminal.host 必须且只能配置一个"))
	}
	if c.Terminal.Host != "" && (c.Terminal.Port <= 0 || c.Terminal.Port > 65535) {
		err = multierr.Append(err, errors.New("terminal.port 必须位于[1,65535]"))
	}
	if c.Terminal.ReadinessTimeout < 0 {
		err = multierr.Append(err, errors.New("terminal.readiness_timeout 不能为负"))
	}
	if c.Transport.Address == "" {
		err = multierr.Append(err, errors.New("transport.address 不能为空"))
	}
	if c.Transport.InsecureSkipVerify && !c.Transport.TLS {
		err = multierr.Append(err, errors.New("transport.insecure_skip_verify 仅在 tls=true 时有效"))
	}
	if c.Transport.KeepaliveTime < 0 || c.Transport.KeepaliveTimeout < 0 {
		err = multierr.Append(err, errors.New("transport.keepalive 不能为负"))
	}
	if c.Transport.MaxRecvMsgSize < 0 {
		err = multierr.Append(err, errors.New("transport.max_recv_msg_size 不能为负"))
	}
	if c.Transport.ReconnectDelay < 0 {
		err = multierr.Append(err, errors.New("transport.reconnect_delay 不能为负"))
	}
	if c.Retry.MaxAttempts <= 0 {
		err = multierr.Append(err, errors.New("retry.max_attempts 必须大于0"))
	}
	if c.Retry.MinDelay <= 0 || c.Retry.MaxDelay <= 0 {
		err = multierr.Append(err, errors.New("retry.delay 必须为正"))
	}
	if c.Retry.MinDelay > c.Retry.MaxDelay {
		err = multierr.Append(err, errors.New("retry.min_delay 不能大于 max_delay"))
	}
	if c.Watch.PositionProfit && c.Watch.ProfitInterval <= 0 {
		err = multierr.Append(err, errors.New("watch.profit_interval 必须大于0"))
	}
	if c.Watch.SnapshotInterval < 0 {
		err = multierr.Append(err, errors.New("watch.snapshot_interval 不能为负"))
	}
	if c.Database.Path == "" && !c.Database.InMemory {
		err = multierr.Append(err, errors.New("database.path 不能为空"))
	}
	if c.Database.MaxOpenConns <= 0 {
		err = multierr.Append(err, errors.New("database.max_open_conns 必须大于0"))
	}
	if c.Database.MaxIdleConns < 0 {
		err = multierr.Append(err, errors.New("database.max_idle_conns 不能为负"))
	}
	if c.Database.ConnMaxLifetime < 0 {
		err = multierr.Append(err, errors.New("database.conn_max_lifetime 不能为负"))
	}
	if c.Logging.Level == "" {
		err = multierr.Append(err, errors.New("logging.level 不能为空"))
	}
	if c.Logging.Encoding == "" {
		err = multierr.Append(err, errors.New("logging.encoding 不能为空"))
	}
	if c.Monitor.Enabled && (c.Monitor.Port <= 0 || c.Monitor.Port > 65535) {
		err = multierr.Append(err, errors.New("monitor.port 必须位于[1,65535]"))
	}

	if err != nil {
		return fmt.Errorf("配置校验失败: %w", err)
	}

	return nil
}
