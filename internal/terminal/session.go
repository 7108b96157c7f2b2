package terminal

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// ConnectKind 记录最近一次成功连接所用的方式，重连时按原方式重放。
type ConnectKind int

const (
	ConnectNone ConnectKind = iota
	ConnectHostPort
	ConnectServerName
)

func (k ConnectKind) String() string {
	switch k {
	case ConnectHostPort:
		return "host_port"
	case ConnectServerName:
		return "server_name"
	default:
		return "none"
	}
}

// Credentials 为构造客户端时提供的身份信息。
type Credentials struct {
	Login    uint64
	Password string
	// SessionID 非空时必须为 UUID，首次握手前作为会话令牌发送。
	SessionID string
}

func (c Credentials) validate() error {
	if c.Login == 0 {
		return fmt.Errorf("terminal: login 不能为空")
	}
	if c.SessionID != "" {
		if _, err := uuid.Parse(c.SessionID); err != nil {
			return fmt.Errorf("terminal: session_id 不是合法的 UUID: %w", err)
		}
	}
	return nil
}

// Session 为不可变的会话快照，连接与重连整体替换。
type Session struct {
	Token            string
	Kind             ConnectKind
	Host             string
	Port             int
	ServerName       string
	BaseSymbol       string
	WaitForTerminal  bool
	ReadinessTimeout time.Duration
	ConnectedAt      time.Time
}

// Connected 判断快照是否来自一次成功的握手。
func (s *Session) Connected() bool {
	return s != nil && s.Kind != ConnectNone
}

// HostPort 描述按主机端口连接的参数。
type HostPort struct {
	Host            string
	Port            int
	BaseSymbol      string
	WaitForTerminal bool
	// ReadinessTimeout 为等待终端就绪的时长，向下取整到秒。
	ReadinessTimeout time.Duration
}

// ServerName 描述按集群名称连接的参数。
type ServerName struct {
	Name             string
	BaseSymbol       string
	ReadinessTimeout time.Duration
}

const (
	defaultBaseSymbol       = "EURUSD"
	defaultPort             = 443
	defaultReadinessTimeout = 30 * time.Second
)

func (p *HostPort) normalize() error {
	if p.Host == "" {
		return fmt.Errorf("terminal: host 不能为空")
	}
	if p.Port == 0 {
		p.Port = defaultPort
	}
	if p.Port < 0 || p.Port > 65535 {
		return fmt.Errorf("terminal: port 超出范围: %d", p.Port)
	}
	if p.ReadinessTimeout < 0 {
		return fmt.Errorf("terminal: readiness_timeout 不能为负")
	}
	if p.ReadinessTimeout == 0 {
		p.ReadinessTimeout = defaultReadinessTimeout
	}
	if p.BaseSymbol == "" {
		p.BaseSymbol = defaultBaseSymbol
	}
	return nil
}

func (p *ServerName) normalize() error {
	if p.Name == "" {
		return fmt.Errorf("terminal: server name 不能为空")
	}
	if p.ReadinessTimeout < 0 {
		return fmt.Errorf("terminal: readiness_timeout 不能为负")
	}
	if p.ReadinessTimeout == 0 {
		p.ReadinessTimeout = defaultReadinessTimeout
	}
	if p.BaseSymbol == "" {
		p.BaseSymbol = defaultBaseSymbol
	}
	return nil
}

func (s *Session) hostPort() HostPort {
	return HostPort{
		Host:             s.Host,
		Port:             s.Port,
		BaseSymbol:       s.BaseSymbol,
		WaitForTerminal:  s.WaitForTerminal,
		ReadinessTimeout: s.ReadinessTimeout,
	}
}

func (s *Session) serverName() ServerName {
	return ServerName{
		Name:             s.ServerName,
		BaseSymbol:       s.BaseSymbol,
		ReadinessTimeout: s.ReadinessTimeout,
	}
}
