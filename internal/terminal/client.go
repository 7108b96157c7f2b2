package terminal

import (
	"errors"
	"sync/atomic"
	"time"

	"github.com/cenkalti/backoff/v4"
	"golang.org/x/sync/singleflight"
	"google.golang.org/grpc"
)

// DefaultReconnectDelay 为每次重连前的固定等待时间。
const DefaultReconnectDelay = 500 * time.Millisecond

// ReconnectEvent 描述一次重连尝试。
type ReconnectEvent struct {
	Kind     ConnectKind
	Cause    error
	Err      error
	Duration time.Duration
}

// Hooks 让调用方观察客户端内部的恢复过程，客户端本身不记录日志。
type Hooks struct {
	OnReconnect func(ReconnectEvent)
}

// Option 调整客户端行为。
type Option func(*Client)

// WithReconnectDelay 设置重连前的等待时间，不会随次数增长。
func WithReconnectDelay(delay time.Duration) Option {
	return func(c *Client) {
		if delay >= 0 {
			c.backoff = backoff.NewConstantBackOff(delay)
		}
	}
}

// WithHooks 注册观察回调。
func WithHooks(hooks Hooks) Option {
	return func(c *Client) {
		c.hooks = hooks
	}
}

// Client 在共享的 gRPC 通道上执行终端调用，并在会话丢失时自动重连。
type Client struct {
	conn    grpc.ClientConnInterface
	creds   Credentials
	session atomic.Pointer[Session]
	backoff backoff.BackOff
	hooks   Hooks

	reconnects singleflight.Group
}

// New 创建客户端；conn 的生命周期由调用方管理。
func New(conn grpc.ClientConnInterface, creds Credentials, opts ...Option) (*Client, error) {
	if conn == nil {
		return nil, errors.New("terminal: conn 不能为空")
	}
	if err := creds.validate(); err != nil {
		return nil, err
	}

	c := &Client{
		conn:    conn,
		creds:   creds,
		backoff: backoff.NewConstantBackOff(DefaultReconnectDelay),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.session.Store(&Session{Token: creds.SessionID})

	return c, nil
}

// Session 返回当前会话快照，调用方不得修改。
func (c *Client) Session() Session {
	return *c.session.Load()
}

// Connected 判断是否已完成握手。
func (c *Client) Connected() bool {
	return c.session.Load().Connected()
}

// Login 返回账户号。
func (c *Client) Login() uint64 {
	return c.creds.Login
}

func (c *Client) ensureConnected() (*Session, error) {
	snap := c.session.Load()
	if !snap.Connected() {
		return nil, ErrNotConnected
	}
	return snap, nil
}
