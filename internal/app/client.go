package app

import (
	"context"
	"fmt"

	"github.com/cenkalti/backoff/v4"
	"go.uber.org/zap"
	"google.golang.org/grpc"

	"mt5-term/internal/config"
	"mt5-term/internal/terminal"
	"mt5-term/internal/transport"
)

// Client 为一次性命令提供已连接的终端客户端，不写事件日志。
type Client struct {
	*terminal.Client
	conn *grpc.ClientConn
}

// Open 建立通道并完成握手。
func Open(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*Client, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	conn, err := transport.Dial(cfg.Transport)
	if err != nil {
		return nil, err
	}

	client, err := terminal.New(conn, credentialsFrom(cfg.Terminal),
		terminal.WithReconnectDelay(cfg.Transport.ReconnectDelay),
		terminal.WithHooks(terminal.Hooks{OnReconnect: func(ev terminal.ReconnectEvent) {
			logger.Warn("终端重连", zap.Stringer("kind", ev.Kind), zap.NamedError("cause", ev.Cause), zap.Error(ev.Err))
		}}),
	)
	if err != nil {
		_ = conn.Close()
		return nil, err
	}

	if _, err := connectWithRetry(ctx, client, cfg.Terminal, cfg.Retry, logger); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("连接终端失败: %w", err)
	}

	return &Client{Client: client, conn: conn}, nil
}

// Close 释放服务端终端实例并关闭通道。
func (c *Client) Close(ctx context.Context) error {
	disconnectErr := c.Disconnect(ctx)
	if err := c.conn.Close(); err != nil {
		return err
	}
	return disconnectErr
}

func credentialsFrom(tc config.TerminalConfig) terminal.Credentials {
	return terminal.Credentials{
		Login:     tc.Login,
		Password:  tc.Password,
		SessionID: tc.SessionID,
	}
}

// connectWithRetry 按 retry 配置做指数退避。握手本身不重试，
// 业务错误（如账户无效）直接返回。
func connectWithRetry(ctx context.Context, client *terminal.Client, tc config.TerminalConfig, rc config.RetryConfig, logger *zap.Logger) (int, error) {
	policy := backoff.NewExponentialBackOff()
	policy.InitialInterval = rc.MinDelay
	policy.MaxInterval = rc.MaxDelay
	policy.MaxElapsedTime = 0

	var retries uint64
	if rc.MaxAttempts > 1 {
		retries = uint64(rc.MaxAttempts - 1)
	}

	attempts := 0
	op := func() error {
		attempts++
		err := connectOnce(ctx, client, tc)
		if err == nil {
			return nil
		}
		if _, ok := terminal.AsAPIError(err); ok {
			return backoff.Permanent(err)
		}
		logger.Warn("连接终端失败，准备重试", zap.Int("attempt", attempts), zap.Error(err))
		return err
	}

	err := backoff.Retry(op, backoff.WithContext(backoff.WithMaxRetries(policy, retries), ctx))
	return attempts, err
}

func connectOnce(ctx context.Context, client *terminal.Client, tc config.TerminalConfig) error {
	if tc.ServerName != "" {
		return client.ConnectByServerName(ctx, terminal.ServerName{
			Name:             tc.ServerName,
			BaseSymbol:       tc.BaseSymbol,
			ReadinessTimeout: tc.ReadinessTimeout,
		})
	}
	return client.Connect(ctx, terminal.HostPort{
		Host:             tc.Host,
		Port:             tc.Port,
		BaseSymbol:       tc.BaseSymbol,
		WaitForTerminal:  tc.WaitForTerminal,
		ReadinessTimeout: tc.ReadinessTimeout,
	})
}
