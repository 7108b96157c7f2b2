package terminal

import (
	"context"
	"errors"
	"time"

	"mt5-term/internal/termapi"
)

// Connect 按主机与端口握手。握手失败不会重试。
func (c *Client) Connect(ctx context.Context, params HostPort) error {
	if err := params.normalize(); err != nil {
		return err
	}
	return c.connectHostPort(ctx, params)
}

// ConnectByServerName 按集群名称握手。握手失败不会重试。
func (c *Client) ConnectByServerName(ctx context.Context, params ServerName) error {
	if err := params.normalize(); err != nil {
		return err
	}
	return c.connectServerName(ctx, params)
}

func (c *Client) connectHostPort(ctx context.Context, params HostPort) error {
	req := &termapi.ConnectRequest{
		User:                      c.creds.Login,
		Password:                  c.creds.Password,
		Host:                      params.Host,
		Port:                      int32(params.Port),
		BaseChartSymbol:           params.BaseSymbol,
		WaitForTerminalIsAlive:    params.WaitForTerminal,
		TerminalReadinessTimeoutS: int32(params.ReadinessTimeout / time.Second),
	}

	token, err := c.handshake(ctx, termapi.MethodConnect, req)
	if err != nil {
		return err
	}

	c.session.Store(&Session{
		Token:            token,
		Kind:             ConnectHostPort,
		Host:             params.Host,
		Port:             params.Port,
		BaseSymbol:       params.BaseSymbol,
		WaitForTerminal:  params.WaitForTerminal,
		ReadinessTimeout: params.ReadinessTimeout,
		ConnectedAt:      time.Now().UTC(),
	})
	return nil
}

func (c *Client) connectServerName(ctx context.Context, params ServerName) error {
	req := &termapi.ConnectExRequest{
		User:                      c.creds.Login,
		Password:                  c.creds.Password,
		MtClusterName:             params.Name,
		BaseChartSymbol:           params.BaseSymbol,
		TerminalReadinessTimeoutS: int32(params.ReadinessTimeout / time.Second),
	}

	token, err := c.handshake(ctx, termapi.MethodConnectEx, req)
	if err != nil {
		return err
	}

	c.session.Store(&Session{
		Token:            token,
		Kind:             ConnectServerName,
		ServerName:       params.Name,
		BaseSymbol:       params.BaseSymbol,
		ReadinessTimeout: params.ReadinessTimeout,
		ConnectedAt:      time.Now().UTC(),
	})
	return nil
}

func (c *Client) handshake(ctx context.Context, method string, req any) (string, error) {
	reply := new(termapi.Reply[termapi.ConnectData])
	if err := c.invoke(ctx, c.session.Load().Token, method, req, reply); err != nil {
		return "", err
	}
	if apiErr := reply.GetError(); hasMessage(apiErr) {
		return "", newAPIError(apiErr)
	}
	data := reply.GetData()
	if data == nil || data.TerminalInstanceGUID == "" {
		return "", errors.New("terminal: 握手响应缺少终端实例标识")
	}
	return data.TerminalInstanceGUID, nil
}

// Disconnect 释放服务端终端实例并清空本地会话。
func (c *Client) Disconnect(ctx context.Context) error {
	if _, err := call[termapi.DisconnectData](ctx, c, termapi.MethodDisconnect, &termapi.DisconnectRequest{}); err != nil {
		return err
	}
	c.session.Store(&Session{})
	return nil
}

// CheckConnect 询问服务端终端是否存活。
func (c *Client) CheckConnect(ctx context.Context) (bool, error) {
	data, err := call[termapi.CheckConnectData](ctx, c, termapi.MethodCheckConnect, &termapi.CheckConnectRequest{})
	if err != nil {
		return false, err
	}
	return data.IsAlive, nil
}

// recoverSession 等待固定间隔后按上一次的连接方式重新握手。
// 并发触发的重连合并为一次握手。握手不受任何调用方的截止时间或取消约束，
// 每个等待者只按自己的 ctx 提前离开。
func (c *Client) recoverSession(ctx context.Context, cause error) error {
	if err := c.pause(ctx); err != nil {
		return err
	}

	shared := context.WithoutCancel(ctx)
	ch := c.reconnects.DoChan("reconnect", func() (any, error) {
		return nil, c.reconnect(shared, cause)
	})
	select {
	case res := <-ch:
		return res.Err
	case <-ctx.Done():
		return contextError(ctx)
	}
}

func (c *Client) reconnect(ctx context.Context, cause error) error {
	snap := c.session.Load()
	start := time.Now()

	var err error
	switch snap.Kind {
	case ConnectHostPort:
		err = c.connectHostPort(ctx, snap.hostPort())
	case ConnectServerName:
		err = c.connectServerName(ctx, snap.serverName())
	default:
		err = ErrNotConnected
	}

	if c.hooks.OnReconnect != nil {
		c.hooks.OnReconnect(ReconnectEvent{
			Kind:     snap.Kind,
			Cause:    cause,
			Err:      err,
			Duration: time.Since(start),
		})
	}
	return err
}

func (c *Client) pause(ctx context.Context) error {
	wait := c.backoff.NextBackOff()
	if wait <= 0 {
		if isCancelled(ctx) {
			return cancelledError(ctx)
		}
		return nil
	}

	timer := time.NewTimer(wait)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return contextError(ctx)
	case <-timer.C:
		return nil
	}
}
