package terminal

import (
	"context"
	"time"

	"google.golang.org/grpc/metadata"

	"mt5-term/internal/termapi"
)

// call 先检查会话，再交给 execute。
func call[D any](ctx context.Context, c *Client, method string, req any) (*D, error) {
	if _, err := c.ensureConnected(); err != nil {
		return nil, err
	}
	return execute[D](ctx, c, method, req)
}

// execute 发起一次一元调用。传输层 Unavailable 与终端实例丢失会
// 触发重连并重试，次数不设上限；其他错误原样返回。
func execute[D any](ctx context.Context, c *Client, method string, req any) (*D, error) {
	for {
		if isCancelled(ctx) {
			return nil, cancelledError(ctx)
		}

		reply := new(termapi.Reply[D])
		err := c.invoke(ctx, c.session.Load().Token, method, req, reply)
		if err != nil {
			if !IsUnavailable(err) {
				return nil, err
			}
			if recoverErr := c.recoverSession(ctx, err); recoverErr != nil {
				return nil, recoverErr
			}
			continue
		}

		if envelope := reply.GetError(); envelope != nil {
			if envelope.IsTerminalNotFound() {
				if recoverErr := c.recoverSession(ctx, newAPIError(envelope)); recoverErr != nil {
					return nil, recoverErr
				}
				continue
			}
			if hasMessage(envelope) {
				return nil, newAPIError(envelope)
			}
		}

		if reply.Data == nil {
			reply.Data = new(D)
		}
		return reply.Data, nil
	}
}

// invoke 执行单次尝试。尝试本身不受取消影响，只受截止时间约束。
func (c *Client) invoke(ctx context.Context, token, method string, req, reply any) error {
	attemptCtx, cancel := attemptContext(ctx, time.Now())
	defer cancel()
	return c.conn.Invoke(withToken(attemptCtx, token), method, req, reply)
}

func attemptContext(ctx context.Context, now time.Time) (context.Context, context.CancelFunc) {
	detached := context.WithoutCancel(ctx)
	deadline, ok := ctx.Deadline()
	if !ok {
		return context.WithCancel(detached)
	}
	return context.WithTimeout(detached, timeoutUntil(deadline, now))
}

// timeoutUntil 将绝对截止时间换算为相对超时，已过期时为 0。
func timeoutUntil(deadline, now time.Time) time.Duration {
	if d := deadline.Sub(now); d > 0 {
		return d
	}
	return 0
}

func withToken(ctx context.Context, token string) context.Context {
	if token == "" {
		return ctx
	}
	return metadata.AppendToOutgoingContext(ctx, termapi.MetadataSessionKey, token)
}
