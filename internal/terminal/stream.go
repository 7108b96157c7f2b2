package terminal

import (
	"context"
	"errors"
	"io"
	"iter"

	"google.golang.org/grpc"

	"mt5-term/internal/termapi"
)

type streamOutcome int

const (
	// streamEnded 服务端正常结束、调用方停止消费或已取消。
	streamEnded streamOutcome = iota
	// streamLost 需要重连后用原请求重新订阅。
	streamLost
	// streamFailed 终止整个订阅并把错误交给调用方。
	streamFailed
)

// subscribe 返回惰性序列：每次遍历都会新开一条 server-streaming 调用。
// 重连后从“当前”重新订阅，断线期间的推送不会补发。
func subscribe[D any](ctx context.Context, c *Client, method string, req any) iter.Seq2[*D, error] {
	desc := &grpc.StreamDesc{ServerStreams: true}

	return func(yield func(*D, error) bool) {
		if _, err := c.ensureConnected(); err != nil {
			yield(nil, err)
			return
		}

		for {
			if isCancelled(ctx) {
				return
			}
			if ctx.Err() != nil {
				yield(nil, contextError(ctx))
				return
			}

			outcome, err := consume(ctx, c, desc, method, req, yield)
			switch outcome {
			case streamEnded:
				return
			case streamFailed:
				yield(nil, err)
				return
			}

			if recoverErr := c.recoverSession(ctx, err); recoverErr != nil {
				if isCancelled(ctx) {
					return
				}
				yield(nil, recoverErr)
				return
			}
		}
	}
}

// consume 读取一条流直到结束。返回前总会取消底层流。
func consume[D any](ctx context.Context, c *Client, desc *grpc.StreamDesc, method string, req any, yield func(*D, error) bool) (streamOutcome, error) {
	streamCtx, cancel := context.WithCancel(withToken(ctx, c.session.Load().Token))
	defer cancel()

	stream, err := c.conn.NewStream(streamCtx, desc, method)
	if err != nil {
		return classifyStreamError(ctx, err)
	}
	if err := stream.SendMsg(req); err != nil && !errors.Is(err, io.EOF) {
		return classifyStreamError(ctx, err)
	}
	if err := stream.CloseSend(); err != nil {
		return classifyStreamError(ctx, err)
	}

	for {
		reply := new(termapi.Reply[D])
		if err := stream.RecvMsg(reply); err != nil {
			if errors.Is(err, io.EOF) {
				return streamEnded, nil
			}
			return classifyStreamError(ctx, err)
		}

		if envelope := reply.GetError(); envelope != nil {
			if envelope.IsTerminalNotFound() {
				return streamLost, newAPIError(envelope)
			}
			if hasMessage(envelope) {
				return streamFailed, newAPIError(envelope)
			}
		}

		if data := reply.GetData(); data != nil {
			if !yield(data, nil) {
				return streamEnded, nil
			}
		}
	}
}

func classifyStreamError(ctx context.Context, err error) (streamOutcome, error) {
	switch {
	case isCancelled(ctx):
		return streamEnded, nil
	case IsUnavailable(err):
		return streamLost, err
	default:
		return streamFailed, err
	}
}
