package terminaltest

import (
	"context"
	"encoding/json"
	"strconv"
	"sync/atomic"

	"mt5-term/internal/termapi"
)

// Handshake 为 Connect/ConnectEx 注册成功处理器，每次握手返回新的实例标识。
// 返回的计数器记录握手次数。
func (s *Server) Handshake(prefix string) *atomic.Int64 {
	var n atomic.Int64
	h := func(context.Context, json.RawMessage) (Envelope, error) {
		seq := n.Add(1)
		return OK(termapi.ConnectData{TerminalInstanceGUID: guid(prefix, seq)}), nil
	}
	s.HandleUnary(termapi.MethodConnect, h)
	s.HandleUnary(termapi.MethodConnectEx, h)
	return &n
}

// Sequence 依次返回给定的结果，耗尽后重复最后一个。
func Sequence(steps ...func() (Envelope, error)) UnaryHandler {
	var i atomic.Int64
	return func(context.Context, json.RawMessage) (Envelope, error) {
		idx := int(i.Add(1) - 1)
		if idx >= len(steps) {
			idx = len(steps) - 1
		}
		return steps[idx]()
	}
}

// Reply 返回固定信封的步骤。
func Reply(env Envelope) func() (Envelope, error) {
	return func() (Envelope, error) { return env, nil }
}

// Status 返回固定 gRPC 错误的步骤。
func Status(err error) func() (Envelope, error) {
	return func() (Envelope, error) { return Envelope{}, err }
}

func guid(prefix string, seq int64) string {
	return prefix + "-" + strconv.FormatInt(seq, 10)
}
