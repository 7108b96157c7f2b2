// Package terminaltest 提供进程内的终端服务端替身，供客户端与应用层测试使用。
package terminaltest

import (
	"context"
	"encoding/json"
	"fmt"
	"net"
	"sync"
	"testing"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"

	"mt5-term/internal/config"
	"mt5-term/internal/termapi"
	"mt5-term/internal/transport"
)

const bufSize = 1 << 20

// Envelope 为服务端回写的响应信封，按方法的响应定义编码。
type Envelope struct {
	Data  any            `json:"data,omitempty"`
	Error *termapi.Error `json:"error,omitempty"`
}

// OK 包装成功响应。
func OK(data any) Envelope {
	return Envelope{Data: data}
}

// Fail 包装业务错误响应。
func Fail(code, message string) Envelope {
	return Envelope{Error: &termapi.Error{Code: code, Message: message}}
}

// NotFound 返回终端实例丢失的响应。
func NotFound() Envelope {
	return Fail(termapi.ErrCodeTerminalInstanceNotFound, "terminal instance not found")
}

// Unavailable 返回传输层不可用错误。
func Unavailable() error {
	return status.Error(codes.Unavailable, "terminal unavailable")
}

// UnaryHandler 处理一元调用，req 为解码后的请求 JSON。返回 error 时以 gRPC 状态结束调用。
type UnaryHandler func(ctx context.Context, req json.RawMessage) (Envelope, error)

// StreamHandler 处理服务端流，send 每次写出一条信封。
type StreamHandler func(ctx context.Context, req json.RawMessage, send func(Envelope) error) error

// Call 为服务端记录的一次调用。
type Call struct {
	Method  string
	Token   string
	Request json.RawMessage
}

// frameCodec 原样收发 protobuf 帧，由 dispatch 按方法定义编解码。
type frameCodec struct{}

func (frameCodec) Marshal(v any) ([]byte, error) {
	frame, ok := v.([]byte)
	if !ok {
		return nil, fmt.Errorf("terminaltest: 不支持的消息类型 %T", v)
	}
	return frame, nil
}

func (frameCodec) Unmarshal(data []byte, v any) error {
	frame, ok := v.(*[]byte)
	if !ok {
		return fmt.Errorf("terminaltest: 不支持的消息类型 %T", v)
	}
	*frame = append((*frame)[:0], data...)
	return nil
}

func (frameCodec) Name() string {
	return "proto"
}

// Server 按完整方法名分发请求。
type Server struct {
	mu      sync.Mutex
	unary   map[string]UnaryHandler
	streams map[string]StreamHandler
	calls   []Call

	lis *bufconn.Listener
	srv *grpc.Server
}

// NewServer 启动服务端并在测试结束时关闭。
func NewServer(t testing.TB) *Server {
	t.Helper()

	s := &Server{
		unary:   make(map[string]UnaryHandler),
		streams: make(map[string]StreamHandler),
		lis:     bufconn.Listen(bufSize),
	}
	s.srv = grpc.NewServer(
		grpc.ForceServerCodec(frameCodec{}),
		grpc.UnknownServiceHandler(s.dispatch),
	)

	go func() {
		_ = s.srv.Serve(s.lis)
	}()
	t.Cleanup(s.srv.Stop)

	return s
}

// HandleUnary 注册一元处理器，覆盖同名旧处理器。
func (s *Server) HandleUnary(method string, h UnaryHandler) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.unary[method] = h
}

// HandleStream 注册流处理器。
func (s *Server) HandleStream(method string, h StreamHandler) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.streams[method] = h
}

// Calls 返回指定方法的调用记录，method 为空时返回全部。
func (s *Server) Calls(method string) []Call {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]Call, 0, len(s.calls))
	for _, c := range s.calls {
		if method == "" || c.Method == method {
			out = append(out, c)
		}
	}
	return out
}

// Dial 返回连向该服务端的客户端通道。
func (s *Server) Dial(t testing.TB) *grpc.ClientConn {
	t.Helper()

	conn, err := transport.Dial(
		config.TransportConfig{Address: "passthrough:///bufnet"},
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return s.lis.DialContext(ctx)
		}),
	)
	if err != nil {
		t.Fatalf("terminaltest: dial: %v", err)
	}
	t.Cleanup(func() { _ = conn.Close() })
	return conn
}

func (s *Server) dispatch(_ any, stream grpc.ServerStream) error {
	method, ok := grpc.MethodFromServerStream(stream)
	if !ok {
		return status.Error(codes.Internal, "terminaltest: 无法解析方法名")
	}
	desc, ok := termapi.LookupMethod(method)
	if !ok {
		return status.Errorf(codes.Unimplemented, "terminaltest: 服务定义中没有方法 %s", method)
	}

	var frame []byte
	if err := stream.RecvMsg(&frame); err != nil {
		return err
	}
	req, err := termapi.DecodeJSON(desc.Input(), frame)
	if err != nil {
		return status.Error(codes.InvalidArgument, err.Error())
	}

	ctx := stream.Context()
	s.record(ctx, method, req)

	s.mu.Lock()
	uh := s.unary[method]
	sh := s.streams[method]
	s.mu.Unlock()

	send := func(env Envelope) error {
		out, err := termapi.MarshalAs(desc.Output(), env)
		if err != nil {
			return status.Error(codes.Internal, err.Error())
		}
		return stream.SendMsg(out)
	}

	switch {
	case uh != nil:
		reply, err := uh(ctx, req)
		if err != nil {
			return err
		}
		return send(reply)
	case sh != nil:
		return sh(ctx, req, send)
	default:
		return status.Errorf(codes.Unimplemented, "terminaltest: 未注册方法 %s", method)
	}
}

func (s *Server) record(ctx context.Context, method string, req json.RawMessage) {
	token := TokenFrom(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls = append(s.calls, Call{Method: method, Token: token, Request: append(json.RawMessage(nil), req...)})
}

// TokenFrom 返回调用携带的会话令牌。
func TokenFrom(ctx context.Context) string {
	md, ok := metadata.FromIncomingContext(ctx)
	if !ok {
		return ""
	}
	if v := md.Get(termapi.MetadataSessionKey); len(v) > 0 {
		return v[len(v)-1]
	}
	return ""
}
