package transport

import (
	"crypto/tls"
	"errors"
	"fmt"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/keepalive"

	"mt5-term/internal/config"
	"mt5-term/internal/termapi"
)

// Dial 按配置创建共享的 gRPC 通道，调用方负责 Close。
// 通道建立是惰性的，连接错误会在首次调用时以 Unavailable 出现。
func Dial(cfg config.TransportConfig, extra ...grpc.DialOption) (*grpc.ClientConn, error) {
	opts, err := DialOptions(cfg)
	if err != nil {
		return nil, err
	}
	opts = append(opts, extra...)

	conn, err := grpc.NewClient(cfg.Address, opts...)
	if err != nil {
		return nil, fmt.Errorf("transport: 创建 gRPC 通道失败 %q: %w", cfg.Address, err)
	}
	return conn, nil
}

// DialOptions 返回与配置对应的拨号选项，测试可与自定义 dialer 组合使用。
func DialOptions(cfg config.TransportConfig) ([]grpc.DialOption, error) {
	if cfg.Address == "" {
		return nil, errors.New("transport: address 不能为空")
	}

	callOpts := []grpc.CallOption{grpc.ForceCodec(termapi.Codec{})}
	if cfg.MaxRecvMsgSize > 0 {
		callOpts = append(callOpts, grpc.MaxCallRecvMsgSize(cfg.MaxRecvMsgSize))
	}

	opts := []grpc.DialOption{
		grpc.WithTransportCredentials(transportCredentials(cfg)),
		grpc.WithDefaultCallOptions(callOpts...),
	}

	if cfg.KeepaliveTime > 0 {
		opts = append(opts, grpc.WithKeepaliveParams(keepalive.ClientParameters{
			Time:                cfg.KeepaliveTime,
			Timeout:             cfg.KeepaliveTimeout,
			PermitWithoutStream: true,
		}))
	}

	return opts, nil
}

func transportCredentials(cfg config.TransportConfig) credentials.TransportCredentials {
	if !cfg.TLS {
		return insecure.NewCredentials()
	}
	return credentials.NewTLS(&tls.Config{
		MinVersion:         tls.VersionTLS12,
		ServerName:         cfg.ServerNameOverride,
		InsecureSkipVerify: cfg.InsecureSkipVerify, //nolint:gosec // 仅用于自签名测试环境
	})
}
