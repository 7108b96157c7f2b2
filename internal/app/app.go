package app

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
	"google.golang.org/grpc"

	"mt5-term/internal/config"
	"mt5-term/internal/metrics"
	"mt5-term/internal/store"
	"mt5-term/internal/transport"
)

// App 聚合核心依赖并驱动系统生命周期。
type App struct {
	cfg     *config.Config
	logger  *zap.Logger
	store   *store.Store
	metrics *metrics.Metrics
}

// New 创建 App 实例。
func New(cfg *config.Config, logger *zap.Logger, store *store.Store) *App {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &App{
		cfg:     cfg,
		logger:  logger,
		store:   store,
		metrics: metrics.New(),
	}
}

// Run 建立通道与会话，随后驱动账户快照和订阅直到 ctx 结束。
func (a *App) Run(ctx context.Context) error {
	conn, err := transport.Dial(a.cfg.Transport)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := conn.Close(); closeErr != nil {
			a.logger.Warn("关闭 gRPC 通道失败", zap.Error(closeErr))
		}
	}()

	return a.run(ctx, conn)
}

func (a *App) run(ctx context.Context, conn grpc.ClientConnInterface) error {
	a.logger.Info("终端客户端已初始化",
		zap.String("environment", a.cfg.App.Environment),
		zap.String("address", a.cfg.Transport.Address),
		zap.Uint64("login", a.cfg.Terminal.Login),
		zap.Strings("symbols", a.cfg.Watch.Symbols),
	)

	orch, err := newOrchestrator(a.cfg, conn, a.logger, a.store, a.metrics)
	if err != nil {
		return err
	}

	if a.cfg.Monitor.Enabled {
		if err := startMonitorServer(ctx, newMonitorHandler(orch, a.logger), a.cfg.Monitor.Port, a.logger); err != nil {
			return err
		}
	}

	if err := orch.Connect(ctx); err != nil {
		if errors.Is(err, context.Canceled) {
			return nil
		}
		return err
	}

	if err := orch.Run(ctx); err != nil {
		return fmt.Errorf("系统异常退出: %w", err)
	}

	a.logger.Info("系统收到退出信号，正在停止")
	return nil
}
