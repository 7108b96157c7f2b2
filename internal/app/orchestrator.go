package app

import (
	"context"
	"errors"
	"fmt"
	"iter"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"google.golang.org/grpc"

	"mt5-term/internal/config"
	"mt5-term/internal/journal"
	"mt5-term/internal/metrics"
	"mt5-term/internal/position"
	"mt5-term/internal/store"
	"mt5-term/internal/terminal"
)

const (
	streamTicks        = "ticks"
	streamTransactions = "trade_transactions"
	streamProfit       = "position_profit"
)

type orchestrator struct {
	client    *terminal.Client
	positions *position.Manager
	journal   *journal.Service
	metrics   *metrics.Metrics
	logger    *zap.Logger

	terminal config.TerminalConfig
	retry    config.RetryConfig
	watch    config.WatchConfig
}

func newOrchestrator(cfg *config.Config, conn grpc.ClientConnInterface, logger *zap.Logger, store *store.Store, m *metrics.Metrics) (*orchestrator, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if m == nil {
		m = metrics.New()
	}

	journalSvc, err := journal.NewService(store, logger)
	if err != nil {
		return nil, fmt.Errorf("初始化事件日志失败: %w", err)
	}
	journalSvc.OnRecord(func(typ journal.EventType) {
		m.IncJournalEvent(string(typ))
	})

	o := &orchestrator{
		journal:  journalSvc,
		metrics:  m,
		logger:   logger,
		terminal: cfg.Terminal,
		retry:    cfg.Retry,
		watch:    cfg.Watch,
	}

	client, err := terminal.New(conn, credentialsFrom(cfg.Terminal),
		terminal.WithReconnectDelay(cfg.Transport.ReconnectDelay),
		terminal.WithHooks(terminal.Hooks{OnReconnect: o.onReconnect}),
	)
	if err != nil {
		return nil, fmt.Errorf("初始化终端客户端失败: %w", err)
	}

	o.client = client
	o.positions = position.NewManager(client, logger)
	return o, nil
}

// Connect 建立首个会话并记录结果。
func (o *orchestrator) Connect(ctx context.Context) error {
	attempts, err := connectWithRetry(ctx, o.client, o.terminal, o.retry, o.logger)
	if err != nil {
		o.metrics.SetConnected(false)
		o.journal.RecordError(ctx, "连接终端失败", err, map[string]interface{}{"attempts": attempts})
		return fmt.Errorf("连接终端失败: %w", err)
	}

	session := o.client.Session()
	o.metrics.SetConnected(true)
	o.journal.RecordConnected(ctx, session)
	o.logger.Info("终端已连接",
		zap.Stringer("kind", session.Kind),
		zap.String("base_symbol", session.BaseSymbol),
		zap.Int("attempts", attempts),
	)
	return nil
}

func (o *orchestrator) onReconnect(ev terminal.ReconnectEvent) {
	ctx := context.Background()
	o.metrics.ObserveReconnect(ev.Kind.String(), ev.Err, ev.Duration)
	o.journal.RecordReconnect(ctx, ev)

	if ev.Err != nil {
		o.logger.Warn("终端重连失败", zap.Stringer("kind", ev.Kind), zap.NamedError("cause", ev.Cause), zap.Error(ev.Err))
		return
	}
	o.logger.Info("终端已重连", zap.Stringer("kind", ev.Kind), zap.NamedError("cause", ev.Cause), zap.Duration("took", ev.Duration))
	o.journal.RecordConnected(ctx, o.client.Session())
}

// Run 并发驱动账户快照与各个订阅，直到 ctx 结束。
func (o *orchestrator) Run(ctx context.Context) error {
	group, groupCtx := errgroup.WithContext(ctx)

	group.Go(func() error {
		return o.snapshotLoop(groupCtx)
	})
	if len(o.watch.Symbols) > 0 {
		group.Go(func() error {
			return watch(groupCtx, o, streamTicks, o.client.OnSymbolTick(groupCtx, o.watch.Symbols), o.journal.RecordTick)
		})
	}
	if o.watch.TradeTransactions {
		group.Go(func() error {
			return watch(groupCtx, o, streamTransactions, o.client.OnTradeTransaction(groupCtx), o.journal.RecordTradeTransaction)
		})
	}
	if o.watch.PositionProfit {
		group.Go(func() error {
			seq := o.client.OnPositionProfit(groupCtx, o.watch.ProfitInterval, true)
			return watch(groupCtx, o, streamProfit, seq, o.journal.RecordPositionProfit)
		})
	}

	err := group.Wait()
	if err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}

func (o *orchestrator) snapshotLoop(ctx context.Context) error {
	if err := o.Tick(ctx); err != nil {
		o.logger.Error("首次账户快照失败", zap.Error(err))
	}
	if o.watch.SnapshotInterval <= 0 {
		return nil
	}

	ticker := time.NewTicker(o.watch.SnapshotInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			if err := o.Tick(ctx); err != nil {
				o.logger.Error("账户快照失败", zap.Error(err))
			}
		}
	}
}

// Tick 拉取一次账户快照并写入事件日志。
func (o *orchestrator) Tick(ctx context.Context) error {
	snap, err := o.positions.FetchSnapshot(ctx)
	if err != nil {
		if ctx.Err() == nil {
			o.journal.RecordError(ctx, "获取账户快照失败", err, nil)
		}
		return err
	}

	o.metrics.SetEquity(snap.Balance.Equity)
	o.journal.RecordAccount(ctx, snap)
	o.logger.Info("账户快照",
		zap.Int64("login", snap.Balance.Login),
		zap.Float64("balance", snap.Balance.Balance),
		zap.Float64("equity", snap.Balance.Equity),
		zap.Float64("floating", snap.Balance.Floating),
		zap.Int("symbols", len(snap.Summaries)),
	)
	return nil
}

// watch 消费一个订阅。订阅因错误结束时只记录，不影响其他订阅。
func watch[D any](ctx context.Context, o *orchestrator, name string, seq iter.Seq2[*D, error], record func(context.Context, *D)) error {
	o.logger.Info("开始订阅", zap.String("stream", name))

	for data, err := range seq {
		if err != nil {
			o.metrics.IncStreamError(name)
			o.journal.RecordError(ctx, "订阅中断", err, map[string]interface{}{"stream": name})
			o.logger.Error("订阅中断", zap.String("stream", name), zap.Error(err))
			return nil
		}
		o.metrics.IncStreamItem(name)
		record(ctx, data)
	}

	o.logger.Info("订阅结束", zap.String("stream", name))
	return nil
}
