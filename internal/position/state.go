package position

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"mt5-term/internal/termapi"
)

type snapshotClient interface {
	AccountSummary(ctx context.Context) (*termapi.AccountSummaryData, error)
	OpenedOrders(ctx context.Context, sort termapi.OrderSortMode) (*termapi.OpenedOrdersData, error)
}

// AccountBalance 描述账户权益及余额。
type AccountBalance struct {
	Login     int64
	Currency  string
	Balance   float64
	Equity    float64
	Credit    float64
	Leverage  int64
	Floating  float64
	Timestamp time.Time
}

// Snapshot 为某一时刻的账户与持仓状态。
type Snapshot struct {
	Balance       AccountBalance
	Positions     []termapi.PositionInfo
	PendingOrders []termapi.OpenedOrderInfo
	Summaries     []Summary
}

// Manager 维护仓位与资金状态。
type Manager struct {
	client snapshotClient
	logger *zap.Logger
}

// NewManager 创建仓位管理器。
func NewManager(client snapshotClient, logger *zap.Logger) *Manager {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Manager{
		client: client,
		logger: logger,
	}
}

// FetchSnapshot 并发获取账户概览与当前持仓。
func (m *Manager) FetchSnapshot(ctx context.Context) (Snapshot, error) {
	var (
		summary *termapi.AccountSummaryData
		opened  *termapi.OpenedOrdersData
	)

	group, groupCtx := errgroup.WithContext(ctx)
	group.Go(func() error {
		data, err := m.client.AccountSummary(groupCtx)
		if err != nil {
			return fmt.Errorf("position: 获取账户概览失败: %w", err)
		}
		summary = data
		return nil
	})
	group.Go(func() error {
		data, err := m.client.OpenedOrders(groupCtx, termapi.SortByOpenTimeAsc)
		if err != nil {
			return fmt.Errorf("position: 获取持仓失败: %w", err)
		}
		opened = data
		return nil
	})
	if err := group.Wait(); err != nil {
		return Snapshot{}, err
	}

	snap := Snapshot{
		Balance: AccountBalance{
			Login:     summary.AccountLogin,
			Currency:  summary.AccountCurrency,
			Balance:   summary.AccountBalance,
			Equity:    summary.AccountEquity,
			Credit:    summary.AccountCredit,
			Leverage:  summary.AccountLeverage,
			Timestamp: time.Now().UTC(),
		},
		Positions:     opened.PositionInfos,
		PendingOrders: opened.OpenedOrders,
	}
	snap.Summaries = Aggregate(snap.Positions, snap.Balance.Equity)
	for _, s := range snap.Summaries {
		snap.Balance.Floating += s.Profit
	}

	m.logger.Debug("账户快照已更新",
		zap.Float64("equity", snap.Balance.Equity),
		zap.Int("positions", len(snap.Positions)),
		zap.Int("pending_orders", len(snap.PendingOrders)),
	)

	return snap, nil
}
