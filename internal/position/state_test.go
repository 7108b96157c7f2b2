package position

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"mt5-term/internal/termapi"
)

type stubClient struct {
	summary    *termapi.AccountSummaryData
	opened     *termapi.OpenedOrdersData
	summaryErr error
}

func (s *stubClient) AccountSummary(context.Context) (*termapi.AccountSummaryData, error) {
	return s.summary, s.summaryErr
}

func (s *stubClient) OpenedOrders(context.Context, termapi.OrderSortMode) (*termapi.OpenedOrdersData, error) {
	return s.opened, nil
}

func TestAggregate(t *testing.T) {
	opened := time.Date(2024, 3, 1, 8, 0, 0, 0, time.UTC)
	positions := []termapi.PositionInfo{
		{Ticket: 1, Symbol: "XAUUSD", Type: 0, Volume: 0.5, PriceOpen: 2000, Profit: 40, Swap: -1, OpenTime: opened.Add(time.Hour)},
		{Ticket: 2, Symbol: "XAUUSD", Type: 1, Volume: 0.2, PriceOpen: 2010, Profit: -10, OpenTime: opened},
		{Ticket: 3, Symbol: "EURUSD", Type: 1, Volume: 1, PriceOpen: 1.1, Profit: 5},
		{Ticket: 4, Symbol: "GBPUSD", Type: 0, Volume: 1, PriceOpen: 1.25},
		{Ticket: 5, Symbol: "GBPUSD", Type: 1, Volume: 1, PriceOpen: 1.27},
		{Ticket: 6, Symbol: "USDJPY", Type: 0, Volume: 0},
	}

	got := Aggregate(positions, 1000)
	require.Len(t, got, 3)

	require.Equal(t, "EURUSD", got[0].Symbol)
	require.Equal(t, SideShort, got[0].Side)
	require.InDelta(t, -1.0, got[0].NetVolume, 1e-9)

	require.Equal(t, "GBPUSD", got[1].Symbol)
	require.Equal(t, SideFlat, got[1].Side)
	require.InDelta(t, 1.26, got[1].EntryPrice, 1e-9)

	gold := got[2]
	require.Equal(t, SideLong, gold.Side)
	require.InDelta(t, 0.3, gold.NetVolume, 1e-9)
	require.InDelta(t, 0.7, gold.GrossVolume, 1e-9)
	require.InDelta(t, (0.5*2000+0.2*2010)/0.7, gold.EntryPrice, 1e-9)
	require.InDelta(t, 29.0, gold.Profit, 1e-9)
	require.InDelta(t, 2.9, gold.ProfitPercent, 1e-9)
	require.Equal(t, 2, gold.PositionCount)
	require.Equal(t, opened.Unix(), gold.OldestOpenUnix)

	require.Nil(t, Aggregate(nil, 1000))
	require.Zero(t, Aggregate(positions[:1], 0)[0].ProfitPercent)
}

func TestFetchSnapshot(t *testing.T) {
	client := &stubClient{
		summary: &termapi.AccountSummaryData{AccountLogin: 42, AccountEquity: 2000, AccountBalance: 1990, AccountCurrency: "USD"},
		opened: &termapi.OpenedOrdersData{
			PositionInfos: []termapi.PositionInfo{{Symbol: "EURUSD", Volume: 1, Profit: 10}},
			OpenedOrders:  []termapi.OpenedOrderInfo{{Ticket: 9, Symbol: "EURUSD", Type: termapi.OrderTypeBuyLimit}},
		},
	}

	snap, err := NewManager(client, nil).FetchSnapshot(context.Background())
	require.NoError(t, err)
	require.Equal(t, int64(42), snap.Balance.Login)
	require.Equal(t, "USD", snap.Balance.Currency)
	require.Equal(t, 10.0, snap.Balance.Floating)
	require.Len(t, snap.PendingOrders, 1)
	require.Len(t, snap.Summaries, 1)
	require.InDelta(t, 0.5, snap.Summaries[0].ProfitPercent, 1e-9)
}

func TestFetchSnapshot_PropagatesError(t *testing.T) {
	client := &stubClient{summaryErr: errors.New("down"), opened: &termapi.OpenedOrdersData{}}
	_, err := NewManager(client, nil).FetchSnapshot(context.Background())
	require.ErrorContains(t, err, "down")
}
