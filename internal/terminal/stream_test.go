package terminal

import (
	"context"
	"encoding/json"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"mt5-term/internal/termapi"
	"mt5-term/internal/terminal/terminaltest"
)

func tickEnvelope(symbol string, bid float64) terminaltest.Envelope {
	return terminaltest.OK(termapi.OnSymbolTickData{SymbolTick: termapi.SubscriptionTick{Symbol: symbol, Bid: bid}})
}

func collectTicks(t *testing.T, seq func(func(*termapi.OnSymbolTickData, error) bool)) ([]float64, error) {
	t.Helper()
	var (
		bids    []float64
		lastErr error
	)
	for data, err := range seq {
		if err != nil {
			lastErr = err
			continue
		}
		bids = append(bids, data.SymbolTick.Bid)
	}
	return bids, lastErr
}

func TestSubscribe_CancelledBeforeFirstItem(t *testing.T) {
	conn := &fakeConn{}
	c, err := New(conn, testCreds())
	require.NoError(t, err)
	c.session.Store(&Session{Token: "guid", Kind: ConnectServerName, ServerName: "Demo"})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	bids, err := collectTicks(t, c.OnSymbolTick(ctx, []string{"EURUSD"}))
	require.NoError(t, err)
	require.Empty(t, bids)
	require.Zero(t, conn.streams.Load())
}

func TestSubscribe_ExpiredDeadlineSurfacesTimeout(t *testing.T) {
	conn := &fakeConn{}
	c, err := New(conn, testCreds())
	require.NoError(t, err)
	c.session.Store(&Session{Token: "guid", Kind: ConnectServerName, ServerName: "Demo"})

	ctx, cancel := context.WithDeadline(context.Background(), time.Now().Add(-time.Second))
	defer cancel()

	bids, err := collectTicks(t, c.OnSymbolTick(ctx, []string{"EURUSD"}))
	require.Empty(t, bids)
	require.Equal(t, codes.DeadlineExceeded, status.Code(err))
	require.NotErrorIs(t, err, ErrCancelled)
	require.Zero(t, conn.streams.Load())
}

func TestSubscribe_UnavailableMidStreamResumes(t *testing.T) {
	srv := terminaltest.NewServer(t)
	handshakes := srv.Handshake("guid")

	var opened atomic.Int64
	srv.HandleStream(termapi.MethodOnSymbolTick, func(_ context.Context, req json.RawMessage, send func(terminaltest.Envelope) error) error {
		var r termapi.OnSymbolTickRequest
		if err := json.Unmarshal(req, &r); err != nil {
			return err
		}
		if n := opened.Add(1); n == 1 {
			if err := send(tickEnvelope(r.SymbolNames[0], 1)); err != nil {
				return err
			}
			if err := send(tickEnvelope(r.SymbolNames[0], 2)); err != nil {
				return err
			}
			return terminaltest.Unavailable()
		}
		if err := send(tickEnvelope(r.SymbolNames[0], 3)); err != nil {
			return err
		}
		return send(tickEnvelope(r.SymbolNames[0], 4))
	})

	rec := &reconnectRecorder{}
	c := newServerClient(t, srv, rec)
	connectServerName(t, c)

	bids, err := collectTicks(t, c.OnSymbolTick(context.Background(), []string{"EURUSD"}))
	require.NoError(t, err)
	require.Equal(t, []float64{1, 2, 3, 4}, bids)
	require.Equal(t, int64(1), rec.events.Load())
	require.Equal(t, int64(2), handshakes.Load())

	calls := srv.Calls(termapi.MethodOnSymbolTick)
	require.Len(t, calls, 2)
	require.Equal(t, "guid-1", calls[0].Token)
	require.Equal(t, "guid-2", calls[1].Token)
	require.JSONEq(t, string(calls[0].Request), string(calls[1].Request))
}

func TestSubscribe_TerminalNotFoundReopens(t *testing.T) {
	srv := terminaltest.NewServer(t)
	srv.Handshake("guid")

	var opened atomic.Int64
	srv.HandleStream(termapi.MethodOnTradeTransaction, func(_ context.Context, _ json.RawMessage, send func(terminaltest.Envelope) error) error {
		if opened.Add(1) == 1 {
			if err := send(terminaltest.NotFound()); err != nil {
				return err
			}
			// 客户端收到 NotFound 后应停止读取这一条流。
			return send(terminaltest.OK(termapi.OnTradeTransactionData{Type: 99}))
		}
		return send(terminaltest.OK(termapi.OnTradeTransactionData{
			TradeTransaction: termapi.TradeTransaction{Deal: 7, Symbol: "EURUSD", Type: termapi.TransactionDealAdd},
		}))
	})

	rec := &reconnectRecorder{}
	c := newServerClient(t, srv, rec)
	connectServerName(t, c)

	var got []uint64
	for data, err := range c.OnTradeTransaction(context.Background()) {
		require.NoError(t, err)
		got = append(got, data.TradeTransaction.Deal)
	}
	require.Equal(t, []uint64{7}, got)
	require.Equal(t, int64(1), rec.events.Load())
}

func TestSubscribe_ApplicationErrorTerminates(t *testing.T) {
	srv := terminaltest.NewServer(t)
	srv.Handshake("guid")

	var opened atomic.Int64
	srv.HandleStream(termapi.MethodOnSymbolTick, func(_ context.Context, _ json.RawMessage, send func(terminaltest.Envelope) error) error {
		opened.Add(1)
		if err := send(tickEnvelope("EURUSD", 1)); err != nil {
			return err
		}
		return send(terminaltest.Fail("SYMBOL_NOT_FOUND", "unknown symbol"))
	})

	rec := &reconnectRecorder{}
	c := newServerClient(t, srv, rec)
	connectServerName(t, c)

	bids, err := collectTicks(t, c.OnSymbolTick(context.Background(), []string{"EURUSD"}))
	require.Equal(t, []float64{1}, bids)
	apiErr, ok := AsAPIError(err)
	require.True(t, ok)
	require.Equal(t, "SYMBOL_NOT_FOUND", apiErr.Code)
	require.Equal(t, int64(1), opened.Load())
	require.Zero(t, rec.events.Load())
}

func TestSubscribe_CancelWhileReceiving(t *testing.T) {
	srv := terminaltest.NewServer(t)
	srv.Handshake("guid")

	released := make(chan struct{})
	srv.HandleStream(termapi.MethodOnPositionProfit, func(ctx context.Context, req json.RawMessage, send func(terminaltest.Envelope) error) error {
		var r termapi.OnPositionProfitRequest
		if err := json.Unmarshal(req, &r); err != nil {
			return err
		}
		if err := send(terminaltest.OK(termapi.OnPositionProfitData{
			UpdatedPositions: []termapi.PositionProfit{{Ticket: 1, Profit: float64(r.TimerPeriodMilliseconds)}},
		})); err != nil {
			return err
		}
		<-ctx.Done()
		close(released)
		return ctx.Err()
	})

	rec := &reconnectRecorder{}
	c := newServerClient(t, srv, rec)
	connectServerName(t, c)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var items int
	for data, err := range c.OnPositionProfit(ctx, 250*time.Millisecond, true) {
		require.NoError(t, err)
		require.Equal(t, 250.0, data.UpdatedPositions[0].Profit)
		items++
		cancel()
	}
	require.Equal(t, 1, items)
	require.Zero(t, rec.events.Load())

	select {
	case <-released:
	case <-time.After(5 * time.Second):
		t.Fatal("server stream was not cancelled")
	}
}

func TestSubscribe_BreakClosesStream(t *testing.T) {
	srv := terminaltest.NewServer(t)
	srv.Handshake("guid")

	released := make(chan struct{})
	srv.HandleStream(termapi.MethodOnPositionsAndPendingOrdersTickets, func(ctx context.Context, _ json.RawMessage, send func(terminaltest.Envelope) error) error {
		defer close(released)
		for i := int64(1); ; i++ {
			err := send(terminaltest.OK(termapi.OnPositionsAndPendingOrdersTicketsData{PositionTickets: []int64{i}}))
			if err != nil {
				return err
			}
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(10 * time.Millisecond):
			}
		}
	})

	c := newServerClient(t, srv, &reconnectRecorder{})
	connectServerName(t, c)

	var seen []int64
	for data, err := range c.OnPositionsAndPendingOrdersTickets(context.Background(), 100*time.Millisecond) {
		require.NoError(t, err)
		seen = append(seen, data.PositionTickets...)
		if len(seen) == 2 {
			break
		}
	}
	require.Equal(t, []int64{1, 2}, seen)

	select {
	case <-released:
	case <-time.After(5 * time.Second):
		t.Fatal("server stream was not released after break")
	}
}

func TestSubscribe_ServerCloseEndsSequence(t *testing.T) {
	srv := terminaltest.NewServer(t)
	srv.Handshake("guid")
	srv.HandleStream(termapi.MethodOnTrade, func(_ context.Context, _ json.RawMessage, send func(terminaltest.Envelope) error) error {
		return send(terminaltest.OK(termapi.OnTradeData{AccountInfo: termapi.AccountInfo{Equity: 1500}}))
	})

	rec := &reconnectRecorder{}
	c := newServerClient(t, srv, rec)
	connectServerName(t, c)

	var equities []float64
	for data, err := range c.OnTrade(context.Background()) {
		require.NoError(t, err)
		equities = append(equities, data.AccountInfo.Equity)
	}
	require.Equal(t, []float64{1500}, equities)
	require.Zero(t, rec.events.Load())
	require.Len(t, srv.Calls(termapi.MethodOnTrade), 1)
}
