package app

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"mt5-term/internal/config"
	"mt5-term/internal/journal"
	"mt5-term/internal/store"
	"mt5-term/internal/termapi"
	"mt5-term/internal/terminal"
	"mt5-term/internal/terminal/terminaltest"
)

func testConfig() *config.Config {
	return &config.Config{
		App: config.AppConfig{Environment: "test"},
		Terminal: config.TerminalConfig{
			Login:      5036292718,
			Password:   "secret",
			ServerName: "MetaQuotes-Demo",
			BaseSymbol: "EURUSD",
		},
		Transport: config.TransportConfig{Address: "passthrough:///bufnet", ReconnectDelay: time.Millisecond},
		Retry:     config.RetryConfig{MaxAttempts: 3, MinDelay: time.Millisecond, MaxDelay: 5 * time.Millisecond},
		Watch:     config.WatchConfig{Symbols: []string{"EURUSD"}},
		Database:  config.DatabaseConfig{InMemory: true, MaxOpenConns: 1},
	}
}

func newTestStore(t *testing.T) *store.Store {
	t.Helper()
	s, err := store.Open(config.DatabaseConfig{InMemory: true, MaxOpenConns: 1})
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func serveAccount(srv *terminaltest.Server) {
	srv.HandleUnary(termapi.MethodAccountSummary, terminaltest.Sequence(
		terminaltest.Reply(terminaltest.OK(termapi.AccountSummaryData{AccountLogin: 5036292718, AccountEquity: 2500, AccountCurrency: "USD"})),
	))
	srv.HandleUnary(termapi.MethodOpenedOrders, terminaltest.Sequence(
		terminaltest.Reply(terminaltest.OK(termapi.OpenedOrdersData{
			PositionInfos: []termapi.PositionInfo{{Ticket: 1, Symbol: "EURUSD", Volume: 0.1, PriceOpen: 1.1, Profit: 25}},
		})),
	))
}

func countEvents(t *testing.T, o *orchestrator, typ journal.EventType) int {
	t.Helper()
	events, err := o.journal.ListEvents(context.Background(), typ, 100)
	require.NoError(t, err)
	return len(events)
}

func TestRun_ConnectSnapshotAndTicks(t *testing.T) {
	srv := terminaltest.NewServer(t)
	srv.Handshake("guid")
	serveAccount(srv)
	srv.HandleStream(termapi.MethodOnSymbolTick, func(_ context.Context, _ json.RawMessage, send func(terminaltest.Envelope) error) error {
		for _, bid := range []float64{1.1, 1.2} {
			if err := send(terminaltest.OK(termapi.OnSymbolTickData{SymbolTick: termapi.SubscriptionTick{Symbol: "EURUSD", Bid: bid}})); err != nil {
				return err
			}
		}
		return nil
	})

	cfg := testConfig()
	o, err := newOrchestrator(cfg, srv.Dial(t), zap.NewNop(), newTestStore(t), nil)
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	require.NoError(t, o.Connect(ctx))
	require.NoError(t, o.Run(ctx))

	require.Equal(t, 1, countEvents(t, o, journal.EventConnected))
	require.Equal(t, 1, countEvents(t, o, journal.EventAccountSnapshot))
	require.Equal(t, 2, countEvents(t, o, journal.EventTick))
	require.Zero(t, countEvents(t, o, journal.EventError))

	rec := httptest.NewRecorder()
	o.metrics.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	body := rec.Body.String()
	require.Contains(t, body, `mt5term_stream_items_total{stream="ticks"} 2`)
	require.Contains(t, body, `mt5term_account_equity 2500`)
	require.Contains(t, body, `mt5term_terminal_connected 1`)
}

func TestConnect_RetriesTransportFailures(t *testing.T) {
	srv := terminaltest.NewServer(t)
	srv.HandleUnary(termapi.MethodConnectEx, terminaltest.Sequence(
		terminaltest.Status(terminaltest.Unavailable()),
		terminaltest.Status(terminaltest.Unavailable()),
		terminaltest.Reply(terminaltest.OK(termapi.ConnectData{TerminalInstanceGUID: "guid-1"})),
	))

	o, err := newOrchestrator(testConfig(), srv.Dial(t), zap.NewNop(), newTestStore(t), nil)
	require.NoError(t, err)

	require.NoError(t, o.Connect(context.Background()))
	require.Equal(t, "guid-1", o.client.Session().Token)
	require.Len(t, srv.Calls(termapi.MethodConnectEx), 3)
}

func TestConnect_GivesUpAfterMaxAttempts(t *testing.T) {
	srv := terminaltest.NewServer(t)
	srv.HandleUnary(termapi.MethodConnectEx, terminaltest.Sequence(
		terminaltest.Status(terminaltest.Unavailable()),
	))

	o, err := newOrchestrator(testConfig(), srv.Dial(t), zap.NewNop(), newTestStore(t), nil)
	require.NoError(t, err)

	err = o.Connect(context.Background())
	require.True(t, terminal.IsUnavailable(err))
	require.Len(t, srv.Calls(termapi.MethodConnectEx), 3)
	require.Equal(t, 1, countEvents(t, o, journal.EventError))
}

func TestConnect_ApplicationErrorIsPermanent(t *testing.T) {
	srv := terminaltest.NewServer(t)
	srv.HandleUnary(termapi.MethodConnectEx, terminaltest.Sequence(
		terminaltest.Reply(terminaltest.Fail("INVALID_ACCOUNT", "invalid account")),
	))

	o, err := newOrchestrator(testConfig(), srv.Dial(t), zap.NewNop(), newTestStore(t), nil)
	require.NoError(t, err)

	err = o.Connect(context.Background())
	apiErr, ok := terminal.AsAPIError(err)
	require.True(t, ok)
	require.Equal(t, "INVALID_ACCOUNT", apiErr.Code)
	require.Len(t, srv.Calls(termapi.MethodConnectEx), 1)
}

func TestOnReconnect_JournalsAndReconnects(t *testing.T) {
	srv := terminaltest.NewServer(t)
	srv.Handshake("guid")
	srv.HandleUnary(termapi.MethodAccountSummary, terminaltest.Sequence(
		terminaltest.Reply(terminaltest.NotFound()),
		terminaltest.Reply(terminaltest.OK(termapi.AccountSummaryData{AccountEquity: 10})),
	))
	srv.HandleUnary(termapi.MethodOpenedOrders, terminaltest.Sequence(
		terminaltest.Reply(terminaltest.OK(termapi.OpenedOrdersData{})),
	))

	o, err := newOrchestrator(testConfig(), srv.Dial(t), zap.NewNop(), newTestStore(t), nil)
	require.NoError(t, err)
	require.NoError(t, o.Connect(context.Background()))

	require.NoError(t, o.Tick(context.Background()))
	require.Equal(t, 1, countEvents(t, o, journal.EventReconnected))
	require.Equal(t, 2, countEvents(t, o, journal.EventConnected))
	require.Equal(t, "guid-2", o.client.Session().Token)
}

func TestMonitorHandler(t *testing.T) {
	srv := terminaltest.NewServer(t)
	srv.Handshake("guid")

	o, err := newOrchestrator(testConfig(), srv.Dial(t), zap.NewNop(), newTestStore(t), nil)
	require.NoError(t, err)
	require.NoError(t, o.Connect(context.Background()))

	h := newMonitorHandler(o, zap.NewNop())

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/session", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	var view sessionView
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &view))
	require.True(t, view.Connected)
	require.Equal(t, "server_name", view.Kind)
	require.Equal(t, "MetaQuotes-Demo", view.ServerName)
	require.NotContains(t, rec.Body.String(), "guid-1")

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/events?type=CONNECTED&limit=5", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	var events []journal.Event
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &events))
	require.Len(t, events, 1)
	require.Equal(t, journal.EventConnected, events[0].Type)
	require.NotContains(t, rec.Body.String(), "guid-1")

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), `mt5term_journal_events_total{type="connected"} 1`)
}

func TestAppRun_StopsOnCancel(t *testing.T) {
	srv := terminaltest.NewServer(t)
	srv.Handshake("guid")
	serveAccount(srv)
	srv.HandleStream(termapi.MethodOnSymbolTick, func(ctx context.Context, _ json.RawMessage, _ func(terminaltest.Envelope) error) error {
		<-ctx.Done()
		return ctx.Err()
	})

	cfg := testConfig()
	cfg.Watch.SnapshotInterval = time.Hour
	a := New(cfg, zap.NewNop(), newTestStore(t))
	conn := srv.Dial(t)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- a.run(ctx, conn) }()

	require.Eventually(t, func() bool {
		return len(srv.Calls(termapi.MethodOnSymbolTick)) == 1
	}, 5*time.Second, 10*time.Millisecond)
	cancel()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("app did not stop")
	}
}
