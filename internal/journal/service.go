package journal

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"go.uber.org/zap"

	"mt5-term/internal/position"
	"mt5-term/internal/store"
	"mt5-term/internal/termapi"
	"mt5-term/internal/terminal"
)

// Service 负责持久化终端事件。
type Service struct {
	db     *sql.DB
	logger *zap.Logger
	now    func() time.Time

	observe func(EventType)
}

// NewService 初始化日志服务，创建所需表结构。
func NewService(store *store.Store, logger *zap.Logger) (*Service, error) {
	if store == nil {
		return nil, fmt.Errorf("journal: store 不能为空")
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	s := &Service{
		db:     store.DB(),
		logger: logger,
		now:    func() time.Time { return time.Now().UTC() },
	}

	if err := s.initSchema(); err != nil {
		return nil, err
	}

	return s, nil
}

func (s *Service) initSchema() error {
	stmt := `
CREATE TABLE IF NOT EXISTS journal_events (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	event_type TEXT NOT NULL,
	payload TEXT NOT NULL,
	created_at TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_journal_events_type ON journal_events(event_type);
`
	if _, err := s.db.Exec(stmt); err != nil {
		return fmt.Errorf("journal: 初始化表失败: %w", err)
	}
	return nil
}

// OnRecord 注册写入成功后的回调，需在并发使用前设置。
func (s *Service) OnRecord(fn func(EventType)) {
	s.observe = fn
}

// Record 写入单个事件。
func (s *Service) Record(ctx context.Context, event Event) error {
	payload, err := json.Marshal(event.Payload)
	if err != nil {
		return fmt.Errorf("journal: 序列化事件失败: %w", err)
	}

	if event.Timestamp.IsZero() {
		event.Timestamp = s.now()
	}

	_, err = s.db.ExecContext(ctx,
		`INSERT INTO journal_events (event_type, payload, created_at) VALUES (?, ?, ?)`,
		string(event.Type), string(payload), event.Timestamp.Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("journal: 写入事件失败: %w", err)
	}

	if s.observe != nil {
		s.observe(event.Type)
	}
	return nil
}

func (s *Service) recordQuietly(ctx context.Context, typ EventType, payload interface{}) {
	if err := s.Record(ctx, Event{Type: typ, Payload: payload}); err != nil {
		s.logger.Warn("记录事件失败", zap.String("type", string(typ)), zap.Error(err))
	}
}

// RecordConnected 记录握手成功后的会话。
func (s *Service) RecordConnected(ctx context.Context, session terminal.Session) {
	endpoint := session.ServerName
	if session.Kind == terminal.ConnectHostPort {
		endpoint = fmt.Sprintf("%s:%d", session.Host, session.Port)
	}
	s.recordQuietly(ctx, EventConnected, ConnectedPayload{
		Kind:       session.Kind.String(),
		Endpoint:   endpoint,
		BaseSymbol: session.BaseSymbol,
	})
}

// RecordReconnect 记录一次重连尝试。
func (s *Service) RecordReconnect(ctx context.Context, ev terminal.ReconnectEvent) {
	payload := ReconnectPayload{
		Kind:     ev.Kind.String(),
		Duration: ev.Duration.String(),
	}
	if ev.Cause != nil {
		payload.Cause = ev.Cause.Error()
	}
	if ev.Err != nil {
		payload.Error = ev.Err.Error()
	}
	s.recordQuietly(ctx, EventReconnected, payload)
}

// RecordAccount 记录账户快照。
func (s *Service) RecordAccount(ctx context.Context, snap position.Snapshot) {
	s.recordQuietly(ctx, EventAccountSnapshot, AccountPayload{
		Balance:       snap.Balance,
		Positions:     snap.Summaries,
		PendingOrders: len(snap.PendingOrders),
	})
}

// RecordTradeTransaction 记录交易回调。
func (s *Service) RecordTradeTransaction(ctx context.Context, tx *termapi.OnTradeTransactionData) {
	if tx == nil {
		return
	}
	s.recordQuietly(ctx, EventTradeTransaction, TradeTransactionPayload{Transaction: *tx})
}

// RecordPositionProfit 记录持仓盈亏。
func (s *Service) RecordPositionProfit(ctx context.Context, profit *termapi.OnPositionProfitData) {
	if profit == nil {
		return
	}
	s.recordQuietly(ctx, EventPositionProfit, PositionProfitPayload{Profit: *profit})
}

// RecordTick 记录报价。
func (s *Service) RecordTick(ctx context.Context, tick *termapi.OnSymbolTickData) {
	if tick == nil {
		return
	}
	s.recordQuietly(ctx, EventTick, TickPayload{Tick: tick.SymbolTick})
}

// RecordError 记录异常。
func (s *Service) RecordError(ctx context.Context, msg string, err error, ctxMap map[string]interface{}) {
	payload := ErrorPayload{
		Message: msg,
		Context: ctxMap,
	}
	if err != nil {
		payload.Error = err.Error()
	}
	s.recordQuietly(ctx, EventError, payload)
}

// ListEvents 按类型检索最近事件，eventType 为空时不过滤。
func (s *Service) ListEvents(ctx context.Context, eventType EventType, limit int) ([]Event, error) {
	if limit <= 0 {
		limit = 100
	}

	query := `SELECT id, event_type, payload, created_at FROM journal_events`
	args := make([]interface{}, 0, 2)
	if eventType != "" {
		query += ` WHERE event_type = ?`
		args = append(args, string(eventType))
	}
	query += ` ORDER BY id DESC LIMIT ?`
	args = append(args, limit)

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("journal: 查询事件失败: %w", err)
	}
	defer rows.Close()

	events := make([]Event, 0, limit)
	for rows.Next() {
		var (
			id      int64
			typ     string
			payload string
			created string
		)
		if scanErr := rows.Scan(&id, &typ, &payload, &created); scanErr != nil {
			return nil, fmt.Errorf("journal: 解析事件失败: %w", scanErr)
		}

		ts, parseErr := time.Parse(time.RFC3339Nano, created)
		if parseErr != nil {
			ts = time.Time{}
		}

		events = append(events, Event{
			ID:        id,
			Type:      EventType(typ),
			Timestamp: ts,
			Payload:   json.RawMessage(payload),
		})
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("journal: 读取事件失败: %w", err)
	}

	return events, nil
}
