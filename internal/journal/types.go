package journal

import (
	"time"

	"mt5-term/internal/position"
	"mt5-term/internal/termapi"
)

// EventType 表示日志事件类型。
type EventType string

const (
	EventConnected        EventType = "connected"
	EventReconnected      EventType = "reconnected"
	EventAccountSnapshot  EventType = "account_snapshot"
	EventTradeTransaction EventType = "trade_transaction"
	EventPositionProfit   EventType = "position_profit"
	EventTick             EventType = "tick"
	EventError            EventType = "error"
)

// Event 封装通用日志事件。
type Event struct {
	ID        int64       `json:"id"`
	Type      EventType   `json:"type"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// ConnectedPayload 记录握手结果，不含会话令牌。
type ConnectedPayload struct {
	Kind       string `json:"kind"`
	Endpoint   string `json:"endpoint"`
	BaseSymbol string `json:"base_symbol"`
}

// ReconnectPayload 记录一次重连尝试。
type ReconnectPayload struct {
	Kind     string `json:"kind"`
	Cause    string `json:"cause,omitempty"`
	Error    string `json:"error,omitempty"`
	Duration string `json:"duration"`
}

// AccountPayload 记录账户快照。
type AccountPayload struct {
	Balance       position.AccountBalance `json:"balance"`
	Positions     []position.Summary      `json:"positions"`
	PendingOrders int                     `json:"pending_orders"`
}

// TradeTransactionPayload 记录交易回调。
type TradeTransactionPayload struct {
	Transaction termapi.OnTradeTransactionData `json:"transaction"`
}

// PositionProfitPayload 记录持仓盈亏推送。
type PositionProfitPayload struct {
	Profit termapi.OnPositionProfitData `json:"profit"`
}

// TickPayload 记录报价。
type TickPayload struct {
	Tick termapi.SubscriptionTick `json:"tick"`
}

// ErrorPayload 记录异常。
type ErrorPayload struct {
	Message string                 `json:"message"`
	Error   string                 `json:"error"`
	Context map[string]interface{} `json:"context,omitempty"`
}
