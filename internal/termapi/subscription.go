package termapi

import "time"

// OnSymbolTickRequest 订阅若干品种的实时报价。
type OnSymbolTickRequest struct {
	SymbolNames []string `json:"symbol_names"`
}

// SubscriptionTick 推送中的报价。
type SubscriptionTick struct {
	Symbol     string    `json:"symbol"`
	Time       time.Time `json:"time"`
	Bid        float64   `json:"bid"`
	Ask        float64   `json:"ask"`
	Last       float64   `json:"last"`
	Volume     uint64    `json:"volume"`
	TimeMsc    int64     `json:"time_msc"`
	Flags      uint32    `json:"flags"`
	VolumeReal float64   `json:"volume_real"`
}

// OnSymbolTickData 单次报价推送。
type OnSymbolTickData struct {
	SymbolTick           SubscriptionTick `json:"symbol_tick"`
	TerminalInstanceGUID string           `json:"terminal_instance_guid_id"`
}

// AccountInfo 推送中附带的账户状态。
type AccountInfo struct {
	Balance     float64 `json:"balance"`
	Credit      float64 `json:"credit"`
	Equity      float64 `json:"equity"`
	Margin      float64 `json:"margin"`
	FreeMargin  float64 `json:"free_margin"`
	MarginLevel float64 `json:"margin_level"`
	Profit      float64 `json:"profit"`
	Login       int64   `json:"login"`
}

// OnTradeRequest 订阅交易事件。
type OnTradeRequest struct{}

// TradeEventData 交易事件中的订单、持仓与成交变化。
type TradeEventData struct {
	NewOrders             []OpenedOrderInfo `json:"new_orders"`
	DisappearedOrders     []OpenedOrderInfo `json:"disappeared_orders"`
	StateChangedOrders    []OpenedOrderInfo `json:"state_changed_orders"`
	NewPositions          []PositionInfo    `json:"new_positions"`
	DisappearedPositions  []PositionInfo    `json:"disappeared_positions"`
	UpdatedPositions      []PositionInfo    `json:"updated_positions"`
	NewHistoryDeals       []HistoryDeal     `json:"new_history_deals"`
	NewHistoryOrders      []HistoryOrder    `json:"new_history_orders"`
	DisappearedHistoryIDs []uint64          `json:"disappeared_history_ids"`
}

// OnTradeData 单次交易事件。
type OnTradeData struct {
	Type        int32          `json:"type"`
	EventData   TradeEventData `json:"event_data"`
	AccountInfo AccountInfo    `json:"account_info"`
}

// OnPositionProfitRequest 按固定周期推送持仓盈亏。
type OnPositionProfitRequest struct {
	TimerPeriodMilliseconds int32 `json:"timer_period_milliseconds"`
	IgnoreEmptyData         bool  `json:"ignore_empty_data"`
}

// PositionProfit 单个持仓的盈亏。
type PositionProfit struct {
	Index          int32   `json:"index"`
	Ticket         uint64  `json:"ticket"`
	Symbol         string  `json:"position_symbol"`
	Profit         float64 `json:"profit"`
	ProfitInPoints float64 `json:"profit_in_points"`
}

// OnPositionProfitData 单次盈亏推送。
type OnPositionProfitData struct {
	Type             int32            `json:"type"`
	NewPositions     []PositionProfit `json:"new_positions"`
	UpdatedPositions []PositionProfit `json:"updated_positions"`
	DeletedPositions []PositionProfit `json:"deleted_positions"`
	AccountInfo      AccountInfo      `json:"account_info"`
}

// OnPositionsAndPendingOrdersTicketsRequest 按固定周期推送单号集合。
type OnPositionsAndPendingOrdersTicketsRequest struct {
	TimerPeriodMilliseconds int32 `json:"timer_period_milliseconds"`
}

// OnPositionsAndPendingOrdersTicketsData 单号集合。
type OnPositionsAndPendingOrdersTicketsData struct {
	PositionTickets     []int64   `json:"position_tickets"`
	PendingOrderTickets []int64   `json:"pending_order_tickets"`
	ServerTime          time.Time `json:"server_time"`
}

// OnTradeTransactionRequest 订阅 OnTradeTransaction 回调。
type OnTradeTransactionRequest struct{}

// TradeTransaction 对应 MqlTradeTransaction。
type TradeTransaction struct {
	Deal       uint64               `json:"deal"`
	Order      uint64               `json:"order"`
	Symbol     string               `json:"symbol"`
	Type       TradeTransactionType `json:"type"`
	OrderType  OrderType            `json:"order_type"`
	OrderState int32                `json:"order_state"`
	DealType   int32                `json:"deal_type"`
	TimeType   ExpirationType       `json:"time_type"`
	Price      float64              `json:"price"`
	PriceSL    float64              `json:"price_sl"`
	PriceTP    float64              `json:"price_tp"`
	Volume     float64              `json:"volume"`
	Position   uint64               `json:"position"`
	PositionBy uint64               `json:"position_by"`
}

// OnTradeTransactionData 单次交易回调，请求与结果仅在 TransactionRequest 类型中出现。
type OnTradeTransactionData struct {
	Type             int32            `json:"type"`
	TradeTransaction TradeTransaction `json:"trade_transaction"`
	TradeRequest     *TradeRequest    `json:"trade_request,omitempty"`
	TradeResult      *OrderResult     `json:"trade_result,omitempty"`
	AccountInfo      AccountInfo      `json:"account_info"`
}
