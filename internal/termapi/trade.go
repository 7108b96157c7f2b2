package termapi

import "time"

// TradeRequest 对应 MqlTradeRequest，用于 OrderCheck。
type TradeRequest struct {
	Action      int32          `json:"action"`
	Magic       uint64         `json:"magic"`
	Order       uint64         `json:"order"`
	Symbol      string         `json:"symbol"`
	Volume      float64        `json:"volume"`
	Price       float64        `json:"price"`
	StopLimit   float64        `json:"stop_limit"`
	StopLoss    float64        `json:"stop_loss"`
	TakeProfit  float64        `json:"take_profit"`
	Deviation   uint64         `json:"deviation"`
	Type        OrderType      `json:"type"`
	TypeFilling int32          `json:"type_filling"`
	TypeTime    ExpirationType `json:"type_time"`
	Expiration  *time.Time     `json:"expiration,omitempty"`
	Comment     string         `json:"comment"`
	Position    uint64         `json:"position"`
	PositionBy  uint64         `json:"position_by"`
}

// OrderCheckRequest 校验交易请求是否可执行。
type OrderCheckRequest struct {
	MqlTradeRequest TradeRequest `json:"mql_trade_request"`
}

// TradeCheckResult 对应 MqlTradeCheckResult。
type TradeCheckResult struct {
	ReturnedCode     TradeReturnCode `json:"returned_code"`
	BalanceAfterDeal float64         `json:"balance_after_deal"`
	EquityAfterDeal  float64         `json:"equity_after_deal"`
	Profit           float64         `json:"profit"`
	Margin           float64         `json:"margin"`
	FreeMargin       float64         `json:"free_margin"`
	MarginLevel      float64         `json:"margin_level"`
	Comment          string          `json:"comment"`
}

// OrderCheckData 校验结果。
type OrderCheckData struct {
	MqlTradeCheckResult TradeCheckResult `json:"mql_trade_check_result"`
}

// OrderCalcMarginRequest 计算开仓所需保证金。
type OrderCalcMarginRequest struct {
	Symbol    string    `json:"symbol"`
	OrderType OrderType `json:"order_type"`
	Volume    float64   `json:"volume"`
	OpenPrice float64   `json:"open_price"`
}

// OrderCalcMarginData 保证金。
type OrderCalcMarginData struct {
	Margin float64 `json:"margin"`
}

// OrderCalcProfitRequest 计算假设平仓盈亏。
type OrderCalcProfitRequest struct {
	OrderType  OrderType `json:"order_type"`
	Symbol     string    `json:"symbol"`
	Volume     float64   `json:"volume"`
	OpenPrice  float64   `json:"open_price"`
	ClosePrice float64   `json:"close_price"`
}

// OrderCalcProfitData 盈亏。
type OrderCalcProfitData struct {
	Profit float64 `json:"profit"`
}

// PositionsTotalRequest 统计持仓数。
type PositionsTotalRequest struct{}

// PositionsTotalData 持仓数。
type PositionsTotalData struct {
	TotalPositions int32 `json:"total_positions"`
}

// OrderSendRequest 下单，指针字段为可选项。
type OrderSendRequest struct {
	Symbol             string          `json:"symbol"`
	Operation          OrderType       `json:"operation"`
	Volume             float64         `json:"volume"`
	Price              *float64        `json:"price,omitempty"`
	Slippage           *int32          `json:"slippage,omitempty"`
	StopLoss           *float64        `json:"stop_loss,omitempty"`
	TakeProfit         *float64        `json:"take_profit,omitempty"`
	Comment            *string         `json:"comment,omitempty"`
	ExpertID           *int64          `json:"expert_id,omitempty"`
	StopLimitPrice     *float64        `json:"stop_limit_price,omitempty"`
	ExpirationTimeType *ExpirationType `json:"expiration_time_type,omitempty"`
	ExpirationTime     *time.Time      `json:"expiration_time,omitempty"`
}

// OrderResult 对应 MqlTradeResult，OrderSend 与 OrderModify 共用。
type OrderResult struct {
	ReturnedCode            TradeReturnCode `json:"returned_code"`
	Deal                    uint64          `json:"deal"`
	Order                   uint64          `json:"order"`
	Volume                  float64         `json:"volume"`
	Price                   float64         `json:"price"`
	Bid                     float64         `json:"bid"`
	Ask                     float64         `json:"ask"`
	Comment                 string          `json:"comment"`
	RequestID               uint32          `json:"request_id"`
	ReturnedStringCode      string          `json:"returned_string_code"`
	ReturnedCodeDescription string          `json:"returned_code_description"`
}

// OrderModifyRequest 修改挂单或持仓的价格与止损止盈。
type OrderModifyRequest struct {
	Ticket             uint64          `json:"ticket"`
	StopLoss           *float64        `json:"stop_loss,omitempty"`
	TakeProfit         *float64        `json:"take_profit,omitempty"`
	Price              *float64        `json:"price,omitempty"`
	ExpirationTimeType *ExpirationType `json:"expiration_time_type,omitempty"`
	ExpirationTime     *time.Time      `json:"expiration_time,omitempty"`
	StopLimit          *float64        `json:"stop_limit,omitempty"`
}

// OrderCloseRequest 平仓或撤单，Volume 为 0 表示全部。
type OrderCloseRequest struct {
	Ticket   uint64  `json:"ticket"`
	Volume   float64 `json:"volume"`
	Slippage int32   `json:"slippage"`
}

// OrderCloseData 平仓结果。
type OrderCloseData struct {
	ReturnedCode            TradeReturnCode `json:"returned_code"`
	ReturnedStringCode      string          `json:"returned_string_code"`
	ReturnedCodeDescription string          `json:"returned_code_description"`
	CloseMode               int32           `json:"close_mode"`
}
