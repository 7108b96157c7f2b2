package termapi

import "time"

// AccountSummaryRequest 请求账户概览。
type AccountSummaryRequest struct{}

// AccountSummaryData 账户概览。
type AccountSummaryData struct {
	AccountLogin          int64     `json:"account_login"`
	AccountBalance        float64   `json:"account_balance"`
	AccountEquity         float64   `json:"account_equity"`
	AccountCredit         float64   `json:"account_credit"`
	AccountUserName       string    `json:"account_user_name"`
	AccountLeverage       int64     `json:"account_leverage"`
	AccountTradeMode      int32     `json:"account_trade_mode"`
	AccountCompanyName    string    `json:"account_company_name"`
	AccountCurrency       string    `json:"account_currency"`
	ServerTime            time.Time `json:"server_time"`
	UTCServerShiftMinutes int64     `json:"utc_timezone_server_time_shift_minutes"`
}

// AccountInfoDoubleRequest 查询单个浮点属性。
type AccountInfoDoubleRequest struct {
	PropertyID AccountInfoDoubleProperty `json:"property_id"`
}

// AccountInfoDoubleData 浮点属性值。
type AccountInfoDoubleData struct {
	RequestedValue float64 `json:"requested_value"`
}

// AccountInfoIntegerRequest 查询单个整型属性。
type AccountInfoIntegerRequest struct {
	PropertyID AccountInfoIntegerProperty `json:"property_id"`
}

// AccountInfoIntegerData 整型属性值。
type AccountInfoIntegerData struct {
	RequestedValue int64 `json:"requested_value"`
}

// AccountInfoStringRequest 查询单个字符串属性。
type AccountInfoStringRequest struct {
	PropertyID AccountInfoStringProperty `json:"property_id"`
}

// AccountInfoStringData 字符串属性值。
type AccountInfoStringData struct {
	RequestedValue string `json:"requested_value"`
}

// OpenedOrdersRequest 请求当前挂单与持仓。
type OpenedOrdersRequest struct {
	InputSortMode OrderSortMode `json:"input_sort_mode"`
}

// OpenedOrderInfo 挂单信息。
type OpenedOrderInfo struct {
	Ticket         uint64    `json:"ticket"`
	Symbol         string    `json:"symbol"`
	Type           OrderType `json:"type"`
	State          int32     `json:"state"`
	VolumeInitial  float64   `json:"volume_initial"`
	VolumeCurrent  float64   `json:"volume_current"`
	PriceOpen      float64   `json:"price_open"`
	PriceCurrent   float64   `json:"price_current"`
	PriceStopLimit float64   `json:"price_stop_limit"`
	StopLoss       float64   `json:"stop_loss"`
	TakeProfit     float64   `json:"take_profit"`
	TimeSetup      time.Time `json:"time_setup"`
	TimeExpiration time.Time `json:"time_expiration"`
	Magic          int64     `json:"magic"`
	Comment        string    `json:"comment"`
}

// PositionInfo 持仓信息。
type PositionInfo struct {
	Ticket       uint64    `json:"ticket"`
	Symbol       string    `json:"symbol"`
	Type         int32     `json:"type"`
	Volume       float64   `json:"volume"`
	PriceOpen    float64   `json:"price_open"`
	PriceCurrent float64   `json:"price_current"`
	StopLoss     float64   `json:"stop_loss"`
	TakeProfit   float64   `json:"take_profit"`
	Profit       float64   `json:"profit"`
	Swap         float64   `json:"swap"`
	Commission   float64   `json:"commission"`
	OpenTime     time.Time `json:"open_time"`
	LastUpdate   time.Time `json:"last_update_time"`
	Magic        int64     `json:"magic"`
	Comment      string    `json:"comment"`
}

// OpenedOrdersData 当前挂单与持仓快照。
type OpenedOrdersData struct {
	OpenedOrders  []OpenedOrderInfo `json:"opened_orders"`
	PositionInfos []PositionInfo    `json:"position_infos"`
}

// OpenedOrdersTicketsRequest 只请求单号。
type OpenedOrdersTicketsRequest struct{}

// OpenedOrdersTicketsData 挂单与持仓单号。
type OpenedOrdersTicketsData struct {
	OpenedOrdersTickets   []int64 `json:"opened_orders_tickets"`
	OpenedPositionTickets []int64 `json:"opened_position_tickets"`
}

// OrderHistoryRequest 分页查询历史订单。
type OrderHistoryRequest struct {
	InputFrom     time.Time     `json:"input_from"`
	InputTo       time.Time     `json:"input_to"`
	InputSortMode OrderSortMode `json:"input_sort_mode"`
	PageNumber    int32         `json:"page_number"`
	ItemsPerPage  int32         `json:"items_per_page"`
}

// HistoryDeal 历史成交。
type HistoryDeal struct {
	Ticket     uint64    `json:"ticket"`
	Symbol     string    `json:"symbol"`
	Type       int32     `json:"type"`
	Entry      int32     `json:"entry"`
	Volume     float64   `json:"volume"`
	Price      float64   `json:"price"`
	Profit     float64   `json:"profit"`
	Commission float64   `json:"commission"`
	Swap       float64   `json:"swap"`
	Time       time.Time `json:"time"`
	OrderID    uint64    `json:"order_ticket"`
	PositionID uint64    `json:"position_ticket"`
	Comment    string    `json:"comment"`
}

// HistoryOrder 历史订单。
type HistoryOrder struct {
	Ticket        uint64    `json:"ticket"`
	Symbol        string    `json:"symbol"`
	Type          OrderType `json:"type"`
	State         int32     `json:"state"`
	VolumeInitial float64   `json:"volume_initial"`
	VolumeCurrent float64   `json:"volume_current"`
	PriceOpen     float64   `json:"price_open"`
	SetupTime     time.Time `json:"setup_time"`
	DoneTime      time.Time `json:"done_time"`
	PositionID    uint64    `json:"position_id"`
	Comment       string    `json:"comment"`
}

// OrderHistoryItem 每项只携带订单或成交之一。
type OrderHistoryItem struct {
	Index        int32         `json:"index"`
	HistoryOrder *HistoryOrder `json:"history_order,omitempty"`
	HistoryDeal  *HistoryDeal  `json:"history_deal,omitempty"`
}

// OrderHistoryData 历史订单分页结果。
type OrderHistoryData struct {
	ArrayTotal   int32              `json:"array_total"`
	PageNumber   int32              `json:"page_number"`
	ItemsPerPage int32              `json:"items_per_page"`
	HistoryData  []OrderHistoryItem `json:"history_data"`
}

// PositionsHistoryRequest 分页查询已平仓位。
type PositionsHistoryRequest struct {
	SortType             OrderSortMode `json:"sort_type"`
	PositionOpenTimeFrom *time.Time    `json:"position_open_time_from,omitempty"`
	PositionOpenTimeTo   *time.Time    `json:"position_open_time_to,omitempty"`
	PageNumber           int32         `json:"page_number"`
	ItemsPerPage         int32         `json:"items_per_page"`
}

// PositionHistory 已平仓位。
type PositionHistory struct {
	Index      int32     `json:"index"`
	Ticket     uint64    `json:"position_ticket"`
	Symbol     string    `json:"symbol"`
	OrderType  OrderType `json:"order_type"`
	Volume     float64   `json:"volume"`
	OpenPrice  float64   `json:"open_price"`
	ClosePrice float64   `json:"close_price"`
	OpenTime   time.Time `json:"open_time"`
	CloseTime  time.Time `json:"close_time"`
	Profit     float64   `json:"profit"`
	Commission float64   `json:"commission"`
	Swap       float64   `json:"swap"`
	Comment    string    `json:"comment"`
}

// PositionsHistoryData 已平仓位分页结果。
type PositionsHistoryData struct {
	HistoryPositions []PositionHistory `json:"history_positions"`
}
