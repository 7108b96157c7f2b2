package termapi

import "time"

// SymbolsTotalRequest Mode 为 true 时只统计市场报价窗口中的品种。
type SymbolsTotalRequest struct {
	Mode bool `json:"mode"`
}

// SymbolsTotalData 品种数量。
type SymbolsTotalData struct {
	Total int32 `json:"total"`
}

// SymbolExistRequest 判断品种是否存在。
type SymbolExistRequest struct {
	Name string `json:"name"`
}

// SymbolExistData 品种存在性。
type SymbolExistData struct {
	Exists   bool `json:"exists"`
	IsCustom bool `json:"is_custom"`
}

// SymbolNameRequest 按序号取品种名。
type SymbolNameRequest struct {
	Index    int32 `json:"index"`
	Selected bool  `json:"selected"`
}

// SymbolNameData 品种名称。
type SymbolNameData struct {
	Name string `json:"name"`
}

// SymbolSelectRequest 在市场报价窗口中添加或移除品种。
type SymbolSelectRequest struct {
	Symbol string `json:"symbol"`
	Select bool   `json:"select"`
}

// SymbolSelectData 操作结果。
type SymbolSelectData struct {
	Success bool `json:"success"`
}

// SymbolIsSynchronizedRequest 查询品种数据是否已与服务器同步。
type SymbolIsSynchronizedRequest struct {
	Symbol string `json:"symbol"`
}

// SymbolIsSynchronizedData 同步状态。
type SymbolIsSynchronizedData struct {
	Synchronized bool `json:"synchronized"`
}

// SymbolInfoDoubleRequest 查询品种浮点属性。
type SymbolInfoDoubleRequest struct {
	Symbol string                   `json:"symbol"`
	Type   SymbolInfoDoubleProperty `json:"type"`
}

// SymbolInfoDoubleData 浮点属性值。
type SymbolInfoDoubleData struct {
	Value float64 `json:"value"`
}

// SymbolInfoIntegerRequest 查询品种整型属性。
type SymbolInfoIntegerRequest struct {
	Symbol string                    `json:"symbol"`
	Type   SymbolInfoIntegerProperty `json:"type"`
}

// SymbolInfoIntegerData 整型属性值。
type SymbolInfoIntegerData struct {
	Value int64 `json:"value"`
}

// SymbolInfoStringRequest 查询品种字符串属性。
type SymbolInfoStringRequest struct {
	Symbol string                   `json:"symbol"`
	Type   SymbolInfoStringProperty `json:"type"`
}

// SymbolInfoStringData 字符串属性值。
type SymbolInfoStringData struct {
	Value string `json:"value"`
}

// SymbolInfoMarginRateRequest 查询指定订单类型的保证金比率。
type SymbolInfoMarginRateRequest struct {
	Symbol    string    `json:"symbol"`
	OrderType OrderType `json:"order_type"`
}

// SymbolInfoMarginRateData 保证金比率。
type SymbolInfoMarginRateData struct {
	InitialMarginRate     float64 `json:"initial_margin_rate"`
	MaintenanceMarginRate float64 `json:"maintenance_margin_rate"`
}

// SymbolInfoTickRequest 查询最新报价。
type SymbolInfoTickRequest struct {
	Symbol string `json:"symbol"`
}

// Tick 对应 MqlTick。
type Tick struct {
	Time       int64   `json:"time"`
	Bid        float64 `json:"bid"`
	Ask        float64 `json:"ask"`
	Last       float64 `json:"last"`
	Volume     uint64  `json:"volume"`
	TimeMsc    int64   `json:"time_msc"`
	Flags      uint32  `json:"flags"`
	VolumeReal float64 `json:"volume_real"`
}

// Timestamp 以毫秒精度还原报价时间。
func (t *Tick) Timestamp() time.Time {
	if t.TimeMsc != 0 {
		return time.UnixMilli(t.TimeMsc).UTC()
	}
	return time.Unix(t.Time, 0).UTC()
}

// SymbolInfoSessionRequest 查询报价或交易时段。
type SymbolInfoSessionRequest struct {
	Symbol       string    `json:"symbol"`
	DayOfWeek    DayOfWeek `json:"day_of_week"`
	SessionIndex uint32    `json:"session_index"`
}

// SymbolInfoSessionData 时段起止，以当天零点为基准的时间。
type SymbolInfoSessionData struct {
	From time.Time `json:"from"`
	To   time.Time `json:"to"`
}

// MarketBookRequest 订阅、释放或读取深度。
type MarketBookRequest struct {
	Symbol string `json:"symbol"`
}

// MarketBookAddData 订阅结果。
type MarketBookAddData struct {
	OpenedSuccessfully bool `json:"opened_successfully"`
}

// MarketBookReleaseData 释放结果。
type MarketBookReleaseData struct {
	ClosedSuccessfully bool `json:"closed_successfully"`
}

// BookInfo 深度档位，Type 为 1 卖、2 买。
type BookInfo struct {
	Type       int32   `json:"type"`
	Price      float64 `json:"price"`
	Volume     int64   `json:"volume"`
	VolumeReal float64 `json:"volume_real"`
}

// MarketBookGetData 深度快照。
type MarketBookGetData struct {
	MqlBookInfos []BookInfo `json:"mql_book_infos"`
}

// SymbolParamsManyRequest 分页查询品种参数，SymbolName 为空时返回全部。
type SymbolParamsManyRequest struct {
	SymbolName   *string `json:"symbol_name,omitempty"`
	SortType     int32   `json:"sort_type"`
	PageNumber   int32   `json:"page_number"`
	ItemsPerPage int32   `json:"items_per_page"`
}

// SymbolParameters 品种参数。
type SymbolParameters struct {
	Name              string  `json:"name"`
	Description       string  `json:"description"`
	Digits            int32   `json:"digits"`
	Point             float64 `json:"point"`
	Bid               float64 `json:"bid"`
	Ask               float64 `json:"ask"`
	Spread            int32   `json:"spread"`
	VolumeMin         float64 `json:"volume_min"`
	VolumeMax         float64 `json:"volume_max"`
	VolumeStep        float64 `json:"volume_step"`
	TradeContractSize float64 `json:"trade_contract_size"`
	TradeTickValue    float64 `json:"trade_tick_value"`
	TradeTickSize     float64 `json:"trade_tick_size"`
	CurrencyBase      string  `json:"currency_base"`
	CurrencyProfit    string  `json:"currency_profit"`
	CurrencyMargin    string  `json:"currency_margin"`
	TradeMode         int32   `json:"trade_mode"`
}

// SymbolParamsManyData 品种参数分页结果。
type SymbolParamsManyData struct {
	SymbolInfos  []SymbolParameters `json:"symbol_infos"`
	SymbolsTotal int32              `json:"symbols_total"`
	PageNumber   int32              `json:"page_number"`
	ItemsPerPage int32              `json:"items_per_page"`
}

// TickValueWithSizeRequest 批量查询点值与点差。
type TickValueWithSizeRequest struct {
	SymbolNames []string `json:"symbol_names"`
}

// TickSizeSymbol 单品种点值信息。
type TickSizeSymbol struct {
	Index                int32   `json:"index"`
	Name                 string  `json:"name"`
	TradeTickValue       float64 `json:"trade_tick_value"`
	TradeTickValueProfit float64 `json:"trade_tick_value_profit"`
	TradeTickValueLoss   float64 `json:"trade_tick_value_loss"`
	TradeTickSize        float64 `json:"trade_tick_size"`
	TradeContractSize    float64 `json:"trade_contract_size"`
}

// TickValueWithSizeData 批量点值结果。
type TickValueWithSizeData struct {
	SymbolTickSizeInfos []TickSizeSymbol `json:"symbol_tick_size_infos"`
}
