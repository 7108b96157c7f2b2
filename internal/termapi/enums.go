package termapi

// AccountInfoDoubleProperty 对应 ACCOUNT_* 浮点属性。
type AccountInfoDoubleProperty int32

const (
	AccountBalance AccountInfoDoubleProperty = iota
	AccountCredit
	AccountProfit
	AccountEquity
	AccountMargin
	AccountMarginFree
	AccountMarginLevel
	AccountMarginSOCall
	AccountMarginSOSO
	AccountMarginInitial
	AccountMarginMaintenance
	AccountAssets
	AccountLiabilities
	AccountCommissionBlocked
)

// AccountInfoIntegerProperty 对应 ACCOUNT_* 整型属性。
type AccountInfoIntegerProperty int32

const (
	AccountLogin AccountInfoIntegerProperty = iota
	AccountTradeMode
	AccountLeverage
	AccountLimitOrders
	AccountMarginSOMode
	AccountTradeAllowed
	AccountTradeExpert
	AccountMarginMode
	AccountCurrencyDigits
	AccountFIFOClose
	AccountHedgeAllowed
)

// AccountInfoStringProperty 对应 ACCOUNT_* 字符串属性。
type AccountInfoStringProperty int32

const (
	AccountName AccountInfoStringProperty = iota
	AccountServer
	AccountCurrency
	AccountCompany
)

// SymbolInfoDoubleProperty 对应 SYMBOL_* 浮点属性，只列出常用项。
type SymbolInfoDoubleProperty int32

const (
	SymbolBid SymbolInfoDoubleProperty = iota
	SymbolBidHigh
	SymbolBidLow
	SymbolAsk
	SymbolAskHigh
	SymbolAskLow
	SymbolLast
	SymbolLastHigh
	SymbolLastLow
	SymbolVolumeReal
	SymbolVolumeHighReal
	SymbolVolumeLowReal
	SymbolOptionStrike
	SymbolPoint
	SymbolTradeTickValue
	SymbolTradeTickValueProfit
	SymbolTradeTickValueLoss
	SymbolTradeTickSize
	SymbolTradeContractSize
	SymbolVolumeMin
	SymbolVolumeMax
	SymbolVolumeStep
)

// SymbolInfoIntegerProperty 对应 SYMBOL_* 整型属性，只列出常用项。
type SymbolInfoIntegerProperty int32

const (
	SymbolSubscriptionDelay SymbolInfoIntegerProperty = iota
	SymbolSector
	SymbolIndustry
	SymbolCustom
	SymbolBackgroundColor
	SymbolChartMode
	SymbolExist
	SymbolSelect
	SymbolVisible
	SymbolSessionDeals
	SymbolSessionBuyOrders
	SymbolSessionSellOrders
	SymbolVolume
	SymbolVolumeHigh
	SymbolVolumeLow
	SymbolTime
	SymbolTimeMsc
	SymbolDigits
	SymbolSpreadFloat
	SymbolSpread
	SymbolTradeStopsLevel
	SymbolTradeFreezeLevel
)

// SymbolInfoStringProperty 对应 SYMBOL_* 字符串属性。
type SymbolInfoStringProperty int32

const (
	SymbolBasis SymbolInfoStringProperty = iota
	SymbolCategory
	SymbolCountry
	SymbolSectorName
	SymbolIndustryName
	SymbolCurrencyBase
	SymbolCurrencyProfit
	SymbolCurrencyMargin
	SymbolBank
	SymbolDescription
	SymbolExchange
	SymbolFormula
	SymbolISIN
	SymbolPage
	SymbolPath
)

// OrderType 对应 ORDER_TYPE_*。
type OrderType int32

const (
	OrderTypeBuy OrderType = iota
	OrderTypeSell
	OrderTypeBuyLimit
	OrderTypeSellLimit
	OrderTypeBuyStop
	OrderTypeSellStop
	OrderTypeBuyStopLimit
	OrderTypeSellStopLimit
	OrderTypeCloseBy
)

// IsPending 判断是否为挂单类型。
func (t OrderType) IsPending() bool {
	return t >= OrderTypeBuyLimit && t <= OrderTypeSellStopLimit
}

// ExpirationType 对应 ORDER_TIME_*。
type ExpirationType int32

const (
	ExpirationGTC ExpirationType = iota
	ExpirationDay
	ExpirationSpecified
	ExpirationSpecifiedDay
)

// OrderSortMode 控制持仓与历史的排序方式。
type OrderSortMode int32

const (
	SortByOpenTimeAsc OrderSortMode = iota
	SortByCloseTimeAsc
	SortByTicketIDAsc
)

// DayOfWeek 用于交易/报价时段查询，0 为周日。
type DayOfWeek int32

const (
	Sunday DayOfWeek = iota
	Monday
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
)

// TradeReturnCode 对应 TRADE_RETCODE_*。
type TradeReturnCode uint32

const (
	TradeRetcodeRequote         TradeReturnCode = 10004
	TradeRetcodeReject          TradeReturnCode = 10006
	TradeRetcodeCancel          TradeReturnCode = 10007
	TradeRetcodePlaced          TradeReturnCode = 10008
	TradeRetcodeDone            TradeReturnCode = 10009
	TradeRetcodeDonePartial     TradeReturnCode = 10010
	TradeRetcodeError           TradeReturnCode = 10011
	TradeRetcodeTimeout         TradeReturnCode = 10012
	TradeRetcodeInvalid         TradeReturnCode = 10013
	TradeRetcodeInvalidVolume   TradeReturnCode = 10014
	TradeRetcodeInvalidPrice    TradeReturnCode = 10015
	TradeRetcodeInvalidStops    TradeReturnCode = 10016
	TradeRetcodeTradeDisabled   TradeReturnCode = 10017
	TradeRetcodeMarketClosed    TradeReturnCode = 10018
	TradeRetcodeNoMoney         TradeReturnCode = 10019
	TradeRetcodePriceChanged    TradeReturnCode = 10020
	TradeRetcodePriceOff        TradeReturnCode = 10021
	TradeRetcodeInvalidExpiry   TradeReturnCode = 10022
	TradeRetcodeOrderChanged    TradeReturnCode = 10023
	TradeRetcodeTooManyRequests TradeReturnCode = 10024
	TradeRetcodeNoChanges       TradeReturnCode = 10025
	TradeRetcodeConnection      TradeReturnCode = 10031
	TradeRetcodeLimitOrders     TradeReturnCode = 10033
	TradeRetcodeLimitVolume     TradeReturnCode = 10034
	TradeRetcodeInvalidOrder    TradeReturnCode = 10035
	TradeRetcodePositionClosed  TradeReturnCode = 10036
)

// Succeeded 判断交易请求是否被服务端接受。
func (c TradeReturnCode) Succeeded() bool {
	switch c {
	case TradeRetcodeDone, TradeRetcodeDonePartial, TradeRetcodePlaced:
		return true
	default:
		return false
	}
}

// TradeTransactionType 对应 TRADE_TRANSACTION_*。
type TradeTransactionType int32

const (
	TransactionOrderAdd TradeTransactionType = iota
	TransactionOrderUpdate
	TransactionOrderDelete
	TransactionHistoryAdd
	TransactionHistoryUpdate
	TransactionHistoryDelete
	TransactionDealAdd
	TransactionDealUpdate
	TransactionDealDelete
	TransactionPosition
	TransactionRequest
)
