package termapi

// 服务名。
const (
	ServiceConnection         = "mt5_term_api.Connection"
	ServiceAccountHelper      = "mt5_term_api.AccountHelper"
	ServiceAccountInformation = "mt5_term_api.AccountInformation"
	ServiceMarketInfo         = "mt5_term_api.MarketInfo"
	ServiceTradeFunctions     = "mt5_term_api.TradeFunctions"
	ServiceTradingHelper      = "mt5_term_api.TradingHelper"
	ServiceSubscription       = "mt5_term_api.SubscriptionService"
)

// Connection
const (
	MethodConnect      = "/" + ServiceConnection + "/Connect"
	MethodConnectEx    = "/" + ServiceConnection + "/ConnectEx"
	MethodDisconnect   = "/" + ServiceConnection + "/Disconnect"
	MethodCheckConnect = "/" + ServiceConnection + "/CheckConnect"
)

// AccountHelper
const (
	MethodAccountSummary      = "/" + ServiceAccountHelper + "/AccountSummary"
	MethodOpenedOrders        = "/" + ServiceAccountHelper + "/OpenedOrders"
	MethodOpenedOrdersTickets = "/" + ServiceAccountHelper + "/OpenedOrdersTickets"
	MethodOrderHistory        = "/" + ServiceAccountHelper + "/OrderHistory"
	MethodPositionsHistory    = "/" + ServiceAccountHelper + "/PositionsHistory"
	MethodSymbolParamsMany    = "/" + ServiceAccountHelper + "/SymbolParamsMany"
	MethodTickValueWithSize   = "/" + ServiceAccountHelper + "/TickValueWithSize"
)

// AccountInformation
const (
	MethodAccountInfoDouble  = "/" + ServiceAccountInformation + "/AccountInfoDouble"
	MethodAccountInfoInteger = "/" + ServiceAccountInformation + "/AccountInfoInteger"
	MethodAccountInfoString  = "/" + ServiceAccountInformation + "/AccountInfoString"
)

// MarketInfo
const (
	MethodSymbolsTotal           = "/" + ServiceMarketInfo + "/SymbolsTotal"
	MethodSymbolExist            = "/" + ServiceMarketInfo + "/SymbolExist"
	MethodSymbolName             = "/" + ServiceMarketInfo + "/SymbolName"
	MethodSymbolSelect           = "/" + ServiceMarketInfo + "/SymbolSelect"
	MethodSymbolIsSynchronized   = "/" + ServiceMarketInfo + "/SymbolIsSynchronized"
	MethodSymbolInfoDouble       = "/" + ServiceMarketInfo + "/SymbolInfoDouble"
	MethodSymbolInfoInteger      = "/" + ServiceMarketInfo + "/SymbolInfoInteger"
	MethodSymbolInfoString       = "/" + ServiceMarketInfo + "/SymbolInfoString"
	MethodSymbolInfoMarginRate   = "/" + ServiceMarketInfo + "/SymbolInfoMarginRate"
	MethodSymbolInfoTick         = "/" + ServiceMarketInfo + "/SymbolInfoTick"
	MethodSymbolInfoSessionQuote = "/" + ServiceMarketInfo + "/SymbolInfoSessionQuote"
	MethodSymbolInfoSessionTrade = "/" + ServiceMarketInfo + "/SymbolInfoSessionTrade"
	MethodMarketBookAdd          = "/" + ServiceMarketInfo + "/MarketBookAdd"
	MethodMarketBookRelease      = "/" + ServiceMarketInfo + "/MarketBookRelease"
	MethodMarketBookGet          = "/" + ServiceMarketInfo + "/MarketBookGet"
)

// TradeFunctions
const (
	MethodOrderCheck      = "/" + ServiceTradeFunctions + "/OrderCheck"
	MethodOrderCalcMargin = "/" + ServiceTradeFunctions + "/OrderCalcMargin"
	MethodOrderCalcProfit = "/" + ServiceTradeFunctions + "/OrderCalcProfit"
	MethodPositionsTotal  = "/" + ServiceTradeFunctions + "/PositionsTotal"
)

// TradingHelper
const (
	MethodOrderSend   = "/" + ServiceTradingHelper + "/OrderSend"
	MethodOrderModify = "/" + ServiceTradingHelper + "/OrderModify"
	MethodOrderClose  = "/" + ServiceTradingHelper + "/OrderClose"
)

// SubscriptionService，均为 server-streaming。
const (
	MethodOnSymbolTick                       = "/" + ServiceSubscription + "/OnSymbolTick"
	MethodOnTrade                            = "/" + ServiceSubscription + "/OnTrade"
	MethodOnPositionProfit                   = "/" + ServiceSubscription + "/OnPositionProfit"
	MethodOnPositionsAndPendingOrdersTickets = "/" + ServiceSubscription + "/OnPositionsAndPendingOrdersTickets"
	MethodOnTradeTransaction                 = "/" + ServiceSubscription + "/OnTradeTransaction"
)
