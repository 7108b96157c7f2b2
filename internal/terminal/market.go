package terminal

import (
	"context"

	"mt5-term/internal/termapi"
)

// SymbolsTotal 获取品种数量，selectedOnly 为 true 时只统计市场报价窗口中的品种。
func (c *Client) SymbolsTotal(ctx context.Context, selectedOnly bool) (int32, error) {
	data, err := call[termapi.SymbolsTotalData](ctx, c, termapi.MethodSymbolsTotal, &termapi.SymbolsTotalRequest{Mode: selectedOnly})
	if err != nil {
		return 0, err
	}
	return data.Total, nil
}

// SymbolExist 判断品种是否存在以及是否为自定义品种。
func (c *Client) SymbolExist(ctx context.Context, symbol string) (*termapi.SymbolExistData, error) {
	return call[termapi.SymbolExistData](ctx, c, termapi.MethodSymbolExist, &termapi.SymbolExistRequest{Name: symbol})
}

// SymbolName 按序号获取品种名。
func (c *Client) SymbolName(ctx context.Context, index int32, selected bool) (string, error) {
	data, err := call[termapi.SymbolNameData](ctx, c, termapi.MethodSymbolName, &termapi.SymbolNameRequest{Index: index, Selected: selected})
	if err != nil {
		return "", err
	}
	return data.Name, nil
}

// SymbolSelect 将品种加入或移出市场报价窗口。
func (c *Client) SymbolSelect(ctx context.Context, symbol string, selected bool) (bool, error) {
	data, err := call[termapi.SymbolSelectData](ctx, c, termapi.MethodSymbolSelect, &termapi.SymbolSelectRequest{Symbol: symbol, Select: selected})
	if err != nil {
		return false, err
	}
	return data.Success, nil
}

// SymbolIsSynchronized 判断品种数据是否已与服务器同步。
func (c *Client) SymbolIsSynchronized(ctx context.Context, symbol string) (bool, error) {
	data, err := call[termapi.SymbolIsSynchronizedData](ctx, c, termapi.MethodSymbolIsSynchronized, &termapi.SymbolIsSynchronizedRequest{Symbol: symbol})
	if err != nil {
		return false, err
	}
	return data.Synchronized, nil
}

// SymbolInfoDouble 获取品种浮点属性。
func (c *Client) SymbolInfoDouble(ctx context.Context, symbol string, property termapi.SymbolInfoDoubleProperty) (float64, error) {
	data, err := call[termapi.SymbolInfoDoubleData](ctx, c, termapi.MethodSymbolInfoDouble, &termapi.SymbolInfoDoubleRequest{Symbol: symbol, Type: property})
	if err != nil {
		return 0, err
	}
	return data.Value, nil
}

// SymbolInfoInteger 获取品种整型属性。
func (c *Client) SymbolInfoInteger(ctx context.Context, symbol string, property termapi.SymbolInfoIntegerProperty) (int64, error) {
	data, err := call[termapi.SymbolInfoIntegerData](ctx, c, termapi.MethodSymbolInfoInteger, &termapi.SymbolInfoIntegerRequest{Symbol: symbol, Type: property})
	if err != nil {
		return 0, err
	}
	return data.Value, nil
}

// SymbolInfoString 获取品种字符串属性。
func (c *Client) SymbolInfoString(ctx context.Context, symbol string, property termapi.SymbolInfoStringProperty) (string, error) {
	data, err := call[termapi.SymbolInfoStringData](ctx, c, termapi.MethodSymbolInfoString, &termapi.SymbolInfoStringRequest{Symbol: symbol, Type: property})
	if err != nil {
		return "", err
	}
	return data.Value, nil
}

// SymbolInfoMarginRate 获取指定订单类型的保证金比率。
func (c *Client) SymbolInfoMarginRate(ctx context.Context, symbol string, orderType termapi.OrderType) (*termapi.SymbolInfoMarginRateData, error) {
	return call[termapi.SymbolInfoMarginRateData](ctx, c, termapi.MethodSymbolInfoMarginRate, &termapi.SymbolInfoMarginRateRequest{Symbol: symbol, OrderType: orderType})
}

// SymbolInfoTick 获取最新报价。
func (c *Client) SymbolInfoTick(ctx context.Context, symbol string) (*termapi.Tick, error) {
	return call[termapi.Tick](ctx, c, termapi.MethodSymbolInfoTick, &termapi.SymbolInfoTickRequest{Symbol: symbol})
}

// SymbolInfoSessionQuote 获取报价时段。
func (c *Client) SymbolInfoSessionQuote(ctx context.Context, symbol string, day termapi.DayOfWeek, index uint32) (*termapi.SymbolInfoSessionData, error) {
	req := &termapi.SymbolInfoSessionRequest{Symbol: symbol, DayOfWeek: day, SessionIndex: index}
	return call[termapi.SymbolInfoSessionData](ctx, c, termapi.MethodSymbolInfoSessionQuote, req)
}

// SymbolInfoSessionTrade 获取交易时段。
func (c *Client) SymbolInfoSessionTrade(ctx context.Context, symbol string, day termapi.DayOfWeek, index uint32) (*termapi.SymbolInfoSessionData, error) {
	req := &termapi.SymbolInfoSessionRequest{Symbol: symbol, DayOfWeek: day, SessionIndex: index}
	return call[termapi.SymbolInfoSessionData](ctx, c, termapi.MethodSymbolInfoSessionTrade, req)
}

// MarketBookAdd 订阅市场深度，读取前必须先订阅。
func (c *Client) MarketBookAdd(ctx context.Context, symbol string) (bool, error) {
	data, err := call[termapi.MarketBookAddData](ctx, c, termapi.MethodMarketBookAdd, &termapi.MarketBookRequest{Symbol: symbol})
	if err != nil {
		return false, err
	}
	return data.OpenedSuccessfully, nil
}

// MarketBookRelease 取消市场深度订阅。
func (c *Client) MarketBookRelease(ctx context.Context, symbol string) (bool, error) {
	data, err := call[termapi.MarketBookReleaseData](ctx, c, termapi.MethodMarketBookRelease, &termapi.MarketBookRequest{Symbol: symbol})
	if err != nil {
		return false, err
	}
	return data.ClosedSuccessfully, nil
}

// MarketBookGet 获取市场深度快照。
func (c *Client) MarketBookGet(ctx context.Context, symbol string) ([]termapi.BookInfo, error) {
	data, err := call[termapi.MarketBookGetData](ctx, c, termapi.MethodMarketBookGet, &termapi.MarketBookRequest{Symbol: symbol})
	if err != nil {
		return nil, err
	}
	return data.MqlBookInfos, nil
}

// SymbolParamsMany 分页获取品种参数。
func (c *Client) SymbolParamsMany(ctx context.Context, req termapi.SymbolParamsManyRequest) (*termapi.SymbolParamsManyData, error) {
	return call[termapi.SymbolParamsManyData](ctx, c, termapi.MethodSymbolParamsMany, &req)
}

// TickValueWithSize 批量获取点值与最小变动。
func (c *Client) TickValueWithSize(ctx context.Context, symbols []string) ([]termapi.TickSizeSymbol, error) {
	data, err := call[termapi.TickValueWithSizeData](ctx, c, termapi.MethodTickValueWithSize, &termapi.TickValueWithSizeRequest{SymbolNames: symbols})
	if err != nil {
		return nil, err
	}
	return data.SymbolTickSizeInfos, nil
}
