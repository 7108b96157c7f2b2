package terminal

import (
	"context"

	"mt5-term/internal/termapi"
)

// AccountSummary 获取账户概览。
func (c *Client) AccountSummary(ctx context.Context) (*termapi.AccountSummaryData, error) {
	return call[termapi.AccountSummaryData](ctx, c, termapi.MethodAccountSummary, &termapi.AccountSummaryRequest{})
}

// AccountInfoDouble 获取账户浮点属性。
func (c *Client) AccountInfoDouble(ctx context.Context, property termapi.AccountInfoDoubleProperty) (float64, error) {
	data, err := call[termapi.AccountInfoDoubleData](ctx, c, termapi.MethodAccountInfoDouble, &termapi.AccountInfoDoubleRequest{PropertyID: property})
	if err != nil {
		return 0, err
	}
	return data.RequestedValue, nil
}

// AccountInfoInteger 获取账户整型属性。
func (c *Client) AccountInfoInteger(ctx context.Context, property termapi.AccountInfoIntegerProperty) (int64, error) {
	data, err := call[termapi.AccountInfoIntegerData](ctx, c, termapi.MethodAccountInfoInteger, &termapi.AccountInfoIntegerRequest{PropertyID: property})
	if err != nil {
		return 0, err
	}
	return data.RequestedValue, nil
}

// AccountInfoString 获取账户字符串属性。
func (c *Client) AccountInfoString(ctx context.Context, property termapi.AccountInfoStringProperty) (string, error) {
	data, err := call[termapi.AccountInfoStringData](ctx, c, termapi.MethodAccountInfoString, &termapi.AccountInfoStringRequest{PropertyID: property})
	if err != nil {
		return "", err
	}
	return data.RequestedValue, nil
}

// OpenedOrders 获取当前挂单与持仓。
func (c *Client) OpenedOrders(ctx context.Context, sort termapi.OrderSortMode) (*termapi.OpenedOrdersData, error) {
	return call[termapi.OpenedOrdersData](ctx, c, termapi.MethodOpenedOrders, &termapi.OpenedOrdersRequest{InputSortMode: sort})
}

// OpenedOrdersTickets 只获取挂单与持仓单号。
func (c *Client) OpenedOrdersTickets(ctx context.Context) (*termapi.OpenedOrdersTicketsData, error) {
	return call[termapi.OpenedOrdersTicketsData](ctx, c, termapi.MethodOpenedOrdersTickets, &termapi.OpenedOrdersTicketsRequest{})
}

// OrderHistory 分页获取历史订单与成交。
func (c *Client) OrderHistory(ctx context.Context, req termapi.OrderHistoryRequest) (*termapi.OrderHistoryData, error) {
	return call[termapi.OrderHistoryData](ctx, c, termapi.MethodOrderHistory, &req)
}

// PositionsHistory 分页获取已平仓位。
func (c *Client) PositionsHistory(ctx context.Context, req termapi.PositionsHistoryRequest) (*termapi.PositionsHistoryData, error) {
	return call[termapi.PositionsHistoryData](ctx, c, termapi.MethodPositionsHistory, &req)
}

// PositionsTotal 获取持仓数量。
func (c *Client) PositionsTotal(ctx context.Context) (int32, error) {
	data, err := call[termapi.PositionsTotalData](ctx, c, termapi.MethodPositionsTotal, &termapi.PositionsTotalRequest{})
	if err != nil {
		return 0, err
	}
	return data.TotalPositions, nil
}
