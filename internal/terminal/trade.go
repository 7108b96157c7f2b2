package terminal

import (
	"context"

	"mt5-term/internal/termapi"
)

// OrderSend 提交市价或挂单。交易返回码需由调用方检查。
func (c *Client) OrderSend(ctx context.Context, req termapi.OrderSendRequest) (*termapi.OrderResult, error) {
	return call[termapi.OrderResult](ctx, c, termapi.MethodOrderSend, &req)
}

// OrderModify 修改挂单或持仓。
func (c *Client) OrderModify(ctx context.Context, req termapi.OrderModifyRequest) (*termapi.OrderResult, error) {
	return call[termapi.OrderResult](ctx, c, termapi.MethodOrderModify, &req)
}

// OrderClose 平仓或撤单。
func (c *Client) OrderClose(ctx context.Context, req termapi.OrderCloseRequest) (*termapi.OrderCloseData, error) {
	return call[termapi.OrderCloseData](ctx, c, termapi.MethodOrderClose, &req)
}

// OrderCheck 在不下单的情况下校验交易请求。
func (c *Client) OrderCheck(ctx context.Context, req termapi.TradeRequest) (*termapi.TradeCheckResult, error) {
	data, err := call[termapi.OrderCheckData](ctx, c, termapi.MethodOrderCheck, &termapi.OrderCheckRequest{MqlTradeRequest: req})
	if err != nil {
		return nil, err
	}
	return &data.MqlTradeCheckResult, nil
}

// OrderCalcMargin 计算所需保证金。
func (c *Client) OrderCalcMargin(ctx context.Context, req termapi.OrderCalcMarginRequest) (float64, error) {
	data, err := call[termapi.OrderCalcMarginData](ctx, c, termapi.MethodOrderCalcMargin, &req)
	if err != nil {
		return 0, err
	}
	return data.Margin, nil
}

// OrderCalcProfit 计算假设盈亏。
func (c *Client) OrderCalcProfit(ctx context.Context, req termapi.OrderCalcProfitRequest) (float64, error) {
	data, err := call[termapi.OrderCalcProfitData](ctx, c, termapi.MethodOrderCalcProfit, &req)
	if err != nil {
		return 0, err
	}
	return data.Profit, nil
}
