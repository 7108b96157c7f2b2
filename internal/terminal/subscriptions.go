package terminal

import (
	"context"
	"iter"
	"time"

	"mt5-term/internal/termapi"
)

// OnSymbolTick 订阅实时报价，直到 ctx 取消或服务端结束。
func (c *Client) OnSymbolTick(ctx context.Context, symbols []string) iter.Seq2[*termapi.OnSymbolTickData, error] {
	return subscribe[termapi.OnSymbolTickData](ctx, c, termapi.MethodOnSymbolTick, &termapi.OnSymbolTickRequest{SymbolNames: symbols})
}

// OnTrade 订阅订单、持仓与成交的变化。
func (c *Client) OnTrade(ctx context.Context) iter.Seq2[*termapi.OnTradeData, error] {
	return subscribe[termapi.OnTradeData](ctx, c, termapi.MethodOnTrade, &termapi.OnTradeRequest{})
}

// OnPositionProfit 按 interval 周期推送持仓盈亏。
func (c *Client) OnPositionProfit(ctx context.Context, interval time.Duration, ignoreEmpty bool) iter.Seq2[*termapi.OnPositionProfitData, error] {
	req := &termapi.OnPositionProfitRequest{
		TimerPeriodMilliseconds: int32(interval.Milliseconds()),
		IgnoreEmptyData:         ignoreEmpty,
	}
	return subscribe[termapi.OnPositionProfitData](ctx, c, termapi.MethodOnPositionProfit, req)
}

// OnPositionsAndPendingOrdersTickets 按 interval 周期推送持仓与挂单单号。
func (c *Client) OnPositionsAndPendingOrdersTickets(ctx context.Context, interval time.Duration) iter.Seq2[*termapi.OnPositionsAndPendingOrdersTicketsData, error] {
	req := &termapi.OnPositionsAndPendingOrdersTicketsRequest{TimerPeriodMilliseconds: int32(interval.Milliseconds())}
	return subscribe[termapi.OnPositionsAndPendingOrdersTicketsData](ctx, c, termapi.MethodOnPositionsAndPendingOrdersTickets, req)
}

// OnTradeTransaction 订阅交易回调。
func (c *Client) OnTradeTransaction(ctx context.Context) iter.Seq2[*termapi.OnTradeTransactionData, error] {
	return subscribe[termapi.OnTradeTransactionData](ctx, c, termapi.MethodOnTradeTransaction, &termapi.OnTradeTransactionRequest{})
}
