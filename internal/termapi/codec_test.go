package termapi

import (
	"encoding/json"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/encoding/protowire"
)

func TestSchema_CoversEveryMethod(t *testing.T) {
	cases := []struct {
		method    string
		req       any
		reply     namedMessage
		streaming bool
	}{
		{MethodConnect, &ConnectRequest{}, &Reply[ConnectData]{}, false},
		{MethodConnectEx, &ConnectExRequest{}, &Reply[ConnectData]{}, false},
		{MethodDisconnect, &DisconnectRequest{}, &Reply[DisconnectData]{}, false},
		{MethodCheckConnect, &CheckConnectRequest{}, &Reply[CheckConnectData]{}, false},
		{MethodAccountSummary, &AccountSummaryRequest{}, &Reply[AccountSummaryData]{}, false},
		{MethodOpenedOrders, &OpenedOrdersRequest{}, &Reply[OpenedOrdersData]{}, false},
		{MethodOpenedOrdersTickets, &OpenedOrdersTicketsRequest{}, &Reply[OpenedOrdersTicketsData]{}, false},
		{MethodOrderHistory, &OrderHistoryRequest{}, &Reply[OrderHistoryData]{}, false},
		{MethodPositionsHistory, &PositionsHistoryRequest{}, &Reply[PositionsHistoryData]{}, false},
		{MethodSymbolParamsMany, &SymbolParamsManyRequest{}, &Reply[SymbolParamsManyData]{}, false},
		{MethodTickValueWithSize, &TickValueWithSizeRequest{}, &Reply[TickValueWithSizeData]{}, false},
		{MethodAccountInfoDouble, &AccountInfoDoubleRequest{}, &Reply[AccountInfoDoubleData]{}, false},
		{MethodAccountInfoInteger, &AccountInfoIntegerRequest{}, &Reply[AccountInfoIntegerData]{}, false},
		{MethodAccountInfoString, &AccountInfoStringRequest{}, &Reply[AccountInfoStringData]{}, false},
		{MethodSymbolsTotal, &SymbolsTotalRequest{}, &Reply[SymbolsTotalData]{}, false},
		{MethodSymbolExist, &SymbolExistRequest{}, &Reply[SymbolExistData]{}, false},
		{MethodSymbolName, &SymbolNameRequest{}, &Reply[SymbolNameData]{}, false},
		{MethodSymbolSelect, &SymbolSelectRequest{}, &Reply[SymbolSelectData]{}, false},
		{MethodSymbolIsSynchronized, &SymbolIsSynchronizedRequest{}, &Reply[SymbolIsSynchronizedData]{}, false},
		{MethodSymbolInfoDouble, &SymbolInfoDoubleRequest{}, &Reply[SymbolInfoDoubleData]{}, false},
		{MethodSymbolInfoInteger, &SymbolInfoIntegerRequest{}, &Reply[SymbolInfoIntegerData]{}, false},
		{MethodSymbolInfoString, &SymbolInfoStringRequest{}, &Reply[SymbolInfoStringData]{}, false},
		{MethodSymbolInfoMarginRate, &SymbolInfoMarginRateRequest{}, &Reply[SymbolInfoMarginRateData]{}, false},
		{MethodSymbolInfoTick, &SymbolInfoTickRequest{}, &Reply[Tick]{}, false},
		{MethodSymbolInfoSessionQuote, &SymbolInfoSessionRequest{}, &Reply[SymbolInfoSessionData]{}, false},
		{MethodSymbolInfoSessionTrade, &SymbolInfoSessionRequest{}, &Reply[SymbolInfoSessionData]{}, false},
		{MethodMarketBookAdd, &MarketBookRequest{}, &Reply[MarketBookAddData]{}, false},
		{MethodMarketBookRelease, &MarketBookRequest{}, &Reply[MarketBookReleaseData]{}, false},
		{MethodMarketBookGet, &MarketBookRequest{}, &Reply[MarketBookGetData]{}, false},
		{MethodOrderCheck, &OrderCheckRequest{}, &Reply[OrderCheckData]{}, false},
		{MethodOrderCalcMargin, &OrderCalcMarginRequest{}, &Reply[OrderCalcMarginData]{}, false},
		{MethodOrderCalcProfit, &OrderCalcProfitRequest{}, &Reply[OrderCalcProfitData]{}, false},
		{MethodPositionsTotal, &PositionsTotalRequest{}, &Reply[PositionsTotalData]{}, false},
		{MethodOrderSend, &OrderSendRequest{}, &Reply[OrderResult]{}, false},
		{MethodOrderModify, &OrderModifyRequest{}, &Reply[OrderResult]{}, false},
		{MethodOrderClose, &OrderCloseRequest{}, &Reply[OrderCloseData]{}, false},
		{MethodOnSymbolTick, &OnSymbolTickRequest{}, &Reply[OnSymbolTickData]{}, true},
		{MethodOnTrade, &OnTradeRequest{}, &Reply[OnTradeData]{}, true},
		{MethodOnPositionProfit, &OnPositionProfitRequest{}, &Reply[OnPositionProfitData]{}, true},
		{MethodOnPositionsAndPendingOrdersTickets, &OnPositionsAndPendingOrdersTicketsRequest{}, &Reply[OnPositionsAndPendingOrdersTicketsData]{}, true},
		{MethodOnTradeTransaction, &OnTradeTransactionRequest{}, &Reply[OnTradeTransactionData]{}, true},
	}

	for _, tc := range cases {
		t.Run(tc.method, func(t *testing.T) {
			md, ok := LookupMethod(tc.method)
			require.True(t, ok)

			in, err := descriptorOf(tc.req)
			require.NoError(t, err)
			out, err := descriptorOf(tc.reply)
			require.NoError(t, err)

			assert.Equal(t, md.Input().FullName(), in.FullName())
			assert.Equal(t, md.Output().FullName(), out.FullName())
			assert.Equal(t, tc.streaming, md.IsStreamingServer())
			assert.False(t, md.IsStreamingClient())
		})
	}
}

func TestLookupMethod_Unknown(t *testing.T) {
	for _, name := range []string{"", "/mt5_term_api.Connection", "/mt5_term_api.Connection/Nope", "/other.Connection/Connect"} {
		_, ok := LookupMethod(name)
		assert.False(t, ok, name)
	}
}

func TestCodec_EncodesProtobufWireFormat(t *testing.T) {
	data, err := Codec{}.Marshal(&ConnectExRequest{User: 5036292718, MtClusterName: "MetaQuotes-Demo"})
	require.NoError(t, err)

	fields := map[protowire.Number][]byte{}
	for len(data) > 0 {
		num, typ, n := protowire.ConsumeTag(data)
		require.Positive(t, n)
		m := protowire.ConsumeFieldValue(num, typ, data[n:])
		require.Positive(t, m)
		fields[num] = data[n : n+m]
		data = data[n+m:]
	}
	require.Len(t, fields, 2)

	user, n := protowire.ConsumeVarint(fields[1])
	require.Positive(t, n)
	assert.Equal(t, uint64(5036292718), user)
	name, n := protowire.ConsumeString(fields[3])
	require.Positive(t, n)
	assert.Equal(t, "MetaQuotes-Demo", name)

	empty, err := Codec{}.Marshal(&ConnectData{})
	require.NoError(t, err)
	assert.Empty(t, empty)
	assert.Equal(t, "proto", Codec{}.Name())
}

func TestCodec_RoundTripKeepsPresenceAndTimes(t *testing.T) {
	expires := time.Date(2024, 3, 1, 8, 30, 0, 1500, time.UTC)
	zero := 0.0
	req := &OrderSendRequest{
		Symbol:         "XAUUSD",
		Operation:      OrderTypeBuyLimit,
		Volume:         0.25,
		Price:          &zero,
		ExpirationTime: &expires,
	}

	data, err := Marshal(req)
	require.NoError(t, err)

	var got OrderSendRequest
	require.NoError(t, Unmarshal(data, &got))
	assert.Equal(t, "XAUUSD", got.Symbol)
	assert.Equal(t, OrderTypeBuyLimit, got.Operation)
	assert.Equal(t, 0.25, got.Volume)
	require.NotNil(t, got.Price)
	assert.Zero(t, *got.Price)
	assert.Nil(t, got.StopLoss)
	require.NotNil(t, got.ExpirationTime)
	assert.True(t, expires.Equal(*got.ExpirationTime))
}

func TestCodec_ReplyEnvelope(t *testing.T) {
	opened := time.Date(2024, 3, 1, 8, 0, 0, 0, time.UTC)
	in := &Reply[OrderHistoryData]{Data: &OrderHistoryData{
		ArrayTotal: 2,
		HistoryData: []OrderHistoryItem{
			{Index: 0, HistoryOrder: &HistoryOrder{Ticket: math.MaxUint64, Symbol: "EURUSD", SetupTime: opened}},
			{Index: 1, HistoryDeal: &HistoryDeal{Ticket: 7, Profit: -12.5}},
		},
	}}

	data, err := Marshal(in)
	require.NoError(t, err)

	out := new(Reply[OrderHistoryData])
	require.NoError(t, Unmarshal(data, out))
	require.Nil(t, out.GetError())
	require.Len(t, out.GetData().HistoryData, 2)

	first := out.Data.HistoryData[0]
	require.NotNil(t, first.HistoryOrder)
	assert.Nil(t, first.HistoryDeal)
	assert.Equal(t, uint64(math.MaxUint64), first.HistoryOrder.Ticket)
	assert.True(t, opened.Equal(first.HistoryOrder.SetupTime))
	assert.True(t, first.HistoryOrder.DoneTime.IsZero())
	assert.Equal(t, -12.5, out.Data.HistoryData[1].HistoryDeal.Profit)

	failed, err := Marshal(&Reply[ConnectData]{Error: &Error{Code: ErrCodeTerminalInstanceNotFound, MqlErrorTradeCode: 10004}})
	require.NoError(t, err)
	reply := new(Reply[ConnectData])
	require.NoError(t, Unmarshal(failed, reply))
	assert.Nil(t, reply.GetData())
	assert.True(t, reply.GetError().IsTerminalNotFound())
	assert.Equal(t, uint32(10004), reply.Error.MqlErrorTradeCode)
}

func TestMarshalAs_GenericValues(t *testing.T) {
	md, ok := LookupMethod(MethodOnSymbolTick)
	require.True(t, ok)

	data, err := MarshalAs(md.Output(), map[string]any{
		"data": map[string]any{"symbol_tick": map[string]any{"symbol": "EURUSD", "bid": 1.1}},
	})
	require.NoError(t, err)

	raw, err := DecodeJSON(md.Output(), data)
	require.NoError(t, err)
	assert.JSONEq(t, `{"data":{"symbol_tick":{"symbol":"EURUSD","bid":1.1}}}`, string(raw))

	_, err = MarshalAs(md.Output(), map[string]any{"nope": 1})
	require.ErrorContains(t, err, "nope")

	_, err = MarshalAs(md.Input(), map[string]any{"symbol_names": "EURUSD"})
	require.Error(t, err)
}

func TestDescriptorOf_RejectsForeignTypes(t *testing.T) {
	_, err := Marshal(json.RawMessage(`{}`))
	require.Error(t, err)
	_, err = Marshal(&struct{ A int }{})
	require.Error(t, err)
}
