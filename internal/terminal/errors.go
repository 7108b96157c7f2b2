package terminal

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"mt5-term/internal/termapi"
)

var (
	// ErrNotConnected 表示尚未成功握手，调用不会发往服务端。
	ErrNotConnected = errors.New("terminal: not connected")
	// ErrCancelled 表示调用方在调用成功之前取消了操作。
	ErrCancelled = errors.New("terminal: operation cancelled")
)

// APIError 为响应信封中携带的业务错误，保留全部子错误码。
type APIError struct {
	Code             string
	Message          string
	Description      string
	MQLCode          int32
	MQLDescription   string
	TradeCode        termapi.TradeReturnCode
	TradeCodeString  string
	TradeDescription string
}

func newAPIError(e *termapi.Error) *APIError {
	return &APIError{
		Code:             e.Code,
		Message:          e.Message,
		Description:      e.Description,
		MQLCode:          e.MqlErrorCode,
		MQLDescription:   e.MqlErrorDescription,
		TradeCode:        termapi.TradeReturnCode(e.MqlErrorTradeCode),
		TradeCodeString:  e.MqlErrorTradeCodeAsString,
		TradeDescription: e.MqlErrorTradeDescription,
	}
}

func (e *APIError) Error() string {
	var b strings.Builder
	b.WriteString("terminal: ")
	if e.Code != "" {
		b.WriteString(e.Code)
		b.WriteString(": ")
	}
	b.WriteString(e.Message)
	if e.MQLCode != 0 {
		fmt.Fprintf(&b, " (mql %d %s)", e.MQLCode, e.MQLDescription)
	}
	if e.TradeCode != 0 {
		fmt.Fprintf(&b, " (trade %d %s)", e.TradeCode, e.TradeDescription)
	}
	return b.String()
}

// IsTradeCode 判断错误是否携带指定的交易返回码。
func (e *APIError) IsTradeCode(code termapi.TradeReturnCode) bool {
	return e.TradeCode == code
}

// TerminalNotFound 判断服务端是否已丢失终端实例。
func (e *APIError) TerminalNotFound() bool {
	return e.Code == termapi.ErrCodeTerminalInstanceNotFound || e.Code == termapi.ErrCodeTerminalRegistryNotFound
}

// AsAPIError 从错误链中取出 APIError。
func AsAPIError(err error) (*APIError, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}

// IsUnavailable 判断是否为传输层 Unavailable，该类错误会触发重连。
func IsUnavailable(err error) bool {
	return err != nil && status.Code(err) == codes.Unavailable
}

func isCancelled(ctx context.Context) bool {
	return errors.Is(ctx.Err(), context.Canceled)
}

func cancelledError(ctx context.Context) error {
	return fmt.Errorf("%w: %w", ErrCancelled, context.Cause(ctx))
}

// contextError 区分取消与截止时间到期，后者以 DeadlineExceeded 状态返回。
func contextError(ctx context.Context) error {
	if isCancelled(ctx) {
		return cancelledError(ctx)
	}
	return status.FromContextError(ctx.Err()).Err()
}

// hasMessage 只有携带错误信息的信封才视为失败。
func hasMessage(e *termapi.Error) bool {
	return e.GetMessage() != ""
}
