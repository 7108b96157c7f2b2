package termapi

// 这两个错误码表示终端实例已被服务端回收，需要重新握手。
const (
	ErrCodeTerminalInstanceNotFound = "TERMINAL_INSTANCE_NOT_FOUND"
	ErrCodeTerminalRegistryNotFound = "TERMINAL_REGISTRY_TERMINAL_NOT_FOUND"
)

// MetadataSessionKey 是附带会话令牌的 metadata 键。
const MetadataSessionKey = "id"

// Error 为响应信封中的结构化错误。
type Error struct {
	Code                      string `json:"error_code,omitempty"`
	Message                   string `json:"error_message,omitempty"`
	Description               string `json:"description,omitempty"`
	MqlErrorCode              int32  `json:"mql_error_code,omitempty"`
	MqlErrorDescription       string `json:"mql_error_description,omitempty"`
	MqlErrorTradeCode         uint32 `json:"mql_error_trade_code,omitempty"`
	MqlErrorTradeDescription  string `json:"mql_error_trade_description,omitempty"`
	MqlErrorTradeCodeAsString string `json:"mql_error_trade_code_string,omitempty"`
}

// GetCode 允许对 nil 调用。
func (e *Error) GetCode() string {
	if e == nil {
		return ""
	}
	return e.Code
}

// GetMessage 允许对 nil 调用。
func (e *Error) GetMessage() string {
	if e == nil {
		return ""
	}
	return e.Message
}

// IsTerminalNotFound 判断错误是否意味着服务端已丢失终端实例。
func (e *Error) IsTerminalNotFound() bool {
	switch e.GetCode() {
	case ErrCodeTerminalInstanceNotFound, ErrCodeTerminalRegistryNotFound:
		return true
	default:
		return false
	}
}

// Reply 是所有响应共用的信封: 要么携带 Data，要么携带 Error。
type Reply[D any] struct {
	Data  *D     `json:"data,omitempty"`
	Error *Error `json:"error,omitempty"`
}

// GetData 返回负载。
func (r *Reply[D]) GetData() *D {
	if r == nil {
		return nil
	}
	return r.Data
}

// GetError 返回信封错误。
func (r *Reply[D]) GetError() *Error {
	if r == nil {
		return nil
	}
	return r.Error
}
