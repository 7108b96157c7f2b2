package termapi

// ConnectRequest 通过主机与端口连接交易服务器。
type ConnectRequest struct {
	User                      uint64 `json:"user"`
	Password                  string `json:"password"`
	Host                      string `json:"host"`
	Port                      int32  `json:"port"`
	BaseChartSymbol           string `json:"base_chart_symbol"`
	WaitForTerminalIsAlive    bool   `json:"wait_for_terminal_is_alive"`
	TerminalReadinessTimeoutS int32  `json:"terminal_readiness_waiting_timeout_seconds"`
}

// ConnectExRequest 通过集群（服务器）名称连接。
type ConnectExRequest struct {
	User                      uint64 `json:"user"`
	Password                  string `json:"password"`
	MtClusterName             string `json:"mt_cluster_name"`
	BaseChartSymbol           string `json:"base_chart_symbol"`
	TerminalReadinessTimeoutS int32  `json:"terminal_readiness_waiting_timeout_seconds"`
}

// ConnectData 为握手成功后服务端签发的终端实例标识。
type ConnectData struct {
	TerminalInstanceGUID string `json:"terminal_instance_guid"`
}

// DisconnectRequest 释放当前终端实例。
type DisconnectRequest struct{}

// DisconnectData 回显被释放的终端实例。
type DisconnectData struct {
	TerminalInstanceGUID string `json:"terminal_instance_guid"`
}

// CheckConnectRequest 询问终端存活状态。
type CheckConnectRequest struct{}

// CheckConnectData 终端健康状态。
type CheckConnectData struct {
	IsAlive bool `json:"is_alive"`
}
