package app

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"mt5-term/internal/journal"
)

type sessionView struct {
	Connected   bool      `json:"connected"`
	Kind        string    `json:"kind"`
	ServerName  string    `json:"server_name,omitempty"`
	Host        string    `json:"host,omitempty"`
	Port        int       `json:"port,omitempty"`
	BaseSymbol  string    `json:"base_symbol,omitempty"`
	ConnectedAt time.Time `json:"connected_at,omitempty"`
}

func newMonitorHandler(o *orchestrator, logger *zap.Logger) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/events", func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		limit := 200
		if qs := q.Get("limit"); qs != "" {
			if v, err := strconv.Atoi(qs); err == nil && v > 0 {
				if v > 1000 {
					v = 1000
				}
				limit = v
			}
		}

		eventType := journal.EventType("")
		if typ := strings.TrimSpace(q.Get("type")); typ != "" {
			eventType = journal.EventType(strings.ToLower(typ))
		}

		events, err := o.journal.ListEvents(r.Context(), eventType, limit)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		writeJSON(w, events, logger)
	})

	// 会话令牌不对外暴露。
	mux.HandleFunc("/session", func(w http.ResponseWriter, _ *http.Request) {
		s := o.client.Session()
		writeJSON(w, sessionView{
			Connected:   s.Connected(),
			Kind:        s.Kind.String(),
			ServerName:  s.ServerName,
			Host:        s.Host,
			Port:        s.Port,
			BaseSymbol:  s.BaseSymbol,
			ConnectedAt: s.ConnectedAt,
		}, logger)
	})

	mux.Handle("/metrics", o.metrics.Handler())
	return mux
}

func writeJSON(w http.ResponseWriter, v interface{}, logger *zap.Logger) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Warn("写入监控响应失败", zap.Error(err))
	}
}

func startMonitorServer(ctx context.Context, handler http.Handler, port int, logger *zap.Logger) error {
	addr := fmt.Sprintf(":%d", port)
	lis, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("监听监控端口失败 %s: %w", addr, err)
	}
	srv := &http.Server{Addr: addr, Handler: handler, ReadHeaderTimeout: 5 * time.Second}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Warn("关闭监控服务失败", zap.Error(err))
		}
	}()

	go func() {
		if err := srv.Serve(lis); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("监控服务异常", zap.Error(err))
		}
	}()

	logger.Info("监控接口已启动", zap.String("addr", addr))
	return nil
}
