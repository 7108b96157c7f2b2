package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"mt5-term/internal/app"
	"mt5-term/internal/config"
	"mt5-term/internal/log"
)

var (
	configPath string

	cfg    *config.Config
	logger *zap.Logger
)

// rootCmd 根命令
var rootCmd = &cobra.Command{
	Use:   "mt5term",
	Short: "MT5 终端 gRPC 客户端",
	Long: `mt5term 通过 gRPC 连接远程 MT5 终端。

会话丢失或服务不可用时客户端自动重新握手，订阅会从当前时刻重新开始。`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(configPath)
		if err != nil {
			return fmt.Errorf("加载配置失败: %w", err)
		}
		logger, err = log.NewLogger(cfg.Logging)
		if err != nil {
			return fmt.Errorf("初始化日志失败: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

// Execute 执行根命令
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "错误: %v\n", err)
		stop()
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "配置文件路径，默认使用 configs/config.yaml")

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(accountCmd)
	rootCmd.AddCommand(quoteCmd)
	rootCmd.AddCommand(ticksCmd)
}

// withClient 建立会话，执行 fn 后释放终端实例。
func withClient(ctx context.Context, fn func(*app.Client) error) error {
	client, err := app.Open(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := client.Close(context.WithoutCancel(ctx)); closeErr != nil {
			logger.Warn("断开终端失败", zap.Error(closeErr))
		}
	}()
	return fn(client)
}
