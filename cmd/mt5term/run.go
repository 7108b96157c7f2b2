package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"mt5-term/internal/app"
	"mt5-term/internal/store"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "连接终端并持续记录账户快照与订阅数据",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		sqliteStore, err := store.Open(cfg.Database)
		if err != nil {
			return fmt.Errorf("初始化数据库失败: %w", err)
		}
		defer func() {
			if closeErr := sqliteStore.Close(); closeErr != nil {
				logger.Warn("关闭数据库失败", zap.Error(closeErr))
			}
		}()

		if err := app.New(cfg, logger, sqliteStore).Run(cmd.Context()); err != nil {
			logger.Error("系统运行异常", zap.Error(err))
			return err
		}

		logger.Info("系统已安全退出")
		return nil
	},
}
