package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"mt5-term/internal/app"
)

var ticksLimit int

var ticksCmd = &cobra.Command{
	Use:   "ticks SYMBOL...",
	Short: "打印实时报价，直到中断或达到数量上限",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withClient(cmd.Context(), func(client *app.Client) error {
			n := 0
			for data, err := range client.OnSymbolTick(cmd.Context(), args) {
				if err != nil {
					return err
				}
				t := data.SymbolTick
				fmt.Printf("%s  %-10s bid %.5f  ask %.5f\n", t.Time.Format(time.TimeOnly), t.Symbol, t.Bid, t.Ask)
				n++
				if ticksLimit > 0 && n >= ticksLimit {
					break
				}
			}
			return nil
		})
	},
}

func init() {
	ticksCmd.Flags().IntVarP(&ticksLimit, "limit", "n", 0, "收到指定数量后退出，0 表示不限")
}
