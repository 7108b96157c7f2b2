package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"mt5-term/internal/app"
)

var quoteCmd = &cobra.Command{
	Use:   "quote SYMBOL",
	Short: "查看品种最新报价",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		symbol := args[0]
		return withClient(cmd.Context(), func(client *app.Client) error {
			if _, err := client.SymbolSelect(cmd.Context(), symbol, true); err != nil {
				return err
			}
			tick, err := client.SymbolInfoTick(cmd.Context(), symbol)
			if err != nil {
				return err
			}
			fmt.Printf("%s  bid %.5f  ask %.5f  spread %.5f  %s\n",
				symbol, tick.Bid, tick.Ask, tick.Ask-tick.Bid, tick.Timestamp().Format(time.RFC3339Nano))
			return nil
		})
	},
}
