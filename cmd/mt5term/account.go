package main

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"mt5-term/internal/app"
	"mt5-term/internal/position"
)

var accountJSON bool

var accountCmd = &cobra.Command{
	Use:   "account",
	Short: "查看账户概览与按品种合并的持仓",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withClient(cmd.Context(), func(client *app.Client) error {
			snap, err := position.NewManager(client, logger).FetchSnapshot(cmd.Context())
			if err != nil {
				return err
			}
			if accountJSON {
				enc := json.NewEncoder(os.Stdout)
				enc.SetIndent("", "  ")
				return enc.Encode(snap)
			}
			return printSnapshot(snap)
		})
	},
}

func init() {
	accountCmd.Flags().BoolVar(&accountJSON, "json", false, "以 JSON 输出")
}

func printSnapshot(snap position.Snapshot) error {
	b := snap.Balance
	fmt.Printf("账户 %d  余额 %.2f %s  净值 %.2f  浮动盈亏 %.2f  杠杆 1:%d\n",
		b.Login, b.Balance, b.Currency, b.Equity, b.Floating, b.Leverage)
	fmt.Printf("挂单 %d 笔\n", len(snap.PendingOrders))
	if len(snap.Summaries) == 0 {
		fmt.Println("无持仓")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "SYMBOL\tSIDE\tNET\tGROSS\tENTRY\tPROFIT\tPROFIT%")
	for _, s := range snap.Summaries {
		side := s.Side
		if side == position.SideFlat {
			side = "-"
		}
		fmt.Fprintf(w, "%s\t%s\t%.2f\t%.2f\t%.5f\t%.2f\t%.2f\n",
			s.Symbol, side, s.NetVolume, s.GrossVolume, s.EntryPrice, s.Profit, s.ProfitPercent)
	}
	return w.Flush()
}
