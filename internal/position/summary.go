package position

import (
	"math"
	"sort"

	"mt5-term/internal/termapi"
)

const (
	SideLong  = "LONG"
	SideShort = "SHORT"
	SideFlat  = ""
)

// 持仓方向，对应 POSITION_TYPE_*。
const (
	positionTypeBuy  int32 = 0
	positionTypeSell int32 = 1
)

// Summary 为单个品种的净持仓。
type Summary struct {
	Symbol         string  `json:"symbol"`
	Side           string  `json:"side"`
	NetVolume      float64 `json:"net_volume"`
	GrossVolume    float64 `json:"gross_volume"`
	EntryPrice     float64 `json:"entry_price"`
	Profit         float64 `json:"profit"`
	ProfitPercent  float64 `json:"profit_percent"`
	PositionCount  int     `json:"position_count"`
	OldestOpenUnix int64   `json:"oldest_open_unix"`
}

// Aggregate 按品种合并持仓，结果按品种名排序。equity 不为正时不计算收益率。
func Aggregate(positions []termapi.PositionInfo, equity float64) []Summary {
	if len(positions) == 0 {
		return nil
	}

	bySymbol := make(map[string]*Summary)
	entryWeighted := make(map[string]float64)

	for _, p := range positions {
		if p.Volume == 0 {
			continue
		}
		s, ok := bySymbol[p.Symbol]
		if !ok {
			s = &Summary{Symbol: p.Symbol}
			bySymbol[p.Symbol] = s
		}

		switch p.Type {
		case positionTypeBuy:
			s.NetVolume += p.Volume
		case positionTypeSell:
			s.NetVolume -= p.Volume
		}
		s.GrossVolume += p.Volume
		s.Profit += p.Profit + p.Swap + p.Commission
		s.PositionCount++
		entryWeighted[p.Symbol] += p.Volume * p.PriceOpen

		if open := p.OpenTime.Unix(); !p.OpenTime.IsZero() && (s.OldestOpenUnix == 0 || open < s.OldestOpenUnix) {
			s.OldestOpenUnix = open
		}
	}

	out := make([]Summary, 0, len(bySymbol))
	for symbol, s := range bySymbol {
		if s.GrossVolume > 0 {
			s.EntryPrice = entryWeighted[symbol] / s.GrossVolume
		}
		s.Side = sideOf(s.NetVolume)
		if equity > 0 {
			s.ProfitPercent = s.Profit / equity * 100
		}
		out = append(out, *s)
	}

	sort.Slice(out, func(i, j int) bool { return out[i].Symbol < out[j].Symbol })
	return out
}

func sideOf(net float64) string {
	// 对冲账户多空等量时视为无方向。
	if math.Abs(net) < 1e-9 {
		return SideFlat
	}
	if net > 0 {
		return SideLong
	}
	return SideShort
}
