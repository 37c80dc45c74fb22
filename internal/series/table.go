package series

import (
	"sort"
	"time"

	"github.com/euntae-kim/stock-ai-dashboard/internal/model"
	"github.com/euntae-kim/stock-ai-dashboard/pkg/market"
)

// Notional is the fixed reference investment amount that makes heterogeneous
// price series visually comparable.
const Notional = 1000.0

var windowDays = map[string]int{
	"1w":  7,
	"1m":  30,
	"3m":  90,
	"6m":  180,
	"12m": 365,
}

func WindowDays(window string) (int, bool) {
	days, ok := windowDays[window]
	return days, ok
}

func Windows() []string {
	return []string{"1w", "1m", "3m", "6m", "12m"}
}

// Align merges per-instrument bars onto one shared daily axis in the given
// column order, forward-filling gaps. Days before a series' first
// observation take that first observation so every column is fully
// populated. Instruments with no bars are omitted.
func Align(order []string, bars map[string][]market.Bar) *model.PriceTable {
	dateSet := make(map[time.Time]struct{})
	for _, bs := range bars {
		for _, b := range bs {
			dateSet[day(b.Date)] = struct{}{}
		}
	}

	dates := make([]time.Time, 0, len(dateSet))
	for d := range dateSet {
		dates = append(dates, d)
	}
	sort.Slice(dates, func(i, j int) bool { return dates[i].Before(dates[j]) })

	table := &model.PriceTable{
		Dates:   dates,
		Columns: make(map[string][]float64),
	}

	for _, name := range order {
		bs := bars[name]
		if len(bs) == 0 {
			continue
		}

		sorted := make([]market.Bar, len(bs))
		copy(sorted, bs)
		sort.Slice(sorted, func(i, j int) bool { return sorted[i].Date.Before(sorted[j].Date) })

		byDate := make(map[time.Time]float64, len(sorted))
		for _, b := range sorted {
			byDate[day(b.Date)] = b.Close
		}

		values := make([]float64, len(dates))
		last := sorted[0].Close
		for i, d := range dates {
			if v, ok := byDate[d]; ok {
				last = v
			}
			values[i] = last
		}

		table.Names = append(table.Names, name)
		table.Columns[name] = values
	}

	return table
}

// TrimWindow keeps the trailing days days of the table, measured back from
// the last available date (not from today).
func TrimWindow(t *model.PriceTable, days int) *model.PriceTable {
	if len(t.Dates) == 0 || days <= 0 {
		return clone(t)
	}

	cutoff := t.Dates[len(t.Dates)-1].AddDate(0, 0, -days)
	start := sort.Search(len(t.Dates), func(i int) bool {
		return !t.Dates[i].Before(cutoff)
	})

	out := &model.PriceTable{
		Dates:   append([]time.Time(nil), t.Dates[start:]...),
		Names:   append([]string(nil), t.Names...),
		Columns: make(map[string][]float64, len(t.Names)),
	}
	for _, name := range t.Names {
		out.Columns[name] = append([]float64(nil), t.Columns[name][start:]...)
	}
	return out
}

// ConvertToUSD divides the domestic column by the FX column element-wise.
// No-op when either column is missing. The input table is left untouched, so
// toggling conversion off is just serving the unconverted table.
func ConvertToUSD(t *model.PriceTable, domestic, fx string) *model.PriceTable {
	out := clone(t)

	domesticValues, haveDomestic := out.Columns[domestic]
	fxValues, haveFX := out.Columns[fx]
	if !haveDomestic || !haveFX {
		return out
	}

	converted := make([]float64, len(domesticValues))
	for i, v := range domesticValues {
		converted[i] = v / fxValues[i]
	}
	out.Columns[domestic] = converted
	return out
}

// Drop removes one column from the table, if present.
func Drop(t *model.PriceTable, name string) *model.PriceTable {
	out := &model.PriceTable{
		Dates:   append([]time.Time(nil), t.Dates...),
		Columns: make(map[string][]float64, len(t.Names)),
	}
	for _, n := range t.Names {
		if n == name {
			continue
		}
		out.Names = append(out.Names, n)
		out.Columns[n] = append([]float64(nil), t.Columns[n]...)
	}
	return out
}

// Normalize rescales every column to the value of the notional invested at
// the first date of the window. A zero first value is treated as 1 so the
// division is always defined. Multiplication before division keeps the
// ratios exact for integer-valued prices.
func Normalize(t *model.PriceTable, notional float64) *model.PriceTable {
	out := clone(t)

	for _, name := range out.Names {
		src := out.Columns[name]
		if len(src) == 0 {
			continue
		}

		first := src[0]
		if first == 0 {
			first = 1
		}

		values := make([]float64, len(src))
		for i, v := range src {
			values[i] = v * notional / first
		}
		out.Columns[name] = values
	}

	return out
}

func clone(t *model.PriceTable) *model.PriceTable {
	out := &model.PriceTable{
		Dates:   append([]time.Time(nil), t.Dates...),
		Names:   append([]string(nil), t.Names...),
		Columns: make(map[string][]float64, len(t.Names)),
	}
	for name, values := range t.Columns {
		out.Columns[name] = append([]float64(nil), values...)
	}
	return out
}

func day(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
