package model

import "time"

// Instrument maps a display name to a market-data provider symbol.
type Instrument struct {
	Name   string
	Symbol string
}

const (
	// DomesticInstrument is the column divided by the FX rate when the
	// USD-base toggle is on.
	DomesticInstrument = "TIGER 200 (KR)"
	// FXInstrument is the USD/KRW rate column. It is an input to the
	// conversion, never a charted instrument.
	FXInstrument = "USD/KRW"
)

func DefaultInstruments() []Instrument {
	return []Instrument{
		{Name: DomesticInstrument, Symbol: "102110.KS"},
		{Name: "QQQ (US Nasdaq)", Symbol: "QQQ"},
		{Name: "SPY (US S&P500)", Symbol: "SPY"},
		{Name: FXInstrument, Symbol: "KRW=X"},
	}
}

// PriceTable is N named daily series aligned on one shared date axis.
// Columns values are kept in lockstep with Dates; Names preserves column
// order for rendering.
type PriceTable struct {
	Dates   []time.Time          `json:"dates"`
	Names   []string             `json:"names"`
	Columns map[string][]float64 `json:"columns"`
}

// InstrumentValue is the final "$1,000 invested" valuation of one instrument
// over the selected window.
type InstrumentValue struct {
	Name  string
	Final float64
	Delta float64
}

// PerformanceReport is the normalized comparison view served to the chart.
type PerformanceReport struct {
	Window  string
	USDBase bool
	Table   PriceTable
	Metrics []InstrumentValue
}
