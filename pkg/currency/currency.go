// Package currency resolves static currency metadata (symbol, display name,
// ISO code) from an embedded reference table. It has no network dependency
// and is independent of the rate client.
package currency

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"sync"
)

//go:embed currencies.json
var rawTable []byte

// Info is one row of the reference table.
type Info struct {
	Code   string `json:"cc"`
	Symbol string `json:"symbol"`
	Name   string `json:"name"`
}

var (
	loadOnce sync.Once
	byCode   map[string]Info
	bySymbol map[string]Info
)

func load() {
	loadOnce.Do(func() {
		var table []Info
		if err := json.Unmarshal(rawTable, &table); err != nil {
			panic(fmt.Sprintf("currency: embedded table is malformed: %v", err))
		}

		byCode = make(map[string]Info, len(table))
		bySymbol = make(map[string]Info, len(table))
		for _, info := range table {
			byCode[info.Code] = info
			// later rows win on shared symbols: "$" resolves to USD, not ARS
			bySymbol[info.Symbol] = info
		}
	})
}

// SymbolFor returns the display symbol for an ISO code.
func SymbolFor(code string) (string, bool) {
	load()
	info, ok := byCode[code]
	return info.Symbol, ok
}

// NameFor returns the display name for an ISO code.
func NameFor(code string) (string, bool) {
	load()
	info, ok := byCode[code]
	return info.Name, ok
}

// CodeForSymbol returns the ISO code for a display symbol.
func CodeForSymbol(symbol string) (string, bool) {
	load()
	info, ok := bySymbol[symbol]
	return info.Code, ok
}

// Lookup returns the full table row for an ISO code.
func Lookup(code string) (Info, bool) {
	load()
	info, ok := byCode[code]
	return info, ok
}
