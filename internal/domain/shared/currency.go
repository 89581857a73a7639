package shared

// Currency is a consumable orb type used to modify items
type Currency string

const (
	// CurrencyExalted adds one random affix to a rare item
	CurrencyExalted Currency = "exalted"

	// CurrencyChaos rerolls all affixes on a rare item
	CurrencyChaos Currency = "chaos"

	// CurrencyDivine rerolls affix values in place, keeping affix and tier
	CurrencyDivine Currency = "divine"
)

// CurrencyOrder is the fixed set of currency types; every player balance map
// carries all of them
var CurrencyOrder = []Currency{
	CurrencyExalted,
	CurrencyChaos,
	CurrencyDivine,
}

var currencyNames = map[Currency]string{
	CurrencyExalted: "Exalted Orb",
	CurrencyChaos:   "Chaos Orb",
	CurrencyDivine:  "Divine Orb",
}

// Name returns the display name for the currency
func (c Currency) Name() string {
	if name, ok := currencyNames[c]; ok {
		return name
	}
	return string(c)
}

// Valid reports whether the currency is a known orb type
func (c Currency) Valid() bool {
	_, ok := currencyNames[c]
	return ok
}
