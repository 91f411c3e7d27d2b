package currency

import (
	"maps"
	"slices"
)

// names maps a currency code to its English display name.
// The table is never modified after package initialization.
var names = map[string]string{
	"USD": "US Dollar",
	"AUD": "Australian Dollar",
	"IDR": "Indonesian Rupiah",
	"EUR": "Euro",
	"JPY": "Japanese Yen",
	"CHF": "Swiss Franc",
	"GBP": "British Pound Sterling",
	"CNY": "Chinese Yuan",
	"CAD": "Canadian Dollar",
}

// Name returns the display name of the currency with the given code.
// The match is exact and case-sensitive, the second value reports whether the code is known.
func Name(code string) (string, bool) {
	name, ok := names[code]
	return name, ok
}

// NameOrCode returns the display name of the currency or the code itself when it's unknown.
func NameOrCode(code string) string {
	name, ok := names[code]
	if !ok {
		return code
	}

	return name
}

// Codes returns all known currency codes in ascending order.
func Codes() []string {
	return slices.Sorted(maps.Keys(names))
}

// All returns a copy of the whole table.
func All() map[string]string {
	return maps.Clone(names)
}

// Count returns the number of known currencies.
func Count() int {
	return len(names)
}
