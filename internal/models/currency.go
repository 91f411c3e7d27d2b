package models

import "fmt"

// Currency represents a currency with its code and English display name.
type Currency struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

// GetName returns the currency name together with its code.
func (c Currency) GetName() string {
	return fmt.Sprintf("%s (%s)", c.Name, c.Code)
}
