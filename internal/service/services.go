package service

import (
	"context"

	"github.com/VladPetriv/currency_names/internal/models"
	"github.com/VladPetriv/currency_names/pkg/errs"
)

// Services contains all services.
type Services struct {
	Currency CurrencyService
	Event    EventService
}

// ErrCurrencyNotFound happens when the requested code is not in the currency table.
var ErrCurrencyNotFound = errs.New("currency not found")

// CurrencyService provides read access to the currency names table.
type CurrencyService interface {
	// GetCurrency returns the currency with the given code.
	// The lookup is case-sensitive, ErrCurrencyNotFound is returned for unknown codes.
	GetCurrency(ctx context.Context, code string) (*models.Currency, error)
	// ListCurrencies returns all currencies ordered by their display name.
	ListCurrencies(ctx context.Context) []models.Currency
}

// EventService provides functionality for receiving updates from the messenger and reacting on them.
type EventService interface {
	// Listen receives updates until ctx is done.
	Listen(ctx context.Context)
}
