package service

import (
	"context"
	"slices"

	"github.com/VladPetriv/currency_names/internal/models"
	"github.com/VladPetriv/currency_names/pkg/currency"
	"github.com/VladPetriv/currency_names/pkg/logger"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

type currencyService struct {
	logger *logger.Logger
}

var _ CurrencyService = (*currencyService)(nil)

// NewCurrency returns new instance of currency service.
func NewCurrency(logger *logger.Logger) *currencyService {
	return &currencyService{
		logger: logger,
	}
}

func (c *currencyService) GetCurrency(_ context.Context, code string) (*models.Currency, error) {
	logger := c.logger.With().Str("name", "currencyService.GetCurrency").Logger()
	logger.Debug().Str("code", code).Msg("got args")

	name, ok := currency.Name(code)
	if !ok {
		logger.Info().Str("code", code).Msg("currency not found")
		return nil, ErrCurrencyNotFound
	}

	return &models.Currency{
		Code: code,
		Name: name,
	}, nil
}

func (c *currencyService) ListCurrencies(_ context.Context) []models.Currency {
	logger := c.logger.With().Str("name", "currencyService.ListCurrencies").Logger()

	all := currency.All()

	currencies := make([]models.Currency, 0, len(all))
	for code, name := range all {
		currencies = append(currencies, models.Currency{
			Code: code,
			Name: name,
		})
	}

	// Collator isn't safe for concurrent use, so it's created per call.
	collator := collate.New(language.English)
	slices.SortFunc(currencies, func(a, b models.Currency) int {
		if cmp := collator.CompareString(a.Name, b.Name); cmp != 0 {
			return cmp
		}

		return collator.CompareString(a.Code, b.Code)
	})

	logger.Debug().Int("count", len(currencies)).Msg("listed currencies")
	return currencies
}
