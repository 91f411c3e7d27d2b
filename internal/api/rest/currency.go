package rest

import (
	"github.com/VladPetriv/currency_names/internal/models"
	"github.com/VladPetriv/currency_names/pkg/errs"
	"github.com/valyala/fasthttp"
)

type errorResponse struct {
	Message string `json:"message"`
}

type listCurrenciesResponse struct {
	Currencies []models.Currency `json:"currencies"`
}

func (s *Server) health(ctx *fasthttp.RequestCtx) {
	writeJSON(ctx, fasthttp.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) listCurrencies(ctx *fasthttp.RequestCtx) {
	currencies := s.currencyService.ListCurrencies(ctx)

	writeJSON(ctx, fasthttp.StatusOK, listCurrenciesResponse{Currencies: currencies})
}

func (s *Server) getCurrency(ctx *fasthttp.RequestCtx) {
	logger := s.logger.With().Str("name", "rest.getCurrency").Logger()

	code, _ := ctx.UserValue("code").(string)

	currency, err := s.currencyService.GetCurrency(ctx, code)
	if err != nil {
		if errs.IsExpected(err) {
			writeJSON(ctx, fasthttp.StatusNotFound, errorResponse{Message: err.Error()})
			return
		}

		logger.Error().Err(err).Str("code", code).Msg("get currency")
		writeJSON(ctx, fasthttp.StatusInternalServerError, errorResponse{Message: "internal error"})
		return
	}

	writeJSON(ctx, fasthttp.StatusOK, currency)
}
