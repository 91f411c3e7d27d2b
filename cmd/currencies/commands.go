package main

import (
	"context"
	"fmt"

	"github.com/VladPetriv/currency_names/internal/service"
	"github.com/VladPetriv/currency_names/pkg/client"
	"github.com/VladPetriv/currency_names/pkg/currency"
	"github.com/VladPetriv/currency_names/pkg/logger"
	"github.com/urfave/cli/v2"
)

// createLookupCommand creates the 'lookup' command
func createLookupCommand() *cli.Command {
	return &cli.Command{
		Name:      "lookup",
		Usage:     "Print the display name of a currency",
		ArgsUsage: "CODE",
		Description: `Codes are matched exactly, so "usd" is not the same as "USD".

Examples:
  currencies lookup USD
  currencies --server http://localhost:8080 lookup JPY`,
		Action: func(c *cli.Context) error {
			code := c.Args().First()
			if code == "" {
				return cli.Exit("currency code is required", 2)
			}

			name, found, err := lookup(c.Context, c.String("server"), code)
			if err != nil {
				return fmt.Errorf("lookup currency: %w", err)
			}
			if !found {
				return cli.Exit(fmt.Sprintf("currency %s not found", code), 1)
			}

			fmt.Fprintln(c.App.Writer, name)
			return nil
		},
	}
}

// createListCommand creates the 'list' command
func createListCommand() *cli.Command {
	return &cli.Command{
		Name:  "list",
		Usage: "Print all known currencies ordered by name",
		Action: func(c *cli.Context) error {
			currencies, err := list(c.Context, c.String("server"))
			if err != nil {
				return fmt.Errorf("list currencies: %w", err)
			}

			for _, cur := range currencies {
				fmt.Fprintf(c.App.Writer, "%s\t%s\n", cur.Code, cur.Name)
			}

			return nil
		},
	}
}

func lookup(ctx context.Context, server, code string) (string, bool, error) {
	if server == "" {
		name, found := currency.Name(code)
		return name, found, nil
	}

	currencyClient := client.New(server)
	defer currencyClient.Close()

	return currencyClient.Lookup(ctx, code)
}

func list(ctx context.Context, server string) ([]client.Currency, error) {
	if server == "" {
		currencies := service.NewCurrency(logger.Nop()).ListCurrencies(ctx)

		result := make([]client.Currency, 0, len(currencies))
		for _, cur := range currencies {
			result = append(result, client.Currency{Code: cur.Code, Name: cur.Name})
		}

		return result, nil
	}

	currencyClient := client.New(server)
	defer currencyClient.Close()

	return currencyClient.List(ctx)
}
