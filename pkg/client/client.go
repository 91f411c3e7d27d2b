package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"resty.dev/v3"
)

// Currency represents a currency returned by the currency names API.
type Currency struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

type errorResponse struct {
	Message string `json:"message"`
}

// currencyNotFoundMessage is the message the API sends for an unknown currency code.
// Any other 404 means the request never reached the currency route.
const currencyNotFoundMessage = "currency not found"

type listCurrenciesResponse struct {
	Currencies []Currency `json:"currencies"`
}

// Client is a client of the currency names HTTP API.
type Client struct {
	httpClient *resty.Client
}

// New creates a new instance of currency names api client.
func New(baseURL string) *Client {
	httpClient := resty.New().
		SetBaseURL(baseURL).
		SetHeader("Accept", "application/json")

	return &Client{
		httpClient: httpClient,
	}
}

// Lookup returns the display name of the currency with the given code.
// The second value is false when the API doesn't know the code.
func (c *Client) Lookup(ctx context.Context, code string) (string, bool, error) {
	// An empty path segment would hit the list route instead of a single currency.
	if code == "" {
		return "", false, nil
	}

	var result Currency

	response, err := c.httpClient.R().
		SetContext(ctx).
		SetPathParam("code", code).
		SetResult(&result).
		Get("/currencies/{code}")
	if err != nil {
		return "", false, fmt.Errorf("send lookup currency request: %w", err)
	}

	switch response.StatusCode() {
	case http.StatusOK:
		if result.Code != code || result.Name == "" {
			return "", false, nil
		}

		return result.Name, true, nil
	case http.StatusNotFound:
		var errResult errorResponse
		err := json.Unmarshal([]byte(response.String()), &errResult)
		if err != nil || errResult.Message != currencyNotFoundMessage {
			return "", false, fmt.Errorf("could not lookup currency(statusCode: %d, body:%s)", response.StatusCode(), response.String())
		}

		return "", false, nil
	default:
		return "", false, fmt.Errorf("could not lookup currency(statusCode: %d, body:%s)", response.StatusCode(), response.String())
	}
}

// List returns all currencies known to the API ordered by name.
func (c *Client) List(ctx context.Context) ([]Currency, error) {
	var result listCurrenciesResponse

	response, err := c.httpClient.R().
		SetContext(ctx).
		SetResult(&result).
		Get("/currencies")
	if err != nil {
		return nil, fmt.Errorf("send list currencies request: %w", err)
	}
	if response.StatusCode() != http.StatusOK {
		return nil, fmt.Errorf("could not list currencies(statusCode: %d, body:%s)", response.StatusCode(), response.String())
	}

	return result.Currencies, nil
}

// Close releases the underlying http client resources.
func (c *Client) Close() error {
	return c.httpClient.Close()
}
