package api

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/Palymer/api-lava-ru/internal/types"
)

// CreateInvoice creates a payment invoice for the given wallet.
func CreateInvoice(ctx context.Context, httpClient *http.Client, baseURL string, p types.InvoiceParams) (json.RawMessage, error) {
	if err := types.ValidateRequired(p.WalletTo, "wallet_to"); err != nil {
		return nil, err
	}
	if err := types.ValidateAmount(p.Sum, "sum"); err != nil {
		return nil, err
	}
	return call(ctx, httpClient, http.MethodPost, baseURL, "/invoice/create", p)
}

// GetInvoice retrieves an invoice by its ID or the merchant's order ID.
// The service expects at least one identifier; that is not enforced here.
func GetInvoice(ctx context.Context, httpClient *http.Client, baseURL string, p types.InvoiceInfoParams) (json.RawMessage, error) {
	return call(ctx, httpClient, http.MethodPost, baseURL, "/invoice/info", p)
}

// SetInvoiceWebhook registers the URL the service notifies about invoice
// status changes.
func SetInvoiceWebhook(ctx context.Context, httpClient *http.Client, baseURL, url string) (json.RawMessage, error) {
	if err := types.ValidateRequired(url, "url"); err != nil {
		return nil, err
	}
	body := struct {
		URL string `json:"url"`
	}{URL: url}
	return call(ctx, httpClient, http.MethodPost, baseURL, "/invoice/set-webhook", body)
}

// GenerateInvoiceSecretKey issues a new secret key for webhook signature
// verification.
func GenerateInvoiceSecretKey(ctx context.Context, httpClient *http.Client, baseURL string) (json.RawMessage, error) {
	return call(ctx, httpClient, http.MethodGet, baseURL, "/invoice/generate-secret-key", nil)
}
