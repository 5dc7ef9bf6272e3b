package lava

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/Palymer/api-lava-ru/internal/api"
)

// DefaultBaseURL is the provider's production host.
const DefaultBaseURL = "https://api.lava.ru"

// --------------------------------------------------------------------
// Client core
// --------------------------------------------------------------------

// Client is a typed wrapper around the Lava wallet API. It is immutable
// after construction and safe for concurrent use; every operation is an
// independent single-shot request.
type Client struct {
	baseURL string
	apiKey  string
	http    *http.Client
}

// New constructs a Client for the given API key. The base URL is fixed to
// the production host; additional knobs can be set via functional options.
// No network activity occurs at construction.
func New(apiKey string, opts ...Option) *Client {
	if apiKey == "" {
		panic("apiKey cannot be empty")
	}

	c := &Client{
		baseURL: DefaultBaseURL,
		apiKey:  apiKey,
		http:    &http.Client{Timeout: 30 * time.Second},
	}

	// Auto-enable debug via env variable without changing code.
	if debugLoggingRequested() {
		opts = append(opts, WithDebugLogging(true))
	}

	for _, opt := range opts {
		if err := opt(c); err != nil {
			panic(err)
		}
	}

	// Wrap the transport so every request carries the Authorization header.
	c.wrapTransportWithAPIKey()

	return c
}

// wrapTransportWithAPIKey wraps the HTTP client's transport to add the
// Authorization header to all requests using the configured API key.
func (c *Client) wrapTransportWithAPIKey() {
	baseTransport := c.http.Transport
	if baseTransport == nil {
		baseTransport = http.DefaultTransport
	}
	c.http.Transport = &apiKeyTransport{
		base:   baseTransport,
		apiKey: c.apiKey,
	}
}

// apiKeyTransport wraps an http.RoundTripper to add the Authorization
// header. The provider expects the raw key, with no scheme prefix.
type apiKeyTransport struct {
	base   http.RoundTripper
	apiKey string
}

func (t *apiKeyTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	// Clone the request to avoid modifying the original.
	cloned := req.Clone(req.Context())
	cloned.Header.Set("Authorization", t.apiKey)
	return t.base.RoundTrip(cloned)
}

// --------------------------------------------------------------------
// Service operations - delegated to internal/api
// --------------------------------------------------------------------

// Ping checks API availability and key validity.
func (c *Client) Ping(ctx context.Context) (json.RawMessage, error) {
	res, err := api.Ping(ctx, c.http, c.baseURL)
	observe("ping", err)
	return res, err
}

// --------------------------------------------------------------------
// Wallet operations
// --------------------------------------------------------------------

// ListWallets returns the account's wallets and balances.
func (c *Client) ListWallets(ctx context.Context) (json.RawMessage, error) {
	res, err := api.ListWallets(ctx, c.http, c.baseURL)
	observe("wallet_list", err)
	return res, err
}

// --------------------------------------------------------------------
// Withdrawal operations
// --------------------------------------------------------------------

// CreateWithdrawal requests a payout to an external wallet.
func (c *Client) CreateWithdrawal(ctx context.Context, p WithdrawalParams) (json.RawMessage, error) {
	res, err := api.CreateWithdrawal(ctx, c.http, c.baseURL, p)
	observe("withdraw_create", err)
	return res, err
}

// GetWithdrawal retrieves a withdrawal by ID.
func (c *Client) GetWithdrawal(ctx context.Context, id string) (json.RawMessage, error) {
	res, err := api.GetWithdrawal(ctx, c.http, c.baseURL, id)
	observe("withdraw_info", err)
	return res, err
}

// --------------------------------------------------------------------
// Transfer operations
// --------------------------------------------------------------------

// CreateTransfer moves funds between two wallets of the account.
func (c *Client) CreateTransfer(ctx context.Context, p TransferParams) (json.RawMessage, error) {
	res, err := api.CreateTransfer(ctx, c.http, c.baseURL, p)
	observe("transfer_create", err)
	return res, err
}

// GetTransfer retrieves a transfer by ID.
func (c *Client) GetTransfer(ctx context.Context, id string) (json.RawMessage, error) {
	res, err := api.GetTransfer(ctx, c.http, c.baseURL, id)
	observe("transfer_info", err)
	return res, err
}

// --------------------------------------------------------------------
// Transaction operations
// --------------------------------------------------------------------

// ListTransactions returns the account's transactions matching the filters.
func (c *Client) ListTransactions(ctx context.Context, p TransactionListParams) (json.RawMessage, error) {
	res, err := api.ListTransactions(ctx, c.http, c.baseURL, p)
	observe("transactions_list", err)
	return res, err
}

// --------------------------------------------------------------------
// Invoice operations
// --------------------------------------------------------------------

// CreateInvoice creates a payment invoice.
func (c *Client) CreateInvoice(ctx context.Context, p InvoiceParams) (json.RawMessage, error) {
	res, err := api.CreateInvoice(ctx, c.http, c.baseURL, p)
	observe("invoice_create", err)
	return res, err
}

// GetInvoice retrieves an invoice by its ID or the merchant's order ID.
func (c *Client) GetInvoice(ctx context.Context, p InvoiceInfoParams) (json.RawMessage, error) {
	res, err := api.GetInvoice(ctx, c.http, c.baseURL, p)
	observe("invoice_info", err)
	return res, err
}

// SetInvoiceWebhook registers the invoice status notification URL.
func (c *Client) SetInvoiceWebhook(ctx context.Context, url string) (json.RawMessage, error) {
	res, err := api.SetInvoiceWebhook(ctx, c.http, c.baseURL, url)
	observe("invoice_set_webhook", err)
	return res, err
}

// GenerateInvoiceSecretKey issues a new webhook signature secret key.
func (c *Client) GenerateInvoiceSecretKey(ctx context.Context) (json.RawMessage, error) {
	res, err := api.GenerateInvoiceSecretKey(ctx, c.http, c.baseURL)
	observe("invoice_generate_secret_key", err)
	return res, err
}
