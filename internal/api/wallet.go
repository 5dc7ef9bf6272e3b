package api

import (
	"context"
	"encoding/json"
	"net/http"
)

// ListWallets retrieves the account's wallets and their balances.
func ListWallets(ctx context.Context, httpClient *http.Client, baseURL string) (json.RawMessage, error) {
	return call(ctx, httpClient, http.MethodGet, baseURL, "/wallet/list", nil)
}
