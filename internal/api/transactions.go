package api

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/Palymer/api-lava-ru/internal/types"
)

// ListTransactions retrieves the account's transactions matching the given
// filters. All filters are optional; the zero-value params request
// everything (the body is then an empty JSON object).
func ListTransactions(ctx context.Context, httpClient *http.Client, baseURL string, p types.TransactionListParams) (json.RawMessage, error) {
	return call(ctx, httpClient, http.MethodPost, baseURL, "/transactions/list", p)
}
