package api

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/Palymer/api-lava-ru/internal/types"
)

// CreateTransfer moves funds between two wallets of the account.
func CreateTransfer(ctx context.Context, httpClient *http.Client, baseURL string, p types.TransferParams) (json.RawMessage, error) {
	if err := types.ValidateRequired(p.AccountFrom, "account_from"); err != nil {
		return nil, err
	}
	if err := types.ValidateRequired(p.AccountTo, "account_to"); err != nil {
		return nil, err
	}
	if err := types.ValidateAmount(p.Amount, "amount"); err != nil {
		return nil, err
	}
	return call(ctx, httpClient, http.MethodPost, baseURL, "/transfer/create", p)
}

// GetTransfer retrieves a transfer by its ID.
func GetTransfer(ctx context.Context, httpClient *http.Client, baseURL, id string) (json.RawMessage, error) {
	if err := types.ValidateRequired(id, "id"); err != nil {
		return nil, err
	}
	return call(ctx, httpClient, http.MethodPost, baseURL, "/transfer/info", idBody{ID: id})
}
