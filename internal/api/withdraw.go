package api

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/Palymer/api-lava-ru/internal/types"
)

// CreateWithdrawal requests a payout from a wallet to an external target.
func CreateWithdrawal(ctx context.Context, httpClient *http.Client, baseURL string, p types.WithdrawalParams) (json.RawMessage, error) {
	if err := types.ValidateRequired(p.Account, "account"); err != nil {
		return nil, err
	}
	if err := types.ValidateAmount(p.Amount, "amount"); err != nil {
		return nil, err
	}
	if err := types.ValidateRequired(p.Service, "service"); err != nil {
		return nil, err
	}
	if err := types.ValidateRequired(p.WalletTo, "wallet_to"); err != nil {
		return nil, err
	}
	return call(ctx, httpClient, http.MethodPost, baseURL, "/withdraw/create", p)
}

// GetWithdrawal retrieves a withdrawal by its ID.
func GetWithdrawal(ctx context.Context, httpClient *http.Client, baseURL, id string) (json.RawMessage, error) {
	if err := types.ValidateRequired(id, "id"); err != nil {
		return nil, err
	}
	return call(ctx, httpClient, http.MethodPost, baseURL, "/withdraw/info", idBody{ID: id})
}
