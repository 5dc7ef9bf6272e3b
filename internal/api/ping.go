package api

import (
	"context"
	"encoding/json"
	"net/http"
)

// Ping checks that the API is reachable and the key is accepted.
func Ping(ctx context.Context, httpClient *http.Client, baseURL string) (json.RawMessage, error) {
	return call(ctx, httpClient, http.MethodGet, baseURL, "/test/ping", nil)
}
