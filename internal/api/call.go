package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/Palymer/api-lava-ru/internal/types"
)

// call is the shared execution routine behind every endpoint function.
// It builds the full URL, serializes the body (nil means no body at all,
// which is how every GET endpoint is issued), sends the request, and
// normalizes the outcome:
//
//   - the provider's error envelope ({"status":"error","code":...,"message":...})
//     becomes a remote-kind APIError with message "<code>: <message>";
//   - network failures become transport-kind APIErrors;
//   - everything else (request construction, malformed response JSON)
//     becomes a local-kind APIError.
//
// Any other JSON payload, object or not, is a success and is returned
// verbatim. The HTTP status code is deliberately not inspected: error
// detection keys on the envelope alone.
func call(ctx context.Context, httpClient *http.Client, method, baseURL, path string, body any) (json.RawMessage, error) {
	if err := ctx.Err(); err != nil {
		return nil, localError(err)
	}

	var reqBody io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, localError(err)
		}
		reqBody = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, baseURL+path, reqBody)
	if err != nil {
		return nil, localError(err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := httpClient.Do(req)
	if err != nil {
		return nil, &types.APIError{Kind: types.ErrorKindTransport, Message: err.Error()}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &types.APIError{Kind: types.ErrorKindTransport, Message: err.Error()}
	}

	// UseNumber keeps numeric error codes in their original text form so
	// the remote message formats as "42: ...", not "42.000000: ...".
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var parsed any
	if err := dec.Decode(&parsed); err != nil {
		return nil, localError(err)
	}
	if obj, ok := parsed.(map[string]any); ok {
		if status, _ := obj["status"].(string); status == "error" {
			return nil, &types.APIError{
				Kind:    types.ErrorKindRemote,
				Message: fmt.Sprintf("%v: %v", obj["code"], obj["message"]),
			}
		}
	}
	return json.RawMessage(raw), nil
}

func localError(err error) *types.APIError {
	return &types.APIError{Kind: types.ErrorKindLocal, Message: err.Error()}
}

// idBody is the {"id": ...} body shared by the info endpoints.
type idBody struct {
	ID string `json:"id"`
}
