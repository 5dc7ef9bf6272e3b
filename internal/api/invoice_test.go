package api

import (
	"context"
	"net/http"
	"reflect"
	"testing"

	"github.com/Palymer/api-lava-ru/internal/types"
)

func TestCreateInvoice_RequiredOnly(t *testing.T) {
	t.Parallel()
	srv, got := captureBody(t)

	_, err := CreateInvoice(context.Background(), srv.Client(), srv.URL, types.InvoiceParams{
		WalletTo: "R10052610",
		Sum:      100.50,
	})
	if err != nil {
		t.Fatalf("CreateInvoice: %v", err)
	}
	want := []string{"sum", "wallet_to"}
	if keys := bodyKeys(*got); !reflect.DeepEqual(keys, want) {
		t.Fatalf("body keys = %v, want %v", keys, want)
	}
	if (*got)["sum"] != 100.50 {
		t.Fatalf("sum = %v", (*got)["sum"])
	}
}

func TestCreateInvoice_AllOptionals(t *testing.T) {
	t.Parallel()
	srv, got := captureBody(t)

	orderID := "order-125"
	hook := "https://example.com/hook"
	success := "https://example.com/ok"
	fail := "https://example.com/fail"
	expire := 300
	subtract := 1
	custom := "field1=1"
	comment := "subscription"
	merchantID := "m-1"
	merchantName := "Shop"
	_, err := CreateInvoice(context.Background(), srv.Client(), srv.URL, types.InvoiceParams{
		WalletTo:     "R10052610",
		Sum:          1,
		OrderID:      &orderID,
		HookURL:      &hook,
		SuccessURL:   &success,
		FailURL:      &fail,
		Expire:       &expire,
		Subtract:     &subtract,
		CustomFields: &custom,
		Comment:      &comment,
		MerchantID:   &merchantID,
		MerchantName: &merchantName,
	})
	if err != nil {
		t.Fatalf("CreateInvoice: %v", err)
	}
	want := []string{
		"comment", "custom_fields", "expire", "fail_url", "hook_url",
		"merchant_id", "merchant_name", "order_id", "subtract",
		"success_url", "sum", "wallet_to",
	}
	if keys := bodyKeys(*got); !reflect.DeepEqual(keys, want) {
		t.Fatalf("body keys = %v, want %v", keys, want)
	}
}

func TestCreateInvoice_MissingWallet(t *testing.T) {
	t.Parallel()
	_, err := CreateInvoice(context.Background(), http.DefaultClient, "http://127.0.0.1:1", types.InvoiceParams{Sum: 1})
	apiErr, ok := err.(*types.APIError)
	if !ok || apiErr.Kind != types.ErrorKindLocal {
		t.Fatalf("expected local validation error, got %v", err)
	}
}

// Neither identifier is required locally; the remote service decides.
func TestGetInvoice_NoIdentifiers(t *testing.T) {
	t.Parallel()
	srv, got := captureBody(t)

	if _, err := GetInvoice(context.Background(), srv.Client(), srv.URL, types.InvoiceInfoParams{}); err != nil {
		t.Fatalf("GetInvoice: %v", err)
	}
	if len(*got) != 0 {
		t.Fatalf("expected empty body object, got keys %v", bodyKeys(*got))
	}
}

func TestGetInvoice_ByOrderID(t *testing.T) {
	t.Parallel()
	srv, got := captureBody(t)

	orderID := "order-125"
	if _, err := GetInvoice(context.Background(), srv.Client(), srv.URL, types.InvoiceInfoParams{OrderID: &orderID}); err != nil {
		t.Fatalf("GetInvoice: %v", err)
	}
	if keys := bodyKeys(*got); !reflect.DeepEqual(keys, []string{"order_id"}) {
		t.Fatalf("body keys = %v, want [order_id]", keys)
	}
}

func TestSetInvoiceWebhook(t *testing.T) {
	t.Parallel()
	srv, got := captureBody(t)

	if _, err := SetInvoiceWebhook(context.Background(), srv.Client(), srv.URL, "https://example.com/hook"); err != nil {
		t.Fatalf("SetInvoiceWebhook: %v", err)
	}
	if (*got)["url"] != "https://example.com/hook" {
		t.Fatalf("url = %v", (*got)["url"])
	}
}

func TestSetInvoiceWebhook_EmptyURL(t *testing.T) {
	t.Parallel()
	_, err := SetInvoiceWebhook(context.Background(), http.DefaultClient, "http://127.0.0.1:1", "")
	apiErr, ok := err.(*types.APIError)
	if !ok || apiErr.Kind != types.ErrorKindLocal {
		t.Fatalf("expected local validation error, got %v", err)
	}
}
