package api

import (
	"context"
	"net/http"
	"reflect"
	"testing"

	"github.com/Palymer/api-lava-ru/internal/types"
)

func TestCreateTransfer_RequiredOnly(t *testing.T) {
	t.Parallel()
	srv, got := captureBody(t)

	_, err := CreateTransfer(context.Background(), srv.Client(), srv.URL, types.TransferParams{
		AccountFrom: "R10052610",
		AccountTo:   "R10052611",
		Amount:      10,
	})
	if err != nil {
		t.Fatalf("CreateTransfer: %v", err)
	}
	want := []string{"account_from", "account_to", "amount"}
	if keys := bodyKeys(*got); !reflect.DeepEqual(keys, want) {
		t.Fatalf("body keys = %v, want %v", keys, want)
	}
}

func TestCreateTransfer_WithOptionals(t *testing.T) {
	t.Parallel()
	srv, got := captureBody(t)

	subtract := 0
	comment := "rent"
	_, err := CreateTransfer(context.Background(), srv.Client(), srv.URL, types.TransferParams{
		AccountFrom: "R10052610",
		AccountTo:   "R10052611",
		Amount:      10,
		Subtract:    &subtract,
		Comment:     &comment,
	})
	if err != nil {
		t.Fatalf("CreateTransfer: %v", err)
	}
	want := []string{"account_from", "account_to", "amount", "comment", "subtract"}
	if keys := bodyKeys(*got); !reflect.DeepEqual(keys, want) {
		t.Fatalf("body keys = %v, want %v", keys, want)
	}
	// subtract set to zero is still a present key
	if (*got)["subtract"] != float64(0) {
		t.Fatalf("subtract = %v", (*got)["subtract"])
	}
}

func TestCreateTransfer_InvalidAmount(t *testing.T) {
	t.Parallel()
	_, err := CreateTransfer(context.Background(), http.DefaultClient, "http://127.0.0.1:1", types.TransferParams{
		AccountFrom: "R1", AccountTo: "R2",
	})
	apiErr, ok := err.(*types.APIError)
	if !ok || apiErr.Kind != types.ErrorKindLocal {
		t.Fatalf("expected local validation error, got %v", err)
	}
}

func TestGetTransfer(t *testing.T) {
	t.Parallel()
	srv, got := captureBody(t)

	if _, err := GetTransfer(context.Background(), srv.Client(), srv.URL, "t-9"); err != nil {
		t.Fatalf("GetTransfer: %v", err)
	}
	if (*got)["id"] != "t-9" {
		t.Fatalf("id = %v", (*got)["id"])
	}
}
