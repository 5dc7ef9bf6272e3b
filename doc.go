// Package lava is a typed Go client for the Lava wallet HTTP API: wallet
// listing, withdrawals, transfers, transaction history, invoices and
// invoice webhooks.
//
// Every operation is a single-shot request. The client holds only immutable
// configuration and is safe for concurrent use. Success payloads are
// returned as json.RawMessage exactly as the service sent them; failures of
// any origin are a *APIError whose Kind distinguishes remote service
// errors, transport failures and local ones.
//
//	c := lava.New(os.Getenv("LAVA_API_KEY"))
//
//	res, err := c.CreateInvoice(ctx, lava.InvoiceParams{
//		WalletTo: "R10052610",
//		Sum:      100.50,
//		OrderID:  lava.String("order-125"),
//		HookURL:  lava.String("https://example.com/hook"),
//	})
//	if lava.IsRemote(err) {
//		// err.Error() is the service's "<code>: <message>" text
//	}
//
// Optional request fields are pointers: a nil pointer is omitted from the
// request body entirely, while lava.String("") transmits an empty value.
package lava
