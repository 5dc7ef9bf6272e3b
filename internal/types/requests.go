package types

// ------------------------------
// Request parameter types
// ------------------------------
//
// Required fields are plain values; optional fields are pointers with
// omitempty tags so a nil pointer never appears as a key in the serialized
// body. A pointer to the zero value (e.g. an empty comment) is still sent.
// JSON tags carry the provider's snake_case field names verbatim.

// WithdrawalParams holds parameters for /withdraw/create.
type WithdrawalParams struct {
	Account  string  `json:"account"`
	Amount   float64 `json:"amount"`
	Service  string  `json:"service"`
	WalletTo string  `json:"wallet_to"`

	OrderID  *string `json:"order_id,omitempty"`
	HookURL  *string `json:"hook_url,omitempty"`
	Subtract *int    `json:"subtract,omitempty"`
	Comment  *string `json:"comment,omitempty"`
}

// TransferParams holds parameters for /transfer/create.
type TransferParams struct {
	AccountFrom string  `json:"account_from"`
	AccountTo   string  `json:"account_to"`
	Amount      float64 `json:"amount"`

	Subtract *int    `json:"subtract,omitempty"`
	Comment  *string `json:"comment,omitempty"`
}

// TransactionListParams holds the filter parameters for /transactions/list.
// Every field is optional; the zero value requests the unfiltered list.
type TransactionListParams struct {
	TransferType *string `json:"transfer_type,omitempty"`
	Account      *string `json:"account,omitempty"`
	PeriodStart  *string `json:"period_start,omitempty"`
	PeriodEnd    *string `json:"period_end,omitempty"`
	Offset       *int    `json:"offset,omitempty"`
	Limit        *int    `json:"limit,omitempty"`
}

// InvoiceParams holds parameters for /invoice/create.
type InvoiceParams struct {
	WalletTo string  `json:"wallet_to"`
	Sum      float64 `json:"sum"`

	OrderID      *string `json:"order_id,omitempty"`
	HookURL      *string `json:"hook_url,omitempty"`
	SuccessURL   *string `json:"success_url,omitempty"`
	FailURL      *string `json:"fail_url,omitempty"`
	Expire       *int    `json:"expire,omitempty"`
	Subtract     *int    `json:"subtract,omitempty"`
	CustomFields *string `json:"custom_fields,omitempty"`
	Comment      *string `json:"comment,omitempty"`
	MerchantID   *string `json:"merchant_id,omitempty"`
	MerchantName *string `json:"merchant_name,omitempty"`
}

// InvoiceInfoParams identifies an invoice for /invoice/info. The service
// expects at least one of the two identifiers; the client does not enforce
// that and passes whatever is set through unchanged.
type InvoiceInfoParams struct {
	ID      *string `json:"id,omitempty"`
	OrderID *string `json:"order_id,omitempty"`
}
