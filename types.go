package lava

import "github.com/Palymer/api-lava-ru/internal/types"

// Public type aliases so SDK consumers can import only the lava package.
type (
	WithdrawalParams      = types.WithdrawalParams
	TransferParams        = types.TransferParams
	TransactionListParams = types.TransactionListParams
	InvoiceParams         = types.InvoiceParams
	InvoiceInfoParams     = types.InvoiceInfoParams
)

// String returns a pointer to v, for setting optional string parameters.
// A nil pointer means the field is absent and is omitted from the request
// body; a pointer to "" is still transmitted.
func String(v string) *string { return &v }

// Int returns a pointer to v, for setting optional integer parameters.
func Int(v int) *int { return &v }
