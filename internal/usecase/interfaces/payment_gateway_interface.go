package interfaces

import (
	"context"
	"encoding/json"
)

// IPaymentGateway abstracts the external payment processor (Mercado Pago).
//
// CreateCharge takes the raw request payload (JSON) so varying provider
// schemas survive round-trips; the provider response is persisted as-is for
// traceability. GetChargeStatus returns the processor's authoritative status
// used by reconciliation.

type IPaymentGateway interface {
	CreateCharge(ctx context.Context, requestPayload json.RawMessage) (providerChargeID string, providerStatus string, providerResponse json.RawMessage, err error)
	GetChargeStatus(ctx context.Context, providerChargeID string) (providerStatus string, providerResponse json.RawMessage, err error)
}
