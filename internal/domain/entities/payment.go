package entities

import (
	"encoding/json"
	"time"
)

// PaymentStatus is the local payment lifecycle, reconciled against the
// payment processor's authoritative status.

type PaymentStatus string

const (
	PaymentStatusPendente  PaymentStatus = "pendente"
	PaymentStatusAprovado  PaymentStatus = "aprovado"
	PaymentStatusRecusado  PaymentStatus = "recusado"
	PaymentStatusEstornado PaymentStatus = "estornado"
)

// IsTerminal reports whether the status is final and excluded from
// reconciliation sweeps.
func (s PaymentStatus) IsTerminal() bool {
	switch s {
	case PaymentStatusAprovado, PaymentStatusRecusado, PaymentStatusEstornado:
		return true
	}
	return false
}

// Payment is one charge created for an appointment.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (appointment_id-index): appointment_id
//   - GSI2 (status-index): status
//
// AmountCents is fixed at creation time and never recomputed after the
// external charge exists. ProviderPayloadRaw keeps the original processor
// response (JSON) for traceability/audit.

type Payment struct {
	ID               string        `json:"id"`
	AppointmentID    string        `json:"appointment_id"`
	AmountCents      int64         `json:"amount_cents"`
	Status           PaymentStatus `json:"status"`
	ExternalChargeID string        `json:"external_charge_id"`
	SubAccountID     string        `json:"sub_account_id,omitempty"`
	Method           string        `json:"method,omitempty"`
	CheckoutRef      string        `json:"checkout_ref,omitempty"`
	PaidAt           *time.Time    `json:"paid_at,omitempty"`
	CreatedAt        time.Time     `json:"created_at"`
	UpdatedAt        time.Time     `json:"updated_at"`

	ProviderPayloadRaw json.RawMessage `json:"provider_payload_raw,omitempty"`
}
