package response

import (
	"time"

	"vistoria_itl/internal/domain/entities"
	"vistoria_itl/internal/usecase"
)

type PaymentResponse struct {
	ID               string     `json:"id"`
	AppointmentID    string     `json:"appointment_id"`
	AmountCents      int64      `json:"amount_cents"`
	Status           string     `json:"status"`
	ExternalChargeID string     `json:"external_charge_id,omitempty"`
	SubAccountID     string     `json:"sub_account_id,omitempty"`
	Method           string     `json:"method,omitempty"`
	CheckoutRef      string     `json:"checkout_ref,omitempty"`
	PaidAt           *time.Time `json:"paid_at,omitempty"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`
}

func FromPayment(p entities.Payment) PaymentResponse {
	return PaymentResponse{
		ID:               p.ID,
		AppointmentID:    p.AppointmentID,
		AmountCents:      p.AmountCents,
		Status:           string(p.Status),
		ExternalChargeID: p.ExternalChargeID,
		SubAccountID:     p.SubAccountID,
		Method:           p.Method,
		CheckoutRef:      p.CheckoutRef,
		PaidAt:           p.PaidAt,
		CreatedAt:        p.CreatedAt,
		UpdatedAt:        p.UpdatedAt,
	}
}

type SyncItemErrorResponse struct {
	PaymentID string `json:"payment_id"`
	Error     string `json:"error"`
}

// SyncResultResponse is the accounting of one reconciliation sweep.
type SyncResultResponse struct {
	Total                 int                     `json:"total"`
	Updated               int                     `json:"updated"`
	Unchanged             int                     `json:"unchanged"`
	CorrectedAppointments []string                `json:"corrected_appointments"`
	Errors                []SyncItemErrorResponse `json:"errors"`
}

func FromSyncResult(r usecase.SyncResult) SyncResultResponse {
	errs := make([]SyncItemErrorResponse, 0, len(r.Errors))
	for _, e := range r.Errors {
		errs = append(errs, SyncItemErrorResponse{PaymentID: e.PaymentID, Error: e.Error})
	}
	corrected := r.CorrectedAppointments
	if corrected == nil {
		corrected = []string{}
	}
	return SyncResultResponse{
		Total:                 r.Total,
		Updated:               r.Updated,
		Unchanged:             r.Unchanged,
		CorrectedAppointments: corrected,
		Errors:                errs,
	}
}
