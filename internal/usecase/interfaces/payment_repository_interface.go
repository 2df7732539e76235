package interfaces

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"vistoria_itl/internal/domain/entities"
)

// ErrChargeLockHeld is returned by AcquireChargeLock when another charge
// creation for the same appointment is in flight.
var ErrChargeLockHeld = errors.New("charge lock held for appointment")

// IPaymentRepository abstracts DynamoDB persistence for Payment.
//
// The charge lock is a conditional-put item keyed by appointment id. It
// serializes concurrent createCharge calls for the same appointment: the
// losing writer gets ErrChargeLockHeld from AcquireChargeLock.

type IPaymentRepository interface {
	Create(ctx context.Context, p entities.Payment) (entities.Payment, error)
	GetByID(ctx context.Context, id string) (entities.Payment, error)
	ListByAppointmentID(ctx context.Context, appointmentID string) ([]entities.Payment, error)
	ListByStatus(ctx context.Context, status entities.PaymentStatus) ([]entities.Payment, error)
	UpdateStatus(ctx context.Context, id string, status entities.PaymentStatus, paidAt *time.Time, providerPayload json.RawMessage) (entities.Payment, error)

	AcquireChargeLock(ctx context.Context, appointmentID string) error
	ReleaseChargeLock(ctx context.Context, appointmentID string) error
}
