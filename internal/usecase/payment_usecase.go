package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"vistoria_itl/internal/domain/entities"
	"vistoria_itl/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrPaymentNotFound          = errors.New("payment not found")
	ErrInvalidChargeAmount      = errors.New("resolved price is zero or negative")
	ErrAppointmentPaid          = errors.New("appointment already has an approved payment")
	ErrChargeInFlight           = errors.New("charge creation already in flight for this appointment")
	ErrChargeCreation           = errors.New("payment processor charge creation failed")
	ErrAppointmentNotChargeable = errors.New("appointment cannot be charged in its current status")
	ErrUnknownProviderStatus    = errors.New("unknown payment processor status")
)

// SyncItemError records one payment whose reconciliation failed. The sweep
// keeps going; failures never abort the remaining payments.

type SyncItemError struct {
	PaymentID string `json:"payment_id"`
	Error     string `json:"error"`
}

// SyncResult is the accounting of one reconciliation sweep:
// Total = Updated + Unchanged + len(Errors).

type SyncResult struct {
	Total                 int             `json:"total"`
	Updated               int             `json:"updated"`
	Unchanged             int             `json:"unchanged"`
	CorrectedAppointments []string        `json:"corrected_appointments"`
	Errors                []SyncItemError `json:"errors"`
}

// IPaymentUseCase orchestrates charge creation against the payment processor
// and reconciles local payment state with the processor's authoritative
// status.

type IPaymentUseCase interface {
	CreateCharge(ctx context.Context, session entities.Session, appointmentID, paymentMethod string) (entities.Payment, error)
	GetLatestByAppointment(ctx context.Context, appointmentID string) (entities.Payment, error)
	Synchronize(ctx context.Context) (SyncResult, error)
	SynchronizeOne(ctx context.Context, paymentID string) (entities.Payment, bool, error)
}

type PaymentUseCase struct {
	repo            interfaces.IPaymentRepository
	appointmentRepo interfaces.IAppointmentRepository
	tenantRepo      interfaces.ITenantRepository
	pricing         IPricingUseCase
	gateway         interfaces.IPaymentGateway
}

var _ IPaymentUseCase = (*PaymentUseCase)(nil)

func NewPaymentUseCase(
	repo interfaces.IPaymentRepository,
	appointmentRepo interfaces.IAppointmentRepository,
	tenantRepo interfaces.ITenantRepository,
	pricing IPricingUseCase,
	gateway interfaces.IPaymentGateway,
) *PaymentUseCase {
	return &PaymentUseCase{
		repo:            repo,
		appointmentRepo: appointmentRepo,
		tenantRepo:      tenantRepo,
		pricing:         pricing,
		gateway:         gateway,
	}
}

// CreateCharge resolves the effective price, creates the external charge and
// persists the resulting pending payment. All precondition checks fire before
// the gateway call, so a rejected request never leaves partial state.
func (u *PaymentUseCase) CreateCharge(ctx context.Context, session entities.Session, appointmentID, paymentMethod string) (entities.Payment, error) {
	appointmentID = strings.TrimSpace(appointmentID)
	if appointmentID == "" {
		return entities.Payment{}, ErrInvalidAppointmentPayload
	}
	if u.gateway == nil {
		return entities.Payment{}, errors.New("payment gateway not configured")
	}
	log.Printf("[payment][usecase] create-charge start appointment_id=%s", appointmentID)

	appointment, err := u.appointmentRepo.GetByID(ctx, appointmentID)
	if err != nil {
		return entities.Payment{}, err
	}
	if appointment.ID == "" {
		return entities.Payment{}, ErrAppointmentNotFound
	}
	if !session.CanAccessTenant(appointment.TenantID) {
		return entities.Payment{}, ErrTenantAccessDenied
	}
	if appointment.Status == entities.AppointmentStatusCancelado {
		return entities.Payment{}, ErrAppointmentNotChargeable
	}

	amountCents, err := u.pricing.ResolvePrice(ctx, appointment.TenantID, appointment.InspectionTypeID)
	if err != nil {
		return entities.Payment{}, err
	}
	if amountCents <= 0 {
		log.Printf("[payment][usecase] create-charge rejected appointment_id=%s amount_cents=%d", appointmentID, amountCents)
		return entities.Payment{}, ErrInvalidChargeAmount
	}

	existing, err := u.repo.ListByAppointmentID(ctx, appointmentID)
	if err != nil {
		return entities.Payment{}, err
	}
	for _, p := range existing {
		if p.Status == entities.PaymentStatusAprovado {
			return entities.Payment{}, ErrAppointmentPaid
		}
	}

	// Conditional lock closes the double-charge race: two concurrent calls
	// for the same appointment cannot both reach the gateway.
	if err := u.repo.AcquireChargeLock(ctx, appointmentID); err != nil {
		if errors.Is(err, interfaces.ErrChargeLockHeld) {
			return entities.Payment{}, ErrChargeInFlight
		}
		return entities.Payment{}, err
	}
	defer func() {
		if err := u.repo.ReleaseChargeLock(ctx, appointmentID); err != nil {
			log.Printf("[payment][usecase] charge lock release failed appointment_id=%s err=%v", appointmentID, err)
		}
	}()

	subAccountID := ""
	if tenant, err := u.tenantRepo.GetByID(ctx, appointment.TenantID); err == nil {
		subAccountID = tenant.PaymentSubAccountID
	}

	payload, err := buildChargePayload(appointment, amountCents, paymentMethod, subAccountID)
	if err != nil {
		return entities.Payment{}, err
	}

	log.Printf("[payment][usecase] calling payment gateway appointment_id=%s amount_cents=%d sub_account=%q", appointmentID, amountCents, subAccountID)
	providerChargeID, providerStatus, providerResp, err := u.gateway.CreateCharge(ctx, payload)
	if err != nil {
		log.Printf("[payment][usecase] gateway charge failed appointment_id=%s err=%v", appointmentID, err)
		return entities.Payment{}, fmt.Errorf("%w: %v", ErrChargeCreation, err)
	}

	status, ok := mapProviderStatus(providerStatus)
	if !ok {
		status = entities.PaymentStatusPendente
	}
	now := time.Now().UTC()
	p := entities.Payment{
		ID:                 uuid.NewString(),
		AppointmentID:      appointmentID,
		AmountCents:        amountCents,
		Status:             status,
		ExternalChargeID:   providerChargeID,
		SubAccountID:       subAccountID,
		Method:             strings.TrimSpace(paymentMethod),
		CheckoutRef:        providerChargeID,
		CreatedAt:          now,
		UpdatedAt:          now,
		ProviderPayloadRaw: providerResp,
	}
	if status == entities.PaymentStatusAprovado {
		p.PaidAt = &now
	}

	created, err := u.repo.Create(ctx, p)
	if err != nil {
		log.Printf("[payment][usecase] payment persist failed appointment_id=%s charge_id=%s err=%v", appointmentID, providerChargeID, err)
		return entities.Payment{}, err
	}
	log.Printf("[payment][usecase] create-charge success appointment_id=%s payment_id=%s charge_id=%s status=%s", appointmentID, created.ID, providerChargeID, created.Status)
	return created, nil
}

func (u *PaymentUseCase) GetLatestByAppointment(ctx context.Context, appointmentID string) (entities.Payment, error) {
	appointmentID = strings.TrimSpace(appointmentID)
	if appointmentID == "" {
		return entities.Payment{}, ErrInvalidAppointmentPayload
	}

	payments, err := u.repo.ListByAppointmentID(ctx, appointmentID)
	if err != nil {
		return entities.Payment{}, err
	}
	if len(payments) == 0 {
		return entities.Payment{}, ErrPaymentNotFound
	}

	latest := payments[0]
	for _, p := range payments[1:] {
		if p.CreatedAt.After(latest.CreatedAt) {
			latest = p
		}
	}
	return latest, nil
}

// Synchronize reconciles every non-terminal payment against the processor.
// Per-item failures are collected and never abort the sweep; there is no
// ordering guarantee across payments.
func (u *PaymentUseCase) Synchronize(ctx context.Context) (SyncResult, error) {
	pending, err := u.repo.ListByStatus(ctx, entities.PaymentStatusPendente)
	if err != nil {
		return SyncResult{}, err
	}

	result := SyncResult{
		Total:                 len(pending),
		CorrectedAppointments: []string{},
		Errors:                []SyncItemError{},
	}
	log.Printf("[payment][sync] sweep start total=%d", len(pending))

	for _, p := range pending {
		updated, corrected, err := u.reconcile(ctx, p)
		if err != nil {
			result.Errors = append(result.Errors, SyncItemError{PaymentID: p.ID, Error: err.Error()})
			continue
		}
		if updated {
			result.Updated++
		} else {
			result.Unchanged++
		}
		if corrected != "" {
			result.CorrectedAppointments = append(result.CorrectedAppointments, corrected)
		}
	}

	log.Printf("[payment][sync] sweep done total=%d updated=%d unchanged=%d errors=%d corrected=%d",
		result.Total, result.Updated, result.Unchanged, len(result.Errors), len(result.CorrectedAppointments))
	return result, nil
}

func (u *PaymentUseCase) SynchronizeOne(ctx context.Context, paymentID string) (entities.Payment, bool, error) {
	paymentID = strings.TrimSpace(paymentID)
	if paymentID == "" {
		return entities.Payment{}, false, ErrPaymentNotFound
	}

	p, err := u.repo.GetByID(ctx, paymentID)
	if err != nil {
		return entities.Payment{}, false, err
	}
	if p.ID == "" {
		return entities.Payment{}, false, ErrPaymentNotFound
	}
	if p.Status.IsTerminal() {
		return p, false, nil
	}

	updated, _, err := u.reconcile(ctx, p)
	if err != nil {
		return entities.Payment{}, false, err
	}

	refreshed, err := u.repo.GetByID(ctx, paymentID)
	if err != nil {
		return entities.Payment{}, false, err
	}
	return refreshed, updated, nil
}

// reconcile refreshes one payment from the processor. It returns whether the
// local row changed and, when an approved payment corrected a stuck
// appointment, the corrected appointment id.
func (u *PaymentUseCase) reconcile(ctx context.Context, p entities.Payment) (bool, string, error) {
	if u.gateway == nil {
		return false, "", errors.New("payment gateway not configured")
	}

	providerStatus, providerResp, err := u.gateway.GetChargeStatus(ctx, p.ExternalChargeID)
	if err != nil {
		log.Printf("[payment][sync] provider query failed payment_id=%s charge_id=%s err=%v", p.ID, p.ExternalChargeID, err)
		return false, "", err
	}

	mapped, ok := mapProviderStatus(providerStatus)
	if !ok {
		log.Printf("[payment][sync] unmapped provider status payment_id=%s status=%q", p.ID, providerStatus)
		return false, "", fmt.Errorf("%w: %q", ErrUnknownProviderStatus, providerStatus)
	}
	if mapped == p.Status {
		return false, "", nil
	}

	var paidAt *time.Time
	if mapped == entities.PaymentStatusAprovado {
		now := time.Now().UTC()
		paidAt = &now
	}
	if _, err := u.repo.UpdateStatus(ctx, p.ID, mapped, paidAt, providerResp); err != nil {
		return false, "", err
	}
	log.Printf("[payment][sync] payment updated payment_id=%s from=%s to=%s", p.ID, p.Status, mapped)

	if mapped != entities.PaymentStatusAprovado {
		return true, "", nil
	}
	corrected, err := u.correctAppointment(ctx, p.AppointmentID)
	if err != nil {
		// The payment row is already consistent; surface the correction
		// failure as the item error.
		return true, "", err
	}
	return true, corrected, nil
}

// correctAppointment promotes a paid-but-pendente appointment to confirmado.
// Terminal statuses are never touched: the synchronizer corrects payment
// reality, it does not schedule.
func (u *PaymentUseCase) correctAppointment(ctx context.Context, appointmentID string) (string, error) {
	a, err := u.appointmentRepo.GetByID(ctx, appointmentID)
	if err != nil {
		return "", err
	}
	if a.ID == "" || a.Status != entities.AppointmentStatusPendente {
		return "", nil
	}

	if _, err := u.appointmentRepo.UpdateStatus(ctx, a.ID, entities.AppointmentStatusConfirmado); err != nil {
		return "", err
	}
	log.Printf("[payment][sync] appointment corrected appointment_id=%s to=%s", a.ID, entities.AppointmentStatusConfirmado)
	return a.ID, nil
}

// buildChargePayload assembles the raw provider request. Amounts travel in
// cents internally and are converted to currency units only here.
func buildChargePayload(a entities.Appointment, amountCents int64, paymentMethod, subAccountID string) (json.RawMessage, error) {
	payload := map[string]any{
		"transaction_amount": float64(amountCents) / 100,
		"description":        fmt.Sprintf("Vistoria %s", a.ID),
		"external_reference": a.ID,
		"metadata": map[string]any{
			"appointment_id": a.ID,
			"tenant_id":      a.TenantID,
		},
	}
	if paymentMethod = strings.TrimSpace(paymentMethod); paymentMethod != "" {
		payload["payment_method_id"] = paymentMethod
	}
	if subAccountID != "" {
		md := payload["metadata"].(map[string]any)
		md["tenant_sub_account"] = subAccountID
	}
	return json.Marshal(payload)
}

// mapProviderStatus translates the Mercado Pago status vocabulary into the
// local closed enum. Unknown statuses are reported, not guessed.
func mapProviderStatus(providerStatus string) (entities.PaymentStatus, bool) {
	switch strings.ToLower(strings.TrimSpace(providerStatus)) {
	case "approved", "authorized":
		return entities.PaymentStatusAprovado, true
	case "rejected", "cancelled":
		return entities.PaymentStatusRecusado, true
	case "refunded", "charged_back":
		return entities.PaymentStatusEstornado, true
	case "pending", "in_process", "in_mediation":
		return entities.PaymentStatusPendente, true
	}
	return "", false
}
