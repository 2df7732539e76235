package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"vistoria_itl/internal/domain/entities"
	"vistoria_itl/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrAppointmentNotFound       = errors.New("appointment not found")
	ErrInvalidAppointmentPayload = errors.New("invalid appointment payload")
	ErrInvalidStatusTransition   = errors.New("invalid appointment status transition")
	ErrAppointmentImmutable      = errors.New("appointment is in a terminal status")
	ErrTenantAccessDenied        = errors.New("actor cannot operate on this tenant")
	ErrTenantInactive            = errors.New("tenant is inactive")
)

// IAppointmentUseCase exposes appointment scheduling operations and the
// aggregate read-model.

type IAppointmentUseCase interface {
	Create(ctx context.Context, session entities.Session, a entities.Appointment) (entities.Appointment, error)
	GetByID(ctx context.Context, id string) (entities.Appointment, error)
	GetAggregate(ctx context.Context, id string) (entities.AppointmentAggregate, error)
	ListByTenant(ctx context.Context, session entities.Session, tenantID string) ([]entities.Appointment, error)
	Update(ctx context.Context, session entities.Session, a entities.Appointment) (entities.Appointment, error)
	Confirm(ctx context.Context, session entities.Session, id string) (entities.Appointment, error)
	Realize(ctx context.Context, session entities.Session, id string) (entities.Appointment, error)
	Cancel(ctx context.Context, session entities.Session, id string) (entities.Appointment, error)
}

type AppointmentUseCase struct {
	repo         interfaces.IAppointmentRepository
	tenantRepo   interfaces.ITenantRepository
	customerRepo interfaces.ICustomerRepository
	vehicleRepo  interfaces.IVehicleRepository
	typeRepo     interfaces.IInspectionTypeRepository
	paymentRepo  interfaces.IPaymentRepository
	reportRepo   interfaces.IInspectionReportRepository
}

var _ IAppointmentUseCase = (*AppointmentUseCase)(nil)

func NewAppointmentUseCase(
	repo interfaces.IAppointmentRepository,
	tenantRepo interfaces.ITenantRepository,
	customerRepo interfaces.ICustomerRepository,
	vehicleRepo interfaces.IVehicleRepository,
	typeRepo interfaces.IInspectionTypeRepository,
	paymentRepo interfaces.IPaymentRepository,
	reportRepo interfaces.IInspectionReportRepository,
) *AppointmentUseCase {
	return &AppointmentUseCase{
		repo:         repo,
		tenantRepo:   tenantRepo,
		customerRepo: customerRepo,
		vehicleRepo:  vehicleRepo,
		typeRepo:     typeRepo,
		paymentRepo:  paymentRepo,
		reportRepo:   reportRepo,
	}
}

func (u *AppointmentUseCase) Create(ctx context.Context, session entities.Session, a entities.Appointment) (entities.Appointment, error) {
	a.TenantID = strings.TrimSpace(a.TenantID)
	a.CustomerID = strings.TrimSpace(a.CustomerID)
	a.VehicleID = strings.TrimSpace(a.VehicleID)
	a.InspectionTypeID = strings.TrimSpace(a.InspectionTypeID)
	if a.TenantID == "" || a.CustomerID == "" || a.VehicleID == "" || a.InspectionTypeID == "" || a.ScheduledAt.IsZero() {
		return entities.Appointment{}, ErrInvalidAppointmentPayload
	}
	if !session.CanAccessTenant(a.TenantID) {
		return entities.Appointment{}, ErrTenantAccessDenied
	}

	tenant, err := u.tenantRepo.GetByID(ctx, a.TenantID)
	if err != nil {
		return entities.Appointment{}, err
	}
	if tenant.ID == "" {
		return entities.Appointment{}, ErrTenantNotFound
	}
	if !tenant.Active {
		return entities.Appointment{}, ErrTenantInactive
	}

	customer, err := u.customerRepo.GetByID(ctx, a.CustomerID)
	if err != nil {
		return entities.Appointment{}, err
	}
	if customer.ID == "" {
		return entities.Appointment{}, ErrCustomerNotFound
	}

	vehicle, err := u.vehicleRepo.GetByID(ctx, a.VehicleID)
	if err != nil {
		return entities.Appointment{}, err
	}
	if vehicle.ID == "" {
		return entities.Appointment{}, ErrVehicleNotFound
	}

	it, err := u.typeRepo.GetByID(ctx, a.InspectionTypeID)
	if err != nil {
		return entities.Appointment{}, err
	}
	if it.ID == "" || !it.Active {
		return entities.Appointment{}, ErrInspectionTypeNotFound
	}

	now := time.Now().UTC()
	a.ID = uuid.NewString()
	a.Status = entities.AppointmentStatusPendente
	a.CreatedAt = now
	a.UpdatedAt = now

	created, err := u.repo.Create(ctx, a)
	if err != nil {
		log.Printf("[appointment][usecase] create failed tenant_id=%s err=%v", a.TenantID, err)
		return entities.Appointment{}, err
	}
	log.Printf("[appointment][usecase] create success appointment_id=%s tenant_id=%s", created.ID, created.TenantID)
	return created, nil
}

func (u *AppointmentUseCase) GetByID(ctx context.Context, id string) (entities.Appointment, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Appointment{}, ErrInvalidAppointmentPayload
	}

	a, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Appointment{}, err
	}
	if a.ID == "" {
		return entities.Appointment{}, ErrAppointmentNotFound
	}
	return a, nil
}

// GetAggregate joins the appointment with its related entities. The join is
// best-effort and non-transactional: a failed or empty sub-read leaves the
// field nil instead of failing the whole view.
func (u *AppointmentUseCase) GetAggregate(ctx context.Context, id string) (entities.AppointmentAggregate, error) {
	a, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.AppointmentAggregate{}, err
	}

	agg := entities.AppointmentAggregate{Appointment: a}

	if t, err := u.tenantRepo.GetByID(ctx, a.TenantID); err == nil && t.ID != "" {
		agg.Tenant = &t
	}
	if c, err := u.customerRepo.GetByID(ctx, a.CustomerID); err == nil && c.ID != "" {
		agg.Customer = &c
	}
	if v, err := u.vehicleRepo.GetByID(ctx, a.VehicleID); err == nil && v.ID != "" {
		agg.Vehicle = &v
	}
	if it, err := u.typeRepo.GetByID(ctx, a.InspectionTypeID); err == nil && it.ID != "" {
		agg.InspectionType = &it
	}
	if payments, err := u.paymentRepo.ListByAppointmentID(ctx, a.ID); err == nil && len(payments) > 0 {
		latest := payments[0]
		for _, p := range payments[1:] {
			if p.CreatedAt.After(latest.CreatedAt) {
				latest = p
			}
		}
		agg.LatestPayment = &latest
	}
	if r, err := u.reportRepo.GetByAppointmentID(ctx, a.ID); err == nil && r.ID != "" {
		agg.HasReport = true
	}

	return agg, nil
}

func (u *AppointmentUseCase) ListByTenant(ctx context.Context, session entities.Session, tenantID string) ([]entities.Appointment, error) {
	tenantID = strings.TrimSpace(tenantID)
	if tenantID == "" {
		return nil, ErrInvalidTenantID
	}
	if !session.CanAccessTenant(tenantID) {
		return nil, ErrTenantAccessDenied
	}
	return u.repo.ListByTenantID(ctx, tenantID)
}

// Update changes scheduling fields. Terminal appointments are immutable;
// status changes go through the explicit transition operations.
func (u *AppointmentUseCase) Update(ctx context.Context, session entities.Session, a entities.Appointment) (entities.Appointment, error) {
	current, err := u.GetByID(ctx, a.ID)
	if err != nil {
		return entities.Appointment{}, err
	}
	if !session.CanAccessTenant(current.TenantID) {
		return entities.Appointment{}, ErrTenantAccessDenied
	}
	if current.Status.IsTerminal() {
		return entities.Appointment{}, ErrAppointmentImmutable
	}
	if a.ScheduledAt.IsZero() {
		return entities.Appointment{}, ErrInvalidAppointmentPayload
	}

	current.ScheduledAt = a.ScheduledAt
	current.InspectionScope = a.InspectionScope
	current.BillingCompanyID = a.BillingCompanyID
	current.Notes = a.Notes
	current.UpdatedAt = time.Now().UTC()
	return u.repo.Update(ctx, current)
}

func (u *AppointmentUseCase) Confirm(ctx context.Context, session entities.Session, id string) (entities.Appointment, error) {
	return u.transition(ctx, session, id, entities.AppointmentStatusConfirmado)
}

func (u *AppointmentUseCase) Realize(ctx context.Context, session entities.Session, id string) (entities.Appointment, error) {
	return u.transition(ctx, session, id, entities.AppointmentStatusRealizado)
}

func (u *AppointmentUseCase) Cancel(ctx context.Context, session entities.Session, id string) (entities.Appointment, error) {
	return u.transition(ctx, session, id, entities.AppointmentStatusCancelado)
}

func (u *AppointmentUseCase) transition(ctx context.Context, session entities.Session, id string, target entities.AppointmentStatus) (entities.Appointment, error) {
	a, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Appointment{}, err
	}
	if !session.CanAccessTenant(a.TenantID) {
		return entities.Appointment{}, ErrTenantAccessDenied
	}
	if !a.Status.CanTransitionTo(target) {
		log.Printf("[appointment][usecase] transition rejected appointment_id=%s from=%s to=%s", id, a.Status, target)
		return entities.Appointment{}, ErrInvalidStatusTransition
	}

	updated, err := u.repo.UpdateStatus(ctx, id, target)
	if err != nil {
		return entities.Appointment{}, err
	}
	log.Printf("[appointment][usecase] transition success appointment_id=%s from=%s to=%s", id, a.Status, target)
	return updated, nil
}
