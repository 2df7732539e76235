package entities

import "time"

// AppointmentStatus is the scheduling lifecycle of an appointment.
//
// Transitions are monotonic (pendente -> confirmado -> realizado) except the
// explicit cancel path, reachable only before realization. realizado and
// cancelado are terminal; once realizado, price and scheduling are immutable.

type AppointmentStatus string

const (
	AppointmentStatusPendente   AppointmentStatus = "pendente"
	AppointmentStatusConfirmado AppointmentStatus = "confirmado"
	AppointmentStatusRealizado  AppointmentStatus = "realizado"
	AppointmentStatusCancelado  AppointmentStatus = "cancelado"
)

// appointmentTransitions is the closed transition table.
var appointmentTransitions = map[AppointmentStatus][]AppointmentStatus{
	AppointmentStatusPendente:   {AppointmentStatusConfirmado, AppointmentStatusCancelado},
	AppointmentStatusConfirmado: {AppointmentStatusRealizado, AppointmentStatusCancelado},
	AppointmentStatusRealizado:  {},
	AppointmentStatusCancelado:  {},
}

// CanTransitionTo reports whether moving from s to target is allowed.
func (s AppointmentStatus) CanTransitionTo(target AppointmentStatus) bool {
	for _, allowed := range appointmentTransitions[s] {
		if allowed == target {
			return true
		}
	}
	return false
}

// IsTerminal reports whether no further transition is possible.
func (s AppointmentStatus) IsTerminal() bool {
	return len(appointmentTransitions[s]) == 0
}

// IsValid reports whether s is one of the closed enum values.
func (s AppointmentStatus) IsValid() bool {
	_, ok := appointmentTransitions[s]
	return ok
}

// Appointment is the central transactional entity: a scheduled vehicle
// inspection at a tenant.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (tenant_id-index): tenant_id

type Appointment struct {
	ID               string            `json:"id"`
	TenantID         string            `json:"tenant_id"`
	CustomerID       string            `json:"customer_id"`
	VehicleID        string            `json:"vehicle_id"`
	InspectionTypeID string            `json:"inspection_type_id"`
	InspectionScope  string            `json:"inspection_scope,omitempty"`
	BillingCompanyID string            `json:"billing_company_id,omitempty"`
	ScheduledAt      time.Time         `json:"scheduled_at"`
	Status           AppointmentStatus `json:"status"`
	Notes            string            `json:"notes,omitempty"`
	CreatedAt        time.Time         `json:"created_at"`
	UpdatedAt        time.Time         `json:"updated_at"`
}

// AppointmentAggregate is the read-model joining an appointment with its
// related entities. The join is best-effort and non-transactional: absent
// sub-entities are nil, never an error.

type AppointmentAggregate struct {
	Appointment    Appointment     `json:"appointment"`
	Tenant         *Tenant         `json:"tenant,omitempty"`
	Customer       *Customer       `json:"customer,omitempty"`
	Vehicle        *Vehicle        `json:"vehicle,omitempty"`
	InspectionType *InspectionType `json:"inspection_type,omitempty"`
	LatestPayment  *Payment        `json:"latest_payment,omitempty"`
	HasReport      bool            `json:"has_report"`
}
