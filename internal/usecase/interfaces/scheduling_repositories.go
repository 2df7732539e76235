package interfaces

import (
	"context"

	"vistoria_itl/internal/domain/entities"
)

// IAppointmentRepository abstracts DynamoDB persistence for Appointment.

type IAppointmentRepository interface {
	Create(ctx context.Context, a entities.Appointment) (entities.Appointment, error)
	GetByID(ctx context.Context, id string) (entities.Appointment, error)
	ListByTenantID(ctx context.Context, tenantID string) ([]entities.Appointment, error)
	Update(ctx context.Context, a entities.Appointment) (entities.Appointment, error)
	UpdateStatus(ctx context.Context, id string, status entities.AppointmentStatus) (entities.Appointment, error)
}

// ICustomerRepository abstracts DynamoDB persistence for Customer.

type ICustomerRepository interface {
	Create(ctx context.Context, c entities.Customer) (entities.Customer, error)
	GetByID(ctx context.Context, id string) (entities.Customer, error)
	List(ctx context.Context) ([]entities.Customer, error)
}

// IVehicleRepository abstracts DynamoDB persistence for Vehicle.

type IVehicleRepository interface {
	Create(ctx context.Context, v entities.Vehicle) (entities.Vehicle, error)
	GetByID(ctx context.Context, id string) (entities.Vehicle, error)
	ListByCustomerID(ctx context.Context, customerID string) ([]entities.Vehicle, error)
}
