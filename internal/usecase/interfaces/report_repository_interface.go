package interfaces

import (
	"context"

	"vistoria_itl/internal/domain/entities"
)

// IInspectionReportRepository abstracts DynamoDB persistence for laudos.
//
// The report ID equals the appointment ID, so the PK alone enforces the
// "at most one laudo per appointment" invariant (conditional put on Create).

type IInspectionReportRepository interface {
	Create(ctx context.Context, r entities.InspectionReport) (entities.InspectionReport, error)
	GetByID(ctx context.Context, id string) (entities.InspectionReport, error)
	GetByAppointmentID(ctx context.Context, appointmentID string) (entities.InspectionReport, error)
	Update(ctx context.Context, r entities.InspectionReport) (entities.InspectionReport, error)
}
