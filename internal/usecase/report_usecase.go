package usecase

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"log"
	"path"
	"strings"
	"time"

	"vistoria_itl/internal/domain/entities"
	"vistoria_itl/internal/usecase/interfaces"
)

var (
	ErrReportNotFound       = errors.New("inspection report not found")
	ErrReportAlreadyExists  = errors.New("appointment already has an inspection report")
	ErrAppointmentNotDone   = errors.New("appointment is not realized yet")
	ErrInvalidReportPayload = errors.New("invalid inspection report payload")
	ErrInvalidPhotoPayload  = errors.New("invalid photo payload")
	ErrMissingPhotos        = errors.New("missing required photo slots")
	ErrNoIssuingBody        = errors.New("no issuing body configured and the catalog is empty")
	ErrIssuingBodyRequired  = errors.New("an issuing body must be chosen for this report")
)

// ReportMetadata is the caller-supplied laudo header.

type ReportMetadata struct {
	ReportNumber       string    `json:"report_number"`
	TechnicianName     string    `json:"technician_name"`
	TechnicianRegistry string    `json:"technician_registry,omitempty"`
	ValidUntil         time.Time `json:"valid_until"`
	OrgaoID            string    `json:"orgao_id,omitempty"`
}

// PhotoUpload is one named evidence slot submitted as base64 content.

type PhotoUpload struct {
	Slot          entities.PhotoSlot `json:"slot"`
	Filename      string             `json:"filename"`
	ContentBase64 string             `json:"content_base64"`
}

// IReportUseCase assembles the official laudo: creation (one per
// appointment), photographic evidence and PDF generation.

type IReportUseCase interface {
	Create(ctx context.Context, session entities.Session, appointmentID string, metadata ReportMetadata) (entities.InspectionReport, error)
	GetByAppointmentID(ctx context.Context, appointmentID string) (entities.InspectionReport, error)
	UploadPhotos(ctx context.Context, reportID string, photos []PhotoUpload) (entities.InspectionReport, error)
	GeneratePDF(ctx context.Context, reportID string) (string, error)
}

type ReportUseCase struct {
	repo            interfaces.IInspectionReportRepository
	appointmentRepo interfaces.IAppointmentRepository
	tenantRepo      interfaces.ITenantRepository
	customerRepo    interfaces.ICustomerRepository
	vehicleRepo     interfaces.IVehicleRepository
	typeRepo        interfaces.IInspectionTypeRepository
	orgaoRepo       interfaces.IIssuingBodyRepository
	content         interfaces.IContentStore
	renderer        interfaces.ILaudoRenderer
}

var _ IReportUseCase = (*ReportUseCase)(nil)

func NewReportUseCase(
	repo interfaces.IInspectionReportRepository,
	appointmentRepo interfaces.IAppointmentRepository,
	tenantRepo interfaces.ITenantRepository,
	customerRepo interfaces.ICustomerRepository,
	vehicleRepo interfaces.IVehicleRepository,
	typeRepo interfaces.IInspectionTypeRepository,
	orgaoRepo interfaces.IIssuingBodyRepository,
	content interfaces.IContentStore,
	renderer interfaces.ILaudoRenderer,
) *ReportUseCase {
	return &ReportUseCase{
		repo:            repo,
		appointmentRepo: appointmentRepo,
		tenantRepo:      tenantRepo,
		customerRepo:    customerRepo,
		vehicleRepo:     vehicleRepo,
		typeRepo:        typeRepo,
		orgaoRepo:       orgaoRepo,
		content:         content,
		renderer:        renderer,
	}
}

// Create opens the laudo for a realized appointment. The report id equals the
// appointment id, so the repository's conditional put backs the "at most one
// laudo per appointment" guard even under races.
func (u *ReportUseCase) Create(ctx context.Context, session entities.Session, appointmentID string, metadata ReportMetadata) (entities.InspectionReport, error) {
	appointmentID = strings.TrimSpace(appointmentID)
	if appointmentID == "" {
		return entities.InspectionReport{}, ErrInvalidReportPayload
	}
	metadata.ReportNumber = strings.TrimSpace(metadata.ReportNumber)
	metadata.TechnicianName = strings.TrimSpace(metadata.TechnicianName)
	if metadata.ReportNumber == "" || metadata.TechnicianName == "" || metadata.ValidUntil.IsZero() {
		return entities.InspectionReport{}, ErrInvalidReportPayload
	}

	appointment, err := u.appointmentRepo.GetByID(ctx, appointmentID)
	if err != nil {
		return entities.InspectionReport{}, err
	}
	if appointment.ID == "" {
		return entities.InspectionReport{}, ErrAppointmentNotFound
	}
	if !session.CanAccessTenant(appointment.TenantID) {
		return entities.InspectionReport{}, ErrTenantAccessDenied
	}
	if appointment.Status != entities.AppointmentStatusRealizado {
		return entities.InspectionReport{}, ErrAppointmentNotDone
	}

	if existing, err := u.repo.GetByAppointmentID(ctx, appointmentID); err != nil {
		return entities.InspectionReport{}, err
	} else if existing.ID != "" {
		return entities.InspectionReport{}, ErrReportAlreadyExists
	}

	now := time.Now().UTC()
	r := entities.InspectionReport{
		ID:                 appointmentID,
		AppointmentID:      appointmentID,
		OrgaoID:            strings.TrimSpace(metadata.OrgaoID),
		ReportNumber:       metadata.ReportNumber,
		TechnicianName:     metadata.TechnicianName,
		TechnicianRegistry: strings.TrimSpace(metadata.TechnicianRegistry),
		ValidUntil:         metadata.ValidUntil,
		Photos:             map[entities.PhotoSlot]string{},
		CreatedAt:          now,
		UpdatedAt:          now,
	}

	created, err := u.repo.Create(ctx, r)
	if err != nil {
		log.Printf("[report][usecase] create failed appointment_id=%s err=%v", appointmentID, err)
		return entities.InspectionReport{}, err
	}
	log.Printf("[report][usecase] create success report_id=%s", created.ID)
	return created, nil
}

func (u *ReportUseCase) GetByAppointmentID(ctx context.Context, appointmentID string) (entities.InspectionReport, error) {
	appointmentID = strings.TrimSpace(appointmentID)
	if appointmentID == "" {
		return entities.InspectionReport{}, ErrInvalidReportPayload
	}

	r, err := u.repo.GetByAppointmentID(ctx, appointmentID)
	if err != nil {
		return entities.InspectionReport{}, err
	}
	if r.ID == "" {
		return entities.InspectionReport{}, ErrReportNotFound
	}
	return r, nil
}

// UploadPhotos stores the submitted evidence slots and records their paths on
// the report. Slots may arrive across multiple calls; each upload overwrites
// its slot.
func (u *ReportUseCase) UploadPhotos(ctx context.Context, reportID string, photos []PhotoUpload) (entities.InspectionReport, error) {
	reportID = strings.TrimSpace(reportID)
	if reportID == "" || len(photos) == 0 {
		return entities.InspectionReport{}, ErrInvalidPhotoPayload
	}

	r, err := u.repo.GetByID(ctx, reportID)
	if err != nil {
		return entities.InspectionReport{}, err
	}
	if r.ID == "" {
		return entities.InspectionReport{}, ErrReportNotFound
	}
	if r.Photos == nil {
		r.Photos = map[entities.PhotoSlot]string{}
	}

	for _, photo := range photos {
		if !isRequiredSlot(photo.Slot) {
			return entities.InspectionReport{}, fmt.Errorf("%w: unknown slot %q", ErrInvalidPhotoPayload, photo.Slot)
		}
		photo.Filename = strings.TrimSpace(photo.Filename)
		if photo.Filename == "" {
			return entities.InspectionReport{}, fmt.Errorf("%w: missing filename for slot %q", ErrInvalidPhotoPayload, photo.Slot)
		}
		data, err := base64.StdEncoding.DecodeString(photo.ContentBase64)
		if err != nil || len(data) == 0 {
			return entities.InspectionReport{}, fmt.Errorf("%w: slot %q is not valid base64", ErrInvalidPhotoPayload, photo.Slot)
		}

		relPath := path.Join("reports", r.ID, string(photo.Slot)+"_"+path.Base(photo.Filename))
		stored, err := u.content.Save(ctx, relPath, data)
		if err != nil {
			log.Printf("[report][usecase] photo save failed report_id=%s slot=%s err=%v", r.ID, photo.Slot, err)
			return entities.InspectionReport{}, err
		}
		r.Photos[photo.Slot] = stored
	}

	r.UpdatedAt = time.Now().UTC()
	updated, err := u.repo.Update(ctx, r)
	if err != nil {
		return entities.InspectionReport{}, err
	}
	log.Printf("[report][usecase] photos stored report_id=%s slots=%d missing=%d", r.ID, len(photos), len(updated.MissingPhotoSlots()))
	return updated, nil
}

// GeneratePDF renders and persists the laudo artifact. Preconditions: the
// four photo slots are populated, the appointment is realized and an issuing
// body can be resolved (report override, then the type default).
func (u *ReportUseCase) GeneratePDF(ctx context.Context, reportID string) (string, error) {
	reportID = strings.TrimSpace(reportID)
	if reportID == "" {
		return "", ErrInvalidReportPayload
	}

	r, err := u.repo.GetByID(ctx, reportID)
	if err != nil {
		return "", err
	}
	if r.ID == "" {
		return "", ErrReportNotFound
	}
	if missing := r.MissingPhotoSlots(); len(missing) > 0 {
		return "", fmt.Errorf("%w: %v", ErrMissingPhotos, missing)
	}

	appointment, err := u.appointmentRepo.GetByID(ctx, r.AppointmentID)
	if err != nil {
		return "", err
	}
	if appointment.ID == "" {
		return "", ErrAppointmentNotFound
	}
	if appointment.Status != entities.AppointmentStatusRealizado {
		return "", ErrAppointmentNotDone
	}

	it, err := u.typeRepo.GetByID(ctx, appointment.InspectionTypeID)
	if err != nil {
		return "", err
	}

	orgao, err := u.resolveOrgao(ctx, r, it)
	if err != nil {
		return "", err
	}

	doc := entities.LaudoDocument{
		Report:         r,
		Appointment:    appointment,
		InspectionType: it,
		Orgao:          orgao,
		PhotoFiles:     map[entities.PhotoSlot][]byte{},
	}
	if tenant, err := u.tenantRepo.GetByID(ctx, appointment.TenantID); err == nil {
		doc.Tenant = tenant
	}
	if customer, err := u.customerRepo.GetByID(ctx, appointment.CustomerID); err == nil {
		doc.Customer = customer
	}
	if vehicle, err := u.vehicleRepo.GetByID(ctx, appointment.VehicleID); err == nil {
		doc.Vehicle = vehicle
	}
	for slot, stored := range r.Photos {
		data, err := u.content.Read(ctx, stored)
		if err != nil {
			return "", fmt.Errorf("reading photo slot %q: %w", slot, err)
		}
		doc.PhotoFiles[slot] = data
	}

	pdf, err := u.renderer.Render(ctx, doc)
	if err != nil {
		log.Printf("[report][usecase] pdf render failed report_id=%s err=%v", r.ID, err)
		return "", err
	}

	pdfPath, err := u.content.Save(ctx, path.Join("reports", r.ID, "laudo.pdf"), pdf)
	if err != nil {
		return "", err
	}

	r.OrgaoID = orgao.ID
	r.PDFPath = pdfPath
	r.UpdatedAt = time.Now().UTC()
	if _, err := u.repo.Update(ctx, r); err != nil {
		return "", err
	}
	log.Printf("[report][usecase] pdf generated report_id=%s path=%s", r.ID, pdfPath)
	return pdfPath, nil
}

// resolveOrgao picks the issuing body: explicit report value, then the
// inspection type default. With neither set, an empty catalog is an operator
// configuration problem; a populated one means the caller must choose.
func (u *ReportUseCase) resolveOrgao(ctx context.Context, r entities.InspectionReport, it entities.InspectionType) (entities.IssuingBody, error) {
	orgaoID := r.OrgaoID
	if orgaoID == "" {
		orgaoID = it.OrgaoID
	}
	if orgaoID == "" {
		catalog, err := u.orgaoRepo.List(ctx)
		if err != nil {
			return entities.IssuingBody{}, err
		}
		if len(catalog) == 0 {
			return entities.IssuingBody{}, ErrNoIssuingBody
		}
		return entities.IssuingBody{}, ErrIssuingBodyRequired
	}

	orgao, err := u.orgaoRepo.GetByID(ctx, orgaoID)
	if err != nil {
		return entities.IssuingBody{}, err
	}
	if orgao.ID == "" {
		return entities.IssuingBody{}, ErrIssuingBodyNotFound
	}
	return orgao, nil
}

func isRequiredSlot(slot entities.PhotoSlot) bool {
	for _, s := range entities.RequiredPhotoSlots {
		if s == slot {
			return true
		}
	}
	return false
}
