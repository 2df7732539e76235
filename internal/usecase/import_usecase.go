package usecase

import (
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"vistoria_itl/internal/domain/entities"

	"github.com/xuri/excelize/v2"
)

var (
	ErrInvalidImportFile    = errors.New("import file is not a readable spreadsheet")
	ErrInvalidImportMapping = errors.New("import mapping is missing required fields")
	ErrEmptyImportFile      = errors.New("import file has no data rows")
)

// Spreadsheet fields the mapping must bind to column headers.
const (
	ImportFieldTenantID         = "tenant_id"
	ImportFieldCustomerID       = "customer_id"
	ImportFieldVehicleID        = "vehicle_id"
	ImportFieldInspectionTypeID = "inspection_type_id"
	ImportFieldScheduledAt      = "scheduled_at"
	ImportFieldNotes            = "notes"
)

var requiredImportFields = []string{
	ImportFieldTenantID,
	ImportFieldCustomerID,
	ImportFieldVehicleID,
	ImportFieldInspectionTypeID,
	ImportFieldScheduledAt,
}

// ImportRowError records one rejected spreadsheet row (1-based, as displayed
// by spreadsheet software).

type ImportRowError struct {
	Row   int    `json:"row"`
	Error string `json:"error"`
}

// ImportResult is the partial-success report of a bulk import.

type ImportResult struct {
	Success int              `json:"success"`
	Total   int              `json:"total"`
	Errors  []ImportRowError `json:"errors"`
}

// IImportUseCase turns a base64 XLSX plus an explicit column-to-field mapping
// into appointments, one row at a time, through the same create operation the
// interactive flow uses. Row failures are collected, never fatal.

type IImportUseCase interface {
	ImportAppointments(ctx context.Context, session entities.Session, fileBase64 string, mapping map[string]string) (ImportResult, error)
}

type ImportUseCase struct {
	appointments IAppointmentUseCase
}

var _ IImportUseCase = (*ImportUseCase)(nil)

func NewImportUseCase(appointments IAppointmentUseCase) *ImportUseCase {
	return &ImportUseCase{appointments: appointments}
}

func (u *ImportUseCase) ImportAppointments(ctx context.Context, session entities.Session, fileBase64 string, mapping map[string]string) (ImportResult, error) {
	for _, field := range requiredImportFields {
		if strings.TrimSpace(mapping[field]) == "" {
			return ImportResult{}, fmt.Errorf("%w: %s", ErrInvalidImportMapping, field)
		}
	}

	raw, err := base64.StdEncoding.DecodeString(fileBase64)
	if err != nil {
		return ImportResult{}, ErrInvalidImportFile
	}
	f, err := excelize.OpenReader(bytes.NewReader(raw))
	if err != nil {
		return ImportResult{}, ErrInvalidImportFile
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return ImportResult{}, ErrEmptyImportFile
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return ImportResult{}, ErrInvalidImportFile
	}
	if len(rows) < 2 {
		return ImportResult{}, ErrEmptyImportFile
	}

	columns := headerIndex(rows[0])
	result := ImportResult{Errors: []ImportRowError{}}
	log.Printf("[import][usecase] start rows=%d", len(rows)-1)

	for i, row := range rows[1:] {
		rowNumber := i + 2
		result.Total++

		a, err := rowToAppointment(row, columns, mapping)
		if err != nil {
			result.Errors = append(result.Errors, ImportRowError{Row: rowNumber, Error: err.Error()})
			continue
		}
		if _, err := u.appointments.Create(ctx, session, a); err != nil {
			result.Errors = append(result.Errors, ImportRowError{Row: rowNumber, Error: err.Error()})
			continue
		}
		result.Success++
	}

	log.Printf("[import][usecase] done total=%d success=%d errors=%d", result.Total, result.Success, len(result.Errors))
	return result, nil
}

func headerIndex(header []string) map[string]int {
	idx := make(map[string]int, len(header))
	for i, h := range header {
		h = strings.TrimSpace(h)
		if h != "" {
			idx[h] = i
		}
	}
	return idx
}

func rowToAppointment(row []string, columns map[string]int, mapping map[string]string) (entities.Appointment, error) {
	cell := func(field string) string {
		header := strings.TrimSpace(mapping[field])
		if header == "" {
			return ""
		}
		i, ok := columns[header]
		if !ok || i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}

	scheduledAt, err := parseImportTime(cell(ImportFieldScheduledAt))
	if err != nil {
		return entities.Appointment{}, err
	}

	return entities.Appointment{
		TenantID:         cell(ImportFieldTenantID),
		CustomerID:       cell(ImportFieldCustomerID),
		VehicleID:        cell(ImportFieldVehicleID),
		InspectionTypeID: cell(ImportFieldInspectionTypeID),
		ScheduledAt:      scheduledAt,
		Notes:            cell(ImportFieldNotes),
	}, nil
}

// parseImportTime accepts the formats spreadsheets commonly hold.
func parseImportTime(value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, errors.New("missing scheduled_at")
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02 15:04:05", "2006-01-02 15:04", "02/01/2006 15:04"} {
		if t, err := time.Parse(layout, value); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("unparseable scheduled_at %q", value)
}
