package usecase

import (
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	"testing"

	"vistoria_itl/internal/domain/entities"

	"github.com/xuri/excelize/v2"
)

// fakeAppointments records Create calls and fails for the tenant ids listed
// in failFor.
type fakeAppointments struct {
	IAppointmentUseCase
	created []entities.Appointment
	failFor map[string]error
}

func (f *fakeAppointments) Create(_ context.Context, _ entities.Session, a entities.Appointment) (entities.Appointment, error) {
	if err := f.failFor[a.TenantID]; err != nil {
		return entities.Appointment{}, err
	}
	f.created = append(f.created, a)
	return a, nil
}

func validMapping() map[string]string {
	return map[string]string{
		ImportFieldTenantID:         "Tenant",
		ImportFieldCustomerID:       "Customer",
		ImportFieldVehicleID:        "Vehicle",
		ImportFieldInspectionTypeID: "Type",
		ImportFieldScheduledAt:      "Date",
		ImportFieldNotes:            "Notes",
	}
}

// xlsxBase64 builds a one-sheet spreadsheet from rows (first row is the
// header) and returns it base64 encoded, the way the import endpoint
// receives it.
func xlsxBase64(t *testing.T, rows [][]string) string {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()
	sheet := f.GetSheetName(0)
	for i, row := range rows {
		for j, value := range row {
			cell, err := excelize.CoordinatesToCellName(j+1, i+1)
			if err != nil {
				t.Fatalf("cell name: %v", err)
			}
			if err := f.SetCellStr(sheet, cell, value); err != nil {
				t.Fatalf("set cell: %v", err)
			}
		}
	}
	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		t.Fatalf("write xlsx: %v", err)
	}
	return base64.StdEncoding.EncodeToString(buf.Bytes())
}

func TestImportUseCase_Validations(t *testing.T) {
	t.Run("missing mapping field", func(t *testing.T) {
		uc := NewImportUseCase(&fakeAppointments{})
		mapping := validMapping()
		delete(mapping, ImportFieldScheduledAt)

		_, err := uc.ImportAppointments(context.Background(), adminSession, "ignored", mapping)
		if !errors.Is(err, ErrInvalidImportMapping) {
			t.Fatalf("expected ErrInvalidImportMapping, got %v", err)
		}
	})

	t.Run("invalid base64", func(t *testing.T) {
		uc := NewImportUseCase(&fakeAppointments{})
		_, err := uc.ImportAppointments(context.Background(), adminSession, "%%%", validMapping())
		if !errors.Is(err, ErrInvalidImportFile) {
			t.Fatalf("expected ErrInvalidImportFile, got %v", err)
		}
	})

	t.Run("not a spreadsheet", func(t *testing.T) {
		uc := NewImportUseCase(&fakeAppointments{})
		notXLSX := base64.StdEncoding.EncodeToString([]byte("plain text"))
		_, err := uc.ImportAppointments(context.Background(), adminSession, notXLSX, validMapping())
		if !errors.Is(err, ErrInvalidImportFile) {
			t.Fatalf("expected ErrInvalidImportFile, got %v", err)
		}
	})

	t.Run("header only", func(t *testing.T) {
		uc := NewImportUseCase(&fakeAppointments{})
		file := xlsxBase64(t, [][]string{{"Tenant", "Customer", "Vehicle", "Type", "Date"}})
		_, err := uc.ImportAppointments(context.Background(), adminSession, file, validMapping())
		if !errors.Is(err, ErrEmptyImportFile) {
			t.Fatalf("expected ErrEmptyImportFile, got %v", err)
		}
	})
}

func TestImportUseCase_RowAccounting(t *testing.T) {
	fake := &fakeAppointments{failFor: map[string]error{"ten-bad": ErrTenantInactive}}
	uc := NewImportUseCase(fake)

	file := xlsxBase64(t, [][]string{
		{"Tenant", "Customer", "Vehicle", "Type", "Date", "Notes"},
		{"ten-1", "cus-1", "veh-1", "it-1", "2026-04-10 09:30", "primeira"},
		{"ten-bad", "cus-2", "veh-2", "it-1", "2026-04-10T10:00:00Z", ""},
		{"ten-1", "cus-3", "veh-3", "it-1", "not-a-date", ""},
		{"ten-1", "cus-4", "veh-4", "it-1", "11/04/2026 08:15", ""},
	})

	res, err := uc.ImportAppointments(context.Background(), adminSession, file, validMapping())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Total != 4 || res.Success != 2 || len(res.Errors) != 2 {
		t.Fatalf("unexpected accounting: %+v", res)
	}
	// Row numbers are 1-based including the header row.
	if res.Errors[0].Row != 3 || res.Errors[1].Row != 4 {
		t.Fatalf("unexpected error rows: %+v", res.Errors)
	}

	if len(fake.created) != 2 {
		t.Fatalf("expected 2 created appointments, got %d", len(fake.created))
	}
	first := fake.created[0]
	if first.TenantID != "ten-1" || first.CustomerID != "cus-1" || first.Notes != "primeira" {
		t.Fatalf("row not mapped through headers: %+v", first)
	}
	if first.ScheduledAt.IsZero() {
		t.Fatalf("scheduled_at must be parsed")
	}
}

func TestParseImportTime(t *testing.T) {
	cases := []struct {
		value string
		ok    bool
	}{
		{"2026-04-10T09:30:00Z", true},
		{"2026-04-10 09:30:00", true},
		{"2026-04-10 09:30", true},
		{"10/04/2026 09:30", true},
		{"", false},
		{"tomorrow", false},
	}
	for _, tc := range cases {
		_, err := parseImportTime(tc.value)
		if (err == nil) != tc.ok {
			t.Fatalf("parseImportTime(%q) err=%v want ok=%v", tc.value, err, tc.ok)
		}
	}
}
