package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"vistoria_itl/internal/adapter/http/handlers/mocks"
	"vistoria_itl/internal/domain/entities"
	"vistoria_itl/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestReportHandler_Create(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid payload", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIReportUseCase(ctrl)
		h := NewReportHandler(uc)

		r := gin.New()
		r.POST("/v1/appointments/:appointment_id/report", h.Create)

		req := httptest.NewRequest(http.MethodPost, "/v1/appointments/app-1/report", bytes.NewBufferString(`{"report_number":"LV-1"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("appointment not realized", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIReportUseCase(ctrl)
		h := NewReportHandler(uc)

		r := gin.New()
		r.POST("/v1/appointments/:appointment_id/report", h.Create)

		uc.EXPECT().Create(gomock.Any(), gomock.Any(), "app-1", gomock.Any()).Return(entities.InspectionReport{}, usecase.ErrAppointmentNotDone)

		body := `{"report_number":"LV-1","technician_name":"Joana Prado","valid_until":"2027-04-10T00:00:00Z"}`
		req := httptest.NewRequest(http.MethodPost, "/v1/appointments/app-1/report", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIReportUseCase(ctrl)
		h := NewReportHandler(uc)

		r := gin.New()
		r.POST("/v1/appointments/:appointment_id/report", h.Create)

		uc.EXPECT().Create(gomock.Any(), gomock.Any(), "app-1", gomock.AssignableToTypeOf(usecase.ReportMetadata{})).DoAndReturn(
			func(_ context.Context, _ entities.Session, appointmentID string, md usecase.ReportMetadata) (entities.InspectionReport, error) {
				if md.ReportNumber != "LV-1" || md.TechnicianName != "Joana Prado" {
					t.Fatalf("metadata not bound: %+v", md)
				}
				return entities.InspectionReport{ID: appointmentID, AppointmentID: appointmentID, ReportNumber: md.ReportNumber, TechnicianName: md.TechnicianName, ValidUntil: md.ValidUntil}, nil
			},
		)

		body := `{"report_number":"LV-1","technician_name":"Joana Prado","valid_until":"2027-04-10T00:00:00Z"}`
		req := httptest.NewRequest(http.MethodPost, "/v1/appointments/app-1/report", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d body=%s", w.Code, w.Body.String())
		}
		var resp map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &resp)
		if resp["id"] != "app-1" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
		missing, ok := resp["missing_photo_slots"].([]any)
		if !ok || len(missing) != 4 {
			t.Fatalf("expected 4 missing slots, got %v", resp["missing_photo_slots"])
		}
	})
}

func TestReportHandler_UploadPhotos(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing photos field", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIReportUseCase(ctrl)
		h := NewReportHandler(uc)

		r := gin.New()
		r.POST("/v1/reports/:report_id/photos", h.UploadPhotos)

		req := httptest.NewRequest(http.MethodPost, "/v1/reports/rep-1/photos", bytes.NewBufferString(`{}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("invalid slot from usecase", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIReportUseCase(ctrl)
		h := NewReportHandler(uc)

		r := gin.New()
		r.POST("/v1/reports/:report_id/photos", h.UploadPhotos)

		uc.EXPECT().UploadPhotos(gomock.Any(), "rep-1", gomock.Any()).Return(entities.InspectionReport{}, usecase.ErrInvalidPhotoPayload)

		body := `{"photos":[{"slot":"selfie","filename":"x.jpg","content_base64":"aW1n"}]}`
		req := httptest.NewRequest(http.MethodPost, "/v1/reports/rep-1/photos", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIReportUseCase(ctrl)
		h := NewReportHandler(uc)

		r := gin.New()
		r.POST("/v1/reports/:report_id/photos", h.UploadPhotos)

		uc.EXPECT().UploadPhotos(gomock.Any(), "rep-1", gomock.AssignableToTypeOf([]usecase.PhotoUpload{})).DoAndReturn(
			func(_ context.Context, _ string, uploads []usecase.PhotoUpload) (entities.InspectionReport, error) {
				if len(uploads) != 1 || uploads[0].Slot != entities.PhotoSlotFront {
					t.Fatalf("unexpected uploads: %+v", uploads)
				}
				return entities.InspectionReport{
					ID:            "rep-1",
					AppointmentID: "rep-1",
					Photos:        map[entities.PhotoSlot]string{entities.PhotoSlotFront: "reports/rep-1/front_x.jpg"},
				}, nil
			},
		)

		body := `{"photos":[{"slot":"front","filename":"x.jpg","content_base64":"aW1n"}]}`
		req := httptest.NewRequest(http.MethodPost, "/v1/reports/rep-1/photos", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var resp map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &resp)
		missing, ok := resp["missing_photo_slots"].([]any)
		if !ok || len(missing) != 3 {
			t.Fatalf("expected 3 missing slots, got %v", resp["missing_photo_slots"])
		}
	})
}

func TestReportHandler_GeneratePDF(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("mapped errors", func(t *testing.T) {
		cases := []struct {
			err  error
			code int
		}{
			{usecase.ErrReportNotFound, http.StatusNotFound},
			{usecase.ErrMissingPhotos, http.StatusConflict},
			{usecase.ErrAppointmentNotDone, http.StatusConflict},
			{usecase.ErrIssuingBodyRequired, http.StatusConflict},
			{usecase.ErrNoIssuingBody, http.StatusConflict},
			{errors.New("boom"), http.StatusInternalServerError},
		}

		for _, tc := range cases {
			ctrl := gomock.NewController(t)
			uc := mocks.NewMockIReportUseCase(ctrl)
			h := NewReportHandler(uc)

			r := gin.New()
			r.POST("/v1/reports/:report_id/pdf", h.GeneratePDF)

			uc.EXPECT().GeneratePDF(gomock.Any(), "rep-1").Return("", tc.err)

			req := httptest.NewRequest(http.MethodPost, "/v1/reports/rep-1/pdf", nil)
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			if w.Code != tc.code {
				t.Fatalf("for err %v expected %d got %d", tc.err, tc.code, w.Code)
			}
			ctrl.Finish()
		}
	})

	t.Run("success returns pdf path", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIReportUseCase(ctrl)
		h := NewReportHandler(uc)

		r := gin.New()
		r.POST("/v1/reports/:report_id/pdf", h.GeneratePDF)

		uc.EXPECT().GeneratePDF(gomock.Any(), "rep-1").Return("reports/rep-1/laudo.pdf", nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/reports/rep-1/pdf", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var resp map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &resp)
		if resp["pdf_path"] != "reports/rep-1/laudo.pdf" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}

func TestReportHandler_GetByAppointmentID(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIReportUseCase(ctrl)
	h := NewReportHandler(uc)

	r := gin.New()
	r.GET("/v1/appointments/:appointment_id/report", h.GetByAppointmentID)

	report := entities.InspectionReport{
		ID:             "app-1",
		AppointmentID:  "app-1",
		ReportNumber:   "LV-1",
		TechnicianName: "Joana Prado",
		ValidUntil:     time.Date(2027, 4, 10, 0, 0, 0, 0, time.UTC),
		PDFPath:        "reports/app-1/laudo.pdf",
	}
	uc.EXPECT().GetByAppointmentID(gomock.Any(), "app-1").Return(report, nil)

	req := httptest.NewRequest(http.MethodGet, "/v1/appointments/app-1/report", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var resp map[string]any
	_ = json.Unmarshal(w.Body.Bytes(), &resp)
	if resp["pdf_path"] != "reports/app-1/laudo.pdf" {
		t.Fatalf("unexpected body: %s", w.Body.String())
	}
}
