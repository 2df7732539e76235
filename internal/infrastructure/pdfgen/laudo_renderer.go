package pdfgen

import (
	"bytes"
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"vistoria_itl/internal/domain/entities"
	"vistoria_itl/internal/usecase/interfaces"

	"github.com/go-pdf/fpdf"
)

// LaudoRenderer produces the official laudo PDF: header with the issuing
// body, report/appointment identification, vehicle and technician data, and
// the four evidence photos in a 2x2 grid.

type LaudoRenderer struct{}

var _ interfaces.ILaudoRenderer = (*LaudoRenderer)(nil)

func NewLaudoRenderer() *LaudoRenderer {
	return &LaudoRenderer{}
}

func (r *LaudoRenderer) Render(_ context.Context, doc entities.LaudoDocument) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetTitle(fmt.Sprintf("Laudo %s", doc.Report.ReportNumber), false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(0, 10, "LAUDO DE VISTORIA VEICULAR", "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 11)
	pdf.CellFormat(0, 7, orgaoLine(doc.Orgao), "", 1, "C", false, 0, "")
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(0, 7, fmt.Sprintf("Laudo nº %s", doc.Report.ReportNumber), "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)

	writeField(pdf, "ITL", doc.Tenant.LegalName)
	writeField(pdf, "Cliente", doc.Customer.Name)
	writeField(pdf, "Veículo", vehicleLine(doc.Vehicle))
	writeField(pdf, "Tipo de vistoria", doc.InspectionType.Name)
	writeField(pdf, "Realizada em", doc.Appointment.ScheduledAt.Format("02/01/2006 15:04"))
	writeField(pdf, "Válido até", doc.Report.ValidUntil.Format("02/01/2006"))
	writeField(pdf, "Técnico responsável", technicianLine(doc.Report))
	pdf.Ln(5)

	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(0, 7, "Evidências fotográficas", "", 1, "L", false, 0, "")

	const (
		cellW = 90.0
		cellH = 62.0
	)
	x0, y0 := pdf.GetX(), pdf.GetY()
	for i, slot := range entities.RequiredPhotoSlots {
		col := float64(i % 2)
		row := float64(i / 2)
		x := x0 + col*(cellW+5)
		y := y0 + row*(cellH+10)

		pdf.SetXY(x, y)
		pdf.SetFont("Helvetica", "I", 9)
		pdf.CellFormat(cellW, 5, slotLabel(slot), "", 0, "L", false, 0, "")

		data := doc.PhotoFiles[slot]
		imageType := sniffImageType(data)
		if imageType == "" {
			log.Printf("[report][pdf] slot %s has unsupported image data, skipping embed", slot)
			continue
		}
		name := fmt.Sprintf("%s-%s", doc.Report.ID, slot)
		opts := fpdf.ImageOptions{ImageType: imageType, ReadDpi: true}
		pdf.RegisterImageOptionsReader(name, opts, bytes.NewReader(data))
		pdf.ImageOptions(name, x, y+6, cellW, cellH-8, false, opts, 0, "")
	}

	pdf.SetY(y0 + 2*(cellH+10))
	pdf.SetFont("Helvetica", "", 8)
	pdf.CellFormat(0, 5, fmt.Sprintf("Emitido em %s", time.Now().UTC().Format("02/01/2006 15:04 MST")), "", 1, "R", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func writeField(pdf *fpdf.Fpdf, label, value string) {
	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(45, 6, label+":", "", 0, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(0, 6, value, "", 1, "L", false, 0, "")
}

func orgaoLine(orgao entities.IssuingBody) string {
	if orgao.Code != "" {
		return fmt.Sprintf("%s (%s)", orgao.Name, orgao.Code)
	}
	return orgao.Name
}

func vehicleLine(v entities.Vehicle) string {
	line := v.Plate
	if v.Make != "" || v.Model != "" {
		line = fmt.Sprintf("%s - %s %s", v.Plate, v.Make, v.Model)
	}
	if v.Year > 0 {
		line = fmt.Sprintf("%s (%d)", line, v.Year)
	}
	return line
}

func technicianLine(r entities.InspectionReport) string {
	if r.TechnicianRegistry != "" {
		return fmt.Sprintf("%s (%s)", r.TechnicianName, r.TechnicianRegistry)
	}
	return r.TechnicianName
}

func slotLabel(slot entities.PhotoSlot) string {
	switch slot {
	case entities.PhotoSlotFront:
		return "Frente"
	case entities.PhotoSlotRear:
		return "Traseira"
	case entities.PhotoSlotPlate:
		return "Placa"
	case entities.PhotoSlotPanoramic:
		return "Panorâmica"
	}
	return string(slot)
}

// sniffImageType maps the detected mime type onto fpdf's image type names.
func sniffImageType(data []byte) string {
	switch http.DetectContentType(data) {
	case "image/jpeg":
		return "JPG"
	case "image/png":
		return "PNG"
	case "image/gif":
		return "GIF"
	}
	return ""
}
