package utils

import (
	"bytes"
	"fmt"
	"time"

	"certifyme/config"
	"certifyme/models"

	"github.com/jung-kurt/gofpdf"
)

// RenderCertificatePDF renders a completion certificate as a single landscape
// A4 page with the verification QR code embedded bottom-right.
func RenderCertificatePDF(cert *models.Certificate, qrPNG []byte) ([]byte, error) {
	cfg := config.AppConfig

	pdf := gofpdf.New("L", "mm", "A4", "")
	pdf.SetAutoPageBreak(false, 0)
	pdf.AddPage()

	pageW, pageH := pdf.GetPageSize()
	margin := 12.0

	// Border
	pdf.SetDrawColor(204, 204, 204)
	pdf.SetLineWidth(0.8)
	pdf.Rect(margin, margin, pageW-2*margin, pageH-2*margin, "D")

	// Letterhead
	pdf.SetXY(margin+8, margin+8)
	pdf.SetFont("Helvetica", "B", 14)
	pdf.CellFormat(0, 7, cfg.InstitutionName, "", 1, "L", false, 0, "")
	pdf.SetX(margin + 8)
	pdf.SetFont("Helvetica", "", 12)
	pdf.CellFormat(0, 6, "Department of "+cfg.DepartmentName, "", 1, "L", false, 0, "")

	// Title
	pdf.Ln(12)
	pdf.SetFont("Helvetica", "B", 30)
	pdf.CellFormat(0, 14, "Certificate of Completion", "", 1, "C", false, 0, "")

	pdf.Ln(4)
	pdf.SetFont("Helvetica", "", 16)
	pdf.CellFormat(0, 8, "This certifies that", "", 1, "C", false, 0, "")

	pdf.Ln(2)
	pdf.SetFont("Helvetica", "B", 28)
	pdf.SetTextColor(0, 51, 102)
	pdf.CellFormat(0, 13, cert.Name, "", 1, "C", false, 0, "")
	pdf.SetTextColor(0, 0, 0)

	pdf.Ln(2)
	pdf.SetFont("Helvetica", "", 16)
	pdf.CellFormat(0, 8, "has successfully completed the", "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "B", 18)
	pdf.CellFormat(0, 9, cfg.CourseName, "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 16)
	pdf.CellFormat(0, 8, "program.", "", 1, "C", false, 0, "")

	// Details
	detailsX := margin + 14
	detailsY := pdf.GetY() + 10
	pdf.SetXY(detailsX, detailsY)
	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(34, 6, "Issue Date:", "", 0, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 11)
	pdf.CellFormat(70, 6, cert.IssueDate.Format("02 Jan 2006"), "", 1, "L", false, 0, "")
	pdf.SetX(detailsX)
	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(34, 6, "Certificate ID:", "", 0, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 11)
	pdf.CellFormat(70, 6, cert.CertificateID, "", 1, "L", false, 0, "")

	// QR code, bottom-right
	qrSize := 28.0
	qrX := pageW - margin - 10 - qrSize
	qrY := pageH - margin - 14 - qrSize
	opts := gofpdf.ImageOptions{ImageType: "PNG"}
	pdf.RegisterImageOptionsReader("verify-qr", opts, bytes.NewReader(qrPNG))
	pdf.ImageOptions("verify-qr", qrX, qrY, qrSize, qrSize, false, opts, 0, "")
	pdf.SetXY(qrX, qrY+qrSize+1)
	pdf.SetFont("Helvetica", "", 7)
	pdf.CellFormat(qrSize, 3.5, "Scan to verify", "", 1, "C", false, 0, "")

	// Signature block, bottom-left
	sigX := margin + 14
	sigW := 70.0
	sigLineY := pageH - margin - 18
	pdf.SetDrawColor(51, 51, 51)
	pdf.SetLineWidth(0.3)
	pdf.Line(sigX, sigLineY, sigX+sigW, sigLineY)
	pdf.SetXY(sigX, sigLineY+1.5)
	pdf.SetFont("Helvetica", "", 9)
	pdf.CellFormat(sigW, 4.5, "Authorized Signature", "", 1, "C", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render certificate PDF: %w", err)
	}
	return buf.Bytes(), nil
}

// RenderLORPDF renders a letter of recommendation for a student as a portrait
// A4 letter signed by the configured instructor.
func RenderLORPDF(studentName, adminNotes string, issueDate time.Time) ([]byte, error) {
	cfg := config.AppConfig

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(22, 22, 22)
	pdf.AddPage()

	// Letterhead
	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(0, 8, cfg.InstitutionName, "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 12)
	pdf.CellFormat(0, 6, "Department of "+cfg.DepartmentName, "", 1, "L", false, 0, "")

	pdf.Ln(2)
	pdf.SetDrawColor(204, 204, 204)
	pdf.SetLineWidth(0.2)
	x := pdf.GetX()
	pageW, _ := pdf.GetPageSize()
	pdf.Line(x, pdf.GetY(), pageW-22, pdf.GetY())
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "", 11)
	pdf.CellFormat(0, 6, "Date: "+issueDate.Format("02 Jan 2006"), "", 1, "R", false, 0, "")
	pdf.Ln(8)

	pdf.CellFormat(0, 6, "To Whom It May Concern,", "", 1, "L", false, 0, "")
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "B", 11)
	pdf.MultiCell(0, 6, "Subject: Letter of Recommendation for "+studentName, "", "L", false)
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "", 11)
	paragraphs := []string{
		fmt.Sprintf("It is with great pleasure that I recommend %s, who successfully completed the %s course under my instruction at %s. I have had the opportunity to observe %s's progress and abilities throughout the duration of the course.",
			studentName, cfg.CourseName, cfg.InstitutionName, studentName),
		fmt.Sprintf("%s demonstrated a strong aptitude for both front-end and back-end development concepts covered in the %s program, including core technologies across the full application stack.",
			studentName, cfg.CourseName),
		fmt.Sprintf("Beyond technical skills, %s is a dedicated and proactive learner, consistently meeting deadlines and demonstrating a strong work ethic, with excellent communication and collaboration skills.",
			studentName),
	}
	for _, p := range paragraphs {
		pdf.MultiCell(0, 6, p, "", "L", false)
		pdf.Ln(4)
	}

	if adminNotes != "" {
		pdf.SetFont("Helvetica", "B", 11)
		pdf.CellFormat(0, 6, "Additional Notes:", "", 1, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 11)
		pdf.MultiCell(0, 6, adminNotes, "", "L", false)
		pdf.Ln(4)
	}

	pdf.MultiCell(0, 6, fmt.Sprintf("Based on %s's performance and potential demonstrated in the %s course, I recommend them highly for future opportunities. I am confident they would be a valuable asset to any team.",
		studentName, cfg.CourseName), "", "L", false)
	pdf.Ln(8)

	pdf.CellFormat(0, 6, "Sincerely,", "", 1, "L", false, 0, "")
	pdf.Ln(14)

	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(0, 6, cfg.InstructorName, "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 11)
	pdf.CellFormat(0, 6, cfg.InstructorTitle, "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 6, "Department of "+cfg.DepartmentName, "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 6, cfg.InstitutionName, "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 6, "Email: "+cfg.ContactEmail, "", 1, "L", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render LOR PDF: %w", err)
	}
	return buf.Bytes(), nil
}
