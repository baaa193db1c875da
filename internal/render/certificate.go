// internal/render/certificate.go
package render

import (
	"bytes"
	"fmt"
	"time"

	"github.com/campusloop/campusloop/internal/model"
	"github.com/go-pdf/fpdf"
)

// CertificateData carries everything printed on one certificate page.
type CertificateData struct {
	RecipientName string
	CertificateID string
	IssuedOn      time.Time
	Template      model.CertificateTemplate
}

// PDFRenderer renders single-page landscape A4 certificates.
type PDFRenderer struct{}

func NewPDFRenderer() *PDFRenderer {
	return &PDFRenderer{}
}

func (r *PDFRenderer) Render(data CertificateData) ([]byte, error) {
	pdf := fpdf.New("L", "mm", "A4", "")
	pdf.SetAutoPageBreak(false, 0)
	pdf.AddPage()

	pageW, pageH := pdf.GetPageSize()

	// Border
	pdf.SetLineWidth(1.2)
	pdf.SetDrawColor(30, 64, 124)
	pdf.Rect(8, 8, pageW-16, pageH-16, "D")

	tpl := data.Template

	pdf.SetY(22)
	centered := func(text string, family, style string, size float64, lineH float64) {
		if text == "" {
			return
		}
		pdf.SetFont(family, style, size)
		pdf.CellFormat(0, lineH, text, "", 1, "C", false, 0, "")
	}

	pdf.SetTextColor(90, 90, 90)
	centered(tpl.TopHeader, "Helvetica", "", 12, 8)

	pdf.SetTextColor(30, 64, 124)
	centered(tpl.MainHeader, "Helvetica", "B", 22, 14)

	pdf.SetTextColor(20, 20, 20)
	centered(tpl.Title, "Times", "B", 30, 18)
	pdf.SetTextColor(90, 90, 90)
	centered(tpl.Subtitle, "Times", "I", 14, 9)

	pdf.Ln(4)
	centered(tpl.PresentationLine, "Helvetica", "", 13, 9)

	pdf.SetTextColor(30, 64, 124)
	centered(data.RecipientName, "Times", "B", 26, 16)

	pdf.SetTextColor(20, 20, 20)
	if tpl.Body != "" {
		pdf.SetFont("Helvetica", "", 12)
		pdf.SetX(40)
		pdf.MultiCell(pageW-80, 7, tpl.Body, "", "C", false)
	}

	dateLine := tpl.DateLine
	if dateLine == "" {
		dateLine = "Issued on " + data.IssuedOn.Format("January 2, 2006")
	}
	pdf.Ln(4)
	pdf.SetTextColor(90, 90, 90)
	centered(dateLine, "Helvetica", "", 11, 8)

	r.drawSignatures(pdf, tpl.Signatures, pageW, pageH)

	pdf.SetY(pageH - 16)
	pdf.SetFont("Helvetica", "", 8)
	pdf.SetTextColor(120, 120, 120)
	pdf.CellFormat(0, 5, fmt.Sprintf("Certificate No. %s", data.CertificateID), "", 0, "C", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("rendering certificate pdf: %w", err)
	}
	return buf.Bytes(), nil
}

// signatureLayout spaces n signature blocks evenly across the page width.
// Blocks shrink below their preferred width once full-width blocks would
// overlap, keeping the gap positive for any count.
func signatureLayout(pageW float64, n int) (blockW, gap float64) {
	const minGap = 6.0
	blockW = 60.0
	gap = (pageW - blockW*float64(n)) / float64(n+1)
	if gap < minGap {
		gap = minGap
		blockW = (pageW - gap*float64(n+1)) / float64(n)
	}
	return blockW, gap
}

// drawSignatures lays the signature blocks out evenly across the bottom,
// preserving their configured order left to right.
func (r *PDFRenderer) drawSignatures(pdf *fpdf.Fpdf, blocks []model.SignatureBlock, pageW, pageH float64) {
	if len(blocks) == 0 {
		return
	}

	blockW, gap := signatureLayout(pageW, len(blocks))
	y := pageH - 40

	for i, block := range blocks {
		x := gap + float64(i)*(blockW+gap)

		pdf.SetLineWidth(0.3)
		pdf.SetDrawColor(20, 20, 20)
		pdf.Line(x, y, x+blockW, y)

		pdf.SetXY(x, y+2)
		pdf.SetFont("Helvetica", "B", 10)
		pdf.SetTextColor(20, 20, 20)
		pdf.CellFormat(blockW, 5, block.Name, "", 2, "C", false, 0, "")
		pdf.SetFont("Helvetica", "", 9)
		pdf.SetTextColor(90, 90, 90)
		pdf.SetX(x)
		pdf.CellFormat(blockW, 5, block.Title, "", 0, "C", false, 0, "")
	}
}
