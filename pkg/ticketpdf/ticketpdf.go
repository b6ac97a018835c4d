package ticketpdf

import (
	"bytes"
	"fmt"
	"time"

	"github.com/phpdave11/gofpdf"
)

// Ticket is what gets printed. QRPNG may be nil.
type Ticket struct {
	ID            string
	Date          string
	Time          string
	Description   string
	PaymentMethod string
	Total         int
	QRPNG         []byte
	IssuedAt      time.Time
}

const qrImageName = "qr"

// Render produces a one page A4 ticket.
func Render(museum string, t Ticket) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.SetTitle(tr(museum+" - Biglietto"), false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 20)
	pdf.Cell(0, 10, tr(museum))
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "B", 14)
	pdf.Cell(0, 8, "BIGLIETTO D'INGRESSO")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 12)
	lines := []string{
		"Codice       : " + t.ID,
		"Data visita  : " + t.Date,
		"Orario       : " + t.Time,
		"Biglietti    : " + t.Description,
		"Pagamento    : " + t.PaymentMethod,
		fmt.Sprintf("Totale       : €%d", t.Total),
		"Emesso il    : " + t.IssuedAt.Format("02/01/2006 15:04"),
	}
	for _, s := range lines {
		pdf.Cell(0, 7, tr(s))
		pdf.Ln(7)
	}

	if len(t.QRPNG) > 0 {
		opts := gofpdf.ImageOptions{ImageType: "PNG"}
		pdf.RegisterImageOptionsReader(qrImageName, opts, bytes.NewReader(t.QRPNG))
		pdf.ImageOptions(qrImageName, 10, pdf.GetY()+6, 60, 60, false, opts, 0, "")
		pdf.SetY(pdf.GetY() + 72)
	}

	pdf.Ln(6)
	pdf.SetFont("Helvetica", "I", 10)
	pdf.MultiCell(0, 6, tr("Mostra questo QR code all'ingresso del museo."), "", "", false)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render ticket pdf: %w", err)
	}
	return buf.Bytes(), nil
}
