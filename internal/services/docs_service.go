package services

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"backend/internal/repositories"
	"backend/internal/utils"

	"github.com/phpdave11/gofpdf"
)

// DocsService menghasilkan PDF bukti pembayaran untuk user.
type DocsService struct {
	PaymentRepo    repositories.PaymentRepository
	PlaygroundRepo repositories.PlaygroundRepository
	RequestID      string

	// Loader override untuk test.
	Loader func(int64) (receiptDocData, error)
}

type receiptDocData struct {
	PaymentID      int64
	Reference      string
	PlaygroundName string
	Method         string
	Amount         float64
	Status         string
	CreatedAt      time.Time
}

func (s DocsService) GenerateReceipt(paymentID int64) ([]byte, string, error) {
	data, err := s.loadReceiptData(paymentID)
	if err != nil {
		return nil, "", err
	}
	utils.LogEvent(s.RequestID, "docs", "generate_receipt", fmt.Sprintf("payment_id=%d", paymentID))
	return buildReceiptPDF(data)
}

func (s DocsService) loadReceiptData(paymentID int64) (receiptDocData, error) {
	if s.Loader != nil {
		return s.Loader(paymentID)
	}

	payment, err := s.PaymentRepo.GetByID(nil, paymentID)
	if err != nil {
		return receiptDocData{}, err
	}

	out := receiptDocData{
		PaymentID: payment.ID,
		Reference: payment.Reference,
		Method:    payment.Method,
		Amount:    payment.Amount,
		Status:    payment.Status,
		CreatedAt: payment.CreatedAt,
	}

	// playground bisa saja sudah soft-deleted; struk tetap harus keluar
	if playground, err := s.PlaygroundRepo.GetByID(nil, payment.PlaygroundID, false); err == nil {
		out.PlaygroundName = playground.Name
	}
	return out, nil
}

func buildReceiptPDF(d receiptDocData) ([]byte, string, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Payment Receipt", false)
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, "PAYMENT RECEIPT")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 12)
	lines := []string{
		fmt.Sprintf("Receipt No   : RCP-%d", d.PaymentID),
		fmt.Sprintf("Reference    : %s", safe(d.Reference, "-")),
		fmt.Sprintf("Playground   : %s", safe(d.PlaygroundName, "-")),
		fmt.Sprintf("Method       : %s", safe(d.Method, "-")),
		fmt.Sprintf("Amount       : %s", utils.FormatMoney(d.Amount)),
		fmt.Sprintf("Status       : %s", safe(d.Status, "-")),
		fmt.Sprintf("Date         : %s", d.CreatedAt.Format("2006-01-02 15:04")),
	}
	for _, line := range lines {
		pdf.Cell(0, 7, line)
		pdf.Ln(7)
	}

	pdf.Ln(6)
	pdf.SetFont("Helvetica", "I", 10)
	pdf.MultiCell(0, 6, "Simpan bukti ini dan tunjukkan saat tiba di lokasi playground.", "", "", false)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", err
	}

	filename := fmt.Sprintf("RECEIPT_%d.pdf", d.PaymentID)
	return buf.Bytes(), filename, nil
}

func safe(s, def string) string {
	if strings.TrimSpace(s) == "" {
		return def
	}
	return s
}
