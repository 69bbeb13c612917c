package infra

// pdf.go: delivery slip generation with go-pdf/fpdf.
// One A5 page: header, order/customer block, product line, cost total.
// The file is written to storagePath/delivery_{id}.pdf.

import (
	"fmt"
	"os"
	"path/filepath"

	"supplychainx/internal/model"

	"github.com/go-pdf/fpdf"
)

// DeliverySlip gathers the records printed on a slip.
type DeliverySlip struct {
	Delivery model.Delivery
	Order    model.Order
	Customer model.Customer
	Product  model.Product
}

// GenerateDeliverySlipPDF renders slip and returns the written file path.
func GenerateDeliverySlipPDF(slip DeliverySlip, storagePath string) (string, error) {
	if err := os.MkdirAll(storagePath, 0755); err != nil {
		return "", fmt.Errorf("pdf: create storage dir: %w", err)
	}
	filePath := filepath.Join(storagePath, fmt.Sprintf("delivery_%d.pdf", slip.Delivery.ID))

	pdf := fpdf.New("P", "mm", "A5", "")
	pdf.SetMargins(10, 10, 10)
	pdf.AddPage()

	pageW, _ := pdf.GetPageSize()
	contentW := pageW - 20

	// ── Header ───────────────────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "B", 14)
	pdf.CellFormat(contentW, 8, "SupplyChainX", "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 9)
	pdf.CellFormat(contentW, 5, fmt.Sprintf("Delivery slip #%d", slip.Delivery.ID), "", 1, "C", false, 0, "")
	pdf.Ln(4)

	// ── Shipment ─────────────────────────────────────────────────────────────
	labelW := contentW * 0.35
	row := func(label, value string) {
		pdf.SetFont("Helvetica", "B", 9)
		pdf.CellFormat(labelW, 6, label, "", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 9)
		pdf.CellFormat(contentW-labelW, 6, value, "", 1, "L", false, 0, "")
	}
	row("Order", fmt.Sprintf("#%d (%s)", slip.Order.ID, slip.Order.Status))
	row("Customer", slip.Customer.Name)
	row("Address", slip.Customer.Address+" "+slip.Customer.City)
	row("Vehicle", slip.Delivery.Vehicle)
	row("Driver", slip.Delivery.Driver)
	row("Status", string(slip.Delivery.Status))
	if slip.Delivery.DeliveryDate != nil {
		row("Delivery date", slip.Delivery.DeliveryDate.Format("02/01/2006"))
	}
	pdf.Ln(3)

	// ── Line ─────────────────────────────────────────────────────────────────
	col1 := contentW * 0.6
	col2 := contentW * 0.4
	pdf.SetFont("Helvetica", "B", 9)
	pdf.CellFormat(col1, 6, "Product", "B", 0, "L", false, 0, "")
	pdf.CellFormat(col2, 6, "Quantity", "B", 1, "R", false, 0, "")
	pdf.SetFont("Helvetica", "", 9)
	pdf.CellFormat(col1, 6, slip.Product.Name, "", 0, "L", false, 0, "")
	pdf.CellFormat(col2, 6, fmt.Sprintf("%d", slip.Order.Quantity), "", 1, "R", false, 0, "")
	pdf.Ln(2)

	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(col1, 7, "Delivery cost", "T", 0, "L", false, 0, "")
	pdf.CellFormat(col2, 7, slip.Delivery.Cost.StringFixed(2), "T", 1, "R", false, 0, "")

	if err := pdf.OutputFileAndClose(filePath); err != nil {
		return "", fmt.Errorf("pdf: write file: %w", err)
	}
	return filePath, nil
}
