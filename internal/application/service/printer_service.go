package service

import (
	"context"
	"fmt"
	"log"

	"github.com/google/uuid"
	"github.com/kilatwash/washpos-api/internal/config"
	"github.com/kilatwash/washpos-api/internal/domain/entity"
	"github.com/kilatwash/washpos-api/internal/domain/repository"
	"github.com/kilatwash/washpos-api/pkg/apperror"
	"github.com/kilatwash/washpos-api/pkg/printer"
)

// PrinterService handles receipt formatting and thermal printing.
type PrinterService struct {
	printer     printer.Printer
	posTxRepo   repository.POSTransactionRepository
	printerType string
	paperWidth  int
	store       config.StoreConfig
}

// NewPrinterService creates a new printer service.
func NewPrinterService(
	p printer.Printer,
	posTxRepo repository.POSTransactionRepository,
	cfg *config.PrinterConfig,
	store config.StoreConfig,
) *PrinterService {
	width := cfg.PaperWidth
	if width <= 0 {
		width = 32
	}
	return &PrinterService{
		printer:     p,
		posTxRepo:   posTxRepo,
		printerType: cfg.Type,
		paperWidth:  width,
		store:       store,
	}
}

// PrinterStatus returns the current printer status information.
type PrinterStatus struct {
	Configured bool   `json:"configured"`
	Connected  bool   `json:"connected"`
	Type       string `json:"type"`
}

// GetStatus returns printer connection status.
func (s *PrinterService) GetStatus() *PrinterStatus {
	return &PrinterStatus{
		Configured: s.printerType != "null" && s.printerType != "none" && s.printerType != "",
		Connected:  s.printer.IsConnected(),
		Type:       s.printerType,
	}
}

// TestPrint sends a test page to the printer.
// Returns the receipt data so the handler can return it as JSON when printer is disabled.
func (s *PrinterService) TestPrint() (*entity.Receipt, error) {
	receipt := &entity.Receipt{
		Header: entity.ReceiptHeader{
			StoreName: "PRINTER TEST",
			Address:   s.store.Address,
			Phone:     s.store.Phone,
		},
		TransactionNumber: "TEST-001",
		Date:              "Test Date",
		Cashier:           "System",
		Items: []entity.ReceiptItem{
			{Name: "Test Item 1", Quantity: 1, UnitPrice: 10000, Total: 10000},
			{Name: "Test Item 2", Quantity: 2, UnitPrice: 5000, Total: 10000},
		},
		Subtotal: 20000,
		Total:    20000,
		Paid:     20000,
	}

	data := s.FormatReceipt(receipt)
	if err := s.printer.Print(data); err != nil {
		return receipt, fmt.Errorf("test print failed: %w", err)
	}

	return receipt, nil
}

// BuildReceipt composes the printable receipt for a settled POS transaction.
func (s *PrinterService) BuildReceipt(ctx context.Context, posTransactionID uuid.UUID) (*entity.Receipt, error) {
	tx, err := s.posTxRepo.GetWithItems(ctx, posTransactionID)
	if err != nil {
		return nil, err
	}
	if tx == nil {
		return nil, apperror.NewNotFoundError("POS transaction")
	}

	receipt := &entity.Receipt{
		Header: entity.ReceiptHeader{
			StoreName: s.store.Name,
			Address:   s.store.Address,
			Phone:     s.store.Phone,
		},
		TransactionNumber: tx.TransactionNumber,
		Date:              tx.CreatedAt.Format("2006-01-02 15:04"),
		Customer:          tx.Customer.Name,
		PaymentMethod:     string(tx.PaymentMethod),
		Subtotal:          tx.Subtotal,
		Discount:          tx.DiscountAmount,
		Tax:               tx.TaxAmount,
		Total:             tx.TotalAmount,
		Paid:              tx.AmountPaid,
		Change:            tx.ChangeAmount,
	}

	if tx.WorkOrder != nil {
		receipt.QueueNo = tx.WorkOrder.QueueNo
	}

	for _, item := range tx.Items {
		name := item.Product.Name
		if name == "" {
			name = "Product"
		}
		receipt.Items = append(receipt.Items, entity.ReceiptItem{
			Name:      name,
			Quantity:  item.Quantity,
			UnitPrice: item.Price,
			Total:     item.Subtotal,
		})
	}

	return receipt, nil
}

// PrintReceipt builds and prints the receipt for a POS transaction.
func (s *PrinterService) PrintReceipt(ctx context.Context, posTransactionID uuid.UUID) (*entity.Receipt, error) {
	receipt, err := s.BuildReceipt(ctx, posTransactionID)
	if err != nil {
		return nil, err
	}

	data := s.FormatReceipt(receipt)
	if err := s.printer.Print(data); err != nil {
		log.Printf("Printer error (transaction %s): %v", posTransactionID, err)
		return receipt, fmt.Errorf("failed to print receipt: %w", err)
	}

	return receipt, nil
}

// FormatReceipt converts a Receipt into ESC/POS bytes. Amounts print as
// whole rupiah with thousands separators.
func (s *PrinterService) FormatReceipt(r *entity.Receipt) []byte {
	doc := printer.NewDocument(s.paperWidth)

	// Header
	doc.SetAlign(printer.AlignCenter).
		SetBold(true).
		SetFontSize(printer.FontDouble).
		Text(r.Header.StoreName).
		SetFontSize(printer.FontNormal).
		SetBold(false)

	if r.Header.Address != "" {
		doc.Text(r.Header.Address)
	}
	if r.Header.Phone != "" {
		doc.Text(r.Header.Phone)
	}

	doc.SetAlign(printer.AlignLeft).
		Separator('-')

	doc.KeyValue("No:", r.TransactionNumber).
		KeyValue("Date:", r.Date)

	if r.QueueNo > 0 {
		doc.KeyValue("Queue:", fmt.Sprintf("%d", r.QueueNo))
	}
	if r.Cashier != "" {
		doc.KeyValue("Cashier:", r.Cashier)
	}
	if r.Customer != "" {
		doc.KeyValue("Customer:", r.Customer)
	}
	if r.PaymentMethod != "" {
		doc.KeyValue("Payment:", r.PaymentMethod)
	}

	doc.Separator('-')

	for _, item := range r.Items {
		doc.ItemLine(item.Quantity, item.Name, FormatRupiah(item.Total))
		if item.Quantity > 1 {
			doc.TextF("  @ %s each", FormatRupiah(item.UnitPrice))
		}
	}

	doc.Separator('-')

	doc.KeyValue("Subtotal:", FormatRupiah(r.Subtotal))
	if r.Discount > 0 {
		doc.KeyValue("Discount:", "-"+FormatRupiah(r.Discount))
	}
	if r.Tax > 0 {
		doc.KeyValue("Tax:", FormatRupiah(r.Tax))
	}
	doc.SetBold(true).
		KeyValue("TOTAL:", FormatRupiah(r.Total)).
		SetBold(false)

	doc.KeyValue("Paid:", FormatRupiah(r.Paid))
	if r.Change > 0 {
		doc.KeyValue("Change:", FormatRupiah(r.Change))
	}

	doc.Separator('-')

	doc.SetAlign(printer.AlignCenter).
		LineFeed().
		Text("Terima kasih!").
		LineFeed().
		SetAlign(printer.AlignLeft)

	doc.FeedLines(3).
		PartialCut()

	return doc.Bytes()
}

// FormatRupiah renders an int64 rupiah amount with dot thousands separators,
// e.g. 150000 -> "Rp150.000".
func FormatRupiah(amount int64) string {
	negative := amount < 0
	if negative {
		amount = -amount
	}

	digits := fmt.Sprintf("%d", amount)
	var out []byte
	for i, c := range []byte(digits) {
		if i > 0 && (len(digits)-i)%3 == 0 {
			out = append(out, '.')
		}
		out = append(out, c)
	}

	if negative {
		return "-Rp" + string(out)
	}
	return "Rp" + string(out)
}
