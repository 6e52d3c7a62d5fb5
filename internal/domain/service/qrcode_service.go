package service

import (
	"storefront/internal/domain/entity"

	"github.com/shopspring/decimal"
)

// BankTransferInstructions is what a customer needs to pay an order by bank transfer.
type BankTransferInstructions struct {
	BankName      string          `json:"bank_name"`
	AccountName   string          `json:"account_name"`
	AccountNumber string          `json:"account_number"`
	OrderNumber   string          `json:"order_number"`
	Reference     string          `json:"reference"`
	Amount        decimal.Decimal `json:"amount"`
	Currency      string          `json:"currency"`
}

// QRCodeService defines the interface for QR code generation and parsing services
type QRCodeService interface {
	// GenerateBankTransferQR encodes bank-transfer instructions as a PNG QR code
	GenerateBankTransferQR(instructions *BankTransferInstructions) ([]byte, error)

	// ParseBankTransferQR decodes the QR payload back into instructions
	ParseBankTransferQR(qrData string) (*BankTransferInstructions, error)
}

// PaymentQRPayload is the content type marker embedded in QR payloads.
const PaymentQRPayload = "storefront/bank-transfer"

// NewBankTransferInstructions builds instructions for an order's pending payment.
func NewBankTransferInstructions(bankName, accountName, accountNumber string, order *entity.Order, payment *entity.Payment) *BankTransferInstructions {
	return &BankTransferInstructions{
		BankName:      bankName,
		AccountName:   accountName,
		AccountNumber: accountNumber,
		OrderNumber:   order.OrderNumber,
		Reference:     payment.Reference,
		Amount:        payment.Amount,
		Currency:      payment.Currency,
	}
}
