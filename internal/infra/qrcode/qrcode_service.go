package qrcode

import (
	"encoding/json"
	"fmt"

	"storefront/config"
	"storefront/internal/domain/service"

	"github.com/shopspring/decimal"
	"github.com/skip2/go-qrcode"
)

const defaultSize = 256

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
}

// bankTransferPayload is the JSON embedded in the QR code.
type bankTransferPayload struct {
	Type          string `json:"type"`
	BankName      string `json:"bank_name"`
	AccountName   string `json:"account_name"`
	AccountNumber string `json:"account_number"`
	OrderNumber   string `json:"order_number"`
	Reference     string `json:"reference"`
	Amount        string `json:"amount"`
	Currency      string `json:"currency"`
}

// NewQRCodeService creates a new QR code service instance
func NewQRCodeService(size int, errorCorrectionLevel string) service.QRCodeService {
	if size <= 0 {
		size = defaultSize
	}

	var level qrcode.RecoveryLevel
	switch errorCorrectionLevel {
	case "L":
		level = qrcode.Low
	case "M":
		level = qrcode.Medium
	case "Q":
		level = qrcode.High
	case "H":
		level = qrcode.Highest
	default:
		level = qrcode.Medium
	}

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: level,
	}
}

// New provides the QR code service from configuration, falling back to 256px medium correction.
func New(cfg *config.Config) service.QRCodeService {
	if cfg.QRCode == nil {
		return NewQRCodeService(defaultSize, "M")
	}

	return NewQRCodeService(cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel)
}

// GenerateBankTransferQR encodes the instructions as a PNG QR code
func (s *qrcodeService) GenerateBankTransferQR(instructions *service.BankTransferInstructions) ([]byte, error) {
	if instructions == nil {
		return nil, fmt.Errorf("bank transfer instructions are required")
	}

	data := bankTransferPayload{
		Type:          service.PaymentQRPayload,
		BankName:      instructions.BankName,
		AccountName:   instructions.AccountName,
		AccountNumber: instructions.AccountNumber,
		OrderNumber:   instructions.OrderNumber,
		Reference:     instructions.Reference,
		Amount:        instructions.Amount.StringFixed(2),
		Currency:      instructions.Currency,
	}

	jsonData, err := json.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal QR code data: %w", err)
	}

	qrCode, err := qrcode.New(string(jsonData), s.errorCorrectionLevel)
	if err != nil {
		return nil, fmt.Errorf("failed to create QR code: %w", err)
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, fmt.Errorf("failed to generate PNG: %w", err)
	}

	return pngBytes, nil
}

// ParseBankTransferQR parses QR code data back into bank-transfer instructions
func (s *qrcodeService) ParseBankTransferQR(qrData string) (*service.BankTransferInstructions, error) {
	var data bankTransferPayload
	if err := json.Unmarshal([]byte(qrData), &data); err != nil {
		return nil, fmt.Errorf("failed to unmarshal QR code data: %w", err)
	}

	if data.Type != service.PaymentQRPayload {
		return nil, fmt.Errorf("invalid QR code type: %s", data.Type)
	}
	if data.OrderNumber == "" || data.Reference == "" {
		return nil, fmt.Errorf("QR code is missing the order number or reference")
	}

	amount, err := decimal.NewFromString(data.Amount)
	if err != nil {
		return nil, fmt.Errorf("failed to parse amount: %w", err)
	}

	return &service.BankTransferInstructions{
		BankName:      data.BankName,
		AccountName:   data.AccountName,
		AccountNumber: data.AccountNumber,
		OrderNumber:   data.OrderNumber,
		Reference:     data.Reference,
		Amount:        amount,
		Currency:      data.Currency,
	}, nil
}
