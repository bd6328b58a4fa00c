package checkout

import (
	"fmt"

	"github.com/rasanusantara/storefront/pkg/enums"
	pkgerrors "github.com/rasanusantara/storefront/pkg/errors"
)

const (
	MsgShippingIncomplete = "shipping information incomplete"
	MsgPaymentRequired    = "payment method is required"
	MsgBankRequired       = "bank is required for bank transfer"
	MsgWalletRequired     = "wallet is required for e-wallet"
)

// Field is a named form value checked for presence.
type Field struct {
	Name  string
	Value string
}

// MissingFields returns the names of fields whose value is the empty string.
// Whitespace-only values count as present.
func MissingFields(fields []Field) []string {
	var missing []string
	for _, f := range fields {
		if f.Value == "" {
			missing = append(missing, f.Name)
		}
	}
	return missing
}

// ValidateShipping fails when any required shipping field is empty.
func ValidateShipping(fields []Field) error {
	missing := MissingFields(fields)
	if len(missing) == 0 {
		return nil
	}
	return pkgerrors.New(pkgerrors.CodeValidation, MsgShippingIncomplete).WithDetails(map[string]any{
		"missing": missing,
	})
}

// ValidatePaymentSelection checks the checkout payment choice: a type is
// required, bank transfers need a bank and e-wallets need a wallet.
func ValidatePaymentSelection(paymentType enums.CheckoutPaymentType, bank, wallet string) error {
	if paymentType == enums.CheckoutPaymentTypeNone {
		return pkgerrors.New(pkgerrors.CodeValidation, MsgPaymentRequired)
	}
	if !paymentType.IsValid() {
		return pkgerrors.Newf(pkgerrors.CodeValidation, "unsupported payment method %q", paymentType)
	}
	switch paymentType {
	case enums.CheckoutPaymentTypeBankTransfer:
		if bank == "" {
			return pkgerrors.New(pkgerrors.CodeValidation, MsgBankRequired)
		}
		if !enums.Bank(bank).IsValid() {
			return pkgerrors.Newf(pkgerrors.CodeValidation, "unsupported bank %q", bank)
		}
	case enums.CheckoutPaymentTypeEWallet:
		if wallet == "" {
			return pkgerrors.New(pkgerrors.CodeValidation, MsgWalletRequired)
		}
		if !enums.Wallet(wallet).IsValid() {
			return pkgerrors.Newf(pkgerrors.CodeValidation, "unsupported wallet %q", wallet)
		}
	}
	return nil
}

// StockValidationInput describes a requested quantity against catalog stock.
type StockValidationInput struct {
	ProductID   int
	ProductName string
	Stock       int
	Requested   int
}

// StockViolationDetail is returned to callers when stock is short.
type StockViolationDetail struct {
	ProductID    int    `json:"product_id"`
	ProductName  string `json:"product_name,omitempty"`
	Available    int    `json:"available"`
	RequestedQty int    `json:"requested_qty"`
}

// ValidateStock ensures every requested quantity fits the catalog stock.
func ValidateStock(items []StockValidationInput) error {
	var violations []StockViolationDetail
	for _, item := range items {
		if item.Requested <= item.Stock {
			continue
		}
		violations = append(violations, StockViolationDetail{
			ProductID:    item.ProductID,
			ProductName:  item.ProductName,
			Available:    item.Stock,
			RequestedQty: item.Requested,
		})
	}
	if len(violations) == 0 {
		return nil
	}
	return pkgerrors.New(pkgerrors.CodeStateConflict, fmt.Sprintf("insufficient stock for %d item(s)", len(violations))).WithDetails(map[string]any{
		"violations": violations,
	})
}
