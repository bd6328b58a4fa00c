package enums

import "fmt"

// CheckoutPaymentType is the payment choice captured on the checkout form.
type CheckoutPaymentType string

const (
	CheckoutPaymentTypeNone         CheckoutPaymentType = ""
	CheckoutPaymentTypeBankTransfer CheckoutPaymentType = "bank-transfer"
	CheckoutPaymentTypeEWallet      CheckoutPaymentType = "e-wallet"
	CheckoutPaymentTypeCOD          CheckoutPaymentType = "cod"
)

var validCheckoutPaymentTypes = []CheckoutPaymentType{
	CheckoutPaymentTypeBankTransfer,
	CheckoutPaymentTypeEWallet,
	CheckoutPaymentTypeCOD,
}

func (c CheckoutPaymentType) String() string {
	return string(c)
}

// IsValid reports whether the value is a selectable payment type. The empty
// reset value is not valid.
func (c CheckoutPaymentType) IsValid() bool {
	for _, candidate := range validCheckoutPaymentTypes {
		if candidate == c {
			return true
		}
	}
	return false
}

func ParseCheckoutPaymentType(value string) (CheckoutPaymentType, error) {
	for _, candidate := range validCheckoutPaymentTypes {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid checkout payment type %q", value)
}

// Bank identifies a transfer destination.
type Bank string

const (
	BankBCA     Bank = "bca"
	BankMandiri Bank = "mandiri"
	BankBNI     Bank = "bni"
)

var validBanks = []Bank{BankBCA, BankMandiri, BankBNI}

func (b Bank) IsValid() bool {
	for _, candidate := range validBanks {
		if candidate == b {
			return true
		}
	}
	return false
}

// Wallet identifies an e-wallet provider.
type Wallet string

const (
	WalletGoPay Wallet = "gopay"
	WalletOVO   Wallet = "ovo"
	WalletDana  Wallet = "dana"
)

var validWallets = []Wallet{WalletGoPay, WalletOVO, WalletDana}

func (w Wallet) IsValid() bool {
	for _, candidate := range validWallets {
		if candidate == w {
			return true
		}
	}
	return false
}
