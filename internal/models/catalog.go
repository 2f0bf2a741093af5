// Package models defines the persistence entities. Most of them are flat
// catalog rows exposed for dropdown/reference use in the back office.
package models

// BankEntity is an append-only catalog of banks.
type BankEntity struct {
	Base
	Name string `gorm:"not null" json:"name"`
}

// PaymentMethod is an append-only catalog (cash, card, transfer, ...).
type PaymentMethod struct {
	Base
	Name string `gorm:"not null" json:"name"`
}

// PaymentType is an append-only catalog (single payment, installments, ...).
type PaymentType struct {
	Base
	Name string `gorm:"not null" json:"name"`
}

// ReceiptType is an append-only catalog of receipt/voucher kinds.
type ReceiptType struct {
	Base
	Name string `gorm:"not null" json:"name"`
}
